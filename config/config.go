package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Madangopal-Redsky/Twilio-server/models"
)

// Config carries everything read from the environment. It is built once
// in main and handed to each constructor; nothing mutates it afterwards.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	TwilioAccountSID        string
	TwilioAuthToken         string
	TwilioAPIKey            string
	TwilioAPISecret         string
	ConversationsServiceSID string
	TwiMLAppSID             string
	TwilioPhoneNumber       string

	// Path to the Firebase service-account JSON used for FCM pushes.
	FirebaseCredentialsFile string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return Config{
		Port: getenv("PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		TwilioAccountSID:        os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:         os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioAPIKey:            os.Getenv("TWILIO_API_KEY"),
		TwilioAPISecret:         os.Getenv("TWILIO_API_SECRET"),
		ConversationsServiceSID: os.Getenv("TWILIO_CONVERSATIONS_SERVICE_SID"),
		TwiMLAppSID:             os.Getenv("TWIML_APP_SID"),
		TwilioPhoneNumber:       os.Getenv("TWILIO_PHONE_NUMBER"),

		FirebaseCredentialsFile: getenv("FIREBASE_CREDENTIALS_FILE", "firebase-service-account.json"),
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		return nil, err
	}

	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
