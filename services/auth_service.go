package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Madangopal-Redsky/Twilio-server/config"
	"github.com/Madangopal-Redsky/Twilio-server/models"
	"github.com/Madangopal-Redsky/Twilio-server/utils"
)

// AuthService owns signup, login and the small user reads/writes the
// rest of the API needs.
type AuthService struct {
	db  *gorm.DB
	cfg config.Config
}

func NewAuthService(db *gorm.DB, cfg config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Signup(username, email, password, phone string) error {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Phone:    phone,
	}
	return s.db.Create(&user).Error
}

// Login returns a 7-day session token plus the matched user. The caller
// decides which user fields go out on the wire.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidPassword
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, []byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// ListUsers returns everyone except the caller, public fields only.
func (s *AuthService) ListUsers(exceptID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.Select("id", "username", "email", "phone").
		Where("id <> ?", exceptID).
		Find(&users).Error
	return users, err
}

// SaveFCMToken stores the device token pushes for this user go to. The
// only user mutation in scope; a new token replaces the previous one.
func (s *AuthService) SaveFCMToken(userID uint, token string) error {
	if token == "" {
		return ErrMissingFields
	}
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("fcm_token", token).Error
}
