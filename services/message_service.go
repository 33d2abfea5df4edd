package services

import (
	"gorm.io/gorm"

	"github.com/Madangopal-Redsky/Twilio-server/models"
)

// MessageService is a thin append/list layer over the messages table.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// Save persists a message with a server-assigned timestamp and returns
// the stored record.
func (s *MessageService) Save(conversationSid, author, body string) (*models.Message, error) {
	if conversationSid == "" || body == "" {
		return nil, ErrMissingFields
	}

	msg := &models.Message{
		ConversationSid: conversationSid,
		Author:          author,
		Body:            body,
	}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns every message in the conversation, oldest first. No
// pagination; the id tiebreak keeps same-timestamp inserts stable.
func (s *MessageService) List(conversationSid string) ([]models.Message, error) {
	messages := []models.Message{}
	err := s.db.Where("conversation_sid = ?", conversationSid).
		Order("date_created").
		Order("id").
		Find(&messages).Error
	return messages, err
}
