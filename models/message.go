package models

import "time"

// Message is one chat message in a conversation. Append-only: nothing
// updates or deletes these.
type Message struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ConversationSid string    `gorm:"index;not null" json:"conversationSid"`
	Author          string    `gorm:"not null" json:"author"`
	Body            string    `gorm:"not null" json:"body"`
	DateCreated     time.Time `gorm:"autoCreateTime" json:"dateCreated"`
}
