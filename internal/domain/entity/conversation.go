package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a thread between one doctor-role account and one
// patient-role account. The pair is stored doctor-first, which makes the
// unordered pair canonical and lets a composite unique index enforce
// one thread per pair.
type Conversation struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_conversations_pair" json:"doctor_user_id"`
	PatientUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_conversations_pair" json:"patient_user_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	DoctorUser  User      `gorm:"foreignKey:DoctorUserID" json:"doctor_user,omitempty"`
	PatientUser User      `gorm:"foreignKey:PatientUserID" json:"patient_user,omitempty"`
	Messages    []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// Message is an append-only, timestamped child of a conversation.
type Message struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uint      `gorm:"not null;index" json:"conversation_id"`
	SenderUserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_user_id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Conversation Conversation `gorm:"foreignKey:ConversationID" json:"conversation,omitempty"`
	Sender       User         `gorm:"foreignKey:SenderUserID" json:"sender,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
