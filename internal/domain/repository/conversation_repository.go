package repository

import (
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepository interface {
	Create(db *gorm.DB, conversation *entity.Conversation) error
	FindByID(db *gorm.DB, id uint) (*entity.Conversation, error)
	FindByPair(db *gorm.DB, doctorUserID, patientUserID uuid.UUID) (*entity.Conversation, error)
}

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	// FindAllOrdered returns messages newest first, optionally scoped to a
	// single conversation when conversationID is non-zero.
	FindAllOrdered(db *gorm.DB, conversationID uint) ([]entity.Message, error)
}
