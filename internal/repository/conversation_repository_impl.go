package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type conversationRepository struct{}

func NewConversationRepository() domainRepo.ConversationRepository {
	return &conversationRepository{}
}

func (r *conversationRepository) Create(db *gorm.DB, conversation *entity.Conversation) error {
	return db.Create(conversation).Error
}

func (r *conversationRepository) FindByID(db *gorm.DB, id uint) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := db.Where("id = ?", id).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindByPair(db *gorm.DB, doctorUserID, patientUserID uuid.UUID) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := db.Where("doctor_user_id = ? AND patient_user_id = ?", doctorUserID, patientUserID).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

type messageRepository struct{}

func NewMessageRepository() domainRepo.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *entity.Message) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindAllOrdered(db *gorm.DB, conversationID uint) ([]entity.Message, error) {
	query := db.Preload("Sender")
	if conversationID != 0 {
		query = query.Where("conversation_id = ?", conversationID)
	}

	var messages []entity.Message
	err := query.Order("created_at DESC, id DESC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
