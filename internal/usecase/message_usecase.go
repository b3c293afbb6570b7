package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotDoctorAccount     = errors.New("doctor_user_id does not belong to a doctor account")
	ErrNotPatientAccount    = errors.New("patient_user_id does not belong to a patient account")
)

type MessageUsecase interface {
	CreateConversation(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	CreateMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	ListMessages(ctx context.Context, conversationID uint) (*dto.MessageListResponse, error)
}

type messageUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	userRepo         repository.UserRepository
}

func NewMessageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) MessageUsecase {
	return &messageUsecase{
		db:               db,
		log:              log,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
	}
}

// CreateConversation returns the thread for a (doctor, patient) account pair,
// creating it when absent. The pair is stored doctor-first, so the unordered
// pair has one canonical row; the composite unique index backs this up under
// concurrent creation.
func (u *messageUsecase) CreateConversation(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	db := u.db.WithContext(ctx)

	doctorUser, err := u.userRepo.FindByID(db, req.DoctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor user: %+v", err)
		return nil, err
	}
	if doctorUser == nil || doctorUser.RoleID != entity.RoleIDDoctor {
		return nil, ErrNotDoctorAccount
	}

	patientUser, err := u.userRepo.FindByID(db, req.PatientUserID)
	if err != nil {
		u.log.Warnf("Failed to find patient user: %+v", err)
		return nil, err
	}
	if patientUser == nil || patientUser.RoleID != entity.RoleIDPatient {
		return nil, ErrNotPatientAccount
	}

	existing, err := u.conversationRepo.FindByPair(db, req.DoctorUserID, req.PatientUserID)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return nil, err
	}
	if existing != nil {
		return converter.ConversationToResponse(existing), nil
	}

	conversation := &entity.Conversation{
		DoctorUserID:  req.DoctorUserID,
		PatientUserID: req.PatientUserID,
	}

	if err := u.conversationRepo.Create(db, conversation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Created concurrently; return the winner.
			existing, err = u.conversationRepo.FindByPair(db, req.DoctorUserID, req.PatientUserID)
			if err != nil || existing == nil {
				return nil, err
			}
			return converter.ConversationToResponse(existing), nil
		}
		u.log.Warnf("Failed to create conversation: %+v", err)
		return nil, err
	}

	u.log.Infof("Conversation created: id=%d", conversation.ID)
	return converter.ConversationToResponse(conversation), nil
}

// CreateMessage appends a message to an existing conversation. The sender is
// the authenticated account, never a request field.
func (u *messageUsecase) CreateMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	senderID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	conversation, err := u.conversationRepo.FindByID(db, req.ConversationID)
	if err != nil {
		u.log.Warnf("Failed to find conversation %d: %+v", req.ConversationID, err)
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}

	message := &entity.Message{
		ConversationID: req.ConversationID,
		SenderUserID:   senderID,
		Content:        req.Content,
	}

	if err := u.messageRepo.Create(db, message); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		return nil, err
	}

	return converter.MessageToResponse(message), nil
}

// ListMessages returns messages newest first, optionally scoped to one
// conversation when conversationID is non-zero.
func (u *messageUsecase) ListMessages(ctx context.Context, conversationID uint) (*dto.MessageListResponse, error) {
	messages, err := u.messageRepo.FindAllOrdered(u.db.WithContext(ctx), conversationID)
	if err != nil {
		u.log.Warnf("Failed to list messages: %+v", err)
		return nil, err
	}

	return &dto.MessageListResponse{
		Messages: converter.MessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}
