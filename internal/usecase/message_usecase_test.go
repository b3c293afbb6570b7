package usecase

import (
	"context"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMessageUsecase(db *gorm.DB) MessageUsecase {
	return NewMessageUsecase(
		db,
		testLogger(),
		repository.NewConversationRepository(),
		repository.NewMessageRepository(),
		repository.NewUserRepository(),
	)
}

func TestCreateConversation(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newMessageUsecase(db)

	doctorUser := seedUser(t, db, entity.RoleIDDoctor, true)
	patientUser := seedUser(t, db, entity.RoleIDPatient, true)

	resp, err := u.CreateConversation(context.Background(), &dto.CreateConversationRequest{
		DoctorUserID:  doctorUser.ID,
		PatientUserID: patientUser.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, doctorUser.ID, resp.DoctorUserID)
	assert.Equal(t, patientUser.ID, resp.PatientUserID)

	// Asking again for the same pair returns the existing thread
	again, err := u.CreateConversation(context.Background(), &dto.CreateConversationRequest{
		DoctorUserID:  doctorUser.ID,
		PatientUserID: patientUser.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Conversation{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateConversation_RoleValidation(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newMessageUsecase(db)

	doctorUser := seedUser(t, db, entity.RoleIDDoctor, true)
	patientUser := seedUser(t, db, entity.RoleIDPatient, true)

	// Swapped roles are rejected on both sides
	_, err := u.CreateConversation(context.Background(), &dto.CreateConversationRequest{
		DoctorUserID:  patientUser.ID,
		PatientUserID: doctorUser.ID,
	})
	assert.ErrorIs(t, err, ErrNotDoctorAccount)

	_, err = u.CreateConversation(context.Background(), &dto.CreateConversationRequest{
		DoctorUserID:  doctorUser.ID,
		PatientUserID: doctorUser.ID,
	})
	assert.ErrorIs(t, err, ErrNotPatientAccount)
}

func TestCreateMessage(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newMessageUsecase(db)

	doctorUser := seedUser(t, db, entity.RoleIDDoctor, true)
	patientUser := seedUser(t, db, entity.RoleIDPatient, true)

	conversation, err := u.CreateConversation(context.Background(), &dto.CreateConversationRequest{
		DoctorUserID:  doctorUser.ID,
		PatientUserID: patientUser.ID,
	})
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, patientUser.ID)

	resp, err := u.CreateMessage(ctx, &dto.CreateMessageRequest{
		ConversationID: conversation.ID,
		Content:        "I have a question about my prescription",
	})
	require.NoError(t, err)
	assert.Equal(t, conversation.ID, resp.ConversationID)
	assert.Equal(t, patientUser.ID, resp.SenderUserID)
	assert.Equal(t, "I have a question about my prescription", resp.Content)
}

func TestCreateMessage_UnknownConversation(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newMessageUsecase(db)

	patientUser := seedUser(t, db, entity.RoleIDPatient, true)
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, patientUser.ID)

	_, err := u.CreateMessage(ctx, &dto.CreateMessageRequest{
		ConversationID: 999,
		Content:        "hello",
	})
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestListMessages(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newMessageUsecase(db)

	doctorUser := seedUser(t, db, entity.RoleIDDoctor, true)
	patientUser := seedUser(t, db, entity.RoleIDPatient, true)
	otherPatient := seedUser(t, db, entity.RoleIDPatient, true)

	first, err := u.CreateConversation(context.Background(), &dto.CreateConversationRequest{
		DoctorUserID:  doctorUser.ID,
		PatientUserID: patientUser.ID,
	})
	require.NoError(t, err)

	second, err := u.CreateConversation(context.Background(), &dto.CreateConversationRequest{
		DoctorUserID:  doctorUser.ID,
		PatientUserID: otherPatient.ID,
	})
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, doctorUser.ID)
	for _, m := range []struct {
		conversationID uint
		content        string
	}{
		{first.ID, "first message"},
		{first.ID, "second message"},
		{second.ID, "other thread"},
	} {
		_, err := u.CreateMessage(ctx, &dto.CreateMessageRequest{
			ConversationID: m.conversationID,
			Content:        m.content,
		})
		require.NoError(t, err)
	}

	// Unscoped listing returns everything, newest first
	all, err := u.ListMessages(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, 3, all.Total)
	assert.Equal(t, "other thread", all.Messages[0].Content)
	assert.Equal(t, "second message", all.Messages[1].Content)
	assert.Equal(t, "first message", all.Messages[2].Content)

	// Scoped listing only covers one thread
	scoped, err := u.ListMessages(context.Background(), first.ID)
	require.NoError(t, err)
	require.Equal(t, 2, scoped.Total)
	assert.Equal(t, "second message", scoped.Messages[0].Content)
}
