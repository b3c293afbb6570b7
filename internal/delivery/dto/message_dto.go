package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateConversationRequest struct {
	DoctorUserID  uuid.UUID `json:"doctor_user_id" validate:"required"`
	PatientUserID uuid.UUID `json:"patient_user_id" validate:"required"`
}

type CreateMessageRequest struct {
	ConversationID uint   `json:"conversation_id" validate:"required,min=1"`
	Content        string `json:"content" validate:"required"`
}

// Response DTOs

type ConversationResponse struct {
	ID            uint      `json:"id"`
	DoctorUserID  uuid.UUID `json:"doctor_user_id"`
	PatientUserID uuid.UUID `json:"patient_user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type MessageResponse struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderUserID   uuid.UUID `json:"sender_user_id"`
	SenderUsername string    `json:"sender_username,omitempty"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}
