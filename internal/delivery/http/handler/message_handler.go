package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"
)

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
	validator      *validator.CustomValidator
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, validator *validator.CustomValidator) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

func (h *MessageHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	conversation, err := h.messageUsecase.CreateConversation(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNotDoctorAccount, usecase.ErrNotPatientAccount:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create conversation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Conversation ready", conversation)
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.CreateMessage(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrConversationNotFound:
			response.NotFound(w, "Conversation not found")
		default:
			response.InternalServerError(w, "Failed to create message")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", message)
}

func (h *MessageHandler) GetAllMessages(w http.ResponseWriter, r *http.Request) {
	// Optional scoping filter; zero means all conversations.
	var conversationID uint
	if raw := r.URL.Query().Get("conversation_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			response.BadRequest(w, "Invalid conversation_id")
			return
		}
		conversationID = uint(parsed)
	}

	messages, err := h.messageUsecase.ListMessages(r.Context(), conversationID)
	if err != nil {
		response.InternalServerError(w, "Failed to get messages")
		return
	}

	response.Success(w, http.StatusOK, "Messages retrieved successfully", messages)
}
