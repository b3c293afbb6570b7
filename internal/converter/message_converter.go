package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// ConversationToResponse converts a Conversation entity to its DTO
func ConversationToResponse(conversation *entity.Conversation) *dto.ConversationResponse {
	if conversation == nil {
		return nil
	}

	return &dto.ConversationResponse{
		ID:            conversation.ID,
		DoctorUserID:  conversation.DoctorUserID,
		PatientUserID: conversation.PatientUserID,
		CreatedAt:     conversation.CreatedAt,
	}
}

// MessageToResponse converts a Message entity to its DTO
func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	response := &dto.MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderUserID:   message.SenderUserID,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
	}

	if message.Sender.Username != "" {
		response.SenderUsername = message.Sender.Username
	}

	return response
}

// MessagesToResponses converts a slice of Message entities to DTOs
func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = *MessageToResponse(&message)
	}
	return responses
}
