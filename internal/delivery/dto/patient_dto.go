package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	User        AccountCredentials `json:"user" validate:"required"`
	Name        string             `json:"name" validate:"required,max=100"`
	DateOfBirth string             `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string             `json:"gender" validate:"required,oneof=M F O"`
	PhoneNumber string             `json:"phone_number" validate:"required,len=10,number"`
	Email       string             `json:"email" validate:"omitempty,email"`
	Age         uint               `json:"age" validate:"required,lte=150"`
	BloodGroup  string             `json:"blood_group" validate:"required,max=3"`
}

// Response DTOs

type PatientResponse struct {
	ID          uint      `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email,omitempty"`
	Age         uint      `json:"age"`
	BloodGroup  string    `json:"blood_group"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
