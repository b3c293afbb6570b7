package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterDoctorRequest struct {
	User              AccountCredentials `json:"user" validate:"required"`
	Name              string             `json:"name" validate:"required,max=100"`
	Email             string             `json:"email" validate:"required,email"`
	OfficeNumber      string             `json:"office_number" validate:"required,max=20"`
	SpecializationID  uint               `json:"specialization_id" validate:"required,min=1"`
	QualificationIDs  []uint             `json:"qualification_ids" validate:"omitempty,dive,min=1"`
	YearsOfExperience uint               `json:"years_of_experience" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID                uint      `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	OfficeNumber      string    `json:"office_number"`
	Specialization    string    `json:"specialization"`
	Qualifications    []string  `json:"qualifications"`
	YearsOfExperience uint      `json:"years_of_experience"`
	ImagePath         string    `json:"image_path,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
