package dto

import "time"

// Request DTOs

type CreateMedicalRecordRequest struct {
	DoctorID    uint   `json:"doctor_id" validate:"required,min=1"`
	PatientID   uint   `json:"patient_id" validate:"required,min=1"`
	Description string `json:"description" validate:"required"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID          uint      `json:"id"`
	DoctorID    uint      `json:"doctor_id"`
	PatientID   uint      `json:"patient_id"`
	Description string    `json:"description"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
