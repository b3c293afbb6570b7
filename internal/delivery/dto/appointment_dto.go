package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID  uint   `json:"doctor_id" validate:"required,min=1"`
	PatientID uint   `json:"patient_id" validate:"required,min=1"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        uint             `json:"id"`
	DoctorID  uint             `json:"doctor_id"`
	PatientID uint             `json:"patient_id"`
	Date      string           `json:"date"`
	Time      string           `json:"time"`
	Status    string           `json:"status"`
	Doctor    *DoctorResponse  `json:"doctor,omitempty"`
	Patient   *PatientResponse `json:"patient,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
