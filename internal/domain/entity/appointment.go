package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment binds a doctor and a patient to a date/time slot.
// The (doctor_id, patient_id, date, time) tuple is unique at the storage
// layer; the application-level conflict lookup only produces a friendlier
// error ahead of the constraint.
type Appointment struct {
	ID        uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uint              `gorm:"not null;index;uniqueIndex:uq_appointments_slot" json:"doctor_id"`
	PatientID uint              `gorm:"not null;index;uniqueIndex:uq_appointments_slot" json:"patient_id"`
	Date      time.Time         `gorm:"type:date;not null;uniqueIndex:uq_appointments_slot" json:"date"`
	Time      string            `gorm:"type:time;not null;uniqueIndex:uq_appointments_slot" json:"time"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is in pending status
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if the appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsTerminal reports whether no further status transition is allowed.
// Completed and cancelled are terminal states.
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}
