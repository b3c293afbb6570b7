package repository

import (
	"time"

	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	// FindBySlot returns an appointment occupying the (doctor, patient, date,
	// time) slot, excluding excludeID when non-zero (the candidate's own row
	// during reschedule).
	FindBySlot(db *gorm.DB, doctorID, patientID uint, date time.Time, timeOfDay string, excludeID uint) (*entity.Appointment, error)
	FindActiveOrdered(db *gorm.DB) ([]entity.Appointment, error)
	UpdateSlot(db *gorm.DB, id uint, date time.Time, timeOfDay string) error
	// UpdateStatusFrom atomically moves an appointment to the given status
	// only while its current status is one of from. Returns affected rows:
	// 0 means the row is missing or already past the allowed source states.
	UpdateStatusFrom(db *gorm.DB, id uint, to entity.AppointmentStatus, from []entity.AppointmentStatus) (int64, error)
}
