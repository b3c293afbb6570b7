package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrSlotConflict         = errors.New("the appointment date and time conflicts with another appointment for the same doctor and patient")
	ErrParticipantInactive  = errors.New("the doctor or patient account is no longer active")
	ErrDateInPast           = errors.New("the appointment date is in the past")
	ErrAppointmentFinalized = errors.New("appointment is already completed or cancelled")
	ErrInvalidTransition    = errors.New("appointment cannot change to the requested status from its current status")
)

// transitionSources maps a target status to the statuses it may be reached
// from. Completed and cancelled are terminal.
var transitionSources = map[entity.AppointmentStatus][]entity.AppointmentStatus{
	entity.AppointmentStatusConfirmed: {entity.AppointmentStatusPending},
	entity.AppointmentStatusCompleted: {entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
	entity.AppointmentStatusCancelled: {entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, id uint, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	ListActiveOrdered(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		now:             time.Now,
	}
}

// Create books an appointment after running the scheduling validator. The
// unique slot index is the authoritative double-booking guard; the lookup in
// validateSlot only produces a friendlier error ahead of the constraint.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := u.validateSlot(db, doctor, patient, date, req.Time, 0); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      date,
		Time:      req.Time,
		Status:    entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent booking for the same slot.
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%d, doctor=%d, patient=%d, slot=%s %s",
		appointment.ID, req.DoctorID, req.PatientID, req.Date, req.Time)
	return converter.AppointmentToResponse(full), nil
}

// Reschedule moves a non-terminal appointment to a new slot, re-running the
// validator with the appointment's own row excluded from the conflict lookup.
func (u *appointmentUsecase) Reschedule(ctx context.Context, id uint, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsTerminal() {
		return nil, ErrAppointmentFinalized
	}

	if err := u.validateSlot(db, &appointment.Doctor, &appointment.Patient, date, req.Time, appointment.ID); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.UpdateSlot(db, id, date, req.Time); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to reschedule appointment %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Appointment rescheduled: id=%d, slot=%s %s", id, req.Date, req.Time)
	return u.GetByID(ctx, id)
}

// validateSlot enforces the scheduling invariants:
//  1. no other appointment for the same doctor and patient at the same date
//     and time (excludeID skips the candidate's own persisted row)
//  2. both bound accounts are active
//  3. the date is not before today (calendar dates in UTC; the single
//     canonical policy for the past-date check)
func (u *appointmentUsecase) validateSlot(db *gorm.DB, doctor *entity.Doctor, patient *entity.Patient, date time.Time, timeOfDay string, excludeID uint) error {
	existing, err := u.appointmentRepo.FindBySlot(db, doctor.ID, patient.ID, date, timeOfDay, excludeID)
	if err != nil {
		u.log.Warnf("Failed conflict lookup for doctor=%d patient=%d: %+v", doctor.ID, patient.ID, err)
		return err
	}
	if existing != nil {
		return ErrSlotConflict
	}

	if !doctor.User.IsActive || !patient.User.IsActive {
		return ErrParticipantInactive
	}

	today := u.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return ErrDateInPast
	}

	return nil
}

func (u *appointmentUsecase) Confirm(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusConfirmed)
}

func (u *appointmentUsecase) Complete(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCompleted)
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCancelled)
}

// transition applies a guarded status change. The guard runs inside the
// UPDATE itself, so a concurrent transition cannot move an appointment out
// of a terminal state.
func (u *appointmentUsecase) transition(ctx context.Context, id uint, to entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	affected, err := u.appointmentRepo.UpdateStatusFrom(db, id, to, transitionSources[to])
	if err != nil {
		u.log.Warnf("Failed to update appointment %d status to %s: %+v", id, to, err)
		return nil, err
	}

	if affected == 0 {
		appointment, err := u.appointmentRepo.FindByID(db, id)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, ErrAppointmentNotFound
		}
		if appointment.IsTerminal() {
			return nil, ErrAppointmentFinalized
		}
		return nil, ErrInvalidTransition
	}

	u.log.Infof("Appointment status changed: id=%d, status=%s", id, to)
	return u.GetByID(ctx, id)
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

// ListActiveOrdered returns pending and confirmed appointments ordered by
// date then time.
func (u *appointmentUsecase) ListActiveOrdered(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindActiveOrdered(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
