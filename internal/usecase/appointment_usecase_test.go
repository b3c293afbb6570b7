package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentUsecase(t *testing.T, db *gorm.DB, now time.Time) *appointmentUsecase {
	u := NewAppointmentUsecase(
		db,
		testLogger(),
		repository.NewAppointmentRepository(),
		repository.NewDoctorRepository(),
		repository.NewPatientRepository(),
	).(*appointmentUsecase)
	u.now = func() time.Time { return now }
	return u
}

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func TestCreateAppointment(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newAppointmentUsecase(t, db, testNow)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)

	resp, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2026-03-15",
		Time:      "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
	assert.Equal(t, "2026-03-15", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newAppointmentUsecase(t, db, testNow)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)

	req := &dto.CreateAppointmentRequest{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2026-03-15",
		Time:      "10:00",
	}

	_, err := u.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = u.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Same doctor and patient but a different time is allowed
	_, err = u.Create(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2026-03-15",
		Time:      "11:00",
	})
	assert.NoError(t, err)
}

func TestCreateAppointment_UniqueIndexBackstop(t *testing.T) {
	db := setupUsecaseDB(t)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)

	first := &entity.Appointment{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
		Status:    entity.AppointmentStatusPending,
	}
	require.NoError(t, db.Create(first).Error)

	duplicate := &entity.Appointment{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
		Status:    entity.AppointmentStatusPending,
	}
	err := db.Create(duplicate).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateAppointment_DateInPast(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newAppointmentUsecase(t, db, testNow)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)

	_, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2026-03-09",
		Time:      "10:00",
	})
	assert.ErrorIs(t, err, ErrDateInPast)

	// Today is not in the past
	_, err = u.Create(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2026-03-10",
		Time:      "10:00",
	})
	assert.NoError(t, err)
}

func TestCreateAppointment_InactiveParticipant(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newAppointmentUsecase(t, db, testNow)

	t.Run("inactive doctor", func(t *testing.T) {
		doctor := seedDoctor(t, db, false)
		patient := seedPatient(t, db, true)

		_, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
			DoctorID:  doctor.ID,
			PatientID: patient.ID,
			Date:      "2026-03-15",
			Time:      "10:00",
		})
		assert.ErrorIs(t, err, ErrParticipantInactive)
	})

	t.Run("inactive patient", func(t *testing.T) {
		doctor := seedDoctor(t, db, true)
		patient := seedPatient(t, db, false)

		_, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
			DoctorID:  doctor.ID,
			PatientID: patient.ID,
			Date:      "2026-03-15",
			Time:      "10:00",
		})
		assert.ErrorIs(t, err, ErrParticipantInactive)
	})
}

func TestCreateAppointment_UnknownParticipants(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newAppointmentUsecase(t, db, testNow)

	patient := seedPatient(t, db, true)

	_, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:  999,
		PatientID: patient.ID,
		Date:      "2026-03-15",
		Time:      "10:00",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	doctor := seedDoctor(t, db, true)
	_, err = u.Create(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:  doctor.ID,
		PatientID: 999,
		Date:      "2026-03-15",
		Time:      "10:00",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestRescheduleAppointment(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newAppointmentUsecase(t, db, testNow)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)

	created, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2026-03-15",
		Time:      "10:00",
	})
	require.NoError(t, err)

	// Keeping the same slot must not conflict with the appointment's own row
	resp, err := u.Reschedule(context.Background(), created.ID, &dto.RescheduleAppointmentRequest{
		Date: "2026-03-15",
		Time: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.Time)

	resp, err = u.Reschedule(context.Background(), created.ID, &dto.RescheduleAppointmentRequest{
		Date: "2026-03-16",
		Time: "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-16", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
}

func TestRescheduleAppointment_ConflictAndTerminal(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newAppointmentUsecase(t, db, testNow)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)

	first, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2026-03-15",
		Time:      "10:00",
	})
	require.NoError(t, err)

	second, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2026-03-15",
		Time:      "11:00",
	})
	require.NoError(t, err)

	// Moving onto the other appointment's slot conflicts
	_, err = u.Reschedule(context.Background(), second.ID, &dto.RescheduleAppointmentRequest{
		Date: "2026-03-15",
		Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)

	// A cancelled appointment cannot move
	_, err = u.Cancel(context.Background(), first.ID)
	require.NoError(t, err)
	_, err = u.Reschedule(context.Background(), first.ID, &dto.RescheduleAppointmentRequest{
		Date: "2026-03-20",
		Time: "09:00",
	})
	assert.ErrorIs(t, err, ErrAppointmentFinalized)
}

func TestStatusTransitions(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newAppointmentUsecase(t, db, testNow)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)

	create := func(t *testing.T, timeOfDay string) uint {
		resp, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
			DoctorID:  doctor.ID,
			PatientID: patient.ID,
			Date:      "2026-03-15",
			Time:      timeOfDay,
		})
		require.NoError(t, err)
		return resp.ID
	}

	t.Run("pending to confirmed to completed", func(t *testing.T) {
		id := create(t, "08:00")

		resp, err := u.Confirm(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)

		resp, err = u.Complete(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
	})

	t.Run("pending straight to completed", func(t *testing.T) {
		id := create(t, "09:00")

		resp, err := u.Complete(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
	})

	t.Run("confirm is not repeatable", func(t *testing.T) {
		id := create(t, "11:00")

		_, err := u.Confirm(context.Background(), id)
		require.NoError(t, err)

		_, err = u.Confirm(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		id := create(t, "10:00")

		_, err := u.Cancel(context.Background(), id)
		require.NoError(t, err)

		_, err = u.Complete(context.Background(), id)
		assert.ErrorIs(t, err, ErrAppointmentFinalized)

		_, err = u.Cancel(context.Background(), id)
		assert.ErrorIs(t, err, ErrAppointmentFinalized)

		_, err = u.Confirm(context.Background(), id)
		assert.ErrorIs(t, err, ErrAppointmentFinalized)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := u.Complete(context.Background(), 9999)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestListActiveOrdered(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newAppointmentUsecase(t, db, testNow)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)

	slots := []struct {
		date string
		time string
	}{
		{"2026-03-20", "09:00"},
		{"2026-03-15", "14:00"},
		{"2026-03-15", "08:00"},
	}
	var ids []uint
	for _, slot := range slots {
		resp, err := u.Create(context.Background(), &dto.CreateAppointmentRequest{
			DoctorID:  doctor.ID,
			PatientID: patient.ID,
			Date:      slot.date,
			Time:      slot.time,
		})
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}

	// Cancelled appointments drop out of the listing
	_, err := u.Cancel(context.Background(), ids[0])
	require.NoError(t, err)

	list, err := u.ListActiveOrdered(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "2026-03-15", list.Appointments[0].Date)
	assert.Equal(t, "08:00", list.Appointments[0].Time)
	assert.Equal(t, "14:00", list.Appointments[1].Time)
}
