package usecase

import (
	"context"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMedicalRecordUsecase(db *gorm.DB) MedicalRecordUsecase {
	return NewMedicalRecordUsecase(
		db,
		testLogger(),
		repository.NewMedicalRecordRepository(),
		repository.NewDoctorRepository(),
		repository.NewPatientRepository(),
	)
}

func TestCreateMedicalRecord(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newMedicalRecordUsecase(db)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)

	resp, err := u.Create(context.Background(), &dto.CreateMedicalRecordRequest{
		DoctorID:    doctor.ID,
		PatientID:   patient.ID,
		Description: "Annual checkup, no findings",
	})
	require.NoError(t, err)
	assert.Equal(t, "Annual checkup, no findings", resp.Description)
	assert.Equal(t, doctor.Name, resp.DoctorName)
}

func TestCreateMedicalRecord_UnknownParticipants(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newMedicalRecordUsecase(db)

	patient := seedPatient(t, db, true)

	_, err := u.Create(context.Background(), &dto.CreateMedicalRecordRequest{
		DoctorID:    999,
		PatientID:   patient.ID,
		Description: "x",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	doctor := seedDoctor(t, db, true)
	_, err = u.Create(context.Background(), &dto.CreateMedicalRecordRequest{
		DoctorID:    doctor.ID,
		PatientID:   999,
		Description: "x",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestListMedicalRecordsByPatient(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newMedicalRecordUsecase(db)

	doctor := seedDoctor(t, db, true)
	patient := seedPatient(t, db, true)
	otherPatient := seedPatient(t, db, true)

	for _, description := range []string{"first visit", "follow-up"} {
		_, err := u.Create(context.Background(), &dto.CreateMedicalRecordRequest{
			DoctorID:    doctor.ID,
			PatientID:   patient.ID,
			Description: description,
		})
		require.NoError(t, err)
	}
	_, err := u.Create(context.Background(), &dto.CreateMedicalRecordRequest{
		DoctorID:    doctor.ID,
		PatientID:   otherPatient.ID,
		Description: "other patient's visit",
	})
	require.NoError(t, err)

	list, err := u.ListByPatient(context.Background(), patient.ID)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "follow-up", list.Records[0].Description)
	assert.Equal(t, "first visit", list.Records[1].Description)

	_, err = u.ListByPatient(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
