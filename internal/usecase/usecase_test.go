package usecase

import (
	"fmt"
	"testing"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUsecaseDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Specialization{},
		&entity.Qualification{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Appointment{},
		&entity.MedicalRecord{},
		&entity.Conversation{},
		&entity.Message{},
	)
	require.NoError(t, err)

	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor},
		{ID: entity.RoleIDPatient, RoleName: entity.RolePatient},
	}
	require.NoError(t, db.Create(&roles).Error)

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func seedUser(t *testing.T, db *gorm.DB, roleID int, active bool) *entity.User {
	user := &entity.User{
		ID:       uuid.New(),
		RoleID:   roleID,
		Username: fmt.Sprintf("user-%s", uuid.New().String()[:8]),
		Email:    fmt.Sprintf("%s@test.local", uuid.New().String()[:8]),
		Password: "not-a-real-hash",
		IsActive: active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedDoctor(t *testing.T, db *gorm.DB, active bool) *entity.Doctor {
	user := seedUser(t, db, entity.RoleIDDoctor, active)

	specialization := &entity.Specialization{
		Name: fmt.Sprintf("Specialization %s", uuid.New().String()[:8]),
	}
	require.NoError(t, db.Create(specialization).Error)

	doctor := &entity.Doctor{
		UserID:           user.ID,
		Name:             "Dr. Test",
		Email:            user.Email,
		OfficeNumber:     "101",
		SpecializationID: specialization.ID,
	}
	require.NoError(t, db.Create(doctor).Error)
	doctor.User = *user
	return doctor
}

func seedPatient(t *testing.T, db *gorm.DB, active bool) *entity.Patient {
	user := seedUser(t, db, entity.RoleIDPatient, active)

	patient := &entity.Patient{
		UserID:      user.ID,
		Name:        "Test Patient",
		DateOfBirth: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
		Gender:      entity.GenderFemale,
		PhoneNumber: "0812345678",
		Age:         35,
		BloodGroup:  "O+",
	}
	require.NoError(t, db.Create(patient).Error)
	patient.User = *user
	return patient
}
