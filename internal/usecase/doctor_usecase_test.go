package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clinic-management-api/internal/infrastructure/storage"
	"clinic-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDoctorUsecase(t *testing.T, db *gorm.DB) DoctorUsecase {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return NewDoctorUsecase(db, testLogger(), repository.NewDoctorRepository(), store)
}

func TestListDoctors(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newDoctorUsecase(t, db)

	seedDoctor(t, db, true)
	seedDoctor(t, db, true)

	list, err := u.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.NotEmpty(t, list.Doctors[0].Specialization)
}

func TestGetDoctorByID(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newDoctorUsecase(t, db)

	doctor := seedDoctor(t, db, true)

	resp, err := u.GetByID(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, doctor.Name, resp.Name)
	assert.Equal(t, doctor.OfficeNumber, resp.OfficeNumber)

	_, err = u.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestUploadDoctorImage(t *testing.T) {
	db := setupUsecaseDB(t)

	mediaDir := t.TempDir()
	store, err := storage.NewLocalStore(mediaDir)
	require.NoError(t, err)
	u := NewDoctorUsecase(db, testLogger(), repository.NewDoctorRepository(), store)

	doctor := seedDoctor(t, db, true)

	resp, err := u.UploadImage(context.Background(), doctor.ID, "image/png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.ImagePath, "doctors/"))
	assert.True(t, strings.HasSuffix(resp.ImagePath, ".png"))

	_, err = os.Stat(filepath.Join(mediaDir, resp.ImagePath))
	assert.NoError(t, err)

	// Replacing the image removes the previous file
	previous := resp.ImagePath
	resp, err = u.UploadImage(context.Background(), doctor.ID, "image/jpeg", strings.NewReader("fake jpeg bytes"))
	require.NoError(t, err)
	assert.NotEqual(t, previous, resp.ImagePath)
	_, err = os.Stat(filepath.Join(mediaDir, previous))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadDoctorImage_UnsupportedType(t *testing.T) {
	db := setupUsecaseDB(t)
	u := newDoctorUsecase(t, db)

	doctor := seedDoctor(t, db, true)

	_, err := u.UploadImage(context.Background(), doctor.ID, "text/plain", strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImageType)

	_, err = u.UploadImage(context.Background(), 999, "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
