package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUnsupportedImageType = errors.New("image must be a PNG or JPEG")

type DoctorUsecase interface {
	List(ctx context.Context) (*dto.DoctorListResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	UploadImage(ctx context.Context, id uint, contentType string, content io.Reader) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	store      *storage.LocalStore
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	store *storage.LocalStore,
) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		store:      store,
	}
}

// List returns the public doctor directory.
func (u *doctorUsecase) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

// UploadImage stores a profile image under doctors/ and records its relative
// path on the doctor row. A previously stored image is removed afterwards.
func (u *doctorUsecase) UploadImage(ctx context.Context, id uint, contentType string, content io.Reader) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	ext, ok := storage.ExtensionFor(contentType)
	if !ok {
		return nil, ErrUnsupportedImageType
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	path, err := u.store.Save("doctors", name, content)
	if err != nil {
		u.log.Warnf("Failed to store doctor image: %+v", err)
		return nil, err
	}

	if err := u.doctorRepo.UpdateImagePath(db, id, path); err != nil {
		u.log.Warnf("Failed to update doctor %d image path: %+v", id, err)
		if removeErr := u.store.Remove(path); removeErr != nil {
			u.log.Warnf("Failed to remove orphaned image %s: %+v", path, removeErr)
		}
		return nil, err
	}

	if doctor.ImagePath != "" {
		if err := u.store.Remove(doctor.ImagePath); err != nil {
			u.log.Warnf("Failed to remove previous image %s (non-fatal): %+v", doctor.ImagePath, err)
		}
	}

	doctor.ImagePath = path
	return converter.DoctorToResponse(doctor), nil
}
