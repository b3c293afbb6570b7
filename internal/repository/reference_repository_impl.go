package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type referenceRepository struct{}

func NewReferenceRepository() domainRepo.ReferenceRepository {
	return &referenceRepository{}
}

func (r *referenceRepository) FindSpecializationByID(db *gorm.DB, id uint) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := db.Where("id = ?", id).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *referenceRepository) FindQualificationsByIDs(db *gorm.DB, ids []uint) ([]entity.Qualification, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var qualifications []entity.Qualification
	err := db.Where("id IN ?", ids).Find(&qualifications).Error
	if err != nil {
		return nil, err
	}
	return qualifications, nil
}
