package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

// ReferenceRepository serves the specialization and qualification lookup tables.
type ReferenceRepository interface {
	FindSpecializationByID(db *gorm.DB, id uint) (*entity.Specialization, error)
	FindQualificationsByIDs(db *gorm.DB, ids []uint) ([]entity.Qualification, error)
}
