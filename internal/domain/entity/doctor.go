package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a doctor profile bound to a user account
type Doctor struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name              string    `gorm:"type:varchar(100);not null" json:"name"`
	Email             string    `gorm:"type:varchar(255);not null" json:"email"`
	OfficeNumber      string    `gorm:"type:varchar(20);not null" json:"office_number"`
	SpecializationID  uint      `gorm:"not null;index" json:"specialization_id"`
	YearsOfExperience uint      `gorm:"not null;default:0" json:"years_of_experience"`
	ImagePath         string    `gorm:"type:varchar(255)" json:"image_path,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User           User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialization Specialization  `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
	Qualifications []Qualification `gorm:"many2many:doctor_qualifications" json:"qualifications,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
