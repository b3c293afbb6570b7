package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient profile bound to a user account
type Patient struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string    `gorm:"type:char(1);not null" json:"gender"`
	PhoneNumber string    `gorm:"type:varchar(20);not null;index" json:"phone_number"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Age         uint      `gorm:"not null" json:"age"`
	BloodGroup  string    `gorm:"type:varchar(3);not null" json:"blood_group"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)
