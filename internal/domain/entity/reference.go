package entity

// Specialization is a named lookup entity referenced by doctors.
type Specialization struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Specialization) TableName() string {
	return "specializations"
}

// Qualification is a named lookup entity; doctors hold many of them.
type Qualification struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Qualification) TableName() string {
	return "qualifications"
}
