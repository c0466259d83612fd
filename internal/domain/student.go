package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Student struct {
	ID             uuid.UUID                         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email          string                            `gorm:"column:email;not null;uniqueIndex" json:"email"`
	FirstName      string                            `gorm:"column:first_name;not null" json:"first_name"`
	LastName       string                            `gorm:"column:last_name;not null" json:"last_name"`
	Department     string                            `gorm:"column:department" json:"department,omitempty"`
	CGPA           float64                           `gorm:"column:cgpa" json:"cgpa,omitempty"`
	GraduationYear int                               `gorm:"column:graduation_year" json:"graduation_year,omitempty"`
	Skills         datatypes.JSONSlice[StudentSkill] `gorm:"column:skills;type:jsonb" json:"skills"`
	Experiences    datatypes.JSONSlice[Experience]   `gorm:"column:experiences;type:jsonb" json:"experiences"`
	Projects       datatypes.JSONSlice[Project]      `gorm:"column:projects;type:jsonb" json:"projects"`
	CreatedAt      time.Time                         `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time                         `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt      gorm.DeletedAt                    `gorm:"index" json:"deleted_at,omitempty"`
}

func (Student) TableName() string { return "student" }

// StudentSkill is the stored shape of one profile skill. Proficiency may be
// blank in older records; normalize before it reaches scoring.
type StudentSkill struct {
	Name              string  `json:"name"`
	ProficiencyLevel  string  `json:"proficiency_level,omitempty"`
	YearsOfExperience float64 `json:"years_of_experience,omitempty"`
	Category          string  `json:"category,omitempty"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	Months      int    `json:"months,omitempty"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}
