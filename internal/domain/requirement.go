package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WeightedSkill is one entry in a requirement set's skill lists.
type WeightedSkill struct {
	Skill          string  `json:"skill"`
	Weight         float64 `json:"weight"`
	MinProficiency string  `json:"min_proficiency,omitempty"`
}

// DomainSkillRequirement is one stored catalog row, unique per
// (domain, role, experience_level). Seeded out of band; read-only here.
// Salary range and demand score are display metadata, never scored.
type DomainSkillRequirement struct {
	ID               uuid.UUID                          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Domain           string                             `gorm:"column:domain;not null;index:idx_requirement_key,unique,priority:1" json:"domain"`
	Role             string                             `gorm:"column:role;not null;default:'';index:idx_requirement_key,unique,priority:2" json:"role"`
	ExperienceLevel  string                             `gorm:"column:experience_level;not null;default:'entry';index:idx_requirement_key,unique,priority:3" json:"experience_level"`
	CoreSkills       datatypes.JSONSlice[WeightedSkill] `gorm:"column:core_skills;type:jsonb" json:"core_skills"`
	PreferredSkills  datatypes.JSONSlice[WeightedSkill] `gorm:"column:preferred_skills;type:jsonb" json:"preferred_skills"`
	NiceToHaveSkills datatypes.JSONSlice[WeightedSkill] `gorm:"column:nice_to_have_skills;type:jsonb" json:"nice_to_have_skills"`
	SalaryRange      datatypes.JSON                     `gorm:"column:salary_range;type:jsonb" json:"salary_range,omitempty"`
	DemandScore      int                                `gorm:"column:demand_score;not null;default:0" json:"demand_score"`
	CreatedAt        time.Time                          `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time                          `gorm:"not null;default:now()" json:"updated_at"`
}

func (DomainSkillRequirement) TableName() string { return "domain_skill_requirement" }

// RequirementSet is the in-memory shape handed to the scorer and classifier,
// either loaded from a stored row or built from catalog defaults.
type RequirementSet struct {
	Domain           string          `json:"domain"`
	Role             string          `json:"role,omitempty"`
	ExperienceLevel  string          `json:"experience_level"`
	CoreSkills       []WeightedSkill `json:"core_skills"`
	PreferredSkills  []WeightedSkill `json:"preferred_skills"`
	NiceToHaveSkills []WeightedSkill `json:"nice_to_have_skills"`
}

func (r *DomainSkillRequirement) ToSet() RequirementSet {
	return RequirementSet{
		Domain:           r.Domain,
		Role:             r.Role,
		ExperienceLevel:  r.ExperienceLevel,
		CoreSkills:       []WeightedSkill(r.CoreSkills),
		PreferredSkills:  []WeightedSkill(r.PreferredSkills),
		NiceToHaveSkills: []WeightedSkill(r.NiceToHaveSkills),
	}
}
