package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MissingSkill struct {
	Skill                 string `json:"skill"`
	Priority              string `json:"priority,omitempty"`
	Reasoning             string `json:"reasoning,omitempty"`
	Difficulty            string `json:"difficulty,omitempty"`
	EstimatedLearningTime string `json:"estimated_learning_time,omitempty"`
}

type SkillToImprove struct {
	Skill         string `json:"skill"`
	CurrentLevel  string `json:"current_level,omitempty"`
	RequiredLevel string `json:"required_level,omitempty"`
	Priority      string `json:"priority,omitempty"`
	Reasoning     string `json:"reasoning,omitempty"`
}

type StrongSkill struct {
	Skill          string `json:"skill"`
	StrengthLevel  string `json:"strength_level,omitempty"`
	MarketDemand   string `json:"market_demand,omitempty"`
	LeverageAdvice string `json:"leverage_advice,omitempty"`
}

// LearningResource is one recommended course or certification.
type LearningResource struct {
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
	URL      string `json:"url,omitempty"`
	Type     string `json:"type,omitempty"` // course | certification
	Free     bool   `json:"free,omitempty"`
}

// SkillGapAnalysis is one versioned analysis run. Immutable once written
// except for IsActive; never deleted. At most one row per student may have
// is_active=true (partial unique index, see db migrate).
type SkillGapAnalysis struct {
	ID                        uuid.UUID                             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID                 uuid.UUID                             `gorm:"type:uuid;not null;index" json:"student_id"`
	Student                   *Student                              `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentID;references:ID" json:"student,omitempty"`
	TargetDomain              string                                `gorm:"column:target_domain;not null" json:"target_domain"`
	TargetRole                string                                `gorm:"column:target_role" json:"target_role,omitempty"`
	CurrentSkills             datatypes.JSONSlice[SkillSnapshot]    `gorm:"column:current_skills;type:jsonb" json:"current_skills"`
	OverallReadinessScore     int                                   `gorm:"column:overall_readiness_score;not null;default:0" json:"overall_readiness_score"`
	MissingSkills             datatypes.JSONSlice[MissingSkill]     `gorm:"column:missing_skills;type:jsonb" json:"missing_skills"`
	SkillsToImprove           datatypes.JSONSlice[SkillToImprove]   `gorm:"column:skills_to_improve;type:jsonb" json:"skills_to_improve"`
	StrongSkills              datatypes.JSONSlice[StrongSkill]      `gorm:"column:strong_skills;type:jsonb" json:"strong_skills"`
	AnalysisSummary           string                                `gorm:"column:analysis_summary;type:text" json:"analysis_summary,omitempty"`
	PriorityLearningPath      datatypes.JSONSlice[string]           `gorm:"column:priority_learning_path;type:jsonb" json:"priority_learning_path"`
	CareerAdvice              string                                `gorm:"column:career_advice;type:text" json:"career_advice,omitempty"`
	MarketAlignmentScore      int                                   `gorm:"column:market_alignment_score;not null;default:0" json:"market_alignment_score"`
	RecommendedCourses        datatypes.JSONSlice[LearningResource] `gorm:"column:recommended_courses;type:jsonb" json:"recommended_courses"`
	RecommendedCertifications datatypes.JSONSlice[LearningResource] `gorm:"column:recommended_certifications;type:jsonb" json:"recommended_certifications"`
	EstimatedTimeToReady      int                                   `gorm:"column:estimated_time_to_ready;not null;default:0" json:"estimated_time_to_ready"`
	IsActive                  bool                                  `gorm:"column:is_active;not null;default:false" json:"is_active"`
	CreatedAt                 time.Time                             `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt                 time.Time                             `gorm:"not null;default:now()" json:"updated_at"`
}

func (SkillGapAnalysis) TableName() string { return "skill_gap_analysis" }
