package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Learning path statuses. Status is derived from progress by the tracker;
// abandoned is accepted on stored rows but never set by this core.
const (
	PathStatusNotStarted = "not_started"
	PathStatusInProgress = "in_progress"
	PathStatusCompleted  = "completed"
	PathStatusAbandoned  = "abandoned"
)

type Milestone struct {
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Completed     bool       `json:"completed"`
	DueDate       time.Time  `json:"due_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

// SkillLearningPath tracks remediation of one missing skill found by an
// analysis run. Mutated only by the progress tracker.
type SkillLearningPath struct {
	ID                      uuid.UUID                             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID               uuid.UUID                             `gorm:"type:uuid;not null;index" json:"student_id"`
	Student                 *Student                              `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentID;references:ID" json:"student,omitempty"`
	GapAnalysisID           uuid.UUID                             `gorm:"type:uuid;not null;index" json:"gap_analysis_id"`
	GapAnalysis             *SkillGapAnalysis                     `gorm:"constraint:OnDelete:CASCADE;foreignKey:GapAnalysisID;references:ID" json:"gap_analysis,omitempty"`
	SkillName               string                                `gorm:"column:skill_name;not null" json:"skill_name"`
	CurrentLevel            string                                `gorm:"column:current_level;not null;default:'beginner'" json:"current_level"`
	TargetLevel             string                                `gorm:"column:target_level;not null;default:'intermediate'" json:"target_level"`
	LearningResources       datatypes.JSONSlice[LearningResource] `gorm:"column:learning_resources;type:jsonb" json:"learning_resources"`
	Milestones              datatypes.JSONSlice[Milestone]        `gorm:"column:milestones;type:jsonb" json:"milestones"`
	ProgressPercentage      int                                   `gorm:"column:progress_percentage;not null;default:0" json:"progress_percentage"`
	Status                  string                                `gorm:"column:status;not null;default:'not_started'" json:"status"`
	StartedAt               *time.Time                            `gorm:"column:started_at" json:"started_at,omitempty"`
	CompletedAt             *time.Time                            `gorm:"column:completed_at" json:"completed_at,omitempty"`
	EstimatedCompletionDate time.Time                             `gorm:"column:estimated_completion_date" json:"estimated_completion_date"`
	CreatedAt               time.Time                             `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt               time.Time                             `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt               gorm.DeletedAt                        `gorm:"index" json:"deleted_at,omitempty"`
}

func (SkillLearningPath) TableName() string { return "skill_learning_path" }
