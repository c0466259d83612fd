package db

import (
	types "github.com/yungbote/placement-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.Student{},
		&types.DomainSkillRequirement{},
		&types.SkillGapAnalysis{},
		&types.SkillLearningPath{},
	); err != nil {
		return err
	}

	// Backstop for the single-active-analysis invariant: the orchestrator's
	// deactivate-then-insert runs in one transaction, and this index rejects
	// any interleaving that would leave two active rows for a student.
	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_skill_gap_analysis_single_active
ON skill_gap_analysis (student_id)
WHERE is_active
`).Error
}
