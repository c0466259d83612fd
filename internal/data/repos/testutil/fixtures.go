package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	types "github.com/yungbote/placement-backend/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func SeedStudent(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.Student {
	tb.Helper()
	s := &types.Student{
		ID:        uuid.New(),
		Email:     email,
		FirstName: "A",
		LastName:  "B",
		Skills: datatypes.NewJSONSlice([]types.StudentSkill{
			{Name: "JavaScript", ProficiencyLevel: types.ProficiencyAdvanced},
			{Name: "SQL", ProficiencyLevel: types.ProficiencyIntermediate},
		}),
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return s
}

func SeedRequirement(tb testing.TB, ctx context.Context, tx *gorm.DB, domain, role string) *types.DomainSkillRequirement {
	tb.Helper()
	r := &types.DomainSkillRequirement{
		ID:              uuid.New(),
		Domain:          domain,
		Role:            role,
		ExperienceLevel: "entry",
		CoreSkills: datatypes.NewJSONSlice([]types.WeightedSkill{
			{Skill: "JavaScript", Weight: 10},
			{Skill: "SQL", Weight: 5},
			{Skill: "Docker", Weight: 5},
		}),
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed requirement: %v", err)
	}
	return r
}

func SeedAnalysis(tb testing.TB, ctx context.Context, tx *gorm.DB, studentID uuid.UUID, active bool) *types.SkillGapAnalysis {
	tb.Helper()
	a := &types.SkillGapAnalysis{
		ID:                    uuid.New(),
		StudentID:             studentID,
		TargetDomain:          "Full Stack Development",
		OverallReadinessScore: 60,
		MarketAlignmentScore:  60,
		IsActive:              active,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed analysis: %v", err)
	}
	return a
}

func SeedLearningPath(tb testing.TB, ctx context.Context, tx *gorm.DB, studentID, analysisID uuid.UUID, skill string) *types.SkillLearningPath {
	tb.Helper()
	p := &types.SkillLearningPath{
		ID:            uuid.New(),
		StudentID:     studentID,
		GapAnalysisID: analysisID,
		SkillName:     skill,
		CurrentLevel:  types.ProficiencyBeginner,
		TargetLevel:   types.ProficiencyIntermediate,
		Milestones: datatypes.NewJSONSlice([]types.Milestone{
			{Title: "Week 1: Learn " + skill + " Basics", DueDate: time.Now().UTC().AddDate(0, 0, 7)},
			{Title: "Week 2: Practice " + skill, DueDate: time.Now().UTC().AddDate(0, 0, 14)},
		}),
		Status:                  types.PathStatusNotStarted,
		EstimatedCompletionDate: time.Now().UTC().AddDate(0, 0, 28),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed learning path: %v", err)
	}
	return p
}

func PtrInt(v int) *int { return &v }

func PtrBool(v bool) *bool { return &v }
