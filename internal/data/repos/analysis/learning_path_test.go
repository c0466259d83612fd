package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/placement-backend/internal/data/repos/testutil"
	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
)

func TestLearningPathRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewLearningPathRepo(db, testutil.Logger(t))
	dbc := dbctx.WithTx(context.Background(), tx)

	student := testutil.SeedStudent(t, dbc.Ctx, tx, "learningpath@example.com")
	other := testutil.SeedStudent(t, dbc.Ctx, tx, "learningpath-other@example.com")
	run := testutil.SeedAnalysis(t, dbc.Ctx, tx, student.ID, true)

	created, err := repo.Create(dbc, []*types.SkillLearningPath{
		{
			StudentID:               student.ID,
			GapAnalysisID:           run.ID,
			SkillName:               "Docker",
			CurrentLevel:            types.ProficiencyBeginner,
			TargetLevel:             types.ProficiencyIntermediate,
			Status:                  types.PathStatusNotStarted,
			EstimatedCompletionDate: time.Now().UTC().AddDate(0, 0, 28),
		},
		{
			StudentID:               student.ID,
			GapAnalysisID:           run.ID,
			SkillName:               "AWS",
			CurrentLevel:            types.ProficiencyBeginner,
			TargetLevel:             types.ProficiencyIntermediate,
			Status:                  types.PathStatusNotStarted,
			EstimatedCompletionDate: time.Now().UTC().AddDate(0, 0, 28),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Create: expected 2 rows, got %d", len(created))
	}

	byStudent, err := repo.ListByStudent(dbc, student.ID)
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(byStudent) != 2 {
		t.Fatalf("ListByStudent: expected 2 rows, got %d", len(byStudent))
	}

	byAnalysis, err := repo.ListByAnalysis(dbc, run.ID)
	if err != nil {
		t.Fatalf("ListByAnalysis: %v", err)
	}
	if len(byAnalysis) != 2 || byAnalysis[0].SkillName != "AWS" {
		t.Fatalf("ListByAnalysis: expected skill-name order, got %+v", byAnalysis)
	}

	owned, err := repo.GetOwned(dbc, created[0].ID, student.ID)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if owned == nil || owned.ID != created[0].ID {
		t.Fatalf("GetOwned: unexpected result: %+v", owned)
	}

	// Someone else's path reads the same as a missing one.
	owned, err = repo.GetOwned(dbc, created[0].ID, other.ID)
	if err != nil {
		t.Fatalf("GetOwned (wrong owner): %v", err)
	}
	if owned != nil {
		t.Fatalf("GetOwned (wrong owner): expected nil, got %+v", owned)
	}

	if err := repo.UpdateFields(dbc, created[0].ID, map[string]interface{}{
		"progress_percentage": 40,
		"status":              types.PathStatusInProgress,
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, err := repo.GetByID(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.ProgressPercentage != 40 || got.Status != types.PathStatusInProgress {
		t.Fatalf("GetByID: update not applied: %+v", got)
	}

	got, err = repo.GetByID(dbc, uuid.New())
	if err != nil {
		t.Fatalf("GetByID (missing): %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID (missing): expected nil, got %+v", got)
	}
}
