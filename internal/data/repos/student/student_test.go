package student

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/placement-backend/internal/data/repos/testutil"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
)

func TestStudentRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewRepo(db, testutil.Logger(t))
	dbc := dbctx.WithTx(context.Background(), tx)

	seeded := testutil.SeedStudent(t, dbc.Ctx, tx, "studentrepo@example.com")

	got, err := repo.GetByID(dbc, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.ID != seeded.ID {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}
	if len(got.Skills) != 2 {
		t.Fatalf("GetByID: expected 2 skills, got %d", len(got.Skills))
	}

	got, err = repo.GetByID(dbc, uuid.New())
	if err != nil {
		t.Fatalf("GetByID (missing): %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID (missing): expected nil, got %+v", got)
	}

	got, err = repo.GetByEmail(dbc, "STUDENTREPO@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got == nil || got.ID != seeded.ID {
		t.Fatalf("GetByEmail: unexpected result: %+v", got)
	}

	got, err = repo.GetByEmail(dbc, "missing@example.com")
	if err != nil {
		t.Fatalf("GetByEmail (missing): %v", err)
	}
	if got != nil {
		t.Fatalf("GetByEmail (missing): expected nil, got %+v", got)
	}
}
