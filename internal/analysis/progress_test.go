package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/platform/apierr"
)

func newTestTracker(t *testing.T, repo *fakePathRepo, now time.Time) *ProgressTracker {
	t.Helper()
	tr := NewProgressTracker(repo, testLogger(t), nil)
	tr.now = func() time.Time { return now }
	return tr
}

func seedPath(repo *fakePathRepo, studentID uuid.UUID, milestones int) *types.SkillLearningPath {
	ms := make([]types.Milestone, 0, milestones)
	for i := 0; i < milestones; i++ {
		ms = append(ms, types.Milestone{Title: "m", DueDate: time.Now().UTC()})
	}
	row := &types.SkillLearningPath{
		ID:         uuid.New(),
		StudentID:  studentID,
		SkillName:  "Docker",
		Milestones: datatypes.NewJSONSlice(ms),
		Status:     types.PathStatusNotStarted,
	}
	repo.rows = append(repo.rows, row)
	return row
}

func TestUpdateProgressStartsPath(t *testing.T) {
	repo := newFakePathRepo()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, repo, now)

	studentID := uuid.New()
	row := seedPath(repo, studentID, 2)

	got, err := tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{Progress: ptrInt(30)})
	require.NoError(t, err)

	assert.Equal(t, 30, got.ProgressPercentage)
	assert.Equal(t, types.PathStatusInProgress, got.Status)
	require.NotNil(t, got.StartedAt)
	assert.Equal(t, now, *got.StartedAt)
	assert.Nil(t, got.CompletedAt)

	updates := repo.updates[row.ID]
	require.NotNil(t, updates)
	assert.Equal(t, now, updates["started_at"])
}

func TestUpdateProgressStartedAtSetOnce(t *testing.T) {
	repo := newFakePathRepo()
	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, repo, first)

	studentID := uuid.New()
	row := seedPath(repo, studentID, 1)

	_, err := tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{Progress: ptrInt(10)})
	require.NoError(t, err)

	tr.now = func() time.Time { return first.Add(48 * time.Hour) }
	got, err := tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{Progress: ptrInt(50)})
	require.NoError(t, err)

	assert.Equal(t, 50, got.ProgressPercentage)
	require.NotNil(t, got.StartedAt)
	assert.Equal(t, first, *got.StartedAt)
	_, resent := repo.updates[row.ID]["started_at"]
	assert.False(t, resent)
}

func TestUpdateProgressCompletes(t *testing.T) {
	repo := newFakePathRepo()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, repo, now)

	studentID := uuid.New()
	row := seedPath(repo, studentID, 1)

	// Jumping straight to done skips in_progress entirely.
	got, err := tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{Progress: ptrInt(120)})
	require.NoError(t, err)

	assert.Equal(t, 100, got.ProgressPercentage)
	assert.Equal(t, types.PathStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, now, *got.CompletedAt)
	assert.Nil(t, got.StartedAt)

	// Re-sending 100 keeps the original completion time.
	tr.now = func() time.Time { return now.Add(time.Hour) }
	got, err = tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{Progress: ptrInt(100)})
	require.NoError(t, err)
	assert.Equal(t, now, *got.CompletedAt)
}

func TestUpdateProgressClampsNegative(t *testing.T) {
	repo := newFakePathRepo()
	tr := newTestTracker(t, repo, time.Now().UTC())

	studentID := uuid.New()
	row := seedPath(repo, studentID, 1)

	got, err := tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{Progress: ptrInt(-5)})
	require.NoError(t, err)

	assert.Equal(t, 0, got.ProgressPercentage)
	assert.Equal(t, types.PathStatusNotStarted, got.Status)
	assert.Nil(t, got.StartedAt)
}

func TestUpdateProgressMilestoneToggle(t *testing.T) {
	repo := newFakePathRepo()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, repo, now)

	studentID := uuid.New()
	row := seedPath(repo, studentID, 3)

	got, err := tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{
		MilestoneIndex: ptrInt(1),
		Completed:      ptrBool(true),
	})
	require.NoError(t, err)

	assert.True(t, got.Milestones[1].Completed)
	require.NotNil(t, got.Milestones[1].CompletedDate)
	assert.Equal(t, now, *got.Milestones[1].CompletedDate)
	assert.False(t, got.Milestones[0].Completed)
	assert.False(t, got.Milestones[2].Completed)
	// Milestone updates never touch overall progress.
	assert.Equal(t, 0, got.ProgressPercentage)
	assert.Equal(t, types.PathStatusNotStarted, got.Status)

	// Un-completing clears the flag but keeps the completion date.
	got, err = tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{
		MilestoneIndex: ptrInt(1),
		Completed:      ptrBool(false),
	})
	require.NoError(t, err)
	assert.False(t, got.Milestones[1].Completed)
	require.NotNil(t, got.Milestones[1].CompletedDate)
	assert.Equal(t, now, *got.Milestones[1].CompletedDate)
}

func TestUpdateProgressValidation(t *testing.T) {
	repo := newFakePathRepo()
	tr := newTestTracker(t, repo, time.Now().UTC())

	studentID := uuid.New()
	row := seedPath(repo, studentID, 2)

	_, err := tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{
		MilestoneIndex: ptrInt(0),
	})
	requireAPIErrCode(t, err, apierr.CodeInvalidInput)

	_, err = tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{
		MilestoneIndex: ptrInt(2),
		Completed:      ptrBool(true),
	})
	requireAPIErrCode(t, err, apierr.CodeInvalidInput)

	_, err = tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{
		MilestoneIndex: ptrInt(-1),
		Completed:      ptrBool(true),
	})
	requireAPIErrCode(t, err, apierr.CodeInvalidInput)
}

func TestUpdateProgressOwnership(t *testing.T) {
	repo := newFakePathRepo()
	tr := newTestTracker(t, repo, time.Now().UTC())

	row := seedPath(repo, uuid.New(), 1)

	_, err := tr.UpdateProgress(context.Background(), row.ID, uuid.New(), ProgressUpdate{Progress: ptrInt(10)})
	requireAPIErrCode(t, err, apierr.CodeNotFound)

	_, err = tr.UpdateProgress(context.Background(), uuid.New(), row.StudentID, ProgressUpdate{Progress: ptrInt(10)})
	requireAPIErrCode(t, err, apierr.CodeNotFound)
}

func TestUpdateProgressNoFields(t *testing.T) {
	repo := newFakePathRepo()
	tr := newTestTracker(t, repo, time.Now().UTC())

	studentID := uuid.New()
	row := seedPath(repo, studentID, 1)

	got, err := tr.UpdateProgress(context.Background(), row.ID, studentID, ProgressUpdate{})
	require.NoError(t, err)
	assert.Equal(t, row.ID, got.ID)
	assert.Empty(t, repo.updates)
}

func requireAPIErrCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var apiErr *apierr.Error
	require.True(t, errors.As(err, &apiErr), "expected apierr.Error, got %T", err)
	assert.Equal(t, code, apiErr.Code)
}

func ptrInt(v int) *int { return &v }

func ptrBool(v bool) *bool { return &v }
