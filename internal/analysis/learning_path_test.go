package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/placement-backend/internal/catalog"
	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
)

func newTestGenerator(t *testing.T, repo *fakePathRepo, now time.Time) *PathGenerator {
	t.Helper()
	g := NewPathGenerator(repo, catalog.NewResourceProvider(), testLogger(t))
	g.now = func() time.Time { return now }
	return g
}

func TestGenerate(t *testing.T) {
	repo := newFakePathRepo()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := newTestGenerator(t, repo, now)

	studentID := uuid.New()
	analysisID := uuid.New()

	rows, err := g.Generate(dbctx.New(context.Background()), studentID, analysisID, []types.MissingSkill{
		{Skill: "Docker", EstimatedLearningTime: "3 weeks"},
		{Skill: "   "},
		{Skill: "Machine Learning", EstimatedLearningTime: "unclear"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	docker := rows[0]
	assert.Equal(t, studentID, docker.StudentID)
	assert.Equal(t, analysisID, docker.GapAnalysisID)
	assert.Equal(t, "Docker", docker.SkillName)
	assert.Equal(t, types.ProficiencyBeginner, docker.CurrentLevel)
	assert.Equal(t, types.ProficiencyIntermediate, docker.TargetLevel)
	assert.Equal(t, types.PathStatusNotStarted, docker.Status)
	assert.Equal(t, 0, docker.ProgressPercentage)
	assert.Equal(t, now.AddDate(0, 0, 21), docker.EstimatedCompletionDate)
	require.Len(t, docker.Milestones, 3)
	assert.Equal(t, "Week 1: Learn Docker Basics", docker.Milestones[0].Title)
	assert.Equal(t, now.AddDate(0, 0, 7), docker.Milestones[0].DueDate)
	assert.Equal(t, now.AddDate(0, 0, 21), docker.Milestones[2].DueDate)
	assert.NotEmpty(t, docker.LearningResources)

	// Unparseable estimate gets the 4 week default.
	ml := rows[1]
	assert.Equal(t, now.AddDate(0, 0, 28), ml.EstimatedCompletionDate)
	require.Len(t, ml.Milestones, 4)

	assert.Len(t, repo.rows, 2)
}

func TestGenerateNothingToDo(t *testing.T) {
	repo := newFakePathRepo()
	g := newTestGenerator(t, repo, time.Now().UTC())

	rows, err := g.Generate(dbctx.New(context.Background()), uuid.New(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, repo.rows)
}

func TestParseEstimatedWeeks(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3 weeks", 3},
		{"12 weeks", 12},
		{" 6 weeks ", 6},
		{"2-3 months", 2},
		{"a few weeks", 4},
		{"", 4},
		{"0 weeks", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseEstimatedWeeks(tt.in), "input %q", tt.in)
	}
}

func TestBuildMilestones(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	long := BuildMilestones("AWS", 20, now)
	require.Len(t, long, 8)
	assert.Equal(t, "Week 8: Learn AWS Basics", long[7].Title)
	assert.Equal(t, now.AddDate(0, 0, 56), long[7].DueDate)

	short := BuildMilestones("SQL", 0, now)
	require.Len(t, short, 1)
	assert.Equal(t, now.AddDate(0, 0, 7), short[0].DueDate)

	for i, m := range BuildMilestones("Git", 3, now) {
		assert.False(t, m.Completed)
		assert.Nil(t, m.CompletedDate)
		assert.Equal(t, now.AddDate(0, 0, (i+1)*7), m.DueDate)
	}
}
