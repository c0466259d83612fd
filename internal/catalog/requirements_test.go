package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

type fakeRequirementRepo struct {
	rows []*types.DomainSkillRequirement
	err  error
}

func (f *fakeRequirementRepo) GetByKey(_ dbctx.Context, domain, role, _ string) (*types.DomainSkillRequirement, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rows {
		if r.Domain == domain && r.Role == role {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRequirementRepo) ListAll(_ dbctx.Context) ([]*types.DomainSkillRequirement, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func catalogLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	return log
}

func TestGetRequirementsStoredRowWins(t *testing.T) {
	stored := &types.DomainSkillRequirement{
		ID:              uuid.New(),
		Domain:          "Cloud Engineering",
		Role:            "Platform Engineer",
		ExperienceLevel: "entry",
		CoreSkills: datatypes.NewJSONSlice([]types.WeightedSkill{
			{Skill: "Kubernetes", Weight: 20},
		}),
	}
	p := NewRequirementProvider(&fakeRequirementRepo{rows: []*types.DomainSkillRequirement{stored}}, catalogLogger(t))

	got := p.GetRequirements(dbctx.New(context.Background()), "Cloud Engineering", "Platform Engineer", "entry")

	assert.Equal(t, "Cloud Engineering", got.Domain)
	require.Len(t, got.CoreSkills, 1)
	assert.Equal(t, "Kubernetes", got.CoreSkills[0].Skill)
}

func TestGetRequirementsDefaults(t *testing.T) {
	p := NewRequirementProvider(&fakeRequirementRepo{}, catalogLogger(t))
	dbc := dbctx.New(context.Background())

	ds := p.GetRequirements(dbc, "Data Scientist", "", "")
	assert.Equal(t, "Data Scientist", ds.Domain)
	assert.Equal(t, "entry", ds.ExperienceLevel)
	assert.NotEmpty(t, ds.CoreSkills)

	// Unrecognized domains fall back to the Software Engineer set but keep
	// the requested label.
	other := p.GetRequirements(dbc, "Underwater Robotics", "Pilot", "entry")
	assert.Equal(t, "Underwater Robotics", other.Domain)
	assert.Equal(t, "Pilot", other.Role)
	se := p.GetRequirements(dbc, "Software Engineer", "", "entry")
	assert.Equal(t, se.CoreSkills, other.CoreSkills)
}

func TestGetRequirementsRepoErrorFallsBack(t *testing.T) {
	p := NewRequirementProvider(&fakeRequirementRepo{err: errors.New("db down")}, catalogLogger(t))

	got := p.GetRequirements(dbctx.New(context.Background()), "Software Engineer", "", "entry")

	assert.Equal(t, "Software Engineer", got.Domain)
	assert.NotEmpty(t, got.CoreSkills)
}

func TestDomains(t *testing.T) {
	stored := &types.DomainSkillRequirement{
		ID:     uuid.New(),
		Domain: "Software Engineer",
		Role:   "Mobile Developer",
	}
	extra := &types.DomainSkillRequirement{
		ID:     uuid.New(),
		Domain: "Cybersecurity",
		Role:   "Security Analyst",
	}
	p := NewRequirementProvider(&fakeRequirementRepo{rows: []*types.DomainSkillRequirement{stored, extra}}, catalogLogger(t))

	got := p.Domains(dbctx.New(context.Background()))

	assert.Contains(t, got, "Software Engineer")
	assert.Contains(t, got, "Data Scientist")
	assert.Contains(t, got["Software Engineer"], "Mobile Developer")
	assert.Contains(t, got["Software Engineer"], "Backend Developer")
	assert.Equal(t, []string{"Security Analyst"}, got["Cybersecurity"])
	assert.IsNonDecreasing(t, got["Software Engineer"])
}

func TestDomainsRepoErrorServesDefaults(t *testing.T) {
	p := NewRequirementProvider(&fakeRequirementRepo{err: errors.New("db down")}, catalogLogger(t))

	got := p.Domains(dbctx.New(context.Background()))

	assert.Contains(t, got, "Software Engineer")
	assert.Contains(t, got, "Data Scientist")
	assert.Len(t, got, 2)
}
