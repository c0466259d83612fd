package analysis

import (
	"strings"

	"gorm.io/gorm"

	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

// RequirementRepo reads the stored requirement catalog. Rows are seeded and
// maintained out of band; nothing here writes.
type RequirementRepo interface {
	// GetByKey looks up an exact (domain, role, experienceLevel) row, then a
	// domain-level row with empty role. A nil result is not an error; the
	// catalog layers built-in defaults on top.
	GetByKey(dbc dbctx.Context, domain, role, experienceLevel string) (*types.DomainSkillRequirement, error)
	ListAll(dbc dbctx.Context) ([]*types.DomainSkillRequirement, error)
}

type requirementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRequirementRepo(db *gorm.DB, baseLog *logger.Logger) RequirementRepo {
	return &requirementRepo{db: db, log: baseLog.With("repo", "RequirementRepo")}
}

func (r *requirementRepo) GetByKey(dbc dbctx.Context, domain, role, experienceLevel string) (*types.DomainSkillRequirement, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, nil
	}
	role = strings.TrimSpace(role)
	experienceLevel = strings.TrimSpace(experienceLevel)
	if experienceLevel == "" {
		experienceLevel = "entry"
	}

	var out []*types.DomainSkillRequirement
	q := t.WithContext(dbc.Ctx).
		Where("lower(domain) = ? AND experience_level = ?", strings.ToLower(domain), experienceLevel)
	order := "role ASC" // empty role sorts first, so the domain-level row wins
	if role != "" {
		q = q.Where("lower(role) IN ?", []string{strings.ToLower(role), ""})
		order = "role DESC"
	}
	if err := q.Order(order).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *requirementRepo) ListAll(dbc dbctx.Context) ([]*types.DomainSkillRequirement, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.DomainSkillRequirement
	if err := t.WithContext(dbc.Ctx).
		Order("domain ASC, role ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
