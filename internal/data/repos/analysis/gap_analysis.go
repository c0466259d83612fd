package analysis

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

// GapAnalysisRepo persists analysis runs. Rows are append-only; the only
// mutation ever made after insert is flipping is_active off.
type GapAnalysisRepo interface {
	Create(dbc dbctx.Context, row *types.SkillGapAnalysis) (*types.SkillGapAnalysis, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SkillGapAnalysis, error)
	GetActiveByStudent(dbc dbctx.Context, studentID uuid.UUID) (*types.SkillGapAnalysis, error)
	ListByStudent(dbc dbctx.Context, studentID uuid.UUID, limit int) ([]*types.SkillGapAnalysis, error)
	DeactivateByStudent(dbc dbctx.Context, studentID uuid.UUID) error
}

type gapAnalysisRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGapAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) GapAnalysisRepo {
	return &gapAnalysisRepo{db: db, log: baseLog.With("repo", "GapAnalysisRepo")}
}

func (r *gapAnalysisRepo) Create(dbc dbctx.Context, row *types.SkillGapAnalysis) (*types.SkillGapAnalysis, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *gapAnalysisRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SkillGapAnalysis, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.SkillGapAnalysis
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *gapAnalysisRepo) GetActiveByStudent(dbc dbctx.Context, studentID uuid.UUID) (*types.SkillGapAnalysis, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if studentID == uuid.Nil {
		return nil, nil
	}
	var out []*types.SkillGapAnalysis
	if err := t.WithContext(dbc.Ctx).
		Where("student_id = ? AND is_active", studentID).
		Order("created_at DESC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *gapAnalysisRepo) ListByStudent(dbc dbctx.Context, studentID uuid.UUID, limit int) ([]*types.SkillGapAnalysis, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.SkillGapAnalysis
	if studentID == uuid.Nil {
		return out, nil
	}
	q := t.WithContext(dbc.Ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gapAnalysisRepo) DeactivateByStudent(dbc dbctx.Context, studentID uuid.UUID) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if studentID == uuid.Nil {
		return nil
	}
	return t.WithContext(dbc.Ctx).
		Model(&types.SkillGapAnalysis{}).
		Where("student_id = ? AND is_active", studentID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		}).Error
}
