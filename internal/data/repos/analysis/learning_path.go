package analysis

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

type LearningPathRepo interface {
	Create(dbc dbctx.Context, rows []*types.SkillLearningPath) ([]*types.SkillLearningPath, error)

	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SkillLearningPath, error)
	// GetOwned loads a path only when it belongs to studentID; a path owned
	// by someone else reads the same as one that does not exist.
	GetOwned(dbc dbctx.Context, id uuid.UUID, studentID uuid.UUID) (*types.SkillLearningPath, error)

	ListByStudent(dbc dbctx.Context, studentID uuid.UUID) ([]*types.SkillLearningPath, error)
	ListByAnalysis(dbc dbctx.Context, analysisID uuid.UUID) ([]*types.SkillLearningPath, error)

	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
}

type learningPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	return &learningPathRepo{db: db, log: baseLog.With("repo", "LearningPathRepo")}
}

func (r *learningPathRepo) Create(dbc dbctx.Context, rows []*types.SkillLearningPath) ([]*types.SkillLearningPath, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.SkillLearningPath{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *learningPathRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SkillLearningPath, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.SkillLearningPath
	if err := t.WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *learningPathRepo) GetOwned(dbc dbctx.Context, id uuid.UUID, studentID uuid.UUID) (*types.SkillLearningPath, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil || studentID == uuid.Nil {
		return nil, nil
	}
	var out []*types.SkillLearningPath
	if err := t.WithContext(dbc.Ctx).
		Where("id = ? AND student_id = ?", id, studentID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *learningPathRepo) ListByStudent(dbc dbctx.Context, studentID uuid.UUID) ([]*types.SkillLearningPath, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.SkillLearningPath
	if studentID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *learningPathRepo) ListByAnalysis(dbc dbctx.Context, analysisID uuid.UUID) ([]*types.SkillLearningPath, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.SkillLearningPath
	if analysisID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("gap_analysis_id = ?", analysisID).
		Order("skill_name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *learningPathRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	return t.WithContext(dbc.Ctx).
		Model(&types.SkillLearningPath{}).
		Where("id = ?", id).
		Updates(updates).Error
}
