package analysis

import (
	"github.com/google/uuid"

	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
)

// fakePathRepo is an in-memory LearningPathRepo for generator and tracker
// tests. Not safe for concurrent use.
type fakePathRepo struct {
	rows    []*types.SkillLearningPath
	updates map[uuid.UUID]map[string]interface{}
}

func newFakePathRepo() *fakePathRepo {
	return &fakePathRepo{updates: map[uuid.UUID]map[string]interface{}{}}
}

func (f *fakePathRepo) Create(_ dbctx.Context, rows []*types.SkillLearningPath) ([]*types.SkillLearningPath, error) {
	f.rows = append(f.rows, rows...)
	return rows, nil
}

func (f *fakePathRepo) GetByID(_ dbctx.Context, id uuid.UUID) (*types.SkillLearningPath, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakePathRepo) GetOwned(_ dbctx.Context, id uuid.UUID, studentID uuid.UUID) (*types.SkillLearningPath, error) {
	for _, r := range f.rows {
		if r.ID == id && r.StudentID == studentID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakePathRepo) ListByStudent(_ dbctx.Context, studentID uuid.UUID) ([]*types.SkillLearningPath, error) {
	var out []*types.SkillLearningPath
	for _, r := range f.rows {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePathRepo) ListByAnalysis(_ dbctx.Context, analysisID uuid.UUID) ([]*types.SkillLearningPath, error) {
	var out []*types.SkillLearningPath
	for _, r := range f.rows {
		if r.GapAnalysisID == analysisID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePathRepo) UpdateFields(_ dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	f.updates[id] = updates
	return nil
}
