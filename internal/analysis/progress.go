package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/placement-backend/internal/cache"
	repo "github.com/yungbote/placement-backend/internal/data/repos/analysis"
	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
	"github.com/yungbote/placement-backend/internal/platform/apierr"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

// ProgressUpdate carries the two independent update kinds; either or both
// may be present in one call. Unset fields leave the record untouched.
type ProgressUpdate struct {
	Progress       *int  `json:"progress,omitempty"`
	MilestoneIndex *int  `json:"milestone_index,omitempty"`
	Completed      *bool `json:"completed,omitempty"`
}

type ProgressTracker struct {
	paths repo.LearningPathRepo
	log   *logger.Logger
	cache *cache.Service
	now   func() time.Time
}

func NewProgressTracker(paths repo.LearningPathRepo, baseLog *logger.Logger, cacheSvc *cache.Service) *ProgressTracker {
	return &ProgressTracker{
		paths: paths,
		log:   baseLog.With("service", "ProgressTracker"),
		cache: cacheSvc,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// UpdateProgress applies a progress and/or milestone update to a path owned
// by studentID. Paths owned by other students read as not found.
func (t *ProgressTracker) UpdateProgress(ctx context.Context, pathID, studentID uuid.UUID, upd ProgressUpdate) (*types.SkillLearningPath, error) {
	row, err := t.paths.GetOwned(dbctx.New(ctx), pathID, studentID)
	if err != nil {
		return nil, apierr.AnalysisFailed(err)
	}
	if row == nil {
		return nil, apierr.NotFound(fmt.Errorf("learning path not found"))
	}

	updates := map[string]interface{}{}
	now := t.now()

	if upd.MilestoneIndex != nil {
		if upd.Completed == nil {
			return nil, apierr.InvalidInput(fmt.Errorf("completed is required with milestone_index"))
		}
		idx := *upd.MilestoneIndex
		if idx < 0 || idx >= len(row.Milestones) {
			return nil, apierr.InvalidInput(fmt.Errorf("milestone_index out of range"))
		}
		milestones := append([]types.Milestone(nil), row.Milestones...)
		milestones[idx].Completed = *upd.Completed
		if *upd.Completed {
			milestones[idx].CompletedDate = &now
		}
		// Un-completing keeps completed_date as a record of when it was
		// first finished.
		row.Milestones = datatypes.NewJSONSlice(milestones)
		updates["milestones"] = row.Milestones
	}

	if upd.Progress != nil {
		p := *upd.Progress
		if p < 0 {
			p = 0
		}
		switch {
		case p >= 100:
			row.ProgressPercentage = 100
			if row.Status != types.PathStatusCompleted {
				row.Status = types.PathStatusCompleted
				row.CompletedAt = &now
				updates["completed_at"] = now
			}
		case p > 0:
			row.ProgressPercentage = p
			if row.Status == types.PathStatusNotStarted {
				row.Status = types.PathStatusInProgress
				row.StartedAt = &now
				updates["started_at"] = now
			}
		default:
			row.ProgressPercentage = 0
		}
		updates["progress_percentage"] = row.ProgressPercentage
		updates["status"] = row.Status
	}

	if len(updates) == 0 {
		return row, nil
	}

	if err := t.paths.UpdateFields(dbctx.New(ctx), row.ID, updates); err != nil {
		return nil, apierr.AnalysisFailed(err)
	}
	row.UpdatedAt = now

	if err := t.cache.Delete(ctx, latestCacheKey(studentID)); err != nil {
		t.log.Warn("latest analysis cache invalidation failed", "error", err)
	}
	return row, nil
}
