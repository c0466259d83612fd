package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/placement-backend/internal/cache"
	"github.com/yungbote/placement-backend/internal/catalog"
	repo "github.com/yungbote/placement-backend/internal/data/repos/analysis"
	studentrepo "github.com/yungbote/placement-backend/internal/data/repos/student"
	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
	"github.com/yungbote/placement-backend/internal/platform/apierr"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

const (
	defaultHistoryLimit = 10
	domainsCacheKey     = "analysis:domains"
	latestCacheTTL      = 5 * time.Minute
	domainsCacheTTL     = time.Hour
)

// LatestAnalysis is an active analysis together with the learning paths it
// produced.
type LatestAnalysis struct {
	Analysis      *types.SkillGapAnalysis    `json:"analysis"`
	LearningPaths []*types.SkillLearningPath `json:"learning_paths"`
}

// Service is the analysis orchestrator plus the read surface around it.
type Service interface {
	AnalyzeSkillGap(ctx context.Context, studentID uuid.UUID, targetDomain, targetRole string) (*LatestAnalysis, error)
	GetLatest(ctx context.Context, studentID uuid.UUID) (*LatestAnalysis, error)
	History(ctx context.Context, studentID uuid.UUID, limit int) ([]*types.SkillGapAnalysis, error)
	ListLearningPaths(ctx context.Context, studentID uuid.UUID) (map[string][]*types.SkillLearningPath, error)
	Domains(ctx context.Context) map[string][]string
}

type service struct {
	db           *gorm.DB
	log          *logger.Logger
	students     studentrepo.Repo
	analyses     repo.GapAnalysisRepo
	paths        repo.LearningPathRepo
	requirements catalog.RequirementProvider
	classifier   *Classifier
	generator    *PathGenerator
	cache        *cache.Service
}

func NewService(
	db *gorm.DB,
	baseLog *logger.Logger,
	students studentrepo.Repo,
	analyses repo.GapAnalysisRepo,
	paths repo.LearningPathRepo,
	requirements catalog.RequirementProvider,
	classifier *Classifier,
	generator *PathGenerator,
	cacheSvc *cache.Service,
) Service {
	return &service{
		db:           db,
		log:          baseLog.With("service", "AnalysisService"),
		students:     students,
		analyses:     analyses,
		paths:        paths,
		requirements: requirements,
		classifier:   classifier,
		generator:    generator,
		cache:        cacheSvc,
	}
}

func (s *service) AnalyzeSkillGap(ctx context.Context, studentID uuid.UUID, targetDomain, targetRole string) (*LatestAnalysis, error) {
	targetDomain = strings.TrimSpace(targetDomain)
	targetRole = strings.TrimSpace(targetRole)
	if targetDomain == "" {
		return nil, apierr.InvalidInput(fmt.Errorf("target_domain is required"))
	}

	student, err := s.students.GetByID(dbctx.New(ctx), studentID)
	if err != nil {
		return nil, apierr.AnalysisFailed(fmt.Errorf("load student: %w", err))
	}
	if student == nil {
		return nil, apierr.NotFound(fmt.Errorf("student profile not found"))
	}

	reqSet := s.requirements.GetRequirements(dbctx.New(ctx), targetDomain, targetRole, "entry")
	snapshot := types.NormalizeSkills(student.Skills)

	// The classifier absorbs its own failures; the readiness score is
	// computed independently so it survives any degradation.
	outcome := s.classifier.Classify(ctx, ClassificationInput{
		Student:      student,
		Skills:       snapshot,
		Requirements: reqSet,
		TargetDomain: targetDomain,
		TargetRole:   targetRole,
	})
	if outcome.State != OutcomeOK {
		s.log.Warn("classification degraded", "state", outcome.State, "student_id", studentID.String())
	}
	readiness := Score(snapshot, reqSet)

	skillNames := make([]string, 0, len(outcome.Result.MissingSkills)+len(outcome.Result.SkillsToImprove))
	for _, ms := range outcome.Result.MissingSkills {
		skillNames = append(skillNames, ms.Skill)
	}
	for _, si := range outcome.Result.SkillsToImprove {
		skillNames = append(skillNames, si.Skill)
	}
	bundle := s.generator.resources.BundleFor(skillNames)

	row := &types.SkillGapAnalysis{
		ID:                        uuid.New(),
		StudentID:                 student.ID,
		TargetDomain:              targetDomain,
		TargetRole:                targetRole,
		CurrentSkills:             datatypes.NewJSONSlice(snapshot),
		OverallReadinessScore:     readiness,
		MissingSkills:             datatypes.NewJSONSlice(outcome.Result.MissingSkills),
		SkillsToImprove:           datatypes.NewJSONSlice(outcome.Result.SkillsToImprove),
		StrongSkills:              datatypes.NewJSONSlice(outcome.Result.StrongSkills),
		AnalysisSummary:           outcome.Result.Summary,
		PriorityLearningPath:      datatypes.NewJSONSlice(outcome.Result.PriorityLearningPath),
		CareerAdvice:              outcome.Result.CareerAdvice,
		MarketAlignmentScore:      outcome.Result.MarketScore,
		RecommendedCourses:        datatypes.NewJSONSlice(bundle.Courses),
		RecommendedCertifications: datatypes.NewJSONSlice(bundle.Certifications),
		EstimatedTimeToReady:      outcome.Result.EstimatedWeeks,
		IsActive:                  true,
	}

	var createdPaths []*types.SkillLearningPath

	// One transaction for deactivate-then-insert plus path creation: a reader
	// never sees two active analyses, and a failed run rolls back without
	// touching what was active before.
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.WithTx(ctx, tx)
		if err := s.analyses.DeactivateByStudent(dbc, student.ID); err != nil {
			return fmt.Errorf("deactivate prior analyses: %w", err)
		}
		if _, err := s.analyses.Create(dbc, row); err != nil {
			return fmt.Errorf("insert analysis: %w", err)
		}
		var err error
		createdPaths, err = s.generator.Generate(dbc, student.ID, row.ID, outcome.Result.MissingSkills)
		if err != nil {
			return fmt.Errorf("generate learning paths: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, apierr.AnalysisFailed(txErr)
	}

	s.invalidateStudent(ctx, student.ID)

	s.log.Info("analysis completed",
		"student_id", student.ID.String(),
		"target_domain", targetDomain,
		"readiness_score", readiness,
		"classifier_state", outcome.State,
		"learning_paths", len(createdPaths),
	)
	return &LatestAnalysis{Analysis: row, LearningPaths: createdPaths}, nil
}

func (s *service) GetLatest(ctx context.Context, studentID uuid.UUID) (*LatestAnalysis, error) {
	key := latestCacheKey(studentID)
	var cached LatestAnalysis
	if ok, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		s.log.Warn("latest analysis cache read failed", "error", err)
	} else if ok && cached.Analysis != nil {
		return &cached, nil
	}

	// The active analysis and the student's paths are independent reads;
	// fetch them together and join on the analysis id afterward.
	var (
		active   *types.SkillGapAnalysis
		allPaths []*types.SkillLearningPath
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		active, err = s.analyses.GetActiveByStudent(dbctx.New(gctx), studentID)
		return err
	})
	g.Go(func() error {
		var err error
		allPaths, err = s.paths.ListByStudent(dbctx.New(gctx), studentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apierr.AnalysisFailed(err)
	}
	if active == nil {
		return nil, apierr.NotFound(fmt.Errorf("no analysis yet"))
	}

	out := &LatestAnalysis{Analysis: active, LearningPaths: []*types.SkillLearningPath{}}
	for _, p := range allPaths {
		if p != nil && p.GapAnalysisID == active.ID {
			out.LearningPaths = append(out.LearningPaths, p)
		}
	}

	if err := s.cache.SetJSON(ctx, key, out, latestCacheTTL); err != nil {
		s.log.Warn("latest analysis cache write failed", "error", err)
	}
	return out, nil
}

func (s *service) History(ctx context.Context, studentID uuid.UUID, limit int) ([]*types.SkillGapAnalysis, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	rows, err := s.analyses.ListByStudent(dbctx.New(ctx), studentID, limit)
	if err != nil {
		return nil, apierr.AnalysisFailed(err)
	}
	return rows, nil
}

func (s *service) ListLearningPaths(ctx context.Context, studentID uuid.UUID) (map[string][]*types.SkillLearningPath, error) {
	rows, err := s.paths.ListByStudent(dbctx.New(ctx), studentID)
	if err != nil {
		return nil, apierr.AnalysisFailed(err)
	}
	out := map[string][]*types.SkillLearningPath{
		types.PathStatusNotStarted: {},
		types.PathStatusInProgress: {},
		types.PathStatusCompleted:  {},
		types.PathStatusAbandoned:  {},
	}
	for _, p := range rows {
		if p == nil {
			continue
		}
		out[p.Status] = append(out[p.Status], p)
	}
	for status := range out {
		sortPathsBySkill(out[status])
	}
	return out, nil
}

func (s *service) Domains(ctx context.Context) map[string][]string {
	var cached map[string][]string
	if ok, err := s.cache.GetJSON(ctx, domainsCacheKey, &cached); err != nil {
		s.log.Warn("domains cache read failed", "error", err)
	} else if ok && len(cached) > 0 {
		return cached
	}

	out := s.requirements.Domains(dbctx.New(ctx))
	if err := s.cache.SetJSON(ctx, domainsCacheKey, out, domainsCacheTTL); err != nil {
		s.log.Warn("domains cache write failed", "error", err)
	}
	return out
}

func (s *service) invalidateStudent(ctx context.Context, studentID uuid.UUID) {
	if err := s.cache.Delete(ctx, latestCacheKey(studentID)); err != nil {
		s.log.Warn("latest analysis cache invalidation failed", "error", err)
	}
}

func latestCacheKey(studentID uuid.UUID) string {
	return "analysis:latest:" + studentID.String()
}

// sortPathsBySkill keeps grouped listings stable for clients.
func sortPathsBySkill(paths []*types.SkillLearningPath) {
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].SkillName < paths[j].SkillName
	})
}
