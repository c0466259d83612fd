package analysis

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/placement-backend/internal/catalog"
	repo "github.com/yungbote/placement-backend/internal/data/repos/analysis"
	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/pkg/dbctx"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

const (
	defaultEstimatedWeeks = 4
	// One milestone per estimated week, capped so UI lists stay bounded.
	// Estimates past the cap still end their schedule at week 8.
	maxMilestones = 8
)

type PathGenerator struct {
	paths     repo.LearningPathRepo
	resources catalog.ResourceProvider
	log       *logger.Logger
	now       func() time.Time
}

func NewPathGenerator(paths repo.LearningPathRepo, resources catalog.ResourceProvider, baseLog *logger.Logger) *PathGenerator {
	return &PathGenerator{
		paths:     paths,
		resources: resources,
		log:       baseLog.With("service", "PathGenerator"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Generate persists one learning path per missing skill with a non-empty
// name. Runs inside the orchestrator's transaction via dbc.
func (g *PathGenerator) Generate(dbc dbctx.Context, studentID, analysisID uuid.UUID, missing []types.MissingSkill) ([]*types.SkillLearningPath, error) {
	now := g.now()
	rows := make([]*types.SkillLearningPath, 0, len(missing))
	for _, ms := range missing {
		skill := strings.TrimSpace(ms.Skill)
		if skill == "" {
			continue
		}
		weeks := ParseEstimatedWeeks(ms.EstimatedLearningTime)
		bundle := g.resources.ResourcesFor(skill)
		resources := append(append([]types.LearningResource{}, bundle.Courses...), bundle.Certifications...)

		rows = append(rows, &types.SkillLearningPath{
			ID:                      uuid.New(),
			StudentID:               studentID,
			GapAnalysisID:           analysisID,
			SkillName:               skill,
			CurrentLevel:            types.ProficiencyBeginner,
			TargetLevel:             types.ProficiencyIntermediate,
			LearningResources:       datatypes.NewJSONSlice(resources),
			Milestones:              datatypes.NewJSONSlice(BuildMilestones(skill, weeks, now)),
			ProgressPercentage:      0,
			Status:                  types.PathStatusNotStarted,
			EstimatedCompletionDate: now.AddDate(0, 0, weeks*7),
		})
	}
	return g.paths.Create(dbc, rows)
}

// ParseEstimatedWeeks extracts the leading integer from estimate text such as
// "6 weeks" or "2-3 months"; unparseable input gets the default.
func ParseEstimatedWeeks(text string) int {
	s := strings.TrimSpace(text)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return defaultEstimatedWeeks
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n <= 0 {
		return defaultEstimatedWeeks
	}
	return n
}

// BuildMilestones produces the weekly schedule: clamp(weeks, 1, 8) entries,
// due 7, 14, ... days out from now.
func BuildMilestones(skill string, weeks int, now time.Time) []types.Milestone {
	count := weeks
	if count < 1 {
		count = 1
	}
	if count > maxMilestones {
		count = maxMilestones
	}
	out := make([]types.Milestone, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, types.Milestone{
			Title:       "Week " + strconv.Itoa(i) + ": Learn " + skill + " Basics",
			Description: "Complete the week " + strconv.Itoa(i) + " study goals for " + skill + ".",
			Completed:   false,
			DueDate:     now.AddDate(0, 0, i*7),
		})
	}
	return out
}
