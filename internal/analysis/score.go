package analysis

import (
	"math"
	"strings"

	types "github.com/yungbote/placement-backend/internal/domain"
)

// neutralScore is returned when a requirement set defines no core skills;
// there is nothing to measure against, so don't pretend 0 or 100.
const neutralScore = 50

// Score computes the 0-100 readiness score: each core skill's weight counts
// toward the total, and full weight is earned when the student has that skill
// at all (case-insensitive; proficiency is not discriminated here). Preferred
// and nice-to-have skills never affect the score. Pure and deterministic so
// it stays reproducible when the classifier is degraded.
func Score(skills []types.SkillSnapshot, req types.RequirementSet) int {
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name != "" {
			have[name] = true
		}
	}

	var totalWeight, earnedWeight float64
	for _, ws := range req.CoreSkills {
		if ws.Weight <= 0 {
			continue
		}
		totalWeight += ws.Weight
		if have[strings.ToLower(strings.TrimSpace(ws.Skill))] {
			earnedWeight += ws.Weight
		}
	}

	if totalWeight == 0 {
		return neutralScore
	}
	return int(math.Round(earnedWeight / totalWeight * 100))
}
