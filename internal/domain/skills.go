package domain

import "strings"

// Proficiency levels, ordered weakest to strongest.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// SkillSnapshot is the one normalized skill shape the scorer and classifier
// operate on. Anything boundary-shaped (bare strings, partially filled
// StudentSkill rows) is converted here; nothing downstream branches on shape.
type SkillSnapshot struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// NormalizeSkills converts stored profile skills into snapshots, dropping
// blank names and defaulting unknown proficiencies to intermediate.
func NormalizeSkills(raw []StudentSkill) []SkillSnapshot {
	out := make([]SkillSnapshot, 0, len(raw))
	for _, s := range raw {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		out = append(out, SkillSnapshot{
			Name:        name,
			Proficiency: NormalizeProficiency(s.ProficiencyLevel),
		})
	}
	return out
}

func NormalizeProficiency(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case ProficiencyBeginner:
		return ProficiencyBeginner
	case ProficiencyAdvanced:
		return ProficiencyAdvanced
	case ProficiencyExpert:
		return ProficiencyExpert
	default:
		return ProficiencyIntermediate
	}
}

// ProficiencyRank maps a level to its position for comparisons; intermediate
// for anything unrecognized, matching NormalizeProficiency.
func ProficiencyRank(level string) int {
	switch NormalizeProficiency(level) {
	case ProficiencyBeginner:
		return 1
	case ProficiencyAdvanced:
		return 3
	case ProficiencyExpert:
		return 4
	default:
		return 2
	}
}
