package catalog

import (
	"strings"

	types "github.com/yungbote/placement-backend/internal/domain"
)

// Built-in requirement sets used when no stored catalog row matches. The
// Software Engineer set doubles as the fallback for unrecognized domains.

const defaultDomain = "Software Engineer"

var defaultDomainRoles = map[string][]string{
	"Software Engineer": {"Backend Developer", "Frontend Developer", "Full Stack Developer"},
	"Data Scientist":    {"Data Analyst", "ML Engineer"},
}

var defaultRequirements = map[string]types.RequirementSet{
	"software engineer": {
		Domain:          "Software Engineer",
		ExperienceLevel: "entry",
		CoreSkills: []types.WeightedSkill{
			{Skill: "Data Structures", Weight: 15, MinProficiency: types.ProficiencyIntermediate},
			{Skill: "Algorithms", Weight: 15, MinProficiency: types.ProficiencyIntermediate},
			{Skill: "JavaScript", Weight: 12, MinProficiency: types.ProficiencyIntermediate},
			{Skill: "SQL", Weight: 10, MinProficiency: types.ProficiencyBeginner},
			{Skill: "Git", Weight: 8, MinProficiency: types.ProficiencyBeginner},
			{Skill: "REST APIs", Weight: 10, MinProficiency: types.ProficiencyBeginner},
		},
		PreferredSkills: []types.WeightedSkill{
			{Skill: "React", Weight: 8, MinProficiency: types.ProficiencyBeginner},
			{Skill: "Node.js", Weight: 8, MinProficiency: types.ProficiencyBeginner},
			{Skill: "Docker", Weight: 6, MinProficiency: types.ProficiencyBeginner},
		},
		NiceToHaveSkills: []types.WeightedSkill{
			{Skill: "Kubernetes", Weight: 4, MinProficiency: types.ProficiencyBeginner},
			{Skill: "AWS", Weight: 4, MinProficiency: types.ProficiencyBeginner},
		},
	},
	"data scientist": {
		Domain:          "Data Scientist",
		ExperienceLevel: "entry",
		CoreSkills: []types.WeightedSkill{
			{Skill: "Python", Weight: 15, MinProficiency: types.ProficiencyIntermediate},
			{Skill: "Statistics", Weight: 15, MinProficiency: types.ProficiencyIntermediate},
			{Skill: "SQL", Weight: 12, MinProficiency: types.ProficiencyIntermediate},
			{Skill: "Machine Learning", Weight: 12, MinProficiency: types.ProficiencyBeginner},
			{Skill: "Data Visualization", Weight: 8, MinProficiency: types.ProficiencyBeginner},
		},
		PreferredSkills: []types.WeightedSkill{
			{Skill: "Pandas", Weight: 8, MinProficiency: types.ProficiencyIntermediate},
			{Skill: "TensorFlow", Weight: 6, MinProficiency: types.ProficiencyBeginner},
			{Skill: "Deep Learning", Weight: 6, MinProficiency: types.ProficiencyBeginner},
		},
		NiceToHaveSkills: []types.WeightedSkill{
			{Skill: "Spark", Weight: 4, MinProficiency: types.ProficiencyBeginner},
			{Skill: "NLP", Weight: 4, MinProficiency: types.ProficiencyBeginner},
		},
	},
}

func defaultRequirementSet(domain string) types.RequirementSet {
	key := strings.ToLower(strings.TrimSpace(domain))
	set, ok := defaultRequirements[key]
	if !ok {
		set = defaultRequirements[strings.ToLower(defaultDomain)]
		// Keep the caller's domain label so the analysis reads naturally.
		if strings.TrimSpace(domain) != "" {
			set.Domain = strings.TrimSpace(domain)
		}
	}
	set.CoreSkills = append([]types.WeightedSkill(nil), set.CoreSkills...)
	set.PreferredSkills = append([]types.WeightedSkill(nil), set.PreferredSkills...)
	set.NiceToHaveSkills = append([]types.WeightedSkill(nil), set.NiceToHaveSkills...)
	return set
}
