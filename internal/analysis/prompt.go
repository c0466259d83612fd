package analysis

import (
	"fmt"
	"strings"

	types "github.com/yungbote/placement-backend/internal/domain"
)

const classifierSystemPrompt = `You are a career-readiness analyst for college placement.
Given a student profile and the weighted skill requirements for a target role,
classify the student's skills and estimate readiness. Respond with STRICT JSON
only - no prose, no markdown fences - matching exactly this schema:
{
  "summary": string,
  "missing_skills": [{"skill": string, "priority": "high"|"medium"|"low", "reasoning": string, "difficulty": "easy"|"medium"|"hard", "estimated_learning_time": string}],
  "skills_to_improve": [{"skill": string, "current_level": string, "required_level": string, "priority": string, "reasoning": string}],
  "strong_skills": [{"skill": string, "strength_level": string, "market_demand": string, "leverage_advice": string}],
  "priority_learning_path": [string],
  "estimated_weeks": integer,
  "career_advice": string,
  "market_score": integer between 0 and 100
}`

func buildPrompt(in ClassificationInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target domain: %s\n", in.TargetDomain)
	if strings.TrimSpace(in.TargetRole) != "" {
		fmt.Fprintf(&b, "Target role: %s\n", in.TargetRole)
	}
	fmt.Fprintf(&b, "Experience level: %s\n\n", orDefault(in.Requirements.ExperienceLevel, "entry"))

	if in.Student != nil {
		fmt.Fprintf(&b, "Student: %s %s", in.Student.FirstName, in.Student.LastName)
		if in.Student.Department != "" {
			fmt.Fprintf(&b, ", department %s", in.Student.Department)
		}
		if in.Student.CGPA > 0 {
			fmt.Fprintf(&b, ", CGPA %.2f", in.Student.CGPA)
		}
		if in.Student.GraduationYear > 0 {
			fmt.Fprintf(&b, ", graduating %d", in.Student.GraduationYear)
		}
		b.WriteString("\n\n")
	}

	b.WriteString("Current skills:\n")
	if len(in.Skills) == 0 {
		b.WriteString("- (none listed)\n")
	}
	for _, s := range in.Skills {
		fmt.Fprintf(&b, "- %s (%s)\n", s.Name, s.Proficiency)
	}

	if in.Student != nil && len(in.Student.Experiences) > 0 {
		b.WriteString("\nExperience:\n")
		for _, e := range in.Student.Experiences {
			fmt.Fprintf(&b, "- %s", e.Title)
			if e.Company != "" {
				fmt.Fprintf(&b, " at %s", e.Company)
			}
			if e.Months > 0 {
				fmt.Fprintf(&b, " (%d months)", e.Months)
			}
			b.WriteString("\n")
		}
	}

	if in.Student != nil && len(in.Student.Projects) > 0 {
		b.WriteString("\nProjects:\n")
		for _, p := range in.Student.Projects {
			fmt.Fprintf(&b, "- %s", p.Title)
			if len(p.Technologies) > 0 {
				fmt.Fprintf(&b, " [%s]", strings.Join(p.Technologies, ", "))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nRequired skills (weight, minimum proficiency):\n")
	writeSkillList(&b, "Core", in.Requirements.CoreSkills)
	writeSkillList(&b, "Preferred", in.Requirements.PreferredSkills)
	writeSkillList(&b, "Nice to have", in.Requirements.NiceToHaveSkills)

	return b.String()
}

func writeSkillList(b *strings.Builder, label string, skills []types.WeightedSkill) {
	if len(skills) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", label)
	for _, ws := range skills {
		fmt.Fprintf(b, "- %s (weight %.0f, min %s)\n", ws.Skill, ws.Weight, orDefault(ws.MinProficiency, "beginner"))
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
