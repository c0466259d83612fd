package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]StudentSkill{
		{Name: "JavaScript", ProficiencyLevel: "Advanced"},
		{Name: "  SQL  ", ProficiencyLevel: ""},
		{Name: "   "},
		{Name: "Docker", ProficiencyLevel: "ninja"},
	})

	assert.Equal(t, []SkillSnapshot{
		{Name: "JavaScript", Proficiency: ProficiencyAdvanced},
		{Name: "SQL", Proficiency: ProficiencyIntermediate},
		{Name: "Docker", Proficiency: ProficiencyIntermediate},
	}, got)

	assert.Empty(t, NormalizeSkills(nil))
}

func TestNormalizeProficiency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"beginner", ProficiencyBeginner},
		{"  Expert ", ProficiencyExpert},
		{"ADVANCED", ProficiencyAdvanced},
		{"intermediate", ProficiencyIntermediate},
		{"", ProficiencyIntermediate},
		{"wizard", ProficiencyIntermediate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeProficiency(tt.in), "input %q", tt.in)
	}
}

func TestProficiencyRank(t *testing.T) {
	assert.Less(t, ProficiencyRank(ProficiencyBeginner), ProficiencyRank(ProficiencyIntermediate))
	assert.Less(t, ProficiencyRank(ProficiencyIntermediate), ProficiencyRank(ProficiencyAdvanced))
	assert.Less(t, ProficiencyRank(ProficiencyAdvanced), ProficiencyRank(ProficiencyExpert))
	assert.Equal(t, ProficiencyRank(ProficiencyIntermediate), ProficiencyRank("unknown"))
}
