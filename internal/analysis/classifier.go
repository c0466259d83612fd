package analysis

import (
	"context"
	"encoding/json"
	"strings"

	types "github.com/yungbote/placement-backend/internal/domain"
	"github.com/yungbote/placement-backend/internal/platform/logger"
	"github.com/yungbote/placement-backend/internal/platform/openai"
)

// Classification outcome states. Degraded states still carry a complete,
// safe payload; callers and tests can tell "ran degraded" from "never ran".
const (
	OutcomeOK                 = "ok"
	OutcomeNotConfigured      = "not_configured"
	OutcomeServiceUnavailable = "service_unavailable"
	OutcomeMalformedResponse  = "malformed_response"
)

// ClassificationResult is the strict JSON shape the model is asked for.
type ClassificationResult struct {
	Summary              string                 `json:"summary"`
	MissingSkills        []types.MissingSkill   `json:"missing_skills"`
	SkillsToImprove      []types.SkillToImprove `json:"skills_to_improve"`
	StrongSkills         []types.StrongSkill    `json:"strong_skills"`
	PriorityLearningPath []string               `json:"priority_learning_path"`
	EstimatedWeeks       int                    `json:"estimated_weeks"`
	CareerAdvice         string                 `json:"career_advice"`
	MarketScore          int                    `json:"market_score"`
}

type Outcome struct {
	State  string
	Result ClassificationResult
}

// ClassificationInput is everything the prompt embeds.
type ClassificationInput struct {
	Student      *types.Student
	Skills       []types.SkillSnapshot
	Requirements types.RequirementSet
	TargetDomain string
	TargetRole   string
}

type Classifier struct {
	ai  openai.Client
	log *logger.Logger
}

// NewClassifier accepts a nil client; that is the valid "no credential
// configured" state and classification degrades to the deterministic payload.
func NewClassifier(ai openai.Client, baseLog *logger.Logger) *Classifier {
	return &Classifier{ai: ai, log: baseLog.With("service", "GapClassifier")}
}

// Classify never returns an error: every failure mode maps to a degraded
// outcome whose payload downstream steps can consume safely.
func (c *Classifier) Classify(ctx context.Context, in ClassificationInput) Outcome {
	if c.ai == nil {
		return Outcome{State: OutcomeNotConfigured, Result: notConfiguredFallback(in.TargetDomain)}
	}

	raw, err := c.ai.GenerateText(ctx, classifierSystemPrompt, buildPrompt(in))
	if err != nil {
		c.log.Warn("classification call failed, using fallback", "target_domain", in.TargetDomain, "error", err)
		return Outcome{State: OutcomeServiceUnavailable, Result: serviceUnavailableFallback(in.TargetDomain)}
	}

	result, parseErr := ParseClassification(raw)
	if parseErr != nil {
		c.log.Warn("classification output unparseable, using fallback", "target_domain", in.TargetDomain, "error", parseErr)
		return Outcome{State: OutcomeMalformedResponse, Result: malformedFallback(in.TargetDomain)}
	}
	return Outcome{State: OutcomeOK, Result: result}
}

// ParseClassification strips optional markdown code fences, parses the JSON,
// and normalizes the result so no list is nil and scores stay in range.
func ParseClassification(raw string) (ClassificationResult, error) {
	var result ClassificationResult
	if err := json.Unmarshal([]byte(StripFences(raw)), &result); err != nil {
		return ClassificationResult{}, err
	}
	normalize(&result)
	return result, nil
}

// StripFences removes a wrapping markdown code fence (``` or ```json).
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		first := strings.TrimSpace(s[:idx])
		if first == "" || strings.EqualFold(first, "json") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func normalize(r *ClassificationResult) {
	if r.MissingSkills == nil {
		r.MissingSkills = []types.MissingSkill{}
	}
	if r.SkillsToImprove == nil {
		r.SkillsToImprove = []types.SkillToImprove{}
	}
	if r.StrongSkills == nil {
		r.StrongSkills = []types.StrongSkill{}
	}
	if r.PriorityLearningPath == nil {
		r.PriorityLearningPath = []string{}
	}
	if r.MarketScore < 0 {
		r.MarketScore = 0
	}
	if r.MarketScore > 100 {
		r.MarketScore = 100
	}
	if r.EstimatedWeeks < 0 {
		r.EstimatedWeeks = 0
	}
}

// notConfiguredFallback covers the "no API key" state. Distinct summary text
// from the call-failed fallback, same safe shape.
func notConfiguredFallback(targetDomain string) ClassificationResult {
	return ClassificationResult{
		Summary: "AI-assisted analysis is not configured; this report was produced from the deterministic skill match for " +
			titleOrDomain(targetDomain) + ".",
		MissingSkills: []types.MissingSkill{
			{
				Skill:                 "Domain Fundamentals",
				Priority:              "high",
				Reasoning:             "Without AI analysis, strengthening the core fundamentals of the target domain is the safest first step.",
				Difficulty:            "medium",
				EstimatedLearningTime: "6 weeks",
			},
		},
		SkillsToImprove:      []types.SkillToImprove{},
		StrongSkills:         []types.StrongSkill{},
		PriorityLearningPath: []string{"Domain Fundamentals"},
		EstimatedWeeks:       8,
		CareerAdvice:         "Focus on the core skills listed for your target role; re-run the analysis once AI insights are available.",
		MarketScore:          60,
	}
}

// serviceUnavailableFallback covers network/quota/auth failures on the call.
func serviceUnavailableFallback(targetDomain string) ClassificationResult {
	return ClassificationResult{
		Summary: "The analysis service was temporarily unavailable, so this report uses conservative defaults for " +
			titleOrDomain(targetDomain) + ". Re-run the analysis later for full insights.",
		MissingSkills: []types.MissingSkill{
			{
				Skill:                 "Domain Fundamentals",
				Priority:              "high",
				Reasoning:             "Core domain knowledge is the highest-leverage area while detailed analysis is unavailable.",
				Difficulty:            "medium",
				EstimatedLearningTime: "6 weeks",
			},
			{
				Skill:                 "Project Portfolio",
				Priority:              "medium",
				Reasoning:             "Demonstrable projects improve placement outcomes in every domain.",
				Difficulty:            "medium",
				EstimatedLearningTime: "4 weeks",
			},
		},
		SkillsToImprove:      []types.SkillToImprove{},
		StrongSkills:         []types.StrongSkill{},
		PriorityLearningPath: []string{"Domain Fundamentals", "Project Portfolio"},
		EstimatedWeeks:       10,
		CareerAdvice:         "Keep building toward the role's core skills; a detailed AI review will be included next run.",
		MarketScore:          60,
	}
}

// malformedFallback covers an AI response that was not valid JSON.
func malformedFallback(targetDomain string) ClassificationResult {
	return ClassificationResult{
		Summary: "The analysis response could not be interpreted, so this report uses generic defaults for " +
			titleOrDomain(targetDomain) + ".",
		MissingSkills: []types.MissingSkill{
			{
				Skill:                 "General Problem Solving",
				Priority:              "medium",
				Reasoning:             "A broadly valuable skill while a detailed gap analysis is unavailable.",
				Difficulty:            "medium",
				EstimatedLearningTime: "4 weeks",
			},
		},
		SkillsToImprove:      []types.SkillToImprove{},
		StrongSkills:         []types.StrongSkill{},
		PriorityLearningPath: []string{"General Problem Solving"},
		EstimatedWeeks:       4,
		CareerAdvice:         "Continue developing fundamentals and re-run the analysis for a complete review.",
		MarketScore:          50,
	}
}

func titleOrDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return "the target role"
	}
	return domain
}
