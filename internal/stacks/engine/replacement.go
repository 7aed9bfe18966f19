package engine

import (
	"context"

	"stackpilot-backend/internal/assessment"
	"stackpilot-backend/internal/graph"
)

// Bonus granted when every structured condition on a rule holds for the
// context.
const conditionsBonus = 2.0

// ReplacementAdvisor suggests a context-preferred substitute for a tool
// already in a bundle.
type ReplacementAdvisor struct {
	Replacements graph.ReplacementsRepo
}

// Suggestion is the advisor's pick for one tool. Score is the context
// affinity; zero means the rule is a context-agnostic default rather than a
// preference.
type Suggestion struct {
	Rule  graph.ReplacementRule `json:"rule"`
	Score float64               `json:"score"`
}

// FindBest scores every replacement rule for toolID against the context and
// returns the highest-scoring rule with a positive score. When no rule scores
// positively the first stored rule is returned as a context-agnostic default.
// Returns nil when no rules exist for the tool.
func (a *ReplacementAdvisor) FindBest(ctx context.Context, toolID string, ec Context) (*Suggestion, error) {
	rules, err := a.Replacements.RulesFor(ctx, toolID)
	if err != nil {
		return nil, infraErr("replacements.RulesFor", err)
	}
	if len(rules) == 0 {
		return nil, nil
	}

	bestIdx := -1
	bestScore := 0.0
	for i := range rules {
		score := reasonAffinity(rules[i].Reason, ec)
		if conditionsMatch(rules[i].Conditions, ec) {
			score += conditionsBonus
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 {
		return &Suggestion{Rule: rules[bestIdx], Score: bestScore}, nil
	}
	return &Suggestion{Rule: rules[0], Score: 0}, nil
}

// reasonAffinity maps a replacement reason onto the context signals that make
// it compelling.
func reasonAffinity(reason graph.ReplacementReason, ec Context) float64 {
	switch reason {
	case graph.ReasonCostSavings:
		score := 0.0
		switch ec.CostSensitivity {
		case assessment.LevelHigh:
			score = 3
		case assessment.LevelMedium:
			score = 2
		}
		if ec.HasPainPoint(assessment.PainHighCosts) {
			score++
		}
		return score
	case graph.ReasonAINative:
		if ec.PrefersAINative {
			return 3
		}
		if ec.Philosophy == assessment.PhilosophyHybrid {
			return 1
		}
		return 0
	case graph.ReasonSimplicity:
		switch ec.TechSavviness {
		case assessment.LevelLow:
			return 3
		case assessment.LevelMedium:
			return 1
		}
		return 0
	case graph.ReasonConsolidation:
		score := 0.0
		if ec.HasPainPoint(assessment.PainToolOverload) {
			score += 3
		}
		if ec.HasPainPoint(assessment.PainContextSwitching) {
			score++
		}
		return score
	case graph.ReasonCompliance:
		if len(ec.Compliance) > 0 {
			return 2
		}
		return 0
	default:
		return 0
	}
}

func conditionsMatch(c graph.ReplacementConditions, ec Context) bool {
	if c.MinCostSensitivity != nil && levelRank(ec.CostSensitivity) < levelRank(*c.MinCostSensitivity) {
		return false
	}
	if len(c.TechSavviness) > 0 && !containsLevel(c.TechSavviness, ec.TechSavviness) {
		return false
	}
	if len(c.TeamSizes) > 0 && !containsSize(c.TeamSizes, ec.TeamSize) {
		return false
	}
	for _, need := range c.RequiredCompliance {
		if !containsCompliance(ec.Compliance, need) {
			return false
		}
	}
	if c.PrefersAINative != nil && *c.PrefersAINative != ec.PrefersAINative {
		return false
	}
	return true
}

func levelRank(l assessment.Level) int {
	switch l {
	case assessment.LevelHigh:
		return 3
	case assessment.LevelMedium:
		return 2
	case assessment.LevelLow:
		return 1
	default:
		return 0
	}
}

func containsLevel(levels []assessment.Level, l assessment.Level) bool {
	for _, candidate := range levels {
		if candidate == l {
			return true
		}
	}
	return false
}

func containsCompliance(needs []assessment.ComplianceNeed, need assessment.ComplianceNeed) bool {
	for _, candidate := range needs {
		if candidate == need {
			return true
		}
	}
	return false
}
