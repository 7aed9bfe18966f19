package engine

import (
	"stackpilot-backend/internal/assessment"
	"stackpilot-backend/internal/catalog"
)

// Familiarity bonus for tools the team already owns. Additive and unweighted.
const familiarityBonus = 8.0

// ScoreInput carries the caller-computed parts of a tool score: the
// integration sub-score depends on the tools selected so far and the synergy
// bonus comes from external cluster-match signals, so neither is computed
// here.
type ScoreInput struct {
	IntegrationScore float64
	SynergyBonus     float64
}

// ScoreTool computes the composite score of one tool under one weight profile
// and context. All five sub-scores are on a 0-100 scale; the full breakdown
// is returned so results stay auditable.
func ScoreTool(tool catalog.Tool, weights WeightProfile, ec Context, in ScoreInput) ScoredTool {
	b := Breakdown{
		Fit:         fitScore(tool, ec),
		Popularity:  popularityScore(tool),
		Cost:        costScore(tool, ec.BudgetPerUser),
		AI:          aiScore(tool, ec.Philosophy),
		Integration: in.IntegrationScore,
	}

	b.WeightedBase = b.Fit*weights.Fit +
		b.Popularity*weights.Popularity +
		b.Cost*weights.Cost +
		b.AI*weights.AI +
		b.Integration*weights.Integration

	b.SynergyBonus = in.SynergyBonus
	if ec.OwnedToolIDs[tool.ID] {
		b.FamiliarityBonus = familiarityBonus
	}

	return ScoredTool{
		Tool:      tool,
		Composite: b.WeightedBase + b.SynergyBonus + b.FamiliarityBonus,
		Breakdown: b,
	}
}

// fitScore grants 50 points each for team-size fit and stage fit. An empty
// best-for set means the tool fits anyone.
func fitScore(tool catalog.Tool, ec Context) float64 {
	score := 0.0
	if len(tool.BestForSizes) == 0 || containsSize(tool.BestForSizes, ec.TeamSize) {
		score += 50
	}
	if len(tool.BestForStages) == 0 || containsStage(tool.BestForStages, ec.Stage) {
		score += 50
	}
	return score
}

func popularityScore(tool catalog.Tool) float64 {
	if tool.Popularity.Composite <= 0 {
		return 50
	}
	return tool.Popularity.Composite
}

// costScore is piecewise: 90 for genuinely free tools, 60 when cost is
// unknown, a 70-90 band within budget, and a decaying band capped at 10 when
// over budget.
func costScore(tool catalog.Tool, budget float64) float64 {
	if tool.FreeForever && (tool.CostPerUser == nil || *tool.CostPerUser == 0) {
		return 90
	}
	if tool.CostPerUser == nil {
		return 60
	}
	cost := *tool.CostPerUser
	if cost == 0 {
		return 90
	}
	if budget <= 0 {
		return 10
	}
	if cost <= budget {
		return 70 + 20*(1-cost/budget)
	}
	overageRatio := (cost - budget) / budget
	score := 50 - 40*overageRatio
	if score < 10 {
		return 10
	}
	return score
}

func aiScore(tool catalog.Tool, philosophy assessment.Philosophy) float64 {
	if tool.HasAIFeatures {
		switch philosophy {
		case assessment.PhilosophyAutoPilot:
			return 100
		case assessment.PhilosophyHybrid:
			return 80
		case assessment.PhilosophyCoPilot:
			return 60
		default:
			return 50
		}
	}
	if philosophy == assessment.PhilosophyAutoPilot {
		return 10
	}
	return 30
}

func containsSize(sizes []assessment.TeamSizeBucket, size assessment.TeamSizeBucket) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}

func containsStage(stages []assessment.Stage, stage assessment.Stage) bool {
	for _, s := range stages {
		if s == stage {
			return true
		}
	}
	return false
}
