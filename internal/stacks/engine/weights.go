package engine

import (
	"stackpilot-backend/internal/assessment"
)

// WeightProfile is the normalized 5-dimension weight vector used to combine
// sub-scores. After construction the components sum to 1.0 and none is
// negative.
type WeightProfile struct {
	Fit         float64 `json:"fit"`
	Popularity  float64 `json:"popularity"`
	Cost        float64 `json:"cost"`
	AI          float64 `json:"ai"`
	Integration float64 `json:"integration"`
}

// Sum returns the total of all five components.
func (w WeightProfile) Sum() float64 {
	return w.Fit + w.Popularity + w.Cost + w.AI + w.Integration
}

func (w WeightProfile) add(d WeightProfile) WeightProfile {
	w.Fit += d.Fit
	w.Popularity += d.Popularity
	w.Cost += d.Cost
	w.AI += d.AI
	w.Integration += d.Integration
	return w
}

// normalize clamps negative components to zero, then divides by the sum.
// A degenerate all-zero vector falls back to a uniform distribution so the
// scorer never divides by zero.
func (w WeightProfile) normalize() WeightProfile {
	if w.Fit < 0 {
		w.Fit = 0
	}
	if w.Popularity < 0 {
		w.Popularity = 0
	}
	if w.Cost < 0 {
		w.Cost = 0
	}
	if w.AI < 0 {
		w.AI = 0
	}
	if w.Integration < 0 {
		w.Integration = 0
	}
	sum := w.Sum()
	if sum <= 0 {
		return WeightProfile{Fit: 0.2, Popularity: 0.2, Cost: 0.2, AI: 0.2, Integration: 0.2}
	}
	w.Fit /= sum
	w.Popularity /= sum
	w.Cost /= sum
	w.AI /= sum
	w.Integration /= sum
	return w
}

// baseWeights is the starting vector per scenario type. STARTER_PACK is
// defined but no pipeline path emits it; see EmittedScenarioTypes.
var baseWeights = map[ScenarioType]WeightProfile{
	ScenarioMonoStack:        {Fit: 0.30, Popularity: 0.20, Cost: 0.20, AI: 0.10, Integration: 0.20},
	ScenarioNativeIntegrator: {Fit: 0.20, Popularity: 0.15, Cost: 0.10, AI: 0.10, Integration: 0.45},
	ScenarioAgenticLean:      {Fit: 0.20, Popularity: 0.10, Cost: 0.15, AI: 0.40, Integration: 0.15},
	ScenarioStarterPack:      {Fit: 0.25, Popularity: 0.25, Cost: 0.30, AI: 0.05, Integration: 0.15},
}

// Modifier deltas accumulate additively across every matching source, so the
// order the sources are applied in does not change the outcome. Clamping
// happens once, after all additions; interleaving would make the result
// path-dependent.
var painPointWeightDeltas = map[assessment.PainPoint]WeightProfile{
	assessment.PainToolOverload:     {Fit: 0.05, Integration: 0.05, Popularity: -0.05},
	assessment.PainHighCosts:        {Cost: 0.10, Popularity: -0.05},
	assessment.PainManualWork:       {AI: 0.10, Integration: 0.05},
	assessment.PainPoorIntegration:  {Integration: 0.15, Popularity: -0.05},
	assessment.PainDataSilos:        {Integration: 0.10},
	assessment.PainContextSwitching: {Fit: 0.05, Integration: 0.05},
}

var stageWeightDeltas = map[assessment.Stage]WeightProfile{
	assessment.StageIdea:    {Cost: 0.10, Popularity: -0.05},
	assessment.StagePreSeed: {Cost: 0.05},
	assessment.StageSeed:    {},
	assessment.StageGrowth:  {Fit: 0.05, Integration: 0.05},
	assessment.StageScale:   {Fit: 0.05, Popularity: 0.05, Cost: -0.05},
}

var costSensitivityWeightDeltas = map[assessment.Level]WeightProfile{
	assessment.LevelLow:    {Cost: -0.05, Fit: 0.05},
	assessment.LevelMedium: {},
	assessment.LevelHigh:   {Cost: 0.15, Popularity: -0.05},
}

var philosophyWeightDeltas = map[assessment.Philosophy]WeightProfile{
	assessment.PhilosophyAutoPilot: {AI: 0.15, Fit: -0.05},
	assessment.PhilosophyHybrid:    {AI: 0.05},
	assessment.PhilosophyCoPilot:   {AI: -0.05, Fit: 0.05},
}

// BuildWeightProfile derives the weight vector for one (scenario type,
// assessment) pair. The profile is created fresh per call and never mutated
// afterwards.
func BuildWeightProfile(scenarioType ScenarioType, in *assessment.Input) WeightProfile {
	w := baseWeights[scenarioType]

	for _, p := range in.PainPoints {
		if delta, ok := painPointWeightDeltas[p]; ok {
			w = w.add(delta)
		}
	}
	if delta, ok := stageWeightDeltas[in.Stage]; ok {
		w = w.add(delta)
	}
	if delta, ok := costSensitivityWeightDeltas[in.CostSensitivity]; ok {
		w = w.add(delta)
	}
	if delta, ok := philosophyWeightDeltas[in.Philosophy]; ok {
		w = w.add(delta)
	}

	return w.normalize()
}
