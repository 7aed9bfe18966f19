package engine

import (
	"math"

	"stackpilot-backend/internal/assessment"
)

// ToolCountRange is the adaptive target size of a scenario's tool list.
// Min <= Max always holds.
type ToolCountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var baseRanges = map[assessment.TeamSizeBucket]ToolCountRange{
	assessment.TeamSolo:  {Min: 3, Max: 5},
	assessment.TeamMicro: {Min: 4, Max: 7},
	assessment.TeamSmall: {Min: 5, Max: 9},
	assessment.TeamMid:   {Min: 6, Max: 10},
}

// rangeBias shifts a range's span per scenario type: MONO_STACK and
// AGENTIC_LEAN shrink toward Min, NATIVE_INTEGRATOR stretches toward Max.
// STARTER_PACK has an entry but no pipeline path uses it.
type rangeBias int

const (
	biasNone rangeBias = iota
	biasTowardMin
	biasTowardMax
)

var scenarioRangeBias = map[ScenarioType]rangeBias{
	ScenarioMonoStack:        biasTowardMin,
	ScenarioNativeIntegrator: biasTowardMax,
	ScenarioAgenticLean:      biasTowardMin,
	ScenarioStarterPack:      biasNone,
}

// RangeFor computes the target tool-count range for one scenario. Each of the
// TOOL_OVERLOAD and HIGH_COSTS pain points shaves one off Max, clamped so Max
// never drops below Min.
func RangeFor(teamSize assessment.TeamSizeBucket, scenarioType ScenarioType, painPoints []assessment.PainPoint) ToolCountRange {
	r, ok := baseRanges[teamSize]
	if !ok {
		r = ToolCountRange{Min: 4, Max: 7}
	}

	switch scenarioRangeBias[scenarioType] {
	case biasTowardMin:
		r.Max = r.Min + (r.Max-r.Min)/2
	case biasTowardMax:
		r.Min = r.Min + (r.Max-r.Min)/2
	}

	for _, p := range painPoints {
		if p == assessment.PainToolOverload || p == assessment.PainHighCosts {
			r.Max--
		}
	}
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return r
}

// QualityFloor is the statistical cutoff below which a candidate should not
// be added just to fill a slot: 0 for no prior scores, 0.7·s for a single
// score, mean minus one standard deviation otherwise.
func QualityFloor(scores []float64) float64 {
	switch len(scores) {
	case 0:
		return 0
	case 1:
		return 0.7 * scores[0]
	}

	mean := 0.0
	for _, s := range scores {
		mean += s
	}
	mean /= float64(len(scores))

	variance := 0.0
	for _, s := range scores {
		d := s - mean
		variance += d * d
	}
	variance /= float64(len(scores))

	return mean - math.Sqrt(variance)
}
