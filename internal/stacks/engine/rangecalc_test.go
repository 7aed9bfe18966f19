package engine

import (
	"math"
	"testing"

	"stackpilot-backend/internal/assessment"
)

func TestRangeForBaseAndBias(t *testing.T) {
	tests := []struct {
		name         string
		teamSize     assessment.TeamSizeBucket
		scenarioType ScenarioType
		pains        []assessment.PainPoint
		want         ToolCountRange
	}{
		{"solo mono shrinks", assessment.TeamSolo, ScenarioMonoStack, nil, ToolCountRange{Min: 3, Max: 4}},
		{"solo integrator stretches", assessment.TeamSolo, ScenarioNativeIntegrator, nil, ToolCountRange{Min: 4, Max: 5}},
		{"micro agentic shrinks", assessment.TeamMicro, ScenarioAgenticLean, nil, ToolCountRange{Min: 4, Max: 5}},
		{"small integrator", assessment.TeamSmall, ScenarioNativeIntegrator, nil, ToolCountRange{Min: 7, Max: 9}},
		{"mid starter pack unbiased", assessment.TeamMid, ScenarioStarterPack, nil, ToolCountRange{Min: 6, Max: 10}},
		{"unknown bucket falls back", assessment.TeamSizeBucket("HUGE"), ScenarioStarterPack, nil, ToolCountRange{Min: 4, Max: 7}},
		{"overload trims max", assessment.TeamMid, ScenarioStarterPack,
			[]assessment.PainPoint{assessment.PainToolOverload}, ToolCountRange{Min: 6, Max: 9}},
		{"overload and costs trim twice", assessment.TeamMid, ScenarioStarterPack,
			[]assessment.PainPoint{assessment.PainToolOverload, assessment.PainHighCosts}, ToolCountRange{Min: 6, Max: 8}},
		{"trim clamps at min", assessment.TeamSolo, ScenarioMonoStack,
			[]assessment.PainPoint{assessment.PainToolOverload, assessment.PainHighCosts}, ToolCountRange{Min: 3, Max: 3}},
		{"unrelated pains ignored", assessment.TeamSolo, ScenarioMonoStack,
			[]assessment.PainPoint{assessment.PainManualWork, assessment.PainDataSilos}, ToolCountRange{Min: 3, Max: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangeFor(tt.teamSize, tt.scenarioType, tt.pains)
			if got != tt.want {
				t.Errorf("RangeFor = %+v, want %+v", got, tt.want)
			}
			if got.Max < got.Min {
				t.Errorf("Max %d < Min %d", got.Max, got.Min)
			}
		})
	}
}

func TestQualityFloor(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{"no scores", nil, 0},
		{"single score", []float64{100}, 70},
		{"two scores", []float64{60, 80}, 60}, // mean 70, stddev 10
		{"uniform scores", []float64{50, 50, 50}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualityFloor(tt.scores); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("QualityFloor(%v) = %v, want %v", tt.scores, got, tt.want)
			}
		})
	}
}
