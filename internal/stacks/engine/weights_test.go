package engine

import (
	"math"
	"testing"

	"stackpilot-backend/internal/assessment"
)

func baseInput() *assessment.Input {
	return &assessment.Input{
		Stage:           assessment.StageSeed,
		TeamSize:        assessment.TeamMicro,
		Philosophy:      assessment.PhilosophyHybrid,
		TechSavviness:   assessment.LevelMedium,
		BudgetPerUser:   50,
		CostSensitivity: assessment.LevelMedium,
		RiskSensitivity: assessment.LevelMedium,
	}
}

func TestBuildWeightProfileNormalized(t *testing.T) {
	inputs := []*assessment.Input{
		baseInput(),
		{
			Stage:           assessment.StageIdea,
			TeamSize:        assessment.TeamSolo,
			Philosophy:      assessment.PhilosophyAutoPilot,
			CostSensitivity: assessment.LevelHigh,
			PainPoints: []assessment.PainPoint{
				assessment.PainToolOverload,
				assessment.PainHighCosts,
				assessment.PainManualWork,
				assessment.PainPoorIntegration,
				assessment.PainDataSilos,
				assessment.PainContextSwitching,
			},
		},
		{
			Stage:           assessment.StageScale,
			TeamSize:        assessment.TeamMid,
			Philosophy:      assessment.PhilosophyCoPilot,
			CostSensitivity: assessment.LevelLow,
		},
	}

	for _, scenarioType := range []ScenarioType{ScenarioMonoStack, ScenarioNativeIntegrator, ScenarioAgenticLean, ScenarioStarterPack} {
		for i, in := range inputs {
			w := BuildWeightProfile(scenarioType, in)
			if math.Abs(w.Sum()-1.0) > 1e-9 {
				t.Errorf("%s input %d: sum = %v, want 1.0", scenarioType, i, w.Sum())
			}
			for name, v := range map[string]float64{
				"fit": w.Fit, "popularity": w.Popularity, "cost": w.Cost, "ai": w.AI, "integration": w.Integration,
			} {
				if v < 0 {
					t.Errorf("%s input %d: %s weight = %v, want >= 0", scenarioType, i, name, v)
				}
			}
		}
	}
}

func TestBuildWeightProfileOrderIndependent(t *testing.T) {
	a := baseInput()
	a.PainPoints = []assessment.PainPoint{
		assessment.PainHighCosts,
		assessment.PainPoorIntegration,
		assessment.PainManualWork,
	}
	b := baseInput()
	b.PainPoints = []assessment.PainPoint{
		assessment.PainManualWork,
		assessment.PainHighCosts,
		assessment.PainPoorIntegration,
	}

	wa := BuildWeightProfile(ScenarioMonoStack, a)
	wb := BuildWeightProfile(ScenarioMonoStack, b)
	if wa != wb {
		t.Errorf("pain point order changed the profile: %+v vs %+v", wa, wb)
	}
}

func TestBuildWeightProfileClampsAfterAccumulation(t *testing.T) {
	// IDEA stage, HIGH cost sensitivity, and two popularity-penalizing pain
	// points together drive popularity negative before normalization. The
	// result must clamp to zero, not underflow.
	in := baseInput()
	in.Stage = assessment.StageIdea
	in.CostSensitivity = assessment.LevelHigh
	in.PainPoints = []assessment.PainPoint{assessment.PainHighCosts, assessment.PainPoorIntegration}

	w := BuildWeightProfile(ScenarioAgenticLean, in)
	if w.Popularity < 0 {
		t.Errorf("popularity = %v, want >= 0", w.Popularity)
	}
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		t.Errorf("sum = %v, want 1.0", w.Sum())
	}
}

func TestNormalizeDegenerateFallsBackToUniform(t *testing.T) {
	w := WeightProfile{Fit: -1, Popularity: -2, Cost: 0, AI: -0.5, Integration: 0}.normalize()
	want := WeightProfile{Fit: 0.2, Popularity: 0.2, Cost: 0.2, AI: 0.2, Integration: 0.2}
	if w != want {
		t.Errorf("normalize degenerate = %+v, want uniform %+v", w, want)
	}
}

func TestBaseWeightsCoverEveryScenarioType(t *testing.T) {
	for _, scenarioType := range append(EmittedScenarioTypes, ScenarioStarterPack) {
		if _, ok := baseWeights[scenarioType]; !ok {
			t.Errorf("no base weights for %s", scenarioType)
		}
	}
}
