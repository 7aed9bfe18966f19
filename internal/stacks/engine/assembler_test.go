package engine

import (
	"context"
	"math"
	"testing"

	"stackpilot-backend/internal/assessment"
	"stackpilot-backend/internal/catalog"
	"stackpilot-backend/internal/graph"
)

func newTestAssembler(edges []graph.IntegrationEdge) *Assembler {
	return &Assembler{
		Integrations: graph.NewMemoryRepo(edges, nil, nil),
		Redundancy:   &RedundancyResolver{Redundancies: graph.NewMemoryRepo(nil, nil, nil)},
		Advisor:      &ReplacementAdvisor{Replacements: graph.NewMemoryRepo(nil, nil, nil)},
	}
}

func freeTool(id string, category catalog.Category, popularity, momentum float64) catalog.Tool {
	return catalog.Tool{
		ID:          id,
		Name:        id,
		DisplayName: id,
		Category:    category,
		FreeForever: true,
		Popularity:  catalog.Popularity{Composite: popularity, Momentum: momentum},
	}
}

func uniformWeights() WeightProfile {
	return WeightProfile{Fit: 0.2, Popularity: 0.2, Cost: 0.2, AI: 0.2, Integration: 0.2}
}

func assembleContext() Context {
	return Context{
		TeamSize:   assessment.TeamMicro,
		Stage:      assessment.StageSeed,
		Philosophy: assessment.PhilosophyHybrid,
	}
}

func TestIntegrationScore(t *testing.T) {
	selected := []ScoredTool{
		{Tool: freeTool("a", catalog.CategoryKnowledgeBase, 50, 0)},
		{Tool: freeTool("b", catalog.CategoryCommunication, 50, 0)},
	}

	tests := []struct {
		name  string
		edges []graph.IntegrationEdge
		want  float64
	}{
		{
			// 2 of 2 covered natively: 1.0*60 + 100*0.4 = 100.
			name: "native links to the whole selection",
			edges: []graph.IntegrationEdge{
				{FromID: "cand", ToID: "a", Quality: graph.QualityNative},
				{FromID: "cand", ToID: "b", Quality: graph.QualityNative},
			},
			want: 100,
		},
		{
			// 1 of 2 covered natively: 0.5*60 + 100*0.4 = 70.
			name: "native link to half the selection",
			edges: []graph.IntegrationEdge{
				{FromID: "cand", ToID: "a", Quality: graph.QualityNative},
			},
			want: 70,
		},
		{
			// 1 of 2 covered at DEEP: 0.5*60 + 80*0.4 = 62.
			name: "deep link to half the selection",
			edges: []graph.IntegrationEdge{
				{FromID: "cand", ToID: "a", Quality: graph.QualityDeep},
			},
			want: 62,
		},
		{
			name: "edges only to tools outside the selection",
			edges: []graph.IntegrationEdge{
				{FromID: "cand", ToID: "elsewhere", Quality: graph.QualityNative},
			},
			want: 0,
		},
		{
			name:  "no edges",
			edges: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAssembler(tt.edges)
			got, err := a.integrationScore(context.Background(), "cand", selected)
			if err != nil {
				t.Fatalf("integrationScore: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntegrationScoreEmptySelection(t *testing.T) {
	a := newTestAssembler([]graph.IntegrationEdge{
		{FromID: "cand", ToID: "a", Quality: graph.QualityNative},
	})
	got, err := a.integrationScore(context.Background(), "cand", nil)
	if err != nil {
		t.Fatalf("integrationScore: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for empty selection, got %v", got)
	}
}

func TestAssembleFirstPickFavorsPopularityAndMomentum(t *testing.T) {
	// With nothing selected yet the blend is 0.6*popularity + 0.4*momentum,
	// so a rising tool beats a slightly more popular but stagnant one:
	// 0.6*50 + 0.4*100 = 70 over 0.6*60 + 0.4*0 = 36. The 50/50 blend with
	// integration (zero here) would have picked the other tool.
	rising := freeTool("kb-rising", catalog.CategoryKnowledgeBase, 50, 100)
	steady := freeTool("kb-steady", catalog.CategoryKnowledgeBase, 60, 0)

	a := newTestAssembler(nil)
	scenario, err := a.Assemble(context.Background(), AssembleInput{
		ScenarioType: ScenarioMonoStack,
		Allowed:      []catalog.Tool{steady, rising},
		Weights:      uniformWeights(),
		Context:      assembleContext(),
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if len(scenario.Tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(scenario.Tools))
	}
	if scenario.Tools[0].ID != "kb-rising" {
		t.Fatalf("expected kb-rising first, got %q", scenario.Tools[0].ID)
	}
	if scenario.ContainsTool("kb-steady") {
		t.Fatalf("expected kb-steady to lose the category slot")
	}
}

func TestAssembleLaterPicksBlendIntegrationWithPopularity(t *testing.T) {
	// Once the bundle has members the blend is 0.5*integration +
	// 0.5*popularity. The connected tool covers 1 of 1 selected natively,
	// integration 1.0*60 + 100*0.4 = 100, blend 0.5*100 + 0.5*40 = 70; the
	// popular-but-isolated tool only reaches 0.5*0 + 0.5*80 = 40.
	anchor := freeTool("kb-anchor", catalog.CategoryKnowledgeBase, 50, 0)
	popular := freeTool("pm-popular", catalog.CategoryProjectManagement, 80, 0)
	connected := freeTool("pm-connected", catalog.CategoryProjectManagement, 40, 0)

	a := newTestAssembler([]graph.IntegrationEdge{
		{FromID: "pm-connected", ToID: "kb-anchor", Quality: graph.QualityNative},
	})
	scenario, err := a.Assemble(context.Background(), AssembleInput{
		ScenarioType: ScenarioMonoStack,
		Allowed:      []catalog.Tool{popular, connected},
		Anchor:       &anchor,
		UserTools:    []catalog.Tool{anchor},
		Weights:      uniformWeights(),
		Context:      assembleContext(),
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if !scenario.ContainsTool("pm-connected") {
		t.Fatalf("expected pm-connected in the bundle, got %+v", scenario.Tools)
	}
	if scenario.ContainsTool("pm-popular") {
		t.Fatalf("expected pm-popular to lose the category slot")
	}
	for _, tool := range scenario.Tools {
		if tool.ID == "pm-connected" && math.Abs(tool.Breakdown.Integration-100) > 1e-9 {
			t.Fatalf("expected integration 100 for pm-connected, got %v", tool.Breakdown.Integration)
		}
	}
}

func TestAssembleSkipsCandidatesBelowQualityFloor(t *testing.T) {
	// The anchor's synergy bonus lifts its composite far above any candidate:
	// base (100+50+90+30+0)/5 = 54, plus 100 synergy = 154, floor 0.7*154 =
	// 107.8. The project-management candidate scores (100+60+90+30+0)/5 = 56,
	// so the slot stays empty rather than dragging the bundle down.
	anchor := freeTool("kb-anchor", catalog.CategoryKnowledgeBase, 50, 0)
	weak := freeTool("pm-weak", catalog.CategoryProjectManagement, 60, 0)

	ec := assembleContext()
	ec.SynergyBonuses = map[string]float64{"kb-anchor": 100}

	a := newTestAssembler(nil)
	scenario, err := a.Assemble(context.Background(), AssembleInput{
		ScenarioType: ScenarioMonoStack,
		Allowed:      []catalog.Tool{weak},
		Anchor:       &anchor,
		UserTools:    []catalog.Tool{anchor},
		Weights:      uniformWeights(),
		Context:      ec,
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if len(scenario.Tools) != 1 {
		t.Fatalf("expected only the anchor, got %d tools", len(scenario.Tools))
	}
	if scenario.Tools[0].ID != "kb-anchor" {
		t.Fatalf("expected kb-anchor, got %q", scenario.Tools[0].ID)
	}
	if !scenario.Tools[0].IsAnchor {
		t.Fatalf("expected anchor flag on kb-anchor")
	}
}
