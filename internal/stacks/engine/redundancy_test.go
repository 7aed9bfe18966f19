package engine

import (
	"context"
	"testing"

	"stackpilot-backend/internal/catalog"
	"stackpilot-backend/internal/graph"
)

func redundancyResolver(pairs ...graph.RedundancyPair) *RedundancyResolver {
	return &RedundancyResolver{Redundancies: graph.NewMemoryRepo(nil, pairs, nil)}
}

func toolIDs(tools []catalog.Tool) []string {
	ids := make([]string, len(tools))
	for i, t := range tools {
		ids[i] = t.ID
	}
	return ids
}

func TestResolveRemovesOnlyFullStrength(t *testing.T) {
	r := redundancyResolver(
		graph.RedundancyPair{ToolA: "notion", ToolB: "confluence", Strength: graph.StrengthFull, Hint: graph.HintPreferA},
		graph.RedundancyPair{ToolA: "notion", ToolB: "linear", Strength: graph.StrengthPartial, Hint: graph.HintPreferA},
		graph.RedundancyPair{ToolA: "slack", ToolB: "linear", Strength: graph.StrengthNiche, Hint: graph.HintPreferB},
	)
	tools := []catalog.Tool{{ID: "notion"}, {ID: "confluence"}, {ID: "linear"}, {ID: "slack"}}

	kept, err := r.Resolve(context.Background(), tools, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"notion", "linear", "slack"}
	got := toolIDs(kept)
	if len(got) != len(want) {
		t.Fatalf("kept %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kept[%d] = %q, want %q (order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestResolveAnchorNeverRemoved(t *testing.T) {
	r := redundancyResolver(
		// Hint says prefer confluence, but notion is the anchor.
		graph.RedundancyPair{ToolA: "confluence", ToolB: "notion", Strength: graph.StrengthFull, Hint: graph.HintPreferA},
	)
	tools := []catalog.Tool{{ID: "notion"}, {ID: "confluence"}}

	kept, err := r.Resolve(context.Background(), tools, "notion")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(kept) != 1 || kept[0].ID != "notion" {
		t.Errorf("kept %v, want only the anchor notion", toolIDs(kept))
	}
}

func TestResolveHints(t *testing.T) {
	tests := []struct {
		name string
		pair graph.RedundancyPair
		a, b catalog.Tool
		want string // surviving id
	}{
		{
			"prefer A",
			graph.RedundancyPair{ToolA: "a", ToolB: "b", Strength: graph.StrengthFull, Hint: graph.HintPreferA},
			catalog.Tool{ID: "a"}, catalog.Tool{ID: "b"}, "a",
		},
		{
			"prefer B",
			graph.RedundancyPair{ToolA: "a", ToolB: "b", Strength: graph.StrengthFull, Hint: graph.HintPreferB},
			catalog.Tool{ID: "a"}, catalog.Tool{ID: "b"}, "b",
		},
		{
			"context dependent removes pricier",
			graph.RedundancyPair{ToolA: "a", ToolB: "b", Strength: graph.StrengthFull, Hint: graph.HintContextDependent},
			catalog.Tool{ID: "a", CostPerUser: f(30)}, catalog.Tool{ID: "b", CostPerUser: f(10)}, "b",
		},
		{
			"context dependent tie removes B",
			graph.RedundancyPair{ToolA: "a", ToolB: "b", Strength: graph.StrengthFull, Hint: graph.HintContextDependent},
			catalog.Tool{ID: "a", CostPerUser: f(10)}, catalog.Tool{ID: "b", CostPerUser: f(10)}, "a",
		},
		{
			"context dependent unknown cost counts as free",
			graph.RedundancyPair{ToolA: "a", ToolB: "b", Strength: graph.StrengthFull, Hint: graph.HintContextDependent},
			catalog.Tool{ID: "a", CostPerUser: f(5)}, catalog.Tool{ID: "b"}, "b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := redundancyResolver(tt.pair)
			kept, err := r.Resolve(context.Background(), []catalog.Tool{tt.a, tt.b}, "")
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if len(kept) != 1 || kept[0].ID != tt.want {
				t.Errorf("kept %v, want only %q", toolIDs(kept), tt.want)
			}
		})
	}
}

func TestResolveRemovalAccumulates(t *testing.T) {
	// confluence is removed by the first pair; the second pair flags coda too.
	// Neither removal resurrects the other side.
	r := redundancyResolver(
		graph.RedundancyPair{ToolA: "notion", ToolB: "confluence", Strength: graph.StrengthFull, Hint: graph.HintPreferA},
		graph.RedundancyPair{ToolA: "notion", ToolB: "coda", Strength: graph.StrengthFull, Hint: graph.HintPreferA},
	)
	tools := []catalog.Tool{{ID: "notion"}, {ID: "confluence"}, {ID: "coda"}}

	kept, err := r.Resolve(context.Background(), tools, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(kept) != 1 || kept[0].ID != "notion" {
		t.Errorf("kept %v, want only notion", toolIDs(kept))
	}
}

func TestResolveFewerThanTwoToolsIsNoop(t *testing.T) {
	r := redundancyResolver()
	tools := []catalog.Tool{{ID: "notion"}}
	kept, err := r.Resolve(context.Background(), tools, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("kept %d tools, want 1", len(kept))
	}
}
