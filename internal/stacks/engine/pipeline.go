package engine

import (
	"context"

	"stackpilot-backend/internal/assessment"
	"stackpilot-backend/internal/catalog"
	"stackpilot-backend/internal/graph"
	"stackpilot-backend/internal/shared/telemetry"
)

// Pipeline is the top-level orchestrator: it resolves the user's tool names
// once, derives the anchor, then assembles one scenario per emitted type.
// All collaborators are injected; a Pipeline is stateless after construction
// and safe for concurrent use.
type Pipeline struct {
	Catalog      catalog.Repo
	Integrations graph.IntegrationsRepo
	Redundancies graph.RedundanciesRepo
	Replacements graph.ReplacementsRepo
}

// Result is the full output of one pipeline run.
type Result struct {
	Scenarios []BuiltScenario   `json:"scenarios"`
	Resolved  map[string]*Match `json:"resolved"`
	Unmatched []string          `json:"unmatched"`
	AnchorID  string            `json:"anchorId,omitempty"`
}

// Run executes the pipeline for a validated assessment. Individual name
// resolution misses degrade to unmatched entries and an empty allowed pool
// yields scenarios with partial coverage; only collaborator failures return
// an error, and those carry ErrInfrastructure.
func (p *Pipeline) Run(ctx context.Context, in *assessment.Input) (*Result, error) {
	tools, err := p.Catalog.GetAllTools(ctx)
	if err != nil {
		return nil, infraErr("catalog.GetAllTools", err)
	}

	resolved := ResolveToolNames(in.CurrentTools, tools)

	var (
		unmatched []string
		userTools []catalog.Tool
		owned     = make(map[string]bool)
	)
	// Iterate input order, not map order, to keep output stable.
	for _, name := range in.CurrentTools {
		match := resolved[name]
		if match == nil {
			unmatched = append(unmatched, name)
			continue
		}
		if !owned[match.Tool.ID] {
			owned[match.Tool.ID] = true
			userTools = append(userTools, match.Tool)
		}
	}

	anchor := pickAnchor(userTools, in.AnchorPreference)

	allowed := catalog.FilterAllowed(tools, in)
	if len(allowed) == 0 {
		telemetry.Error("engine.empty_pool", map[string]any{
			"compliance": len(in.Compliance),
			"budget":     in.BudgetPerUser,
		})
	}
	if anchor != nil && !poolContains(allowed, anchor.ID) {
		// The anchor survives filtering: the team already pays for it.
		allowed = append(allowed, *anchor)
	}

	ec := ContextFromInput(in, owned)

	assembler := &Assembler{
		Integrations: p.Integrations,
		Redundancy:   &RedundancyResolver{Redundancies: p.Redundancies},
		Advisor:      &ReplacementAdvisor{Replacements: p.Replacements},
	}

	result := &Result{
		Resolved:  resolved,
		Unmatched: unmatched,
	}
	if anchor != nil {
		result.AnchorID = anchor.ID
	}

	for _, scenarioType := range EmittedScenarioTypes {
		weights := BuildWeightProfile(scenarioType, in)
		scenario, err := assembler.Assemble(ctx, AssembleInput{
			ScenarioType: scenarioType,
			Allowed:      allowed,
			Anchor:       anchor,
			UserTools:    userTools,
			Weights:      weights,
			Context:      ec,
		})
		if err != nil {
			return nil, err
		}
		result.Scenarios = append(result.Scenarios, scenario)
	}

	return result, nil
}

// pickAnchor returns the first resolved user tool whose category matches the
// stated anchor preference. No preference or no match means no anchor.
func pickAnchor(userTools []catalog.Tool, preference string) *catalog.Tool {
	if preference == "" {
		return nil
	}
	for i := range userTools {
		if string(userTools[i].Category) == preference {
			return &userTools[i]
		}
	}
	return nil
}

func poolContains(pool []catalog.Tool, id string) bool {
	for _, t := range pool {
		if t.ID == id {
			return true
		}
	}
	return false
}
