package engine

import (
	"context"

	"stackpilot-backend/internal/catalog"
	"stackpilot-backend/internal/graph"
	"stackpilot-backend/internal/shared/telemetry"
)

// Assembler builds one coherent, non-redundant tool bundle per scenario type
// by walking that scenario's category priority list.
type Assembler struct {
	Integrations graph.IntegrationsRepo
	Redundancy   *RedundancyResolver
	Advisor      *ReplacementAdvisor
}

// AssembleInput is everything one Assemble call needs. Allowed is the
// budget/compliance-filtered pool; UserTools are the resolved current tools.
type AssembleInput struct {
	ScenarioType ScenarioType
	Allowed      []catalog.Tool
	Anchor       *catalog.Tool
	UserTools    []catalog.Tool
	Weights      WeightProfile
	Context      Context
}

type scenarioSpec struct {
	title      string
	categories []catalog.Category
	aiOnly     bool
}

// scenarioSpecs drives scenario-type variation: which categories are walked,
// in what order, and whether candidates are pre-filtered to AI-capable tools.
var scenarioSpecs = map[ScenarioType]scenarioSpec{
	ScenarioMonoStack: {
		title: "The Consolidated Stack",
		categories: []catalog.Category{
			catalog.CategoryKnowledgeBase,
			catalog.CategoryProjectManagement,
			catalog.CategoryCommunication,
			catalog.CategoryAutomation,
			catalog.CategoryCRM,
			catalog.CategoryFinance,
			catalog.CategoryAnalytics,
		},
	},
	ScenarioNativeIntegrator: {
		title: "Best of Breed, Natively Wired",
		categories: []catalog.Category{
			catalog.CategoryProjectManagement,
			catalog.CategoryCommunication,
			catalog.CategoryKnowledgeBase,
			catalog.CategoryDevTools,
			catalog.CategoryCRM,
			catalog.CategoryAutomation,
			catalog.CategoryAnalytics,
			catalog.CategoryDesign,
			catalog.CategorySupport,
			catalog.CategoryScheduling,
		},
	},
	ScenarioAgenticLean: {
		title: "The Agentic Lean Stack",
		categories: []catalog.Category{
			catalog.CategoryAIAssistant,
			catalog.CategoryAutomation,
			catalog.CategoryProjectManagement,
			catalog.CategoryCommunication,
			catalog.CategoryKnowledgeBase,
			catalog.CategoryAnalytics,
			catalog.CategoryCRM,
		},
		aiOnly: true,
	},
	// Defined but never assembled; EmittedScenarioTypes does not include it.
	ScenarioStarterPack: {
		title: "The Starter Pack",
		categories: []catalog.Category{
			catalog.CategoryProjectManagement,
			catalog.CategoryCommunication,
			catalog.CategoryKnowledgeBase,
		},
	},
}

var categoryPhases = map[catalog.Category]WorkflowPhase{
	catalog.CategoryProjectManagement: PhasePlan,
	catalog.CategoryKnowledgeBase:     PhasePlan,
	catalog.CategoryScheduling:        PhasePlan,
	catalog.CategoryDevTools:          PhaseBuild,
	catalog.CategoryDesign:            PhaseBuild,
	catalog.CategoryCommunication:     PhaseCommunicate,
	catalog.CategoryCRM:               PhaseCommunicate,
	catalog.CategorySupport:           PhaseCommunicate,
	catalog.CategoryAutomation:        PhaseAutomate,
	catalog.CategoryAIAssistant:       PhaseAutomate,
	catalog.CategoryAnalytics:         PhaseMeasure,
	catalog.CategoryFinance:           PhaseMeasure,
}

// Assemble runs the three-stage pipeline for one scenario type: greedy
// category selection, redundancy resolution, then replacement substitution.
// Each stage produces a new list; nothing is mutated in place. Identical
// inputs always produce identical output.
func (a *Assembler) Assemble(ctx context.Context, in AssembleInput) (BuiltScenario, error) {
	spec := scenarioSpecs[in.ScenarioType]

	selected, err := a.selectByCategory(ctx, in, spec)
	if err != nil {
		return BuiltScenario{}, err
	}

	deduped, err := a.resolveRedundant(ctx, selected, in)
	if err != nil {
		return BuiltScenario{}, err
	}

	final, err := a.applyReplacements(ctx, deduped, in, spec)
	if err != nil {
		return BuiltScenario{}, err
	}

	return buildScenario(spec.title, in, final), nil
}

// selectByCategory walks the scenario's category priority list and picks the
// best-scoring remaining candidate for each uncovered category, subject to
// the adaptive count range and the quality floor.
func (a *Assembler) selectByCategory(ctx context.Context, in AssembleInput, spec scenarioSpec) ([]ScoredTool, error) {
	target := RangeFor(in.Context.TeamSize, in.ScenarioType, in.Context.PainPoints)

	var selected []ScoredTool
	covered := make(map[catalog.Category]bool)
	chosen := make(map[string]bool)

	if in.Anchor != nil {
		anchor := ScoreTool(*in.Anchor, in.Weights, in.Context, ScoreInput{
			SynergyBonus: in.Context.SynergyBonuses[in.Anchor.ID],
		})
		selected = append(selected, anchor)
		covered[in.Anchor.Category] = true
		chosen[in.Anchor.ID] = true
	}

	for _, category := range spec.categories {
		if len(selected) >= target.Max {
			break
		}
		if covered[category] {
			continue
		}

		best, err := a.bestCandidate(ctx, in, spec, category, selected, chosen)
		if err != nil {
			return nil, err
		}
		if best == nil {
			// No allowed tool serves this category; the bundle simply omits it.
			telemetry.Info("engine.category_empty", map[string]any{
				"scenario": string(in.ScenarioType),
				"category": string(category),
			})
			continue
		}

		if floor := qualityFloorOf(selected); len(selected) > 0 && best.Composite < floor {
			continue
		}

		selected = append(selected, *best)
		covered[category] = true
		chosen[best.Tool.ID] = true
	}

	return selected, nil
}

// bestCandidate scores each remaining candidate in a category and returns the
// winner, or nil when the category has no candidates. Ties break toward the
// first-encountered tool in pool order.
func (a *Assembler) bestCandidate(ctx context.Context, in AssembleInput, spec scenarioSpec, category catalog.Category, selected []ScoredTool, chosen map[string]bool) (*ScoredTool, error) {
	var (
		best         *ScoredTool
		bestBlend    float64
		haveSelected = len(selected) > 0
	)

	for i := range in.Allowed {
		tool := in.Allowed[i]
		if tool.Category != category || chosen[tool.ID] {
			continue
		}
		if spec.aiOnly && !tool.HasAIFeatures {
			continue
		}

		integration, err := a.integrationScore(ctx, tool.ID, selected)
		if err != nil {
			return nil, err
		}

		// Selection blends connectivity with popularity once the bundle has
		// members; the first pick leans on popularity and momentum instead.
		var blend float64
		if haveSelected {
			blend = 0.5*integration + 0.5*popularityScore(tool)
		} else {
			blend = 0.6*popularityScore(tool) + 0.4*tool.Popularity.Momentum
		}

		if best == nil || blend > bestBlend {
			scored := ScoreTool(tool, in.Weights, in.Context, ScoreInput{
				IntegrationScore: integration,
				SynergyBonus:     in.Context.SynergyBonuses[tool.ID],
			})
			best = &scored
			bestBlend = blend
		}
	}

	return best, nil
}

// integrationScore rates how well a candidate connects to the tools selected
// so far: coverage of the selected set is worth up to 60 points and the
// average quality tier of those links up to 40.
func (a *Assembler) integrationScore(ctx context.Context, toolID string, selected []ScoredTool) (float64, error) {
	if len(selected) == 0 {
		return 0, nil
	}

	edges, err := a.Integrations.ForTool(ctx, toolID)
	if err != nil {
		return 0, infraErr("integrations.ForTool", err)
	}
	qualityByTarget := make(map[string]graph.IntegrationQuality, len(edges))
	for _, e := range edges {
		if _, ok := qualityByTarget[e.ToID]; !ok {
			qualityByTarget[e.ToID] = e.Quality
		}
	}

	matched := 0
	qualitySum := 0.0
	for _, s := range selected {
		if q, ok := qualityByTarget[s.Tool.ID]; ok {
			matched++
			qualitySum += q.Score()
		}
	}
	if matched == 0 {
		return 0, nil
	}

	coverage := float64(matched) / float64(len(selected))
	return coverage*60 + (qualitySum/float64(matched))*0.4, nil
}

func (a *Assembler) resolveRedundant(ctx context.Context, selected []ScoredTool, in AssembleInput) ([]ScoredTool, error) {
	if len(selected) < 2 {
		return selected, nil
	}

	tools := make([]catalog.Tool, len(selected))
	byID := make(map[string]ScoredTool, len(selected))
	for i, s := range selected {
		tools[i] = s.Tool
		byID[s.Tool.ID] = s
	}

	anchorID := ""
	if in.Anchor != nil {
		anchorID = in.Anchor.ID
	}
	kept, err := a.Redundancy.Resolve(ctx, tools, anchorID)
	if err != nil {
		return nil, err
	}

	out := make([]ScoredTool, 0, len(kept))
	for _, t := range kept {
		out = append(out, byID[t.ID])
	}
	return out, nil
}

// applyReplacements swaps each non-anchor selection for a context-preferred
// substitute when one exists in the allowed pool. Context-agnostic default
// suggestions (score zero) are left alone, and a substitute must satisfy the
// same AI-only constraint the selection stage enforced.
func (a *Assembler) applyReplacements(ctx context.Context, selected []ScoredTool, in AssembleInput, spec scenarioSpec) ([]ScoredTool, error) {
	if a.Advisor == nil || len(selected) == 0 {
		return selected, nil
	}

	allowedByID := make(map[string]catalog.Tool, len(in.Allowed))
	for _, t := range in.Allowed {
		allowedByID[t.ID] = t
	}
	selectedIDs := make(map[string]bool, len(selected))
	for _, s := range selected {
		selectedIDs[s.Tool.ID] = true
	}

	anchorID := ""
	if in.Anchor != nil {
		anchorID = in.Anchor.ID
	}

	out := make([]ScoredTool, 0, len(selected))
	for i, s := range selected {
		if s.Tool.ID == anchorID {
			out = append(out, s)
			continue
		}

		suggestion, err := a.Advisor.FindBest(ctx, s.Tool.ID, in.Context)
		if err != nil {
			return nil, err
		}
		if suggestion == nil || suggestion.Score <= 0 {
			out = append(out, s)
			continue
		}
		replacement, ok := allowedByID[suggestion.Rule.ToID]
		if !ok || selectedIDs[replacement.ID] {
			out = append(out, s)
			continue
		}
		if spec.aiOnly && !replacement.HasAIFeatures {
			out = append(out, s)
			continue
		}

		others := append(append([]ScoredTool{}, selected[:i]...), selected[i+1:]...)
		integration, err := a.integrationScore(ctx, replacement.ID, others)
		if err != nil {
			return nil, err
		}
		swapped := ScoreTool(replacement, in.Weights, in.Context, ScoreInput{
			IntegrationScore: integration,
			SynergyBonus:     in.Context.SynergyBonuses[replacement.ID],
		})

		selectedIDs[replacement.ID] = true
		delete(selectedIDs, s.Tool.ID)
		out = append(out, swapped)
	}

	return out, nil
}

func qualityFloorOf(selected []ScoredTool) float64 {
	scores := make([]float64, len(selected))
	for i, s := range selected {
		scores[i] = s.Composite
	}
	return QualityFloor(scores)
}

func buildScenario(title string, in AssembleInput, selected []ScoredTool) BuiltScenario {
	anchorID := ""
	if in.Anchor != nil {
		anchorID = in.Anchor.ID
	}

	tools := make([]SelectedTool, 0, len(selected))
	finalIDs := make(map[string]bool, len(selected))
	monthlyCost := 0.0
	var phases []PhaseAssignment
	for _, s := range selected {
		tools = append(tools, SelectedTool{
			ID:          s.Tool.ID,
			DisplayName: s.Tool.DisplayName,
			Category:    s.Tool.Category,
			Score:       s.Composite,
			Breakdown:   s.Breakdown,
			IsAnchor:    s.Tool.ID == anchorID,
		})
		finalIDs[s.Tool.ID] = true
		if s.Tool.CostPerUser != nil {
			monthlyCost += *s.Tool.CostPerUser
		}
		if phase, ok := categoryPhases[s.Tool.Category]; ok {
			phases = append(phases, PhaseAssignment{
				Phase:       phase,
				ToolID:      s.Tool.ID,
				DisplayName: s.Tool.DisplayName,
			})
		}
	}

	var displaced []string
	for _, t := range in.UserTools {
		if !finalIDs[t.ID] {
			displaced = append(displaced, t.DisplayName)
		}
	}

	reduction := 0.0
	if n := len(in.UserTools); n > 0 {
		reduction = (1 - float64(len(selected))/float64(n)) * 100
		if reduction < 0 {
			reduction = 0
		}
	}

	return BuiltScenario{
		Title:                  title,
		Type:                   in.ScenarioType,
		Tools:                  tools,
		Displaced:              displaced,
		Phases:                 phases,
		MonthlyCostPerUser:     monthlyCost,
		ComplexityReductionPct: reduction,
	}
}
