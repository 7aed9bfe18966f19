package engine

import (
	"errors"
	"fmt"

	"stackpilot-backend/internal/assessment"
	"stackpilot-backend/internal/catalog"
)

// ScenarioType names an optimization philosophy for assembling a stack.
type ScenarioType string

const (
	// ScenarioMonoStack consolidates around one hub tool with few satellites.
	ScenarioMonoStack ScenarioType = "MONO_STACK"
	// ScenarioNativeIntegrator picks best-of-breed tools that connect natively.
	ScenarioNativeIntegrator ScenarioType = "NATIVE_INTEGRATOR"
	// ScenarioAgenticLean maximizes AI-capable tools in a small bundle.
	ScenarioAgenticLean ScenarioType = "AGENTIC_LEAN"
	// ScenarioStarterPack has a defined weight profile and range bias but no
	// assembler path constructs it. Kept as a known gap.
	ScenarioStarterPack ScenarioType = "STARTER_PACK"
)

// EmittedScenarioTypes are the scenario types the pipeline produces, in order.
var EmittedScenarioTypes = []ScenarioType{
	ScenarioMonoStack,
	ScenarioNativeIntegrator,
	ScenarioAgenticLean,
}

// Context carries the assessment-derived signals the engine scores against.
// Built once per pipeline run and read-only afterwards.
type Context struct {
	TeamSize        assessment.TeamSizeBucket
	Stage           assessment.Stage
	Philosophy      assessment.Philosophy
	TechSavviness   assessment.Level
	CostSensitivity assessment.Level
	Compliance      []assessment.ComplianceNeed
	PainPoints      []assessment.PainPoint
	BudgetPerUser   float64
	OwnedToolIDs    map[string]bool
	PrefersAINative bool
	// SynergyBonuses holds externally supplied cluster-match bonuses keyed by
	// tool id. Additive and unweighted.
	SynergyBonuses map[string]float64
}

// ContextFromInput derives the engine context from a validated assessment.
func ContextFromInput(in *assessment.Input, ownedToolIDs map[string]bool) Context {
	return Context{
		TeamSize:        in.TeamSize,
		Stage:           in.Stage,
		Philosophy:      in.Philosophy,
		TechSavviness:   in.TechSavviness,
		CostSensitivity: in.CostSensitivity,
		Compliance:      in.Compliance,
		PainPoints:      in.PainPoints,
		BudgetPerUser:   in.BudgetPerUser,
		OwnedToolIDs:    ownedToolIDs,
		PrefersAINative: in.Philosophy == assessment.PhilosophyAutoPilot,
	}
}

// HasPainPoint reports whether the context carries the given pain point.
func (c Context) HasPainPoint(p assessment.PainPoint) bool {
	for _, candidate := range c.PainPoints {
		if candidate == p {
			return true
		}
	}
	return false
}

// Breakdown exposes every component of a composite score so results stay
// auditable.
type Breakdown struct {
	Fit              float64 `json:"fit"`
	Popularity       float64 `json:"popularity"`
	Cost             float64 `json:"cost"`
	AI               float64 `json:"ai"`
	Integration      float64 `json:"integration"`
	WeightedBase     float64 `json:"weightedBase"`
	SynergyBonus     float64 `json:"synergyBonus"`
	FamiliarityBonus float64 `json:"familiarityBonus"`
}

// ScoredTool pairs a tool with its composite score and breakdown.
type ScoredTool struct {
	Tool      catalog.Tool `json:"tool"`
	Composite float64      `json:"composite"`
	Breakdown Breakdown    `json:"breakdown"`
}

// WorkflowPhase buckets a scenario's tools by the phase of work they serve.
type WorkflowPhase string

const (
	PhasePlan        WorkflowPhase = "PLAN"
	PhaseBuild       WorkflowPhase = "BUILD"
	PhaseCommunicate WorkflowPhase = "COMMUNICATE"
	PhaseAutomate    WorkflowPhase = "AUTOMATE"
	PhaseMeasure     WorkflowPhase = "MEASURE"
)

// PhaseAssignment maps one selected tool onto a workflow phase.
type PhaseAssignment struct {
	Phase       WorkflowPhase `json:"phase"`
	ToolID      string        `json:"toolId"`
	DisplayName string        `json:"displayName"`
}

// SelectedTool is one entry in a built scenario's ordered tool list.
type SelectedTool struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"displayName"`
	Category    catalog.Category `json:"category"`
	Score       float64          `json:"score"`
	Breakdown   Breakdown        `json:"breakdown"`
	IsAnchor    bool             `json:"isAnchor"`
}

// BuiltScenario is one assembled stack recommendation.
type BuiltScenario struct {
	Title                  string            `json:"title"`
	Type                   ScenarioType      `json:"type"`
	Tools                  []SelectedTool    `json:"tools"`
	Displaced              []string          `json:"displaced"`
	Phases                 []PhaseAssignment `json:"phases"`
	MonthlyCostPerUser     float64           `json:"monthlyCostPerUser"`
	ComplexityReductionPct float64           `json:"complexityReductionPct"`
}

// ContainsTool reports whether the scenario's tool list includes id.
func (s BuiltScenario) ContainsTool(id string) bool {
	for _, t := range s.Tools {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ErrInfrastructure marks a collaborator failure. Fatal, no internal retry;
// retry policy belongs to the caller.
var ErrInfrastructure = errors.New("infrastructure failure")

func infraErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInfrastructure, op, err)
}
