package graph

import "stackpilot-backend/internal/assessment"

// IntegrationQuality tiers how well two tools connect.
type IntegrationQuality string

const (
	QualityNative      IntegrationQuality = "NATIVE"
	QualityDeep        IntegrationQuality = "DEEP"
	QualityBasic       IntegrationQuality = "BASIC"
	QualityWebhookOnly IntegrationQuality = "WEBHOOK_ONLY"
	QualityZapierOnly  IntegrationQuality = "ZAPIER_ONLY"
)

// Score maps a quality tier onto the 0-100 scale used by the assembler.
func (q IntegrationQuality) Score() float64 {
	switch q {
	case QualityNative:
		return 100
	case QualityDeep:
		return 80
	case QualityBasic:
		return 50
	case QualityWebhookOnly:
		return 30
	case QualityZapierOnly:
		return 15
	default:
		return 0
	}
}

// IntegrationEdge records that FromID can connect to ToID at a quality tier.
// Edges are stored symmetrically: an edge exists in both directions.
type IntegrationEdge struct {
	FromID  string             `json:"fromId"`
	ToID    string             `json:"toId"`
	Quality IntegrationQuality `json:"quality"`
}

// RedundancyStrength classifies how much two tools' capabilities overlap.
type RedundancyStrength string

const (
	StrengthNiche   RedundancyStrength = "NICHE"
	StrengthPartial RedundancyStrength = "PARTIAL"
	StrengthFull    RedundancyStrength = "FULL"
)

// RedundancyHint says which side of a pair to keep when both are present.
type RedundancyHint string

const (
	HintPreferA          RedundancyHint = "PREFER_A"
	HintPreferB          RedundancyHint = "PREFER_B"
	HintContextDependent RedundancyHint = "CONTEXT_DEPENDENT"
)

// RedundancyPair records an overlap between two tools. Conceptually unordered;
// stored as (ToolA, ToolB) because the hint refers to the stored sides.
type RedundancyPair struct {
	ToolA    string             `json:"toolA"`
	ToolB    string             `json:"toolB"`
	Strength RedundancyStrength `json:"strength"`
	Hint     RedundancyHint     `json:"hint"`
	Overlap  []string           `json:"overlap"`
}

// ReplacementReason tags why one tool should replace another.
type ReplacementReason string

const (
	ReasonCostSavings   ReplacementReason = "COST_SAVINGS"
	ReasonAINative      ReplacementReason = "AI_NATIVE"
	ReasonSimplicity    ReplacementReason = "SIMPLICITY"
	ReasonConsolidation ReplacementReason = "CONSOLIDATION"
	ReasonCompliance    ReplacementReason = "COMPLIANCE"
)

// ReplacementConditions are optional predicates that must all hold for a rule
// to fully apply. Nil/empty fields are unconstrained.
type ReplacementConditions struct {
	MinCostSensitivity *assessment.Level           `json:"minCostSensitivity,omitempty"`
	TechSavviness      []assessment.Level          `json:"techSavviness,omitempty"`
	TeamSizes          []assessment.TeamSizeBucket `json:"teamSizes,omitempty"`
	RequiredCompliance []assessment.ComplianceNeed `json:"requiredCompliance,omitempty"`
	PrefersAINative    *bool                       `json:"prefersAiNative,omitempty"`
}

// ReplacementRule suggests substituting FromID with ToID under Conditions.
type ReplacementRule struct {
	FromID     string                `json:"fromId"`
	ToID       string                `json:"toId"`
	Reason     ReplacementReason     `json:"reason"`
	Conditions ReplacementConditions `json:"conditions"`
}
