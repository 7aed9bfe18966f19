package catalog

import "stackpilot-backend/internal/assessment"

// Category is the closed set of tool categories the engine iterates over.
type Category string

const (
	CategoryProjectManagement Category = "PROJECT_MANAGEMENT"
	CategoryCommunication     Category = "COMMUNICATION"
	CategoryKnowledgeBase     Category = "KNOWLEDGE_BASE"
	CategoryCRM               Category = "CRM"
	CategoryAutomation        Category = "AUTOMATION"
	CategoryDesign            Category = "DESIGN"
	CategoryDevTools          Category = "DEV_TOOLS"
	CategoryFinance           Category = "FINANCE"
	CategorySupport           Category = "SUPPORT"
	CategoryAnalytics         Category = "ANALYTICS"
	CategoryAIAssistant       Category = "AI_ASSISTANT"
	CategoryScheduling        Category = "SCHEDULING"
)

// ComplexityTier classifies how hard a tool is to adopt and operate.
type ComplexityTier string

const (
	ComplexityLow    ComplexityTier = "LOW"
	ComplexityMedium ComplexityTier = "MEDIUM"
	ComplexityHigh   ComplexityTier = "HIGH"
)

// PricingTier classifies a tool's pricing model.
type PricingTier string

const (
	PricingFree       PricingTier = "FREE"
	PricingFreemium   PricingTier = "FREEMIUM"
	PricingPaid       PricingTier = "PAID"
	PricingEnterprise PricingTier = "ENTERPRISE"
)

// ComplianceFlags records which compliance requirements a tool satisfies.
type ComplianceFlags struct {
	SOC2        bool `json:"soc2"`
	HIPAA       bool `json:"hipaa"`
	GDPR        bool `json:"gdpr"`
	EUResidency bool `json:"euResidency"`
	SelfHosted  bool `json:"selfHosted"`
	AirGapped   bool `json:"airGapped"`
}

// Satisfies reports whether the flags cover every listed requirement.
func (f ComplianceFlags) Satisfies(needs []assessment.ComplianceNeed) bool {
	for _, need := range needs {
		switch need {
		case assessment.ComplianceSOC2:
			if !f.SOC2 {
				return false
			}
		case assessment.ComplianceHIPAA:
			if !f.HIPAA {
				return false
			}
		case assessment.ComplianceGDPR:
			if !f.GDPR {
				return false
			}
		case assessment.ComplianceEUResidency:
			if !f.EUResidency {
				return false
			}
		case assessment.ComplianceSelfHosted:
			if !f.SelfHosted {
				return false
			}
		case assessment.ComplianceAirGapped:
			if !f.AirGapped {
				return false
			}
		}
	}
	return true
}

// Popularity is a composite 0-100 score plus its five named sub-scores.
type Popularity struct {
	Composite     float64 `json:"composite"`
	Adoption      float64 `json:"adoption"`
	Momentum      float64 `json:"momentum"`
	Community     float64 `json:"community"`
	Support       float64 `json:"support"`
	Documentation float64 `json:"documentation"`
}

// Tool is a catalog entry. Immutable for the duration of a pipeline run.
type Tool struct {
	ID             string                      `json:"id"`
	Name           string                      `json:"name"` // canonical, lowercase
	DisplayName    string                      `json:"displayName"`
	Aliases        []string                    `json:"aliases"`
	Category       Category                    `json:"category"`
	Complexity     ComplexityTier              `json:"complexity"`
	Pricing        PricingTier                 `json:"pricing"`
	CostPerUser    *float64                    `json:"costPerUser"` // monthly, nil when unknown
	FreeForever    bool                        `json:"freeForever"`
	Compliance     ComplianceFlags             `json:"compliance"`
	HasAIFeatures  bool                        `json:"hasAiFeatures"`
	Popularity     Popularity                  `json:"popularity"`
	BestForSizes   []assessment.TeamSizeBucket `json:"bestForSizes"`  // empty means any
	BestForStages  []assessment.Stage          `json:"bestForStages"` // empty means any
	BestForSavvy   []assessment.Level          `json:"bestForSavvy"`  // empty means any
}

// FitsBudget reports whether the tool is affordable for the given monthly
// per-user budget. Unknown cost and free tools always fit.
func (t Tool) FitsBudget(budgetPerUser float64) bool {
	if t.FreeForever || t.CostPerUser == nil {
		return true
	}
	if budgetPerUser <= 0 {
		return *t.CostPerUser == 0
	}
	// Tools moderately over budget stay in the pool; the cost sub-score
	// penalizes them instead of excluding them outright.
	return *t.CostPerUser <= budgetPerUser*2
}

// FilterAllowed returns the subset of tools that satisfy the assessment's
// compliance requirements and budget. This runs upstream of the decision
// engine, which only ever sees the allowed pool.
func FilterAllowed(tools []Tool, in *assessment.Input) []Tool {
	allowed := make([]Tool, 0, len(tools))
	for _, t := range tools {
		if !t.Compliance.Satisfies(in.Compliance) {
			continue
		}
		if !t.FitsBudget(in.BudgetPerUser) {
			continue
		}
		allowed = append(allowed, t)
	}
	return allowed
}
