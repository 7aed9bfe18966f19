package assessment

import (
	"fmt"
	"sort"
	"strings"

	"stackpilot-backend/internal/shared/util"
)

// Stage is the company's funding/maturity stage.
type Stage string

const (
	StageIdea    Stage = "IDEA"
	StagePreSeed Stage = "PRE_SEED"
	StageSeed    Stage = "SEED"
	StageGrowth  Stage = "GROWTH"
	StageScale   Stage = "SCALE"
)

// TeamSizeBucket buckets headcount into the ranges the engine reasons about.
type TeamSizeBucket string

const (
	TeamSolo  TeamSizeBucket = "SOLO"
	TeamMicro TeamSizeBucket = "MICRO" // 2-10
	TeamSmall TeamSizeBucket = "SMALL" // 11-50
	TeamMid   TeamSizeBucket = "MID"   // 51-200
)

// Philosophy is the team's stated automation philosophy.
type Philosophy string

const (
	PhilosophyAutoPilot Philosophy = "AUTO_PILOT"
	PhilosophyHybrid    Philosophy = "HYBRID"
	PhilosophyCoPilot   Philosophy = "CO_PILOT"
)

// Level is a shared low/medium/high scale used for savviness and sensitivities.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// ComplianceNeed names a compliance constraint the stack must satisfy.
type ComplianceNeed string

const (
	ComplianceSOC2        ComplianceNeed = "SOC2"
	ComplianceHIPAA       ComplianceNeed = "HIPAA"
	ComplianceGDPR        ComplianceNeed = "GDPR"
	ComplianceEUResidency ComplianceNeed = "EU_RESIDENCY"
	ComplianceSelfHosted  ComplianceNeed = "SELF_HOSTED"
	ComplianceAirGapped   ComplianceNeed = "AIR_GAPPED"
)

// PainPoint tags a problem the team reports with their current stack.
type PainPoint string

const (
	PainToolOverload     PainPoint = "TOOL_OVERLOAD"
	PainHighCosts        PainPoint = "HIGH_COSTS"
	PainManualWork       PainPoint = "MANUAL_WORK"
	PainPoorIntegration  PainPoint = "POOR_INTEGRATION"
	PainDataSilos        PainPoint = "DATA_SILOS"
	PainContextSwitching PainPoint = "CONTEXT_SWITCHING"
)

// Input is the structured assessment a team submits to get stack scenarios.
type Input struct {
	CompanyName      string           `json:"companyName"`
	Stage            Stage            `json:"stage"`
	TeamSize         TeamSizeBucket   `json:"teamSize"`
	CurrentTools     []string         `json:"currentTools"`
	Philosophy       Philosophy       `json:"philosophy"`
	TechSavviness    Level            `json:"techSavviness"`
	BudgetPerUser    float64          `json:"budgetPerUser"`
	CostSensitivity  Level            `json:"costSensitivity"`
	RiskSensitivity  Level            `json:"riskSensitivity"`
	Compliance       []ComplianceNeed `json:"compliance"`
	AnchorPreference string           `json:"anchorPreference"` // catalog category the team wants as hub
	PainPoints       []PainPoint      `json:"painPoints"`
	SoloFounder      bool             `json:"soloFounder"`
}

var (
	validStages = map[Stage]bool{
		StageIdea: true, StagePreSeed: true, StageSeed: true, StageGrowth: true, StageScale: true,
	}
	validTeamSizes = map[TeamSizeBucket]bool{
		TeamSolo: true, TeamMicro: true, TeamSmall: true, TeamMid: true,
	}
	validPhilosophies = map[Philosophy]bool{
		PhilosophyAutoPilot: true, PhilosophyHybrid: true, PhilosophyCoPilot: true,
	}
	validLevels = map[Level]bool{
		LevelLow: true, LevelMedium: true, LevelHigh: true,
	}
	validCompliance = map[ComplianceNeed]bool{
		ComplianceSOC2: true, ComplianceHIPAA: true, ComplianceGDPR: true,
		ComplianceEUResidency: true, ComplianceSelfHosted: true, ComplianceAirGapped: true,
	}
	validPainPoints = map[PainPoint]bool{
		PainToolOverload: true, PainHighCosts: true, PainManualWork: true,
		PainPoorIntegration: true, PainDataSilos: true, PainContextSwitching: true,
	}
)

// Normalize uppercases enum fields and trims free-text entries in place.
func (in *Input) Normalize() {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Stage = Stage(upper(string(in.Stage)))
	in.TeamSize = TeamSizeBucket(upper(string(in.TeamSize)))
	in.Philosophy = Philosophy(upper(string(in.Philosophy)))
	in.TechSavviness = Level(upper(string(in.TechSavviness)))
	in.CostSensitivity = Level(upper(string(in.CostSensitivity)))
	in.RiskSensitivity = Level(upper(string(in.RiskSensitivity)))
	in.AnchorPreference = upper(in.AnchorPreference)

	tools := make([]string, 0, len(in.CurrentTools))
	for _, t := range in.CurrentTools {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tools = append(tools, trimmed)
		}
	}
	in.CurrentTools = tools

	for i := range in.Compliance {
		in.Compliance[i] = ComplianceNeed(upper(string(in.Compliance[i])))
	}
	for i := range in.PainPoints {
		in.PainPoints[i] = PainPoint(upper(string(in.PainPoints[i])))
	}
}

// Validate reports the first invalid field. Callers should Normalize first.
func (in *Input) Validate() error {
	if !validStages[in.Stage] {
		return fmt.Errorf("stage %q is not a recognized stage", in.Stage)
	}
	if !validTeamSizes[in.TeamSize] {
		return fmt.Errorf("teamSize %q is not a recognized team size bucket", in.TeamSize)
	}
	if !validPhilosophies[in.Philosophy] {
		return fmt.Errorf("philosophy %q is not a recognized automation philosophy", in.Philosophy)
	}
	if !validLevels[in.TechSavviness] {
		return fmt.Errorf("techSavviness %q must be LOW, MEDIUM, or HIGH", in.TechSavviness)
	}
	if !validLevels[in.CostSensitivity] {
		return fmt.Errorf("costSensitivity %q must be LOW, MEDIUM, or HIGH", in.CostSensitivity)
	}
	if !validLevels[in.RiskSensitivity] {
		return fmt.Errorf("riskSensitivity %q must be LOW, MEDIUM, or HIGH", in.RiskSensitivity)
	}
	if in.BudgetPerUser < 0 {
		return fmt.Errorf("budgetPerUser must not be negative")
	}
	for _, c := range in.Compliance {
		if !validCompliance[c] {
			return fmt.Errorf("compliance %q is not a recognized requirement", c)
		}
	}
	for _, p := range in.PainPoints {
		if !validPainPoints[p] {
			return fmt.Errorf("painPoint %q is not a recognized pain point", p)
		}
	}
	return nil
}

// HasPainPoint reports whether the assessment carries the given pain point.
func (in *Input) HasPainPoint(p PainPoint) bool {
	for _, candidate := range in.PainPoints {
		if candidate == p {
			return true
		}
	}
	return false
}

// Fingerprint returns a stable SHA-256 hex digest of the canonicalized input.
// External result caches key on this value, so field order and set order must
// not affect it.
func (in *Input) Fingerprint() string {
	tools := append([]string(nil), in.CurrentTools...)
	for i := range tools {
		tools[i] = strings.ToLower(tools[i])
	}
	sort.Strings(tools)

	compliance := make([]string, 0, len(in.Compliance))
	for _, c := range in.Compliance {
		compliance = append(compliance, string(c))
	}
	sort.Strings(compliance)

	pains := make([]string, 0, len(in.PainPoints))
	for _, p := range in.PainPoints {
		pains = append(pains, string(p))
	}
	sort.Strings(pains)

	canonical := strings.Join([]string{
		string(in.Stage),
		string(in.TeamSize),
		strings.Join(tools, ","),
		string(in.Philosophy),
		string(in.TechSavviness),
		fmt.Sprintf("%.2f", in.BudgetPerUser),
		string(in.CostSensitivity),
		string(in.RiskSensitivity),
		strings.Join(compliance, ","),
		in.AnchorPreference,
		strings.Join(pains, ","),
		fmt.Sprintf("%t", in.SoloFounder),
	}, "|")

	return util.DigestHex(canonical)
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
