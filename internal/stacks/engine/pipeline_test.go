package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"stackpilot-backend/internal/assessment"
	"stackpilot-backend/internal/catalog"
	"stackpilot-backend/internal/graph"
)

func seededPipeline() *Pipeline {
	graphRepo := graph.NewSeededRepo()
	return &Pipeline{
		Catalog:      catalog.NewSeededRepo(),
		Integrations: graphRepo,
		Redundancies: graphRepo,
		Replacements: graphRepo,
	}
}

func pipelineInput() *assessment.Input {
	in := &assessment.Input{
		CompanyName:      "Acme Labs",
		Stage:            assessment.StageSeed,
		TeamSize:         assessment.TeamMicro,
		CurrentTools:     []string{"notion", "slack", "fantasyware-9000"},
		Philosophy:       assessment.PhilosophyHybrid,
		TechSavviness:    assessment.LevelMedium,
		BudgetPerUser:    60,
		CostSensitivity:  assessment.LevelMedium,
		RiskSensitivity:  assessment.LevelMedium,
		AnchorPreference: "KNOWLEDGE_BASE",
		PainPoints:       []assessment.PainPoint{assessment.PainToolOverload},
	}
	in.Normalize()
	return in
}

func TestPipelineRun(t *testing.T) {
	result, err := seededPipeline().Run(context.Background(), pipelineInput())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Scenarios) != len(EmittedScenarioTypes) {
		t.Fatalf("got %d scenarios, want %d", len(result.Scenarios), len(EmittedScenarioTypes))
	}
	for i, scenarioType := range EmittedScenarioTypes {
		if result.Scenarios[i].Type != scenarioType {
			t.Errorf("scenario %d type = %s, want %s", i, result.Scenarios[i].Type, scenarioType)
		}
	}

	if len(result.Unmatched) != 1 || result.Unmatched[0] != "fantasyware-9000" {
		t.Errorf("unmatched = %v, want [fantasyware-9000]", result.Unmatched)
	}
	if result.AnchorID != "notion" {
		t.Errorf("anchor = %q, want notion (first user tool in the preferred category)", result.AnchorID)
	}
}

func TestPipelineScenariosHaveNoDuplicates(t *testing.T) {
	result, err := seededPipeline().Run(context.Background(), pipelineInput())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, scenario := range result.Scenarios {
		seen := make(map[string]bool)
		for _, tool := range scenario.Tools {
			if seen[tool.ID] {
				t.Errorf("%s contains %q twice", scenario.Type, tool.ID)
			}
			seen[tool.ID] = true
		}
		if len(scenario.Tools) == 0 {
			t.Errorf("%s is empty", scenario.Type)
		}
	}
}

func TestPipelineAnchorSurvivesEveryScenario(t *testing.T) {
	result, err := seededPipeline().Run(context.Background(), pipelineInput())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, scenario := range result.Scenarios {
		if !scenario.ContainsTool(result.AnchorID) {
			t.Errorf("%s displaced the anchor %q", scenario.Type, result.AnchorID)
			continue
		}
		for _, tool := range scenario.Tools {
			if tool.ID == result.AnchorID && !tool.IsAnchor {
				t.Errorf("%s does not flag %q as anchor", scenario.Type, tool.ID)
			}
		}
	}
}

func TestPipelineRespectsToolCountRange(t *testing.T) {
	in := pipelineInput()
	result, err := seededPipeline().Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, scenario := range result.Scenarios {
		target := RangeFor(in.TeamSize, scenario.Type, in.PainPoints)
		if len(scenario.Tools) > target.Max {
			t.Errorf("%s has %d tools, want at most %d", scenario.Type, len(scenario.Tools), target.Max)
		}
	}
}

func TestPipelineDeterministic(t *testing.T) {
	p := seededPipeline()

	first, err := p.Run(context.Background(), pipelineInput())
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	second, err := p.Run(context.Background(), pipelineInput())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	if !reflect.DeepEqual(first.Scenarios, second.Scenarios) {
		t.Error("identical inputs produced different scenarios")
	}
	if !reflect.DeepEqual(first.Unmatched, second.Unmatched) {
		t.Errorf("unmatched differs between runs: %v vs %v", first.Unmatched, second.Unmatched)
	}
}

func TestPipelineNeverEmitsStarterPack(t *testing.T) {
	result, err := seededPipeline().Run(context.Background(), pipelineInput())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, scenario := range result.Scenarios {
		if scenario.Type == ScenarioStarterPack {
			t.Errorf("pipeline emitted %s", ScenarioStarterPack)
		}
	}
	for _, scenarioType := range EmittedScenarioTypes {
		if scenarioType == ScenarioStarterPack {
			t.Errorf("EmittedScenarioTypes includes %s", ScenarioStarterPack)
		}
	}
}

func TestPipelineAgenticLeanOnlyAIToolsBeyondAnchor(t *testing.T) {
	p := seededPipeline()
	in := pipelineInput()
	result, err := p.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	tools, err := p.Catalog.GetAllTools(context.Background())
	if err != nil {
		t.Fatalf("GetAllTools: %v", err)
	}
	aiByID := make(map[string]bool, len(tools))
	for _, tool := range tools {
		aiByID[tool.ID] = tool.HasAIFeatures
	}

	for _, scenario := range result.Scenarios {
		if scenario.Type != ScenarioAgenticLean {
			continue
		}
		for _, tool := range scenario.Tools {
			if tool.IsAnchor {
				continue
			}
			if !aiByID[tool.ID] {
				t.Errorf("AGENTIC_LEAN selected non-AI tool %q", tool.ID)
			}
		}
	}
}

type failingCatalog struct{}

func (failingCatalog) GetAllTools(context.Context) ([]catalog.Tool, error) {
	return nil, errors.New("connection refused")
}

func (failingCatalog) GetByID(context.Context, string) (catalog.Tool, error) {
	return catalog.Tool{}, errors.New("connection refused")
}

func TestPipelineCatalogFailureIsInfrastructure(t *testing.T) {
	graphRepo := graph.NewSeededRepo()
	p := &Pipeline{
		Catalog:      failingCatalog{},
		Integrations: graphRepo,
		Redundancies: graphRepo,
		Replacements: graphRepo,
	}

	_, err := p.Run(context.Background(), pipelineInput())
	if !errors.Is(err, ErrInfrastructure) {
		t.Errorf("err = %v, want ErrInfrastructure", err)
	}
}

func TestPipelineNoAnchorPreference(t *testing.T) {
	in := pipelineInput()
	in.AnchorPreference = ""

	result, err := seededPipeline().Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.AnchorID != "" {
		t.Errorf("anchor = %q, want none", result.AnchorID)
	}
	for _, scenario := range result.Scenarios {
		for _, tool := range scenario.Tools {
			if tool.IsAnchor {
				t.Errorf("%s flags %q as anchor without a preference", scenario.Type, tool.ID)
			}
		}
	}
}
