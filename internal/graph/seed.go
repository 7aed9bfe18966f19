package graph

import "stackpilot-backend/internal/assessment"

// SeedIntegrations returns the built-in integration graph. Edges are
// symmetric; each pair is stored once.
func SeedIntegrations() []IntegrationEdge {
	return []IntegrationEdge{
		{FromID: "slack", ToID: "notion", Quality: QualityDeep},
		{FromID: "slack", ToID: "linear", Quality: QualityNative},
		{FromID: "slack", ToID: "jira", Quality: QualityDeep},
		{FromID: "slack", ToID: "asana", Quality: QualityDeep},
		{FromID: "slack", ToID: "github", Quality: QualityNative},
		{FromID: "slack", ToID: "hubspot", Quality: QualityDeep},
		{FromID: "slack", ToID: "zapier", Quality: QualityNative},
		{FromID: "slack", ToID: "intercom", Quality: QualityDeep},
		{FromID: "slack", ToID: "zendesk", Quality: QualityBasic},
		{FromID: "slack", ToID: "calendly", Quality: QualityBasic},
		{FromID: "slack", ToID: "figma", Quality: QualityDeep},
		{FromID: "slack", ToID: "posthog", Quality: QualityBasic},
		{FromID: "slack", ToID: "clickup", Quality: QualityDeep},
		{FromID: "slack", ToID: "monday", Quality: QualityDeep},
		{FromID: "slack", ToID: "trello", Quality: QualityBasic},
		{FromID: "microsoft-teams", ToID: "jira", Quality: QualityDeep},
		{FromID: "microsoft-teams", ToID: "monday", Quality: QualityBasic},
		{FromID: "microsoft-teams", ToID: "zendesk", Quality: QualityBasic},
		{FromID: "notion", ToID: "linear", Quality: QualityNative},
		{FromID: "notion", ToID: "figma", Quality: QualityDeep},
		{FromID: "notion", ToID: "github", Quality: QualityDeep},
		{FromID: "notion", ToID: "zapier", Quality: QualityDeep},
		{FromID: "notion", ToID: "calendly", Quality: QualityBasic},
		{FromID: "notion", ToID: "hubspot", Quality: QualityBasic},
		{FromID: "coda", ToID: "slack", Quality: QualityDeep},
		{FromID: "coda", ToID: "zapier", Quality: QualityBasic},
		{FromID: "confluence", ToID: "jira", Quality: QualityNative},
		{FromID: "confluence", ToID: "slack", Quality: QualityBasic},
		{FromID: "linear", ToID: "github", Quality: QualityNative},
		{FromID: "linear", ToID: "figma", Quality: QualityNative},
		{FromID: "linear", ToID: "zapier", Quality: QualityBasic},
		{FromID: "jira", ToID: "github", Quality: QualityDeep},
		{FromID: "jira", ToID: "figma", Quality: QualityDeep},
		{FromID: "jira", ToID: "zendesk", Quality: QualityDeep},
		{FromID: "asana", ToID: "zapier", Quality: QualityDeep},
		{FromID: "asana", ToID: "figma", Quality: QualityBasic},
		{FromID: "clickup", ToID: "zapier", Quality: QualityDeep},
		{FromID: "clickup", ToID: "github", Quality: QualityBasic},
		{FromID: "monday", ToID: "zapier", Quality: QualityDeep},
		{FromID: "monday", ToID: "hubspot", Quality: QualityDeep},
		{FromID: "trello", ToID: "zapier", Quality: QualityDeep},
		{FromID: "hubspot", ToID: "zapier", Quality: QualityNative},
		{FromID: "hubspot", ToID: "calendly", Quality: QualityNative},
		{FromID: "hubspot", ToID: "intercom", Quality: QualityDeep},
		{FromID: "hubspot", ToID: "quickbooks", Quality: QualityBasic},
		{FromID: "hubspot", ToID: "mixpanel", Quality: QualityBasic},
		{FromID: "attio", ToID: "slack", Quality: QualityDeep},
		{FromID: "attio", ToID: "zapier", Quality: QualityDeep},
		{FromID: "attio", ToID: "cal-com", Quality: QualityDeep},
		{FromID: "pipedrive", ToID: "slack", Quality: QualityBasic},
		{FromID: "pipedrive", ToID: "zapier", Quality: QualityDeep},
		{FromID: "salesforce", ToID: "slack", Quality: QualityNative},
		{FromID: "salesforce", ToID: "zendesk", Quality: QualityDeep},
		{FromID: "salesforce", ToID: "quickbooks", Quality: QualityBasic},
		{FromID: "zapier", ToID: "quickbooks", Quality: QualityDeep},
		{FromID: "zapier", ToID: "xero", Quality: QualityDeep},
		{FromID: "zapier", ToID: "calendly", Quality: QualityDeep},
		{FromID: "zapier", ToID: "intercom", Quality: QualityBasic},
		{FromID: "zapier", ToID: "mixpanel", Quality: QualityWebhookOnly},
		{FromID: "zapier", ToID: "github", Quality: QualityDeep},
		{FromID: "make", ToID: "slack", Quality: QualityDeep},
		{FromID: "make", ToID: "notion", Quality: QualityDeep},
		{FromID: "make", ToID: "hubspot", Quality: QualityDeep},
		{FromID: "make", ToID: "calendly", Quality: QualityBasic},
		{FromID: "n8n", ToID: "slack", Quality: QualityDeep},
		{FromID: "n8n", ToID: "notion", Quality: QualityBasic},
		{FromID: "n8n", ToID: "github", Quality: QualityDeep},
		{FromID: "n8n", ToID: "posthog", Quality: QualityWebhookOnly},
		{FromID: "figma", ToID: "github", Quality: QualityBasic},
		{FromID: "canva", ToID: "slack", Quality: QualityBasic},
		{FromID: "canva", ToID: "zapier", Quality: QualityBasic},
		{FromID: "github", ToID: "posthog", Quality: QualityBasic},
		{FromID: "gitlab", ToID: "slack", Quality: QualityDeep},
		{FromID: "gitlab", ToID: "jira", Quality: QualityDeep},
		{FromID: "retool", ToID: "github", Quality: QualityDeep},
		{FromID: "retool", ToID: "posthog", Quality: QualityBasic},
		{FromID: "quickbooks", ToID: "xero", Quality: QualityZapierOnly},
		{FromID: "intercom", ToID: "mixpanel", Quality: QualityDeep},
		{FromID: "intercom", ToID: "calendly", Quality: QualityDeep},
		{FromID: "zendesk", ToID: "mixpanel", Quality: QualityBasic},
		{FromID: "crisp", ToID: "slack", Quality: QualityDeep},
		{FromID: "crisp", ToID: "zapier", Quality: QualityBasic},
		{FromID: "posthog", ToID: "mixpanel", Quality: QualityZapierOnly},
		{FromID: "amplitude", ToID: "slack", Quality: QualityBasic},
		{FromID: "amplitude", ToID: "salesforce", Quality: QualityDeep},
		{FromID: "chatgpt-team", ToID: "slack", Quality: QualityBasic},
		{FromID: "chatgpt-team", ToID: "zapier", Quality: QualityDeep},
		{FromID: "claude-team", ToID: "slack", Quality: QualityBasic},
		{FromID: "claude-team", ToID: "github", Quality: QualityDeep},
		{FromID: "cal-com", ToID: "slack", Quality: QualityBasic},
		{FromID: "motion", ToID: "slack", Quality: QualityBasic},
		{FromID: "motion", ToID: "zapier", Quality: QualityBasic},
	}
}

// SeedRedundancies returns the built-in redundancy graph.
func SeedRedundancies() []RedundancyPair {
	return []RedundancyPair{
		{ToolA: "asana", ToolB: "monday", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"task tracking", "project views", "workload planning"}},
		{ToolA: "asana", ToolB: "clickup", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"task tracking", "docs", "goals"}},
		{ToolA: "clickup", ToolB: "monday", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"task tracking", "dashboards"}},
		{ToolA: "linear", ToolB: "jira", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"issue tracking", "sprints", "roadmaps"}},
		{ToolA: "asana", ToolB: "trello", Strength: StrengthFull, Hint: HintPreferA,
			Overlap: []string{"task boards"}},
		{ToolA: "notion", ToolB: "coda", Strength: StrengthFull, Hint: HintPreferA,
			Overlap: []string{"docs", "wikis", "lightweight databases"}},
		{ToolA: "notion", ToolB: "confluence", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"docs", "wikis"}},
		{ToolA: "notion", ToolB: "asana", Strength: StrengthPartial, Hint: HintContextDependent,
			Overlap: []string{"task tracking"}},
		{ToolA: "notion", ToolB: "trello", Strength: StrengthPartial, Hint: HintPreferA,
			Overlap: []string{"task boards"}},
		{ToolA: "slack", ToolB: "microsoft-teams", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"chat", "calls", "channels"}},
		{ToolA: "slack", ToolB: "discord", Strength: StrengthPartial, Hint: HintPreferA,
			Overlap: []string{"chat", "voice"}},
		{ToolA: "hubspot", ToolB: "pipedrive", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"contacts", "deal pipeline"}},
		{ToolA: "hubspot", ToolB: "attio", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"contacts", "deal pipeline"}},
		{ToolA: "attio", ToolB: "pipedrive", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"contacts", "deal pipeline"}},
		{ToolA: "hubspot", ToolB: "salesforce", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"crm", "reporting"}},
		{ToolA: "zapier", ToolB: "make", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"workflow automation"}},
		{ToolA: "zapier", ToolB: "n8n", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"workflow automation"}},
		{ToolA: "make", ToolB: "n8n", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"workflow automation"}},
		{ToolA: "figma", ToolB: "canva", Strength: StrengthNiche, Hint: HintContextDependent,
			Overlap: []string{"graphics"}},
		{ToolA: "github", ToolB: "gitlab", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"git hosting", "ci/cd", "code review"}},
		{ToolA: "quickbooks", ToolB: "xero", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"bookkeeping", "invoicing"}},
		{ToolA: "intercom", ToolB: "zendesk", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"ticketing", "live chat"}},
		{ToolA: "intercom", ToolB: "crisp", Strength: StrengthFull, Hint: HintPreferB,
			Overlap: []string{"live chat"}},
		{ToolA: "mixpanel", ToolB: "amplitude", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"product analytics", "funnels"}},
		{ToolA: "posthog", ToolB: "mixpanel", Strength: StrengthFull, Hint: HintPreferA,
			Overlap: []string{"product analytics", "session replay"}},
		{ToolA: "posthog", ToolB: "amplitude", Strength: StrengthFull, Hint: HintPreferA,
			Overlap: []string{"product analytics"}},
		{ToolA: "chatgpt-team", ToolB: "claude-team", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"ai assistant"}},
		{ToolA: "calendly", ToolB: "cal-com", Strength: StrengthFull, Hint: HintContextDependent,
			Overlap: []string{"scheduling links"}},
		{ToolA: "calendly", ToolB: "motion", Strength: StrengthPartial, Hint: HintPreferA,
			Overlap: []string{"scheduling"}},
		{ToolA: "notion", ToolB: "clickup", Strength: StrengthPartial, Hint: HintContextDependent,
			Overlap: []string{"docs", "task tracking"}},
	}
}

// SeedReplacements returns the built-in replacement rules.
func SeedReplacements() []ReplacementRule {
	return []ReplacementRule{
		{FromID: "jira", ToID: "linear", Reason: ReasonSimplicity,
			Conditions: ReplacementConditions{
				TeamSizes: []assessment.TeamSizeBucket{assessment.TeamSolo, assessment.TeamMicro, assessment.TeamSmall},
			}},
		{FromID: "zapier", ToID: "make", Reason: ReasonCostSavings,
			Conditions: ReplacementConditions{
				MinCostSensitivity: level(assessment.LevelMedium),
			}},
		{FromID: "zapier", ToID: "n8n", Reason: ReasonCostSavings,
			Conditions: ReplacementConditions{
				MinCostSensitivity: level(assessment.LevelHigh),
				TechSavviness:      []assessment.Level{assessment.LevelHigh},
			}},
		{FromID: "zendesk", ToID: "intercom", Reason: ReasonAINative,
			Conditions: ReplacementConditions{
				PrefersAINative: boolPtr(true),
			}},
		{FromID: "intercom", ToID: "crisp", Reason: ReasonCostSavings,
			Conditions: ReplacementConditions{
				MinCostSensitivity: level(assessment.LevelHigh),
				TeamSizes:          []assessment.TeamSizeBucket{assessment.TeamSolo, assessment.TeamMicro},
			}},
		{FromID: "mixpanel", ToID: "posthog", Reason: ReasonCostSavings,
			Conditions: ReplacementConditions{
				MinCostSensitivity: level(assessment.LevelMedium),
			}},
		{FromID: "amplitude", ToID: "posthog", Reason: ReasonCostSavings,
			Conditions: ReplacementConditions{
				MinCostSensitivity: level(assessment.LevelMedium),
			}},
		{FromID: "mixpanel", ToID: "posthog", Reason: ReasonCompliance,
			Conditions: ReplacementConditions{
				RequiredCompliance: []assessment.ComplianceNeed{assessment.ComplianceSelfHosted},
			}},
		{FromID: "confluence", ToID: "notion", Reason: ReasonConsolidation,
			Conditions: ReplacementConditions{
				TeamSizes: []assessment.TeamSizeBucket{assessment.TeamSolo, assessment.TeamMicro, assessment.TeamSmall},
			}},
		{FromID: "trello", ToID: "linear", Reason: ReasonAINative,
			Conditions: ReplacementConditions{
				PrefersAINative: boolPtr(true),
				TechSavviness:   []assessment.Level{assessment.LevelMedium, assessment.LevelHigh},
			}},
		{FromID: "salesforce", ToID: "hubspot", Reason: ReasonSimplicity,
			Conditions: ReplacementConditions{
				TeamSizes: []assessment.TeamSizeBucket{assessment.TeamSolo, assessment.TeamMicro, assessment.TeamSmall},
			}},
		{FromID: "pipedrive", ToID: "attio", Reason: ReasonAINative,
			Conditions: ReplacementConditions{
				PrefersAINative: boolPtr(true),
			}},
		{FromID: "calendly", ToID: "cal-com", Reason: ReasonCostSavings,
			Conditions: ReplacementConditions{
				MinCostSensitivity: level(assessment.LevelHigh),
				TechSavviness:      []assessment.Level{assessment.LevelMedium, assessment.LevelHigh},
			}},
		{FromID: "quickbooks", ToID: "xero", Reason: ReasonCostSavings,
			Conditions: ReplacementConditions{
				MinCostSensitivity: level(assessment.LevelHigh),
			}},
	}
}

func level(l assessment.Level) *assessment.Level {
	return &l
}

func boolPtr(b bool) *bool {
	return &b
}
