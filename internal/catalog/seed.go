package catalog

import "stackpilot-backend/internal/assessment"

// SeedTools returns the built-in catalog used by the in-memory repo and the
// seed migration. Order is stable; the engine's tie-breaks depend on it.
func SeedTools() []Tool {
	return []Tool{
		{
			ID: "notion", Name: "notion", DisplayName: "Notion",
			Aliases:  []string{"notion.so", "notion workspace"},
			Category: CategoryKnowledgeBase, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser: cost(10), FreeForever: false,
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 92, Adoption: 95, Momentum: 88, Community: 94, Support: 85, Documentation: 90},
			BestForSizes:  nil,
			BestForStages: nil,
		},
		{
			ID: "coda", Name: "coda", DisplayName: "Coda",
			Aliases:  []string{"coda.io", "coda docs"},
			Category: CategoryKnowledgeBase, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser: cost(12),
			Compliance:  ComplianceFlags{SOC2: true, GDPR: true},
			Popularity:  Popularity{Composite: 74, Adoption: 70, Momentum: 72, Community: 75, Support: 78, Documentation: 80},
		},
		{
			ID: "confluence", Name: "confluence", DisplayName: "Confluence",
			Aliases:  []string{"atlassian confluence"},
			Category: CategoryKnowledgeBase, Complexity: ComplexityHigh, Pricing: PricingPaid,
			CostPerUser:   cost(6.05),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			Popularity:    Popularity{Composite: 80, Adoption: 88, Momentum: 55, Community: 82, Support: 80, Documentation: 85},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSmall, assessment.TeamMid},
			BestForStages: []assessment.Stage{assessment.StageGrowth, assessment.StageScale},
		},
		{
			ID: "slack", Name: "slack", DisplayName: "Slack",
			Aliases:  []string{"slack hq"},
			Category: CategoryCommunication, Complexity: ComplexityLow, Pricing: PricingFreemium,
			CostPerUser:   cost(8.75),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 95, Adoption: 98, Momentum: 75, Community: 95, Support: 90, Documentation: 92},
		},
		{
			ID: "discord", Name: "discord", DisplayName: "Discord",
			Category: CategoryCommunication, Complexity: ComplexityLow, Pricing: PricingFreemium,
			CostPerUser:   cost(0),
			FreeForever:   true,
			Compliance:    ComplianceFlags{GDPR: true},
			Popularity:    Popularity{Composite: 82, Adoption: 85, Momentum: 80, Community: 92, Support: 60, Documentation: 70},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSolo, assessment.TeamMicro},
			BestForStages: []assessment.Stage{assessment.StageIdea, assessment.StagePreSeed, assessment.StageSeed},
		},
		{
			ID: "microsoft-teams", Name: "microsoft teams", DisplayName: "Microsoft Teams",
			Aliases:  []string{"teams", "ms teams"},
			Category: CategoryCommunication, Complexity: ComplexityMedium, Pricing: PricingPaid,
			CostPerUser:   cost(4),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 84, Adoption: 92, Momentum: 60, Community: 70, Support: 88, Documentation: 85},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSmall, assessment.TeamMid},
		},
		{
			ID: "linear", Name: "linear", DisplayName: "Linear",
			Aliases:  []string{"linear app"},
			Category: CategoryProjectManagement, Complexity: ComplexityLow, Pricing: PricingFreemium,
			CostPerUser:   cost(8),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 88, Adoption: 78, Momentum: 95, Community: 85, Support: 82, Documentation: 88},
			BestForSavvy:  []assessment.Level{assessment.LevelMedium, assessment.LevelHigh},
		},
		{
			ID: "jira", Name: "jira", DisplayName: "Jira",
			Aliases:  []string{"atlassian jira", "jira software"},
			Category: CategoryProjectManagement, Complexity: ComplexityHigh, Pricing: PricingPaid,
			CostPerUser:   cost(7.53),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 85, Adoption: 95, Momentum: 50, Community: 88, Support: 85, Documentation: 90},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSmall, assessment.TeamMid},
			BestForStages: []assessment.Stage{assessment.StageGrowth, assessment.StageScale},
		},
		{
			ID: "asana", Name: "asana", DisplayName: "Asana",
			Category: CategoryProjectManagement, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser:   cost(10.99),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 83, Adoption: 88, Momentum: 58, Community: 80, Support: 85, Documentation: 86},
		},
		{
			ID: "clickup", Name: "clickup", DisplayName: "ClickUp",
			Aliases:  []string{"click up"},
			Category: CategoryProjectManagement, Complexity: ComplexityHigh, Pricing: PricingFreemium,
			CostPerUser:   cost(7),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 79, Adoption: 80, Momentum: 70, Community: 76, Support: 75, Documentation: 78},
		},
		{
			ID: "trello", Name: "trello", DisplayName: "Trello",
			Category: CategoryProjectManagement, Complexity: ComplexityLow, Pricing: PricingFreemium,
			CostPerUser:   cost(5),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			Popularity:    Popularity{Composite: 78, Adoption: 90, Momentum: 40, Community: 85, Support: 75, Documentation: 82},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSolo, assessment.TeamMicro},
			BestForStages: []assessment.Stage{assessment.StageIdea, assessment.StagePreSeed},
			BestForSavvy:  []assessment.Level{assessment.LevelLow, assessment.LevelMedium},
		},
		{
			ID: "monday", Name: "monday", DisplayName: "monday.com",
			Aliases:  []string{"monday.com", "monday work management"},
			Category: CategoryProjectManagement, Complexity: ComplexityMedium, Pricing: PricingPaid,
			CostPerUser:   cost(9),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 81, Adoption: 84, Momentum: 65, Community: 72, Support: 86, Documentation: 80},
		},
		{
			ID: "hubspot", Name: "hubspot", DisplayName: "HubSpot",
			Aliases:  []string{"hubspot crm"},
			Category: CategoryCRM, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser:   cost(20),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 87, Adoption: 90, Momentum: 70, Community: 84, Support: 88, Documentation: 90},
		},
		{
			ID: "attio", Name: "attio", DisplayName: "Attio",
			Category: CategoryCRM, Complexity: ComplexityLow, Pricing: PricingFreemium,
			CostPerUser:   cost(29),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 72, Adoption: 55, Momentum: 92, Community: 60, Support: 70, Documentation: 75},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSolo, assessment.TeamMicro, assessment.TeamSmall},
			BestForStages: []assessment.Stage{assessment.StagePreSeed, assessment.StageSeed, assessment.StageGrowth},
		},
		{
			ID: "pipedrive", Name: "pipedrive", DisplayName: "Pipedrive",
			Category: CategoryCRM, Complexity: ComplexityLow, Pricing: PricingPaid,
			CostPerUser:   cost(14),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 76, Adoption: 78, Momentum: 55, Community: 70, Support: 80, Documentation: 78},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamMicro, assessment.TeamSmall},
		},
		{
			ID: "salesforce", Name: "salesforce", DisplayName: "Salesforce",
			Aliases:  []string{"sfdc", "salesforce crm"},
			Category: CategoryCRM, Complexity: ComplexityHigh, Pricing: PricingEnterprise,
			CostPerUser:   cost(165),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 88, Adoption: 96, Momentum: 45, Community: 90, Support: 85, Documentation: 88},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamMid},
			BestForStages: []assessment.Stage{assessment.StageScale},
		},
		{
			ID: "zapier", Name: "zapier", DisplayName: "Zapier",
			Category: CategoryAutomation, Complexity: ComplexityLow, Pricing: PricingFreemium,
			CostPerUser:   cost(19.99),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 86, Adoption: 92, Momentum: 60, Community: 88, Support: 82, Documentation: 90},
		},
		{
			ID: "make", Name: "make", DisplayName: "Make",
			Aliases:  []string{"make.com", "integromat"},
			Category: CategoryAutomation, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser: cost(9),
			Compliance:  ComplianceFlags{SOC2: true, GDPR: true, EUResidency: true},
			Popularity:  Popularity{Composite: 77, Adoption: 72, Momentum: 78, Community: 74, Support: 72, Documentation: 80},
		},
		{
			ID: "n8n", Name: "n8n", DisplayName: "n8n",
			Aliases:  []string{"n8n.io"},
			Category: CategoryAutomation, Complexity: ComplexityHigh, Pricing: PricingFreemium,
			CostPerUser:   cost(0),
			FreeForever:   true,
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, SelfHosted: true, AirGapped: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 75, Adoption: 60, Momentum: 96, Community: 85, Support: 65, Documentation: 78},
			BestForSavvy:  []assessment.Level{assessment.LevelHigh},
		},
		{
			ID: "figma", Name: "figma", DisplayName: "Figma",
			Category: CategoryDesign, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser:   cost(15),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 93, Adoption: 95, Momentum: 85, Community: 95, Support: 85, Documentation: 92},
		},
		{
			ID: "canva", Name: "canva", DisplayName: "Canva",
			Category: CategoryDesign, Complexity: ComplexityLow, Pricing: PricingFreemium,
			CostPerUser:   cost(12.99),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 85, Adoption: 92, Momentum: 78, Community: 80, Support: 78, Documentation: 82},
			BestForSavvy:  []assessment.Level{assessment.LevelLow, assessment.LevelMedium},
		},
		{
			ID: "github", Name: "github", DisplayName: "GitHub",
			Aliases:  []string{"gh", "github.com"},
			Category: CategoryDevTools, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser:   cost(4),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 96, Adoption: 98, Momentum: 85, Community: 98, Support: 88, Documentation: 95},
		},
		{
			ID: "gitlab", Name: "gitlab", DisplayName: "GitLab",
			Category: CategoryDevTools, Complexity: ComplexityHigh, Pricing: PricingFreemium,
			CostPerUser:   cost(29),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, SelfHosted: true, AirGapped: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 84, Adoption: 82, Momentum: 60, Community: 85, Support: 80, Documentation: 90},
			BestForSavvy:  []assessment.Level{assessment.LevelHigh},
		},
		{
			ID: "retool", Name: "retool", DisplayName: "Retool",
			Category: CategoryDevTools, Complexity: ComplexityHigh, Pricing: PricingFreemium,
			CostPerUser:   cost(10),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, SelfHosted: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 73, Adoption: 65, Momentum: 80, Community: 68, Support: 75, Documentation: 82},
			BestForSavvy:  []assessment.Level{assessment.LevelHigh},
		},
		{
			ID: "quickbooks", Name: "quickbooks", DisplayName: "QuickBooks",
			Aliases:  []string{"quickbooks online", "qbo"},
			Category: CategoryFinance, Complexity: ComplexityMedium, Pricing: PricingPaid,
			CostPerUser: cost(30),
			Compliance:  ComplianceFlags{SOC2: true, GDPR: true},
			Popularity:  Popularity{Composite: 82, Adoption: 90, Momentum: 45, Community: 75, Support: 80, Documentation: 85},
		},
		{
			ID: "xero", Name: "xero", DisplayName: "Xero",
			Category: CategoryFinance, Complexity: ComplexityMedium, Pricing: PricingPaid,
			CostPerUser: cost(20),
			Compliance:  ComplianceFlags{SOC2: true, GDPR: true, EUResidency: true},
			Popularity:  Popularity{Composite: 76, Adoption: 78, Momentum: 50, Community: 70, Support: 78, Documentation: 80},
		},
		{
			ID: "intercom", Name: "intercom", DisplayName: "Intercom",
			Category: CategorySupport, Complexity: ComplexityMedium, Pricing: PricingPaid,
			CostPerUser:   cost(39),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 81, Adoption: 82, Momentum: 72, Community: 75, Support: 85, Documentation: 86},
		},
		{
			ID: "zendesk", Name: "zendesk", DisplayName: "Zendesk",
			Category: CategorySupport, Complexity: ComplexityHigh, Pricing: PricingPaid,
			CostPerUser:   cost(55),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 83, Adoption: 90, Momentum: 48, Community: 80, Support: 85, Documentation: 88},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSmall, assessment.TeamMid},
		},
		{
			ID: "crisp", Name: "crisp", DisplayName: "Crisp",
			Aliases:  []string{"crisp chat"},
			Category: CategorySupport, Complexity: ComplexityLow, Pricing: PricingFreemium,
			CostPerUser:   cost(25),
			Compliance:    ComplianceFlags{GDPR: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 68, Adoption: 58, Momentum: 70, Community: 60, Support: 72, Documentation: 70},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSolo, assessment.TeamMicro},
		},
		{
			ID: "posthog", Name: "posthog", DisplayName: "PostHog",
			Aliases:  []string{"post hog"},
			Category: CategoryAnalytics, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser:   cost(0),
			FreeForever:   true,
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, SelfHosted: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 79, Adoption: 68, Momentum: 94, Community: 82, Support: 75, Documentation: 88},
			BestForSavvy:  []assessment.Level{assessment.LevelMedium, assessment.LevelHigh},
		},
		{
			ID: "mixpanel", Name: "mixpanel", DisplayName: "Mixpanel",
			Category: CategoryAnalytics, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser: cost(24),
			Compliance:  ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			Popularity:  Popularity{Composite: 78, Adoption: 80, Momentum: 58, Community: 74, Support: 78, Documentation: 84},
		},
		{
			ID: "amplitude", Name: "amplitude", DisplayName: "Amplitude",
			Category: CategoryAnalytics, Complexity: ComplexityHigh, Pricing: PricingFreemium,
			CostPerUser:   cost(49),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, HIPAA: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 77, Adoption: 78, Momentum: 55, Community: 70, Support: 80, Documentation: 85},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSmall, assessment.TeamMid},
		},
		{
			ID: "chatgpt-team", Name: "chatgpt team", DisplayName: "ChatGPT Team",
			Aliases:  []string{"chatgpt", "openai chatgpt"},
			Category: CategoryAIAssistant, Complexity: ComplexityLow, Pricing: PricingPaid,
			CostPerUser:   cost(25),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 94, Adoption: 96, Momentum: 90, Community: 92, Support: 75, Documentation: 85},
		},
		{
			ID: "claude-team", Name: "claude team", DisplayName: "Claude Team",
			Aliases:  []string{"claude", "anthropic claude"},
			Category: CategoryAIAssistant, Complexity: ComplexityLow, Pricing: PricingPaid,
			CostPerUser:   cost(25),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 86, Adoption: 75, Momentum: 97, Community: 80, Support: 75, Documentation: 84},
		},
		{
			ID: "calendly", Name: "calendly", DisplayName: "Calendly",
			Category: CategoryScheduling, Complexity: ComplexityLow, Pricing: PricingFreemium,
			CostPerUser:   cost(10),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: false,
			Popularity:    Popularity{Composite: 84, Adoption: 90, Momentum: 55, Community: 78, Support: 80, Documentation: 82},
		},
		{
			ID: "cal-com", Name: "cal.com", DisplayName: "Cal.com",
			Aliases:  []string{"calcom", "cal"},
			Category: CategoryScheduling, Complexity: ComplexityMedium, Pricing: PricingFreemium,
			CostPerUser:   cost(0),
			FreeForever:   true,
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true, SelfHosted: true, EUResidency: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 71, Adoption: 55, Momentum: 90, Community: 78, Support: 65, Documentation: 76},
			BestForSavvy:  []assessment.Level{assessment.LevelMedium, assessment.LevelHigh},
		},
		{
			ID: "motion", Name: "motion", DisplayName: "Motion",
			Aliases:  []string{"usemotion"},
			Category: CategoryScheduling, Complexity: ComplexityLow, Pricing: PricingPaid,
			CostPerUser:   cost(19),
			Compliance:    ComplianceFlags{SOC2: true, GDPR: true},
			HasAIFeatures: true,
			Popularity:    Popularity{Composite: 70, Adoption: 52, Momentum: 88, Community: 58, Support: 70, Documentation: 68},
			BestForSizes:  []assessment.TeamSizeBucket{assessment.TeamSolo, assessment.TeamMicro},
		},
	}
}

func cost(v float64) *float64 {
	return &v
}
