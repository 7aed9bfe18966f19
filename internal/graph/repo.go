package graph

import "context"

// IntegrationsRepo serves integration edges for a tool.
type IntegrationsRepo interface {
	// ForTool returns every edge touching the given tool id, normalized so
	// FromID is always the queried tool.
	ForTool(ctx context.Context, toolID string) ([]IntegrationEdge, error)
}

// RedundanciesRepo serves redundancy pairs restricted to an id set.
type RedundanciesRepo interface {
	// InSet returns pairs where both endpoints are in toolIDs.
	InSet(ctx context.Context, toolIDs []string) ([]RedundancyPair, error)
}

// ReplacementsRepo serves replacement rules for a tool.
type ReplacementsRepo interface {
	// RulesFor returns rules whose FromID matches, in stable stored order.
	RulesFor(ctx context.Context, toolID string) ([]ReplacementRule, error)
}
