package graph

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of all three graph repos.
type MemoryRepo struct {
	mu           sync.RWMutex
	integrations []IntegrationEdge
	redundancies []RedundancyPair
	replacements []ReplacementRule
}

// NewMemoryRepo constructs a MemoryRepo holding the given edges and rules.
func NewMemoryRepo(integrations []IntegrationEdge, redundancies []RedundancyPair, replacements []ReplacementRule) *MemoryRepo {
	return &MemoryRepo{
		integrations: append([]IntegrationEdge(nil), integrations...),
		redundancies: append([]RedundancyPair(nil), redundancies...),
		replacements: append([]ReplacementRule(nil), replacements...),
	}
}

// NewSeededRepo constructs a MemoryRepo loaded with the built-in graph data.
func NewSeededRepo() *MemoryRepo {
	return NewMemoryRepo(SeedIntegrations(), SeedRedundancies(), SeedReplacements())
}

// ForTool returns edges touching toolID with FromID normalized to toolID.
func (r *MemoryRepo) ForTool(ctx context.Context, toolID string) ([]IntegrationEdge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []IntegrationEdge
	for _, e := range r.integrations {
		switch toolID {
		case e.FromID:
			out = append(out, e)
		case e.ToID:
			out = append(out, IntegrationEdge{FromID: e.ToID, ToID: e.FromID, Quality: e.Quality})
		}
	}
	return out, nil
}

// InSet returns pairs with both endpoints in toolIDs, in stored order.
func (r *MemoryRepo) InSet(ctx context.Context, toolIDs []string) ([]RedundancyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(toolIDs))
	for _, id := range toolIDs {
		set[id] = true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []RedundancyPair
	for _, p := range r.redundancies {
		if set[p.ToolA] && set[p.ToolB] {
			out = append(out, p)
		}
	}
	return out, nil
}

// RulesFor returns replacement rules for toolID in stored order.
func (r *MemoryRepo) RulesFor(ctx context.Context, toolID string) ([]ReplacementRule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []ReplacementRule
	for _, rule := range r.replacements {
		if rule.FromID == toolID {
			out = append(out, rule)
		}
	}
	return out, nil
}

var (
	_ IntegrationsRepo = (*MemoryRepo)(nil)
	_ RedundanciesRepo = (*MemoryRepo)(nil)
	_ ReplacementsRepo = (*MemoryRepo)(nil)
)
