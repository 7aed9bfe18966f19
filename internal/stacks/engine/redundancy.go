package engine

import (
	"context"

	"stackpilot-backend/internal/catalog"
	"stackpilot-backend/internal/graph"
)

// RedundancyResolver removes tools made obsolete by a higher-priority tool
// already in a bundle, using the precomputed overlap graph.
type RedundancyResolver struct {
	Redundancies graph.RedundanciesRepo
}

// Resolve filters tools down to a non-redundant subset. Only FULL-strength
// pairs cause removal; PARTIAL pairs are informational and NICHE pairs are
// never auto-resolved. The anchor tool, when set, is never removed. Removal
// decisions accumulate into a set before filtering, so a tool flagged by one
// pair is not resurrected by a later pair.
func (r *RedundancyResolver) Resolve(ctx context.Context, tools []catalog.Tool, anchorID string) ([]catalog.Tool, error) {
	if len(tools) < 2 {
		return tools, nil
	}

	ids := make([]string, len(tools))
	costByID := make(map[string]float64, len(tools))
	for i, t := range tools {
		ids[i] = t.ID
		if t.CostPerUser != nil {
			costByID[t.ID] = *t.CostPerUser
		}
	}

	pairs, err := r.Redundancies.InSet(ctx, ids)
	if err != nil {
		return nil, infraErr("redundancies.InSet", err)
	}

	removed := make(map[string]bool)
	for _, pair := range pairs {
		if pair.Strength != graph.StrengthFull {
			continue
		}
		switch {
		case pair.ToolA == anchorID:
			removed[pair.ToolB] = true
		case pair.ToolB == anchorID:
			removed[pair.ToolA] = true
		default:
			switch pair.Hint {
			case graph.HintPreferA:
				removed[pair.ToolB] = true
			case graph.HintPreferB:
				removed[pair.ToolA] = true
			case graph.HintContextDependent:
				// Remove the pricier side; ties break toward removing B.
				if costByID[pair.ToolA] > costByID[pair.ToolB] {
					removed[pair.ToolA] = true
				} else {
					removed[pair.ToolB] = true
				}
			}
		}
	}

	if len(removed) == 0 {
		return tools, nil
	}
	kept := make([]catalog.Tool, 0, len(tools))
	for _, t := range tools {
		if removed[t.ID] && t.ID != anchorID {
			continue
		}
		kept = append(kept, t)
	}
	return kept, nil
}
