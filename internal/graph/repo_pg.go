package graph

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// PGRepo implements the graph repos using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ForTool returns edges touching toolID with FromID normalized to toolID.
func (r *PGRepo) ForTool(ctx context.Context, toolID string) ([]IntegrationEdge, error) {
	const query = `
SELECT from_id, to_id, quality
FROM tool_integrations
WHERE from_id = $1 OR to_id = $1
ORDER BY seq ASC`

	rows, err := r.DB.QueryContext(ctx, query, toolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []IntegrationEdge
	for rows.Next() {
		var e IntegrationEdge
		if err := rows.Scan(&e.FromID, &e.ToID, &e.Quality); err != nil {
			return nil, err
		}
		if e.FromID != toolID {
			e.FromID, e.ToID = e.ToID, e.FromID
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// InSet returns pairs with both endpoints in toolIDs, in stored order.
func (r *PGRepo) InSet(ctx context.Context, toolIDs []string) ([]RedundancyPair, error) {
	if len(toolIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(toolIDs))
	args := make([]any, len(toolIDs))
	for i, id := range toolIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	inList := strings.Join(placeholders, ", ")

	query := fmt.Sprintf(`
SELECT tool_a, tool_b, strength, hint, overlap
FROM tool_redundancies
WHERE tool_a IN (%s) AND tool_b IN (%s)
ORDER BY seq ASC`, inList, inList)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RedundancyPair
	for rows.Next() {
		var (
			p          RedundancyPair
			overlapRaw []byte
		)
		if err := rows.Scan(&p.ToolA, &p.ToolB, &p.Strength, &p.Hint, &overlapRaw); err != nil {
			return nil, err
		}
		if len(overlapRaw) > 0 {
			if err := json.Unmarshal(overlapRaw, &p.Overlap); err != nil {
				return nil, err
			}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// RulesFor returns replacement rules for toolID in stored order.
func (r *PGRepo) RulesFor(ctx context.Context, toolID string) ([]ReplacementRule, error) {
	const query = `
SELECT from_id, to_id, reason, conditions
FROM tool_replacements
WHERE from_id = $1
ORDER BY seq ASC`

	rows, err := r.DB.QueryContext(ctx, query, toolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReplacementRule
	for rows.Next() {
		var (
			rule          ReplacementRule
			conditionsRaw []byte
		)
		if err := rows.Scan(&rule.FromID, &rule.ToID, &rule.Reason, &conditionsRaw); err != nil {
			return nil, err
		}
		if len(conditionsRaw) > 0 {
			if err := json.Unmarshal(conditionsRaw, &rule.Conditions); err != nil {
				return nil, err
			}
		}
		out = append(out, rule)
	}
	return out, rows.Err()
}

// UpsertIntegration inserts or refreshes one integration edge.
func (r *PGRepo) UpsertIntegration(ctx context.Context, e IntegrationEdge) error {
	const query = `
INSERT INTO tool_integrations (from_id, to_id, quality)
VALUES ($1, $2, $3)
ON CONFLICT (from_id, to_id) DO UPDATE SET quality = EXCLUDED.quality`
	_, err := r.DB.ExecContext(ctx, query, e.FromID, e.ToID, e.Quality)
	return err
}

// UpsertRedundancy inserts or refreshes one redundancy pair.
func (r *PGRepo) UpsertRedundancy(ctx context.Context, p RedundancyPair) error {
	overlap, err := json.Marshal(p.Overlap)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO tool_redundancies (tool_a, tool_b, strength, hint, overlap)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (tool_a, tool_b) DO UPDATE
SET strength = EXCLUDED.strength, hint = EXCLUDED.hint, overlap = EXCLUDED.overlap`
	_, err = r.DB.ExecContext(ctx, query, p.ToolA, p.ToolB, p.Strength, p.Hint, overlap)
	return err
}

// InsertReplacement appends one replacement rule. Rules have no natural key;
// the seeder truncates before reloading.
func (r *PGRepo) InsertReplacement(ctx context.Context, rule ReplacementRule) error {
	conditions, err := json.Marshal(rule.Conditions)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO tool_replacements (from_id, to_id, reason, conditions)
VALUES ($1, $2, $3, $4)`
	_, err = r.DB.ExecContext(ctx, query, rule.FromID, rule.ToID, rule.Reason, conditions)
	return err
}

// ClearReplacements empties the replacement rules table.
func (r *PGRepo) ClearReplacements(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tool_replacements`)
	return err
}

var (
	_ IntegrationsRepo = (*PGRepo)(nil)
	_ RedundanciesRepo = (*PGRepo)(nil)
	_ ReplacementsRepo = (*PGRepo)(nil)
)
