package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const toolColumns = `
id, name, display_name, aliases, category, complexity, pricing, cost_per_user,
free_forever, soc2, hipaa, gdpr, eu_residency, self_hosted, air_gapped,
has_ai_features, pop_composite, pop_adoption, pop_momentum, pop_community,
pop_support, pop_documentation, best_for_sizes, best_for_stages, best_for_savvy`

// GetAllTools returns every catalog tool ordered by insertion.
func (r *PGRepo) GetAllTools(ctx context.Context) ([]Tool, error) {
	const query = `
SELECT` + toolColumns + `
FROM tools
ORDER BY seq ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Tool
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tool)
	}
	return out, rows.Err()
}

// GetByID returns a single tool by catalog id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Tool, error) {
	const query = `
SELECT` + toolColumns + `
FROM tools
WHERE id = $1
LIMIT 1`

	tool, err := scanTool(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tool{}, ErrNotFound
		}
		return Tool{}, err
	}
	return tool, nil
}

// Upsert inserts a tool or updates it in place, keyed on id. Used by the
// seeder; request paths never write the catalog.
func (r *PGRepo) Upsert(ctx context.Context, tool Tool) error {
	aliases, err := json.Marshal(orEmpty(tool.Aliases))
	if err != nil {
		return err
	}
	sizes, err := json.Marshal(orEmpty(tool.BestForSizes))
	if err != nil {
		return err
	}
	stages, err := json.Marshal(orEmpty(tool.BestForStages))
	if err != nil {
		return err
	}
	savvy, err := json.Marshal(orEmpty(tool.BestForSavvy))
	if err != nil {
		return err
	}

	const query = `
INSERT INTO tools (` + toolColumns + `
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
          $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    display_name = EXCLUDED.display_name,
    aliases = EXCLUDED.aliases,
    category = EXCLUDED.category,
    complexity = EXCLUDED.complexity,
    pricing = EXCLUDED.pricing,
    cost_per_user = EXCLUDED.cost_per_user,
    free_forever = EXCLUDED.free_forever,
    soc2 = EXCLUDED.soc2,
    hipaa = EXCLUDED.hipaa,
    gdpr = EXCLUDED.gdpr,
    eu_residency = EXCLUDED.eu_residency,
    self_hosted = EXCLUDED.self_hosted,
    air_gapped = EXCLUDED.air_gapped,
    has_ai_features = EXCLUDED.has_ai_features,
    pop_composite = EXCLUDED.pop_composite,
    pop_adoption = EXCLUDED.pop_adoption,
    pop_momentum = EXCLUDED.pop_momentum,
    pop_community = EXCLUDED.pop_community,
    pop_support = EXCLUDED.pop_support,
    pop_documentation = EXCLUDED.pop_documentation,
    best_for_sizes = EXCLUDED.best_for_sizes,
    best_for_stages = EXCLUDED.best_for_stages,
    best_for_savvy = EXCLUDED.best_for_savvy`

	var costPerUser sql.NullFloat64
	if tool.CostPerUser != nil {
		costPerUser = sql.NullFloat64{Float64: *tool.CostPerUser, Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		tool.ID,
		tool.Name,
		tool.DisplayName,
		aliases,
		tool.Category,
		tool.Complexity,
		tool.Pricing,
		costPerUser,
		tool.FreeForever,
		tool.Compliance.SOC2,
		tool.Compliance.HIPAA,
		tool.Compliance.GDPR,
		tool.Compliance.EUResidency,
		tool.Compliance.SelfHosted,
		tool.Compliance.AirGapped,
		tool.HasAIFeatures,
		tool.Popularity.Composite,
		tool.Popularity.Adoption,
		tool.Popularity.Momentum,
		tool.Popularity.Community,
		tool.Popularity.Support,
		tool.Popularity.Documentation,
		sizes,
		stages,
		savvy,
	)
	return err
}

func orEmpty[T ~string](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTool(row rowScanner) (Tool, error) {
	var (
		tool          Tool
		aliasesRaw    []byte
		costPerUser   sql.NullFloat64
		sizesRaw      []byte
		stagesRaw     []byte
		savvyRaw      []byte
	)
	err := row.Scan(
		&tool.ID,
		&tool.Name,
		&tool.DisplayName,
		&aliasesRaw,
		&tool.Category,
		&tool.Complexity,
		&tool.Pricing,
		&costPerUser,
		&tool.FreeForever,
		&tool.Compliance.SOC2,
		&tool.Compliance.HIPAA,
		&tool.Compliance.GDPR,
		&tool.Compliance.EUResidency,
		&tool.Compliance.SelfHosted,
		&tool.Compliance.AirGapped,
		&tool.HasAIFeatures,
		&tool.Popularity.Composite,
		&tool.Popularity.Adoption,
		&tool.Popularity.Momentum,
		&tool.Popularity.Community,
		&tool.Popularity.Support,
		&tool.Popularity.Documentation,
		&sizesRaw,
		&stagesRaw,
		&savvyRaw,
	)
	if err != nil {
		return Tool{}, err
	}
	if costPerUser.Valid {
		v := costPerUser.Float64
		tool.CostPerUser = &v
	}
	if err := decodeJSONList(aliasesRaw, &tool.Aliases); err != nil {
		return Tool{}, err
	}
	if err := decodeJSONList(sizesRaw, &tool.BestForSizes); err != nil {
		return Tool{}, err
	}
	if err := decodeJSONList(stagesRaw, &tool.BestForStages); err != nil {
		return Tool{}, err
	}
	if err := decodeJSONList(savvyRaw, &tool.BestForSavvy); err != nil {
		return Tool{}, err
	}
	return tool, nil
}

func decodeJSONList[T ~string](raw []byte, dst *[]T) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

var _ Repo = (*PGRepo)(nil)
