package stacks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Assessment and result are stored as
// jsonb; the fingerprint column is unique so re-submissions upsert.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a stack plan, replacing any prior plan for the fingerprint.
func (r *PGRepo) Create(ctx context.Context, plan StackPlan) error {
	assessmentJSON, err := json.Marshal(plan.Assessment)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	resultJSON, err := json.Marshal(plan.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	const query = `
INSERT INTO stack_plans (id, fingerprint, assessment, result, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (fingerprint) DO UPDATE
SET id = EXCLUDED.id, assessment = EXCLUDED.assessment, result = EXCLUDED.result, created_at = EXCLUDED.created_at`
	_, err = r.DB.ExecContext(ctx, query,
		plan.ID,
		plan.Fingerprint,
		assessmentJSON,
		resultJSON,
		plan.CreatedAt,
	)
	return err
}

// GetByID returns a stack plan by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (StackPlan, error) {
	const query = `
SELECT id, fingerprint, assessment, result, created_at
FROM stack_plans
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// GetByFingerprint returns the plan cached for an assessment fingerprint.
func (r *PGRepo) GetByFingerprint(ctx context.Context, fingerprint string) (StackPlan, error) {
	const query = `
SELECT id, fingerprint, assessment, result, created_at
FROM stack_plans
WHERE fingerprint = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, fingerprint))
}

// ListRecent returns up to limit plans, newest first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]StackPlan, error) {
	const query = `
SELECT id, fingerprint, assessment, result, created_at
FROM stack_plans
ORDER BY created_at DESC, id
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []StackPlan
	for rows.Next() {
		var (
			plan           StackPlan
			assessmentJSON []byte
			resultJSON     []byte
		)
		if err := rows.Scan(&plan.ID, &plan.Fingerprint, &assessmentJSON, &resultJSON, &plan.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(assessmentJSON, &plan.Assessment); err != nil {
			return nil, fmt.Errorf("unmarshal assessment: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &plan.Result); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (r *PGRepo) scanOne(row *sql.Row) (StackPlan, error) {
	var (
		plan           StackPlan
		assessmentJSON []byte
		resultJSON     []byte
	)
	err := row.Scan(&plan.ID, &plan.Fingerprint, &assessmentJSON, &resultJSON, &plan.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StackPlan{}, ErrNotFound
		}
		return StackPlan{}, err
	}
	if err := json.Unmarshal(assessmentJSON, &plan.Assessment); err != nil {
		return StackPlan{}, fmt.Errorf("unmarshal assessment: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &plan.Result); err != nil {
		return StackPlan{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return plan, nil
}

var _ Repo = (*PGRepo)(nil)
