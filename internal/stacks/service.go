package stacks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stackpilot-backend/internal/assessment"
	"stackpilot-backend/internal/catalog"
	"stackpilot-backend/internal/shared/metrics"
	"stackpilot-backend/internal/shared/telemetry"
	"stackpilot-backend/internal/stacks/engine"
)

// Service contains business logic for stack plans.
type Service struct {
	Repo     Repo
	Catalog  catalog.Repo
	Pipeline *engine.Pipeline
}

// CreatePlan validates the assessment, runs the decision pipeline, and
// persists the result. A plan already cached under the assessment's
// fingerprint is returned as-is without re-running the pipeline.
func (s *Service) CreatePlan(ctx context.Context, in assessment.Input) (StackPlan, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return StackPlan{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fingerprint := in.Fingerprint()
	if cached, err := s.Repo.GetByFingerprint(ctx, fingerprint); err == nil {
		telemetry.Info("stacks.plan_cache_hit", map[string]any{
			"plan_id":     cached.ID,
			"fingerprint": fingerprint,
		})
		return cached, nil
	} else if !errors.Is(err, ErrNotFound) {
		return StackPlan{}, err
	}

	metrics.IncPlanStarted()
	started := time.Now()

	result, err := s.Pipeline.Run(ctx, &in)
	if err != nil {
		metrics.IncPlanFailed()
		telemetry.Error("stacks.plan_failed", map[string]any{
			"fingerprint": fingerprint,
			"error":       err.Error(),
		})
		return StackPlan{}, err
	}

	plan := StackPlan{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint,
		Assessment:  in,
		Result:      *result,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, plan); err != nil {
		metrics.IncPlanFailed()
		return StackPlan{}, err
	}

	metrics.IncPlanCompleted()
	metrics.ObservePlanDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("stacks.plan_created", map[string]any{
		"plan_id":     plan.ID,
		"fingerprint": fingerprint,
		"scenarios":   len(result.Scenarios),
		"unmatched":   len(result.Unmatched),
	})
	return plan, nil
}

// GetPlan returns a stored plan by id.
func (s *Service) GetPlan(ctx context.Context, id string) (StackPlan, error) {
	if id == "" {
		return StackPlan{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// ListRecentPlans returns the newest plans, capped at 100.
func (s *Service) ListRecentPlans(ctx context.Context, limit int) ([]StackPlan, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.Repo.ListRecent(ctx, limit)
}

// ListTools returns the full tool catalog.
func (s *Service) ListTools(ctx context.Context) ([]catalog.Tool, error) {
	return s.Catalog.GetAllTools(ctx)
}

// GetTool returns one catalog tool by id.
func (s *Service) GetTool(ctx context.Context, id string) (catalog.Tool, error) {
	return s.Catalog.GetByID(ctx, id)
}
