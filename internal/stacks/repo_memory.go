package stacks

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu            sync.RWMutex
	byID          map[string]StackPlan
	byFingerprint map[string]StackPlan
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:          make(map[string]StackPlan),
		byFingerprint: make(map[string]StackPlan),
	}
}

// Create stores a plan, overwriting any prior plan with the same fingerprint.
func (r *MemoryRepo) Create(ctx context.Context, plan StackPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[plan.ID] = plan
	r.byFingerprint[plan.Fingerprint] = plan
	return nil
}

// GetByID returns a plan by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (StackPlan, error) {
	if err := ctx.Err(); err != nil {
		return StackPlan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.byID[id]
	if !ok {
		return StackPlan{}, ErrNotFound
	}
	return plan, nil
}

// GetByFingerprint returns the most recent plan for an assessment fingerprint.
func (r *MemoryRepo) GetByFingerprint(ctx context.Context, fingerprint string) (StackPlan, error) {
	if err := ctx.Err(); err != nil {
		return StackPlan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.byFingerprint[fingerprint]
	if !ok {
		return StackPlan{}, ErrNotFound
	}
	return plan, nil
}

// ListRecent returns up to limit plans, newest first.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]StackPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plans := make([]StackPlan, 0, len(r.byID))
	for _, plan := range r.byID {
		plans = append(plans, plan)
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].ID < plans[j].ID
		}
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	if limit > 0 && len(plans) > limit {
		plans = plans[:limit]
	}
	return plans, nil
}

var _ Repo = (*MemoryRepo)(nil)
