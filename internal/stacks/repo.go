package stacks

import "context"

// Repo persists stack plans.
type Repo interface {
	Create(ctx context.Context, plan StackPlan) error
	GetByID(ctx context.Context, id string) (StackPlan, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (StackPlan, error)
	ListRecent(ctx context.Context, limit int) ([]StackPlan, error)
}
