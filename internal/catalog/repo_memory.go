package catalog

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	tools []Tool
	byID  map[string]Tool
}

// NewMemoryRepo constructs a MemoryRepo holding the given tools.
func NewMemoryRepo(tools []Tool) *MemoryRepo {
	byID := make(map[string]Tool, len(tools))
	for _, t := range tools {
		byID[t.ID] = t
	}
	return &MemoryRepo{
		tools: append([]Tool(nil), tools...),
		byID:  byID,
	}
}

// NewSeededRepo constructs a MemoryRepo loaded with the built-in catalog.
func NewSeededRepo() *MemoryRepo {
	return NewMemoryRepo(SeedTools())
}

// GetAllTools returns every catalog tool in stable seed order.
func (r *MemoryRepo) GetAllTools(ctx context.Context) ([]Tool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out, nil
}

// GetByID returns a single tool by catalog id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Tool, error) {
	if err := ctx.Err(); err != nil {
		return Tool{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.byID[id]
	if !ok {
		return Tool{}, ErrNotFound
	}
	return tool, nil
}

var _ Repo = (*MemoryRepo)(nil)
