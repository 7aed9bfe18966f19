package catalog

import "context"

// Repo defines read operations over the tool catalog.
type Repo interface {
	GetAllTools(ctx context.Context) ([]Tool, error)
	GetByID(ctx context.Context, id string) (Tool, error)
}
