package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"stackpilot-backend/internal/catalog"
	"stackpilot-backend/internal/graph"
	"stackpilot-backend/internal/shared/config"
	"stackpilot-backend/internal/shared/server"
	"stackpilot-backend/internal/shared/storage/db"
	"stackpilot-backend/internal/stacks"
	"stackpilot-backend/internal/stacks/engine"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	CatalogRepo      catalog.Repo
	IntegrationsRepo graph.IntegrationsRepo
	RedundanciesRepo graph.RedundanciesRepo
	ReplacementsRepo graph.ReplacementsRepo
	StacksRepo       stacks.Repo

	Pipeline      *engine.Pipeline
	StacksService *stacks.Service
	StacksHandler *stacks.Handler
}

// Build prepares shared dependencies and wires routes. Without a database the
// app runs entirely on the seeded in-memory catalog and graph.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		StacksHandler: app.StacksHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using seeded in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using seeded in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		catalogRepo := &catalog.PGRepo{DB: app.DB}
		graphRepo := &graph.PGRepo{DB: app.DB}
		app.CatalogRepo = catalogRepo
		app.IntegrationsRepo = graphRepo
		app.RedundanciesRepo = graphRepo
		app.ReplacementsRepo = graphRepo
		app.StacksRepo = &stacks.PGRepo{DB: app.DB}
	} else {
		catalogRepo := catalog.NewSeededRepo()
		graphRepo := graph.NewSeededRepo()
		app.CatalogRepo = catalogRepo
		app.IntegrationsRepo = graphRepo
		app.RedundanciesRepo = graphRepo
		app.ReplacementsRepo = graphRepo
		app.StacksRepo = stacks.NewMemoryRepo()
	}

	app.Pipeline = &engine.Pipeline{
		Catalog:      app.CatalogRepo,
		Integrations: app.IntegrationsRepo,
		Redundancies: app.RedundanciesRepo,
		Replacements: app.ReplacementsRepo,
	}
	app.StacksService = &stacks.Service{
		Repo:     app.StacksRepo,
		Catalog:  app.CatalogRepo,
		Pipeline: app.Pipeline,
	}
	app.StacksHandler = stacks.NewHandler(app.StacksService)
}

// Seed loads the built-in catalog and graph into the configured database.
// A no-op without a database; the memory repositories are always seeded.
func (a *App) Seed(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}

	catalogRepo := &catalog.PGRepo{DB: a.DB}
	for _, tool := range catalog.SeedTools() {
		if err := catalogRepo.Upsert(ctx, tool); err != nil {
			return fmt.Errorf("seed tool %s: %w", tool.ID, err)
		}
	}

	graphRepo := &graph.PGRepo{DB: a.DB}
	for _, edge := range graph.SeedIntegrations() {
		if err := graphRepo.UpsertIntegration(ctx, edge); err != nil {
			return fmt.Errorf("seed integration %s->%s: %w", edge.FromID, edge.ToID, err)
		}
	}
	for _, pair := range graph.SeedRedundancies() {
		if err := graphRepo.UpsertRedundancy(ctx, pair); err != nil {
			return fmt.Errorf("seed redundancy %s/%s: %w", pair.ToolA, pair.ToolB, err)
		}
	}
	if err := graphRepo.ClearReplacements(ctx); err != nil {
		return fmt.Errorf("clear replacements: %w", err)
	}
	for _, rule := range graph.SeedReplacements() {
		if err := graphRepo.InsertReplacement(ctx, rule); err != nil {
			return fmt.Errorf("seed replacement %s->%s: %w", rule.FromID, rule.ToID, err)
		}
	}
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
