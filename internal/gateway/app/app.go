// Package app wires the gateway together: config, logging, stores, the
// pipeline, and the HTTP server.
package app

import (
	"context"
	"fmt"
	"time"

	"algolens/internal/cache/result"
	"algolens/internal/classifier"
	"algolens/internal/gateway/config"
	"algolens/internal/gateway/handler"
	"algolens/internal/gateway/repository/algorithm"
	"algolens/internal/gateway/server"
	"algolens/internal/gateway/service/pipeline"
	"algolens/internal/gateway/service/workspace"
	"algolens/internal/render"
	"algolens/internal/tracegen"

	"go.uber.org/zap"
)

type App struct {
	server *server.Server
	logger *zap.Logger
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	stores, err := initStores(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Seeded reference algorithms ship with the server.
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := algorithm.Seed(seedCtx, stores.algorithms, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to seed algorithms: %w", err)
	}

	// Core pipeline
	pipelineSvc := pipeline.New(
		classifier.New(classifier.DefaultConfig()),
		tracegen.New(),
		result.New(result.DefaultConfig()),
		logger,
	)
	hub := workspace.NewHub()
	workspaceSvc := workspace.New(
		stores.projects,
		stores.visualizations,
		stores.steps,
		pipelineSvc,
		render.NewSVGRenderer(),
		hub,
		logger,
	)

	// Handlers
	pipelineHandler := handler.NewPipelineHandler(pipelineSvc, logger)
	userHandler := handler.NewUserHandler(stores.users, logger)
	projectHandler := handler.NewProjectHandler(workspaceSvc, logger)
	algorithmHandler := handler.NewAlgorithmHandler(stores.algorithms, logger)
	visualizationHandler := handler.NewVisualizationHandler(workspaceSvc, logger)
	watchHandler := handler.NewWatchHandler(hub, logger)

	// Routing & Server
	mux := server.NewMux(pipelineHandler, userHandler, projectHandler, algorithmHandler, visualizationHandler, watchHandler)
	srv := server.New(cfg.Port, mux, logger)

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	defer func() { _ = a.logger.Sync() }()
	return a.server.Shutdown(ctx)
}
