package app

import (
	"database/sql"
	"fmt"
	"strings"

	"algolens/internal/gateway/config"
	algorithmrepo "algolens/internal/gateway/repository/algorithm"
	projectrepo "algolens/internal/gateway/repository/project"
	"algolens/internal/gateway/repository/stepblob"
	userrepo "algolens/internal/gateway/repository/user"
	visualizationrepo "algolens/internal/gateway/repository/visualization"

	"go.uber.org/zap"
)

type gatewayStores struct {
	users          userrepo.Store
	projects       projectrepo.Store
	algorithms     algorithmrepo.Store
	visualizations visualizationrepo.Store
	steps          stepblob.Store
}

func initStores(cfg *config.Config, logger *zap.Logger) (*gatewayStores, error) {
	s3Factory := newStepBlobS3Factory(cfg, logger)

	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		return initPostgresStores(dsn, cfg, logger, s3Factory)
	}
	return initInMemoryStores(cfg, logger, s3Factory)
}

func newStepBlobS3Factory(cfg *config.Config, logger *zap.Logger) func() (stepblob.Store, error) {
	return func() (stepblob.Store, error) {
		s3Cfg := stepblob.S3Config{
			Endpoint:  cfg.StepBlob.Endpoint,
			Region:    cfg.StepBlob.Region,
			AccessKey: cfg.StepBlob.AccessKey,
			SecretKey: cfg.StepBlob.SecretKey,
			Bucket:    cfg.StepBlob.Bucket,
			UseSSL:    cfg.StepBlob.UseSSL,
		}
		s3Store, err := stepblob.NewS3Store(s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize step blob s3 store: %w", err)
		}
		logger.Info("step blob store: s3",
			zap.String("bucket", s3Cfg.Bucket),
			zap.String("endpoint", s3Cfg.Endpoint))
		return s3Store, nil
	}
}

func initPostgresStores(dsn string, cfg *config.Config, logger *zap.Logger, s3Factory func() (stepblob.Store, error)) (*gatewayStores, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	stores := &gatewayStores{
		users:          userrepo.NewPostgresStore(db),
		projects:       projectrepo.NewPostgresStore(db),
		algorithms:     algorithmrepo.NewPostgresStore(db),
		visualizations: visualizationrepo.NewPostgresStore(db),
	}
	stepStore, err := chooseStepBlobStore(cfg, logger, stepblob.NewPostgresStore(db), "postgres", s3Factory)
	if err != nil {
		return nil, err
	}
	stores.steps = stepStore
	return stores, nil
}

func initInMemoryStores(cfg *config.Config, logger *zap.Logger, s3Factory func() (stepblob.Store, error)) (*gatewayStores, error) {
	stepStore, err := chooseStepBlobStore(cfg, logger, stepblob.NewMemoryStore(), "in-memory", s3Factory)
	if err != nil {
		return nil, err
	}
	return &gatewayStores{
		users:          userrepo.NewMemoryStore(),
		projects:       projectrepo.NewMemoryStore(),
		algorithms:     algorithmrepo.NewMemoryStore(),
		visualizations: visualizationrepo.NewMemoryStore(),
		steps:          stepStore,
	}, nil
}

func chooseStepBlobStore(
	cfg *config.Config,
	logger *zap.Logger,
	fallback stepblob.Store,
	fallbackLabel string,
	s3Factory func() (stepblob.Store, error),
) (stepblob.Store, error) {
	var origin stepblob.Store
	if cfg.StepBlob.CanUseS3() {
		s3Store, err := s3Factory()
		if err != nil {
			return nil, err
		}
		origin = s3Store
	} else {
		if cfg.StepBlob.Enabled {
			logger.Info("step blob store: using fallback (s3 config incomplete)",
				zap.String("backend", fallbackLabel))
		}
		origin = fallback
	}
	if origin == nil {
		return nil, fmt.Errorf("step blob origin store is nil")
	}
	return stepblob.NewCachedStore(origin, stepblob.DefaultCacheConfig()), nil
}
