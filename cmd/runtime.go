package main

import (
	"context"
	"fmt"
	"os"
	"phishguard/internal/assessor"
	"phishguard/internal/config"
	"phishguard/pkg/logger"
	"phishguard/pkg/model"
	"phishguard/pkg/model/linear"
	"phishguard/pkg/model/remote"
	"phishguard/pkg/registry"
	"phishguard/pkg/registry/cached"
	"phishguard/pkg/registry/whoisclient"
	"phishguard/pkg/storage"
	"phishguard/pkg/storage/memory"
	"phishguard/pkg/storage/postgres"
	"phishguard/pkg/storage/redis"

	"go.uber.org/zap"
)

// loadBundle loads the scoring artifacts selected by cfg.Model.Kind.
func loadBundle(ctx context.Context, cfg *config.Config) (*model.Bundle, error) {
	if cfg.Model.Kind != config.ModelRemote {
		return linear.Load(cfg.Model.ArtifactPath)
	}

	// the inference service receives scaled vectors, so the scaler still
	// comes from the local artifact
	f, err := os.Open(cfg.Model.ArtifactPath)
	if err != nil {
		return nil, fmt.Errorf("could not open model artifact: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	artifact, err := linear.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode model artifact: %w", err)
	}

	client, err := remote.New(ctx, remote.Options{
		Endpoint: cfg.Model.Remote.Endpoint,
		APIKey:   cfg.Model.Remote.APIKey,
		Timeout:  cfg.Model.Remote.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return client.Bundle(&artifact.Scaler), nil
}

// registryDeps are the collaborators created for registration lookups.
type registryDeps struct {
	registry registry.Registry
	// cache is nil when caching is disabled.
	cache *cached.Cache
	// pg is set for the postgres backend.
	pg    *postgres.PgSQL
	close func()
}

// buildRegistry wires the WHOIS client behind the configured cache backend.
// withJobs lets stale answers be refreshed by the background workers.
func buildRegistry(ctx context.Context, cfg *config.Config, withJobs bool) (*registryDeps, error) {
	deps := &registryDeps{close: func() {}}
	if cfg.Registry.Offline {
		logger.Info(ctx, "registration lookups are disabled")
		deps.registry = registry.Offline

		return deps, nil
	}

	live := whoisclient.New(whoisclient.Options{
		Timeout: cfg.Registry.WhoisTimeout,
		Server:  cfg.Registry.WhoisServer,
	})

	var store storage.Storage
	switch cfg.Registry.Cache.Backend {
	case config.CacheNone:
		deps.registry = live

		return deps, nil
	case config.CachePostgres:
		pg, closePg := getPostgres(ctx, cfg)
		store, deps.pg, deps.close = pg, pg, closePg
	case config.CacheRedis:
		store = redis.New(redis.Options{
			Host:      cfg.Redis.Host,
			Port:      cfg.Redis.Port,
			Username:  cfg.Redis.Username,
			Password:  cfg.Redis.Password,
			Database:  cfg.Redis.Database,
			Retention: cfg.Registry.Cache.Retention,
		})
	default:
		store = memory.New(memory.Options{
			MaxEntries: cfg.Registry.Cache.MaxEntries,
			Retention:  cfg.Registry.Cache.Retention,
		})
	}
	if deps.pg == nil {
		deps.close = func() {
			if err := store.Close(); err != nil {
				logger.Warn(ctx, "could not close registration cache", zap.Error(err))
			}
		}
	}

	opts := []cached.Option{
		cached.WithTTL(cfg.Registry.Cache.TTL),
		cached.WithKeyFunc(whoisclient.RegistrableDomain),
	}
	if withJobs && deps.pg != nil {
		opts = append(opts, cached.WithJobs(deps.pg))
	}

	cache, err := cached.New(live, store, opts...)
	if err != nil {
		deps.close()

		return nil, fmt.Errorf("could not create registration cache: %w", err)
	}
	deps.cache, deps.registry = cache, cache

	logger.Info(ctx, "registration cache ready", zap.String("backend", cfg.Registry.Cache.Backend))

	return deps, nil
}

// buildAssessor loads the artifacts and runs the startup self-test.
func buildAssessor(ctx context.Context, cfg *config.Config, reg registry.Registry) (*assessor.Runtime, error) {
	bundle, err := loadBundle(ctx, cfg)
	if err != nil {
		// the service still starts and reports itself unhealthy
		logger.Error(ctx, "could not load model artifacts", zap.Error(err))
	}

	return assessor.New(ctx, bundle, assessor.Options{
		Registry:      reg,
		LookupTimeout: cfg.Registry.LookupTimeout,
		TopFactors:    cfg.Model.TopFactors,
	})
}
