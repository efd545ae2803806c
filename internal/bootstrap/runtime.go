// Package bootstrap wires process-wide runtime dependencies for the commands.
package bootstrap

import (
	"context"
	"fmt"

	"travelshare/internal/cache"
	"travelshare/internal/config"
	"travelshare/internal/database"
	"travelshare/internal/middleware"
	"travelshare/internal/observability"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Runtime bundles the handles a command needs and how to release them.
type Runtime struct {
	DB    *gorm.DB
	Redis *redis.Client

	shutdownTracing func(context.Context) error
}

// InitRuntime starts tracing, connects to the database (applying the schema
// policy) and to Redis. Redis may be nil when unreachable.
func InitRuntime(cfg *config.Config) (*Runtime, error) {
	shutdownTracing, err := observability.InitTracing(TracingConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	if cache.GetClient() == nil {
		middleware.Logger.Warn("redis unavailable; caching and rate limits are degraded")
	}

	return &Runtime{DB: db, Redis: cache.GetClient(), shutdownTracing: shutdownTracing}, nil
}

// TracingConfig maps application config onto the tracer settings.
func TracingConfig(cfg *config.Config) observability.TracingConfig {
	return observability.TracingConfig{
		ServiceName:    "travelshare-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSamplerRatio,
	}
}

// Close flushes traces. The server owns DB and Redis shutdown.
func (r *Runtime) Close(ctx context.Context) error {
	if r.shutdownTracing == nil {
		return nil
	}
	return r.shutdownTracing(ctx)
}
