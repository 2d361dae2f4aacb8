// Package di wires the application's dependencies together
package di

import (
	"context"

	"go.uber.org/zap"

	"github.com/nadji40/dolab/internal/gateway"
	"github.com/nadji40/dolab/internal/repository"
	"github.com/nadji40/dolab/internal/store"
	"github.com/nadji40/dolab/pkg/config"
	"github.com/nadji40/dolab/pkg/redis"
)

// Container holds the wired application dependencies
type Container struct {
	Config  *config.Config
	Log     *zap.Logger
	Redis   *redis.Client // nil on the memory backend
	KV      repository.KV
	Gateway gateway.PaymentGateway
	Store   *store.Store
	Version string
}

// New builds the dependency graph. With the redis backend configured
// but unreachable, the store degrades to the in-memory backend rather
// than refusing to start.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) *Container {
	c := &Container{
		Config:  cfg,
		Log:     log,
		Version: cfg.App.Version,
	}

	c.KV = repository.NewMemoryKV()
	if cfg.Store.Backend == "redis" {
		client, err := redis.NewClient(ctx, &redis.Config{
			Host:          cfg.Redis.Host,
			Port:          cfg.Redis.Port,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			PoolSize:      cfg.Redis.PoolSize,
			MinIdleConns:  cfg.Redis.MinIdleConns,
			DialTimeout:   cfg.Redis.DialTimeout,
			ReadTimeout:   cfg.Redis.ReadTimeout,
			WriteTimeout:  cfg.Redis.WriteTimeout,
			MaxRetries:    3,
			RetryInterval: cfg.Redis.DialTimeout,
		})
		if err != nil {
			log.Warn("redis unavailable, falling back to memory backend", zap.Error(err))
		} else {
			c.Redis = client
			c.KV = repository.NewRedisKV(client)
		}
	}

	mock := gateway.NewMockGateway()
	mock.SuccessRate = cfg.Gateway.SuccessRate
	mock.Delay = cfg.Gateway.Delay
	c.Gateway = mock

	c.Store = store.New(c.KV, c.Gateway, mock, store.Config{
		ReadDelay:     cfg.Store.ReadDelay,
		PurchaseDelay: cfg.Store.PurchaseDelay,
		ApplyDelay:    cfg.Store.ApplyDelay,
		SyncDelay:     cfg.Store.SyncDelay,
	}, log)

	return c
}

// Close releases held connections
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("redis close failed", zap.Error(err))
		}
	}
}
