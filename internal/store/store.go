// Package store implements the local event store: cached reads with
// fixture fallback, check-in, ticket purchase, and sync bookkeeping,
// all persisted through a string key-value boundary.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nadji40/dolab/internal/gateway"
	"github.com/nadji40/dolab/internal/repository"
)

// Config holds the simulated latency of the store's operation classes.
// Zero values disable the delay.
type Config struct {
	ReadDelay     time.Duration
	PurchaseDelay time.Duration
	ApplyDelay    time.Duration
	SyncDelay     time.Duration
}

// Store is the local event store. Reads try the cache first and fall
// back to fixture data; writes go through a per-key lock so concurrent
// read-modify-write cycles on the same key cannot interleave.
type Store struct {
	kv   repository.KV
	gw   gateway.PaymentGateway
	apps gateway.ApplicationGateway
	cfg  Config
	log  *zap.Logger
	now  func() time.Time

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New creates a store over the given persistence and payment backends
func New(kv repository.KV, gw gateway.PaymentGateway, apps gateway.ApplicationGateway, cfg Config, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		kv:    kv,
		gw:    gw,
		apps:  apps,
		cfg:   cfg,
		log:   log,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// WithClock replaces the store's time source
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// keyLock returns the mutex guarding read-modify-write cycles on key
func (s *Store) keyLock(key string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	mu, ok := s.locks[key]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[key] = mu
	}
	return mu
}

// pause sleeps for d unless the context ends first
func (s *Store) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// loadJSON reads key and unmarshals it into out. It returns false when
// the key is absent, unreadable, or holds corrupt JSON; callers fall
// back to fixture data in that case.
func (s *Store) loadJSON(key string, out interface{}) bool {
	raw, err := s.kv.Get(key)
	if err != nil {
		if err != repository.ErrKeyNotFound {
			s.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// saveJSON marshals v and writes it to key. Failures are logged and
// swallowed; a cold cache only costs the next read a fixture rebuild.
func (s *Store) saveJSON(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		s.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
