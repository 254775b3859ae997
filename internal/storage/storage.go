package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Backend is a flat key-value store. Get reports found=false for an absent key.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is the serialization boundary between in-memory collections and a Backend.
// It owns no data of its own.
type Store struct {
	backend Backend
	prefix  string
	log     *zap.Logger
}

func NewStore(backend Backend, prefix string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{backend: backend, prefix: prefix, log: log}
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, s.key(key)); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Load returns the decoded value stored under key, or def when nothing is stored,
// the read fails or the payload does not decode. Failures are logged, never returned.
func Load[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, found, err := s.backend.Get(ctx, s.key(key))
	if err != nil {
		s.log.Warn("store read failed, using defaults", zap.String("key", key), zap.Error(err))
		return def
	}
	if !found {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn("stored value is corrupt, using defaults", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// Save encodes v and overwrites whatever is stored under key.
func Save[T any](ctx context.Context, s *Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, s.key(key), raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
