// Package memstore provides an in-memory user.Store, primarily for tests.
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userstore/user"
)

type key struct {
	realm    string
	username string
}

// Store keeps records in a mutex-guarded map. Unlike the engine's advisory
// exists-check, Insert enforces (realm, username) uniqueness, mirroring the
// unique index a real backend is configured with.
type Store struct {
	mu   sync.RWMutex
	recs map[key]user.Record
}

func New() *Store {
	return &Store{recs: make(map[key]user.Record)}
}

func (s *Store) FindOne(ctx context.Context, realm, username string) (*user.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.recs[key{realm, username}]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &rec, nil
}

func (s *Store) Insert(ctx context.Context, rec *user.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{rec.Realm, rec.Username}
	if _, ok := s.recs[k]; ok {
		return user.ErrUserExists
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	s.recs[k] = *rec
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, realm, username, hash string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{realm, username}
	rec, ok := s.recs[k]
	if !ok {
		return 0, nil
	}
	rec.Password = hash
	s.recs[k] = rec
	return 1, nil
}
