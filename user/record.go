// Package user stores and verifies bcrypt password hashes for application
// users, scoped by an optional "realm" namespace. The engine is storage
// agnostic: it depends only on the Store interface, and each backend
// (mongostore, pgstore, memstore) implements it.
package user

import "context"

// Record is the persisted document representing one user's identity and
// hashed credential. A record has no password between insertion and the
// first password-set.
type Record struct {
	ID       string
	Realm    string
	Username string
	Password string
}

// Store is the storage capability the engine requires. Implementations must
// return ErrNotFound from FindOne when no record matches, and pass every
// other storage fault through unchanged.
//
// The pair (realm, username) identifies at most one record. The engine's
// exists-check before insert is advisory only; a backend must enforce
// uniqueness itself (e.g. via a unique compound index) for correctness under
// concurrent registration of the same identity.
type Store interface {
	// FindOne returns the record matching realm and username exactly.
	FindOne(ctx context.Context, realm, username string) (*Record, error)

	// Insert stores a new record. The record's password may be empty.
	Insert(ctx context.Context, rec *Record) error

	// UpdatePassword sets the password hash on the record matching realm
	// and username, returning how many records matched.
	UpdatePassword(ctx context.Context, realm, username, hash string) (int64, error)
}
