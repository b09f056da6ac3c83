package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost factor applied to every stored password.
const hashCost = bcrypt.DefaultCost

// User binds a Store, a username, and a realm for subsequent operations.
// It caches nothing between calls; every method re-queries the store. A User
// is safe for concurrent use as long as the underlying store is.
type User struct {
	store    Store
	Username string
	Realm    string
}

// Option adjusts handle construction.
type Option func(*User)

// WithRealm binds the handle to the given realm instead of DefaultRealm.
func WithRealm(realm string) Option {
	return func(u *User) { u.Realm = realm }
}

// New constructs a handle for username in the configured realm. It validates
// inputs and performs no I/O; the record may or may not exist yet.
func New(store Store, username string, opts ...Option) (*User, error) {
	u := &User{store: store, Username: username, Realm: DefaultRealm}
	for _, opt := range opts {
		opt(u)
	}
	if err := validateIdentity(store, u.Username, u.Realm); err != nil {
		return nil, err
	}
	return u, nil
}

// Register creates the record for username and sets its password, returning
// the bound handle only on success.
func Register(ctx context.Context, store Store, username, password string, opts ...Option) (*User, error) {
	u := &User{store: store, Username: username, Realm: DefaultRealm}
	for _, opt := range opts {
		opt(u)
	}
	if err := validateAll(store, u.Username, password, u.Realm); err != nil {
		return nil, err
	}
	if err := u.register(ctx, password); err != nil {
		return nil, err
	}
	return u, nil
}

// Find returns a handle bound to an existing record, or ErrNotFound when no
// record exists for the username in the configured realm.
func Find(ctx context.Context, store Store, username string, opts ...Option) (*User, error) {
	u, err := New(store, username, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := store.FindOne(ctx, u.Realm, u.Username); err != nil {
		return nil, err
	}
	return u, nil
}

// Exists reports whether a record for the bound (realm, username) pair
// exists. Storage errors are passed through unchanged.
func (u *User) Exists(ctx context.Context) (bool, error) {
	_, err := u.store.FindOne(ctx, u.Realm, u.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Register creates the record and sets its password hash. It fails with
// ErrUserExists when a record for the pair already exists, without touching
// storage further.
//
// The insert and the follow-up password update are two separate storage
// operations. A failure between them leaves a record with no usable
// password; the window is documented rather than compensated, and the
// exists-check does not protect against a concurrent registration of the
// same pair. Backends are expected to enforce uniqueness with an index.
func (u *User) Register(ctx context.Context, password string) error {
	if err := validateAll(u.store, u.Username, password, u.Realm); err != nil {
		return err
	}
	return u.register(ctx, password)
}

// VerifyPassword reports whether password matches the stored hash. A missing
// record yields (false, nil), not an error, so the result does not reveal
// which usernames exist.
func (u *User) VerifyPassword(ctx context.Context, password string) (bool, error) {
	_, ok, err := u.Authenticate(ctx, password)
	return ok, err
}

// Authenticate verifies password like VerifyPassword and additionally
// returns the matched record when the password is valid. The candidate is
// not length-checked: a too-short candidate can never match a stored hash,
// so it verifies as false rather than erroring.
func (u *User) Authenticate(ctx context.Context, password string) (*Record, bool, error) {
	if err := validateIdentity(u.store, u.Username, u.Realm); err != nil {
		return nil, false, err
	}

	rec, err := u.store.FindOne(ctx, u.Realm, u.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(password)) != nil {
		return nil, false, nil
	}
	return rec, true, nil
}

// SetPassword replaces the stored hash with a hash of newPassword. It fails
// with ErrPasswordUpdateFailed unless exactly one record matched the bound
// (realm, username) pair; an absent user and a realm mismatch are not
// distinguishable through this error.
func (u *User) SetPassword(ctx context.Context, newPassword string) error {
	if err := validateAll(u.store, u.Username, newPassword, u.Realm); err != nil {
		return err
	}
	return u.setPassword(ctx, newPassword)
}

// register runs the post-validation registration sequence.
func (u *User) register(ctx context.Context, password string) error {
	exists, err := u.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}
	if err := u.store.Insert(ctx, &Record{Realm: u.Realm, Username: u.Username}); err != nil {
		return err
	}
	return u.setPassword(ctx, password)
}

func (u *User) setPassword(ctx context.Context, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return err
	}
	matched, err := u.store.UpdatePassword(ctx, u.Realm, u.Username, string(hash))
	if err != nil {
		return err
	}
	if matched != 1 {
		return ErrPasswordUpdateFailed
	}
	return nil
}
