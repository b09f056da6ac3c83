package user

import "errors"

var (
	// Validation errors. Returned synchronously, before any storage call,
	// in a fixed order: store, username-min, username-max, password-min,
	// realm-min, realm-max. Callers should treat them as programmer errors.
	ErrNilStore         = errors.New("store is nil")
	ErrUsernameTooShort = errors.New("username is too short")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrRealmTooShort    = errors.New("realm is too short")
	ErrRealmTooLong     = errors.New("realm is too long")

	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Operation errors.
	ErrUserExists           = errors.New("username already exists")
	ErrPasswordUpdateFailed = errors.New("failed to update password")
)
