package user

// Length bounds for validated inputs.
const (
	MinUsernameLen = 2
	MaxUsernameLen = 128
	MinPasswordLen = 6
	MinRealmLen    = 1
	MaxRealmLen    = 128
)

// DefaultRealm is used when the caller does not specify a realm.
const DefaultRealm = "_default"

// validateIdentity checks the store/username/realm triple. The check order
// is fixed and part of the contract: store, username-min, username-max,
// realm-min, realm-max.
func validateIdentity(store Store, username, realm string) error {
	if store == nil {
		return ErrNilStore
	}
	if len(username) < MinUsernameLen {
		return ErrUsernameTooShort
	}
	if len(username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	if len(realm) < MinRealmLen {
		return ErrRealmTooShort
	}
	if len(realm) > MaxRealmLen {
		return ErrRealmTooLong
	}
	return nil
}

// validatePassword is applied by the operations that hash a password
// (registration and password update), before any storage call. It sits
// between the username and realm checks in the overall ordering: store,
// username-min, username-max, password-min, realm-min, realm-max.
func validatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

// validateAll runs the full check sequence for password-taking operations.
func validateAll(store Store, username, password, realm string) error {
	if store == nil {
		return ErrNilStore
	}
	if len(username) < MinUsernameLen {
		return ErrUsernameTooShort
	}
	if len(username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	if len(realm) < MinRealmLen {
		return ErrRealmTooShort
	}
	if len(realm) > MaxRealmLen {
		return ErrRealmTooLong
	}
	return nil
}
