package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAll_Order(t *testing.T) {
	var st Store = &stubStore{}

	longName := strings.Repeat("u", MaxUsernameLen+1)
	longRealm := strings.Repeat("r", MaxRealmLen+1)

	tests := []struct {
		name     string
		store    Store
		username string
		password string
		realm    string
		want     error
	}{
		{"nil store checked first", nil, "x", "short", "", ErrNilStore},
		{"username min before password", st, "x", "short", "", ErrUsernameTooShort},
		{"username max before password", st, longName, "short", "", ErrUsernameTooLong},
		{"password min before realm", st, "bar", "short", "", ErrPasswordTooShort},
		{"realm min", st, "bar", "password", "", ErrRealmTooShort},
		{"realm max", st, "bar", "password", longRealm, ErrRealmTooLong},
		{"all valid", st, "bar", "password", DefaultRealm, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateAll(tc.store, tc.username, tc.password, tc.realm)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateIdentity_Order(t *testing.T) {
	var st Store = &stubStore{}

	tests := []struct {
		name     string
		store    Store
		username string
		realm    string
		want     error
	}{
		{"nil store", nil, "", "", ErrNilStore},
		{"short username", st, "x", "", ErrUsernameTooShort},
		{"long username", st, strings.Repeat("u", 129), "", ErrUsernameTooLong},
		{"empty realm", st, "bar", "", ErrRealmTooShort},
		{"long realm", st, "bar", strings.Repeat("r", 129), ErrRealmTooLong},
		{"boundary values pass", st, "ab", strings.Repeat("r", 128), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateIdentity(tc.store, tc.username, tc.realm)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
