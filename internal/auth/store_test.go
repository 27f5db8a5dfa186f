package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	allow, err := NewAllowList(DefaultCredentials())
	require.NoError(t, err)
	return NewStore(allow, nil)
}

func TestLoginAcceptsEveryAllowListedPairInAnyCase(t *testing.T) {
	for _, c := range DefaultCredentials() {
		for _, ident := range []string{c.Identifier, strings.ToUpper(c.Identifier), strings.ToUpper(c.Identifier[:1]) + c.Identifier[1:]} {
			s := newTestStore(t)
			require.NoError(t, s.Login(ident, c.Secret), "identifier %q", ident)
			require.Equal(t, Session{Authenticated: true, Identifier: c.Identifier}, s.Current())
		}
	}
}

func TestLoginStoresAllowListIdentifier(t *testing.T) {
	s := newTestStore(t)
	require.Equal(t, Session{}, s.Current())

	require.NoError(t, s.Login("Admin@123.com", "admin123"))
	require.Equal(t, Session{Authenticated: true, Identifier: "admin@123.com"}, s.Current())
}

func TestLoginRejectsWrongSecret(t *testing.T) {
	s := newTestStore(t)

	err := s.Login("admin@123.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, Session{}, s.Current())
}

func TestLoginSecretIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	require.ErrorIs(t, s.Login("admin@123.com", "ADMIN123"), ErrInvalidCredentials)
}

func TestFailedLoginLeavesAuthenticatedSessionUnchanged(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Login("guest@123.com", "guestpass"))
	before := s.Current()

	cases := [][2]string{
		{"admin@123.com", "guestpass"},
		{"nobody@123.com", "x"},
		{"", ""},
		{"guest@123.com ", "guestpass"},
	}
	for _, c := range cases {
		require.ErrorIs(t, s.Login(c[0], c[1]), ErrInvalidCredentials)
		require.Equal(t, before, s.Current())
	}
}

func TestNoLockoutAfterFailures(t *testing.T) {
	s := newTestStore(t)
	require.ErrorIs(t, s.Login("dev@123.com", "nope"), ErrInvalidCredentials)
	require.ErrorIs(t, s.Login("dev@123.com", "still-nope"), ErrInvalidCredentials)
	require.NoError(t, s.Login("dev@123.com", "devmode"))
	require.True(t, s.Current().Authenticated)
}

func TestLogoutIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	s.Logout()
	require.Equal(t, Session{}, s.Current())

	require.NoError(t, s.Login("admin@123.com", "admin123"))
	s.Logout()
	require.Equal(t, Session{}, s.Current())
	s.Logout()
	require.Equal(t, Session{}, s.Current())
}

func TestLoginSwitchesUser(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Login("admin@123.com", "admin123"))
	require.NoError(t, s.Login("dev@123.com", "devmode"))
	require.Equal(t, "dev@123.com", s.Current().Identifier)
}

func TestSecretNeverLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	allow, err := NewAllowList(DefaultCredentials())
	require.NoError(t, err)
	s := NewStore(allow, zap.New(core))

	_ = s.Login("admin@123.com", "wrong-secret")
	require.NoError(t, s.Login("admin@123.com", "admin123"))
	s.Logout()

	require.Equal(t, 3, logs.Len())
	for _, entry := range logs.All() {
		for _, f := range entry.Context {
			require.NotContains(t, f.String, "admin123")
			require.NotContains(t, f.String, "wrong-secret")
		}
	}
}

func TestNewAllowListRejectsEmptyIdentifier(t *testing.T) {
	_, err := NewAllowList([]Credential{{Identifier: "a@123.com", Secret: "x"}, {Identifier: "  ", Secret: "y"}})
	require.True(t, errors.Is(err, ErrEmptyIdentifier))
}

func TestAllowListCredentialsIsACopy(t *testing.T) {
	allow, err := NewAllowList(DefaultCredentials())
	require.NoError(t, err)
	got := allow.Credentials()
	got[0].Secret = "tampered"
	_, ok := allow.Match("admin@123.com", "admin123")
	require.True(t, ok)
	require.Equal(t, 3, allow.Len())
}

func TestHasDomainSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"admin@123.com", true},
		{"ADMIN@123.COM", true},
		{"  dev@123.com ", true},
		{"admin@gmail.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasDomainSuffix(tt.in, "@123.com"); got != tt.want {
			t.Errorf("HasDomainSuffix(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSnapshotEpochAdvancesOnlyOnSuccessfulLogin(t *testing.T) {
	s := newTestStore(t)
	_, e0 := s.Snapshot()

	require.ErrorIs(t, s.Login("admin@123.com", "bad"), ErrInvalidCredentials)
	_, e1 := s.Snapshot()
	require.Equal(t, e0, e1)

	require.NoError(t, s.Login("admin@123.com", "admin123"))
	sess, e2 := s.Snapshot()
	require.Equal(t, e0+1, e2)
	require.True(t, sess.Authenticated)

	s.Logout()
	_, e3 := s.Snapshot()
	require.Equal(t, e2, e3)
}
