package auth

import (
	"sync"

	"go.uber.org/zap"
)

// Session is the authentication state of the running program. An empty
// Identifier means no user is signed in.
type Session struct {
	Authenticated bool
	Identifier    string
}

// Store owns the single Session record. Only Login and Logout mutate it.
type Store struct {
	mu      sync.RWMutex
	session Session
	epoch   uint64
	allow   AllowList
	log     *zap.Logger
}

func NewStore(allow AllowList, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{allow: allow, log: log.Named("auth")}
}

// Login authenticates against the allow-list. On failure the session is left
// exactly as it was and ErrInvalidCredentials is returned.
func (s *Store) Login(identifier, secret string) error {
	cred, ok := s.allow.Match(identifier, secret)
	if !ok {
		s.log.Info("login rejected", zap.String("identifier", identifier))
		return ErrInvalidCredentials
	}

	s.mu.Lock()
	s.session = Session{Authenticated: true, Identifier: cred.Identifier}
	s.epoch++
	s.mu.Unlock()

	s.log.Info("login", zap.String("identifier", cred.Identifier))
	return nil
}

// Logout resets the session. Calling it while signed out is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	prev := s.session
	s.session = Session{}
	s.mu.Unlock()

	if prev.Authenticated {
		s.log.Info("logout", zap.String("identifier", prev.Identifier))
	}
}

func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Snapshot returns the session together with the sign-in epoch, which grows
// by one on every successful Login. Readers use it to tell a fresh sign-in
// from a session they have already seen.
func (s *Store) Snapshot() (Session, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.epoch
}
