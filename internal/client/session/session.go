// Package session owns the one live login: the token the gateway attaches to
// requests, the resolved user, and the provider that logs in, logs out and
// restores a persisted token at startup.
package session

import (
	"sync"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
)

// Session holds the current token and user. It is safe for concurrent use
// and satisfies client.Credentials, so the gateway reads the token from it and
// reports a rejected token back through Expire.
type Session struct {
	mu       sync.RWMutex
	token    string
	user     models.User
	resolved bool
	onExpire []func()
}

func New() *Session {
	return &Session{}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user. ok is false until the token has been
// resolved to a user.
func (s *Session) User() (u models.User, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.resolved
}

func (s *Session) Set(token string, u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user, s.resolved = token, u, true
}

// setToken installs a token whose user is not known yet.
func (s *Session) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user, s.resolved = token, models.User{}, false
}

func (s *Session) setUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return
	}
	s.user, s.resolved = u, true
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user, s.resolved = "", models.User{}, false
}

// Expire ends the session because the server rejected token. A rejection
// of a token that is no longer current (a slow request from before a fresh
// login) leaves the session alone. Hooks registered with OnExpire run after
// the state is cleared.
func (s *Session) Expire(token string) {
	s.mu.Lock()
	if token == "" || s.token != token {
		s.mu.Unlock()
		return
	}
	s.token, s.user, s.resolved = "", models.User{}, false
	hooks := append([]func(){}, s.onExpire...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

func (s *Session) OnExpire(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpire = append(s.onExpire, fn)
}
