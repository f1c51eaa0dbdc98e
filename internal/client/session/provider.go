package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/client"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
	"github.com/shiftnotes/shiftnotes-cli/internal/common"
	"github.com/shiftnotes/shiftnotes-cli/internal/logging"
)

type Status int

const (
	StatusInitializing Status = iota
	StatusAnonymous
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// API is the slice of the gateway the provider needs.
type API interface {
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (models.User, error)
}

// Provider drives the session lifecycle. Status reports StatusInitializing
// until Init has finished or a login has succeeded.
type Provider struct {
	sess      *Session
	api       API
	store     TokenStore
	log       logging.Logger
	ready     chan struct{}
	readyOnce sync.Once
}

// NewProvider wires sess to api and store. A token rejected by the server
// (Session.Expire) also drops the persisted copy.
func NewProvider(sess *Session, api API, store TokenStore, log logging.Logger) *Provider {
	if log == nil {
		log = logging.Nop()
	}
	p := &Provider{
		sess:  sess,
		api:   api,
		store: store,
		log:   log.With("component", "session"),
		ready: make(chan struct{}),
	}
	sess.OnExpire(func() {
		ctx := context.Background()
		p.log.Info(ctx, "session expired")
		if err := p.store.Clear(ctx); err != nil {
			p.log.Warn(ctx, "clear persisted token", "error", err)
		}
	})
	return p
}

func (p *Provider) markReady() {
	p.readyOnce.Do(func() { close(p.ready) })
}

// Init restores a persisted token and resolves it to a user. It always marks
// the provider ready, even on error. Calling it again repeats the restore.
func (p *Provider) Init(ctx context.Context) error {
	defer p.markReady()

	token, err := p.store.Load(ctx)
	if err != nil {
		p.log.Warn(ctx, "persisted token unreadable, discarding", "error", err)
		if cerr := p.store.Clear(ctx); cerr != nil {
			p.log.Warn(ctx, "clear persisted token", "error", cerr)
		}
		return fmt.Errorf("restore session: %w", err)
	}
	if token == "" {
		return nil
	}

	p.sess.setToken(token)
	u, err := p.api.Me(ctx)
	if err != nil {
		p.log.Info(ctx, "persisted token did not resolve", "error", err)
		p.sess.Clear()
		if cerr := p.store.Clear(ctx); cerr != nil {
			p.log.Warn(ctx, "clear persisted token", "error", cerr)
		}
		return fmt.Errorf("restore session: %w", err)
	}
	p.sess.setUser(u)
	p.log.Info(ctx, "session restored", "user_id", u.ID, "role", u.Role)
	return nil
}

// Ready is closed once Init returns or a login succeeds.
func (p *Provider) Ready() <-chan struct{} {
	return p.ready
}

func (p *Provider) Status() Status {
	select {
	case <-p.ready:
	default:
		return StatusInitializing
	}
	if p.sess.Token() == "" {
		return StatusAnonymous
	}
	return StatusAuthenticated
}

func (p *Provider) IsAuthenticated() bool {
	return p.Status() == StatusAuthenticated
}

func (p *Provider) User() (models.User, bool) {
	return p.sess.User()
}

// Login replaces the session on success. On failure the previous session, if
// any, stays as it was.
func (p *Provider) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return common.ErrEmptyCredentials
	}

	resp, err := p.api.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrInvalidCredentials),
			errors.Is(err, client.ErrUnavailable),
			client.IsCanceled(err):
			return fmt.Errorf("login: %w", err)
		}
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("login: %w: %w", client.ErrInvalidCredentials, err)
		}
		return fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return fmt.Errorf("login: %w", common.ErrInvalidToken)
	}

	p.sess.Set(resp.Token, resp.User)
	p.markReady()
	if err := p.store.Save(ctx, resp.Token); err != nil {
		p.log.Warn(ctx, "persist token", "error", err)
	}
	p.log.Info(ctx, "logged in", "user_id", resp.User.ID, "role", resp.User.Role)
	return nil
}

// Logout tells the server (best effort) and always clears local state.
func (p *Provider) Logout(ctx context.Context) {
	if p.sess.Token() != "" {
		if err := p.api.Logout(ctx); err != nil {
			p.log.Warn(ctx, "server logout failed", "error", err)
		}
	}
	p.sess.Clear()
	if err := p.store.Clear(ctx); err != nil {
		p.log.Warn(ctx, "clear persisted token", "error", err)
	}
	p.log.Info(ctx, "logged out")
}

// RefreshUser reloads the current user. Any failure logs the user out.
func (p *Provider) RefreshUser(ctx context.Context) (models.User, error) {
	u, err := p.api.Me(ctx)
	if err != nil {
		p.Logout(ctx)
		return models.User{}, fmt.Errorf("refresh user: %w", err)
	}
	p.sess.setUser(u)
	return u, nil
}
