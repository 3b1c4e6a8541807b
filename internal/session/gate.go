package session

import (
	"context"
	"log/slog"

	"github.com/pranit96/life.me/internal/model"
)

// State of the gate. The gate starts in StateLoading until Init has read
// the persisted session.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Backend performs the remote login. The HTTP API client satisfies this in
// a real client; tests plug in a fake.
type Backend interface {
	Login(ctx context.Context, telegramID string, profile model.UserProfile) (*model.User, error)
}

// Gate tracks who is signed in. It is an explicit, injectable session
// context rather than ambient global state, with a defined lifecycle:
// Init reads persisted storage, Logout clears it. Callers invoke it
// sequentially from a single thread of control.
type Gate struct {
	store   Store
	backend Backend
	state   State
	user    *model.User
}

func NewGate(store Store, backend Backend) *Gate {
	return &Gate{store: store, backend: backend, state: StateLoading}
}

// Init loads the persisted session. A missing or unreadable session is not
// fatal: it just means nobody is signed in.
func (g *Gate) Init() {
	user, err := g.store.Load()
	if err != nil {
		slog.Warn("session load failed, treating as signed out", "error", err)
		g.state = StateUnauthenticated
		return
	}
	if user == nil {
		g.state = StateUnauthenticated
		return
	}
	g.user = user
	g.state = StateAuthenticated
}

// Login authenticates against the backend and persists the returned user.
// On failure the gate stays unauthenticated and the error is surfaced.
func (g *Gate) Login(ctx context.Context, telegramID string, profile model.UserProfile) (*model.User, error) {
	user, err := g.backend.Login(ctx, telegramID, profile)
	if err != nil {
		g.state = StateUnauthenticated
		return nil, err
	}

	if err := g.store.Save(user); err != nil {
		// The remote login succeeded; losing the local copy only costs a
		// re-login next run.
		slog.Warn("session persist failed", "error", err)
	}
	g.user = user
	g.state = StateAuthenticated
	return user, nil
}

// Logout clears the persisted session unconditionally.
func (g *Gate) Logout() {
	if err := g.store.Clear(); err != nil {
		slog.Warn("session clear failed", "error", err)
	}
	g.user = nil
	g.state = StateUnauthenticated
}

func (g *Gate) State() State {
	return g.state
}

// CurrentUser returns the signed-in user, or nil.
func (g *Gate) CurrentUser() *model.User {
	return g.user
}

func (g *Gate) IsAuthenticated() bool {
	return g.state == StateAuthenticated
}
