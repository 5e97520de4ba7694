package auth

import (
	"context"
	"log/slog"
)

// GuardState is the gate's settled (or pending) position.
type GuardState int

const (
	// GuardValidating means the stored credential is being checked.
	GuardValidating GuardState = iota
	// GuardAnonymous means no valid session exists; the caller must send
	// the user to sign-in.
	GuardAnonymous
	// GuardAuthenticated means a valid session exists.
	GuardAuthenticated
)

func (s GuardState) String() string {
	switch s {
	case GuardValidating:
		return "validating"
	case GuardAnonymous:
		return "anonymous"
	case GuardAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Guard gates access to authenticated commands. Each Activate is a
// one-shot check; there is no polling.
type Guard struct {
	api     API
	machine *Machine
	log     *slog.Logger
	state   GuardState
}

// NewGuard creates a guard over the machine. logger may be nil.
func NewGuard(api API, machine *Machine, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		api:     api,
		machine: machine,
		log:     logger,
	}
}

// State returns the current gate position.
func (g *Guard) State() GuardState {
	return g.state
}

// Activate settles the gate. A user already held by the machine passes
// immediately without a network call: navigation speed wins over
// freshness, staleness is accepted until the next explicit refresh.
// Otherwise the stored credential is validated against the server; the
// failure reason is logged here, never shown to the user.
func (g *Guard) Activate(ctx context.Context) GuardState {
	if g.machine.CurrentUser() != nil {
		g.state = GuardAuthenticated
		return g.state
	}

	g.state = GuardValidating

	user, err := g.api.ValidateUserToken(ctx, g.machine.Token())
	if err != nil {
		g.log.Debug("session validation failed", "error", err)
		g.state = GuardAnonymous
		return g.state
	}

	g.machine.SetUser(ctx, user)
	g.state = GuardAuthenticated

	return g.state
}
