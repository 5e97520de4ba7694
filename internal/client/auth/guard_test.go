package auth

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulikov/stockpile/internal/models"
)

func TestGuard_FastPath(t *testing.T) {
	ctx := context.Background()
	mock := &mockAPI{}
	machine, _, _ := newTestMachine(t, mock)
	machine.SetUser(ctx, testUser())

	guard := NewGuard(mock, machine, slog.Default())

	state := guard.Activate(ctx)

	// Cached user settles the gate without touching the network
	assert.Equal(t, GuardAuthenticated, state)
	assert.Equal(t, GuardAuthenticated, guard.State())
	assert.Equal(t, 0, mock.validateCalls)
}

func TestGuard_SlowPath_Success(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	mock := &mockAPI{}
	machine, sessions, _ := newTestMachine(t, mock)
	sessions.SetToken(ctx, "stored-token")
	machine.Restore(ctx)
	require.Nil(t, machine.CurrentUser())

	guard := NewGuard(mock, machine, slog.Default())

	// Observe the pending state from inside the validation call
	mock.validateFn = func(token string) (*models.User, error) {
		assert.Equal(t, GuardValidating, guard.State())
		return user, nil
	}

	state := guard.Activate(ctx)

	assert.Equal(t, GuardAuthenticated, state)
	assert.Equal(t, user, machine.CurrentUser())
	assert.Equal(t, user, sessions.User(ctx))

	// The stored credential was presented explicitly
	require.Len(t, mock.validateTokens, 1)
	assert.Equal(t, "stored-token", mock.validateTokens[0])
}

func TestGuard_SlowPath_Failure(t *testing.T) {
	ctx := context.Background()
	mock := &mockAPI{validateErr: assert.AnError}
	machine, _, _ := newTestMachine(t, mock)

	guard := NewGuard(mock, machine, slog.Default())

	state := guard.Activate(ctx)

	assert.Equal(t, GuardAnonymous, state)
	assert.Equal(t, GuardAnonymous, guard.State())
	assert.Nil(t, machine.CurrentUser())
	assert.Equal(t, 1, mock.validateCalls)
}

func TestGuard_ReactivateAfterLogin(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	mock := &mockAPI{signInUser: user, signInToken: "tok", validateErr: assert.AnError}
	machine, _, _ := newTestMachine(t, mock)

	guard := NewGuard(mock, machine, slog.Default())
	assert.Equal(t, GuardAnonymous, guard.Activate(ctx))

	_, err := machine.Login(ctx, testSignIn())
	require.NoError(t, err)

	// Next activation takes the fast path
	assert.Equal(t, GuardAuthenticated, guard.Activate(ctx))
	assert.Equal(t, 1, mock.validateCalls)
}

func TestGuardState_String(t *testing.T) {
	assert.Equal(t, "validating", GuardValidating.String())
	assert.Equal(t, "anonymous", GuardAnonymous.String())
	assert.Equal(t, "authenticated", GuardAuthenticated.String())
	assert.Equal(t, "unknown", GuardState(42).String())
}
