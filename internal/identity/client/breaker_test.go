package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/identity/domain"
)

type flakyUpdater struct {
	calls int
	err   error
}

func (f *flakyUpdater) UpdateRole(context.Context, string, domain.Role) error {
	f.calls++
	return f.err
}

func TestBreakingUpdater(t *testing.T) {
	ctx := context.Background()
	next := &flakyUpdater{err: errors.New("unavailable")}
	b := NewBreakingUpdater(next, 2, 30*time.Second)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	require.Error(t, b.UpdateRole(ctx, "user_1", domain.RoleAdmin))
	assert.Equal(t, StateClosed, b.State())
	require.Error(t, b.UpdateRole(ctx, "user_1", domain.RoleAdmin))
	assert.Equal(t, StateOpen, b.State())

	// Open: rejected without reaching the provider
	assert.ErrorIs(t, b.UpdateRole(ctx, "user_1", domain.RoleAdmin), ErrCircuitOpen)
	assert.Equal(t, 2, next.calls)

	// Probe fails and reopens
	now = now.Add(31 * time.Second)
	require.Error(t, b.UpdateRole(ctx, "user_1", domain.RoleAdmin))
	assert.Equal(t, StateOpen, b.State())
	assert.Equal(t, 3, next.calls)

	// Probe succeeds and closes
	now = now.Add(31 * time.Second)
	next.err = nil
	require.NoError(t, b.UpdateRole(ctx, "user_1", domain.RoleAdmin))
	assert.Equal(t, StateClosed, b.State())
}
