package ratelimit_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/ratelimit"
)

func newThrottle(t *testing.T) *ratelimit.LoginThrottle {
	t.Helper()

	mr := miniredis.RunT(t)
	throttle, err := ratelimit.NewLoginThrottle("redis://" + mr.Addr())
	require.NoError(t, err)
	return throttle
}

func TestLoginThrottle_BlocksAfterLimit(t *testing.T) {
	throttle := newThrottle(t)
	ctx := context.Background()

	assert.NoError(t, throttle.Check(ctx, "ana@x.com"))

	for i := 0; i < 10; i++ {
		throttle.RecordFailure(ctx, "ana@x.com")
	}

	err := throttle.Check(ctx, "ana@x.com")
	assert.True(t, httperr.IsBusiness(err, "too_many_attempts"))

	// outra conta não é afetada
	assert.NoError(t, throttle.Check(ctx, "otro@x.com"))
}

func TestLoginThrottle_ResetClearsFailures(t *testing.T) {
	throttle := newThrottle(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		throttle.RecordFailure(ctx, "ana@x.com")
	}
	require.Error(t, throttle.Check(ctx, "ana@x.com"))

	throttle.Reset(ctx, "ana@x.com")
	assert.NoError(t, throttle.Check(ctx, "ana@x.com"))
}

func TestLoginThrottle_NilIsNoOp(t *testing.T) {
	var throttle *ratelimit.LoginThrottle
	ctx := context.Background()

	assert.NoError(t, throttle.Check(ctx, "ana@x.com"))
	throttle.RecordFailure(ctx, "ana@x.com")
	throttle.Reset(ctx, "ana@x.com")
}

func TestNewLoginThrottle_BadURL(t *testing.T) {
	_, err := ratelimit.NewLoginThrottle("not-a-redis-url")
	assert.Error(t, err)
}
