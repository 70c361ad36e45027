package google

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottler_SpacesCalls(t *testing.T) {
	interval := 50 * time.Millisecond
	th := NewThrottler(interval)
	ctx := context.Background()

	// First call never blocks
	start := time.Now()
	require.NoError(t, th.Wait(ctx))
	assert.Less(t, time.Since(start), interval)

	// Second call is spaced by at least the interval
	require.NoError(t, th.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), interval)
}

func TestThrottler_ZeroIntervalNeverBlocks(t *testing.T) {
	th := NewThrottler(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, th.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestThrottler_RespectsContextCancellation(t *testing.T) {
	th := NewThrottler(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, th.Wait(ctx))
	cancel()
	assert.Error(t, th.Wait(ctx))
}

func TestRateLimiter_BackoffBlocksAllow(t *testing.T) {
	r := NewRateLimiter(ServiceSheetsWrite)
	assert.True(t, r.Allow())

	r.RecordRateLimitError(30)
	assert.False(t, r.Allow())
}
