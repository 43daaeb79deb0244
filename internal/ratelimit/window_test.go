package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*WindowLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	l := NewWindowLimiter(WindowConfig{Limit: limit, Window: window, SweepInterval: time.Hour}, WithClock(clock.Now))
	t.Cleanup(l.Stop)
	return l, clock
}

func TestAllowRejectsSixthRequestInWindow(t *testing.T) {
	l, _ := newTestLimiter(t, 5, 15*time.Minute)

	for i := 1; i <= 5; i++ {
		d := l.Allow("203.0.113.7")
		require.True(t, d.Allowed, "request %d should be allowed", i)
		assert.Equal(t, 5-i, d.Remaining)
		assert.Equal(t, 5, d.Limit)
	}

	d := l.Allow("203.0.113.7")
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, 15*time.Minute, d.RetryAfter)
}

func TestAllowResetsAfterWindow(t *testing.T) {
	l, clock := newTestLimiter(t, 2, time.Minute)

	require.True(t, l.Allow("a").Allowed)
	clock.Advance(30 * time.Second)
	require.True(t, l.Allow("a").Allowed)

	d := l.Allow("a")
	require.False(t, d.Allowed)
	assert.Equal(t, 30*time.Second, d.RetryAfter)

	// The window started with the first request, not the last
	clock.Advance(30 * time.Second)
	d = l.Allow("a")
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)
}

func TestRejectedRequestsAreNotCounted(t *testing.T) {
	l, clock := newTestLimiter(t, 1, time.Minute)

	require.True(t, l.Allow("a").Allowed)
	for i := 0; i < 10; i++ {
		require.False(t, l.Allow("a").Allowed)
	}

	clock.Advance(time.Minute)
	assert.True(t, l.Allow("a").Allowed)
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute)

	assert.True(t, l.Allow("198.51.100.1").Allowed)
	assert.False(t, l.Allow("198.51.100.1").Allowed)
	assert.True(t, l.Allow("198.51.100.2").Allowed)
	assert.Equal(t, 2, l.Len())
}

func TestConcurrentRequestsAreCountedExactly(t *testing.T) {
	l, _ := newTestLimiter(t, 5, time.Minute)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("same-client").Allowed {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), allowed.Load())
}

func TestRemoveExpired(t *testing.T) {
	l, clock := newTestLimiter(t, 5, time.Minute)

	l.Allow("old")
	clock.Advance(45 * time.Second)
	l.Allow("new")
	clock.Advance(15 * time.Second)

	l.removeExpired()
	assert.Equal(t, 1, l.Len())
}

func TestNewWindowLimiterDefaults(t *testing.T) {
	l := NewWindowLimiter(WindowConfig{})
	defer l.Stop()

	assert.Equal(t, DefaultWindowConfig().Limit, l.Limit())
	assert.Equal(t, 15*time.Minute, l.config.Window)
	assert.Equal(t, l.config.Window, l.config.SweepInterval)
}

func TestStopIsIdempotent(t *testing.T) {
	l := NewWindowLimiter(DefaultWindowConfig())
	assert.NotPanics(t, func() {
		l.Stop()
		l.Stop()
	})
}
