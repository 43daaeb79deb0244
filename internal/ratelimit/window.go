package ratelimit

import (
	"sync"
	"time"
)

// WindowConfig holds fixed-window rate limiting configuration
type WindowConfig struct {
	Limit         int           // Accepted requests per window per key
	Window        time.Duration // Window length
	SweepInterval time.Duration // How often expired windows are dropped; 0 means Window
}

// DefaultWindowConfig returns 5 requests per 15 minutes
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Limit:  5,
		Window: 15 * time.Minute,
	}
}

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// WindowLimiter counts requests per key in fixed windows that start at a key's first request.
// All counter updates happen under one mutex, so concurrent requests from the same key
// are never under- or over-counted.
type WindowLimiter struct {
	config WindowConfig
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window

	stop     chan struct{}
	stopOnce sync.Once
}

type window struct {
	count   int
	resetAt time.Time
}

// Option customizes a WindowLimiter
type Option func(*WindowLimiter)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(l *WindowLimiter) {
		l.now = now
	}
}

// NewWindowLimiter creates a limiter and starts its background sweeper. Call Stop to end it.
func NewWindowLimiter(config WindowConfig, opts ...Option) *WindowLimiter {
	if config.Limit <= 0 || config.Window <= 0 {
		def := DefaultWindowConfig()
		if config.Limit <= 0 {
			config.Limit = def.Limit
		}
		if config.Window <= 0 {
			config.Window = def.Window
		}
	}
	if config.SweepInterval <= 0 {
		config.SweepInterval = config.Window
	}

	l := &WindowLimiter{
		config:  config,
		now:     time.Now,
		windows: make(map[string]*window),
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	go l.sweep()

	return l
}

// Allow records a request for key and reports whether it fits in the current window.
// Rejected requests are not counted.
func (l *WindowLimiter) Allow(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, exists := l.windows[key]
	if !exists || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.config.Window)}
		l.windows[key] = w
	}

	d := Decision{
		Limit:   l.config.Limit,
		ResetAt: w.resetAt,
	}

	if w.count >= l.config.Limit {
		d.RetryAfter = w.resetAt.Sub(now)
		return d
	}

	w.count++
	d.Allowed = true
	d.Remaining = l.config.Limit - w.count
	return d
}

// Limit returns the configured requests per window
func (l *WindowLimiter) Limit() int {
	return l.config.Limit
}

// Len returns the number of keys currently tracked
func (l *WindowLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// Stop ends the background sweeper. It is safe to call more than once.
func (l *WindowLimiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// sweep periodically removes expired windows
func (l *WindowLimiter) sweep() {
	ticker := time.NewTicker(l.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.removeExpired()
		}
	}
}

func (l *WindowLimiter) removeExpired() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
