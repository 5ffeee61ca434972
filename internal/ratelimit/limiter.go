// Package ratelimit implements an in-memory fixed-window request limiter.
// It is advisory abuse mitigation: counters live in process memory and reset
// on restart.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Result reports the outcome of a single limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts requests per identifier within a fixed window.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	max     int
	window  time.Duration
}

// New constructs a Limiter allowing max requests per window.
func New(max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
	}
}

// Check records one request for identifier and reports whether it is within
// budget at the given instant.
func (l *Limiter) Check(identifier string, now time.Time) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[identifier]
	if !ok || now.After(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(l.window)}
		l.entries[identifier] = e
		return Result{Allowed: true, Limit: l.max, Remaining: l.max - 1, ResetAt: e.resetAt}
	}

	if e.count < l.max {
		e.count++
		return Result{Allowed: true, Limit: l.max, Remaining: l.max - e.count, ResetAt: e.resetAt}
	}

	return Result{Allowed: false, Limit: l.max, Remaining: 0, ResetAt: e.resetAt}
}

// Sweep removes expired entries.
func (l *Limiter) Sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, id)
		}
	}
}

// Run sweeps expired entries periodically until ctx is cancelled.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Sweep(now)
		}
	}
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
