package server

import (
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/rs/zerolog"
)

// RateLimitConfig defines the per-address connection budget.
type RateLimitConfig struct {
	// PerMinute is the sustainable rate (tokens added per minute).
	PerMinute int

	// Burst is the maximum number of sessions allowed in a burst.
	Burst int
}

// tokenBucket implements the token bucket algorithm for one remote address.
type tokenBucket struct {
	tokens       float64
	lastUpdate   time.Time
	ratePerSec   float64
	maxTokens    float64
	requestCount int64
	deniedCount  int64
}

func newTokenBucket(cfg RateLimitConfig, now time.Time) *tokenBucket {
	return &tokenBucket{
		tokens:     float64(cfg.Burst),
		lastUpdate: now,
		ratePerSec: float64(cfg.PerMinute) / 60.0,
		maxTokens:  float64(cfg.Burst),
	}
}

// allow consumes a token if one is available. Callers hold the limiter lock.
func (tb *tokenBucket) allow(now time.Time) bool {
	tb.requestCount++

	elapsed := now.Sub(tb.lastUpdate).Seconds()
	if elapsed > 0 {
		tb.tokens += elapsed * tb.ratePerSec
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastUpdate = now
	}

	if tb.tokens >= 1.0 {
		tb.tokens--
		return true
	}

	tb.deniedCount++
	return false
}

// full reports whether the bucket has refilled to capacity by now.
func (tb *tokenBucket) full(now time.Time) bool {
	return tb.tokens+now.Sub(tb.lastUpdate).Seconds()*tb.ratePerSec >= tb.maxTokens
}

// RateLimiter keeps one token bucket per remote address.
type RateLimiter struct {
	mu      sync.Mutex
	cfg     RateLimitConfig
	buckets map[string]*tokenBucket
	now     func() time.Time
}

// RateLimitStats summarises limiter activity.
type RateLimitStats struct {
	Addresses      int
	TotalRequests  int64
	DeniedRequests int64
}

// NewRateLimiter creates a limiter. Non-positive values fall back to
// 30 sessions per minute with a burst of 10.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = 30
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}
	return &RateLimiter{
		cfg:     cfg,
		buckets: make(map[string]*tokenBucket),
		now:     time.Now,
	}
}

// Allow reports whether a new session from addr may proceed.
func (rl *RateLimiter) Allow(addr string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	bucket, ok := rl.buckets[addr]
	if !ok {
		bucket = newTokenBucket(rl.cfg, now)
		rl.buckets[addr] = bucket
	}
	return bucket.allow(now)
}

// Prune drops buckets that have refilled completely; they carry no state
// a fresh bucket would not.
func (rl *RateLimiter) Prune() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for addr, bucket := range rl.buckets {
		if bucket.full(now) {
			delete(rl.buckets, addr)
			removed++
		}
	}
	return removed
}

// Stats returns totals across tracked addresses.
func (rl *RateLimiter) Stats() RateLimitStats {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	stats := RateLimitStats{Addresses: len(rl.buckets)}
	for _, bucket := range rl.buckets {
		stats.TotalRequests += bucket.requestCount
		stats.DeniedRequests += bucket.deniedCount
	}
	return stats
}

// Middleware rejects sessions from addresses that exhausted their budget.
func (rl *RateLimiter) Middleware(logger zerolog.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			ip := remoteIP(s)
			if !rl.Allow(ip) {
				logger.Warn().Str("remote_ip", ip).Str("user", s.User()).Msg("session rate limited")
				wish.Fatalln(s, "rate limit exceeded, try again shortly")
				return
			}
			next(s)
		}
	}
}

func remoteIP(s ssh.Session) string {
	remote := s.RemoteAddr()
	if remote == nil {
		return "unknown"
	}

	host, _, err := net.SplitHostPort(remote.String())
	if err != nil {
		return remote.String()
	}
	if host == "" {
		return "unknown"
	}
	return host
}
