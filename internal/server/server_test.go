package server

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/themestore/themestore/internal/config"
	"github.com/themestore/themestore/internal/models"
	"github.com/themestore/themestore/internal/storefront"
	"github.com/themestore/themestore/internal/tui/styles"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type memoryRecorder struct {
	mu     sync.Mutex
	events []*models.Event
}

func (r *memoryRecorder) Record(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *memoryRecorder) types() []models.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 2424
	cfg.Server.HostKeyPath = filepath.Join(t.TempDir(), "host_ed25519")
	return cfg
}

func TestNewBuildsMiddlewareChain(t *testing.T) {
	srv, err := New(testConfig(t), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:2424", srv.Address())
	assert.Equal(t, []string{"rate-limit", "session-cap", "session-log", "active-term", "bubbletea"}, srv.MiddlewareNames())
	assert.FileExists(t, srv.cfg.HostKeyPath)
}

func TestNewRejectsUnknownTheme(t *testing.T) {
	cfg := testConfig(t)
	cfg.TUI.Theme = "neon"

	_, err := New(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, styles.ErrUnknownTheme)
}

func TestRateLimiterThrottlesPerAddress(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{PerMinute: 60, Burst: 2})
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("203.0.113.10"))
	assert.True(t, rl.Allow("203.0.113.10"))
	assert.False(t, rl.Allow("203.0.113.10"))
	assert.True(t, rl.Allow("203.0.113.11"), "addresses have separate buckets")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("203.0.113.10"), "one token refills per second at 60/min")
	assert.False(t, rl.Allow("203.0.113.10"))

	stats := rl.Stats()
	assert.Equal(t, 2, stats.Addresses)
	assert.Equal(t, int64(6), stats.TotalRequests)
	assert.Equal(t, int64(2), stats.DeniedRequests)
}

func TestRateLimiterPruneDropsRefilledBuckets(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{PerMinute: 60, Burst: 2})
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("203.0.113.10")
	rl.Allow("203.0.113.10")
	assert.Equal(t, 0, rl.Prune())

	now = now.Add(5 * time.Second)
	assert.Equal(t, 1, rl.Prune())
	assert.Equal(t, 0, rl.Stats().Addresses)
}

func TestNewRateLimiterDefaults(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{})
	assert.Equal(t, RateLimitConfig{PerMinute: 30, Burst: 10}, rl.cfg)
}

func TestRateLimitMiddlewareRejectsExhaustedAddress(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{PerMinute: 60, Burst: 1})
	calls := 0
	handler := rl.Middleware(zerolog.Nop())(func(ssh.Session) { calls++ })

	first := newFakeSession("203.0.113.10")
	second := newFakeSession("203.0.113.10")
	handler(first)
	handler(second)

	assert.Equal(t, 1, calls)
	assert.False(t, first.exited)
	assert.True(t, second.exited)
	assert.Equal(t, 1, second.exit)
	assert.Contains(t, second.stderr.String(), "rate limit exceeded")
}

func TestSessionGateCapsConcurrentSessions(t *testing.T) {
	gate := newSessionGate(1)
	release := make(chan struct{})
	entered := make(chan struct{})
	handler := gate.Middleware(zerolog.Nop())(func(ssh.Session) {
		close(entered)
		<-release
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		handler(newFakeSession("203.0.113.10"))
	}()
	<-entered
	assert.Equal(t, 1, gate.active())

	overflow := newFakeSession("203.0.113.11")
	handler(overflow)
	assert.True(t, overflow.exited)
	assert.Contains(t, overflow.stderr.String(), "storefront is full")

	close(release)
	<-done
	assert.Equal(t, 0, gate.active())
	assert.True(t, gate.tryAcquire(), "slot is released when the session ends")
	gate.release()
}

func TestSessionLogMiddlewareRecordsLifecycle(t *testing.T) {
	rec := &memoryRecorder{}
	var seenID string
	handler := sessionLogMiddleware(rec, zerolog.Nop())(func(s ssh.Session) {
		seenID = SessionID(s)
		state := storefront.NewDefault()
		state.ToggleCart(1)
		state.ToggleCart(2)
		s.Context().SetValue(stateKey, state)
	})

	sess := newFakeSession("203.0.113.10")
	handler(sess)

	require.NotEmpty(t, seenID)
	assert.Equal(t, []models.EventType{models.EventTypeSessionStarted, models.EventTypeSessionEnded}, rec.types())
	for _, e := range rec.events {
		assert.Equal(t, seenID, e.SessionID)
	}
	assert.Contains(t, string(rec.events[0].Payload), `"remote_addr":"203.0.113.10"`)
	assert.Contains(t, string(rec.events[1].Payload), `"cart_count":2`)
	assert.Contains(t, string(rec.events[1].Payload), `"cart_total":128`)
}

func TestRemoteIPFallbacks(t *testing.T) {
	sess := newFakeSession("203.0.113.10")
	assert.Equal(t, "203.0.113.10", remoteIP(sess))

	sess.remote = nil
	assert.Equal(t, "unknown", remoteIP(sess))
}

func TestFingerprintWithoutKey(t *testing.T) {
	assert.Empty(t, fingerprint(nil))
}
