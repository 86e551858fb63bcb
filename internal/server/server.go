// Package server hosts the storefront over SSH, one Bubble Tea program and
// one storefront session per connection.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/rs/zerolog"
	gossh "golang.org/x/crypto/ssh"

	"github.com/themestore/themestore/internal/config"
	"github.com/themestore/themestore/internal/events"
	"github.com/themestore/themestore/internal/tui"
	"github.com/themestore/themestore/internal/tui/styles"
)

const (
	shutdownTimeout = 30 * time.Second
	pruneInterval   = time.Minute
)

// Option configures a Server.
type Option func(*Server)

// WithRecorder replaces the event recorder. The default logs events.
func WithRecorder(rec events.Recorder) Option {
	return func(s *Server) {
		s.recorder = rec
	}
}

// descriptor names a middleware for startup logging and tests.
type descriptor struct {
	name       string
	middleware wish.Middleware
}

// Server is the SSH storefront host.
type Server struct {
	cfg      config.ServerConfig
	tuiCfg   config.TUIConfig
	logger   zerolog.Logger
	recorder events.Recorder
	limiter  *RateLimiter
	gate     *sessionGate
	chain    []descriptor
	ssh      *ssh.Server
}

// New builds the server and its middleware chain. The host key is created
// at cfg.Server.HostKeyPath when it does not exist yet.
func New(cfg *config.Config, logger zerolog.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if _, err := styles.Lookup(cfg.TUI.Theme); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg.Server,
		tuiCfg: cfg.TUI,
		logger: logger,
		limiter: NewRateLimiter(RateLimitConfig{
			PerMinute: cfg.Server.RateLimitPerMinute,
			Burst:     cfg.Server.RateLimitBurst,
		}),
		gate: newSessionGate(cfg.Server.MaxSessions),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.recorder == nil {
		s.recorder = events.NewLogRecorder(logger)
	}

	// Outer first.
	s.chain = []descriptor{
		{name: "rate-limit", middleware: s.limiter.Middleware(logger)},
		{name: "session-cap", middleware: s.gate.Middleware(logger)},
		{name: "session-log", middleware: sessionLogMiddleware(s.recorder, logger)},
		{name: "active-term", middleware: activeterm.Middleware()},
		{name: "bubbletea", middleware: bm.Middleware(s.teaHandler)},
	}

	// wish runs the last middleware it is given first.
	middleware := make([]wish.Middleware, 0, len(s.chain))
	for i := len(s.chain) - 1; i >= 0; i-- {
		middleware = append(middleware, s.chain[i].middleware)
	}

	srv, err := wish.NewServer(
		wish.WithAddress(cfg.Server.Address()),
		wish.WithHostKeyPath(cfg.Server.HostKeyPath),
		wish.WithIdleTimeout(cfg.Server.IdleTimeout),
		wish.WithMaxTimeout(cfg.Server.MaxTimeout),
		wish.WithPublicKeyAuth(func(ssh.Context, ssh.PublicKey) bool { return true }),
		wish.WithKeyboardInteractiveAuth(func(ssh.Context, gossh.KeyboardInteractiveChallenge) bool { return true }),
		wish.WithMiddleware(middleware...),
	)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}
	s.ssh = srv
	return s, nil
}

// Address returns the listen address.
func (s *Server) Address() string {
	return s.ssh.Addr
}

// MiddlewareNames lists the middleware chain, outermost first.
func (s *Server) MiddlewareNames() []string {
	names := make([]string, 0, len(s.chain))
	for _, d := range s.chain {
		names = append(names, d.name)
	}
	return names
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("address", s.Address()).
			Strs("middleware", s.MiddlewareNames()).
			Str("host_key_path", s.cfg.HostKeyPath).
			Int("max_sessions", s.cfg.MaxSessions).
			Msg("storefront listening")
		errCh <- s.ssh.ListenAndServe()
	}()

	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case err := <-errCh:
			if errors.Is(err, ssh.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("ssh server: %w", err)
		case <-ticker.C:
			if removed := s.limiter.Prune(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("pruned idle rate limit buckets")
			}
		case <-ctx.Done():
			return s.shutdown()
		}
	}
}

func (s *Server) shutdown() error {
	stats := s.limiter.Stats()
	s.logger.Info().
		Int("active_sessions", s.gate.active()).
		Int64("rate_limited", stats.DeniedRequests).
		Msg("shutting down storefront")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.ssh.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("shutdown ssh server: %w", err)
	}
	return nil
}

// teaHandler starts a fresh storefront session for s.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	sessionID := SessionID(sess)
	logger := s.logger.With().Str("session_id", sessionID).Logger()

	m, err := tui.New(tui.Config{
		Theme:    s.tuiCfg.Theme,
		Renderer: bm.MakeRenderer(sess),
		Observer: events.Observer(sess.Context(), s.recorder, sessionID, logger),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to build storefront")
		return nil, nil
	}
	sess.Context().SetValue(stateKey, m.State())

	var opts []tea.ProgramOption
	if s.tuiCfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return m, opts
}
