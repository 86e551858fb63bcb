package server

import (
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	gossh "golang.org/x/crypto/ssh"

	"github.com/themestore/themestore/internal/events"
	"github.com/themestore/themestore/internal/models"
	"github.com/themestore/themestore/internal/storefront"
)

type contextKey struct{ name string }

var (
	sessionIDKey = &contextKey{"session-id"}
	stateKey     = &contextKey{"storefront-state"}
)

// SessionID returns the id assigned to s by the session log middleware.
func SessionID(s ssh.Session) string {
	id, _ := s.Context().Value(sessionIDKey).(string)
	return id
}

func sessionState(s ssh.Session) *storefront.State {
	state, _ := s.Context().Value(stateKey).(*storefront.State)
	return state
}

// sessionGate caps concurrently open storefront sessions.
type sessionGate struct {
	slots chan struct{}
}

func newSessionGate(limit int) *sessionGate {
	if limit <= 0 {
		limit = 1
	}
	return &sessionGate{slots: make(chan struct{}, limit)}
}

func (g *sessionGate) tryAcquire() bool {
	select {
	case g.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (g *sessionGate) release() { <-g.slots }

// active returns the number of sessions holding a slot.
func (g *sessionGate) active() int { return len(g.slots) }

// Middleware turns sessions away once the cap is reached.
func (g *sessionGate) Middleware(logger zerolog.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			if !g.tryAcquire() {
				logger.Warn().
					Str("remote_ip", remoteIP(s)).
					Int("max_sessions", cap(g.slots)).
					Msg("session rejected, storefront full")
				wish.Fatalln(s, "the storefront is full, try again later")
				return
			}
			defer g.release()
			next(s)
		}
	}
}

// sessionLogMiddleware assigns a session id and records the session start
// and end, including the cart the shopper walked away with.
func sessionLogMiddleware(rec events.Recorder, logger zerolog.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			sessionID := uuid.NewString()
			s.Context().SetValue(sessionIDKey, sessionID)

			ip := remoteIP(s)
			log := logger.With().
				Str("session_id", sessionID).
				Str("user", s.User()).
				Str("remote_ip", ip).
				Logger()

			started := time.Now()
			payload := models.SessionStartedPayload{
				User:        s.User(),
				RemoteAddr:  ip,
				Fingerprint: fingerprint(s.PublicKey()),
			}
			if err := events.LogSessionStarted(s.Context(), rec, sessionID, payload); err != nil {
				log.Warn().Err(err).Msg("failed to record session start")
			}

			next(s)

			if err := events.LogSessionEnded(s.Context(), rec, sessionID, time.Since(started), sessionState(s)); err != nil {
				log.Warn().Err(err).Msg("failed to record session end")
			}
		}
	}
}

func fingerprint(key ssh.PublicKey) string {
	if key == nil {
		return ""
	}
	return gossh.FingerprintSHA256(key)
}
