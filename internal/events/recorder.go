package events

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/themestore/themestore/internal/models"
)

// LogRecorder writes events to a zerolog logger. Session lifecycle events
// log at info, everything else at debug.
type LogRecorder struct {
	logger zerolog.Logger
}

// NewLogRecorder creates a recorder that writes to logger.
func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

// Record implements Recorder.
func (r *LogRecorder) Record(_ context.Context, event *models.Event) error {
	entry := r.logger.Debug()
	switch event.Type {
	case models.EventTypeSessionStarted, models.EventTypeSessionEnded, models.EventTypeCheckoutRequested:
		entry = r.logger.Info()
	}

	entry.
		Str("event_id", event.ID).
		Str("event", string(event.Type)).
		Str("session_id", event.SessionID).
		Str("entity_type", string(event.EntityType)).
		Str("entity_id", event.EntityID).
		RawJSON("payload", event.Payload).
		Time("at", event.Timestamp).
		Msg("storefront event")
	return nil
}
