// Package events provides helper functions for logging storefront events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/themestore/themestore/internal/models"
	"github.com/themestore/themestore/internal/storefront"
)

// Recorder is the minimal interface needed to write events.
type Recorder interface {
	Record(ctx context.Context, event *models.Event) error
}

// LogSessionStarted records the start of a shopper session.
func LogSessionStarted(ctx context.Context, rec Recorder, sessionID string, payload models.SessionStartedPayload) error {
	return record(ctx, rec, models.EventTypeSessionStarted, models.EntityTypeSession, sessionID, sessionID, payload)
}

// LogSessionEnded records the end of a shopper session. The cart is
// discarded with the session; its final size is kept for the log only.
func LogSessionEnded(ctx context.Context, rec Recorder, sessionID string, duration time.Duration, state *storefront.State) error {
	payload := models.SessionEndedPayload{Duration: duration.Round(time.Millisecond).String()}
	if state != nil {
		payload.CartCount = state.CartCount()
		payload.CartTotal = state.CartTotal()
	}
	return record(ctx, rec, models.EventTypeSessionEnded, models.EntityTypeSession, sessionID, sessionID, payload)
}

// LogChange records an applied storefront transition.
func LogChange(ctx context.Context, rec Recorder, sessionID string, change storefront.Change) error {
	switch change.Kind {
	case storefront.ChangeCategory:
		return record(ctx, rec, models.EventTypeCategoryChanged, models.EntityTypeSession, sessionID, sessionID,
			models.FilterChangedPayload{Category: change.Category, Query: change.Query})
	case storefront.ChangeSearch:
		return record(ctx, rec, models.EventTypeSearchChanged, models.EntityTypeSession, sessionID, sessionID,
			models.FilterChangedPayload{Category: change.Category, Query: change.Query})
	case storefront.ChangeCartAdd:
		return record(ctx, rec, models.EventTypeCartItemAdded, models.EntityTypeTheme, strconv.Itoa(change.ThemeID), sessionID,
			models.CartChangedPayload{ThemeID: change.ThemeID, CartCount: change.CartCount, CartTotal: change.CartTotal})
	case storefront.ChangeCartRemove:
		return record(ctx, rec, models.EventTypeCartItemRemoved, models.EntityTypeTheme, strconv.Itoa(change.ThemeID), sessionID,
			models.CartChangedPayload{ThemeID: change.ThemeID, CartCount: change.CartCount, CartTotal: change.CartTotal})
	case storefront.ChangeCheckout:
		return record(ctx, rec, models.EventTypeCheckoutRequested, models.EntityTypeSession, sessionID, sessionID,
			models.CheckoutRequestedPayload{CartCount: change.CartCount, CartTotal: change.CartTotal})
	default:
		return fmt.Errorf("unknown storefront change %q", change.Kind)
	}
}

// Observer adapts a Recorder to storefront.Observer. Recording failures are
// logged and never reach the storefront.
func Observer(ctx context.Context, rec Recorder, sessionID string, logger zerolog.Logger) storefront.Observer {
	return storefront.ObserverFunc(func(change storefront.Change) {
		if err := LogChange(ctx, rec, sessionID, change); err != nil {
			logger.Warn().Err(err).Str("session_id", sessionID).Str("change", string(change.Kind)).Msg("failed to record storefront event")
		}
	})
}

func record(ctx context.Context, rec Recorder, eventType models.EventType, entityType models.EntityType, entityID, sessionID string, payload any) error {
	if rec == nil {
		return fmt.Errorf("event recorder is required")
	}
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	event := &models.Event{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Type:       eventType,
		EntityType: entityType,
		EntityID:   entityID,
		SessionID:  sessionID,
		Payload:    data,
	}
	if err := event.Validate(); err != nil {
		return err
	}

	return rec.Record(ctx, event)
}
