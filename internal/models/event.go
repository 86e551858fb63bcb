// Package models defines the records exchanged between storefront layers.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

const (
	// Session events
	EventTypeSessionStarted EventType = "session.started"
	EventTypeSessionEnded   EventType = "session.ended"

	// Filter events
	EventTypeCategoryChanged EventType = "filter.category_changed"
	EventTypeSearchChanged   EventType = "filter.search_changed"

	// Cart events
	EventTypeCartItemAdded   EventType = "cart.item_added"
	EventTypeCartItemRemoved EventType = "cart.item_removed"

	// Checkout events
	EventTypeCheckoutRequested EventType = "checkout.requested"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeSession EntityType = "session"
	EntityTypeTheme   EntityType = "theme"
)

// Event represents a single storefront session event.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity.
	EntityID string `json:"entity_id"`

	// SessionID groups events of one shopper session.
	SessionID string `json:"session_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(string(e.Type)) == "" {
		validation.AddMessage("type", "event type is required")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		validation.AddMessage("entity_type", "entity_type is required")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		validation.AddMessage("entity_id", "entity_id is required")
	}
	if strings.TrimSpace(e.SessionID) == "" {
		validation.AddMessage("session_id", "session_id is required")
	}
	return validation.Err()
}

// SessionStartedPayload is the payload for session.started events.
type SessionStartedPayload struct {
	User        string `json:"user,omitempty"`
	RemoteAddr  string `json:"remote_addr,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// SessionEndedPayload is the payload for session.ended events.
type SessionEndedPayload struct {
	Duration  string `json:"duration"`
	CartCount int    `json:"cart_count"`
	CartTotal int    `json:"cart_total"`
}

// FilterChangedPayload is the payload for filter.* events.
type FilterChangedPayload struct {
	Category string `json:"category"`
	Query    string `json:"query"`
}

// CartChangedPayload is the payload for cart.* events.
type CartChangedPayload struct {
	ThemeID   int `json:"theme_id"`
	CartCount int `json:"cart_count"`
	CartTotal int `json:"cart_total"`
}

// CheckoutRequestedPayload is the payload for checkout.requested events.
type CheckoutRequestedPayload struct {
	CartCount int `json:"cart_count"`
	CartTotal int `json:"cart_total"`
}
