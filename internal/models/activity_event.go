package models

import "time"

// ActivityEvent is a single entry of an account's activity history.
type ActivityEvent struct {
	EventID     string    `json:"event_id"`
	AccountID   int       `json:"account_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // REGISTER | LOGIN | UPLOAD | SETTINGS_UPDATE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
