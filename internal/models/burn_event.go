package models

import "time"

// Event types recorded in the burn history.
const (
	EventEdit           = "EDIT"
	EventModeChange     = "MODE_CHANGE"
	EventBurnModeChange = "BURN_MODE_CHANGE"
	EventImport         = "IMPORT"
	EventImportFailed   = "IMPORT_FAILED"
	EventReset          = "RESET"
	EventPlay           = "PLAY"
	EventPause          = "PAUSE"
	EventBurnedOut      = "BURNED_OUT"
)

// BurnEvent is a single log entry.
type BurnEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
