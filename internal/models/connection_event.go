package models

import "time"

// Event types recorded by the monitor.
const (
	EventDrop    = "DROP"
	EventRestore = "RESTORE"
	EventNewDay  = "NEW_DAY"
)

// ConnectionEvent is a single structured log entry.
type ConnectionEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // DROP | RESTORE | NEW_DAY
	Description string    `json:"description"` // the exact line written to the journal
	Metadata    any       `json:"metadata,omitempty"`
}
