package models

import "time"

// ConnectionState is the current snapshot of host connectivity.
// OfflineSince is set only while an outage is open.
type ConnectionState struct {
	ID           int        `json:"id"`
	Online       bool       `json:"online"`
	OfflineSince *time.Time `json:"offline_since,omitempty"`
	LastChangeAt time.Time  `json:"last_change_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
