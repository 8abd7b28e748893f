package service

import "time"

// LogFilter supports event filtering by time range and type.
type LogFilter struct {
	From time.Time
	To   time.Time
	Type string // DROP | RESTORE | NEW_DAY
}
