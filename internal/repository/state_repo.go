package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"connection_monitor/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

// Ensure implementation of StateRepo interface at compile time.
var _ StateRepo = (*StateSQLite)(nil)

const (
	connectionStateRowID = 1

	insertOrUpdateStateSQL = `
		INSERT INTO connection_state (id, online, offline_since, last_change_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			online=excluded.online,
			offline_since=excluded.offline_since,
			last_change_at=excluded.last_change_at,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, online, offline_since, last_change_at, updated_at
		FROM connection_state WHERE id=?
	`
)

// Save upserts the single state row. The row id is forced to 1.
func (r *StateSQLite) Save(ctx context.Context, s models.ConnectionState) error {
	var offlineSince any
	if s.OfflineSince != nil {
		offlineSince = s.OfflineSince.UTC()
	}
	var lastChange any
	if !s.LastChangeAt.IsZero() {
		lastChange = s.LastChangeAt.UTC()
	}

	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, insertOrUpdateStateSQL,
		connectionStateRowID,
		s.Online,
		offlineSince,
		lastChange,
		updatedAt.UTC(),
	)
	return err
}

// Load returns the persisted state. A zero-value state (ID=0) means no row yet.
func (r *StateSQLite) Load(ctx context.Context) (models.ConnectionState, error) {
	var (
		s            models.ConnectionState
		offlineSince sql.NullTime
		lastChange   sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, selectStateSQL, connectionStateRowID).
		Scan(&s.ID, &s.Online, &offlineSince, &lastChange, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ConnectionState{}, nil
		}
		return models.ConnectionState{}, err
	}

	if offlineSince.Valid {
		t := offlineSince.Time.UTC()
		s.OfflineSince = &t
	}
	if lastChange.Valid {
		s.LastChangeAt = lastChange.Time.UTC()
	}
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
