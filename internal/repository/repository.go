package repository

import (
	"context"
	"database/sql"
	"time"

	"connection_monitor/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// StateRepo persists the single-row connection state snapshot.
type StateRepo interface {
	Save(ctx context.Context, s models.ConnectionState) error
	Load(ctx context.Context) (models.ConnectionState, error)
}

// EventRepo is the append-only structured mirror of the text journal.
type EventRepo interface {
	Append(ctx context.Context, e models.ConnectionEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ConnectionEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
