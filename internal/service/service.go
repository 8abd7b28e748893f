package service

import (
	"context"
	"time"

	"connection_monitor/internal/logger"
	"connection_monitor/internal/models"
	"connection_monitor/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Monitor runs the background sampling loop. Stop via context cancellation
// in main() for graceful shutdown. A non-nil error means the journal could
// not be written and the process should terminate.
type Monitor interface {
	Run(ctx context.Context, tick time.Duration) error
}

// Monitoring exposes the read-only connection state snapshot.
type Monitoring interface {
	GetState(ctx context.Context) (models.ConnectionState, error)
}

// EventLog exposes the structured event mirror with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ConnectionEvent, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Monitor
	Monitoring
	EventLog
	Authorization
}

// Options carries the non-repository dependencies of the service layer.
type Options struct {
	Prober     Prober
	Journal    Journal
	Log        *logger.Logger
	SigningKey string
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Monitor:       NewMonitorService(opts.Prober, opts.Journal, repos.StateRepo, repos.EventRepo, opts.Log),
		Monitoring:    NewStatusService(repos.StateRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey),
	}
}
