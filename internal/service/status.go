package service

import (
	"context"
	"time"

	"connection_monitor/internal/models"
	"connection_monitor/internal/repository"
)

type StatusService struct {
	stateRepo repository.StateRepo
}

func NewStatusService(stateRepo repository.StateRepo) *StatusService {
	return &StatusService{stateRepo: stateRepo}
}

// GetState returns the latest persisted connection state.
// If no state is persisted yet, returns a baseline online snapshot:
// the loop starts in the online state and only transitions get recorded.
func (s *StatusService) GetState(ctx context.Context) (models.ConnectionState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.ConnectionState{}, err
	}
	if state.ID == 0 {
		return s.baselineState(), nil
	}

	state.UpdatedAt = toUTC(state.UpdatedAt)
	state.LastChangeAt = toUTC(state.LastChangeAt)
	if state.OfflineSince != nil {
		t := state.OfflineSince.UTC()
		state.OfflineSince = &t
	}
	return state, nil
}

// baselineState is the snapshot reported before the monitor has
// persisted anything.
func (s *StatusService) baselineState() models.ConnectionState {
	return models.ConnectionState{
		ID:        1, // DB schema enforces single-row state with id=1
		Online:    true,
		UpdatedAt: time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
