package service

import (
	"context"
	"fmt"
	"time"

	"connection_monitor/internal/logger"
	"connection_monitor/internal/models"
	"connection_monitor/internal/repository"

	"github.com/google/uuid"
)

// DefaultTick is the sampling interval used when the config omits one.
const DefaultTick = 5 * time.Second

// Journal line templates. These are the exact on-disk formats; changing
// them breaks every consumer parsing log.txt.
const (
	droppedMsgFmt  = "Connection dropped at: %s on %s"
	restoredMsgFmt = "Connection restored at: %s on %s. Outage duration: %d seconds"
	newDayMsgFmt   = "%s, %d %s, %d"

	timeLayout = "15:04:05"
	dateLayout = "2006-01-02"
)

// MonitorService samples connectivity on a fixed interval, detects
// online/offline transitions and appends them to the journal.
type MonitorService struct {
	prober    Prober
	journal   Journal
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
	log       *logger.Logger

	now func() time.Time
}

func NewMonitorService(
	prober Prober,
	journal Journal,
	stateRepo repository.StateRepo,
	eventRepo repository.EventRepo,
	log *logger.Logger,
) *MonitorService {
	return &MonitorService{
		prober:    prober,
		journal:   journal,
		stateRepo: stateRepo,
		eventRepo: eventRepo,
		log:       log,
		now:       time.Now,
	}
}

// loopState is the explicit per-iteration state: an open outage (if any)
// and the last calendar date announced to the journal. It is threaded
// through step rather than held in mutable fields.
type loopState struct {
	offlineSince *time.Time
	lastDay      time.Time
}

// Run ticks at the given interval until ctx is canceled. The first
// sample happens immediately, not one tick in. Only a journal write
// failure terminates the loop with an error; cancellation returns nil.
func (m *MonitorService) Run(ctx context.Context, tick time.Duration) error {
	if tick <= 0 {
		tick = DefaultTick
	}

	st := m.resumeState(ctx)

	st, err := m.step(ctx, st, m.now())
	if err != nil {
		return err
	}

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			if st, err = m.step(ctx, st, now); err != nil {
				return err
			}
		}
	}
}

// resumeState seeds the loop from the persisted snapshot so that an
// outage open at the previous shutdown keeps its original drop time.
func (m *MonitorService) resumeState(ctx context.Context) loopState {
	st, err := m.stateRepo.Load(ctx)
	if err != nil {
		if m.log != nil {
			m.log.Warnw("state_load_failed", "err", err)
		}
		return loopState{}
	}
	if st.ID == 0 || st.Online || st.OfflineSince == nil {
		return loopState{}
	}

	since := *st.OfflineSince
	if m.log != nil {
		m.log.Infow("resuming open outage", "dropped_at", since)
	}
	return loopState{offlineSince: &since}
}

// step evaluates one iteration: day boundary first, then the
// connectivity transition. It returns the next loop state.
func (m *MonitorService) step(ctx context.Context, st loopState, now time.Time) (loopState, error) {
	if !sameDay(st.lastDay, now) {
		msg := newDayMessage(now)
		if err := m.journal.Append(msg); err != nil {
			return st, fmt.Errorf("log new day: %w", err)
		}
		m.recordEvent(ctx, models.EventNewDay, msg, now, nil)
		st.lastDay = now
	}

	online, err := m.prober.Online()
	if err != nil && m.log != nil {
		// Enumeration failure counts as offline; console notice only,
		// never a journal entry.
		m.log.Warnw("probe_failed", "err", err)
	}

	switch {
	case !online && st.offlineSince == nil:
		msg := droppedMessage(now)
		if err := m.journal.Append(msg); err != nil {
			return st, fmt.Errorf("log drop: %w", err)
		}
		if m.log != nil {
			m.log.Infow(msg)
		}
		m.recordEvent(ctx, models.EventDrop, msg, now, nil)

		dropped := now
		st.offlineSince = &dropped
		m.saveState(ctx, st, now)

	case online && st.offlineSince != nil:
		outage := int64(now.Sub(*st.offlineSince) / time.Second)
		msg := restoredMessage(now, outage)
		if err := m.journal.Append(msg); err != nil {
			return st, fmt.Errorf("log restore: %w", err)
		}
		if m.log != nil {
			m.log.Infow(msg)
		}
		m.recordEvent(ctx, models.EventRestore, msg, now, map[string]any{
			"dropped_at":     st.offlineSince.UTC(),
			"outage_seconds": outage,
		})

		st.offlineSince = nil
		m.saveState(ctx, st, now)
	}

	return st, nil
}

// recordEvent mirrors a journal line into the structured store.
// Storage failures never stop monitoring.
func (m *MonitorService) recordEvent(ctx context.Context, typ, msg string, now time.Time, meta any) {
	err := m.eventRepo.Append(ctx, models.ConnectionEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now.UTC(),
		Type:        typ,
		Description: msg,
		Metadata:    meta,
	})
	if err != nil && m.log != nil {
		m.log.Warnw("event_append_failed", "type", typ, "err", err)
	}
}

func (m *MonitorService) saveState(ctx context.Context, st loopState, now time.Time) {
	snapshot := models.ConnectionState{
		ID:           1,
		Online:       st.offlineSince == nil,
		OfflineSince: st.offlineSince,
		LastChangeAt: now.UTC(),
		UpdatedAt:    now.UTC(),
	}
	if err := m.stateRepo.Save(ctx, snapshot); err != nil && m.log != nil {
		m.log.Warnw("state_save_failed", "err", err)
	}
}

// droppedMessage formats the outage-start journal line.
func droppedMessage(t time.Time) string {
	return fmt.Sprintf(droppedMsgFmt, t.Format(timeLayout), t.Format(dateLayout))
}

// restoredMessage formats the restoration journal line with the outage
// duration in whole seconds.
func restoredMessage(t time.Time, outageSeconds int64) string {
	return fmt.Sprintf(restoredMsgFmt, t.Format(timeLayout), t.Format(dateLayout), outageSeconds)
}

// newDayMessage formats the day-boundary line, e.g.
// "Sunday, 9 June, 2024".
func newDayMessage(t time.Time) string {
	return fmt.Sprintf(newDayMsgFmt, t.Weekday(), t.Day(), t.Month(), t.Year())
}

// sameDay reports whether a and b fall on the same calendar date.
// A zero time never matches, so the first iteration always announces.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
