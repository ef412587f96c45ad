package streaks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/metrics"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"
)

type stateStore interface {
	Get(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}

// Tracker applies the streak rules on top of a persisted State. All
// mutations are serialized through its mutex, the store never sees
// concurrent writes.
type Tracker struct {
	store   stateStore
	metrics *metrics.Manager
	mutex   sync.Mutex
}

func NewTracker(store stateStore, metrics *metrics.Manager) *Tracker {
	return &Tracker{
		store:   store,
		metrics: metrics,
	}
}

// RecordActivity marks the given day as logged for a stream. It is
// idempotent per calendar day.
func (t *Tracker) RecordActivity(ctx context.Context, stream Stream, day time.Time) (state *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.tracker.recordActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !stream.IsValid() {
		return nil, fmt.Errorf("invalid stream: %s", stream)
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	state, err = t.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get streak state: %w", err)
	}

	today := pkg.DayOf(day)
	ss := state.streamState(stream)

	if ss.LastLoggedDay != nil && pkg.DayOf(*ss.LastLoggedDay).Equal(today) {
		return state, nil
	}

	switch {
	case ss.LastLoggedDay == nil:
		ss.CurrentStreak = 1
		ss.StreakStartDay = &today
	default:
		gap := pkg.DaysBetween(*ss.LastLoggedDay, today)
		switch {
		case gap == 1:
			ss.CurrentStreak++
		case gap == 2 && state.GraceDaysRemaining > 0:
			// the single missed day is forgiven
			state.GraceDaysRemaining--
			state.GraceActive = true
			ss.CurrentStreak++
		default:
			ss.CurrentStreak = 1
			ss.StreakStartDay = &today
			state.GraceDaysRemaining = 1
			state.GraceActive = false
			t.metrics.CounterStreakResets.Inc()
		}
	}

	ss.LastLoggedDay = &today
	if ss.CurrentStreak > ss.LongestStreak {
		ss.LongestStreak = ss.CurrentStreak
	}
	state.recomputeCombined()

	if err := t.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save streak state: %w", err)
	}

	t.metrics.CounterStreakUpdates.WithLabelValues(string(stream)).Inc()

	return state, nil
}

// ReconcileOnOpen breaks streaks whose gap since the last logged day
// can no longer be recovered, even with the grace day. It uses the
// same gap thresholds as RecordActivity so that the two checks never
// disagree about whether a streak is still alive.
func (t *Tracker) ReconcileOnOpen(ctx context.Context, now time.Time) (state *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.tracker.reconcileOnOpen")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mutex.Lock()
	defer t.mutex.Unlock()

	state, err = t.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get streak state: %w", err)
	}

	today := pkg.DayOf(now)
	changed := false
	for _, stream := range []Stream{StreamWorkout, StreamNutrition} {
		ss := state.streamState(stream)
		if ss.LastLoggedDay == nil || ss.CurrentStreak == 0 {
			continue
		}
		gap := pkg.DaysBetween(*ss.LastLoggedDay, today)
		if gap > 2 || (gap == 2 && state.GraceDaysRemaining == 0) {
			ss.CurrentStreak = 0
			ss.StreakStartDay = nil
			changed = true
			t.metrics.CounterStreakResets.Inc()
		}
	}

	if !changed {
		return state, nil
	}

	state.recomputeCombined()

	if err := t.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save streak state: %w", err)
	}

	return state, nil
}

// Current returns the streak state without mutating it.
func (t *Tracker) Current(ctx context.Context) (*State, error) {
	return t.store.Get(ctx)
}
