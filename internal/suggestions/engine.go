package suggestions

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/diary"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/profile"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/metrics"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"

	"go.uber.org/multierr"
)

//go:generate mockgen -source=window.go -destination=window_mocks_test.go -package=suggestions_test

// Engine evaluates the rule catalogue against a freshly fetched
// window. It holds no state between invocations.
type Engine struct {
	diary      diaryReader
	workouts   workoutsReader
	metrics    *metrics.Manager
	rng        *rand.Rand
	windowDays int
	now        func() time.Time
}

func NewEngine(diaryRepo diaryReader, workoutsRepo workoutsReader, metrics *metrics.Manager, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		diary:      diaryRepo,
		workouts:   workoutsRepo,
		metrics:    metrics,
		rng:        rng,
		windowDays: defaultWindowDays,
		now:        time.Now,
	}
}

// Generate runs every rule over one shared snapshot and returns the
// non-nil results in catalogue order. A failed fetch leaves its slice
// empty so only the rules needing that data stay silent; the combined
// fetch error is returned alongside whatever could be generated.
func (e *Engine) Generate(ctx context.Context, p *profile.Profile) (_ []Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "suggestions.engine.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	window, err := e.loadWindow(ctx)

	var suggestions []Suggestion
	for _, r := range catalogue {
		if s := r.eval(p, window); s != nil {
			suggestions = append(suggestions, *s)
			e.metrics.CounterSuggestionsGenerated.WithLabelValues(string(s.Category)).Inc()
		}
	}

	return suggestions, err
}

func (e *Engine) loadWindow(ctx context.Context) (*Window, error) {
	now := e.now()
	window := &Window{
		Now: now,
		rng: e.rng,
	}

	var errs error

	summaries, err := e.diary.ListRange(
		ctx, now.AddDate(0, 0, -e.windowDays), now, diary.OrderDesc,
	)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list daily summaries: %w", err))
	} else {
		window.Summaries = summaries
	}

	ws, err := e.workouts.ListCompletedWorkouts(ctx, now.AddDate(0, 0, -historyDays), now)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list completed workouts: %w", err))
	} else {
		window.Workouts = ws
	}

	sets, err := e.workouts.ListSetsInRange(ctx, now.AddDate(0, 0, -setsDays), now)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list sets: %w", err))
	} else {
		window.Sets = sets
	}

	return window, errs
}
