package suggestions

import (
	"context"
	"math/rand"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/diary"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/workouts"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"
)

const (
	// defaultWindowDays is how many daily summaries the rules look at.
	defaultWindowDays = 7
	// historyDays covers the longest lookback any rule needs.
	historyDays = 30
	setsDays    = 14
)

// Window is the data snapshot shared by every rule in one engine
// invocation. It is fetched once so all rules see consistent history.
type Window struct {
	Now time.Time

	// Summaries are the window's daily summaries, most recent first.
	Summaries []diary.DailySummary
	// Workouts are the completed workouts of the trailing 30 days,
	// ascending by completion time, volumes populated.
	Workouts []workouts.Workout
	// Sets are all sets of the trailing 14 days, ascending,
	// joined with their exercise.
	Sets []workouts.Set

	rng *rand.Rand
}

// Today returns the summary for the window's current day, or nil when
// nothing is logged yet.
func (w *Window) Today() *diary.DailySummary {
	today := pkg.DayOf(w.Now)
	for i := range w.Summaries {
		if pkg.DayOf(w.Summaries[i].Date).Equal(today) {
			return &w.Summaries[i]
		}
	}
	return nil
}

// WorkoutsCompletedSince returns the completed workouts whose
// completion time is within the given duration before now.
func (w *Window) WorkoutsCompletedSince(d time.Duration) []workouts.Workout {
	cutoff := w.Now.Add(-d)
	var out []workouts.Workout
	for i := range w.Workouts {
		if w.Workouts[i].CompletedAt != nil && w.Workouts[i].CompletedAt.After(cutoff) {
			out = append(out, w.Workouts[i])
		}
	}
	return out
}

// MuscleGroupVolume sums weight x reps over the given sets for one
// muscle group.
func MuscleGroupVolume(sets []workouts.Set, muscleGroup string) float64 {
	var volume float64
	for i := range sets {
		if sets[i].MuscleGroup == muscleGroup {
			volume += sets[i].Volume()
		}
	}
	return volume
}

// SetsForWorkout filters the window's sets down to one workout.
func (w *Window) SetsForWorkout(workoutID int) []workouts.Set {
	var out []workouts.Set
	for i := range w.Sets {
		if w.Sets[i].WorkoutID == workoutID {
			out = append(out, w.Sets[i])
		}
	}
	return out
}

type diaryReader interface {
	ListRange(ctx context.Context, from, to time.Time, order diary.Order) ([]diary.DailySummary, error)
}

type workoutsReader interface {
	ListCompletedWorkouts(ctx context.Context, from, to time.Time) ([]workouts.Workout, error)
	ListSetsInRange(ctx context.Context, from, to time.Time) ([]workouts.Set, error)
}
