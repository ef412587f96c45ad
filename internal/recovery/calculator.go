package recovery

import (
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/profile"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"
)

const (
	sleepWeight   = 0.4
	proteinWeight = 0.35
	restWeight    = 0.25

	// factor used when there is no data for a component,
	// "assume average" keeps sparse days from scoring 0
	missingDataFactor = 50.0
)

// Score computes the daily recovery score in [0,100]. Missing sleep or
// protein data falls back to a neutral factor instead of tanking the
// score; a workout logged today halves the rest factor.
func Score(p *profile.Profile, sleepHours, proteinGrams *float64, lastWorkoutDate *time.Time, today time.Time) float64 {
	sleepFactor := missingDataFactor
	if sleepHours != nil && p.SleepGoalHours > 0 {
		ratio := *sleepHours / p.SleepGoalHours
		if ratio > 1 {
			ratio = 1
		}
		sleepFactor = ratio * 100
	}

	proteinFactor := missingDataFactor
	if proteinGrams != nil && p.TargetProteinGrams > 0 {
		ratio := *proteinGrams / p.TargetProteinGrams
		if ratio > 1 {
			ratio = 1
		}
		proteinFactor = ratio * 100
	}

	restFactor := 100.0
	if lastWorkoutDate != nil && pkg.DaysBetween(*lastWorkoutDate, today) < 1 {
		restFactor = 50.0
	}

	return sleepWeight*sleepFactor + proteinWeight*proteinFactor + restWeight*restFactor
}
