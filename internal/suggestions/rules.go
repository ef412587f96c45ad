package suggestions

import (
	"fmt"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/diary"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/profile"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/workouts"
)

// Threshold constants encode domain heuristics and are exact.
const (
	plateauDeficitKcal = 300.0

	lowProteinPerLb = 0.7

	poorSleepRatio = 0.7

	overloadMuscleGroup    = "quads"
	overloadVolume24h      = 1000.0
	overloadLookback       = 24 * time.Hour
	progressiveOverloadLbs = 5.0
	minRepsForOverload     = 8

	deloadWeeks           = 4
	deloadWorkoutsPerWeek = 4
	deloadVolumeRatio     = 0.9

	carbTimingVolume    = 5000.0
	carbTimingCarbRatio = 0.8

	creatineWorkouts30d = 12
	creatineDrawOdds    = 10
)

// rule produces at most one suggestion from the shared window.
// Rules never error; missing data simply means no trigger.
type rule struct {
	name string
	eval func(p *profile.Profile, w *Window) *Suggestion
}

// catalogue is the fixed evaluation order. Presentation may re-sort
// by priority, the engine does not.
var catalogue = []rule{
	{name: "strength-plateau", eval: strengthPlateau},
	{name: "low-protein", eval: lowProtein},
	{name: "poor-sleep", eval: poorSleep},
	{name: "muscle-group-overload", eval: muscleGroupOverload},
	{name: "progressive-overload", eval: progressiveOverload},
	{name: "deload", eval: deload},
	{name: "carb-timing", eval: carbTiming},
	{name: "creatine-note", eval: creatineNote},
}

func strengthPlateau(p *profile.Profile, w *Window) *Suggestion {
	var trainingDays []diary.DailySummary
	for i := range w.Summaries {
		if w.Summaries[i].WorkoutVolume > 0 {
			trainingDays = append(trainingDays, w.Summaries[i])
		}
	}
	if len(trainingDays) < 4 {
		return nil
	}

	recent := trainingDays[:3]
	prior := trainingDays[3:]
	if len(prior) > 3 {
		prior = prior[:3]
	}
	if avgVolume(recent) > avgVolume(prior) {
		return nil
	}

	if p.TargetCalories <= 0 || len(w.Summaries) == 0 {
		return nil
	}
	var deficitSum float64
	for i := range w.Summaries {
		deficitSum += p.TargetCalories - w.Summaries[i].Calories
	}
	if deficitSum/float64(len(w.Summaries)) <= plateauDeficitKcal {
		return nil
	}

	return newSuggestion(
		CategoryNutrition, PriorityHigh,
		"Fuel your lifts",
		"Your training load has stalled while you are eating well below target. "+
			"Try adding 40g of carbs on training days to support heavier sessions.",
		true,
	)
}

func lowProtein(p *profile.Profile, w *Window) *Suggestion {
	if p.BodyWeightLbs == nil || len(w.Summaries) == 0 {
		return nil
	}

	var proteinSum float64
	for i := range w.Summaries {
		proteinSum += w.Summaries[i].ProteinGrams
	}
	avg := proteinSum / float64(len(w.Summaries))

	minTarget := lowProteinPerLb * *p.BodyWeightLbs
	if avg >= minTarget {
		return nil
	}

	return newSuggestion(
		CategoryNutrition, PriorityMedium,
		"Protein intake is low",
		fmt.Sprintf(
			"You are averaging %.0fg of protein a day. Aim for at least %.0fg to support recovery.",
			avg, minTarget,
		),
		true,
	)
}

func poorSleep(p *profile.Profile, w *Window) *Suggestion {
	if len(w.Summaries) == 0 || p.SleepGoalHours <= 0 {
		return nil
	}
	mostRecent := w.Summaries[0]
	if mostRecent.SleepHours == nil {
		return nil
	}
	if *mostRecent.SleepHours >= poorSleepRatio*p.SleepGoalHours {
		return nil
	}

	return newSuggestion(
		CategoryRecovery, PriorityHigh,
		"Short on sleep",
		fmt.Sprintf(
			"You slept %.1fh against a goal of %.1fh. Consider cutting today's training volume by 10%%.",
			*mostRecent.SleepHours, p.SleepGoalHours,
		),
		true,
	)
}

func muscleGroupOverload(_ *profile.Profile, w *Window) *Suggestion {
	for _, workout := range w.WorkoutsCompletedSince(overloadLookback) {
		sets := w.SetsForWorkout(workout.ID)
		if MuscleGroupVolume(sets, overloadMuscleGroup) > overloadVolume24h {
			return newSuggestion(
				CategoryWorkout, PriorityLow,
				"Heavy leg day behind you",
				"Yesterday's session hit your quads hard. An upper-body focus today would let them recover.",
				false,
			)
		}
	}
	return nil
}

func progressiveOverload(_ *profile.Profile, w *Window) *Suggestion {
	// group by exercise, preserving first-seen order so the result
	// is deterministic
	var order []int
	byExercise := make(map[int][]workouts.Set)
	for _, set := range w.Sets {
		if _, seen := byExercise[set.ExerciseID]; !seen {
			order = append(order, set.ExerciseID)
		}
		byExercise[set.ExerciseID] = append(byExercise[set.ExerciseID], set)
	}

	for _, exerciseID := range order {
		sets := byExercise[exerciseID]
		if len(sets) < 3 {
			continue
		}
		recent := sets[len(sets)-3:]
		weight := recent[0].WeightLbs
		ready := true
		for _, s := range recent {
			if s.Reps < minRepsForOverload || s.WeightLbs != weight {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}

		return newSuggestion(
			CategoryWorkout, PriorityMedium,
			"Time to go heavier",
			fmt.Sprintf(
				"You have hit %d+ reps at %.0f lbs on %s three times running. Try %.0f lbs next session.",
				minRepsForOverload, weight, recent[0].ExerciseName, weight+progressiveOverloadLbs,
			),
			true,
		)
	}
	return nil
}

func deload(_ *profile.Profile, w *Window) *Suggestion {
	cutoff := w.Now.AddDate(0, 0, -28)
	var inWindow []workouts.Workout
	for i := range w.Workouts {
		if w.Workouts[i].CompletedAt != nil && w.Workouts[i].CompletedAt.After(cutoff) {
			inWindow = append(inWindow, w.Workouts[i])
		}
	}
	if len(inWindow) < 4 {
		return nil
	}

	perWeek := make(map[int]int)
	for i := range inWindow {
		year, week := inWindow[i].CompletedAt.ISOWeek()
		perWeek[year*100+week]++
	}
	busyWeeks := 0
	for _, count := range perWeek {
		if count >= deloadWorkoutsPerWeek {
			busyWeeks++
		}
	}
	if busyWeeks < deloadWeeks {
		return nil
	}

	// inWindow is ascending by completion time
	oldestAvg := (inWindow[0].Volume + inWindow[1].Volume) / 2
	n := len(inWindow)
	recentAvg := (inWindow[n-1].Volume + inWindow[n-2].Volume) / 2
	if oldestAvg <= 0 || recentAvg >= deloadVolumeRatio*oldestAvg {
		return nil
	}

	return newSuggestion(
		CategoryRecovery, PriorityHigh,
		"Deload week recommended",
		"Four hard weeks in a row and your volume is trending down. "+
			"Take a week at 50% volume to come back stronger.",
		true,
	)
}

func carbTiming(p *profile.Profile, w *Window) *Suggestion {
	today := w.Today()
	if today == nil || p.TargetCarbsGrams <= 0 {
		return nil
	}
	if today.WorkoutVolume <= carbTimingVolume {
		return nil
	}
	if today.CarbsGrams >= carbTimingCarbRatio*p.TargetCarbsGrams {
		return nil
	}

	shortfall := p.TargetCarbsGrams - today.CarbsGrams
	return newSuggestion(
		CategoryNutrition, PriorityMedium,
		"Refuel after a big session",
		fmt.Sprintf(
			"Big training day with carbs still low. Add roughly %.0fg of carbs with your next meal.",
			shortfall/2,
		),
		true,
	)
}

func creatineNote(_ *profile.Profile, w *Window) *Suggestion {
	cutoff := w.Now.AddDate(0, 0, -historyDays)
	count := 0
	for i := range w.Workouts {
		if w.Workouts[i].CompletedAt != nil && w.Workouts[i].CompletedAt.After(cutoff) {
			count++
		}
	}
	if count < creatineWorkouts30d {
		return nil
	}
	// shown roughly once in ten eligible passes to avoid nagging
	if w.rng == nil || w.rng.Intn(creatineDrawOdds) != 0 {
		return nil
	}

	return newSuggestion(
		CategoryGeneral, PriorityLow,
		"Creatine might help",
		"With your training frequency, 5g of creatine daily is one of the best-evidenced supplements around.",
		false,
	)
}

func avgVolume(days []diary.DailySummary) float64 {
	if len(days) == 0 {
		return 0
	}
	var sum float64
	for i := range days {
		sum += days[i].WorkoutVolume
	}
	return sum / float64(len(days))
}
