package recovery

import (
	"fmt"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/workouts"
)

const (
	bufferPercentileThreshold = 0.8
	maxCarbBoostGrams         = 40.0
	maxProteinBoostGrams      = 20.0
)

// MacroAdjustment is a suggested one-off change to the day's macro
// targets, in grams.
type MacroAdjustment struct {
	CarbsGrams   float64 `json:"carbsGrams"`
	ProteinGrams float64 `json:"proteinGrams"`
	FatGrams     float64 `json:"fatGrams"`
	Reason       string  `json:"reason"`
}

func (ma MacroAdjustment) IsZero() bool {
	return ma.CarbsGrams == 0 && ma.ProteinGrams == 0 && ma.FatGrams == 0
}

func NoAdjustment(reason string) MacroAdjustment {
	return MacroAdjustment{Reason: reason}
}

// VolumePercentile returns the fraction of historical workouts whose
// volume is strictly below the given workout's. An empty history
// yields the neutral 0.5, not an error.
func VolumePercentile(workout *workouts.Workout, history []workouts.Workout) float64 {
	if len(history) == 0 {
		return 0.5
	}
	below := 0
	for i := range history {
		if history[i].Volume < workout.Volume {
			below++
		}
	}
	return float64(below) / float64(len(history))
}

// RecoveryBuffer suggests extra carbs and protein after an unusually
// hard session. The boost ramps linearly from zero at the 80th
// volume percentile to the full amount at the 100th; at or below the
// threshold there is no adjustment at all.
func RecoveryBuffer(workout *workouts.Workout, history []workouts.Workout) MacroAdjustment {
	p := VolumePercentile(workout, history)
	if p <= bufferPercentileThreshold {
		return NoAdjustment(fmt.Sprintf(
			"workout volume at the %.0fth percentile, no extra recovery needed", p*100,
		))
	}

	scale := (p - bufferPercentileThreshold) / (1 - bufferPercentileThreshold)
	return MacroAdjustment{
		CarbsGrams:   maxCarbBoostGrams * scale,
		ProteinGrams: maxProteinBoostGrams * scale,
		Reason: fmt.Sprintf(
			"workout volume at the %.0fth percentile, add recovery fuel", p*100,
		),
	}
}
