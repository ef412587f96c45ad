package diary

import "time"

// DailySummary is the rollup of everything logged for one calendar day.
// One row per day, created lazily the first time anything is logged.
// The recovery score field is written by the recovery calculator only.
type DailySummary struct {
	ID            int       `json:"id"`
	Date          time.Time `json:"date"`
	Calories      float64   `json:"calories"`
	ProteinGrams  float64   `json:"proteinGrams"`
	CarbsGrams    float64   `json:"carbsGrams"`
	FatGrams      float64   `json:"fatGrams"`
	SleepHours    *float64  `json:"sleepHours,omitempty"`
	RecoveryScore *float64  `json:"recoveryScore,omitempty"`
	WorkoutVolume float64   `json:"workoutVolume"`
}

// Order of returned daily summaries.
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)
