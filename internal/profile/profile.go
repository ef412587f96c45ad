package profile

import "time"

// ActivityLevel is the user's habitual activity multiplier,
// used for the calorie target estimation.
type ActivityLevel string

const (
	ActivityLevelSedentary  ActivityLevel = "sedentary"
	ActivityLevelLight      ActivityLevel = "light"
	ActivityLevelModerate   ActivityLevel = "moderate"
	ActivityLevelActive     ActivityLevel = "active"
	ActivityLevelVeryActive ActivityLevel = "very_active"
)

func (al ActivityLevel) IsValid() bool {
	switch al {
	case ActivityLevelSedentary,
		ActivityLevelLight,
		ActivityLevelModerate,
		ActivityLevelActive,
		ActivityLevelVeryActive:
		return true
	default:
		return false
	}
}

// Multiplier returns the fixed TDEE multiplier for the activity level.
func (al ActivityLevel) Multiplier() float64 {
	switch al {
	case ActivityLevelSedentary:
		return 1.2
	case ActivityLevelLight:
		return 1.375
	case ActivityLevelModerate:
		return 1.55
	case ActivityLevelActive:
		return 1.725
	case ActivityLevelVeryActive:
		return 1.9
	default:
		return 1.2
	}
}

// Profile holds the user's nutrition and sleep targets. The insights
// engine only reads it; it is written by the profile endpoints.
type Profile struct {
	ID                 int           `json:"id"`
	TargetProteinGrams float64       `json:"targetProteinGrams"`
	TargetCarbsGrams   float64       `json:"targetCarbsGrams"`
	TargetFatGrams     float64       `json:"targetFatGrams"`
	TargetCalories     float64       `json:"targetCalories"`
	SleepGoalHours     float64       `json:"sleepGoalHours"`
	ActivityLevel      ActivityLevel `json:"activityLevel"`
	BodyWeightLbs      *float64      `json:"bodyWeightLbs,omitempty"`
	Sex                *string       `json:"sex,omitempty"`
	Age                *int          `json:"age,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}
