package workouts

import "time"

type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
}

type Workout struct {
	ID          int        `json:"id"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	// Volume is the sum of weight x reps over the workout's sets,
	// computed on fetch, not stored.
	Volume float64 `json:"volume"`
}

func (w *Workout) IsCompleted() bool {
	return w.CompletedAt != nil
}

type Set struct {
	ID           int       `json:"id"`
	WorkoutID    int       `json:"workoutId"`
	ExerciseID   int       `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName,omitempty"`
	MuscleGroup  string    `json:"muscleGroup,omitempty"`
	WeightLbs    float64   `json:"weightLbs"`
	Reps         int       `json:"reps"`
	RPE          *int      `json:"rpe,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Set) Volume() float64 {
	return s.WeightLbs * float64(s.Reps)
}
