package streaks

import "time"

type Stream string

const (
	StreamWorkout   Stream = "workout"
	StreamNutrition Stream = "nutrition"
)

func (s Stream) IsValid() bool {
	return s == StreamWorkout || s == StreamNutrition
}

// StreamState tracks consecutive-day activity for a single stream.
type StreamState struct {
	CurrentStreak  int        `json:"currentStreak"`
	LongestStreak  int        `json:"longestStreak"`
	StreakStartDay *time.Time `json:"streakStartDay,omitempty"`
	LastLoggedDay  *time.Time `json:"lastLoggedDay,omitempty"`
}

// State is the streak aggregate. The grace day is shared between the
// two streams, consumed by whichever one breaks first.
type State struct {
	Workout   StreamState `json:"workout"`
	Nutrition StreamState `json:"nutrition"`

	GraceDaysRemaining int  `json:"graceDaysRemaining"`
	GraceActive        bool `json:"graceActive"`

	CombinedStreak        int `json:"combinedStreak"`
	LongestCombinedStreak int `json:"longestCombinedStreak"`
}

func NewState() *State {
	return &State{
		GraceDaysRemaining: 1,
	}
}

func (s *State) streamState(stream Stream) *StreamState {
	if stream == StreamWorkout {
		return &s.Workout
	}
	return &s.Nutrition
}

func (s *State) recomputeCombined() {
	s.CombinedStreak = s.Workout.CurrentStreak
	if s.Nutrition.CurrentStreak < s.CombinedStreak {
		s.CombinedStreak = s.Nutrition.CurrentStreak
	}
	if s.CombinedStreak > s.LongestCombinedStreak {
		s.LongestCombinedStreak = s.CombinedStreak
	}
}

type Milestone struct {
	Days  int    `json:"days"`
	Label string `json:"label"`
}

// milestones must stay sorted ascending by Days.
var milestones = []Milestone{
	{Days: 3, Label: "Getting Started"},
	{Days: 7, Label: "One Week Strong"},
	{Days: 14, Label: "Two Week Warrior"},
	{Days: 30, Label: "Monthly Master"},
	{Days: 60, Label: "Sixty Day Samurai"},
	{Days: 100, Label: "Century Club"},
	{Days: 365, Label: "Year of Iron"},
}

// CurrentMilestone returns the highest milestone reached by the given
// streak length, or nil when none is reached yet.
func CurrentMilestone(streak int) *Milestone {
	var current *Milestone
	for i := range milestones {
		if milestones[i].Days <= streak {
			current = &milestones[i]
		} else {
			break
		}
	}
	return current
}

// NextMilestone returns the lowest milestone above the given streak
// length, or nil when all milestones are already reached.
func NextMilestone(streak int) *Milestone {
	for i := range milestones {
		if milestones[i].Days > streak {
			return &milestones[i]
		}
	}
	return nil
}

// DaysToNext returns the days remaining until the next milestone and
// whether a next milestone exists.
func DaysToNext(streak int) (int, bool) {
	next := NextMilestone(streak)
	if next == nil {
		return 0, false
	}
	return next.Days - streak, true
}
