package suggestions

import "github.com/google/uuid"

type Category string

const (
	CategoryNutrition Category = "nutrition"
	CategoryWorkout   Category = "workout"
	CategoryRecovery  Category = "recovery"
	CategoryGeneral   Category = "general"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Suggestion is a transient piece of advice, generated on demand and
// never persisted.
type Suggestion struct {
	ID         string   `json:"id"`
	Category   Category `json:"category"`
	Priority   Priority `json:"priority"`
	Title      string   `json:"title"`
	Message    string   `json:"message"`
	Actionable bool     `json:"actionable"`
}

func newSuggestion(category Category, priority Priority, title, message string, actionable bool) *Suggestion {
	return &Suggestion{
		ID:         uuid.NewString(),
		Category:   category,
		Priority:   priority,
		Title:      title,
		Message:    message,
		Actionable: actionable,
	}
}
