package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/streaks"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	AddSet(ctx context.Context, set *Set) (*Set, error)
	CompleteWorkout(ctx context.Context, id int, completedAt time.Time) (*Workout, error)
	ListCompletedWorkouts(ctx context.Context, from, to time.Time) ([]Workout, error)
}

type streakRecorder interface {
	RecordActivity(ctx context.Context, stream streaks.Stream, day time.Time) (*streaks.State, error)
}

type volumeRecorder interface {
	AddWorkoutVolume(ctx context.Context, date time.Time, volume float64) error
}

type AddSetRequest struct {
	WorkoutID    int     `json:"workoutId,omitempty"`
	ExerciseID   int     `json:"exerciseId,omitempty"`
	ExerciseName string  `json:"exerciseName,omitempty"`
	MuscleGroup  string  `json:"muscleGroup,omitempty"`
	WeightLbs    float64 `json:"weightLbs"`
	Reps         int     `json:"reps"`
	RPE          *int    `json:"rpe,omitempty"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo    workoutsRepo
	streaks streakRecorder
	diary   volumeRecorder
	now     func() time.Time
}

func NewHandler(repo workoutsRepo, streaks streakRecorder, diary volumeRecorder) *Handler {
	return &Handler{
		repo:    repo,
		streaks: streaks,
		diary:   diary,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/sets", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	r.HandleFunc("/workouts/{id}/complete", handler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/workouts/list", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addSet")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	if req.Reps < 1 {
		http.Error(w, "error, reps must be at least 1", http.StatusBadRequest)
		return
	}
	if req.WeightLbs < 0 {
		http.Error(w, "error, weight cannot be negative", http.StatusBadRequest)
		return
	}
	if req.ExerciseID == 0 && req.ExerciseName == "" {
		http.Error(w, "error, exercise id or name required", http.StatusBadRequest)
		return
	}
	if req.RPE != nil && (*req.RPE < 1 || *req.RPE > 10) {
		http.Error(w, "error, rpe must be between 1 and 10", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddSet(ctx, &Set{
		WorkoutID:    req.WorkoutID,
		ExerciseID:   req.ExerciseID,
		ExerciseName: req.ExerciseName,
		MuscleGroup:  req.MuscleGroup,
		WeightLbs:    req.WeightLbs,
		Reps:         req.Reps,
		RPE:          req.RPE,
	})
	if err != nil {
		log.Errorf("failed to add set: %s", err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}

	now := handler.now()
	if _, err := handler.streaks.RecordActivity(ctx, streaks.StreamWorkout, now); err != nil {
		log.Errorf("failed to record workout streak activity: %s", err)
	}
	if err := handler.diary.AddWorkoutVolume(ctx, now, added.Volume()); err != nil {
		log.Errorf("failed to add workout volume to diary: %s", err)
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal added set: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.complete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id NaN", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.CompleteWorkout(ctx, id, handler.now())
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to complete workout %d: %s", id, err)
		http.Error(w, "error, failed to complete workout", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	now := handler.now()
	from := now.AddDate(0, 0, -30)
	to := now

	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		parsed, err := time.Parse("2006-01-02", fromParam)
		if err != nil {
			http.Error(w, "error, invalid from date", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		parsed, err := time.Parse("2006-01-02", toParam)
		if err != nil {
			http.Error(w, "error, invalid to date", http.StatusBadRequest)
			return
		}
		// make the to date inclusive
		to = parsed.AddDate(0, 0, 1)
	}

	ws, err := handler.repo.ListCompletedWorkouts(ctx, from, to)
	if err != nil {
		log.Errorf("failed to list workouts: %s", err)
		http.Error(w, "error, failed to list workouts", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{Workouts: ws, Total: len(ws)})
	if err != nil {
		log.Errorf("failed to marshal workouts list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
