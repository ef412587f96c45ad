package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/diary"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/profile"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/metrics"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/workouts"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=recovery_mocks_test.go -package=recovery_test

type profileGetter interface {
	Get(ctx context.Context) (*profile.Profile, error)
}

type diaryReader interface {
	GetByDate(ctx context.Context, date time.Time) (*diary.DailySummary, error)
	SetRecoveryScore(ctx context.Context, date time.Time, score float64) error
}

type workoutsReader interface {
	Get(ctx context.Context, id int) (*workouts.Workout, error)
	LastCompletedWorkout(ctx context.Context) (*workouts.Workout, error)
	ListCompletedWorkouts(ctx context.Context, from, to time.Time) ([]workouts.Workout, error)
}

type ScoreResponse struct {
	Score float64   `json:"score"`
	Date  time.Time `json:"date"`
}

type BufferRequest struct {
	WorkoutID int `json:"workoutId"`
}

type BufferResponse struct {
	WorkoutID  int             `json:"workoutId"`
	Percentile float64         `json:"percentile"`
	Adjustment MacroAdjustment `json:"adjustment"`
}

// historyDays is how far back the percentile history reaches.
const historyDays = 90

type Handler struct {
	profiles profileGetter
	diary    diaryReader
	workouts workoutsReader
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewHandler(
	profiles profileGetter,
	diaryRepo diaryReader,
	workoutsRepo workoutsReader,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		profiles: profiles,
		diary:    diaryRepo,
		workouts: workoutsRepo,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/recovery/score", handler.HandleScore).Methods("GET", "OPTIONS").Name("recovery-score")
	r.HandleFunc("/recovery/buffer", handler.HandleBuffer).Methods("POST", "OPTIONS").Name("recovery-buffer")
}

func (handler *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.score")
	defer span.End()

	p, err := handler.profiles.Get(ctx)
	if err != nil {
		log.Errorf("recovery score, failed to get profile: %s", err)
		http.Error(w, "failed to compute recovery score", http.StatusInternalServerError)
		return
	}

	now := handler.now()
	today := pkg.DayOf(now)

	var sleepHours, proteinGrams *float64
	summary, err := handler.diary.GetByDate(ctx, today)
	switch {
	case err == nil:
		sleepHours = summary.SleepHours
		if summary.ProteinGrams > 0 {
			protein := summary.ProteinGrams
			proteinGrams = &protein
		}
	case errors.Is(err, diary.ErrSummaryNotFound):
		// nothing logged today, the score falls back to defaults
	default:
		log.Errorf("recovery score, failed to get today's summary: %s", err)
		http.Error(w, "failed to compute recovery score", http.StatusInternalServerError)
		return
	}

	var lastWorkoutDate *time.Time
	lastWorkout, err := handler.workouts.LastCompletedWorkout(ctx)
	switch {
	case err == nil:
		lastWorkoutDate = lastWorkout.CompletedAt
	case errors.Is(err, workouts.ErrWorkoutNotFound):
		// no workouts yet, rest factor stays at full
	default:
		log.Errorf("recovery score, failed to get last workout: %s", err)
		http.Error(w, "failed to compute recovery score", http.StatusInternalServerError)
		return
	}

	score := Score(p, sleepHours, proteinGrams, lastWorkoutDate, now)

	if err := handler.diary.SetRecoveryScore(ctx, today, score); err != nil {
		// the computed score is still returned
		log.Errorf("failed to persist recovery score: %s", err)
	}
	handler.metrics.CounterRecoveryScores.Inc()

	respJson, err := json.Marshal(ScoreResponse{Score: score, Date: today})
	if err != nil {
		log.Errorf("failed to marshal score response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleBuffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.buffer")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req BufferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("recovery buffer, unmarshal json params: %s", err)
		http.Error(w, "recovery buffer failed", http.StatusBadRequest)
		return
	}
	if req.WorkoutID <= 0 {
		http.Error(w, "error, workout id required", http.StatusBadRequest)
		return
	}

	workout, err := handler.workouts.Get(ctx, req.WorkoutID)
	if errors.Is(err, workouts.ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("recovery buffer, failed to get workout %d: %s", req.WorkoutID, err)
		http.Error(w, "failed to compute recovery buffer", http.StatusInternalServerError)
		return
	}

	now := handler.now()
	history, err := handler.workouts.ListCompletedWorkouts(ctx, now.AddDate(0, 0, -historyDays), now)
	if err != nil {
		log.Errorf("recovery buffer, failed to list workout history: %s", err)
		http.Error(w, "failed to compute recovery buffer", http.StatusInternalServerError)
		return
	}

	resp := BufferResponse{
		WorkoutID:  workout.ID,
		Percentile: VolumePercentile(workout, history),
		Adjustment: RecoveryBuffer(workout, history),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal buffer response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
