package diary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/streaks"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=diary_mocks_test.go -package=diary_test

type diaryRepo interface {
	GetByDate(ctx context.Context, date time.Time) (*DailySummary, error)
	AddNutrition(ctx context.Context, date time.Time, calories, protein, carbs, fat float64) error
	SetSleepHours(ctx context.Context, date time.Time, sleepHours float64) error
}

type streakRecorder interface {
	RecordActivity(ctx context.Context, stream streaks.Stream, day time.Time) (*streaks.State, error)
}

type NutritionLogRequest struct {
	Date         *time.Time `json:"date,omitempty"`
	Calories     float64    `json:"calories"`
	ProteinGrams float64    `json:"proteinGrams"`
	CarbsGrams   float64    `json:"carbsGrams"`
	FatGrams     float64    `json:"fatGrams"`
}

type SleepLogRequest struct {
	Date       *time.Time `json:"date,omitempty"`
	SleepHours float64    `json:"sleepHours"`
}

type LogResponse struct {
	Summary *DailySummary `json:"summary"`
}

type Handler struct {
	repo    diaryRepo
	streaks streakRecorder
}

func NewHandler(repo diaryRepo, streaks streakRecorder) *Handler {
	return &Handler{
		repo:    repo,
		streaks: streaks,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/diary/nutrition", handler.HandleLogNutrition).Methods("POST", "OPTIONS").Name("log-nutrition")
	r.HandleFunc("/diary/sleep", handler.HandleLogSleep).Methods("POST", "OPTIONS").Name("log-sleep")
	r.HandleFunc("/diary/day/{date}", handler.HandleGetDay).Methods("GET", "OPTIONS").Name("get-day")
}

func (handler *Handler) HandleLogNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.logNutrition")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req NutritionLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log nutrition, unmarshal json params: %s", err)
		http.Error(w, "log nutrition failed", http.StatusBadRequest)
		return
	}

	if req.Calories < 0 || req.ProteinGrams < 0 || req.CarbsGrams < 0 || req.FatGrams < 0 {
		http.Error(w, "error, negative macro values", http.StatusBadRequest)
		return
	}

	day := time.Now()
	if req.Date != nil {
		day = *req.Date
	}

	if err := handler.repo.AddNutrition(
		ctx, day, req.Calories, req.ProteinGrams, req.CarbsGrams, req.FatGrams,
	); err != nil {
		log.Errorf("failed to log nutrition for %s: %s", day.Format("2006-01-02"), err)
		http.Error(w, "error, failed to log nutrition", http.StatusInternalServerError)
		return
	}

	if _, err := handler.streaks.RecordActivity(ctx, streaks.StreamNutrition, day); err != nil {
		// the logged macros are saved, streak bookkeeping failure is not fatal
		log.Errorf("failed to record nutrition streak activity: %s", err)
	}

	handler.respondWithDay(ctx, w, day)
}

func (handler *Handler) HandleLogSleep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.logSleep")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SleepLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log sleep, unmarshal json params: %s", err)
		http.Error(w, "log sleep failed", http.StatusBadRequest)
		return
	}

	if req.SleepHours < 0 || req.SleepHours > 24 {
		http.Error(w, "error, sleep hours out of range", http.StatusBadRequest)
		return
	}

	day := time.Now()
	if req.Date != nil {
		day = *req.Date
	}

	if err := handler.repo.SetSleepHours(ctx, day, req.SleepHours); err != nil {
		log.Errorf("failed to log sleep for %s: %s", day.Format("2006-01-02"), err)
		http.Error(w, "error, failed to log sleep", http.StatusInternalServerError)
		return
	}

	handler.respondWithDay(ctx, w, day)
}

func (handler *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.getDay")
	defer span.End()

	vars := mux.Vars(r)
	dateStr := vars["date"]
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	s, err := handler.repo.GetByDate(ctx, date)
	if errors.Is(err, ErrSummaryNotFound) {
		http.Error(w, "summary not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get summary for %s: %s", dateStr, err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}

	sJson, err := json.Marshal(s)
	if err != nil {
		log.Errorf("failed to marshal summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sJson, http.StatusOK)
}

func (handler *Handler) respondWithDay(ctx context.Context, w http.ResponseWriter, day time.Time) {
	s, err := handler.repo.GetByDate(ctx, day)
	if err != nil {
		// the write succeeded, return an empty body instead of an error
		log.Errorf("failed to re-fetch summary for %s: %s", day.Format("2006-01-02"), err)
		pkg.WriteJSONResponseOK(w, `{}`)
		return
	}

	respJson, err := json.Marshal(LogResponse{Summary: s})
	if err != nil {
		log.Errorf("failed to marshal log response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}
