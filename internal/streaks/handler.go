package streaks

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=streaks_test

type streakTracker interface {
	Current(ctx context.Context) (*State, error)
	ReconcileOnOpen(ctx context.Context, now time.Time) (*State, error)
}

// StatusResponse is the streak state decorated with milestone info
// for the combined streak.
type StatusResponse struct {
	State            *State     `json:"state"`
	CurrentMilestone *Milestone `json:"currentMilestone,omitempty"`
	NextMilestone    *Milestone `json:"nextMilestone,omitempty"`
	DaysToNext       *int       `json:"daysToNext,omitempty"`
}

type Handler struct {
	tracker streakTracker
	now     func() time.Time
}

func NewHandler(tracker streakTracker) *Handler {
	return &Handler{
		tracker: tracker,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/streaks", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-streaks")
	r.HandleFunc("/streaks/reconcile", handler.HandleReconcile).Methods("POST", "OPTIONS").Name("reconcile-streaks")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streaks.get")
	defer span.End()

	state, err := handler.tracker.Current(ctx)
	if err != nil {
		log.Errorf("failed to get streak state: %s", err)
		http.Error(w, "failed to get streaks", http.StatusInternalServerError)
		return
	}

	handler.writeStatus(w, state)
}

func (handler *Handler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streaks.reconcile")
	defer span.End()

	state, err := handler.tracker.ReconcileOnOpen(ctx, handler.now())
	if err != nil {
		log.Errorf("failed to reconcile streaks: %s", err)
		http.Error(w, "failed to reconcile streaks", http.StatusInternalServerError)
		return
	}

	handler.writeStatus(w, state)
}

func (handler *Handler) writeStatus(w http.ResponseWriter, state *State) {
	resp := StatusResponse{
		State:            state,
		CurrentMilestone: CurrentMilestone(state.CombinedStreak),
		NextMilestone:    NextMilestone(state.CombinedStreak),
	}
	if days, ok := DaysToNext(state.CombinedStreak); ok {
		resp.DaysToNext = &days
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal streak status: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
