package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
}

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/profile", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	p, err := handler.repo.Get(ctx)
	if err != nil {
		log.Errorf("failed to get profile: %s", err)
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	pJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	if p.SleepGoalHours <= 0 {
		http.Error(w, "error, sleep goal must be positive", http.StatusBadRequest)
		return
	}
	if !p.ActivityLevel.IsValid() {
		http.Error(w, "error, invalid activity level", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &p); err != nil {
		log.Errorf("failed to update profile %d: %s", p.ID, err)
		http.Error(w, "error, failed to update profile", http.StatusInternalServerError)
		return
	}

	log.Debugf("profile %d updated", p.ID)
	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}
