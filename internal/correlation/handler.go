package correlation

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/internal/telemetry/tracing"
	"github.com/Gabriel-Hollenbeck22/IrontPath-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=correlation_mocks_test.go -package=correlation_test

// maxDays keeps a single request from scanning years of history.
const maxDays = 365

type correlationBuilder interface {
	Build(ctx context.Context, days int) (*Data, error)
}

type Handler struct {
	aggregator correlationBuilder
}

func NewHandler(aggregator correlationBuilder) *Handler {
	return &Handler{aggregator: aggregator}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/correlation/{days}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-correlation")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.correlation.get")
	defer span.End()

	vars := mux.Vars(r)
	days, err := strconv.Atoi(vars["days"])
	if err != nil || days < 1 {
		http.Error(w, "error, days must be a positive number", http.StatusBadRequest)
		return
	}
	if days > maxDays {
		days = maxDays
	}

	data, err := handler.aggregator.Build(ctx, days)
	if err != nil {
		log.Errorf("failed to build correlation data for %d days: %s", days, err)
		http.Error(w, "failed to build correlation data", http.StatusInternalServerError)
		return
	}

	dataJson, err := json.Marshal(data)
	if err != nil {
		log.Errorf("failed to marshal correlation data: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dataJson, http.StatusOK)
}
