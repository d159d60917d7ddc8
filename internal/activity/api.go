package activity

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/briangreenhill/ftracker/internal/training"
)

// maxRequestBody caps the size of a POST /trainings body.
const maxRequestBody = 64 << 10

type trainingRequest struct {
	Code string    `json:"code"`
	Data []float64 `json:"data"`
}

type trainingResponse struct {
	Activity
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewAPI(logger *slog.Logger, activityService *Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /trainings", handleGetTrainings(logger, activityService))
	mux.Handle("GET /trainings/{id}", handleGetTraining(logger, activityService))
	mux.Handle("POST /trainings", handleAddTraining(logger, activityService))
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

func handleGetTrainings(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		activities, err := activityService.Get(r.Context())
		if err != nil {
			logger.Error("Error getting trainings", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		out := make([]trainingResponse, 0, len(activities))
		for _, activity := range activities {
			out = append(out, trainingResponse{Activity: activity, Message: activity.Message()})
		}
		writeJSON(logger, w, http.StatusOK, out)
	})
}

func handleGetTraining(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		activity, err := activityService.GetByID(r.Context(), r.PathValue("id"))
		if errors.Is(err, ErrNotFound) {
			writeJSON(logger, w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		if err != nil {
			logger.Error("Error getting training", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(logger, w, http.StatusOK, trainingResponse{Activity: activity, Message: activity.Message()})
	})
}

func handleAddTraining(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

		var req trainingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(logger, w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
				return
			}
			writeJSON(logger, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		activity, err := activityService.Add(r.Context(), req.Code, req.Data)
		if err != nil {
			status := statusFor(err)
			if status == http.StatusInternalServerError {
				logger.Error("Error adding training", slog.Any("error", err))
			}
			writeJSON(logger, w, status, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(logger, w, http.StatusCreated, trainingResponse{Activity: activity, Message: activity.Message()})
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, training.ErrInvalidActivity), errors.Is(err, training.ErrArity),
		errors.Is(err, training.ErrNonFinite):
		return http.StatusBadRequest
	case errors.Is(err, training.ErrDivision):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding response", slog.Any("error", err))
	}
}
