package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cbodonnell/swipemath/pkg/api/middleware"
	"github.com/cbodonnell/swipemath/pkg/config"
	"github.com/cbodonnell/swipemath/pkg/log"
	"github.com/cbodonnell/swipemath/pkg/repositories"
	"github.com/cbodonnell/swipemath/pkg/version"
)

const (
	// DefaultResultsLimit is used when the request does not set a limit
	DefaultResultsLimit = 10
	// MaxResultsLimit caps the limit query parameter
	MaxResultsLimit = 100
)

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

func HandleHealth(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		health := HealthStatus{Status: "ok", Database: "ok", Version: version.Get()}
		status := http.StatusOK
		if err := repository.Ping(ctx); err != nil {
			log.Error("database health check failed: %v", err)
			health.Status = "degraded"
			health.Database = "error"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, health)
	}
}

func HandleGetConfig(cfg config.GameConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cfg)
	}
}

func HandleListResults(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultResultsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = min(parsed, MaxResultsLimit)
		}

		results, err := repository.ListTopResults(r.Context(), limit)
		if err != nil {
			log.Error("failed to list results: %v", err)
			http.Error(w, "Failed to list results", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}

func HandleGetBestResult(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			log.Error("failed to get user from context")
			http.Error(w, "Failed to get user from context", http.StatusInternalServerError)
			return
		}

		result, err := repository.GetBestResult(r.Context(), userID)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "No results yet", http.StatusNotFound)
				return
			}
			log.Error("failed to get best result: %v", err)
			http.Error(w, "Failed to get best result", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
