package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pfrederiksen/pavilion-events/internal/catalog"
	"github.com/pfrederiksen/pavilion-events/internal/event"
	"github.com/pfrederiksen/pavilion-events/internal/logger"
	"github.com/pfrederiksen/pavilion-events/internal/metrics"
)

// catalogResponse is the events endpoint envelope.
type catalogResponse struct {
	Source      string         `json:"source"`
	LastUpdated string         `json:"lastUpdated"`
	Events      []*event.Event `json:"events"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type cronResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	LastUpdated string `json:"lastUpdated"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("encoding response failed", nil, err)
	}
}

// handleEvents serves the cached snapshot, degrading to the fixed fallback
// dataset on a miss, expiry, or store failure. It never answers GET with
// anything but 200.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	// The browser client is served from a different origin.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	snap, err := s.store.Get(r.Context())
	if err == nil {
		metrics.CatalogRequests.WithLabelValues("cache").Inc()
		writeJSON(w, http.StatusOK, catalogResponse{
			Source:      "cache",
			LastUpdated: snap.LastUpdated,
			Events:      snap.Events,
		})
		return
	}

	// Miss, expiry, or a broken store all degrade the same way.
	metrics.CatalogRequests.WithLabelValues("fallback").Inc()
	writeJSON(w, http.StatusOK, catalogResponse{
		Source:      "fallback",
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Events:      catalog.FallbackEvents(),
	})
}

// handleCron triggers a refresh. The shared-secret check runs before any
// work; a mismatch has no side effects.
func (s *Server) handleCron(w http.ResponseWriter, r *http.Request) {
	if s.cronSecret == "" || r.Header.Get("Authorization") != "Bearer "+s.cronSecret {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	result, err := s.refresher.Refresh(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to update events",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, cronResponse{
		Success:     true,
		Message:     formatCronMessage(result.EventCount),
		LastUpdated: result.LastUpdated,
	})
}

func formatCronMessage(count int) string {
	if count == 1 {
		return "Cached 1 event"
	}
	return fmt.Sprintf("Cached %d events", count)
}
