package server

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime"

	"github.com/aristath/pli-alpha/internal/domain"
	"github.com/aristath/pli-alpha/internal/modules/tracker"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "2.0.0",
		"service": "pli-alpha",
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleLatestAnalysis returns the most recent snapshot on disk.
func (s *Server) handleLatestAnalysis(w http.ResponseWriter, r *http.Request) {
	snap, err := tracker.LoadLatestSnapshot(s.cfg.ReportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			s.writeError(w, http.StatusNotFound, "no analysis available yet")
			return
		}
		s.log.Error().Err(err).Msg("Failed to load latest snapshot")
		s.writeError(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}

	s.writeJSON(w, http.StatusOK, snap)
}

// handleRunAnalysis triggers a pipeline run. The variant is selected via
// the ?variant query parameter and defaults to live.
func (s *Server) handleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	variant := domain.VariantLive
	if v := r.URL.Query().Get("variant"); v != "" {
		switch domain.Variant(v) {
		case domain.VariantStatic, domain.VariantLive:
			variant = domain.Variant(v)
		default:
			s.writeError(w, http.StatusBadRequest, "variant must be static or live")
			return
		}
	}

	result, err := s.analysis.Run(variant)
	if err != nil {
		s.log.Error().Err(err).Str("variant", string(variant)).Msg("Analysis run failed")
		s.writeError(w, http.StatusBadGateway, "analysis run failed")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"analysis": result.Analysis,
		"report":   result.Report,
		"snapshot": result.SnapshotPath,
	})
}

// handleSystemStatus handles system status requests
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := map[string]interface{}{
		"status": "running",
		"memory": map[string]interface{}{
			"alloc_mb":       m.Alloc / 1024 / 1024,
			"total_alloc_mb": m.TotalAlloc / 1024 / 1024,
			"sys_mb":         m.Sys / 1024 / 1024,
			"num_gc":         m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}

	s.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
