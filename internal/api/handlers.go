package api

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/hojoonlee/toondex/internal/export"
	"github.com/hojoonlee/toondex/internal/models"
	"github.com/hojoonlee/toondex/internal/store"
)

// handleListWebtoons returns the catalog built by the most recent scan.
func (s *Server) handleListWebtoons(w http.ResponseWriter, r *http.Request) {
	snap, scanned := s.app.Catalog().Get()

	response := struct {
		store.Snapshot
		Total   int  `json:"total"`
		Scanned bool `json:"scanned"`
	}{Snapshot: snap, Total: snap.Total(), Scanned: scanned}

	RespondWithJSON(w, http.StatusOK, response)
}

// handleListPlatforms returns the recognized platform acronyms and their
// display names, in the order the catalog sorts them.
func (s *Server) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, models.Platforms)
}

// handleCreateExport writes the current catalog to a new spreadsheet file.
func (s *Server) handleCreateExport(w http.ResponseWriter, r *http.Request) {
	snap, scanned := s.app.Catalog().Get()
	if !scanned {
		RespondWithError(w, http.StatusConflict, "Catalog has not been scanned yet")
		return
	}

	path, err := export.Write(s.app.Config().Export.Path, snap.Webtoons, time.Now())
	if err != nil {
		log.Printf("Failed to write export file: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to write export file")
		return
	}

	RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"file_name": filepath.Base(path),
		"total":     snap.Total(),
	})
}

// handleGetLatestExport reports the newest spreadsheet in the export directory.
func (s *Server) handleGetLatestExport(w http.ResponseWriter, r *http.Request) {
	name, ok, err := export.LatestIn(s.app.Config().Export.Path)
	if err != nil {
		log.Printf("Failed to read export directory: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to read export directory")
		return
	}
	if !ok {
		RespondWithError(w, http.StatusNotFound, "No export file found")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"file_name": name})
}

func (s *Server) handleRunJob(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		JobID string `json:"job_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := s.app.JobManager().RunJob(payload.JobID, s.app)
	if err != nil {
		RespondWithError(w, http.StatusConflict, err.Error()) // 409 Conflict if a job is already running
		return
	}

	RespondWithJSON(w, http.StatusAccepted, map[string]string{
		"message": "Job '" + payload.JobID + "' started successfully.",
	})
}

func (s *Server) handleGetJobsStatus(w http.ResponseWriter, r *http.Request) {
	statuses := s.app.JobManager().GetStatus()
	RespondWithJSON(w, http.StatusOK, statuses)
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"version": s.app.Version()})
}

// handleGetConfig exposes the effective settings the server started with.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := s.app.Config()
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"library_path":  cfg.Library.Path,
		"on_invalid":    cfg.Library.OnInvalid,
		"export_path":   cfg.Export.Path,
		"scan_interval": cfg.ScanInterval,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, scanned := s.app.Catalog().Get()
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"scanned": scanned,
	})
}
