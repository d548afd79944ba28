package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/yourusername/prop-sim/internal/models"
	"github.com/yourusername/prop-sim/internal/profile"
)

// EvaluateRequest carries one run's inputs. Fields left at their zero
// value fall back to the configured defaults; include_samples keeps
// the raw sample slice in the response.
type EvaluateRequest struct {
	Profile        string               `json:"profile,omitempty"`
	Inputs         *models.PlayerInputs `json:"inputs,omitempty"`
	IncludeSamples bool                 `json:"include_samples,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Service:   s.serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inputs := s.defaults
	if req.Profile != "" {
		if s.store == nil {
			writeError(w, http.StatusServiceUnavailable, "profile store not configured")
			return
		}
		p, err := s.store.Get(r.Context(), req.Profile)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			s.logger.WithError(err).Error("Failed to load profile")
			writeError(w, http.StatusInternalServerError, "failed to load profile")
			return
		}
		inputs = p.PlayerInputs
	}
	if req.Inputs != nil {
		inputs = *req.Inputs
	}

	result, err := s.engine.Run(r.Context(), inputs)
	if err != nil {
		writeError(w, statusForRunError(err), err.Error())
		return
	}

	if !req.IncludeSamples {
		result.Samples = nil
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	store, ok := s.requireStore(w)
	if !ok {
		return
	}

	names, err := store.List(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to list profiles")
		writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"profiles": names})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	store, ok := s.requireStore(w)
	if !ok {
		return
	}

	p, err := store.Get(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.WithError(err).Error("Failed to load profile")
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	store, ok := s.requireStore(w)
	if !ok {
		return
	}

	var p models.PlayerProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.Save(r.Context(), p); err != nil {
		s.logger.WithError(err).Error("Failed to save profile")
		writeError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved", "player_name": p.Name})
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	store, ok := s.requireStore(w)
	if !ok {
		return
	}

	name := r.PathValue("name")
	if err := store.Delete(r.Context(), name); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.WithError(err).Error("Failed to delete profile")
		writeError(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "player_name": name})
}

func (s *Server) requireStore(w http.ResponseWriter) (profile.Store, bool) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "profile store not configured")
		return nil, false
	}
	return s.store, true
}

func statusForRunError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidVariance),
		errors.Is(err, models.ErrInvalidOdds),
		errors.Is(err, models.ErrInvalidSampleCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
