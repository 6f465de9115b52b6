package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillcoder/dockerscaler-controller/internal/logic/eventfeed"
	"github.com/skillcoder/dockerscaler-controller/internal/logic/scaler"
)

type containersResponse struct {
	Containers []scaler.ContainerRecord `json:"containers"`
}

type eventsResponse struct {
	Events  []eventfeed.Event `json:"events"`
	Dropped uint64            `json:"dropped"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleContainers(w http.ResponseWriter, r *http.Request) {
	snapshot := s.coordinator.Snapshot()
	if snapshot == nil {
		snapshot = []scaler.ContainerRecord{}
	}

	s.writeJSON(w, r, http.StatusOK, containersResponse{Containers: snapshot})
}

// handleEvents hands out everything buffered since the previous drain.
// Each event is delivered to exactly one caller.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	events := s.events.Drain()
	if events == nil {
		events = []eventfeed.Event{}
	}

	s.writeJSON(w, r, http.StatusOK, eventsResponse{
		Events:  events,
		Dropped: s.events.Dropped(),
	})
}

// handleCommand enqueues a command for the next tick. Acceptance means
// queued, not executed; an unknown target is resolved (and logged) at
// apply time.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var cmd scaler.Command

	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&cmd); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid command body"})

		return
	}

	if err := s.coordinator.SubmitCommand(cmd); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, scaler.ErrCommandQueueFull) {
			status = http.StatusServiceUnavailable
		}

		s.writeJSON(w, r, status, errorResponse{Error: err.Error()})

		return
	}

	s.writeJSON(w, r, http.StatusAccepted, cmd)
}

func (s *Server) handleGetPolicy(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.coordinator.Policy())
}

// handlePutPolicy replaces the whole policy. A rejected policy leaves
// the previous one in force.
func (s *Server) handlePutPolicy(w http.ResponseWriter, r *http.Request) {
	var pol scaler.Policy

	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&pol); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid policy body"})

		return
	}

	if err := s.coordinator.UpdatePolicy(pol); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})

		return
	}

	s.writeJSON(w, r, http.StatusOK, s.coordinator.Policy())
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode response",
			"path", r.URL.Path,
			"error", err,
		)
	}
}
