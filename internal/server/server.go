// Package server implements the parzend HTTP study API: callers create a
// study bound to one scalar domain and drive the suggest/observe loop over
// JSON.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/parzenlabs/parzen"
	"github.com/parzenlabs/parzen/internal/config"
)

// Server manages studies and serves the ask/tell endpoints.
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics

	mu      sync.RWMutex
	studies map[string]*study
	nextID  atomic.Uint64
}

// New creates a server. Metrics are registered on the given registerer;
// pass prometheus.DefaultRegisterer in production.
func New(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) *Server {
	return &Server{
		cfg:     cfg,
		logger:  logger.Named("server"),
		metrics: newMetrics(reg),
		studies: make(map[string]*study),
	}
}

// RegisterRoutes mounts the study API.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/studies", s.handleCreateStudy)
		r.Post("/studies/{id}/suggest", s.handleSuggest)
		r.Post("/studies/{id}/trials", s.handleObserve)
		r.Get("/studies/{id}/best", s.handleBest)
	})
}

func (s *Server) handleCreateStudy(w http.ResponseWriter, r *http.Request) {
	defer s.observeDuration("create_study", time.Now())

	var spec StudySpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("decoding study spec: %w", err))
		return
	}
	if spec.SplitFraction == 0 {
		spec.SplitFraction = s.cfg.Study.SplitFraction
	}
	if spec.Candidates == 0 {
		spec.Candidates = s.cfg.Study.Candidates
	}
	if spec.Seed == 0 {
		spec.Seed = s.cfg.Study.Seed
	}

	st, err := newStudy(spec)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	id := fmt.Sprintf("study_%d", s.nextID.Add(1))
	s.mu.Lock()
	s.studies[id] = st
	s.mu.Unlock()

	s.metrics.studiesCreated.Inc()
	s.logger.Info("Study created",
		zap.String("study_id", id),
		zap.Bool("discrete", spec.Domain.Discrete),
		zap.Float64("min", spec.Domain.Min),
		zap.Float64("max", spec.Domain.Max),
		zap.String("kernel", spec.Kernel))

	s.respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	defer s.observeDuration("suggest", time.Now())

	st, ok := s.study(chi.URLParam(r, "id"))
	if !ok {
		s.respondError(w, http.StatusNotFound, errors.New("study not found"))
		return
	}

	parameter, err := st.Suggest()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	s.metrics.suggestions.Inc()
	s.respondJSON(w, http.StatusOK, map[string]float64{"parameter": parameter})
}

func (s *Server) handleObserve(w http.ResponseWriter, r *http.Request) {
	defer s.observeDuration("observe", time.Now())

	st, ok := s.study(chi.URLParam(r, "id"))
	if !ok {
		s.respondError(w, http.StatusNotFound, errors.New("study not found"))
		return
	}

	var body struct {
		Parameter float64 `json:"parameter"`
		Metric    float64 `json:"metric"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("decoding trial: %w", err))
		return
	}

	if err := st.Observe(body.Parameter, body.Metric); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, parzen.ErrOutOfDomain) ||
			errors.Is(err, parzen.ErrInvalidMetric) ||
			errors.Is(err, errNonInteger) {
			status = http.StatusBadRequest
		}
		s.respondError(w, status, err)
		return
	}

	s.metrics.trialsObserved.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	defer s.observeDuration("best", time.Now())

	st, ok := s.study(chi.URLParam(r, "id"))
	if !ok {
		s.respondError(w, http.StatusNotFound, errors.New("study not found"))
		return
	}

	parameter, metric, err := st.Best()
	if err != nil {
		if errors.Is(err, parzen.ErrNoTrials) {
			s.respondError(w, http.StatusNotFound, err)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]float64{
		"parameter": parameter,
		"metric":    metric,
	})
}

func (s *Server) study(id string) (*study, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.studies[id]
	return st, ok
}

func (s *Server) observeDuration(route string, start time.Time) {
	s.metrics.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Encoding response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", zap.Int("status", status), zap.Error(err))
	}
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}
