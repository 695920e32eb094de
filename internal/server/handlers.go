package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fadedpez/martingale/internal/types"
	"github.com/fadedpez/martingale/pkg/entities"
	"github.com/fadedpez/martingale/pkg/repositories/results"
	"github.com/fadedpez/martingale/pkg/services/martingale"
	"github.com/fadedpez/martingale/pkg/services/montecarlo"
)

type trialRequest struct {
	Config martingale.Config `json:"config"`
}

type trialResponse struct {
	Ledger  []*entities.LedgerEntry `json:"ledger"`
	Summary *entities.TrialSummary  `json:"summary"`
}

type monteCarloRequest struct {
	Config     martingale.Config `json:"config"`
	Iterations int               `json:"iterations"`
	BaseSeed   int64             `json:"base_seed"`
}

type monteCarloResponse struct {
	RunID string `json:"run_id"`
	*montecarlo.Result
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleTrial(w http.ResponseWriter, r *http.Request) {
	var req trialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, types.WrapError(types.ErrInvalidRequest, "malformed request body", err))
		return
	}

	ledger, err := martingale.RunTrial(req.Config)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, trialResponse{
		Ledger:  ledger,
		Summary: montecarlo.Summarize(1, req.Config, ledger),
	})
}

func (s *Server) handleMonteCarlo(w http.ResponseWriter, r *http.Request) {
	var req monteCarloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, types.WrapError(types.ErrInvalidRequest, "malformed request body", err))
		return
	}

	if req.Iterations > s.cfg.MaxIterations {
		s.writeError(w, types.NewSimError(types.ErrInvalidIterations,
			fmt.Sprintf("iteration count %d exceeds the server limit of %d", req.Iterations, s.cfg.MaxIterations)))
		return
	}

	result, err := s.orch.Run(req.Config, req.Iterations, req.BaseSeed)
	if err != nil {
		s.writeError(w, err)
		return
	}

	run := &results.Run{
		Config:     req.Config,
		Iterations: req.Iterations,
		BaseSeed:   req.BaseSeed,
		Result:     result,
	}
	if err := s.repo.SaveRun(r.Context(), run); err != nil {
		s.writeError(w, types.WrapError(types.ErrInternalError, "failed to store run", err))
		return
	}

	s.writeJSON(w, http.StatusOK, monteCarloResponse{RunID: run.ID, Result: result})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.repo.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &limit); err != nil {
			s.writeError(w, types.NewSimError(types.ErrInvalidRequest, "limit must be an integer"))
			return
		}
	}

	runs, err := s.repo.ListRuns(r.Context(), limit)
	if err != nil {
		s.writeError(w, types.WrapError(types.ErrInternalError, "failed to list runs", err))
		return
	}
	s.writeJSON(w, http.StatusOK, runs)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var simErr *types.SimError
	if !types.As(err, &simErr) {
		simErr = types.WrapError(types.ErrInternalError, "unexpected error", err)
	}

	s.logger.LogError(simErr)
	s.writeJSON(w, statusFor(simErr.Code), errorResponse{
		Code:    string(simErr.Code),
		Message: simErr.Message,
	})
}

func statusFor(code types.ErrorCode) int {
	switch code {
	case types.ErrRunNotFound:
		return http.StatusNotFound
	case types.ErrInternalError:
		return http.StatusInternalServerError
	default:
		// Every validation code maps to a client error
		return http.StatusBadRequest
	}
}
