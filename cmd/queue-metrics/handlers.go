package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Sternrassler/queue-metrics/pkg/metrics"
	"github.com/Sternrassler/queue-metrics/pkg/planner"
	"github.com/Sternrassler/queue-metrics/pkg/queue"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

type server struct {
	evaluator      *planner.Evaluator
	maxServers     int
	requestTimeout time.Duration
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("POST /v1/evaluate", s.evaluateHandler)
	mux.HandleFunc("GET /v1/servers", s.serversHandler)
	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// scenarioRequest accepts loosely typed numbers: integers and floats are
// coerced, while strings and anything else unusable become NaN.
type scenarioRequest struct {
	Model   string `json:"model"`
	Lamda   any    `json:"lamda"`
	Mu      any    `json:"mu"`
	SigmaS  any    `json:"sigma_s"`
	Servers any    `json:"servers"`
}

func (r scenarioRequest) scenario() (queue.Scenario, error) {
	kind, err := queue.ParseKind(r.Model)
	if err != nil {
		return queue.Scenario{}, err
	}

	s := queue.Scenario{
		Model:   kind,
		Lamda:   queue.CoerceRates(r.Lamda),
		Mu:      queue.Coerce(r.Mu),
		Servers: 1,
	}
	if r.SigmaS != nil {
		s.SigmaS = queue.Coerce(r.SigmaS)
	}
	if r.Servers != nil {
		s.Servers = queue.CoerceServers(r.Servers)
	}
	return s, nil
}

type evaluateResponse struct {
	Index   int            `json:"index"`
	Cached  bool           `json:"cached"`
	Summary *queue.Summary `json:"summary,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func (s *server) evaluateHandler(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var raw json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode request: %v", err))
		return
	}

	trimmed := bytes.TrimSpace(raw)
	batch := len(trimmed) > 0 && trimmed[0] == '['

	var requests []scenarioRequest
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if batch {
		if err := dec.Decode(&requests); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("decode scenarios: %v", err))
			return
		}
	} else {
		var req scenarioRequest
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("decode scenario: %v", err))
			return
		}
		requests = []scenarioRequest{req}
	}

	scenarios := make([]queue.Scenario, len(requests))
	for i, req := range requests {
		sc, err := req.scenario()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("scenario %d: %v", i, err))
			return
		}
		scenarios[i] = sc
	}

	ctx := r.Context()
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	results, err := s.evaluator.EvaluateAll(ctx, scenarios)
	if err != nil {
		log.Warn().Err(err).Int("scenarios", len(scenarios)).Msg("Evaluation incomplete")
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	responses := make([]evaluateResponse, len(results))
	for i, res := range results {
		responses[i] = evaluateResponse{Index: res.Index, Cached: res.Cached}
		if res.Err != nil {
			responses[i].Error = res.Err.Error()
			continue
		}
		summary := res.Summary
		responses[i].Summary = &summary
	}

	if batch {
		writeJSON(w, http.StatusOK, responses)
		return
	}
	writeJSON(w, http.StatusOK, responses[0])
}

func (s *server) serversHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := make(map[string]float64, 3)
	for _, name := range []string{"lamda", "mu", "wq"} {
		v, err := strconv.ParseFloat(q.Get(name), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("query parameter %q: %v", name, err))
			return
		}
		params[name] = v
	}

	maxServers := s.maxServers
	if m := q.Get("max"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("query parameter \"max\": %q is not a positive integer", m))
			return
		}
		if s.maxServers <= 0 || n < s.maxServers {
			maxServers = n
		}
	}

	sizing, err := planner.MinServers(params["lamda"], params["mu"], params["wq"], maxServers)
	switch {
	case errors.Is(err, planner.ErrInvalidSizing):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, planner.ErrNoFeasibleServers):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sizing)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
