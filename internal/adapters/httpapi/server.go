// Package httpapi exposes a machine over HTTP: tape evaluation, the machine
// definition, health and prometheus metrics.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/turingtools/tapir/internal/logging"
	"github.com/turingtools/tapir/internal/presentation/tui"
	"github.com/turingtools/tapir/pkg/domain"
)

// Evaluator is the engine surface the server needs; *tapir.Simulator
// satisfies it.
type Evaluator interface {
	Evaluate(ctx context.Context, input string) (*domain.Result, error)
	Machine() *domain.Machine
}

// RunStore persists evaluation results keyed by run id. Optional.
type RunStore interface {
	Save(ctx context.Context, id string, res *domain.Result) error
	Load(ctx context.Context, id string) (*domain.Result, error)
	List(ctx context.Context) ([]string, error)
}

// Server wires the evaluator and its collaborators into a chi router.
type Server struct {
	engine   Evaluator
	logger   *slog.Logger
	store    RunStore
	registry *prometheus.Registry
	onError  func() // metric callback for failed evaluations
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore enables run-record persistence and the /runs endpoints.
func WithStore(store RunStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithRegistry mounts /metrics backed by reg.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithErrorObserver registers a callback invoked for each failed evaluation.
func WithErrorObserver(fn func()) Option {
	return func(s *Server) {
		s.onError = fn
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Evaluator, opts ...Option) http.Handler {
	s := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/machine", s.handleMachine)
	r.Get("/machine/describe", s.handleDescribe)
	r.Post("/evaluate", s.handleEvaluate)
	if s.store != nil {
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
	}
	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

type evaluateRequest struct {
	Input string `json:"input"`
}

type evaluateResponse struct {
	RunID string `json:"run_id,omitempty"`
	*domain.Result
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var body evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("evaluate: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "bad_request"})
		return
	}

	res, err := s.engine.Evaluate(r.Context(), body.Input)
	if err != nil {
		if s.onError != nil {
			s.onError()
		}
		s.logger.Warn("evaluate failed", "input", body.Input, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: errorKind(err)})
		return
	}

	resp := evaluateResponse{Result: res}
	if s.store != nil {
		resp.RunID = newRunID()
		if err := s.store.Save(r.Context(), resp.RunID, res); err != nil {
			// Persistence is best-effort; the verdict is still returned.
			s.logger.Error("failed to persist run", "run_id", resp.RunID, "error", err)
			resp.RunID = ""
		}
	}

	s.logger.Info("evaluated tape",
		"input", body.Input,
		"accepted", res.Accepted,
		"steps", res.Steps,
	)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMachine(w http.ResponseWriter, r *http.Request) {
	m := s.engine.Machine()

	symbols := make([]string, 0, m.Alphabet().Len())
	for _, sym := range m.Alphabet().Symbols() {
		symbols = append(symbols, sym.String())
	}

	type ruleJSON struct {
		From  int    `json:"from"`
		Read  string `json:"read"`
		Write string `json:"write"`
		Move  string `json:"move"`
		To    string `json:"to"`
	}
	rules := make([]ruleJSON, 0, m.Table().Len())
	for _, rule := range m.Table().Rules() {
		rules = append(rules, ruleJSON{
			From:  rule.From,
			Read:  rule.Read.String(),
			Write: rule.Write.String(),
			Move:  rule.Move.Token(),
			To:    rule.Next.String(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"states":  m.NStates(),
		"symbols": symbols,
		"rules":   rules,
	})
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, tui.DescribeMarkdown(s.engine.Machine()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list runs", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "store unavailable", Kind: "store"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": ids})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "run not found", Kind: "not_found"})
			return
		}
		s.logger.Error("failed to load run", "run_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "store unavailable", Kind: "store"})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorKind maps evaluation failures onto stable wire identifiers.
func errorKind(err error) string {
	var unknownErr *domain.UnknownSymbolError
	var incompleteErr *domain.IncompleteTransitionError
	switch {
	case errors.As(err, &unknownErr):
		return "unknown_symbol"
	case errors.As(err, &incompleteErr):
		return "incomplete_transition"
	default:
		return "evaluation"
	}
}

func newRunID() string {
	return fmt.Sprintf("run-%d", time.Now().UnixNano())
}
