package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dominosim/internal/app"
	"dominosim/internal/domain"
	"dominosim/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server exposes the round engine over HTTP.
type Server struct {
	rounds    ports.RoundPort
	logger    *zap.Logger
	startTime time.Time
}

// NewServer creates a server backed by rounds. A nil logger disables logging.
func NewServer(rounds ports.RoundPort, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		rounds:    rounds,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/simular", s.handleSimulate)
	r.Get("/placar", s.handleScoreboard)

	return r
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	res, err := s.rounds.SimulateRound()
	if errors.Is(err, domain.ErrNoOpeningDouble) {
		s.logger.Warn("round aborted", zap.String("request_id", reqID), zap.Error(err))
		s.writeJSON(w, http.StatusOK, app.ErrorPayload{Error: domain.NoOpeningDoubleMessage})
		return
	}
	if err != nil {
		s.logger.Error("simulate round failed", zap.String("request_id", reqID), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, app.ErrorPayload{Error: "internal error"})
		return
	}

	s.logger.Info("round simulated",
		zap.String("request_id", reqID),
		zap.String("round_id", res.RoundID),
		zap.String("reason", string(res.Final.Reason)),
		zap.String("classification", string(res.Final.Classification)),
		zap.String("winner", res.Final.Winner.String()),
		zap.Int("points", res.Final.Points),
		zap.Int("turns", len(res.States)),
	)
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.rounds.Scoreboard())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}
