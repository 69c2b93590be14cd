package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/ledger"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// ReadyResponse reports readiness plus the scores on the displays.
type ReadyResponse struct {
	Status  string `json:"status"`
	Player1 int    `json:"player1"`
	Player2 int    `json:"player2"`
}

// Scoreboard is the part of the controller the health routes read.
type Scoreboard interface {
	Ready() bool
	Scores() ledger.Scores
}

// Handler provides health check endpoints
type Handler struct {
	startTime time.Time
	version   string
	board     Scoreboard
	gatherer  prometheus.Gatherer
}

// NewHandler creates a new health check handler. gatherer may be nil to
// leave /metrics unregistered.
func NewHandler(version string, board Scoreboard, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		startTime: time.Now(),
		version:   version,
		board:     board,
		gatherer:  gatherer,
	}
}

// Health returns the health status of the application
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Uptime:    time.Since(h.startTime).String(),
	})
}

// Ready is 200 once the screens have been drawn, 503 before.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.board.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, ReadyResponse{Status: "starting"})
		return
	}
	scores := h.board.Scores()
	writeJSON(w, http.StatusOK, ReadyResponse{
		Status:  "ready",
		Player1: scores.Player1,
		Player2: scores.Player2,
	})
}

// Mux wires the health and metrics routes.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	if h.gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}

// Server runs the health endpoints until its context is cancelled.
type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

func NewServer(logger *slog.Logger, addr string, h *Handler) *Server {
	return &Server{
		logger: logger,
		srv: &http.Server{
			Addr:         addr,
			Handler:      h.Mux(),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  15 * time.Second,
		},
	}
}

// Run listens on the configured address and shuts down when ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("health listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.InfoContext(ctx, "Health server listening", attr.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("health server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("health shutdown: %w", err)
	}
	<-errCh
	s.logger.Info("Health server stopped")
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
