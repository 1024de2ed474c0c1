// Package server exposes benchmark reports over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ethpandaops/benchreport/internal/benchmark"
	"github.com/ethpandaops/benchreport/internal/benchmark/export"
	"github.com/ethpandaops/benchreport/internal/benchmark/selection"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

// Server serves the benchmark API.
type Server interface {
	// Handler returns the routed API handler.
	Handler() http.Handler
	// Run listens on the configured address until ctx is canceled, then
	// shuts down gracefully.
	Run(ctx context.Context) error
}

type server struct {
	log     logrus.FieldLogger
	addr    string
	service benchmark.Service
	limiter *rate.Limiter

	// mu serialises report runs so probes never measure concurrently.
	mu sync.Mutex
}

// Compile-time interface compliance check
var _ Server = (*server)(nil)

// New creates a Server. reportsPerMinute bounds how often the report endpoint
// may run probes; zero or less disables the limit.
func New(log logrus.FieldLogger, addr string, service benchmark.Service, reportsPerMinute int) Server {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if reportsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(reportsPerMinute)), reportsPerMinute)
	}

	return &server{
		log:     log.WithField("component", "server"),
		addr:    addr,
		service: service,
		limiter: limiter,
	}
}

func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/tests", s.handleTests)
	mux.Handle("GET /api/report", s.rateLimit(http.HandlerFunc(s.handleReport)))
	mux.Handle("POST /api/report", s.rateLimit(http.HandlerFunc(s.handleReport)))

	return mux
}

func (s *server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.WithField("addr", s.addr).Info("Starting API server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving api: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		s.log.Info("Shutting down API server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down api: %w", err)
		}

		return nil
	})

	return g.Wait()
}

// testInfo describes one probe in the /api/tests listing.
type testInfo struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Info  string  `json:"info"`
	Limit float64 `json:"limit"`
	Over  float64 `json:"over"`
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleTests(w http.ResponseWriter, _ *http.Request) {
	bundle := s.service.Strings()
	descriptors := s.service.Catalog().Descriptors()

	tests := make([]testInfo, 0, len(descriptors))
	for _, d := range descriptors {
		tests = append(tests, testInfo{
			ID:    d.ID,
			Name:  bundle.ProbeName(d.ID),
			Info:  bundle.ProbeInfo(d.ID),
			Limit: d.Limit,
			Over:  d.Over,
		})
	}

	writeJSON(w, http.StatusOK, tests)
}

func (s *server) handleReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}

	requested := selection.SplitIDs(r.Form["tests"])

	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := s.service.Report(r.Context(), requested)
	if err != nil {
		s.log.WithError(err).Error("Report failed")
		writeError(w, http.StatusServiceUnavailable, "report failed")
		return
	}

	writeJSON(w, http.StatusOK, export.NewDocument(report, time.Now()))
}

func (s *server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			s.log.WithField("remote", r.RemoteAddr).Warn("Report rate limit exceeded")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
