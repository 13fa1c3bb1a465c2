// Package server exposes the estimator and the advisor over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/alexanderramin/folio/internal/advisor"
	"github.com/alexanderramin/folio/internal/config"
	folioLog "github.com/alexanderramin/folio/internal/log"
	"github.com/alexanderramin/folio/internal/metrics"
	"github.com/alexanderramin/folio/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options carries the collaborators a Server needs. Profiles may be nil,
// in which case the profile routes are not mounted.
type Options struct {
	Advisor  advisor.AdviceService
	Profiles service.ProfileService
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Recorder *metrics.Recorder
}

type Server struct {
	cfg      *config.Config
	advisor  advisor.AdviceService
	profiles service.ProfileService
	log      *zap.Logger
	registry *prometheus.Registry
	recorder *metrics.Recorder
	limiter  *rate.Limiter
	validate *validator.Validate
	router   chi.Router
}

// New builds the router. A nil Registry gets a fresh one; a nil Recorder is
// registered on it.
func New(cfg *config.Config, opts Options) *Server {
	s := &Server{
		cfg:      cfg,
		advisor:  opts.Advisor,
		profiles: opts.Profiles,
		log:      opts.Logger,
		registry: opts.Registry,
		recorder: opts.Recorder,
		limiter:  rate.NewLimiter(rate.Limit(cfg.AdvisorRPS), cfg.AdvisorBurst),
		validate: newValidator(),
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	if s.recorder == nil {
		s.recorder = metrics.NewRecorder(s.registry)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware(s.registry)

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}),
		chiMiddleware.RequestID,
	)
	if s.cfg.RequestLogging {
		router.Use(folioLog.Logger(s.log, "http"))
	}
	router.Use(chiMiddleware.Recoverer)

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, errReply(http.StatusMethodNotAllowed, "Method Not Allowed"))
	})
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, errReply(http.StatusNotFound, "Not Found"))
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, HealthReply{Status: "ok"})
	})
	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Post("/estimate", s.handleEstimate)
		r.Post("/advisor", s.handleAdvice)
		r.Get("/presets", s.handlePresets)
		r.Get("/stages", s.handleStages)
		if s.profiles != nil {
			r.Get("/profiles", s.handleListProfiles)
			r.Get("/profiles/{name}", s.handleGetProfile)
		}
	})

	return router
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on ln until ctx is cancelled, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	logger := s.log.Sugar().Named("server")
	srv := http.Server{Handler: s.router}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		logger.Info("server terminated")
	}()

	logger.Infof("Listening on %s...", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
		return err
	}
	<-shutdownDone
	return nil
}
