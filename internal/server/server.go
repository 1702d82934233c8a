package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dguiney/hotel-api/internal/application"
	"github.com/dguiney/hotel-api/internal/config"
	mongodoc "github.com/dguiney/hotel-api/internal/infrastructure/mongo"
	"github.com/dguiney/hotel-api/internal/infrastructure/observability"
	hotelshttp "github.com/dguiney/hotel-api/internal/interfaces/http/hotels"
)

// Server manages the HTTP lifecycle and injects the application services into
// the hotel handlers. It is the composition root: nothing below it knows about
// routing, and nothing here contains domain logic.
type Server struct {
	logger        zerolog.Logger
	client        *mongo.Client
	repo          *mongodoc.HotelRepository
	hotelQueries  application.HotelQueryService
	hotelCommands application.HotelCommandService
	reviews       application.ReviewService
	registry      *prometheus.Registry
	addr          string
	origins       []string
}

// New assembles the repository, services and handlers from the configuration.
func New(cfg config.Config, client *mongo.Client, logger zerolog.Logger) *Server {
	repo := mongodoc.NewHotelRepository(client.Database(cfg.MongoDatabase), cfg.HotelCollection)

	return &Server{
		logger:        logger,
		client:        client,
		repo:          repo,
		hotelQueries:  application.NewHotelQueryService(repo),
		hotelCommands: application.NewHotelCommandService(repo),
		reviews:       application.NewReviewService(repo),
		registry:      observability.InitRegistry(),
		addr:          cfg.Addr,
		origins:       cfg.Origins(),
	}
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	if err := s.ensureIndexes(context.Background()); err != nil {
		// The geo endpoint needs the 2dsphere index; everything else works
		// without it, so startup proceeds.
		s.logger.Warn().Err(err).Msg("index bootstrap failed")
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.origins))
	router.Use(metrics)
	router.Use(requestLogger(s.logger))

	router.Get("/healthz", s.healthHandler())
	router.Handle("/metrics", observability.MetricsHandler(s.registry))

	handler := hotelshttp.NewHandler(hotelshttp.Config{
		Logger:        s.logger,
		HotelQueries:  s.hotelQueries,
		HotelCommands: s.hotelCommands,
		Reviews:       s.reviews,
	})
	router.Route("/api", handler.Register)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("HTTP server listening")
		errChan <- httpServer.ListenAndServe()
	}()

	return s.waitForShutdown(httpServer, errChan)
}

func (s *Server) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.repo.EnsureIndexes(ctx)
}

// healthHandler reports store connectivity, not domain state.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// waitForShutdown watches ListenAndServe and OS signals, then drains the
// server and disconnects the Mongo client.
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigChan:
		s.logger.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("server shutdown failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("mongo disconnect failed")
	}
	return nil
}
