package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/decikit/decikit/internal/config"
	apihttp "github.com/decikit/decikit/internal/http"
	"github.com/decikit/decikit/internal/logging"
	"github.com/decikit/decikit/internal/middleware"
	"github.com/decikit/decikit/internal/monitoring"
	arrayprovider "github.com/decikit/decikit/internal/providers/array"
	mathprovider "github.com/decikit/decikit/internal/providers/math"
	"github.com/decikit/decikit/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	log      *logging.Logger
	httpSrv  *http.Server
}

// New creates a fully wired server instance
func New(cfg *config.Config, log *logging.Logger) (*Server, error) {
	registry := service.NewRegistry()
	metrics := monitoring.NewMetrics()

	if err := registerProviders(registry, cfg, log); err != nil {
		return nil, err
	}
	stats := registry.Stats()
	metrics.SetRegistryServices(stats["total_services"].(int))
	log.Info("registered services",
		zap.Any("total_services", stats["total_services"]),
		zap.Any("total_tools", stats["total_tools"]),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))

	handlers := apihttp.NewHandlers(registry, metrics, log)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		router:   router,
		registry: registry,
		metrics:  metrics,
		log:      log,
	}, nil
}

// Run starts the server and blocks until the context is canceled
func (s *Server) Run(ctx context.Context, addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown drains in-flight requests before closing
func (s *Server) Shutdown() error {
	if s.httpSrv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.log.Info("shutting down")
	return s.httpSrv.Shutdown(ctx)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func registerProviders(registry *service.Registry, cfg *config.Config, log *logging.Logger) error {
	if err := registry.Register(arrayprovider.NewProvider()); err != nil {
		return fmt.Errorf("register array provider: %w", err)
	}
	log.Info("registered provider", zap.String("service", "array"))

	if err := registry.Register(mathprovider.NewProvider(cfg.Decimal.Precision)); err != nil {
		return fmt.Errorf("register math provider: %w", err)
	}
	log.Info("registered provider", zap.String("service", "math"),
		zap.Uint32("precision", cfg.Decimal.Precision))

	return nil
}
