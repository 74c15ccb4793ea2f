package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"playground/internal/catalog"
	"playground/internal/config"
	"playground/internal/handler"
	"playground/internal/middleware"
	"playground/internal/repository/memory"
	"playground/internal/service"
	serviceLLM "playground/internal/service/llm"
	"playground/internal/service/llm/together"

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds how long in-flight requests get to finish
const ShutdownTimeout = 10 * time.Second

// Options are the collaborators the HTTP surface is built from
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	// HTTPClient is used for completion API calls; nil means transport defaults
	HTTPClient *http.Client
}

// NewHandler wires the store, services and handlers into a routed,
// middleware-wrapped http.Handler.
func NewHandler(opts Options) (http.Handler, error) {
	cfg, logger := opts.Config, opts.Logger
	isProd := cfg.IsProd()

	registry, err := catalog.NewRegistry()
	if err != nil {
		return nil, err
	}

	// History lives for the lifetime of the process
	historyRepo := memory.NewHistoryRepository(logger)

	provider := together.NewClient(cfg.CompletionsURL, opts.HTTPClient, logger)
	generationService := serviceLLM.NewGenerationService(provider, historyRepo, cfg.TogetherAPIKey, logger)
	historyService := service.NewHistoryService(historyRepo, logger)

	generationHandler := handler.NewGenerationHandler(generationService, logger, isProd)
	historyHandler := handler.NewHistoryHandler(historyService, logger, isProd)
	modelsHandler := handler.NewModelsHandler(registry)

	// Go 1.22+ enhanced patterns
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.HandleFunc("POST /api/generate", generationHandler.Generate)
	mux.HandleFunc("GET /api/history", historyHandler.ListHistory)
	mux.HandleFunc("DELETE /api/history", historyHandler.ClearHistory)
	mux.HandleFunc("GET /api/models", modelsHandler.GetModels)

	// Order: CORS → RequestLogger → Recovery → Routes
	var h http.Handler = mux
	h = middleware.Recovery(logger, isProd)(h)
	h = middleware.RequestLogger(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOriginList(),
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
	h = corsHandler.Handler(h)

	return h, nil
}

// Run serves h on the configured port until ctx is cancelled, then shuts
// down gracefully.
func Run(ctx context.Context, cfg *config.Config, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Completion calls have no deadline of their own
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", "port", cfg.Port, "api", "http://localhost:"+cfg.Port+"/api")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
