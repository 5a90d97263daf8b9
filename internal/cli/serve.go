package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/planittesting/jupiter-e2e/internal/config"
	"github.com/planittesting/jupiter-e2e/internal/handlers"
	"github.com/planittesting/jupiter-e2e/internal/logger"
	"github.com/planittesting/jupiter-e2e/internal/models"
	"github.com/planittesting/jupiter-e2e/internal/repository"
	"github.com/planittesting/jupiter-e2e/internal/services"
)

// CartRoutes are the cart API endpoints
type CartRoutes interface {
	AddItem(w http.ResponseWriter, r *http.Request)
	SetQuantity(w http.ResponseWriter, r *http.Request)
	RemoveItem(w http.ResponseWriter, r *http.Request)
	Empty(w http.ResponseWriter, r *http.Request)
}

// FeedbackRoutes are the contact form API endpoints
type FeedbackRoutes interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

// ServerDependencies holds all dependencies needed for the replica site
type ServerDependencies struct {
	ServerConfig   config.ServerConfig
	Logger         *zap.Logger
	HomeHandler    http.Handler
	ViewHandler    http.Handler
	ContactHandler http.Handler
	ShopHandler    http.Handler
	CartHandler    http.Handler
	FeedbackAPI    FeedbackRoutes
	CartAPI        CartRoutes
}

// BuildSiteDependencies wires the replica's services and handlers. Feedback
// goes to feedbackRepo; carts are kept in memory.
func BuildSiteDependencies(cfg config.ServerConfig, feedbackRepo services.FeedbackRepository, log *zap.Logger) (ServerDependencies, error) {
	deps := ServerDependencies{
		ServerConfig: cfg,
		Logger:       log,
	}

	cartService := services.NewCartService(models.DefaultCatalog(), repository.NewCartRepository())
	feedbackService := services.NewFeedbackService(feedbackRepo, cfg.FeedbackDelay)

	var err error
	if deps.HomeHandler, err = handlers.NewHomeHandler(cfg.TemplatesDir, cartService); err != nil {
		return deps, errors.Wrap(err, "home handler")
	}
	if deps.ViewHandler, err = handlers.NewViewHandler(cfg.TemplatesDir, "main.html"); err != nil {
		return deps, errors.Wrap(err, "main view handler")
	}
	if deps.ContactHandler, err = handlers.NewContactHandler(cfg.TemplatesDir, cartService); err != nil {
		return deps, errors.Wrap(err, "contact handler")
	}
	if deps.ShopHandler, err = handlers.NewShopHandler(cfg.TemplatesDir, cartService); err != nil {
		return deps, errors.Wrap(err, "shop handler")
	}
	if deps.CartHandler, err = handlers.NewCartHandler(cfg.TemplatesDir, cartService); err != nil {
		return deps, errors.Wrap(err, "cart handler")
	}

	deps.FeedbackAPI = handlers.NewFeedbackAPI(feedbackService)
	deps.CartAPI = handlers.NewCartAPI(cartService)

	return deps, nil
}

// NewRouter maps the site's pages and API onto a chi router
func NewRouter(deps ServerDependencies) http.Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Handle("/", deps.HomeHandler)
	r.Handle("/views/main.html", deps.ViewHandler)
	r.Handle("/contact", deps.ContactHandler)
	r.Handle("/shop", deps.ShopHandler)
	r.Handle("/cart", deps.CartHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.ServerConfig.StaticDir))))

	r.Route("/api", func(r chi.Router) {
		if deps.FeedbackAPI != nil {
			r.Post("/feedback", deps.FeedbackAPI.Submit)
			r.Get("/feedback", deps.FeedbackAPI.List)
			r.Get("/feedback/{feedbackID}", deps.FeedbackAPI.Get)
		}
		if deps.CartAPI != nil {
			r.Post("/cart/items", deps.CartAPI.AddItem)
			r.Put("/cart/items/{productID}", deps.CartAPI.SetQuantity)
			r.Delete("/cart/items/{productID}", deps.CartAPI.RemoveItem)
			r.Delete("/cart", deps.CartAPI.Empty)
		}
	})

	return r
}

// requestLogger puts a request scoped logger in the context and logs each
// request once it completes
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqLog := log.With(zap.String("request_id", middleware.GetReqID(r.Context())))
			next.ServeHTTP(ww, r.WithContext(logger.WithLogger(r.Context(), reqLog)))

			reqLog.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// RunServe starts the replica site and blocks until SIGINT or SIGTERM
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	if timeout := deps.ServerConfig.ShutdownTimeout; timeout > 0 {
		return WaitForShutdownWithTimeout(server, nil, timeout, deps.Logger)
	}
	return WaitForShutdown(server, nil, deps.Logger)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create listener")
	}

	server := &http.Server{
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown is nil, a channel is created and registered with signal.Notify.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, log *zap.Logger) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second, log)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	log.Info("shutting down server", zap.Stringer("signal", sig))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// Close does not report listener close errors, so this only fails
		// when the server cannot be closed at all
		if err := server.Close(); err != nil {
			return errors.Wrap(err, "could not stop server gracefully")
		}
	}

	log.Info("server stopped")
	return nil
}
