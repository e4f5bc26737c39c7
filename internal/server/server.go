package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/transicaocapilar/website/internal/config"
	"github.com/transicaocapilar/website/internal/handlers"
	"github.com/transicaocapilar/website/internal/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewMetrics, NewRouter),
	fx.Invoke(StartServer),
)

// Assets is the file tree served under /static/.
type Assets struct {
	FS fs.FS
}

// RouterParams are the dependencies for building the HTTP handler
type RouterParams struct {
	fx.In

	Pages   *handlers.Pages
	Assets  Assets
	Metrics *Metrics
	Log     *slog.Logger
}

// NewRouter wires middleware and routes. Unknown paths fall through to
// chi's default 404.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(p.Log.With(logger.Scope("http"))))
	r.Use(p.Metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(p.Assets.FS))))

	r.Get("/", p.Pages.Landing)
	r.Get("/entregavel", p.Pages.Delivery)
	r.Get("/health", p.Pages.Health)
	r.Method(http.MethodGet, "/metrics", p.Metrics.Handler())

	return r
}

// StartServer binds the listener on start so a taken port fails startup,
// and drains in-flight requests on stop.
func StartServer(lc fx.Lifecycle, handler http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}

			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
