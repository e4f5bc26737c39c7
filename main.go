package main

import (
	"embed"
	"io/fs"
	"log"
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/transicaocapilar/website/internal/config"
	"github.com/transicaocapilar/website/internal/content"
	"github.com/transicaocapilar/website/internal/handlers"
	"github.com/transicaocapilar/website/internal/logger"
	"github.com/transicaocapilar/website/internal/server"
)

//go:embed static
var staticFS embed.FS

func main() {
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to access static files:", err)
	}

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Supply(server.Assets{FS: staticSub}),

		logger.Module,
		config.Module,
		content.Module,
		handlers.Module,
		server.Module,
	).Run()
}
