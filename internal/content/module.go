package content

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/transicaocapilar/website/internal/config"
	"github.com/transicaocapilar/website/internal/logger"
)

var Module = fx.Module("content",
	fx.Provide(NewCatalog),
)

// NewCatalog loads the configured catalog, failing startup on any defect.
func NewCatalog(cfg *config.Config, log *slog.Logger) (*Catalog, error) {
	c, err := Load(cfg.ContentFile)
	if err != nil {
		log.Error("content catalog rejected", logger.Scope("content"), slog.String("file", cfg.ContentFile), logger.Error(err))
		return nil, err
	}

	source := cfg.ContentFile
	if source == "" {
		source = "embedded"
	}
	log.Info("content catalog loaded",
		logger.Scope("content"),
		slog.String("source", source),
		slog.Int("faq_entries", len(c.Landing.FAQ.Entries)),
		slog.Int("modules", len(c.Delivery.Modules)),
	)
	return c, nil
}
