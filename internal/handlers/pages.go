package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/transicaocapilar/website/internal/components"
	"github.com/transicaocapilar/website/internal/content"
	"github.com/transicaocapilar/website/internal/logger"
)

var Module = fx.Module("handlers",
	fx.Provide(NewPages),
)

// Pages serves the rendered site from a loaded catalog.
type Pages struct {
	catalog *content.Catalog
	log     *slog.Logger
}

func NewPages(catalog *content.Catalog, log *slog.Logger) *Pages {
	return &Pages{catalog: catalog, log: log.With(logger.Scope("pages"))}
}

// Landing renders the sales page. Each request gets a fresh FAQ group,
// so every visitor starts with all answers collapsed.
func (p *Pages) Landing(w http.ResponseWriter, r *http.Request) {
	page, err := components.LandingPage(p.catalog)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, r, page)
}

func (p *Pages) Delivery(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, components.DeliveryPage(p.catalog))
}

func (p *Pages) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// render buffers the page so a failed render never leaves a half-written 200.
func (p *Pages) render(w http.ResponseWriter, r *http.Request, page g.Node) {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		p.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (p *Pages) fail(w http.ResponseWriter, r *http.Request, err error) {
	p.log.Error("render page", slog.String("path", r.URL.Path), logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
