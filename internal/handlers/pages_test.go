package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transicaocapilar/website/internal/content"
)

func newPages(t *testing.T) (*Pages, *content.Catalog) {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	return NewPages(c, slog.New(slog.NewTextHandler(io.Discard, nil))), c
}

func TestPages_Landing(t *testing.T) {
	p, c := newPages(t)

	rec := httptest.NewRecorder()
	p.Landing(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, c.Landing.Hero.Headline)
	assert.NotContains(t, body, `data-open="true"`)
}

func TestPages_Landing_FreshStatePerRequest(t *testing.T) {
	p, _ := newPages(t)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		p.Landing(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, strings.Count(rec.Body.String(), `data-open="false"`))
	}
}

func TestPages_Landing_BrokenGallery(t *testing.T) {
	p, c := newPages(t)
	c.Landing.Testimonials.Gallery.Items = nil

	rec := httptest.NewRecorder()
	p.Landing(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestPages_Delivery(t *testing.T) {
	p, c := newPages(t)

	rec := httptest.NewRecorder()
	p.Delivery(rec, httptest.NewRequest(http.MethodGet, "/entregavel", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, c.Delivery.Title)
	for _, m := range c.Delivery.Modules {
		assert.Contains(t, body, m.Link)
	}
}

func TestPages_Health(t *testing.T) {
	p, _ := newPages(t)

	rec := httptest.NewRecorder()
	p.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
