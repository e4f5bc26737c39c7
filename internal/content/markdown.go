package content

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Renderer turns catalog copy written in markdown into sanitized HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
	}
}

var defaultRenderer = NewRenderer()

// HTML renders block markdown. On a conversion failure the source is
// returned escaped.
func (r *Renderer) HTML(src string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return html.EscapeString(src)
	}
	return string(r.policy.SanitizeBytes(buf.Bytes()))
}

// Inline renders a single paragraph without its wrapping <p>.
func (r *Renderer) Inline(src string) string {
	out := strings.TrimSpace(r.HTML(src))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}

// Markdown renders src with the default renderer.
func Markdown(src string) string {
	return defaultRenderer.HTML(src)
}

// InlineMarkdown renders one paragraph of src with the default renderer.
func InlineMarkdown(src string) string {
	return defaultRenderer.Inline(src)
}
