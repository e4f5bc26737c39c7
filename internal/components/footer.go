package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

func PageFooter(f content.Footer, class string) g.Node {
	return Footer(
		Class("bg-stone-900 text-stone-400 text-center text-sm "+class),
		P(g.If(f.Disclaimer != "", Class("mb-4")), g.Text(f.Copyright)),
		g.If(f.Disclaimer != "", P(g.Text(f.Disclaimer))),
	)
}
