package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

// DeliveryHeader is the banner confirming the purchase.
func DeliveryHeader(d content.Delivery) g.Node {
	return Header(
		Class("bg-white border-b border-stone-200 py-8 px-4 md:px-8 text-center shadow-sm"),
		Div(
			Class("max-w-4xl mx-auto fade-down"),
			Span(
				Class("inline-block py-1 px-3 rounded-full bg-green-100 text-green-700 text-sm font-bold tracking-wide mb-4"),
				g.Text(d.Badge),
			),
			H1(Class("font-serif text-3xl md:text-4xl font-bold text-stone-900 mb-2"), g.Text(d.Title)),
			P(Class("text-stone-600 text-lg"), g.Text(d.Subtitle)),
		),
	)
}
