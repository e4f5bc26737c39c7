package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
	"github.com/transicaocapilar/website/internal/disclosure"
)

func FAQ(f content.FAQ, group *disclosure.Group) g.Node {
	return PageSection("faq", "bg-stone-50",
		Div(
			Class("max-w-2xl mx-auto"),
			H2(Class("font-serif text-3xl font-bold text-center mb-12"), g.Text(f.Title)),
			DisclosureGroup("faq", group),
		),
	)
}
