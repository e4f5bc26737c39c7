package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

func Audience(a content.Audience) g.Node {
	return PageSection("", "",
		Div(
			Class("max-w-3xl mx-auto bg-white rounded-3xl shadow-xl p-8 md:p-12 border border-stone-100"),
			H2(
				Class("font-serif text-3xl font-bold text-center mb-8 flex items-center justify-center gap-3"),
				Icon("ph--heart-fill size-7 text-brand-500", ""),
				g.Text(a.Title),
			),
			Div(
				Class("space-y-4"),
				g.Group(g.Map(a.Items, func(item string) g.Node {
					return Div(
						Class("flex items-center gap-4 p-4 bg-brand-50 rounded-lg"),
						Div(
							Class("w-6 h-6 rounded-full bg-brand-500 flex items-center justify-center text-white shrink-0"),
							Icon("lucide--check size-3.5", ""),
						),
						Span(Class("font-medium text-stone-800"), g.Text(item)),
					)
				})),
			),
		),
	)
}
