package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

func PainPoints(p content.PainPoints) g.Node {
	return Div(
		Class("bg-stone-900 text-stone-200"),
		PageSection("", "",
			Div(
				Class("grid md:grid-cols-2 gap-12 items-center"),

				FadeIn(0, "",
					H2(Class("font-serif text-3xl md:text-4xl text-white mb-8"), g.Text(p.Title)),
					Ul(
						Class("space-y-4 text-lg"),
						g.Group(g.Map(p.Symptoms, func(s string) g.Node {
							return Li(
								Class("flex items-center gap-3 text-stone-300"),
								Span(Class("w-2 h-2 rounded-full bg-red-500")),
								g.Text(s),
							)
						})),
					),
					Div(
						Class("mt-8 space-y-6 border-l-2 border-stone-700 pl-6 italic text-stone-400"),
						g.Group(g.Map(p.Attempts, func(a content.Attempt) g.Node {
							return P(
								g.Text(a.Text+" "),
								Span(Class("text-red-400 font-bold"), g.Text(a.Outcome)),
							)
						})),
					),
				),

				FadeIn(200*time.Millisecond, "",
					Div(
						Class("bg-stone-800 p-8 rounded-2xl border border-stone-700 relative"),
						Div(
							Class("absolute -top-4 -left-4 bg-red-500 text-white px-4 py-1 rounded-full text-sm font-bold"),
							g.Text(p.Callout),
						),
						Div(
							Class("space-y-6 font-serif text-xl text-center"),
							g.Group(g.Map(p.Quotes, func(q string) g.Node {
								return P(g.Text(q))
							})),
						),
						Div(
							Class("mt-8 pt-8 border-t border-stone-700 text-center"),
							P(Class("text-stone-400 text-sm mb-2"), g.Text(p.InnerLead)),
							P(Class("text-2xl font-bold text-white"), g.Text(p.InnerQuestion)),
						),
					),
				),
			),
		),
	)
}
