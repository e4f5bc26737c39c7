package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

func Problem(p content.Problem) g.Node {
	return PageSection("", "bg-white",
		FadeIn(0, "",
			Div(
				Class("max-w-2xl mx-auto mb-12 rounded-2xl overflow-hidden shadow-2xl border-4 border-white transform hover:scale-[1.02] transition-transform duration-500"),
				RemoteImg(p.Image, p.ImageAlt, "w-full h-auto"),
			),

			Div(
				Class("max-w-3xl mx-auto text-center mb-16"),
				H2(Class("font-serif text-3xl md:text-5xl font-bold mb-6 text-stone-900"), g.Text(p.Title)),
				P(
					Class("text-xl text-stone-600"),
					g.Text(p.Lead),
					Br(),
					Span(Class("font-bold text-brand-600"), g.Text(p.Emphasis)),
				),
			),

			Div(
				Class("grid md:grid-cols-3 gap-8 mb-16"),
				g.Group(g.Map(p.Doubts, func(d string) g.Node {
					return Div(
						Class("bg-brand-50 p-6 rounded-xl text-center border border-brand-100"),
						Div(
							Class("w-12 h-12 mx-auto bg-white rounded-full flex items-center justify-center text-brand-500 mb-4 shadow-sm"),
							Icon("lucide--shield-check size-6", ""),
						),
						P(Class("font-medium text-stone-700"), g.Text(d)),
					)
				})),
			),

			Div(
				Class("bg-white rounded-3xl shadow-xl border border-stone-200 overflow-hidden"),
				Div(
					Class("grid md:grid-cols-2 divide-y md:divide-y-0 md:divide-x divide-stone-200"),
					comparisonPanel(p.Alone, "bg-red-50/50", "text-red-600", "lucide--clock size-6"),
					comparisonPanel(p.Method, "bg-green-50/50", "text-green-600", "lucide--check size-6"),
				),
			),
		),
	)
}

func comparisonPanel(c content.Comparison, bg, accent, icon string) g.Node {
	return Div(
		Class("p-8 md:p-12 "+bg),
		Div(
			Class("flex items-center gap-3 mb-6 font-bold text-lg "+accent),
			Icon(icon, ""),
			g.Text(c.Label),
		),
		P(Class("text-stone-600 mb-4"), g.Text(c.Text)),
		Div(
			Class("text-3xl font-bold text-stone-900"),
			g.Text(c.Result),
			g.If(c.ResultNote != "", Span(Class("text-base font-normal text-stone-500"), g.Text(" "+c.ResultNote))),
		),
	)
}
