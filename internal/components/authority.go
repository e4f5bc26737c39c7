package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

func Authority(a content.Authority) g.Node {
	return PageSection("especialista", "",
		Div(
			Class("bg-white rounded-3xl overflow-hidden shadow-2xl border border-stone-100"),
			Div(
				Class("grid md:grid-cols-2 items-center"),
				Div(
					Class("bg-stone-200 relative"),
					RemoteImg(a.Photo, a.PhotoAlt, "w-full h-auto object-contain md:object-cover"),
				),
				Div(
					Class("p-8 md:p-16 flex flex-col justify-center"),
					Span(Class("text-brand-600 font-bold tracking-wider text-sm mb-2"), g.Text(a.Label)),
					H2(Class("font-serif text-3xl md:text-4xl font-bold mb-6"), g.Text(a.Title)),
					Div(
						Class("space-y-4 text-stone-600 leading-relaxed [&_strong]:text-stone-900"),
						g.Group(g.Map(a.Paragraphs, func(p string) g.Node {
							return g.Raw(content.Markdown(p))
						})),
					),
				),
			),
		),
	)
}
