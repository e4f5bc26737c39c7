package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

func Bonuses(b content.Bonuses) g.Node {
	cards := make([]g.Node, len(b.Items))
	for i, bonus := range b.Items {
		cards[i] = FadeIn(time.Duration(i)*100*time.Millisecond, "", bonusCard(bonus))
	}

	return PageSection("bonus", "bg-white",
		Div(
			Class("text-center mb-16"),
			Span(
				Class("bg-brand-100 text-brand-700 px-4 py-1 rounded-full text-sm font-bold tracking-wider uppercase mb-4 inline-block"),
				g.Text(b.Badge),
			),
			H2(
				Class("font-serif text-3xl md:text-5xl font-bold text-stone-900"),
				g.Text(b.Title+" "),
				Span(Class("text-brand-600"), g.Text(b.TitleAccent)),
			),
			P(Class("mt-4 text-stone-600 text-lg"), g.Text(b.Subtitle)),
		),
		Div(Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8 max-w-6xl mx-auto"), g.Group(cards)),
	)
}

func bonusCard(bonus content.Bonus) g.Node {
	return Div(
		Class("bg-white rounded-2xl border border-stone-100 shadow-lg overflow-hidden hover:shadow-xl hover:border-brand-200 transition-all duration-300 h-full flex flex-col group"),
		Div(
			Class("aspect-square w-full bg-stone-50 relative overflow-hidden p-4 flex items-center justify-center"),
			RemoteImg(bonus.Image, bonus.Title, "w-full h-full object-contain group-hover:scale-105 transition-transform duration-500"),
			Div(
				Class("absolute top-3 right-3 bg-green-500 text-xs font-bold px-3 py-1 rounded-full text-white shadow-md z-10"),
				g.Text("GRÁTIS"),
			),
		),
		Div(
			Class("p-6 flex flex-col flex-grow"),
			H4(Class("font-serif font-bold text-xl mb-2 text-stone-900"), g.Text(bonus.Title)),
			P(Class("text-stone-500 text-sm mb-4 flex-grow"), g.Text(bonus.Description)),
			Div(
				Class("pt-4 border-t border-stone-100"),
				P(Class("text-xs text-stone-400 uppercase font-bold"), g.Text("Valor separado:")),
				Div(
					Class("flex items-baseline gap-2"),
					Span(Class("text-stone-400 line-through text-sm"), g.Text(bonus.Value)),
					Span(Class("text-green-600 font-bold"), g.Text("GRÁTIS HOJE")),
				),
			),
		),
	)
}
