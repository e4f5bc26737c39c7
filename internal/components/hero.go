package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

func Hero(hero content.Hero, avatars []string) g.Node {
	if len(avatars) > 3 {
		avatars = avatars[:3]
	}

	return Div(
		Class("relative bg-gradient-to-b from-brand-50 to-white overflow-hidden"),
		ID("hero"),

		Div(
			Class("absolute top-0 left-0 w-full h-full overflow-hidden opacity-30 pointer-events-none"),
			Div(Class("absolute -top-[20%] -right-[10%] w-[50%] h-[50%] rounded-full bg-brand-200 blur-[100px]")),
			Div(Class("absolute top-[40%] -left-[10%] w-[40%] h-[40%] rounded-full bg-orange-100 blur-[100px]")),
		),

		PageSection("", "relative pt-12 pb-20 md:pt-20 md:pb-32 text-center",
			FadeIn(0, "",
				Div(
					Class("mb-8"),
					Span(
						Class("inline-block py-3 px-6 rounded-full bg-brand-600 text-white text-base md:text-xl font-bold tracking-widest shadow-xl shadow-brand-200 transform hover:scale-105 transition-transform duration-300 border-2 border-white/20"),
						g.Text(hero.Badge),
					),
				),

				H1(
					Class("font-serif text-4xl md:text-6xl lg:text-7xl font-bold text-stone-900 leading-tight mb-6"),
					g.Text(hero.Headline),
					Br(),
					Span(Class("text-brand-600 italic"), g.Text(hero.HeadlineAccent)),
				),

				P(
					Class("text-lg md:text-xl text-stone-600 max-w-2xl mx-auto mb-10 leading-relaxed"),
					g.Text(hero.Subheadline),
				),

				Div(
					Class("flex flex-col md:flex-row gap-4 justify-center items-center mb-12"),
					ButtonLink("#pricing", true, "", g.Text(hero.CTALabel)),
				),

				Div(
					Class("relative mx-auto max-w-4xl mt-8 p-4 bg-white rounded-2xl shadow-2xl border border-stone-100 transform rotate-1 hover:rotate-0 transition-transform duration-500"),
					Div(
						Class("w-full bg-transparent rounded-lg flex items-center justify-center overflow-hidden relative"),
						RemoteImg(hero.MockupImage, hero.MockupAlt, "w-full h-auto max-h-[500px] object-contain"),
					),
					g.If(len(avatars) > 0, Div(
						Class("absolute -bottom-6 -right-6 bg-white p-4 rounded-xl shadow-xl border border-stone-100 hidden md:block"),
						Div(
							Class("flex items-center gap-2"),
							Div(
								Class("flex -space-x-3"),
								g.Group(g.Map(avatars, func(src string) g.Node {
									return Div(
										Class("w-10 h-10 rounded-full border-2 border-white overflow-hidden"),
										RemoteImg(src, "Aluna", "w-full h-full object-cover"),
									)
								})),
							),
							Div(Class("text-xs font-semibold text-stone-600 pl-2"), g.Text(hero.SocialProof)),
						),
					)),
				),
			),
		),
	)
}
