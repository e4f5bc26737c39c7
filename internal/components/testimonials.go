package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
	"github.com/transicaocapilar/website/internal/marquee"
)

func galleryStyle(gallery content.Gallery, width, border string) MarqueeStyle {
	return MarqueeStyle{
		ID:     gallery.ID,
		Aspect: gallery.Aspect,
		Fit:    gallery.Fit,
		Alt:    gallery.Alt,
		Fade:   gallery.Fade,
		Width:  width,
		Border: border,
	}
}

func Testimonials(t content.Testimonials, gallery *marquee.Marquee) g.Node {
	quotes := make([]g.Node, len(t.Quotes))
	for i, q := range t.Quotes {
		quotes[i] = FadeIn(time.Duration(i)*100*time.Millisecond, "",
			Div(
				Class("bg-white p-8 rounded-2xl shadow-sm h-full flex flex-col"),
				Div(
					Class("flex gap-1 text-yellow-400 mb-4"),
					g.Group(g.Map([]int{1, 2, 3, 4, 5}, func(int) g.Node {
						return Icon("ph--star-fill size-4", "")
					})),
				),
				P(Class("text-stone-600 italic flex-grow"), g.Text("\""+q.Text+"\"")),
				Div(
					Class("mt-6 flex items-center gap-3"),
					Div(
						Class("w-10 h-10 bg-stone-200 rounded-full overflow-hidden"),
						RemoteImg(q.Avatar, "Aluna", "w-full h-full object-cover"),
					),
					Div(Class("text-sm font-bold text-stone-900"), g.Text(t.Author)),
				),
			),
		)
	}

	return PageSection("depoimentos", "bg-stone-100 overflow-hidden",
		Div(
			Class("text-center mb-12"),
			H2(Class("font-serif text-3xl md:text-4xl font-bold mb-4"), g.Text(t.Title)),
		),
		Div(Class("grid md:grid-cols-3 gap-6 mb-16"), g.Group(quotes)),
		LoopingMarquee(gallery, galleryStyle(t.Gallery, "w-64 md:w-80", "border-stone-200")),
	)
}

func Inspiration(in content.Inspiration, gallery *marquee.Marquee) g.Node {
	return PageSection("inspiracao", "bg-brand-50 overflow-hidden",
		Div(
			Class("text-center mb-12"),
			H2(Class("font-serif text-3xl md:text-4xl font-bold mb-4 text-brand-800"), g.Text(in.Title)),
			P(Class("text-stone-600"), g.Text(in.Subtitle)),
		),
		LoopingMarquee(gallery, galleryStyle(in.Gallery, "w-64 md:w-72", "border-brand-100")),
	)
}
