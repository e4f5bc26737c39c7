package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

const moduleStagger = 100 * time.Millisecond

// DeliveryPage is the post-purchase page listing every unlocked module.
func DeliveryPage(c *content.Catalog) g.Node {
	d := c.Delivery

	cards := make([]g.Node, len(d.Modules))
	for i, m := range d.Modules {
		cards[i] = FadeIn(time.Duration(i)*moduleStagger, "", moduleCard(m, d.CTALabel))
	}

	return Layout(
		PageConfig{
			Title:       d.Title + " | " + c.Site.Title,
			Description: d.Subtitle,
		},
		DeliveryHeader(d),
		Main(
			Class("max-w-6xl mx-auto px-4 md:px-8 py-12 md:py-16"),
			Div(Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6 md:gap-8"), g.Group(cards)),
			supportBox(d.Support),
		),
		PageFooter(d.Footer, "py-8 mt-12"),
	)
}

func moduleCard(m content.DeliveryModule, label string) g.Node {
	return Div(
		Class("bg-white rounded-2xl border border-stone-200 shadow-md hover:shadow-xl transition-all duration-300 flex flex-col overflow-hidden group h-full"),
		g.Attr("data-module", m.Title),
		Div(
			Class("p-8 flex flex-col flex-grow"),
			Div(
				Class("mb-6 transition-transform group-hover:scale-110 duration-300 w-16 h-16"),
				IconBadge(m.Icon+" size-8", m.Color, "w-16 h-16 rounded-2xl"),
			),
			H3(Class("font-serif text-xl font-bold text-stone-900 mb-3"), g.Text(m.Title)),
			P(Class("text-stone-600 mb-8 flex-grow"), g.Text(m.Description)),
			A(
				Href(m.Link),
				Target("_blank"),
				Rel("noopener noreferrer"),
				Class(fmt.Sprintf("w-full py-3 px-6 rounded-xl text-white font-bold text-center flex items-center justify-center gap-2 transition-colors shadow-lg bg-%[1]s-600 hover:bg-%[1]s-700", m.Color)),
				g.Text(label),
				Icon("lucide--external-link size-[18px]", ""),
			),
		),
	)
}

func supportBox(s content.Support) g.Node {
	action := Button(Type("button"), Class("text-brand-600 font-bold hover:underline"), g.Text(s.Label))
	if s.URL != "" {
		action = A(Href(s.URL), Target("_blank"), Rel("noopener noreferrer"), Class("text-brand-600 font-bold hover:underline"), g.Text(s.Label))
	}

	return FadeIn(600*time.Millisecond, "mt-16 bg-white rounded-3xl p-8 md:p-12 text-center border border-stone-200 shadow-lg max-w-3xl mx-auto",
		H3(Class("font-serif text-2xl font-bold mb-4"), g.Text(s.Title)),
		P(Class("text-stone-600 mb-8"), g.Text(s.Text)),
		action,
	)
}
