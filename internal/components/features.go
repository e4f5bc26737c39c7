package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

// Deliverables lists what the buyer receives: the main guide with its topics
// followed by the companion materials.
func Deliverables(d content.Deliverables) g.Node {
	cards := make([]g.Node, 0, len(d.Items)+1)
	cards = append(cards, FadeIn(0, "col-span-1 md:col-span-2 lg:col-span-1",
		Div(
			Class("bg-white p-8 rounded-2xl shadow-md border-t-4 border-"+d.Main.Color+"-500 h-full"),
			Div(Class("mb-6"), IconBadge(d.Main.Icon+" size-6", d.Main.Color, "w-12 h-12")),
			H3(Class("font-serif text-xl font-bold mb-4"), g.Text(d.Main.Title)),
			Ul(
				Class("space-y-3"),
				g.Group(g.Map(d.Main.Topics, func(topic string) g.Node {
					return checkItem(topic, "lucide--check size-4 text-green-500 shrink-0", "text-stone-600 text-sm")
				})),
			),
		),
	))

	for i, item := range d.Items {
		cards = append(cards, FadeIn(time.Duration(i+1)*100*time.Millisecond, "",
			Div(
				Class("bg-white p-8 rounded-2xl shadow-md border-t-4 border-"+item.Color+"-500 h-full"),
				Div(Class("mb-6"), IconBadge(item.Icon+" size-6", item.Color, "w-12 h-12")),
				H3(Class("font-serif text-xl font-bold mb-4"), g.Text(item.Title)),
				P(Class("text-stone-600"), g.Text(item.Description)),
			),
		))
	}

	return PageSection("conteudo", "bg-brand-50",
		Div(
			Class("text-center mb-16"),
			H2(Class("font-serif text-3xl md:text-5xl font-bold mb-4"), g.Text(d.Title)),
			P(Class("text-stone-600"), g.Text(d.Subtitle)),
		),
		Div(Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Group(cards)),
	)
}
