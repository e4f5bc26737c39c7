package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/disclosure"
)

// DisclosureItem renders one FAQ entry in the state it currently holds. The
// static disclosure script flips data-open in the browser and the CSS
// transition on the body does the height/opacity interpolation.
func DisclosureItem(id string, it *disclosure.Item) g.Node {
	open := strconv.FormatBool(it.IsOpen())
	entry := it.Entry()
	bodyID := id + "-body"

	return Div(
		ID(id),
		Class("disclosure border-b border-brand-100 last:border-0"),
		g.Attr("data-disclosure", ""),
		g.Attr("data-open", open),
		Style(fmt.Sprintf("--disclosure-duration: %dms", it.Duration().Milliseconds())),

		Button(
			Type("button"),
			Class("w-full py-4 flex justify-between items-center text-left focus:outline-none cursor-pointer"),
			g.Attr("data-disclosure-toggle", ""),
			g.Attr("aria-expanded", open),
			g.Attr("aria-controls", bodyID),
			Span(Class("font-serif font-semibold text-lg text-stone-800"), g.Text(entry.Question)),
			Span(Class("disclosure-chevron"), Icon("lucide--chevron-down size-6", "")),
		),

		Div(
			ID(bodyID),
			Class("disclosure-body"),
			g.Attr("role", "region"),
			Div(
				Class("overflow-hidden"),
				P(Class("pb-4 text-stone-600 leading-relaxed"), g.Text(entry.Answer)),
			),
		),
	)
}

// DisclosureGroup renders every item of group independently.
func DisclosureGroup(idPrefix string, group *disclosure.Group) g.Node {
	items := group.Items()
	nodes := make([]g.Node, len(items))
	for i, it := range items {
		nodes[i] = DisclosureItem(fmt.Sprintf("%s-%d", idPrefix, i), it)
	}
	return Div(Class("space-y-2"), g.Group(nodes))
}
