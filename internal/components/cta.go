package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/content"
)

// Pricing is the checkout block. Every plan button is an outbound link to
// the payment provider.
func Pricing(p content.Pricing) g.Node {
	plans := make([]g.Node, len(p.Plans))
	for i, plan := range p.Plans {
		plans[i] = FadeIn(time.Duration(i)*200*time.Millisecond, "", planCard(plan))
	}

	return PageSection("pricing", "bg-gradient-to-b from-white to-brand-50",
		Div(
			Class("text-center mb-12"),
			H2(Class("font-serif text-3xl md:text-5xl font-bold mb-4"), g.Text(p.Title)),
			P(Class("text-stone-600"), g.Text(p.Subtitle)),
		),
		Div(Class("grid md:grid-cols-2 gap-8 max-w-4xl mx-auto items-center"), g.Group(plans)),
	)
}

func planCard(plan content.Plan) g.Node {
	if !plan.Highlight {
		return Div(
			Class("bg-white p-8 rounded-2xl border border-stone-200 shadow-lg hover:shadow-xl transition-shadow"),
			g.Attr("data-plan", plan.Name),
			Div(
				Class("flex items-center gap-2 text-stone-500 font-bold tracking-wider text-sm mb-4"),
				Span(Class("p-1 bg-stone-100 rounded"), g.Text(plan.Emoji)),
				g.Text(" "+plan.Name),
			),
			Div(Class("text-4xl font-bold text-stone-900 mb-2"), g.Text(plan.Price)),
			g.If(plan.PriceNote != "", P(Class("text-stone-500 text-sm mb-8"), g.Text(plan.PriceNote))),
			Ul(
				Class("space-y-3 mb-8"),
				g.Group(g.Map(plan.Features, func(f string) g.Node {
					return checkItem(f, "lucide--check size-[18px] text-brand-500", "text-stone-700")
				})),
			),
			g.If(plan.Note != "", P(Class("text-sm text-stone-500 mb-6 text-center"), g.Text(plan.Note))),
			ButtonLink(plan.CheckoutURL, false, "w-full", g.Text(plan.CTALabel)),
		)
	}

	return Div(
		Class("bg-white p-8 rounded-2xl border-2 border-brand-500 shadow-2xl relative transform md:scale-105 z-10"),
		g.Attr("data-plan", plan.Name),
		g.If(plan.Badge != "", Div(
			Class("absolute top-0 left-1/2 -translate-x-1/2 -translate-y-1/2 bg-brand-600 text-white px-4 py-1 rounded-full text-sm font-bold shadow-lg whitespace-nowrap"),
			g.Text(plan.Badge),
		)),
		Div(
			Class("flex items-center gap-2 text-brand-600 font-bold tracking-wider text-sm mb-4"),
			Span(Class("p-1 bg-brand-100 rounded"), g.Text(plan.Emoji)),
			g.Text(" "+plan.Name),
		),
		Div(
			Class("mb-6"),
			g.If(plan.OriginalPrice != "", P(Class("text-stone-400 text-sm font-medium line-through mb-1"), g.Text(plan.OriginalPrice))),
			Div(Class("text-5xl font-bold text-stone-900"), g.Text(plan.Price)),
			g.If(plan.Savings != "", P(Class("text-green-600 text-sm font-bold mt-2 bg-green-50 inline-block px-2 py-1 rounded"), g.Text(plan.Savings))),
		),
		Ul(
			Class("space-y-3 mb-8"),
			g.If(plan.HeadlineFeature != "", checkItem(plan.HeadlineFeature, "lucide--check size-[18px] text-brand-500", "text-stone-900 font-bold")),
			g.Group(g.Map(plan.Features, func(f string) g.Node {
				return checkItem(f, "lucide--gift size-[18px] text-brand-500", "text-stone-700")
			})),
		),
		ButtonLink(plan.CheckoutURL, true, "w-full flex items-center justify-center gap-2",
			g.Text(plan.CTALabel),
			Icon("lucide--arrow-right size-[18px]", ""),
		),
	)
}

func Guarantee(gu content.Guarantee) g.Node {
	return PageSection("garantia", "bg-white",
		Div(
			Class("max-w-3xl mx-auto text-center"),
			Div(
				Class("w-20 h-20 bg-stone-100 rounded-full flex items-center justify-center mx-auto mb-6 text-stone-900"),
				Icon("lucide--shield-check size-10", ""),
			),
			H2(Class("font-serif text-3xl font-bold mb-6"), g.Text(gu.Title)),
			P(
				Class("text-lg text-stone-600 mb-8 leading-relaxed [&_strong]:text-stone-900"),
				g.Raw(content.InlineMarkdown(gu.Body)),
			),
		),
	)
}
