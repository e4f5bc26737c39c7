package components

import (
	g "maragu.dev/gomponents"

	"github.com/transicaocapilar/website/internal/content"
	"github.com/transicaocapilar/website/internal/disclosure"
)

// LandingPage assembles the sales funnel. Marquees and the FAQ group are
// created here, once per render, and belong to this page view only.
func LandingPage(c *content.Catalog) (g.Node, error) {
	l := c.Landing

	testimonials, err := l.Testimonials.Gallery.Marquee()
	if err != nil {
		return nil, err
	}
	inspiration, err := l.Inspiration.Gallery.Marquee()
	if err != nil {
		return nil, err
	}
	faq := disclosure.NewGroup(l.FAQ.Entries)

	avatars := make([]string, 0, 3)
	for _, item := range l.Testimonials.Gallery.Items {
		if len(avatars) == cap(avatars) {
			break
		}
		avatars = append(avatars, item.SourceURL)
	}

	return Layout(
		PageConfig{
			Title:       c.Site.Title,
			Description: c.Site.Description,
			OGImage:     c.Site.OGImage,
			BodyClass:   "min-h-screen bg-stone-50 font-sans text-stone-800 selection:bg-brand-200 selection:text-brand-900",
		},
		Hero(l.Hero, avatars),
		PainPoints(l.PainPoints),
		Problem(l.Problem),
		Testimonials(l.Testimonials, testimonials),
		Inspiration(l.Inspiration, inspiration),
		Authority(l.Authority),
		Deliverables(l.Deliverables),
		Bonuses(l.Bonuses),
		Audience(l.Audience),
		Pricing(l.Pricing),
		Guarantee(l.Guarantee),
		FAQ(l.FAQ, faq),
		PageFooter(l.Footer, "py-12"),
	), nil
}
