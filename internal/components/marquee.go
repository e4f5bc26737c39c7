package components

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/transicaocapilar/website/internal/marquee"
)

// MarqueeStyle is the visual treatment of one marquee instance.
type MarqueeStyle struct {
	ID     string
	Aspect string // CSS aspect-ratio of every item, e.g. "3/4"
	Fit    string // "cover" or "contain"
	Alt    string
	Fade   string // gradient start class of the edge fades, e.g. "from-stone-100"
	Width  string // width classes of every card
	Border string
}

var nonSlug = regexp.MustCompile(`[^a-z0-9-]+`)

func (s MarqueeStyle) className() string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(s.ID), "-")
	return "marquee-" + strings.Trim(slug, "-")
}

func cssPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// marqueeCSS pins the keyframes of one track to its animation tuple. The
// track restarts on the same frame it started from, so the loop is seamless.
func marqueeCSS(class string, a marquee.Animation) string {
	return fmt.Sprintf(
		"@keyframes %[1]s{from{transform:translateX(%[2]s)}to{transform:translateX(%[3]s)}}.%[1]s{animation:%[1]s %[4]ss linear infinite}",
		class,
		cssPercent(a.StartOffset),
		cssPercent(a.EndOffset),
		strconv.FormatFloat(a.Duration.Seconds(), 'f', -1, 64),
	)
}

// LoopingMarquee renders the doubled track of m. Every slot carries the same
// trailing gap so half the track width is exactly N slots.
func LoopingMarquee(m *marquee.Marquee, style MarqueeStyle) g.Node {
	class := style.className()
	track := m.Track()
	if style.Width == "" {
		style.Width = "w-64 md:w-72"
	}
	if style.Border == "" {
		style.Border = "border-stone-200"
	}

	slots := make([]g.Node, 0, len(track))
	for i, item := range track {
		slots = append(slots, Div(
			Class("marquee-slot shrink-0 pe-6"),
			g.Attr("data-marquee-slot", strconv.Itoa(i)),
			g.If(track.IsDuplicate(i), g.Attr("aria-hidden", "true")),
			Div(
				Class(fmt.Sprintf("%s bg-white p-2 rounded-xl shadow-md border %s hover:scale-105 transition-transform duration-300 overflow-hidden", style.Width, style.Border)),
				Div(
					Class("rounded-lg overflow-hidden relative bg-stone-100"),
					g.If(style.Aspect != "", Style("aspect-ratio: "+style.Aspect)),
					marqueeMedia(item, fmt.Sprintf("%s %d", style.Alt, i%m.SourceLen()+1), style.Fit),
				),
			),
		))
	}

	return Div(
		Class("relative w-full overflow-hidden py-4"),
		g.Attr("data-marquee", style.ID),
		g.Attr("data-direction", m.Direction().String()),
		StyleEl(g.Raw(marqueeCSS(class, m.Animation()))),

		Div(Class("absolute left-0 top-0 bottom-0 w-12 md:w-32 bg-gradient-to-r "+style.Fade+" to-transparent z-10 pointer-events-none")),
		Div(Class("absolute right-0 top-0 bottom-0 w-12 md:w-32 bg-gradient-to-l "+style.Fade+" to-transparent z-10 pointer-events-none")),

		Div(
			Class("marquee-track flex w-max "+class),
			g.Group(slots),
		),
	)
}

func marqueeMedia(item marquee.ContentItem, alt, fit string) g.Node {
	if fit == "" {
		fit = "cover"
	}
	if item.Kind == marquee.KindVideo {
		return Video(
			Src(item.SourceURL),
			Class("w-full h-full object-"+fit),
			AutoPlay(),
			Muted(),
			Loop(),
			PlaysInline(),
		)
	}
	return RemoteImg(item.SourceURL, alt, "w-full h-full object-"+fit)
}
