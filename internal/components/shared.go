package components

import (
	"fmt"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon from a "set--name size-classes" string.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is a rounded tile holding an icon tinted with a palette colour.
func IconBadge(icon, color, size string) g.Node {
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 rounded-xl bg-%s-100 text-%s-600 %s", color, color, size)

	return Span(
		Class(containerClass),
		Icon(icon, ""),
	)
}

// PageSection is the padded, centred content band used by every landing block.
func PageSection(id, class string, children ...g.Node) g.Node {
	return Section(
		g.If(id != "", ID(id)),
		Class(strings.TrimSpace("py-16 md:py-24 px-4 md:px-8 max-w-7xl mx-auto "+class)),
		g.Group(children),
	)
}

// FadeIn plays the entrance animation after delay.
func FadeIn(delay time.Duration, class string, children ...g.Node) g.Node {
	return Div(
		Class(strings.TrimSpace("fade-up "+class)),
		g.If(delay > 0, Style(fmt.Sprintf("animation-delay: %dms", delay.Milliseconds()))),
		g.Group(children),
	)
}

const (
	primaryButton   = "bg-brand-600 text-white hover:bg-brand-700 hover:shadow-brand-200/50"
	secondaryButton = "bg-white text-brand-700 border-2 border-brand-200 hover:border-brand-300"
)

// ButtonLink is the call-to-action pill. Absolute hrefs open a new browsing
// context.
func ButtonLink(href string, primary bool, class string, children ...g.Node) g.Node {
	variant := primaryButton
	if !primary {
		variant = secondaryButton
	}
	external := strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")

	return A(
		Href(href),
		g.If(external, Target("_blank")),
		g.If(external, Rel("noopener noreferrer")),
		Class(strings.Join(strings.Fields(fmt.Sprintf(
			"inline-block w-full md:w-auto px-6 py-4 rounded-full font-bold text-lg transition-all duration-300 transform hover:scale-105 shadow-lg cursor-pointer text-center whitespace-normal leading-tight %s %s",
			variant, class)), " ")),
		g.Group(children),
	)
}

// RemoteImg renders an externally hosted image without sending a referrer.
func RemoteImg(src, alt, class string) g.Node {
	return Img(
		Src(src),
		Alt(alt),
		Class(class),
		g.Attr("referrerpolicy", "no-referrer"),
		g.Attr("loading", "lazy"),
	)
}

func checkItem(text, iconClass, textClass string) g.Node {
	return Li(
		Class("flex items-center gap-3 "+textClass),
		Icon(iconClass, ""),
		g.Text(text),
	)
}
