package content

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidCatalog wraps every authoring defect found by Validate.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate reports every authoring defect at once. A catalog that fails here
// would render an empty marquee, an empty FAQ or a dead checkout link.
func (c *Catalog) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	for _, g := range []Gallery{c.Landing.Testimonials.Gallery, c.Landing.Inspiration.Gallery} {
		if g.ID == "" {
			add("gallery without id")
		}
		if len(g.Items) == 0 {
			add("gallery %q: no items", g.ID)
		}
		if g.Cycle <= 0 {
			add("gallery %q: cycle must be positive", g.ID)
		}
		for i, item := range g.Items {
			if !item.Kind.Valid() {
				add("gallery %q item %d: unknown kind %q", g.ID, i, item.Kind)
			}
			if item.SourceURL == "" {
				add("gallery %q item %d: empty src", g.ID, i)
			}
		}
	}
	if id := c.Landing.Testimonials.Gallery.ID; id != "" && id == c.Landing.Inspiration.Gallery.ID {
		add("galleries share id %q", id)
	}

	if len(c.Landing.FAQ.Entries) == 0 {
		add("faq: no entries")
	}
	for i, e := range c.Landing.FAQ.Entries {
		if e.Question == "" {
			add("faq entry %d: empty question", i)
		}
	}

	if len(c.Landing.Pricing.Plans) == 0 {
		add("pricing: no plans")
	}
	for _, p := range c.Landing.Pricing.Plans {
		if err := absoluteURL(p.CheckoutURL); err != nil {
			add("plan %q checkout: %w", p.Name, err)
		}
	}

	if len(c.Delivery.Modules) == 0 {
		add("delivery: no modules")
	}
	for _, m := range c.Delivery.Modules {
		if err := absoluteURL(m.Link); err != nil {
			add("module %q link: %w", m.Title, err)
		}
	}
	if c.Delivery.Support.URL != "" {
		if err := absoluteURL(c.Delivery.Support.URL); err != nil {
			add("support url: %w", err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
}

func absoluteURL(raw string) error {
	if raw == "" {
		return errors.New("empty url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%q is not an absolute url", raw)
	}
	return nil
}
