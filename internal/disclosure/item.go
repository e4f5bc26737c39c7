// Package disclosure holds the open/closed state of FAQ entries and the
// height/opacity transition that follows each toggle.
package disclosure

import "time"

// TransitionDuration is how long an open or close transition takes.
const TransitionDuration = 300 * time.Millisecond

// QAEntry is one question with its answer.
type QAEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Option configures an Item.
type Option func(*Item)

// WithClock replaces time.Now as the source of transition timestamps.
func WithClock(now func() time.Time) Option {
	return func(it *Item) {
		it.now = now
	}
}

// WithDuration overrides TransitionDuration.
func WithDuration(d time.Duration) Option {
	return func(it *Item) {
		it.duration = d
	}
}

// Item is a single disclosure. It starts closed and fully collapsed.
//
// Progress is the interpolated openness of the body: 0 is collapsed, 1 is
// the content's natural height at full opacity. A toggle always retargets
// from wherever the running transition currently is.
type Item struct {
	entry    QAEntry
	isOpen   bool
	now      func() time.Time
	duration time.Duration

	from      float64
	to        float64
	startedAt time.Time
}

// NewItem creates a closed item for entry.
func NewItem(entry QAEntry, opts ...Option) *Item {
	it := &Item{
		entry:    entry,
		now:      time.Now,
		duration: TransitionDuration,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

func (it *Item) Entry() QAEntry { return it.entry }

func (it *Item) IsOpen() bool { return it.isOpen }

func (it *Item) Duration() time.Duration { return it.duration }

// Toggle flips the item and starts a transition toward the new state.
func (it *Item) Toggle() {
	now := it.now()
	it.from = it.progressAt(now)
	it.isOpen = !it.isOpen
	it.to = 0
	if it.isOpen {
		it.to = 1
	}
	it.startedAt = now
}

// Progress returns the current openness in [0, 1].
func (it *Item) Progress() float64 {
	return it.progressAt(it.now())
}

// Transitioning reports whether a transition is still running.
func (it *Item) Transitioning() bool {
	return it.Progress() != it.to
}

// Frame is what the body region looks like at a given moment.
type Frame struct {
	Height  float64
	Opacity float64
}

// Frame scales the natural content height by the current progress.
func (it *Item) Frame(naturalHeight float64) Frame {
	p := it.Progress()
	return Frame{Height: naturalHeight * p, Opacity: p}
}

func (it *Item) progressAt(t time.Time) float64 {
	if it.from == it.to || it.duration <= 0 {
		return it.to
	}
	elapsed := t.Sub(it.startedAt)
	switch {
	case elapsed <= 0:
		return it.from
	case elapsed >= it.duration:
		return it.to
	}
	frac := float64(elapsed) / float64(it.duration)
	return it.from + (it.to-it.from)*frac
}
