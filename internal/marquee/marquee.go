package marquee

import "time"

// Marquee is one looping strip: its doubled track and its animation. A value
// is built per render and owned by the view that renders it.
type Marquee struct {
	track     Track
	direction Direction
	animation Animation
}

// New builds a marquee from at least one item and a positive cycle duration.
func New(items []ContentItem, direction Direction, cycle time.Duration) (*Marquee, error) {
	if cycle <= 0 {
		return nil, ErrInvalidDuration
	}
	track, err := BuildLoopTrack(items)
	if err != nil {
		return nil, err
	}
	return &Marquee{
		track:     track,
		direction: direction,
		animation: AnimationFor(direction, cycle),
	}, nil
}

// Track returns a copy of the rendered track.
func (m *Marquee) Track() Track {
	out := make(Track, len(m.track))
	copy(out, m.track)
	return out
}

func (m *Marquee) Direction() Direction { return m.direction }

func (m *Marquee) Animation() Animation { return m.animation }

// SourceLen is N, the number of distinct positions in the strip.
func (m *Marquee) SourceLen() int { return m.track.SourceLen() }

// OffsetAt returns the track offset, in percent, after elapsed time.
func (m *Marquee) OffsetAt(elapsed time.Duration) float64 {
	return m.animation.OffsetAt(elapsed)
}

// Layout sizes are in pixels. Every slot is itemWidth wide followed by a
// trailing gap, so the track is a whole number of equal slots and half of it
// is exactly N slots.

// TrackWidth returns the laid-out width of the whole track.
func (m *Marquee) TrackWidth(itemWidth, gap float64) float64 {
	return float64(len(m.track)) * (itemWidth + gap)
}

// ItemPosition returns the left edge of the slot at index i.
func (m *Marquee) ItemPosition(i int, itemWidth, gap float64) float64 {
	return float64(i) * (itemWidth + gap)
}

// DisplacementPx returns the distance travelled per cycle.
func (m *Marquee) DisplacementPx(itemWidth, gap float64) float64 {
	return m.animation.Displacement() / 100 * m.TrackWidth(itemWidth, gap)
}
