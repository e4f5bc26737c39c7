package marquee

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidDuration is returned for a non-positive cycle duration.
var ErrInvalidDuration = errors.New("marquee: cycle duration must be positive")

// HalfTrack is the offset, in percent of the track width, that lines element
// N up exactly where element 0 started.
const HalfTrack = -50.0

// Direction selects which way the strip moves.
type Direction int

const (
	// Forward moves the strip right-to-left.
	Forward Direction = iota
	// Reverse moves the strip left-to-right.
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// UnmarshalText parses "forward" or "reverse".
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "forward", "":
		*d = Forward
	case "reverse":
		*d = Reverse
	default:
		return fmt.Errorf("marquee: unknown direction %q", string(text))
	}
	return nil
}

// MarshalText renders the direction name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Animation is the pinned position animation of a marquee track. Offsets are
// percentages of the full track width; the animation runs linearly from
// StartOffset to EndOffset over Duration and repeats forever.
type Animation struct {
	StartOffset float64
	EndOffset   float64
	Duration    time.Duration
}

// AnimationFor pins the offsets for a direction.
func AnimationFor(d Direction, cycle time.Duration) Animation {
	if d == Reverse {
		return Animation{StartOffset: HalfTrack, EndOffset: 0, Duration: cycle}
	}
	return Animation{StartOffset: 0, EndOffset: HalfTrack, Duration: cycle}
}

// Displacement is the distance travelled per cycle, in percent of the track.
func (a Animation) Displacement() float64 {
	return math.Abs(a.EndOffset - a.StartOffset)
}

// OffsetAt returns the offset after elapsed time. The animation wraps at
// every multiple of Duration, where the offset equals StartOffset again.
func (a Animation) OffsetAt(elapsed time.Duration) float64 {
	if a.Duration <= 0 {
		return a.StartOffset
	}
	phase := elapsed % a.Duration
	if phase < 0 {
		phase += a.Duration
	}
	frac := float64(phase) / float64(a.Duration)
	return a.StartOffset + (a.EndOffset-a.StartOffset)*frac
}
