// Package marquee models a seamless, infinitely looping horizontal strip of
// media. The strip is built from a finite list by doubling it, and it is
// animated across exactly one source-list width per cycle, so the frame right
// before a restart and the frame right after it are identical.
package marquee

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTrack is returned when a marquee is built from zero items.
	ErrEmptyTrack = errors.New("marquee: at least one item is required")
	// ErrInvalidKind is returned for a content kind other than image or video.
	ErrInvalidKind = errors.New("marquee: invalid content kind")
)

// Kind tags a media item as a still image or a video.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindImage || k == KindVideo
}

// UnmarshalText accepts the canonical names plus the short img/vid aliases.
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "image", "img":
		*k = KindImage
	case "video", "vid":
		*k = KindVideo
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, string(text))
	}
	return nil
}

// ContentItem is one media entry of a marquee. The source URL is opaque and
// passed through untouched.
type ContentItem struct {
	Kind      Kind   `yaml:"kind"`
	SourceURL string `yaml:"src"`
}

// Track is the rendered sequence of a marquee: the source list followed by
// itself.
type Track []ContentItem

// BuildLoopTrack returns items ++ items. Both halves hold the same content in
// the same order, which is what makes the loop restart invisible.
func BuildLoopTrack(items []ContentItem) (Track, error) {
	if len(items) == 0 {
		return nil, ErrEmptyTrack
	}
	track := make(Track, 0, 2*len(items))
	track = append(track, items...)
	track = append(track, items...)
	return track, nil
}

// SourceLen is the length of the list the track was built from.
func (t Track) SourceLen() int {
	return len(t) / 2
}

// IsDuplicate reports whether index i belongs to the second, repeated half.
func (t Track) IsDuplicate(i int) bool {
	return i >= t.SourceLen()
}

// Seamless reports whether the two halves of the track are identical.
func (t Track) Seamless() bool {
	if len(t) == 0 || len(t)%2 != 0 {
		return false
	}
	n := t.SourceLen()
	for i := 0; i < n; i++ {
		if t[i] != t[i+n] {
			return false
		}
	}
	return true
}
