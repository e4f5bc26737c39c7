package marquee

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func images(urls ...string) []ContentItem {
	items := make([]ContentItem, 0, len(urls))
	for _, u := range urls {
		items = append(items, ContentItem{Kind: KindImage, SourceURL: u})
	}
	return items
}

func TestBuildLoopTrack_Duplicates(t *testing.T) {
	for n := 1; n <= 12; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			items := make([]ContentItem, n)
			for i := range items {
				kind := KindImage
				if i%3 == 1 {
					kind = KindVideo
				}
				items[i] = ContentItem{Kind: kind, SourceURL: fmt.Sprintf("https://cdn.example/%d", i)}
			}

			track, err := BuildLoopTrack(items)
			require.NoError(t, err)
			require.Len(t, track, 2*n)
			for i := 0; i < n; i++ {
				assert.Equal(t, track[i], track[i+n], "index %d", i)
				assert.Equal(t, items[i], track[i])
			}
			assert.True(t, track.Seamless())
			assert.Equal(t, n, track.SourceLen())
		})
	}
}

func TestBuildLoopTrack_Empty(t *testing.T) {
	_, err := BuildLoopTrack(nil)
	assert.ErrorIs(t, err, ErrEmptyTrack)

	_, err = BuildLoopTrack([]ContentItem{})
	assert.ErrorIs(t, err, ErrEmptyTrack)
}

func TestBuildLoopTrack_SingleItem(t *testing.T) {
	track, err := BuildLoopTrack(images("only"))
	require.NoError(t, err)
	assert.Equal(t, Track(images("only", "only")), track)
	assert.True(t, track.Seamless())
	assert.False(t, track.IsDuplicate(0))
	assert.True(t, track.IsDuplicate(1))
}

func TestBuildLoopTrack_DoesNotAliasInput(t *testing.T) {
	items := images("a", "b")
	track, err := BuildLoopTrack(items)
	require.NoError(t, err)

	items[0].SourceURL = "changed"
	assert.Equal(t, "a", track[0].SourceURL)
	assert.Equal(t, "a", track[2].SourceURL)
}

func TestTrack_Seamless(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  bool
	}{
		{"empty", Track{}, false},
		{"odd length", Track(images("a", "b", "a")), false},
		{"mismatched halves", Track(images("a", "b", "b", "a")), false},
		{"doubled", Track(images("a", "b", "a", "b")), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.track.Seamless())
		})
	}
}

func TestAnimationFor(t *testing.T) {
	fwd := AnimationFor(Forward, 40*time.Second)
	assert.Equal(t, Animation{StartOffset: 0, EndOffset: -50, Duration: 40 * time.Second}, fwd)

	rev := AnimationFor(Reverse, 45*time.Second)
	assert.Equal(t, Animation{StartOffset: -50, EndOffset: 0, Duration: 45 * time.Second}, rev)

	assert.Equal(t, 50.0, fwd.Displacement())
	assert.Equal(t, 50.0, rev.Displacement())
}

func TestAnimation_OffsetAt(t *testing.T) {
	cycle := 40 * time.Second
	fwd := AnimationFor(Forward, cycle)
	rev := AnimationFor(Reverse, cycle)

	tests := []struct {
		elapsed time.Duration
		fwd     float64
		rev     float64
	}{
		{0, 0, -50},
		{10 * time.Second, -12.5, -37.5},
		{20 * time.Second, -25, -25},
		{30 * time.Second, -37.5, -12.5},
		{cycle, 0, -50},
		{cycle + 10*time.Second, -12.5, -37.5},
		{5 * cycle, 0, -50},
	}
	for _, tt := range tests {
		t.Run(tt.elapsed.String(), func(t *testing.T) {
			assert.InDelta(t, tt.fwd, fwd.OffsetAt(tt.elapsed), 1e-9)
			assert.InDelta(t, tt.rev, rev.OffsetAt(tt.elapsed), 1e-9)
		})
	}
}

func TestAnimation_OffsetApproachesEndBeforeRestart(t *testing.T) {
	a := AnimationFor(Forward, time.Second)
	before := a.OffsetAt(time.Second - time.Nanosecond)
	after := a.OffsetAt(time.Second)

	assert.InDelta(t, HalfTrack, before, 1e-6)
	assert.Equal(t, a.StartOffset, after)
}

func TestAnimation_ZeroDuration(t *testing.T) {
	a := Animation{StartOffset: -50, EndOffset: 0}
	assert.Equal(t, -50.0, a.OffsetAt(time.Hour))
}

func TestNew(t *testing.T) {
	_, err := New(nil, Forward, time.Second)
	assert.ErrorIs(t, err, ErrEmptyTrack)

	_, err = New(images("a"), Forward, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	m, err := New(images("a", "b", "c"), Reverse, 45*time.Second)
	require.NoError(t, err)
	assert.Equal(t, Reverse, m.Direction())
	assert.Equal(t, 3, m.SourceLen())
	assert.Len(t, m.Track(), 6)
	assert.Equal(t, -50.0, m.Animation().StartOffset)
}

func TestMarquee_TrackIsCopy(t *testing.T) {
	m, err := New(images("a", "b"), Forward, time.Second)
	require.NoError(t, err)

	tr := m.Track()
	tr[0].SourceURL = "mutated"
	assert.Equal(t, "a", m.Track()[0].SourceURL)
}

func TestMarquee_DisplacementIsHalfTrack(t *testing.T) {
	widths := []float64{1, 64, 256, 320, 333.3}
	gaps := []float64{0, 8, 24}

	for n := 1; n <= 10; n++ {
		items := make([]ContentItem, n)
		for i := range items {
			items[i] = ContentItem{Kind: KindImage, SourceURL: fmt.Sprint(i)}
		}
		m, err := New(items, Forward, time.Second)
		require.NoError(t, err)

		for _, w := range widths {
			for _, gap := range gaps {
				total := m.TrackWidth(w, gap)
				disp := m.DisplacementPx(w, gap)
				assert.InDelta(t, total/2, disp, 1e-9, "n=%d w=%v gap=%v", n, w, gap)
				// element N ends up exactly where element 0 started
				assert.InDelta(t, m.ItemPosition(n, w, gap)-disp, m.ItemPosition(0, w, gap), 1e-9)
			}
		}
	}
}

func TestScenario_TwoImages(t *testing.T) {
	m, err := New(images("x", "y"), Forward, 40*time.Second)
	require.NoError(t, err)

	var urls []string
	for _, item := range m.Track() {
		urls = append(urls, item.SourceURL)
	}
	assert.Equal(t, []string{"x", "y", "x", "y"}, urls)
	assert.Equal(t, m.OffsetAt(0), m.OffsetAt(40*time.Second))
}

func TestKind_UnmarshalYAML(t *testing.T) {
	var items []ContentItem
	src := `
- kind: img
  src: a.jpg
- kind: vid
  src: b.mp4
- kind: image
  src: c.png
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &items))
	assert.Equal(t, []ContentItem{
		{Kind: KindImage, SourceURL: "a.jpg"},
		{Kind: KindVideo, SourceURL: "b.mp4"},
		{Kind: KindImage, SourceURL: "c.png"},
	}, items)

	err := yaml.Unmarshal([]byte("- kind: gif\n  src: d.gif\n"), &items)
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestDirection_Text(t *testing.T) {
	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("reverse")))
	assert.Equal(t, Reverse, d)
	require.NoError(t, d.UnmarshalText([]byte("Forward")))
	assert.Equal(t, Forward, d)
	assert.Error(t, d.UnmarshalText([]byte("sideways")))

	b, err := Reverse.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "reverse", string(b))
}
