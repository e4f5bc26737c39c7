package disclosure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

var entry = QAEntry{Question: "Preciso cortar tudo?", Answer: "Não."}

func TestNewItem_StartsClosed(t *testing.T) {
	it := NewItem(entry)
	assert.False(t, it.IsOpen())
	assert.Equal(t, 0.0, it.Progress())
	assert.False(t, it.Transitioning())
	assert.Equal(t, entry, it.Entry())
	assert.Equal(t, TransitionDuration, it.Duration())
}

func TestItem_ToggleTwiceRestores(t *testing.T) {
	clock := newFakeClock()
	for _, initiallyOpen := range []bool{false, true} {
		it := NewItem(entry, WithClock(clock.Now))
		if initiallyOpen {
			it.Toggle()
		}
		before := it.IsOpen()
		it.Toggle()
		it.Toggle()
		assert.Equal(t, before, it.IsOpen())
	}
}

func TestItem_OpenTransition(t *testing.T) {
	clock := newFakeClock()
	it := NewItem(entry, WithClock(clock.Now))

	it.Toggle()
	require.True(t, it.IsOpen())
	assert.Equal(t, 0.0, it.Progress())
	assert.True(t, it.Transitioning())

	clock.Advance(150 * time.Millisecond)
	assert.InDelta(t, 0.5, it.Progress(), 1e-9)

	frame := it.Frame(120)
	assert.InDelta(t, 60, frame.Height, 1e-9)
	assert.InDelta(t, 0.5, frame.Opacity, 1e-9)

	clock.Advance(150 * time.Millisecond)
	assert.Equal(t, 1.0, it.Progress())
	assert.False(t, it.Transitioning())
	assert.Equal(t, Frame{Height: 120, Opacity: 1}, it.Frame(120))
}

func TestItem_ToggleMidTransitionReversesFromCurrentPosition(t *testing.T) {
	clock := newFakeClock()
	it := NewItem(entry, WithClock(clock.Now))

	it.Toggle()
	clock.Advance(150 * time.Millisecond)
	it.Toggle()

	assert.False(t, it.IsOpen())
	assert.InDelta(t, 0.5, it.Progress(), 1e-9, "reversal starts where the open transition was")

	clock.Advance(150 * time.Millisecond)
	assert.InDelta(t, 0.25, it.Progress(), 1e-9)
	assert.True(t, it.Transitioning())

	clock.Advance(150 * time.Millisecond)
	assert.Equal(t, 0.0, it.Progress())
	assert.False(t, it.Transitioning())
}

func TestItem_RapidToggles(t *testing.T) {
	clock := newFakeClock()
	it := NewItem(entry, WithClock(clock.Now))

	for i := 0; i < 7; i++ {
		it.Toggle()
		clock.Advance(10 * time.Millisecond)
	}
	assert.True(t, it.IsOpen())

	clock.Advance(TransitionDuration)
	assert.Equal(t, 1.0, it.Progress())
}

func TestItem_ZeroDuration(t *testing.T) {
	it := NewItem(entry, WithDuration(0))
	it.Toggle()
	assert.Equal(t, 1.0, it.Progress())
	assert.False(t, it.Transitioning())
}

func TestNewGroup_AllClosed(t *testing.T) {
	entries := []QAEntry{
		{Question: "A?", Answer: "1"},
		{Question: "B?", Answer: "2"},
		{Question: "C?", Answer: "3"},
		{Question: "D?", Answer: "4"},
	}
	g := NewGroup(entries)

	require.Equal(t, len(entries), g.Len())
	assert.Equal(t, []bool{false, false, false, false}, g.States())
	for i, it := range g.Items() {
		assert.Equal(t, entries[i], it.Entry())
	}
}

func TestGroup_Independence(t *testing.T) {
	entries := []QAEntry{{"A?", "1"}, {"B?", "2"}, {"C?", "3"}}

	for target := range entries {
		g := NewGroup(entries)
		require.NoError(t, g.Toggle(target))

		for i, open := range g.States() {
			assert.Equal(t, i == target, open, "toggling %d changed %d", target, i)
		}
	}
}

func TestGroup_MultipleOpen(t *testing.T) {
	g := NewGroup([]QAEntry{{"A?", "1"}, {"B?", "2"}, {"C?", "3"}})
	require.NoError(t, g.Toggle(0))
	require.NoError(t, g.Toggle(2))
	assert.Equal(t, []bool{true, false, true}, g.States())

	require.NoError(t, g.Toggle(0))
	assert.Equal(t, []bool{false, false, true}, g.States())
}

func TestGroup_ToggleOutOfRange(t *testing.T) {
	g := NewGroup([]QAEntry{{"A?", "1"}})

	assert.ErrorIs(t, g.Toggle(-1), ErrItemNotFound)
	assert.ErrorIs(t, g.Toggle(1), ErrItemNotFound)
	assert.Equal(t, []bool{false}, g.States())
}

func TestGroup_ItemsIsCopy(t *testing.T) {
	g := NewGroup([]QAEntry{{"A?", "1"}, {"B?", "2"}})
	items := g.Items()
	items[0] = nil

	it, err := g.Item(0)
	require.NoError(t, err)
	assert.NotNil(t, it)
}

func TestScenario_TwoEntries(t *testing.T) {
	g := NewGroup([]QAEntry{{Question: "A?", Answer: "1"}, {Question: "B?", Answer: "2"}})
	assert.Equal(t, []bool{false, false}, g.States())

	require.NoError(t, g.Toggle(0))
	assert.Equal(t, []bool{true, false}, g.States())

	require.NoError(t, g.Toggle(1))
	assert.Equal(t, []bool{true, true}, g.States())
}
