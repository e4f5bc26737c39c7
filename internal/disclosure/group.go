package disclosure

import (
	"errors"
	"fmt"
)

// ErrItemNotFound is returned for an index outside the group.
var ErrItemNotFound = errors.New("disclosure: item not found")

// Group is an ordered list of independent items. Opening one never closes
// another.
type Group struct {
	items []*Item
}

// NewGroup creates one closed item per entry, in order. The options apply to
// every item.
func NewGroup(entries []QAEntry, opts ...Option) *Group {
	items := make([]*Item, len(entries))
	for i, e := range entries {
		items[i] = NewItem(e, opts...)
	}
	return &Group{items: items}
}

func (g *Group) Len() int { return len(g.items) }

// Item returns the item at index i.
func (g *Group) Item(i int) (*Item, error) {
	if i < 0 || i >= len(g.items) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrItemNotFound, i, len(g.items))
	}
	return g.items[i], nil
}

// Items returns the items in order.
func (g *Group) Items() []*Item {
	out := make([]*Item, len(g.items))
	copy(out, g.items)
	return out
}

// Toggle flips the item at index i and leaves the others alone.
func (g *Group) Toggle(i int) error {
	it, err := g.Item(i)
	if err != nil {
		return err
	}
	it.Toggle()
	return nil
}

// States returns the open state of every item, in order.
func (g *Group) States() []bool {
	states := make([]bool, len(g.items))
	for i, it := range g.items {
		states[i] = it.IsOpen()
	}
	return states
}
