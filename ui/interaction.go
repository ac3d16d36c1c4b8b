package ui

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/advent/components"
)

// Pointer is the mouse state for one frame.
type Pointer struct {
	X, Y     float32
	Down     bool // Primary button held
	Pressed  bool // Primary button went down this frame
	Released bool // Primary button released this frame
}

// Interact updates the Interaction of every visible button and returns the
// button clicked this frame. A button becomes Pressed only when the press
// starts over it and stays Pressed while the button is held over it; dragging
// a held pointer onto a button only hovers it. A click is a release over a
// button that was Pressed on the previous frame. When buttons overlap, the one
// spawned last (drawn on top) wins.
func (t *Tree) Interact(p Pointer) (ecs.Entity, bool) {
	type hit struct {
		e   ecs.Entity
		seq uint64
	}
	var clicked *hit

	query := t.buttonFilter.Query()
	for query.Next() {
		e := query.Entity()
		inter := t.interactions.Get(e)
		prev := inter.State

		if !t.Visible(e) {
			inter.State = components.InteractionNone
			continue
		}

		inside := t.layouts.Get(e).Contains(p.X, p.Y)
		switch {
		case inside && (p.Pressed || (p.Down && prev == components.InteractionPressed)):
			inter.State = components.InteractionPressed
		case inside:
			inter.State = components.InteractionHovered
		default:
			inter.State = components.InteractionNone
		}

		if inside && p.Released && prev == components.InteractionPressed {
			seq := t.seqs.Get(e).N
			if clicked == nil || seq > clicked.seq {
				clicked = &hit{e: e, seq: seq}
			}
		}
	}

	if clicked == nil {
		return ecs.Entity{}, false
	}
	return clicked.e, true
}

// Click simulates pressing and releasing over the center of e.
// The layout must be current.
func (t *Tree) Click(e ecs.Entity) (ecs.Entity, bool) {
	l := t.Layout(e)
	x, y := l.X+l.Width/2, l.Y+l.Height/2
	t.Interact(Pointer{X: x, Y: y, Down: true, Pressed: true})
	return t.Interact(Pointer{X: x, Y: y, Released: true})
}
