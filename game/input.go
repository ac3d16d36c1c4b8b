package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/state"
)

// scrollStep is the scroll distance of one wheel notch in pixels.
const scrollStep = 40

// handleInput applies viewport changes, scrolling and the back key.
func (g *Game) handleInput(in Input) {
	if in.Width > 0 && in.Height > 0 {
		g.viewW, g.viewH = in.Width, in.Height
		g.cam.Resize(in.Height)
	}
	if in.Wheel != 0 {
		g.cam.Pan(-in.Wheel * scrollStep)
	}

	if in.Back && g.machine.Current() == state.Puzzle {
		g.machine.Set(state.Menu)
	}
}

// handleClick reacts to a released button.
func (g *Game) handleClick(e ecs.Entity) {
	if g.tree.IsBackButton(e) {
		g.machine.Set(state.Menu)
		return
	}
	if p, ok := g.tree.Puzzle(e); ok {
		g.Select(p)
	}
}

// Select records p as the selected puzzle and requests the Puzzle state.
// The page is spawned at the next frame boundary. Returns false while a
// puzzle is already open.
func (g *Game) Select(p components.Puzzle) bool {
	if g.machine.Current() == state.Puzzle {
		return false
	}
	g.selected = p
	g.hasSelection = true
	g.machine.Set(state.Puzzle)
	return true
}
