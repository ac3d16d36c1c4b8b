package ui

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/advent/components"
)

func TestInteractHoverPressClick(t *testing.T) {
	tree := NewTree(ecs.NewWorld())
	tree.Spawn(gridBundle(2, DefaultTheme()))
	tree.ComputeLayout(800, 600, EstimateMeasurer{})
	first, second := tree.Buttons()[0], tree.Buttons()[1]

	// Hover over the first button.
	if _, ok := tree.Interact(Pointer{X: 10, Y: 10}); ok {
		t.Error("hover must not click")
	}
	if tree.Interaction(first) != components.InteractionHovered {
		t.Errorf("first = %s, want hovered", tree.Interaction(first))
	}
	if tree.Interaction(second) != components.InteractionNone {
		t.Errorf("second = %s, want none", tree.Interaction(second))
	}

	// Press, then release over the same button.
	tree.Interact(Pointer{X: 10, Y: 10, Down: true, Pressed: true})
	if tree.Interaction(first) != components.InteractionPressed {
		t.Errorf("first = %s, want pressed", tree.Interaction(first))
	}
	clicked, ok := tree.Interact(Pointer{X: 10, Y: 10, Released: true})
	if !ok || clicked != first {
		t.Errorf("expected click on first button, got %v (ok=%v)", clicked, ok)
	}
}

func TestInteractReleaseElsewhereDoesNotClick(t *testing.T) {
	tree := NewTree(ecs.NewWorld())
	tree.Spawn(gridBundle(2, DefaultTheme()))
	tree.ComputeLayout(800, 600, EstimateMeasurer{})

	tree.Interact(Pointer{X: 10, Y: 10, Down: true, Pressed: true})
	// Drag to the second button before releasing.
	if _, ok := tree.Interact(Pointer{X: 60, Y: 10, Released: true}); ok {
		t.Error("release over a different button must not click")
	}
	// Release in empty space.
	tree.Interact(Pointer{X: 10, Y: 10, Down: true, Pressed: true})
	if _, ok := tree.Interact(Pointer{X: 500, Y: 500, Released: true}); ok {
		t.Error("release outside any button must not click")
	}
}

func TestInteractIgnoresHiddenButtons(t *testing.T) {
	tree := NewTree(ecs.NewWorld())
	grid := tree.Spawn(gridBundle(1, DefaultTheme()))
	tree.ComputeLayout(800, 600, EstimateMeasurer{})
	btn := tree.Buttons()[0]

	tree.SetHidden(grid, true)
	if _, ok := tree.Click(btn); ok {
		t.Error("hidden button must not be clickable")
	}
	if tree.Interaction(btn) != components.InteractionNone {
		t.Errorf("hidden button state = %s, want none", tree.Interaction(btn))
	}
}

func TestInteractTopmostWins(t *testing.T) {
	tree := NewTree(ecs.NewWorld())
	theme := DefaultTheme()
	tree.Spawn(ButtonNode("under", 100, 100, 16, theme))
	over := tree.Spawn(ButtonNode("over", 100, 100, 16, theme))
	tree.ComputeLayout(800, 600, EstimateMeasurer{})

	clicked, ok := tree.Click(over)
	if !ok || clicked != over {
		t.Errorf("expected the later button to win, got %v (ok=%v)", clicked, ok)
	}
}

func TestInteractDragOntoButtonDoesNotClick(t *testing.T) {
	tree := NewTree(ecs.NewWorld())
	tree.Spawn(gridBundle(2, DefaultTheme()))
	tree.ComputeLayout(800, 600, EstimateMeasurer{})
	second := tree.Buttons()[1]

	// Press in empty space, then drag onto the second button while held.
	tree.Interact(Pointer{X: 500, Y: 500, Down: true, Pressed: true})
	tree.Interact(Pointer{X: 60, Y: 10, Down: true})
	if tree.Interaction(second) != components.InteractionHovered {
		t.Errorf("second = %s, want hovered while dragged onto", tree.Interaction(second))
	}
	if _, ok := tree.Interact(Pointer{X: 60, Y: 10, Released: true}); ok {
		t.Error("release after dragging onto a button must not click")
	}
}

func TestInteractHeldPressSurvivesFrames(t *testing.T) {
	tree := NewTree(ecs.NewWorld())
	tree.Spawn(gridBundle(1, DefaultTheme()))
	tree.ComputeLayout(800, 600, EstimateMeasurer{})
	btn := tree.Buttons()[0]

	tree.Interact(Pointer{X: 10, Y: 10, Down: true, Pressed: true})
	tree.Interact(Pointer{X: 12, Y: 12, Down: true})
	if tree.Interaction(btn) != components.InteractionPressed {
		t.Errorf("held button = %s, want pressed", tree.Interaction(btn))
	}
	if clicked, ok := tree.Interact(Pointer{X: 12, Y: 12, Released: true}); !ok || clicked != btn {
		t.Errorf("expected click after a held press, got %v (ok=%v)", clicked, ok)
	}
}
