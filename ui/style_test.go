package ui

import (
	"image/color"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/advent/components"
)

func TestButtonFill(t *testing.T) {
	theme := DefaultTheme()
	base := theme.ButtonBg

	tests := []struct {
		state components.InteractionState
		want  color.RGBA
	}{
		{components.InteractionNone, base},
		{components.InteractionHovered, theme.ButtonHover},
		{components.InteractionPressed, theme.ButtonPressed},
	}
	for _, tc := range tests {
		if got := ButtonFill(theme, base, tc.state); got != tc.want {
			t.Errorf("ButtonFill(%s) = %v, want %v", tc.state, got, tc.want)
		}
	}
}

func TestRoundness(t *testing.T) {
	tests := []struct {
		radius, w, h, want float32
	}{
		{5, 50, 50, 0.2},
		{5, 160, 40, 0.25},
		{0, 50, 50, 0},
		{40, 50, 50, 1},
		{5, 0, 50, 0},
	}
	for _, tc := range tests {
		if got := Roundness(tc.radius, tc.w, tc.h); got != tc.want {
			t.Errorf("Roundness(%v, %v, %v) = %v, want %v", tc.radius, tc.w, tc.h, got, tc.want)
		}
	}
}

func TestWalkOrderAndHidden(t *testing.T) {
	tree := NewTree(ecs.NewWorld())
	theme := DefaultTheme()

	root := tree.Spawn(sampleBundle(theme))
	hidden := tree.Spawn(TextNode("hidden", 12, theme.TextColor))
	tree.SetHidden(hidden, true)

	var order []ecs.Entity
	var depths []int
	tree.Walk(func(e ecs.Entity, depth int) {
		order = append(order, e)
		depths = append(depths, depth)
	})

	// root, heading, button, label, back button, label
	if len(order) != 6 {
		t.Fatalf("visited %d nodes, want 6", len(order))
	}
	if order[0] != root || depths[0] != 0 {
		t.Errorf("root must be visited first at depth 0")
	}
	wantDepths := []int{0, 1, 1, 2, 1, 2}
	for i, d := range wantDepths {
		if depths[i] != d {
			t.Errorf("node %d depth = %d, want %d", i, depths[i], d)
		}
	}
	if !tree.IsButton(order[2]) || tree.Radius(order[2]) != theme.ButtonRadius {
		t.Error("third node should be a rounded button")
	}
	if bg, ok := tree.Background(order[2]); !ok || bg != theme.ButtonBg {
		t.Errorf("button background = %v (ok=%v)", bg, ok)
	}
}

func TestDefaultThemeButtonBackground(t *testing.T) {
	want := color.RGBA{R: 38, G: 38, B: 38, A: 255}
	if got := DefaultTheme().ButtonBg; got != want {
		t.Errorf("ButtonBg = %+v, want %+v", got, want)
	}
	if got := ButtonNode("1", 50, 50, 24, DefaultTheme()).Background.Color; got != components.SRGB(0.15, 0.15, 0.15) {
		t.Errorf("day button background = %+v, want 15%% grey", got)
	}
}
