// Package components defines ECS components for the puzzle browser UI.
package components

import (
	"fmt"
	"image/color"

	"github.com/mlange-42/ark/ecs"
)

// Year identifies an Advent of Code event year.
type Year uint16

func (y Year) String() string {
	return fmt.Sprintf("%d", uint16(y))
}

// Day identifies a puzzle day within a year.
type Day uint16

func (d Day) String() string {
	return fmt.Sprintf("%d", uint16(d))
}

// Puzzle tags a button with the puzzle it represents.
type Puzzle struct {
	Year Year
	Day  Day
}

// String returns "year/day", e.g. "2025/1".
func (p Puzzle) String() string {
	return fmt.Sprintf("%d/%d", p.Year, p.Day)
}

// MenuRoot marks the root container of the menu tree.
type MenuRoot struct{}

// PuzzleRoot marks the root of a loaded puzzle subtree.
type PuzzleRoot struct{}

// BackButton marks a button that returns to the menu.
type BackButton struct{}

// Title marks the menu title text.
type Title struct{}

// Hidden removes an entity and its descendants from layout, drawing and interaction.
type Hidden struct{}

// Parent links a child node to its parent node.
type Parent struct {
	Entity ecs.Entity
}

// Seq is a world-wide spawn counter; siblings and roots are ordered by it.
type Seq struct {
	N uint64
}

// Text is a text leaf.
type Text struct {
	Value    string
	FontSize float32
	Color    color.RGBA
}

// Button makes a node clickable.
type Button struct{}

// BackgroundColor fills a node's rectangle.
type BackgroundColor struct {
	Color color.RGBA
}

// BorderRadius rounds a node's corners.
type BorderRadius struct {
	Radius float32
}

// InteractionState is the pointer state of a button.
type InteractionState uint8

const (
	InteractionNone InteractionState = iota
	InteractionHovered
	InteractionPressed
)

func (s InteractionState) String() string {
	switch s {
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	default:
		return "none"
	}
}

// Interaction holds the current pointer state of a button.
type Interaction struct {
	State InteractionState
}

// Layout is the absolute rectangle computed by the layout pass.
type Layout struct {
	X, Y          float32
	Width, Height float32
}

// Contains reports whether the point lies inside the rectangle.
func (l Layout) Contains(x, y float32) bool {
	return x >= l.X && x < l.X+l.Width && y >= l.Y && y < l.Y+l.Height
}

// SRGB converts float channels in [0, 1] to an opaque color.
func SRGB(r, g, b float32) color.RGBA {
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
