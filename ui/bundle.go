package ui

import (
	"image/color"

	"github.com/pthm-cable/advent/components"
)

// Bundle describes one UI entity and its subtree. Spawning a bundle creates
// the entity with the set components, then each child in order.
type Bundle struct {
	Node       components.Node
	Text       *components.Text
	Background *components.BackgroundColor
	Radius     float32
	Button     bool
	Puzzle     *components.Puzzle
	Hidden     bool

	// Markers are zero-data tags: MenuRoot, PuzzleRoot, BackButton or Title.
	Markers []any

	Children []Bundle
}

// With returns a copy of b carrying the additional markers.
func (b Bundle) With(markers ...any) Bundle {
	b.Markers = append(append([]any(nil), b.Markers...), markers...)
	return b
}

// Count returns the number of entities spawning b creates.
func (b Bundle) Count() int {
	n := 1
	for _, c := range b.Children {
		n += c.Count()
	}
	return n
}

// TextNode is a bundle for a single text leaf.
func TextNode(value string, fontSize float32, c color.RGBA) Bundle {
	return Bundle{
		Text: &components.Text{Value: value, FontSize: fontSize, Color: c},
	}
}

// Column is a centered flex column with the given gap.
func Column(gap float32, children ...Bundle) Bundle {
	return Bundle{
		Node: components.Node{
			FlexDirection: components.FlexColumn,
			AlignItems:    components.AlignCenter,
			RowGap:        gap,
		},
		Children: children,
	}
}

// ButtonNode is a fixed-size button with a centered label.
func ButtonNode(label string, width, height, fontSize float32, theme Theme) Bundle {
	return Bundle{
		Node: components.Node{
			Width:          components.Px(width),
			Height:         components.Px(height),
			JustifyContent: components.AlignCenter,
			AlignItems:     components.AlignCenter,
		},
		Button:     true,
		Background: &components.BackgroundColor{Color: theme.ButtonBg},
		Radius:     theme.ButtonRadius,
		Children:   []Bundle{TextNode(label, fontSize, theme.TextColor)},
	}
}
