package ui

import (
	"image/color"

	"github.com/pthm-cable/advent/components"
)

// ButtonFill returns the fill for a button in the given pointer state.
// Idle buttons keep their own background.
func ButtonFill(theme Theme, base color.RGBA, state components.InteractionState) color.RGBA {
	switch state {
	case components.InteractionPressed:
		return theme.ButtonPressed
	case components.InteractionHovered:
		return theme.ButtonHover
	default:
		return base
	}
}

// Roundness converts a corner radius in pixels to the 0..1 fraction of the
// shorter side used by rounded-rectangle drawing.
func Roundness(radius, width, height float32) float32 {
	short := width
	if height < short {
		short = height
	}
	if radius <= 0 || short <= 0 {
		return 0
	}
	r := 2 * radius / short
	if r > 1 {
		return 1
	}
	return r
}
