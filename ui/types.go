// Package ui provides a retained UI tree stored as ECS entities: spawning
// bundles, layout, pointer interaction and teardown. Drawing lives in the
// renderer package so this package stays free of window dependencies.
package ui

import (
	"image/color"

	"github.com/pthm-cable/advent/components"
)

// Theme holds UI styling constants.
type Theme struct {
	ClearColor    color.RGBA
	TextColor     color.RGBA
	MutedText     color.RGBA
	ButtonBg      color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	PanelBg       color.RGBA
	PanelBorder   color.RGBA
	Accent        color.RGBA
	ButtonRadius  float32
	StatusBarH    int32
	FontSize      int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		ClearColor:    color.RGBA{R: 15, G: 15, B: 35, A: 255},
		TextColor:     color.RGBA{R: 230, G: 230, B: 230, A: 255},
		MutedText:     color.RGBA{R: 150, G: 150, B: 160, A: 255},
		ButtonBg:      components.SRGB(0.15, 0.15, 0.15),
		ButtonHover:   color.RGBA{R: 64, G: 64, B: 64, A: 255},
		ButtonPressed: color.RGBA{R: 0, G: 153, B: 0, A: 255},
		PanelBg:       color.RGBA{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:   color.RGBA{R: 60, G: 70, B: 80, A: 255},
		Accent:        color.RGBA{R: 255, G: 255, B: 102, A: 255},
		ButtonRadius:  5,
		StatusBarH:    24,
		FontSize:      16,
	}
}
