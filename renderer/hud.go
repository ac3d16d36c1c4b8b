package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/advent/game"
	"github.com/pthm-cable/advent/ui"
)

// HUDData holds all the data needed to render the overlay.
type HUDData struct {
	Status       game.Status
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the debug overlay.
type HUD struct {
	theme ui.Theme
}

// NewHUD creates a new HUD renderer.
func NewHUD(theme ui.Theme) *HUD {
	return &HUD{theme: theme}
}

// Draw renders the overlay panel in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	s := data.Status
	x, y := int32(10), int32(10)
	size := h.theme.FontSize

	rl.DrawRectangle(x-5, y-5, 260, 70, h.theme.PanelBg)
	rl.DrawRectangleLines(x-5, y-5, 260, 70, h.theme.PanelBorder)

	rl.DrawText(fmt.Sprintf("State: %s", s.State), x, y, size, h.theme.TextColor)
	y += size + 4

	puzzle := "-"
	if s.Puzzle != "" {
		puzzle = s.Puzzle
	}
	rl.DrawText(fmt.Sprintf("Puzzle: %s | Scroll: %.0f", puzzle, s.Scroll), x, y, size, h.theme.MutedText)
	y += size + 4

	rl.DrawText(
		fmt.Sprintf("Frame: %d | Entities: %d | FPS: %d", s.Frame, s.Entities, rl.GetFPS()),
		x, y, size-2, h.theme.MutedText,
	)
}

// DrawControls renders the control legend above the given baseline.
func (h *HUD) DrawControls(baseline int32, controls string) {
	rl.DrawText(controls, 10, baseline-20, 14, h.theme.MutedText)
}
