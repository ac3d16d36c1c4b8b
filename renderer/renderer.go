// Package renderer draws the UI tree with raylib. It is the only package that
// talks to the window.
package renderer

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/advent/game"
	"github.com/pthm-cable/advent/ui"
)

// roundedSegments is the corner tessellation for rounded rectangles.
const roundedSegments = 8

// Measurer sizes text with raylib's default font.
type Measurer struct{}

// MeasureText implements ui.TextMeasurer.
func (Measurer) MeasureText(text string, fontSize float32) (float32, float32) {
	return float32(rl.MeasureText(text, int32(fontSize))), fontSize
}

// Renderer draws a game frame: the UI tree, the overlay and the status bar.
// It implements game.Drawer.
type Renderer struct {
	Theme   ui.Theme
	hud     *HUD
	showHUD bool
}

// New creates a renderer with the given theme.
func New(theme ui.Theme) *Renderer {
	return &Renderer{
		Theme: theme,
		hud:   NewHUD(theme),
	}
}

// Draw renders one frame.
func (r *Renderer) Draw(tree *ui.Tree, status game.Status) {
	rl.BeginDrawing()
	rl.ClearBackground(r.Theme.ClearColor)

	tree.Walk(func(e ecs.Entity, _ int) {
		r.drawNode(tree, e)
	})

	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if r.showHUD {
		r.hud.Draw(HUDData{Status: status, ScreenWidth: w, ScreenHeight: h})
		r.hud.DrawControls(h-r.Theme.StatusBarH, "[Esc] Back  [F3] Overlay  [F11] Fullscreen")
	}
	r.drawStatusBar(status, w, h)

	rl.EndDrawing()
}

func (r *Renderer) drawNode(tree *ui.Tree, e ecs.Entity) {
	l := tree.Layout(e)

	if bg, ok := tree.Background(e); ok {
		if tree.IsButton(e) {
			bg = ui.ButtonFill(r.Theme, bg, tree.Interaction(e))
		}
		rec := rl.Rectangle{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
		if radius := tree.Radius(e); radius > 0 {
			rl.DrawRectangleRounded(rec, ui.Roundness(radius, l.Width, l.Height), roundedSegments, bg)
		} else {
			rl.DrawRectangleRec(rec, bg)
		}
	}

	if text, ok := tree.Text(e); ok {
		rl.DrawText(text.Value, int32(l.X), int32(l.Y), int32(text.FontSize), text.Color)
	}
}

func (r *Renderer) drawStatusBar(status game.Status, w, h int32) {
	barH := r.Theme.StatusBarH
	text := fmt.Sprintf("%s | %d entities | %.0f fps", status.State, status.Entities, status.FPS)
	if status.Puzzle != "" {
		text = fmt.Sprintf("%s %s | %s", status.Puzzle, status.Title, text)
	}
	gui.StatusBar(rl.Rectangle{X: 0, Y: float32(h - barH), Width: float32(w), Height: float32(barH)}, text)
}

// PollInput reads the window input for one frame and handles renderer keys.
// The status bar height is excluded from the layout viewport.
func (r *Renderer) PollInput() game.Input {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		r.showHUD = !r.showHUD
	}

	mouse := rl.GetMousePosition()
	return game.Input{
		Pointer: ui.Pointer{
			X:        mouse.X,
			Y:        mouse.Y,
			Down:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
			Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
			Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		},
		Back:   rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyBackspace),
		Wheel:  rl.GetMouseWheelMove(),
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight() - int(r.Theme.StatusBarH)),
	}
}
