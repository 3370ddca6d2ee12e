// render/ebiten/game.go
package ebiten

import (
	"context"
	"errors"
	"log/slog"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/waozixyz/volcanomap/render"
)

// Game adapts a render.Scene to ebiten.Game.
type Game struct {
	ctx    context.Context
	scene  render.Scene
	canvas *Canvas
	logger *slog.Logger

	width, height int
	sized         bool
	resized       bool
	hand          bool
}

// NewGame wraps scene. Update returns ebiten.Termination once ctx is done.
func NewGame(ctx context.Context, scene render.Scene, canvas *Canvas, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{ctx: ctx, scene: scene, canvas: canvas, logger: logger}
}

func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return eb.Termination
	}

	x, y := eb.CursorPosition()
	_, dy := eb.Wheel()
	in := render.Input{
		Pointer: render.Vec2{X: float32(x), Y: float32(y)},
		Clicked: inpututil.IsMouseButtonJustPressed(eb.MouseButtonLeft),
		Wheel:   float32(dy),
		Resized: g.resized,
		Width:   float32(g.width),
		Height:  float32(g.height),
	}
	g.resized = false
	g.scene.HandleInput(in)

	if hand := g.scene.WantsPointerCursor(); hand != g.hand {
		g.hand = hand
		if hand {
			eb.SetCursorShape(eb.CursorShapePointer)
		} else {
			eb.SetCursorShape(eb.CursorShapeDefault)
		}
	}
	return nil
}

func (g *Game) Draw(screen *eb.Image) {
	g.canvas.Bind(screen)
	g.scene.Draw(g.canvas)
}

// Layout keeps one logical pixel per window pixel so the map fills the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.sized && (outsideWidth != g.width || outsideHeight != g.height) {
		g.resized = true
		g.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	g.width, g.height, g.sized = outsideWidth, outsideHeight, true
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, scene render.Scene, cfg render.WindowConfig, logger *slog.Logger) error {
	canvas, err := NewCanvas()
	if err != nil {
		return err
	}

	eb.SetWindowSize(cfg.Width, cfg.Height)
	eb.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	}
	if cfg.TargetFPS > 0 {
		eb.SetTPS(cfg.TargetFPS)
	}

	err = eb.RunGame(NewGame(ctx, scene, canvas, logger))
	if errors.Is(err, eb.Termination) {
		return nil
	}
	return err
}
