// render/raylib/raylib_renderer.go
package raylib

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/waozixyz/volcanomap/render"
)

// fontBakeSize is the pixel size glyphs are rasterised at; draws scale from it.
const fontBakeSize = 64

// textSpacing is the extra advance between glyphs passed to raylib.
const textSpacing = 0

// RaylibRenderer implements render.Renderer and render.Canvas with raylib.
// All methods must be called from the goroutine that called Init.
type RaylibRenderer struct {
	config   render.WindowConfig
	logger   *slog.Logger
	regular  rl.Font
	bold     rl.Font
	textures []*texture
	clips    []render.Rect
	cursor   bool
}

// NewRaylibRenderer creates a renderer; the window opens on Init.
func NewRaylibRenderer(logger *slog.Logger) *RaylibRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &RaylibRenderer{logger: logger}
}

// Init opens the window and bakes the UI fonts.
func (r *RaylibRenderer) Init(config render.WindowConfig) error {
	r.config = config

	r.logger.Info("raylib window opening",
		"width", config.Width, "height", config.Height, "title", config.Title, "fps", config.TargetFPS)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(config.Width), int32(config.Height), config.Title)
	if !rl.IsWindowReady() {
		return errors.New("raylib: window is not ready after InitWindow")
	}

	if config.Resizable {
		rl.SetWindowState(rl.FlagWindowResizable)
	}
	fps := config.TargetFPS
	if fps <= 0 {
		fps = render.DefaultTarget
	}
	rl.SetTargetFPS(int32(fps))

	r.regular = loadFont(goregular.TTF)
	r.bold = loadFont(gobold.TTF)
	if r.regular.Texture.ID == 0 || r.bold.Texture.ID == 0 {
		return errors.New("raylib: failed to bake UI fonts")
	}
	return nil
}

func loadFont(ttf []byte) rl.Font {
	f := rl.LoadFontFromMemory(".ttf", ttf, fontBakeSize, fontCodepoints())
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f
}

// Canvas returns the renderer itself; it draws straight to the window.
func (r *RaylibRenderer) Canvas() render.Canvas { return r }

func (r *RaylibRenderer) ShouldClose() bool {
	return rl.IsWindowReady() && rl.WindowShouldClose()
}

func (r *RaylibRenderer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(r.config.DefaultBg)
}

func (r *RaylibRenderer) EndFrame() {
	// A frame that forgot PopClip must not leak scissoring into the next one.
	if len(r.clips) > 0 {
		rl.EndScissorMode()
		r.clips = r.clips[:0]
	}
	rl.EndDrawing()
}

// PollEvents samples the pointer, primary click, wheel and window size.
func (r *RaylibRenderer) PollEvents() render.Input {
	if !rl.IsWindowReady() {
		return render.Input{}
	}

	resized := rl.IsWindowResized()
	if resized {
		r.config.Width = rl.GetScreenWidth()
		r.config.Height = rl.GetScreenHeight()
		r.logger.Debug("window resized", "width", r.config.Width, "height", r.config.Height)
	}

	return render.Input{
		Pointer: fromVec(rl.GetMousePosition()),
		Clicked: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Wheel:   rl.GetMouseWheelMove(),
		Resized: resized,
		Width:   float32(rl.GetScreenWidth()),
		Height:  float32(rl.GetScreenHeight()),
	}
}

func (r *RaylibRenderer) SetPointerCursor(hand bool) {
	if hand == r.cursor {
		return
	}
	r.cursor = hand
	if hand {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// Navigate hands url to the platform's default handler.
func (r *RaylibRenderer) Navigate(url string) error {
	rl.OpenURL(url)
	return nil
}

// Cleanup unloads textures and fonts and closes the window.
func (r *RaylibRenderer) Cleanup() {
	for _, t := range r.textures {
		if t.tex.ID > 0 {
			rl.UnloadTexture(t.tex)
		}
	}
	r.logger.Debug("raylib textures unloaded", "count", len(r.textures))
	r.textures = nil

	if rl.IsWindowReady() {
		rl.UnloadFont(r.regular)
		rl.UnloadFont(r.bold)
		rl.CloseWindow()
	}
}

// --- render.TextureLoader ---

type texture struct {
	tex rl.Texture2D
}

func (t *texture) Width() int  { return int(t.tex.Width) }
func (t *texture) Height() int { return int(t.tex.Height) }

// LoadTexture decodes data (ext like ".png") and uploads it to the GPU.
func (r *RaylibRenderer) LoadTexture(data []byte, ext string) (render.Texture, error) {
	if len(data) == 0 {
		return nil, errors.New("raylib: empty image data")
	}
	img := rl.LoadImageFromMemory(ext, data, int32(len(data)))
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("raylib: cannot decode %s image", ext)
	}
	defer rl.UnloadImage(img)

	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return nil, errors.New("raylib: texture upload failed")
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	t := &texture{tex: tex}
	r.textures = append(r.textures, t)
	return t, nil
}

// --- render.Canvas ---

func (r *RaylibRenderer) Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

func (r *RaylibRenderer) Clear(c color.RGBA) { rl.ClearBackground(c) }

func (r *RaylibRenderer) FillRect(rect render.Rect, c color.RGBA) {
	rl.DrawRectangleRec(toRect(rect), c)
}

func (r *RaylibRenderer) FillRoundedRect(rect render.Rect, radius float32, c color.RGBA) {
	rl.DrawRectangleRounded(toRect(rect), roundness(rect, radius), roundSegments, c)
}

func (r *RaylibRenderer) StrokeRect(rect render.Rect, thickness float32, c color.RGBA) {
	rl.DrawRectangleLinesEx(toRect(rect), thickness, c)
}

func (r *RaylibRenderer) StrokeRoundedRect(rect render.Rect, radius, thickness float32, c color.RGBA) {
	rl.DrawRectangleRoundedLinesEx(toRect(rect), roundness(rect, radius), roundSegments, thickness, c)
}

func (r *RaylibRenderer) FillCircle(center render.Vec2, radius float32, c color.RGBA) {
	rl.DrawCircleV(toVec(center), radius, c)
}

func (r *RaylibRenderer) StrokeCircle(center render.Vec2, radius, thickness float32, c color.RGBA) {
	inner, outer := ringRadii(radius, thickness)
	rl.DrawRing(toVec(center), inner, outer, 0, 360, circleSegments, c)
}

func (r *RaylibRenderer) Line(from, to render.Vec2, thickness float32, c color.RGBA) {
	rl.DrawLineEx(toVec(from), toVec(to), thickness, c)
}

func (r *RaylibRenderer) Text(s string, pos render.Vec2, style render.TextStyle) {
	size := style.Size
	if size <= 0 {
		size = render.BaseFontSize
	}
	rl.DrawTextEx(r.font(style.Bold), s, toVec(pos), size, textSpacing, style.Color)
}

func (r *RaylibRenderer) MeasureText(s string, size float32, bold bool) float32 {
	if size <= 0 {
		size = render.BaseFontSize
	}
	return rl.MeasureTextEx(r.font(bold), s, size, textSpacing).X
}

func (r *RaylibRenderer) font(bold bool) rl.Font {
	if bold {
		return r.bold
	}
	return r.regular
}

func (r *RaylibRenderer) DrawTexture(t render.Texture, dst render.Rect) {
	rt, ok := t.(*texture)
	if !ok || rt.tex.ID == 0 {
		return
	}
	src := rl.NewRectangle(0, 0, float32(rt.tex.Width), float32(rt.tex.Height))
	rl.DrawTexturePro(rt.tex, src, toRect(dst), rl.NewVector2(0, 0), 0, rl.White)
}

// PushClip nests: the active scissor is the intersection of every pushed rect.
func (r *RaylibRenderer) PushClip(rect render.Rect) {
	if n := len(r.clips); n > 0 {
		rect = intersect(r.clips[n-1], rect)
		rl.EndScissorMode()
	}
	r.clips = append(r.clips, rect)
	beginScissor(rect)
}

func (r *RaylibRenderer) PopClip() {
	n := len(r.clips)
	if n == 0 {
		return
	}
	rl.EndScissorMode()
	r.clips = r.clips[:n-1]
	if n > 1 {
		beginScissor(r.clips[n-2])
	}
}

func beginScissor(rect render.Rect) {
	x, y, w, h := scissorBox(rect)
	rl.BeginScissorMode(x, y, w, h)
}
