// render/ebiten/canvas.go
package ebiten

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/waozixyz/volcanomap/render"
)

type faceKey struct {
	size float32
	bold bool
}

// Canvas draws onto an ebiten screen image. Clipping is done with SubImage,
// which keeps the parent's coordinate space.
type Canvas struct {
	screen *eb.Image
	target *eb.Image
	clips  []render.Rect

	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

// NewCanvas parses the UI fonts. Bind must be called before drawing.
func NewCanvas() (*Canvas, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebiten: regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebiten: bold font: %w", err)
	}
	return &Canvas{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

// Bind points the canvas at this frame's screen and drops any leftover clip.
func (c *Canvas) Bind(screen *eb.Image) {
	c.screen = screen
	c.target = screen
	c.clips = c.clips[:0]
}

func (c *Canvas) Size() (float32, float32) {
	b := c.screen.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

func (c *Canvas) Clear(col color.RGBA) { c.screen.Fill(straight(col)) }

func (c *Canvas) FillRect(r render.Rect, col color.RGBA) {
	vector.DrawFilledRect(c.target, r.X, r.Y, r.W, r.H, straight(col), false)
}

// FillRoundedRect is a cross of two rects plus a circle in each corner.
func (c *Canvas) FillRoundedRect(r render.Rect, radius float32, col color.RGBA) {
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		c.FillRect(r, col)
		return
	}
	clr := straight(col)
	vector.DrawFilledRect(c.target, r.X+radius, r.Y, r.W-2*radius, r.H, clr, true)
	vector.DrawFilledRect(c.target, r.X, r.Y+radius, radius, r.H-2*radius, clr, true)
	vector.DrawFilledRect(c.target, r.X+r.W-radius, r.Y+radius, radius, r.H-2*radius, clr, true)
	for _, p := range corners(r, radius) {
		vector.DrawFilledCircle(c.target, p.X, p.Y, radius, clr, true)
	}
}

func (c *Canvas) StrokeRect(r render.Rect, thickness float32, col color.RGBA) {
	vector.StrokeRect(c.target, r.X, r.Y, r.W, r.H, thickness, straight(col), false)
}

// StrokeRoundedRect strokes the outline as a closed polyline: four edges joined by
// quarter arcs around the corner centres.
func (c *Canvas) StrokeRoundedRect(r render.Rect, radius, thickness float32, col color.RGBA) {
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		c.StrokeRect(r, thickness, col)
		return
	}
	clr := straight(col)
	pts := roundedOutline(r, radius, arcSegments)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(c.target, a.X, a.Y, b.X, b.Y, thickness, clr, true)
	}
}

func (c *Canvas) FillCircle(center render.Vec2, radius float32, col color.RGBA) {
	vector.DrawFilledCircle(c.target, center.X, center.Y, radius, straight(col), true)
}

func (c *Canvas) StrokeCircle(center render.Vec2, radius, thickness float32, col color.RGBA) {
	vector.StrokeCircle(c.target, center.X, center.Y, radius, thickness, straight(col), true)
}

func (c *Canvas) Line(from, to render.Vec2, thickness float32, col color.RGBA) {
	vector.StrokeLine(c.target, from.X, from.Y, to.X, to.Y, thickness, straight(col), true)
}

func (c *Canvas) Text(s string, pos render.Vec2, style render.TextStyle) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(straight(style.Color))
	text.Draw(c.target, s, c.face(style.Size, style.Bold), op)
}

func (c *Canvas) MeasureText(s string, size float32, bold bool) float32 {
	w, _ := text.Measure(s, c.face(size, bold), 0)
	return float32(w)
}

func (c *Canvas) face(size float32, bold bool) *text.GoTextFace {
	if size <= 0 {
		size = render.BaseFontSize
	}
	key := faceKey{size: size, bold: bold}
	if f, ok := c.faces[key]; ok {
		return f
	}
	src := c.regular
	if bold {
		src = c.bold
	}
	f := &text.GoTextFace{Source: src, Size: float64(size)}
	c.faces[key] = f
	return f
}

func (c *Canvas) DrawTexture(t render.Texture, dst render.Rect) {
	tex, ok := t.(*Texture)
	if !ok || tex.Width() == 0 || tex.Height() == 0 {
		return
	}
	op := &eb.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(tex.Width()), float64(dst.H)/float64(tex.Height()))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.Filter = eb.FilterLinear
	c.target.DrawImage(tex.img, op)
}

// PushClip nests: each clip is intersected with the one below it.
func (c *Canvas) PushClip(r render.Rect) {
	bounds := c.target.Bounds().Intersect(pixelRect(r))
	c.clips = append(c.clips, r)
	c.target = c.screen.SubImage(bounds).(*eb.Image)
}

func (c *Canvas) PopClip() {
	if len(c.clips) == 0 {
		return
	}
	c.clips = c.clips[:len(c.clips)-1]
	c.target = c.screen
	for _, r := range c.clips {
		c.target = c.screen.SubImage(c.target.Bounds().Intersect(pixelRect(r))).(*eb.Image)
	}
}

// straight reinterprets a render colour as non-premultiplied. Colours across the
// render package carry straight alpha, while ebiten reads color.RGBA as premultiplied.
func straight(col color.RGBA) color.NRGBA { return color.NRGBA(col) }

// corners returns the arc centres of a rounded rect: top-left, top-right,
// bottom-left, bottom-right.
func corners(r render.Rect, radius float32) [4]render.Vec2 {
	return [4]render.Vec2{
		{X: r.X + radius, Y: r.Y + radius},
		{X: r.X + r.W - radius, Y: r.Y + radius},
		{X: r.X + radius, Y: r.Y + r.H - radius},
		{X: r.X + r.W - radius, Y: r.Y + r.H - radius},
	}
}

const arcSegments = 6

// roundedOutline walks the rounded rect clockwise from the top-left arc, with
// segments+1 points per corner.
func roundedOutline(r render.Rect, radius float32, segments int) []render.Vec2 {
	cs := corners(r, radius)
	// clockwise order with the start angle of each quarter arc
	order := [4]struct {
		at    render.Vec2
		start float64
	}{
		{cs[0], math.Pi},
		{cs[1], 3 * math.Pi / 2},
		{cs[3], 0},
		{cs[2], math.Pi / 2},
	}
	pts := make([]render.Vec2, 0, 4*(segments+1))
	for _, o := range order {
		for i := 0; i <= segments; i++ {
			a := o.start + float64(i)/float64(segments)*math.Pi/2
			pts = append(pts, render.Vec2{
				X: o.at.X + radius*float32(math.Cos(a)),
				Y: o.at.Y + radius*float32(math.Sin(a)),
			})
		}
	}
	return pts
}

// pixelRect snaps r outward to whole pixels.
func pixelRect(r render.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.X))),
		int(math.Floor(float64(r.Y))),
		int(math.Ceil(float64(r.X+r.W))),
		int(math.Ceil(float64(r.Y+r.H))),
	)
}
