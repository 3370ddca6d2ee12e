package mapview

import (
	"errors"
	"image/color"
	"unicode/utf8"

	"github.com/waozixyz/volcanomap/render"
)

// op is one recorded canvas call.
type op struct {
	kind   string
	rect   render.Rect
	from   render.Vec2
	to     render.Vec2
	radius float32
	text   string
	style  render.TextStyle
	color  color.RGBA
}

type recordingCanvas struct {
	w, h float32
	ops  []op
}

func newCanvas(w, h float32) *recordingCanvas { return &recordingCanvas{w: w, h: h} }

func (c *recordingCanvas) Size() (float32, float32) { return c.w, c.h }
func (c *recordingCanvas) Clear(col color.RGBA)     { c.add(op{kind: "clear", color: col}) }
func (c *recordingCanvas) FillRect(r render.Rect, col color.RGBA) {
	c.add(op{kind: "rect", rect: r, color: col})
}
func (c *recordingCanvas) FillRoundedRect(r render.Rect, radius float32, col color.RGBA) {
	c.add(op{kind: "rounded", rect: r, radius: radius, color: col})
}
func (c *recordingCanvas) StrokeRect(r render.Rect, _ float32, col color.RGBA) {
	c.add(op{kind: "strokeRect", rect: r, color: col})
}
func (c *recordingCanvas) StrokeRoundedRect(r render.Rect, radius, _ float32, col color.RGBA) {
	c.add(op{kind: "roundedOutline", rect: r, radius: radius, color: col})
}
func (c *recordingCanvas) FillCircle(at render.Vec2, radius float32, col color.RGBA) {
	c.add(op{kind: "circle", from: at, radius: radius, color: col})
}
func (c *recordingCanvas) StrokeCircle(at render.Vec2, radius, _ float32, col color.RGBA) {
	c.add(op{kind: "ring", from: at, radius: radius, color: col})
}
func (c *recordingCanvas) Line(from, to render.Vec2, _ float32, col color.RGBA) {
	c.add(op{kind: "line", from: from, to: to, color: col})
}
func (c *recordingCanvas) Text(s string, pos render.Vec2, style render.TextStyle) {
	c.add(op{kind: "text", text: s, from: pos, style: style, color: style.Color})
}
func (c *recordingCanvas) MeasureText(s string, size float32, _ bool) float32 {
	return measure(s, size)
}
func (c *recordingCanvas) DrawTexture(_ render.Texture, dst render.Rect) {
	c.add(op{kind: "texture", rect: dst})
}
func (c *recordingCanvas) PushClip(r render.Rect) { c.add(op{kind: "clip", rect: r}) }
func (c *recordingCanvas) PopClip()               { c.add(op{kind: "unclip"}) }

func (c *recordingCanvas) add(o op) { c.ops = append(c.ops, o) }

func (c *recordingCanvas) only(kind string) []op {
	var out []op
	for _, o := range c.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func (c *recordingCanvas) texts() []string {
	var out []string
	for _, o := range c.only("text") {
		out = append(out, o.text)
	}
	return out
}

// measure is 7px per rune at size 12, linear in size.
func measure(s string, size float32) float32 {
	return float32(utf8.RuneCountInString(s)) * 7 * size / 12
}

func measure12(s string) float32 { return measure(s, 12) }

type fakeTexture struct{ w, h int }

func (t fakeTexture) Width() int  { return t.w }
func (t fakeTexture) Height() int { return t.h }

type fakeTextures struct {
	tex  render.Texture
	err  error
	exts []string
}

func (f *fakeTextures) LoadTexture(_ []byte, ext string) (render.Texture, error) {
	f.exts = append(f.exts, ext)
	if f.err != nil {
		return nil, f.err
	}
	return f.tex, nil
}

type fakeNavigator struct {
	urls []string
	err  error
}

func (n *fakeNavigator) Navigate(url string) error {
	n.urls = append(n.urls, url)
	return n.err
}

var errDecode = errors.New("unsupported image")

// fakeWidget records what the menu tells it and lets tests drive selection.
type fakeWidget struct {
	options  []FilterOption
	onSelect func(string)
	open     bool
	label    string
	x, y     float32

	captures bool
	consume  bool
	clicks   []render.Vec2
	drawn    int
}

func (w *fakeWidget) SetOptions(opts []FilterOption) { w.options = opts }
func (w *fakeWidget) OnSelect(fn func(string))       { w.onSelect = fn }
func (w *fakeWidget) SetOpen(open bool)              { w.open = open }
func (w *fakeWidget) Reposition(x, y float32)        { w.x, w.y = x, y }
func (w *fakeWidget) SetLabel(label string)          { w.label = label }
func (w *fakeWidget) Draw(render.Canvas)             { w.drawn++ }
func (w *fakeWidget) HandleClick(p render.Vec2) bool {
	w.clicks = append(w.clicks, p)
	return w.consume
}
func (w *fakeWidget) HandleWheel(render.Vec2, float32) bool { return false }
func (w *fakeWidget) Captures(render.Vec2) bool             { return w.captures }

func (w *fakeWidget) choose(label string) { w.onSelect(label) }
