package mapview

import "github.com/waozixyz/volcanomap/render"

const (
	GridCols         = 12
	GridRows         = 6
	FallbackTextSize = 16
)

// drawMap stretches tex over r, or draws the reference grid and placeholder text.
func drawMap(c render.Canvas, r render.Rect, tex render.Texture, theme Theme) {
	if tex != nil && tex.Width() > 0 {
		c.DrawTexture(tex, r)
		return
	}

	for i := 0; i <= GridCols; i++ {
		x := r.X + r.W/GridCols*float32(i)
		c.Line(render.Vec2{X: x, Y: r.Y}, render.Vec2{X: x, Y: r.Y + r.H}, 1, theme.Ink)
	}
	for i := 0; i <= GridRows; i++ {
		y := r.Y + r.H/GridRows*float32(i)
		c.Line(render.Vec2{X: r.X, Y: y}, render.Vec2{X: r.X + r.W, Y: y}, 1, theme.Ink)
	}

	drawCenteredText(c, theme.MapUnavailable, r.Center(),
		render.TextStyle{Size: FallbackTextSize, Color: theme.MapFallback})
}

// drawCenteredText centres s on at both horizontally and vertically.
func drawCenteredText(c render.Canvas, s string, at render.Vec2, style render.TextStyle) {
	w := c.MeasureText(s, style.Size, style.Bold)
	c.Text(s, render.Vec2{X: at.X - w/2, Y: at.Y - style.Size/2}, style)
}
