package mapview

import (
	"math"
	"strconv"

	"github.com/waozixyz/volcanomap/dataset"
	"github.com/waozixyz/volcanomap/render"
)

const (
	TooltipPadding    = 8
	TooltipLineHeight = 16
	TooltipOffset     = 12
	TooltipEdge       = 8
	TooltipTextSize   = 12
	TooltipRadius     = 6
)

// TooltipLines returns the name, type and elevation lines shown for a record.
func TooltipLines(rec dataset.Record) []string {
	return []string{rec.Name, rec.Type, FormatElevation(rec)}
}

// FormatElevation renders the elevation as a whole number of metres.
func FormatElevation(rec dataset.Record) string {
	if !rec.HasElevation {
		return "n/a"
	}
	return strconv.FormatFloat(math.Round(rec.Elevation), 'f', 0, 64) + " m"
}

// TooltipLayout is the placed tooltip box for one hover target.
type TooltipLayout struct {
	Box    render.Rect
	Lines  []string
	Anchor render.Vec2
}

// LayoutTooltip places the box up and to the right of anchor, flipping to the left
// when it would cross viewportW-TooltipEdge and below when its top would be above TooltipEdge.
func LayoutTooltip(lines []string, anchor render.Vec2, viewportW float32, measure func(string) float32) TooltipLayout {
	var widest float32
	for _, l := range lines {
		widest = max(widest, measure(l))
	}
	w := widest + 2*TooltipPadding
	h := float32(len(lines)*TooltipLineHeight + 2*TooltipPadding)

	x := anchor.X + TooltipOffset
	y := anchor.Y - h - TooltipOffset
	if x+w > viewportW-TooltipEdge {
		x = anchor.X - w - TooltipOffset
	}
	if y < TooltipEdge {
		y = anchor.Y + TooltipOffset
	}

	return TooltipLayout{
		Box:    render.Rect{X: x, Y: y, W: w, H: h},
		Lines:  lines,
		Anchor: anchor,
	}
}

// Connector returns the segment from the box's bottom-centre to the marker.
func (l TooltipLayout) Connector() (render.Vec2, render.Vec2) {
	return render.Vec2{X: l.Box.X + l.Box.W/2, Y: l.Box.Y + l.Box.H}, l.Anchor
}

func drawTooltip(c render.Canvas, l TooltipLayout, theme Theme) {
	c.FillRoundedRect(l.Box, TooltipRadius, theme.TooltipFill)
	c.StrokeRoundedRect(l.Box, TooltipRadius, 1, theme.Ink)

	style := render.TextStyle{Size: TooltipTextSize, Color: theme.TooltipText}
	for i, line := range l.Lines {
		c.Text(line, render.Vec2{
			X: l.Box.X + TooltipPadding,
			Y: l.Box.Y + TooltipPadding + float32(i*TooltipLineHeight),
		}, style)
	}

	from, to := l.Connector()
	c.Line(from, to, 1, theme.Ink)
}
