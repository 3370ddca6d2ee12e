package mapview

import (
	"image/color"
	"math"

	"github.com/waozixyz/volcanomap/dataset"
	"github.com/waozixyz/volcanomap/render"
)

const (
	MarkerSize    = 8
	HoverSlack    = 4
	MarkerAlpha   = 200
	RingPad       = 6
	RingThickness = 2
)

// Filter restricts which records are drawn and hit-tested. The zero value shows everything.
type Filter struct {
	Type   string
	Active bool
}

// Allows reports whether a record of type t passes the filter.
func (f Filter) Allows(t string) bool {
	return !f.Active || t == f.Type
}

// Hover is the record currently under the pointer.
type Hover struct {
	Index  int
	Record dataset.Record
	At     render.Vec2
}

// HitTest returns the visible record whose projected marker centre is nearest to pointer,
// among those closer than MarkerSize/2+HoverSlack. Ties keep the earlier record.
func HitTest(records []dataset.Record, r render.Rect, pointer render.Vec2, f Filter) (Hover, bool) {
	const threshold = MarkerSize/2 + HoverSlack

	best := Hover{Index: -1}
	bestDist := math.Inf(1)
	for i, rec := range records {
		if !f.Allows(rec.Type) {
			continue
		}
		p := Project(rec.Latitude, rec.Longitude, r)
		d := math.Hypot(float64(pointer.X-p.X), float64(pointer.Y-p.Y))
		if d < threshold && d < bestDist {
			bestDist = d
			best = Hover{Index: i, Record: rec, At: p}
		}
	}
	return best, best.Index >= 0
}

// drawMarkers draws every visible record as a translucent square in its type colour.
// The hovered record also gets an accent ring and an opaque dot.
func drawMarkers(c render.Canvas, records []dataset.Record, r render.Rect, f Filter, p *Palette, hover *Hover, accent color.RGBA) {
	const half = MarkerSize / 2
	for i, rec := range records {
		if !f.Allows(rec.Type) {
			continue
		}
		at := Project(rec.Latitude, rec.Longitude, r)
		col := p.ColorOr(rec.Type)

		c.FillRect(render.Rect{X: at.X - half, Y: at.Y - half, W: MarkerSize, H: MarkerSize}, render.WithAlpha(col, MarkerAlpha))

		if hover != nil && hover.Index == i {
			c.StrokeCircle(at, (MarkerSize+RingPad)/2, RingThickness, accent)
			c.FillCircle(at, half, render.WithAlpha(col, 0xFF))
		}
	}
}
