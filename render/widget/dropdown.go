// render/widget/dropdown.go
package widget

import (
	"image/color"

	"github.com/waozixyz/volcanomap/mapview"
	"github.com/waozixyz/volcanomap/render"
)

const (
	PadX     = 10
	PadY     = 6
	TextSize = 14
	RowH     = TextSize + 2*PadY + 2
	ListGap  = 32
	ListW    = 220
	ListMaxH = 300
	Radius   = 3

	chevronW   = 8
	chevronGap = 8
	minButtonW = 60
)

// Dropdown is a canvas-drawn select control: a button showing the current
// label and, when open, a scrollable list of options under it.
// It implements mapview.FilterWidget.
type Dropdown struct {
	options  []mapview.FilterOption
	onSelect func(label string)

	open   bool
	label  string
	x, y   float32
	scroll float32

	// buttonW is measured on each Draw; clicks before the first Draw use minButtonW.
	buttonW float32

	fill color.RGBA
	ink  color.RGBA
}

// NewDropdown creates a closed dropdown drawn in the given colours.
func NewDropdown(fill, ink color.RGBA) *Dropdown {
	return &Dropdown{fill: fill, ink: ink, buttonW: minButtonW}
}

func (d *Dropdown) SetOptions(opts []mapview.FilterOption) {
	d.options = append([]mapview.FilterOption(nil), opts...)
	d.scroll = 0
}

func (d *Dropdown) OnSelect(fn func(label string)) { d.onSelect = fn }
func (d *Dropdown) SetOpen(open bool)              { d.open = open }
func (d *Dropdown) SetLabel(label string)          { d.label = label }

// Reposition moves the button's top-left corner; the list follows it.
func (d *Dropdown) Reposition(x, y float32) { d.x, d.y = x, y }

// Open reports whether the option list is showing.
func (d *Dropdown) Open() bool { return d.open }

// Label returns the text on the button.
func (d *Dropdown) Label() string { return d.label }

func (d *Dropdown) buttonRect() render.Rect {
	return render.Rect{X: d.x, Y: d.y, W: d.buttonW, H: RowH}
}

func (d *Dropdown) listRect() render.Rect {
	return render.Rect{X: d.x, Y: d.y + ListGap, W: ListW, H: min(d.contentH(), ListMaxH)}
}

func (d *Dropdown) contentH() float32 { return float32(len(d.options) * RowH) }

// HandleClick toggles the list from the button and selects from the list.
// A click elsewhere closes the list without being consumed.
func (d *Dropdown) HandleClick(p render.Vec2) bool {
	if d.buttonRect().Contains(p) {
		d.open = !d.open
		return true
	}
	if !d.open {
		return false
	}

	list := d.listRect()
	if !list.Contains(p) {
		d.open = false
		return false
	}

	i := int((p.Y - list.Y + d.scroll) / RowH)
	if i >= 0 && i < len(d.options) && d.onSelect != nil {
		d.onSelect(d.options[i].Label)
	}
	return true
}

// HandleWheel scrolls the open list when the pointer is over it.
func (d *Dropdown) HandleWheel(p render.Vec2, dy float32) bool {
	if !d.open || !d.listRect().Contains(p) {
		return false
	}
	maxScroll := max(d.contentH()-ListMaxH, 0)
	d.scroll = min(max(d.scroll-dy*RowH, 0), maxScroll)
	return true
}

// Captures reports whether p is over the button or the open list.
func (d *Dropdown) Captures(p render.Vec2) bool {
	return d.buttonRect().Contains(p) || (d.open && d.listRect().Contains(p))
}

func (d *Dropdown) Draw(c render.Canvas) {
	d.buttonW = max(c.MeasureText(d.label, TextSize, false)+2*PadX+chevronGap+chevronW, minButtonW)

	btn := d.buttonRect()
	c.FillRoundedRect(btn, Radius, d.fill)
	c.Text(d.label, render.Vec2{X: btn.X + PadX, Y: btn.Y + PadY}, render.TextStyle{Size: TextSize, Color: d.ink})
	d.drawChevron(c, btn)

	if !d.open {
		return
	}

	list := d.listRect()
	c.FillRoundedRect(list, Radius, d.fill)
	c.PushClip(list)
	for i, o := range d.options {
		top := list.Y + float32(i*RowH) - d.scroll
		if top+RowH < list.Y || top > list.Y+list.H {
			continue
		}
		c.Text(o.Label, render.Vec2{X: list.X + PadX, Y: top + PadY}, render.TextStyle{Size: TextSize, Color: o.Color})
	}
	c.PopClip()
}

// drawChevron draws a small downward "v" at the right end of the button.
func (d *Dropdown) drawChevron(c render.Canvas, btn render.Rect) {
	cx := btn.X + btn.W - PadX - chevronW/2
	cy := btn.Y + btn.H/2
	half := float32(chevronW / 2)
	c.Line(render.Vec2{X: cx - half, Y: cy - 2}, render.Vec2{X: cx, Y: cy + 2}, 1.5, d.ink)
	c.Line(render.Vec2{X: cx, Y: cy + 2}, render.Vec2{X: cx + half, Y: cy - 2}, 1.5, d.ink)
}
