package mapview

import (
	"image/color"

	"github.com/waozixyz/volcanomap/render"
)

// FilterOption is one entry of the type filter list.
type FilterOption struct {
	Label string
	Type  string
	All   bool
	Color color.RGBA
}

// FilterControl is the host widget that presents the filter choices.
// Selection logic lives in FilterMenu; the control only displays and reports clicks.
type FilterControl interface {
	SetOptions(opts []FilterOption)
	OnSelect(fn func(label string))
	SetOpen(open bool)
	Reposition(x, y float32)
	SetLabel(label string)
}

// FilterWidget is a FilterControl drawn on the canvas and fed pointer events by the App.
type FilterWidget interface {
	FilterControl

	Draw(c render.Canvas)
	// HandleClick reports whether the click was consumed by the widget.
	HandleClick(p render.Vec2) bool
	HandleWheel(p render.Vec2, dy float32) bool
	// Captures reports whether the widget is drawn on top of p.
	Captures(p render.Vec2) bool
}

// Legend box geometry, measured from the top-right corner of the window.
const (
	LegendW      = 240
	LegendH      = 80
	LegendMargin = 30
	LegendTop    = 130
	LegendInset  = 10
	ControlTop   = 40
)

// LegendRect returns the legend box for a window of width winW.
func LegendRect(winW float32) render.Rect {
	return render.Rect{X: winW - LegendW - LegendMargin, Y: LegendTop, W: LegendW, H: LegendH}
}

// FilterMenu owns the active type filter and keeps the control in sync with it.
type FilterMenu struct {
	control  FilterControl
	options  []FilterOption
	current  Filter
	onChange func(Filter)
}

// NewFilterMenu lists "All" followed by the palette types, in palette order and colour.
func NewFilterMenu(p *Palette, theme Theme, control FilterControl, onChange func(Filter)) *FilterMenu {
	opts := []FilterOption{{Label: theme.AllLabel, All: true, Color: theme.Ink}}
	for _, t := range p.Types() {
		opts = append(opts, FilterOption{Label: t, Type: t, Color: p.ColorOr(t)})
	}

	m := &FilterMenu{control: control, options: opts, onChange: onChange}
	control.SetOptions(opts)
	control.OnSelect(func(label string) { m.Select(label) })
	control.SetLabel(theme.AllLabel)
	control.SetOpen(false)
	return m
}

// Options returns the listed options in display order.
func (m *FilterMenu) Options() []FilterOption {
	out := make([]FilterOption, len(m.options))
	copy(out, m.options)
	return out
}

// Filter returns the active filter.
func (m *FilterMenu) Filter() Filter { return m.current }

// Select applies the option with the given label. "All" clears the filter.
// Either way the list closes and the control label follows the choice.
// Unknown labels are ignored.
func (m *FilterMenu) Select(label string) bool {
	for _, o := range m.options {
		if o.Label != label {
			continue
		}
		if o.All {
			m.current = Filter{}
		} else {
			m.current = Filter{Type: o.Type, Active: true}
		}
		m.control.SetOpen(false)
		m.control.SetLabel(o.Label)
		if m.onChange != nil {
			m.onChange(m.current)
		}
		return true
	}
	return false
}

// Reposition anchors the control inside the legend box.
func (m *FilterMenu) Reposition(legend render.Rect) {
	m.control.Reposition(legend.X+LegendInset, legend.Y+ControlTop)
}
