package mapview

import (
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/waozixyz/volcanomap/dataset"
	"github.com/waozixyz/volcanomap/internal/observability"
	"github.com/waozixyz/volcanomap/render"
)

const (
	TitleSize      = 148
	TitleY         = 60
	TitleDivisor   = 2.03
	LegendRadius   = 3
	LegendTextSize = 14
)

// Options wires the App to its collaborators. Only Theme and DetailURL are
// needed for drawing; the rest may be left nil.
type Options struct {
	Theme     Theme
	DetailURL string

	Logger  *slog.Logger
	Clock   clockwork.Clock
	Metrics *observability.Metrics

	Images    *ImageLoader
	Widget    FilterWidget
	Textures  render.TextureLoader
	Navigator render.Navigator
}

// State is a snapshot of the mutable UI state.
type State struct {
	Filter      Filter
	Hover       *Hover
	ImageLoaded bool
}

// App is the per-frame driver of the volcano map. It is not safe for
// concurrent use; every method runs on the render thread.
type App struct {
	records []dataset.Record
	palette *Palette
	menu    *FilterMenu
	opts    Options

	width, height float32
	pointer       render.Vec2
	hover         *Hover
}

// New builds the palette and filter menu for table.
func New(table *dataset.Table, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Widget == nil {
		opts.Widget = nopWidget{}
	}

	a := &App{
		records: table.Records(),
		palette: NewPalette(table.Types(), opts.Theme.Palette),
		opts:    opts,
	}
	a.menu = NewFilterMenu(a.palette, opts.Theme, opts.Widget, a.filterChanged)
	return a
}

func (a *App) filterChanged(f Filter) {
	label := a.opts.Theme.AllLabel
	if f.Active {
		label = f.Type
	}
	if a.opts.Metrics != nil {
		a.opts.Metrics.FilterSelections.WithLabelValues(label).Inc()
	}
	a.opts.Logger.Debug("filter selected", "type", label)
}

// Palette returns the type colour assignment.
func (a *App) Palette() *Palette { return a.palette }

// Menu returns the filter menu.
func (a *App) Menu() *FilterMenu { return a.menu }

// State returns the current filter, hover target and image status.
func (a *App) State() State {
	s := State{Filter: a.menu.Filter()}
	if a.hover != nil {
		h := *a.hover
		s.Hover = &h
	}
	if a.opts.Images != nil {
		s.ImageLoaded = a.opts.Images.Loaded()
	}
	return s
}

// WantsPointerCursor reports whether a volcano is under the pointer.
func (a *App) WantsPointerCursor() bool { return a.hover != nil }

// Resize records the new window size and moves the legend control at once.
func (a *App) Resize(w, h float32) {
	a.width, a.height = w, h
	a.menu.Reposition(LegendRect(w))
}

// HandleInput applies one frame's worth of sampled input.
func (a *App) HandleInput(in render.Input) {
	if in.Resized || in.Width != a.width || in.Height != a.height {
		if in.Width > 0 && in.Height > 0 {
			a.Resize(in.Width, in.Height)
		}
	}

	a.pointer = in.Pointer
	if in.Wheel != 0 {
		a.opts.Widget.HandleWheel(in.Pointer, in.Wheel)
	}
	if in.Clicked {
		a.Click(in.Pointer)
	}
}

// Click offers the click to the filter control first; otherwise it opens the
// detail page of the hovered volcano, if any.
func (a *App) Click(p render.Vec2) {
	if a.opts.Widget.HandleClick(p) {
		return
	}
	if a.hover == nil {
		return
	}

	target := DetailURL(a.opts.DetailURL, a.hover.Record.Name)
	a.opts.Logger.Info("opening volcano detail", "name", a.hover.Record.Name, "url", target)
	if a.opts.Metrics != nil {
		a.opts.Metrics.Navigations.Inc()
	}
	if a.opts.Navigator == nil {
		return
	}
	if err := a.opts.Navigator.Navigate(target); err != nil {
		a.opts.Logger.Error("navigation failed", "url", target, "error", err)
	}
}

// Draw renders one full frame onto c.
func (a *App) Draw(c render.Canvas) {
	start := a.opts.Clock.Now()
	theme := a.opts.Theme

	var tex render.Texture
	var img ImageSize
	if a.opts.Images != nil {
		a.opts.Images.Poll(a.opts.Textures)
		tex = a.opts.Images.Texture()
		img = a.opts.Images.Size()
	}

	w, h := c.Size()
	if w != a.width || h != a.height {
		a.Resize(w, h)
	}

	c.Clear(theme.Background)
	a.drawTitle(c, w)
	a.drawLegend(c, w)

	mr := MapRect(w, h, img)
	drawMap(c, mr, tex, theme)

	a.updateHover(mr)
	drawMarkers(c, a.records, mr, a.menu.Filter(), a.palette, a.hover, theme.Ink)
	if a.hover != nil {
		measure := func(s string) float32 { return c.MeasureText(s, TooltipTextSize, false) }
		drawTooltip(c, LayoutTooltip(TooltipLines(a.hover.Record), a.hover.At, w, measure), theme)
	}

	a.opts.Widget.Draw(c)

	if a.opts.Metrics != nil {
		a.opts.Metrics.Frames.Inc()
		a.opts.Metrics.FrameDuration.Observe(a.opts.Clock.Since(start).Seconds())
	}
}

func (a *App) drawTitle(c render.Canvas, w float32) {
	style := render.TextStyle{Size: TitleSize, Bold: true, Color: a.opts.Theme.Ink}
	drawCenteredText(c, a.opts.Theme.Title, render.Vec2{X: w / TitleDivisor, Y: TitleY}, style)
}

func (a *App) drawLegend(c render.Canvas, w float32) {
	box := LegendRect(w)
	c.FillRoundedRect(box, LegendRadius, a.opts.Theme.LegendFill)
	c.Text(a.opts.Theme.FilterLabel, render.Vec2{X: box.X + LegendInset, Y: box.Y + LegendInset},
		render.TextStyle{Size: LegendTextSize, Color: a.opts.Theme.Ink})
	a.menu.Reposition(box)
}

func (a *App) updateHover(mr render.Rect) {
	var next *Hover
	if !a.opts.Widget.Captures(a.pointer) {
		if h, ok := HitTest(a.records, mr, a.pointer, a.menu.Filter()); ok {
			next = &h
		}
	}

	if hoverIndex(next) != hoverIndex(a.hover) && a.opts.Metrics != nil {
		a.opts.Metrics.HoverChanges.Inc()
	}
	a.hover = next
}

func hoverIndex(h *Hover) int {
	if h == nil {
		return -1
	}
	return h.Index
}

// nopWidget stands in when no filter control is attached.
type nopWidget struct{}

func (nopWidget) SetOptions([]FilterOption)             {}
func (nopWidget) OnSelect(func(string))                 {}
func (nopWidget) SetOpen(bool)                          {}
func (nopWidget) Reposition(float32, float32)           {}
func (nopWidget) SetLabel(string)                       {}
func (nopWidget) Draw(render.Canvas)                    {}
func (nopWidget) HandleClick(render.Vec2) bool          { return false }
func (nopWidget) HandleWheel(render.Vec2, float32) bool { return false }
func (nopWidget) Captures(render.Vec2) bool             { return false }
