package mapview

import (
	"image/color"
	"sort"
)

// FallbackMarkerColor is used for a type that has no palette entry.
var FallbackMarkerColor = color.RGBA{R: 255, G: 100, B: 0, A: 255}

// Palette maps each volcano type to its marker colour.
// Types are sorted so the assignment does not depend on file order.
type Palette struct {
	types  []string
	colors map[string]color.RGBA
}

// NewPalette assigns colors[i % len(colors)] to the i-th type in sorted order.
func NewPalette(types []string, colors []color.RGBA) *Palette {
	if len(colors) == 0 {
		colors = DefaultPalette
	}

	seen := make(map[string]struct{}, len(types))
	sorted := make([]string, 0, len(types))
	for _, t := range types {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)

	p := &Palette{
		types:  sorted,
		colors: make(map[string]color.RGBA, len(sorted)),
	}
	for i, t := range sorted {
		p.colors[t] = colors[i%len(colors)]
	}
	return p
}

// Types returns the distinct types in palette order.
func (p *Palette) Types() []string {
	out := make([]string, len(p.types))
	copy(out, p.types)
	return out
}

// Color returns the colour assigned to t.
func (p *Palette) Color(t string) (color.RGBA, bool) {
	c, ok := p.colors[t]
	return c, ok
}

// ColorOr returns the colour for t, or FallbackMarkerColor.
func (p *Palette) ColorOr(t string) color.RGBA {
	if c, ok := p.colors[t]; ok {
		return c
	}
	return FallbackMarkerColor
}
