// render/render.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	BaseFontSize  = 14.0
	DefaultTarget = 60
)

// Vec2 is a point in window pixels, origin top-left.
type Vec2 struct {
	X float32
	Y float32
}

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// Contains reports whether p lies inside r (edges inclusive on the top/left).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TextStyle describes how a run of text is drawn. Text is positioned by its top-left corner.
type TextStyle struct {
	Size  float32
	Bold  bool
	Color color.RGBA
}

// Texture is a GPU image owned by a backend.
type Texture interface {
	Width() int
	Height() int
}

// Input is the pointer and window state sampled once per frame.
type Input struct {
	Pointer Vec2
	Clicked bool
	Wheel   float32
	Resized bool
	Width   float32
	Height  float32
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	TargetFPS int
	DefaultBg color.RGBA
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    800,
		Title:     "Volcano Map",
		Resizable: true,
		TargetFPS: DefaultTarget,
		DefaultBg: color.RGBA{R: 0xEE, G: 0xE9, B: 0xDF, A: 0xFF},
	}
}

// WithAlpha returns c with its alpha channel replaced. Colours in this package
// carry straight (non-premultiplied) alpha; backends convert as they need.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// Gray returns an opaque gray of the given level.
func Gray(level uint8) color.RGBA {
	return color.RGBA{R: level, G: level, B: level, A: 0xFF}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("ParseHexColor: %q is not #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("ParseHexColor: %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustHexColor is ParseHexColor for compiled-in constants.
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexString formats c as "#RRGGBB", dropping alpha.
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
