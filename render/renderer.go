package render

import "image/color"

// Canvas is the drawing surface a frame is rendered onto.
// Backends implement it on top of their immediate-mode drawing calls.
type Canvas interface {
	// Size returns the current drawable size in pixels.
	Size() (w, h float32)

	Clear(c color.RGBA)
	FillRect(r Rect, c color.RGBA)
	FillRoundedRect(r Rect, radius float32, c color.RGBA)
	StrokeRect(r Rect, thickness float32, c color.RGBA)
	StrokeRoundedRect(r Rect, radius, thickness float32, c color.RGBA)
	FillCircle(center Vec2, radius float32, c color.RGBA)
	StrokeCircle(center Vec2, radius, thickness float32, c color.RGBA)
	Line(from, to Vec2, thickness float32, c color.RGBA)

	// Text draws s with its top-left corner at pos.
	Text(s string, pos Vec2, style TextStyle)
	// MeasureText returns the advance width of s at the given size.
	MeasureText(s string, size float32, bold bool) float32

	// DrawTexture stretches t over dst.
	DrawTexture(t Texture, dst Rect)

	// PushClip restricts drawing to r until the matching PopClip.
	PushClip(r Rect)
	PopClip()
}

// TextureLoader uploads encoded image bytes (png, jpg) to the backend.
type TextureLoader interface {
	LoadTexture(data []byte, ext string) (Texture, error)
}

// Navigator opens an outbound URL (detail pages).
type Navigator interface {
	Navigate(url string) error
}

// Renderer defines the interface for a loop-driven rendering backend.
type Renderer interface {
	TextureLoader
	Navigator

	// Init opens the window.
	Init(config WindowConfig) error

	// Canvas returns the surface for the frame between BeginFrame and EndFrame.
	Canvas() Canvas

	// ShouldClose checks if the window should close (e.g., user action).
	ShouldClose() bool

	// PollEvents samples pointer, wheel and resize state for the coming frame.
	PollEvents() Input

	// SetPointerCursor switches between the hand and the default cursor.
	SetPointerCursor(hand bool)

	BeginFrame()
	EndFrame()

	// Cleanup releases resources used by the renderer (e.g., textures, window).
	Cleanup()
}

// Scene is what a backend drives each frame: input first, then drawing.
type Scene interface {
	HandleInput(in Input)
	Draw(c Canvas)
	WantsPointerCursor() bool
}
