package mapview

import "github.com/waozixyz/volcanomap/render"

const (
	MapMargin      = 20
	MapTop         = 130
	LegendShift    = 40
	FallbackAspect = 2.0
)

// ImageSize is the natural size of the background image. The zero value means "not loaded".
type ImageSize struct {
	W int
	H int
}

func (s ImageSize) Valid() bool { return s.W > 0 && s.H > 0 }

// MapRect fits the map into the window below the title and legend band.
// With a loaded image the image aspect ratio is kept; otherwise the map is 2:1.
// The rectangle is centred horizontally and then shifted left to leave room for the legend.
func MapRect(winW, winH float32, img ImageSize) render.Rect {
	availW := max(winW-2*MapMargin, 0)
	availH := max(winH-MapTop-MapMargin, 0)

	var w, h float32
	if img.Valid() {
		iw, ih := float32(img.W), float32(img.H)
		scale := min(availW/iw, availH/ih)
		w = iw * scale
		h = ih * scale
	} else {
		w = availW
		h = w / FallbackAspect
		if h > availH {
			h = availH
			w = h * FallbackAspect
		}
	}

	return render.Rect{
		X: (winW-w)/2 - LegendShift,
		Y: MapTop,
		W: w,
		H: h,
	}
}
