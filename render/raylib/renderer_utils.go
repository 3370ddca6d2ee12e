// render/raylib/renderer_utils.go
package raylib

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/waozixyz/volcanomap/render"
)

const (
	roundSegments  = 8
	circleSegments = 32
)

func toRect(r render.Rect) rl.Rectangle { return rl.NewRectangle(r.X, r.Y, r.W, r.H) }
func toVec(v render.Vec2) rl.Vector2    { return rl.NewVector2(v.X, v.Y) }
func fromVec(v rl.Vector2) render.Vec2  { return render.Vec2{X: v.X, Y: v.Y} }

// roundness converts a corner radius in pixels to raylib's 0..1 fraction of
// the shorter side.
func roundness(r render.Rect, radius float32) float32 {
	short := min(r.W, r.H)
	if short <= 0 || radius <= 0 {
		return 0
	}
	return min(2*radius/short, 1)
}

// ringRadii turns a centred stroke into inner/outer radii.
func ringRadii(radius, thickness float32) (float32, float32) {
	half := thickness / 2
	return max(radius-half, 0), radius + half
}

// intersect returns the overlap of a and b, or an empty rect at a's origin.
func intersect(a, b render.Rect) render.Rect {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.W, b.X+b.W)
	y1 := min(a.Y+a.H, b.Y+b.H)
	if x1 <= x0 || y1 <= y0 {
		return render.Rect{X: a.X, Y: a.Y}
	}
	return render.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// scissorBox snaps r outward to whole pixels.
func scissorBox(r render.Rect) (x, y, w, h int32) {
	x0 := math.Floor(float64(r.X))
	y0 := math.Floor(float64(r.Y))
	x1 := math.Ceil(float64(r.X + r.W))
	y1 := math.Ceil(float64(r.Y + r.H))
	return int32(x0), int32(y0), int32(max(x1-x0, 0)), int32(max(y1-y0, 0))
}

// fontCodepoints covers ASCII, Latin-1 and Latin Extended-A, enough for
// volcano names like "Öræfajökull" or "Ljósufjöll".
func fontCodepoints() []rune {
	cps := make([]rune, 0, 0x17F-0x20+1)
	for r := rune(0x20); r <= 0x17F; r++ {
		if r >= 0x7F && r < 0xA0 {
			continue
		}
		cps = append(cps, r)
	}
	return cps
}
