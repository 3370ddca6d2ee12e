package mapview

import "github.com/waozixyz/volcanomap/render"

// Project maps latitude/longitude into r with an equirectangular projection:
// longitude [-180,180] spans r left to right, latitude [90,-90] spans r top to bottom.
func Project(lat, lon float64, r render.Rect) render.Vec2 {
	x := remap(lon, -180, 180, float64(r.X), float64(r.X)+float64(r.W))
	y := remap(lat, 90, -90, float64(r.Y), float64(r.Y)+float64(r.H))
	return render.Vec2{X: float32(x), Y: float32(y)}
}

func remap(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}
