package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waozixyz/volcanomap/dataset"
	"github.com/waozixyz/volcanomap/render"
)

// A 360x180 rect at the origin makes projected coordinates easy to read:
// x = lon+180, y = 90-lat.
var unitRect = render.Rect{W: 360, H: 180}

func TestHitTest(t *testing.T) {
	records := []dataset.Record{
		{Name: "A", Latitude: 0, Longitude: 0, Type: "Caldera"},
		{Name: "B", Latitude: 0, Longitude: 5, Type: "Stratovolcano"},
	}

	tests := []struct {
		name    string
		pointer render.Vec2
		filter  Filter
		want    int
	}{
		{"exactly on A", render.Vec2{X: 180, Y: 90}, Filter{}, 0},
		{"nearer to B", render.Vec2{X: 183, Y: 90}, Filter{}, 1},
		{"just inside threshold", render.Vec2{X: 180, Y: 97.9}, Filter{}, 0},
		{"at threshold is outside", render.Vec2{X: 180, Y: 98}, Filter{}, -1},
		{"filter hides nearest", render.Vec2{X: 180, Y: 90}, Filter{Type: "Stratovolcano", Active: true}, 1},
		{"filter hides all in range", render.Vec2{X: 180, Y: 90}, Filter{Type: "Maar", Active: true}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := HitTest(records, unitRect, tt.pointer, tt.filter)
			if tt.want < 0 {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, h.Index)
			assert.Equal(t, records[tt.want].Name, h.Record.Name)
		})
	}
}

func TestHitTest_TieKeepsEarlierRecord(t *testing.T) {
	records := []dataset.Record{
		{Name: "west", Latitude: 0, Longitude: -2, Type: "Caldera"},
		{Name: "east", Latitude: 0, Longitude: 2, Type: "Caldera"},
		{Name: "dup", Latitude: 0, Longitude: -2, Type: "Caldera"},
	}

	h, ok := HitTest(records, unitRect, render.Vec2{X: 180, Y: 90}, Filter{})
	require.True(t, ok)
	assert.Equal(t, 0, h.Index)
}

func TestHitTest_FilteredMarkerUnderPointer(t *testing.T) {
	records := []dataset.Record{
		{Name: "Etna", Latitude: 37.75, Longitude: 15, Type: "Stratovolcano"},
		{Name: "Far caldera", Latitude: -40, Longitude: 100, Type: "Caldera"},
	}
	at := Project(37.75, 15, unitRect)

	_, ok := HitTest(records, unitRect, at, Filter{Type: "Caldera", Active: true})
	assert.False(t, ok)
}

func TestDrawMarkers(t *testing.T) {
	records := []dataset.Record{
		{Name: "A", Latitude: 0, Longitude: 0, Type: "Caldera"},
		{Name: "B", Latitude: 10, Longitude: 10, Type: "Maar"},
		{Name: "C", Latitude: -10, Longitude: -10, Type: "Caldera"},
	}
	p := NewPalette([]string{"Caldera", "Maar"}, nil)
	ink := DefaultTheme().Ink
	hover := &Hover{Index: 2, Record: records[2], At: Project(-10, -10, unitRect)}

	c := newCanvas(400, 200)
	drawMarkers(c, records, unitRect, Filter{Type: "Caldera", Active: true}, p, hover, ink)

	squares := c.only("rect")
	require.Len(t, squares, 2)
	assert.Equal(t, render.Rect{X: 176, Y: 86, W: 8, H: 8}, squares[0].rect)
	caldera := p.ColorOr("Caldera")
	assert.Equal(t, render.WithAlpha(caldera, 200), squares[0].color)

	rings := c.only("ring")
	require.Len(t, rings, 1)
	assert.Equal(t, hover.At, rings[0].from)
	assert.Equal(t, float32(7), rings[0].radius)
	assert.Equal(t, ink, rings[0].color)

	dots := c.only("circle")
	require.Len(t, dots, 1)
	assert.Equal(t, float32(4), dots[0].radius)
	assert.Equal(t, uint8(255), dots[0].color.A)
}

func TestDrawMarkers_HoverMatchesIndexNotName(t *testing.T) {
	records := []dataset.Record{
		{Name: "Twin", Latitude: 0, Longitude: 0, Type: "Caldera"},
		{Name: "Twin", Latitude: 20, Longitude: 20, Type: "Caldera"},
	}
	p := NewPalette([]string{"Caldera"}, nil)
	hover := &Hover{Index: 1, Record: records[1]}

	c := newCanvas(400, 200)
	drawMarkers(c, records, unitRect, Filter{}, p, hover, DefaultTheme().Ink)

	assert.Len(t, c.only("ring"), 1)
}
