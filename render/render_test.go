package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FFB162", color.RGBA{0xFF, 0xB1, 0x62, 0xFF}},
		{"#ffc562ff", color.RGBA{0xFF, 0xC5, 0x62, 0xFF}},
		{"#d6cdbc80", color.RGBA{0xD6, 0xCD, 0xBC, 0x80}},
		{"1B2632", color.RGBA{0x1B, 0x26, 0x32, 0xFF}},
		{"  #EEE9DF ", color.RGBA{0xEE, 0xE9, 0xDF, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#FFF", "#GGGGGG", "#1234567"} {
		_, err := ParseHexColor(in)
		assert.Error(t, err, in)
	}
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "#A35139", HexString(MustHexColor("#a35139")))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	assert.True(t, r.Contains(Vec2{10, 20}))
	assert.True(t, r.Contains(Vec2{109, 69}))
	assert.False(t, r.Contains(Vec2{110, 30}))
	assert.False(t, r.Contains(Vec2{50, 70}))
	assert.Equal(t, Vec2{60, 45}, r.Center())
}
