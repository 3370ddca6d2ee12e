package ebiten

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/waozixyz/volcanomap/render"
)

// Texture is a decoded image living on the GPU.
type Texture struct {
	img *eb.Image
}

func (t *Texture) Width() int  { return t.img.Bounds().Dx() }
func (t *Texture) Height() int { return t.img.Bounds().Dy() }

// TextureLoader decodes png and jpeg data with the standard image decoders.
type TextureLoader struct{}

func (TextureLoader) LoadTexture(data []byte, ext string) (render.Texture, error) {
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ebiten: decode %s image: %w", ext, err)
	}
	return &Texture{img: img}, nil
}
