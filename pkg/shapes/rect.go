package shapes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whiteImage is the shared 1x1 texture all solid-color shapes scale and
// tint. Created lazily so importing the package never touches the GPU.
var whiteImage *ebiten.Image

func white() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// Rect renders a confetto as a solid-color W x H rectangle centered on its
// position. This covers the classic paper-confetti look without per-shape
// textures.
type Rect struct {
	W, H  float64
	Color color.Color
}

// Render draws the rectangle rotated by rotation degrees around its center.
// The rectangle color multiplies into the ColorScale on top of the alpha
// the engine already applied.
func (r *Rect) Render(dst *ebiten.Image, op *ebiten.DrawImageOptions, x, y, rotation float64) {
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(-r.W/2, -r.H/2)
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(r.Color)
	dst.DrawImage(white(), op)
}
