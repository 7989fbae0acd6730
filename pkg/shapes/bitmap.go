// Package shapes provides ready-made confetto renderers. Each type
// implements confetto.Renderer; the kinematics engine hands them a draw
// options value with the alpha already scaled, and they compose the shape
// transform on top: center the shape on its origin, rotate, then translate
// to the confetto position.
package shapes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bitmap renders a confetto as a textured image centered on its position.
type Bitmap struct {
	Image *ebiten.Image
}

// Render draws the image rotated by rotation degrees around its center.
func (b *Bitmap) Render(dst *ebiten.Image, op *ebiten.DrawImageOptions, x, y, rotation float64) {
	bounds := b.Image.Bounds()
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(x, y)
	dst.DrawImage(b.Image, op)
}
