package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/lift-mcp/internal/preset"
)

// ToPixelBuffer converts any decoded image into the non-premultiplied 8-bit
// RGBA buffer the preset pipeline consumes.
//
// The conversion goes through imaging.Clone, which normalizes every Go image
// type (YCbCr JPEGs, paletted GIFs, 16-bit PNGs) to a tightly packed NRGBA
// image with its origin at (0,0).
func ToPixelBuffer(img image.Image) preset.PixelBuffer {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return preset.PixelBuffer{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    nrgba.Pix,
	}
}
