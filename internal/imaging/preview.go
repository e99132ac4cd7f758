package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/lift-mcp/internal/preset"
)

// maxContrast bounds the contrast slider in the preview; the contrast factor
// diverges at 259.
const maxContrast = 255

// PreviewResult contains an adjusted rendering of a photo plus display
// histograms of the photo before and after the adjustments.
type PreviewResult struct {
	// Width and Height are the dimensions of the rendered preview, which may
	// be smaller than the source.
	Width  int `json:"width"`
	Height int `json:"height"`

	// ImageBase64 is the adjusted preview encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// Intensity is the 0-100 strength the adjustments were applied at.
	Intensity float64 `json:"intensity"`

	Before preset.Histogram `json:"before"`
	After  preset.Histogram `json:"after"`
}

// RenderPreview applies a preset at the given intensity to an approximate
// rendering of img.
//
// Parameters:
//   - img: Source photo.
//   - adj: Unscaled adjustments; they are scaled by intensity here.
//   - intensity: 0-100.
//   - maxDimension: The preview is downscaled (aspect preserved) so neither
//     side exceeds this. Zero or negative disables downscaling.
//
// The rendering is a rough stand-in for the editor's engine, good enough to
// judge direction and strength. It is never fed back into preset derivation.
func RenderPreview(img image.Image, adj preset.Adjustments, intensity float64, maxDimension int) (*PreviewResult, error) {
	src := img
	b := img.Bounds()
	if maxDimension > 0 && (b.Dx() > maxDimension || b.Dy() > maxDimension) {
		src = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	out := ApplyAdjustments(src, preset.Scale(adj, intensity))

	encoded, err := encodePNGBase64(out)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
		Intensity:   intensity,
		Before:      preset.ComputeHistogram(ToPixelBuffer(src)),
		After:       preset.ComputeHistogram(ToPixelBuffer(out)),
	}, nil
}

// ApplyAdjustments renders already-scaled adjustments onto img.
//
// # Algorithm
//
//  1. Exposure: every channel is shifted by exposure*25.5 and clamped.
//  2. Contrast: channels are stretched about 128 by the classic
//     259(c+255) / 255(259-c) contrast factor.
//  3. HSL mixer: each non-gray pixel is assigned the mixer channel of its
//     hue. Hue moves by 0.3 degrees per unit, and saturation and lightness
//     scale by value/100 and value/200 respectively.
//
// Tone steps are skipped when exposure and contrast are both zero, and the
// mixer step when every mixer map is empty. Contrast is clamped to
// [-255, 255]. Adjustments work on straight (unpremultiplied) color, so
// semi-transparent pixels shift by the same amount as opaque ones, and alpha
// is preserved.
func ApplyAdjustments(img image.Image, adj preset.Adjustments) *image.RGBA {
	shift := adj.Exposure * 25.5
	c := math.Max(-maxContrast, math.Min(maxContrast, adj.Contrast))
	contrastFactor := (259 * (c + 255)) / (255 * (259 - c))
	tone := shift != 0 || c != 0
	mixer := len(adj.Hue)+len(adj.Saturation)+len(adj.Luminance) > 0

	return adjust.Apply(img, func(px color.RGBA) color.RGBA {
		if px.A == 0 {
			return px
		}
		n := color.NRGBAModel.Convert(px).(color.NRGBA)
		r, g, b := float64(n.R), float64(n.G), float64(n.B)
		if tone {
			r = toByte(contrastFactor*(toByte(r+shift)-128) + 128)
			g = toByte(contrastFactor*(toByte(g+shift)-128) + 128)
			b = toByte(contrastFactor*(toByte(b+shift)-128) + 128)
		}
		if mixer {
			r, g, b = mixHSL(r, g, b, adj)
		}
		out := color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: n.A}
		return color.RGBAModel.Convert(out).(color.RGBA)
	})
}

func mixHSL(r, g, b float64, adj preset.Adjustments) (float64, float64, float64) {
	col := colorful.Color{R: r / 255, G: g / 255, B: b / 255}
	h, s, l := col.Hsl()
	if s == 0 {
		return r, g, b
	}

	ch := preset.ChannelForHue(h)
	h = math.Mod(h+adj.Hue.Get(ch)*0.3+360, 360)
	s = clampUnit(s * (1 + adj.Saturation.Get(ch)/100))
	l = clampUnit(l * (1 + adj.Luminance.Get(ch)/200))

	nr, ng, nb := colorful.Hsl(h, s, l).Clamped().RGB255()
	return float64(nr), float64(ng), float64(nb)
}

// toByte rounds and clamps v to the 0-255 range.
func toByte(v float64) float64 {
	return math.Max(0, math.Min(255, math.Round(v)))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
