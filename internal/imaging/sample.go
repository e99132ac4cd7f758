package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/lift-mcp/internal/preset"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor is a color in HSL space, rounded for display.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// LabeledPoint is a pixel coordinate with an optional descriptive label, such
// as "sky" or "skin".
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// PixelSample describes one pixel in the terms the preset pipeline uses.
type PixelSample struct {
	Label string   `json:"label,omitempty"`
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Hex   string   `json:"hex"`
	RGB   RGBColor `json:"rgb"`
	HSL   HSLColor `json:"hsl"`

	// Luma is the Rec. 709 luminance used for zone placement.
	Luma float64 `json:"luma"`

	// Zone is the tonal zone (0-10) the pixel counts toward.
	Zone int `json:"zone"`

	// Channel is the HSL mixer channel a hue adjustment would move this pixel
	// with. Empty for neutral (gray) pixels, which the mixer leaves alone.
	Channel string `json:"channel,omitempty"`
}

// SampleResult contains samples in the order the points were given.
type SampleResult struct {
	Samples []PixelSample `json:"samples"`
}

// SamplePixel reports the color, tonal zone and mixer channel of the pixel at
// (x, y). Coordinates are 0-based from the top-left corner. Color is reported
// unpremultiplied, ignoring alpha as the analysis does.
func SamplePixel(img image.Image, x, y int) (*PixelSample, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	r8, g8, b8 := px.R, px.G, px.B

	col := colorful.Color{R: float64(r8) / 255, G: float64(g8) / 255, B: float64(b8) / 255}
	h, s, l := col.Hsl()

	luma := preset.Luma(r8, g8, b8)
	sample := &PixelSample{
		X:    x,
		Y:    y,
		Hex:  col.Hex(),
		RGB:  RGBColor{R: r8, G: g8, B: b8},
		HSL:  HSLColor{H: int(math.Round(h)) % 360, S: int(math.Round(s * 100)), L: int(math.Round(l * 100))},
		Luma: luma,
		Zone: preset.ZoneFor(luma),
	}
	if s > 0 {
		sample.Channel = preset.ChannelForHue(h).String()
	}
	return sample, nil
}

// SamplePoints samples several points in one call. On error no partial
// results are returned.
func SamplePoints(img image.Image, points []LabeledPoint) (*SampleResult, error) {
	results := make([]PixelSample, 0, len(points))

	for _, p := range points {
		sample, err := SamplePixel(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		sample.Label = p.Label
		results = append(results, *sample)
	}

	return &SampleResult{Samples: results}, nil
}
