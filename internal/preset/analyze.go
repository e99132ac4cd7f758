package preset

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// targetSamples bounds the work done per image; larger images are
	// sampled with a proportionally larger stride.
	targetSamples = 10000

	// zoneWidth is the luma span of one zone (255 / 11, rounded).
	zoneWidth = 23.2
)

// Luma returns the Rec. 709 weighted brightness of an 8-bit RGB triple.
func Luma(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// ZoneFor returns the luminance zone (0-10) of a luma value.
func ZoneFor(luma float64) int {
	z := int(math.Floor(luma / zoneWidth))
	if z < 0 {
		return 0
	}
	if z > ZoneCount-1 {
		return ZoneCount - 1
	}
	return z
}

// NeutralAnalysis is returned for images with no samples.
func NeutralAnalysis() Analysis {
	a := Analysis{
		Luminance: LuminanceStats{Mean: 128, Median: 128, P5: 0, P95: 255},
		Color:     ColorStats{AverageSaturation: 0, RGBMean: [3]float64{128, 128, 128}},
	}
	for i := range a.ZoneColors {
		a.ZoneColors[i] = [3]uint8{128, 128, 128}
	}
	return a
}

// Analyze reduces a pixel buffer to luminance and color statistics.
//
// Every Nth pixel is sampled, N = max(1, pixelCount/10000), so roughly ten
// thousand samples are taken whatever the resolution. Percentiles are read
// from the sorted luma samples by index floor(count*q), without
// interpolation. Alpha is ignored.
//
// An empty buffer yields NeutralAnalysis rather than an error.
func Analyze(px PixelBuffer) Analysis {
	n := px.PixelCount()
	stride := max(1, n/targetSamples)

	lumas := make([]float64, 0, n/stride+1)
	var (
		totalSat               float64
		totalR, totalG, totalB float64
		zoneCounts             [ZoneCount]int
		zoneSums               [ZoneCount][3]float64
	)

	for i := 0; i < n; i += stride {
		o := i * 4
		r, g, b := px.Pix[o], px.Pix[o+1], px.Pix[o+2]
		totalR += float64(r)
		totalG += float64(g)
		totalB += float64(b)

		l := Luma(r, g, b)
		lumas = append(lumas, l)

		z := ZoneFor(l)
		zoneCounts[z]++
		zoneSums[z][0] += float64(r)
		zoneSums[z][1] += float64(g)
		zoneSums[z][2] += float64(b)

		_, s, _ := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsv()
		totalSat += s
	}

	count := len(lumas)
	if count == 0 {
		return NeutralAnalysis()
	}

	sort.Float64s(lumas)

	var sum float64
	for _, l := range lumas {
		sum += l
	}
	fc := float64(count)

	a := Analysis{
		Luminance: LuminanceStats{
			Mean:   sum / fc,
			Median: lumas[int(fc*0.5)],
			P5:     lumas[int(fc*0.05)],
			P95:    lumas[int(fc*0.95)],
		},
		Color: ColorStats{
			AverageSaturation: totalSat / fc,
			RGBMean:           [3]float64{totalR / fc, totalG / fc, totalB / fc},
		},
	}

	for z := 0; z < ZoneCount; z++ {
		a.Zones[z] = float64(zoneCounts[z]) / fc * 100
		if zoneCounts[z] == 0 {
			gray := uint8(roundHalfUp(float64(z) * 25.5))
			a.ZoneColors[z] = [3]uint8{gray, gray, gray}
			continue
		}
		zc := float64(zoneCounts[z])
		a.ZoneColors[z] = [3]uint8{
			uint8(roundHalfUp(zoneSums[z][0] / zc)),
			uint8(roundHalfUp(zoneSums[z][1] / zc)),
			uint8(roundHalfUp(zoneSums[z][2] / zc)),
		}
	}

	return a
}
