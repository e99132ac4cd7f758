package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/lift-mcp/internal/preset"
)

// RegionComparison contrasts the tonal and color statistics of two regions of
// one photo, for example sky against foreground.
type RegionComparison struct {
	First  preset.Analysis `json:"first"`
	Second preset.Analysis `json:"second"`

	// MeanLumaDelta and MedianLumaDelta are second minus first (0-255 scale).
	MeanLumaDelta   float64 `json:"mean_luma_delta"`
	MedianLumaDelta float64 `json:"median_luma_delta"`

	// SaturationDelta is second minus first average saturation (0-1).
	SaturationDelta float64 `json:"saturation_delta"`

	// ZoneOverlap is the percentage of the two zone distributions that
	// coincide: 100 for identical tonal spread, 0 for fully disjoint.
	ZoneOverlap float64 `json:"zone_overlap"`
}

// CompareRegions analyzes two regions of img and reports how they differ.
func CompareRegions(img image.Image, r1, r2 Region) (*RegionComparison, error) {
	first, err := analyzeRegion(img, r1)
	if err != nil {
		return nil, fmt.Errorf("first region: %w", err)
	}
	second, err := analyzeRegion(img, r2)
	if err != nil {
		return nil, fmt.Errorf("second region: %w", err)
	}

	overlap := 0.0
	for z := 0; z < preset.ZoneCount; z++ {
		overlap += math.Min(first.Zones[z], second.Zones[z])
	}

	return &RegionComparison{
		First:           first,
		Second:          second,
		MeanLumaDelta:   round2(second.Luminance.Mean - first.Luminance.Mean),
		MedianLumaDelta: round2(second.Luminance.Median - first.Luminance.Median),
		SaturationDelta: round3(second.Color.AverageSaturation - first.Color.AverageSaturation),
		ZoneOverlap:     round2(overlap),
	}, nil
}

func analyzeRegion(img image.Image, r Region) (preset.Analysis, error) {
	cropped, err := CropRegion(img, r)
	if err != nil {
		return preset.Analysis{}, err
	}
	return preset.Analyze(ToPixelBuffer(cropped)), nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
