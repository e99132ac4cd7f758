package preset

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func analysisWith(mean, p5, p95, sat float64, rgb [3]float64) Analysis {
	a := NeutralAnalysis()
	a.Luminance = LuminanceStats{Mean: mean, Median: mean, P5: p5, P95: p95}
	a.Color = ColorStats{AverageSaturation: sat, RGBMean: rgb}
	return a
}

func TestDerive_Exposure(t *testing.T) {
	tests := []struct {
		name string
		mean float64
		want float64
	}{
		{"dark image brightens", 50, (128.0 - 50) / 128},
		{"bright image darkens", 200, (128.0 - 200) / 128},
		{"middle gray untouched", 128, 0},
		{"black brightens one stop", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := Derive(analysisWith(tt.mean, 0, 255, 0.4, [3]float64{tt.mean, tt.mean, tt.mean}))
			if math.Abs(adj.Exposure-tt.want) > 1e-12 {
				t.Errorf("Exposure: got %v, want %v", adj.Exposure, tt.want)
			}
		})
	}

	if adj := Derive(analysisWith(50, 0, 255, 0.4, [3]float64{50, 50, 50})); adj.Exposure <= 0 {
		t.Errorf("dark image: Exposure %v should be > 0", adj.Exposure)
	}
	if adj := Derive(analysisWith(200, 0, 255, 0.4, [3]float64{200, 200, 200})); adj.Exposure >= 0 {
		t.Errorf("bright image: Exposure %v should be < 0", adj.Exposure)
	}
}

func TestDerive_ToneCurve(t *testing.T) {
	tests := []struct {
		name           string
		p5, p95        float64
		wantContrast   float64
		wantHighlights float64
		wantShadows    float64
	}{
		{"narrow range", 100, 150, 40, 0, 0},
		{"reference range", 30, 210, 0, -5, 10},
		{"full range", 0, 255, -20, -27, 25},
		{"blown highlights", 60, 255, -7, -27, 0},
		{"slightly wide", 20, 225, -12, -12, 15},
		{"crushed shadows", 0, 120, 30, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := Derive(analysisWith(128, tt.p5, tt.p95, 0.4, [3]float64{128, 128, 128}))
			if adj.Contrast != tt.wantContrast {
				t.Errorf("Contrast: got %v, want %v", adj.Contrast, tt.wantContrast)
			}
			if adj.Highlights != tt.wantHighlights {
				t.Errorf("Highlights: got %v, want %v", adj.Highlights, tt.wantHighlights)
			}
			if adj.Shadows != tt.wantShadows {
				t.Errorf("Shadows: got %v, want %v", adj.Shadows, tt.wantShadows)
			}
			if adj.Whites != 0 || adj.Blacks != 0 {
				t.Errorf("Whites/Blacks: got %v/%v, want 0/0", adj.Whites, adj.Blacks)
			}
		})
	}
}

func TestDerive_NarrowRangeRaisesContrast(t *testing.T) {
	adj := Derive(analysisWith(125, 100, 150, 0.4, [3]float64{125, 125, 125}))
	if adj.Contrast <= 0 {
		t.Errorf("Contrast: got %v, want > 0", adj.Contrast)
	}
}

func TestDerive_Saturation(t *testing.T) {
	tests := []struct {
		name string
		sat  float64
		want float64
	}{
		{"on target", 0.4, 0},
		{"muted", 0.3, 10},
		{"very muted clamps", 0, 20},
		{"vivid", 0.5, -10},
		{"very vivid clamps", 1, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := Derive(analysisWith(128, 0, 255, tt.sat, [3]float64{128, 128, 128}))
			want := ChannelValues{Orange: tt.want, Blue: tt.want}
			if diff := cmp.Diff(want, adj.Saturation); diff != "" {
				t.Errorf("Saturation mismatch (-want +got):\n%s", diff)
			}
			if len(adj.Hue) != 0 || len(adj.Luminance) != 0 {
				t.Errorf("Hue/Luminance should be empty, got %v / %v", adj.Hue, adj.Luminance)
			}
		})
	}
}

func TestDerive_Calibration(t *testing.T) {
	// Mean 100, green cast.
	adj := Derive(analysisWith(100, 0, 255, 0.4, [3]float64{80, 160, 60}))

	want := Calibration{
		ShadowTint:   9, // (160 - 70) * 0.1
		RedPrimary:   Primary{Hue: 0, Saturation: -2},
		GreenPrimary: Primary{Hue: 0, Saturation: 6},
		BluePrimary:  Primary{Hue: 0, Saturation: -4},
	}
	if diff := cmp.Diff(want, adj.Calibration); diff != "" {
		t.Errorf("Calibration mismatch (-want +got):\n%s", diff)
	}
}

func TestDerive_CalibrationClamps(t *testing.T) {
	adj := Derive(analysisWith(0, 0, 255, 0.4, [3]float64{0, 255, 255}))

	if adj.Calibration.ShadowTint != 10 {
		t.Errorf("ShadowTint: got %v, want 10", adj.Calibration.ShadowTint)
	}
	if adj.Calibration.GreenPrimary.Saturation != 10 {
		t.Errorf("GreenPrimary.Saturation: got %v, want 10", adj.Calibration.GreenPrimary.Saturation)
	}

	adj = Derive(analysisWith(255, 0, 255, 0.4, [3]float64{255, 0, 0}))
	if adj.Calibration.ShadowTint != -10 {
		t.Errorf("ShadowTint: got %v, want -10", adj.Calibration.ShadowTint)
	}
	if adj.Calibration.BluePrimary.Saturation != -10 {
		t.Errorf("BluePrimary.Saturation: got %v, want -10", adj.Calibration.BluePrimary.Saturation)
	}
}

func TestDerive_DefaultProfile(t *testing.T) {
	adj := Derive(NeutralAnalysis())
	if adj.Profile != "Adobe Color" {
		t.Errorf("Profile: got %q, want Adobe Color", adj.Profile)
	}
}

func TestDerive_BoundsHoldForAnyAnalysis(t *testing.T) {
	for mean := 0.0; mean <= 255; mean += 15 {
		for p5 := 0.0; p5 <= mean; p5 += 17 {
			for p95 := mean; p95 <= 255; p95 += 19 {
				for _, sat := range []float64{0, 0.2, 0.6, 1} {
					rgb := [3]float64{255 - mean, mean, p5}
					adj := Derive(analysisWith(mean, p5, p95, sat, rgb))
					checkBounds(t, adj)
				}
			}
		}
	}
}

func checkBounds(t *testing.T, adj Adjustments) {
	t.Helper()
	bounds := []struct {
		name   string
		v      float64
		lo, hi float64
	}{
		{"exposure", adj.Exposure, -2, 2},
		{"contrast", adj.Contrast, -20, 40},
		{"highlights", adj.Highlights, -40, 0},
		{"shadows", adj.Shadows, 0, 40},
		{"saturation orange", adj.Saturation.Get(Orange), -20, 20},
		{"saturation blue", adj.Saturation.Get(Blue), -20, 20},
		{"shadow tint", adj.Calibration.ShadowTint, -10, 10},
		{"red primary", adj.Calibration.RedPrimary.Saturation, -10, 10},
		{"green primary", adj.Calibration.GreenPrimary.Saturation, -10, 10},
		{"blue primary", adj.Calibration.BluePrimary.Saturation, -10, 10},
	}
	for _, b := range bounds {
		if b.v < b.lo || b.v > b.hi || math.IsNaN(b.v) {
			t.Errorf("%s = %v outside [%v, %v]", b.name, b.v, b.lo, b.hi)
		}
		if b.name != "exposure" && b.v != math.Trunc(b.v) {
			t.Errorf("%s = %v is not a whole number", b.name, b.v)
		}
	}
}

func TestDerive_FromAnalyzedImage(t *testing.T) {
	// A uniformly dark, desaturated image.
	a := Analyze(solidBuffer(10, 10, [3]uint8{40, 40, 40}))
	adj := Derive(a)

	if adj.Exposure <= 0 {
		t.Errorf("Exposure: got %v, want > 0", adj.Exposure)
	}
	if adj.Contrast != 40 {
		t.Errorf("Contrast: got %v, want 40 (zero dynamic range)", adj.Contrast)
	}
	if adj.Shadows != 5 {
		t.Errorf("Shadows: got %v, want 5", adj.Shadows)
	}
	if got := adj.Saturation.Get(Orange); got != 20 {
		t.Errorf("Saturation[Orange]: got %v, want 20", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 3},
		{-2.5, -2},
		{-3.5, -3},
		{-6.4, -6},
		{-5.6, -6},
		{0.49, 0},
		{-0.4, 0},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
