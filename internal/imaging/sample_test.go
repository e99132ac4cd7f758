package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestSamplePixel(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SamplePixel(img, 50, 50)
	if err != nil {
		t.Fatalf("SamplePixel failed: %v", err)
	}

	if result.Hex != "#ff8040" {
		t.Errorf("Hex: got %s, want #ff8040", result.Hex)
	}
	if result.RGB != (RGBColor{255, 128, 64}) {
		t.Errorf("RGB: got %+v", result.RGB)
	}
	// Hue of (255,128,64) is about 20 degrees: Orange.
	if result.HSL.H != 20 {
		t.Errorf("HSL.H: got %d, want 20", result.HSL.H)
	}
	if result.Channel != "Orange" {
		t.Errorf("Channel: got %q, want Orange", result.Channel)
	}
	// luma = 0.2126*255 + 0.7152*128 + 0.0722*64 = 150.39 -> zone 6
	if result.Zone != 6 {
		t.Errorf("Zone: got %d, want 6", result.Zone)
	}
}

func TestSamplePixel_Neutral(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		zone int
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 0},
		{"mid gray", color.RGBA{128, 128, 128, 255}, 5},
		{"white", color.RGBA{255, 255, 255, 255}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SamplePixel(createInMemoryImage(4, 4, tt.c), 1, 1)
			if err != nil {
				t.Fatalf("SamplePixel failed: %v", err)
			}
			if result.Channel != "" {
				t.Errorf("Channel: got %q, want empty for gray", result.Channel)
			}
			if result.Zone != tt.zone {
				t.Errorf("Zone: got %d, want %d", result.Zone, tt.zone)
			}
		})
	}
}

func TestSamplePixel_SemiTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 128, 64, 128})
		}
	}

	result, err := SamplePixel(img, 2, 2)
	if err != nil {
		t.Fatalf("SamplePixel failed: %v", err)
	}
	if result.RGB != (RGBColor{255, 128, 64}) {
		t.Errorf("RGB: got %+v, want straight {255 128 64}", result.RGB)
	}
	if result.Hex != "#ff8040" {
		t.Errorf("Hex: got %s, want #ff8040", result.Hex)
	}
	if result.Zone != 6 {
		t.Errorf("Zone: got %d, want 6", result.Zone)
	}
}

func TestSamplePixel_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if _, err := SamplePixel(img, p[0], p[1]); err == nil {
			t.Errorf("SamplePixel(%d,%d) should fail", p[0], p[1])
		}
	}
}

func TestSamplePoints(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 10, Y: 10, Label: "red"},
		{X: 90, Y: 10, Label: "green"},
		{X: 10, Y: 90, Label: "blue"},
		{X: 90, Y: 90},
	}

	result, err := SamplePoints(img, points)
	if err != nil {
		t.Fatalf("SamplePoints failed: %v", err)
	}
	if len(result.Samples) != 4 {
		t.Fatalf("got %d samples, want 4", len(result.Samples))
	}

	want := []struct {
		label   string
		channel string
	}{
		{"red", "Red"},
		{"green", "Green"},
		{"blue", "Blue"},
		{"", ""},
	}
	for i, w := range want {
		s := result.Samples[i]
		if s.Label != w.label || s.Channel != w.channel {
			t.Errorf("sample %d: got label=%q channel=%q, want %q %q", i, s.Label, s.Channel, w.label, w.channel)
		}
	}
}

func TestSamplePoints_Error(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})

	_, err := SamplePoints(img, []LabeledPoint{{X: 1, Y: 1}, {X: 50, Y: 50}})
	if err == nil {
		t.Error("SamplePoints should fail when any point is out of bounds")
	}
}
