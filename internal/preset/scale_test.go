package preset

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fixtureAdjustments() Adjustments {
	return Adjustments{
		Profile:    "Adobe Vivid",
		Exposure:   0.4,
		Contrast:   20,
		Highlights: -12,
		Shadows:    16,
		Whites:     0,
		Blacks:     -4,
		Hue:        ChannelValues{Red: 6},
		Saturation: ChannelValues{Orange: -10, Blue: -10},
		Luminance:  ChannelValues{},
		Calibration: Calibration{
			ShadowTint:   3,
			RedPrimary:   Primary{Hue: 0, Saturation: 5},
			GreenPrimary: Primary{Hue: 0, Saturation: -2},
			BluePrimary:  Primary{Hue: 0, Saturation: -7},
		},
	}
}

func TestScale_Identity(t *testing.T) {
	in := fixtureAdjustments()
	got := Scale(in, 100)

	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("Scale(100) changed the preset (-want +got):\n%s", diff)
	}
}

func TestScale_Zero(t *testing.T) {
	got := Scale(fixtureAdjustments(), 0)

	want := Adjustments{
		Profile:    "Adobe Vivid",
		Hue:        ChannelValues{Red: 0},
		Saturation: ChannelValues{Orange: 0, Blue: 0},
		Luminance:  ChannelValues{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scale(0) mismatch (-want +got):\n%s", diff)
	}
}

func TestScale_Linear(t *testing.T) {
	in := fixtureAdjustments()

	for _, intensity := range []float64{0, 1, 25, 33, 50, 75, 99, 100} {
		f := intensity / 100
		got := Scale(in, intensity)

		fields := []struct {
			name      string
			got, base float64
		}{
			{"exposure", got.Exposure, in.Exposure},
			{"contrast", got.Contrast, in.Contrast},
			{"highlights", got.Highlights, in.Highlights},
			{"shadows", got.Shadows, in.Shadows},
			{"whites", got.Whites, in.Whites},
			{"blacks", got.Blacks, in.Blacks},
			{"hue red", got.Hue[Red], in.Hue[Red]},
			{"saturation orange", got.Saturation[Orange], in.Saturation[Orange]},
			{"saturation blue", got.Saturation[Blue], in.Saturation[Blue]},
			{"shadow tint", got.Calibration.ShadowTint, in.Calibration.ShadowTint},
			{"red saturation", got.Calibration.RedPrimary.Saturation, in.Calibration.RedPrimary.Saturation},
			{"green saturation", got.Calibration.GreenPrimary.Saturation, in.Calibration.GreenPrimary.Saturation},
			{"blue saturation", got.Calibration.BluePrimary.Saturation, in.Calibration.BluePrimary.Saturation},
		}
		for _, fld := range fields {
			if want := fld.base * f; math.Abs(fld.got-want) > 1e-12 {
				t.Errorf("intensity %v: %s got %v, want %v", intensity, fld.name, fld.got, want)
			}
		}
	}
}

func TestScale_AbsentChannelsStayAbsent(t *testing.T) {
	got := Scale(fixtureAdjustments(), 50)

	if _, ok := got.Hue[Orange]; ok {
		t.Error("Hue[Orange] was materialized by scaling")
	}
	if len(got.Saturation) != 2 {
		t.Errorf("Saturation: got %d entries, want 2", len(got.Saturation))
	}
	if len(got.Luminance) != 0 {
		t.Errorf("Luminance: got %d entries, want 0", len(got.Luminance))
	}

	nilMaps := fixtureAdjustments()
	nilMaps.Luminance = nil
	if got := Scale(nilMaps, 50); got.Luminance != nil {
		t.Errorf("nil Luminance became %v", got.Luminance)
	}
}

func TestScale_DoesNotMutateInput(t *testing.T) {
	in := fixtureAdjustments()
	before := in.Clone()

	out := Scale(in, 50)
	out.Hue[Red] = 99
	out.Saturation[Green] = 5

	if diff := cmp.Diff(before, in); diff != "" {
		t.Errorf("input changed (-before +after):\n%s", diff)
	}
}

func TestScale_KeepsProfile(t *testing.T) {
	for _, p := range SupportedProfiles {
		in := fixtureAdjustments().WithProfile(p)
		if got := Scale(in, 42).Profile; got != p {
			t.Errorf("Profile: got %q, want %q", got, p)
		}
	}
}

func TestWithProfile(t *testing.T) {
	in := fixtureAdjustments()
	out := in.WithProfile("Adobe Monochrome")

	if out.Profile != "Adobe Monochrome" {
		t.Errorf("Profile: got %q", out.Profile)
	}
	if in.Profile != "Adobe Vivid" {
		t.Errorf("input profile changed to %q", in.Profile)
	}

	out.Hue[Red] = -1
	if in.Hue[Red] != 6 {
		t.Error("WithProfile shares the hue map with its input")
	}
}
