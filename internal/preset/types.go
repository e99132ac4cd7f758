package preset

import (
	"errors"
	"fmt"
	"math"
)

// ZoneCount is the number of luminance zones (Ansel Adams zones 0-X).
const ZoneCount = 11

// PixelBuffer is a decoded image as non-premultiplied 8-bit RGBA samples.
//
// Pix holds 4 bytes per pixel in row-major order with no padding between rows.
// A PixelBuffer is treated as immutable once handed to Analyze or
// ComputeHistogram.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// PixelCount returns the number of complete RGBA pixels in Pix.
func (p PixelBuffer) PixelCount() int {
	return len(p.Pix) / 4
}

// LuminanceStats summarizes the sampled luma distribution (0-255 scale).
type LuminanceStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P5     float64 `json:"p5"`
	P95    float64 `json:"p95"`
}

// ColorStats summarizes sampled color.
type ColorStats struct {
	// AverageSaturation is the mean HSV saturation (0-1).
	AverageSaturation float64 `json:"averageSaturation"`

	// RGBMean is the per-channel mean in R, G, B order (0-255).
	RGBMean [3]float64 `json:"rgbMean"`
}

// Analysis is the statistical summary of one image. It is produced once per
// decoded image and is read-only afterwards.
type Analysis struct {
	Luminance LuminanceStats `json:"luminance"`
	Color     ColorStats     `json:"color"`

	// Zones holds the percentage of samples falling in each luminance zone.
	Zones [ZoneCount]float64 `json:"zones"`

	// ZoneColors holds the mean RGB color of each zone.
	ZoneColors [ZoneCount][3]uint8 `json:"zoneColors"`
}

// Channel identifies one band of the HSL color mixer.
type Channel int

// HSL mixer channels, in mixer order.
const (
	Red Channel = iota
	Orange
	Yellow
	Green
	Aqua
	Blue
	Purple
	Magenta
)

// Channels lists every mixer channel in mixer order.
var Channels = [...]Channel{Red, Orange, Yellow, Green, Aqua, Blue, Purple, Magenta}

var channelNames = [...]string{"Red", "Orange", "Yellow", "Green", "Aqua", "Blue", "Purple", "Magenta"}

// ErrUnknownChannel is returned when a channel name is not one of the eight
// mixer channels.
var ErrUnknownChannel = errors.New("unknown HSL channel")

// String returns the channel name as used in XMP attribute names.
func (c Channel) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// Valid reports whether c is one of the eight mixer channels.
func (c Channel) Valid() bool {
	return c >= Red && c <= Magenta
}

// ParseChannel converts a channel name ("Red", "Aqua", ...) to a Channel.
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if n == name {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}

// MarshalText implements encoding.TextMarshaler so channels serialize by name,
// including when used as JSON object keys.
func (c Channel) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChannel, int(c))
	}
	return []byte(channelNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Channel) UnmarshalText(text []byte) error {
	ch, err := ParseChannel(string(text))
	if err != nil {
		return err
	}
	*c = ch
	return nil
}

// ChannelForHue maps a hue angle in degrees to the mixer channel whose band
// contains it.
func ChannelForHue(h float64) Channel {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	switch {
	case h < 15 || h >= 345:
		return Red
	case h < 45:
		return Orange
	case h < 75:
		return Yellow
	case h < 165:
		return Green
	case h < 195:
		return Aqua
	case h < 255:
		return Blue
	case h < 285:
		return Purple
	default:
		return Magenta
	}
}

// ChannelValues holds per-channel mixer adjustments. A missing channel means
// "no adjustment", which is distinct from an explicit zero.
type ChannelValues map[Channel]float64

// Get returns the adjustment for c, or 0 when c is absent.
func (v ChannelValues) Get(c Channel) float64 {
	return v[c]
}

// Clone returns an independent copy. Cloning nil yields nil.
func (v ChannelValues) Clone() ChannelValues {
	if v == nil {
		return nil
	}
	out := make(ChannelValues, len(v))
	for c, val := range v {
		out[c] = val
	}
	return out
}

// Primary is a calibration primary correction.
type Primary struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
}

// Calibration mimics the camera calibration panel.
type Calibration struct {
	ShadowTint   float64 `json:"shadowTint"`
	RedPrimary   Primary `json:"redPrimary"`
	GreenPrimary Primary `json:"greenPrimary"`
	BluePrimary  Primary `json:"bluePrimary"`
}

// Adjustments is a full set of preset parameters.
//
// Values are replaced, never mutated in place: Scale and WithProfile return
// new records with their own maps.
type Adjustments struct {
	Profile string `json:"profile"`

	Exposure   float64 `json:"exposure"`
	Contrast   float64 `json:"contrast"`
	Highlights float64 `json:"highlights"`
	Shadows    float64 `json:"shadows"`
	Whites     float64 `json:"whites"`
	Blacks     float64 `json:"blacks"`

	Hue        ChannelValues `json:"hue"`
	Saturation ChannelValues `json:"saturation"`
	Luminance  ChannelValues `json:"luminance"`

	Calibration Calibration `json:"calibration"`
}

// Clone returns a deep copy of a.
func (a Adjustments) Clone() Adjustments {
	out := a
	out.Hue = a.Hue.Clone()
	out.Saturation = a.Saturation.Clone()
	out.Luminance = a.Luminance.Clone()
	return out
}

// WithProfile returns a copy of a using the given profile name.
func (a Adjustments) WithProfile(profile string) Adjustments {
	out := a.Clone()
	out.Profile = profile
	return out
}

// Histogram holds per-channel value counts for display.
type Histogram struct {
	R [256]int `json:"r"`
	G [256]int `json:"g"`
	B [256]int `json:"b"`
}
