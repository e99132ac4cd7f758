package preset

import "math"

// Heuristic reference points.
const (
	middleGray        = 128.0
	referenceRange    = 180.0
	targetSaturation  = 0.4
	highlightKnee     = 200.0
	shadowKnee        = 50.0
	calibrationWeight = 0.1
)

// Derive maps analysis statistics to preset adjustments.
//
// The mapping is fixed and deterministic. Exposure pulls mean luma toward
// middle gray. Contrast widens a p5-p95 spread narrower than 180. Highlights
// only ever come down and shadows only ever come up. Saturation nudges the
// orange and blue bands toward an average saturation of 0.4. The calibration
// panel leans against the overall color cast. Every result sits inside its
// clamp, and all values except exposure are whole numbers.
func Derive(a Analysis) Adjustments {
	lum := a.Luminance
	rgb := a.Color.RGBMean

	satAdj := clamp(roundHalfUp((targetSaturation-a.Color.AverageSaturation)*100), -20, 20)

	return Adjustments{
		Profile:    DefaultProfile,
		Exposure:   clamp((middleGray-lum.Mean)/128, -2, 2),
		Contrast:   roundHalfUp(clamp((referenceRange-(lum.P95-lum.P5))/2, -20, 40)),
		Highlights: roundHalfUp(clamp((lum.P95-highlightKnee)*-0.5, -40, 0)),
		Shadows:    roundHalfUp(clamp((shadowKnee-lum.P5)*0.5, 0, 40)),
		Whites:     0,
		Blacks:     0,
		Hue:        ChannelValues{},
		Saturation: ChannelValues{Orange: satAdj, Blue: satAdj},
		Luminance:  ChannelValues{},
		Calibration: Calibration{
			ShadowTint:   roundHalfUp(clamp((rgb[1]-(rgb[0]+rgb[2])/2)*calibrationWeight, -10, 10)),
			RedPrimary:   Primary{Saturation: primarySaturation(rgb[0], lum.Mean)},
			GreenPrimary: Primary{Saturation: primarySaturation(rgb[1], lum.Mean)},
			BluePrimary:  Primary{Saturation: primarySaturation(rgb[2], lum.Mean)},
		},
	}
}

func primarySaturation(channelMean, lumaMean float64) float64 {
	return roundHalfUp(clamp((channelMean-lumaMean)*calibrationWeight, -10, 10))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundHalfUp rounds to the nearest integer with ties going toward +Inf.
// math.Round sends -2.5 to -3; presets expect -2.
func roundHalfUp(v float64) float64 {
	r := math.Floor(v + 0.5)
	if r == 0 {
		return 0
	}
	return r
}
