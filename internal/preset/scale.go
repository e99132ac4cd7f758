package preset

// Scale returns a copy of a with every numeric field multiplied by
// intensity/100.
//
// Intensity 0 zeroes the preset and 100 reproduces it exactly. Channels absent
// from the mixer maps stay absent and the profile is carried over unchanged.
// The input is not modified. Callers are expected to keep intensity within
// 0-100.
func Scale(a Adjustments, intensity float64) Adjustments {
	f := intensity / 100

	return Adjustments{
		Profile:    a.Profile,
		Exposure:   a.Exposure * f,
		Contrast:   a.Contrast * f,
		Highlights: a.Highlights * f,
		Shadows:    a.Shadows * f,
		Whites:     a.Whites * f,
		Blacks:     a.Blacks * f,
		Hue:        scaleChannels(a.Hue, f),
		Saturation: scaleChannels(a.Saturation, f),
		Luminance:  scaleChannels(a.Luminance, f),
		Calibration: Calibration{
			ShadowTint:   a.Calibration.ShadowTint * f,
			RedPrimary:   scalePrimary(a.Calibration.RedPrimary, f),
			GreenPrimary: scalePrimary(a.Calibration.GreenPrimary, f),
			BluePrimary:  scalePrimary(a.Calibration.BluePrimary, f),
		},
	}
}

func scaleChannels(v ChannelValues, f float64) ChannelValues {
	if v == nil {
		return nil
	}
	out := make(ChannelValues, len(v))
	for _, c := range Channels {
		if val, ok := v[c]; ok {
			out[c] = val * f
		}
	}
	return out
}

func scalePrimary(p Primary, f float64) Primary {
	return Primary{Hue: p.Hue * f, Saturation: p.Saturation * f}
}
