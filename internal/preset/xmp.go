package preset

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	xmpPacketID       = "W5M0MpCehiHzreSzNTczkc9d"
	xmpToolkit        = "Adobe XMP Core 7.0-c000 1.000000"
	rdfNamespace      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	crsNamespace      = "http://ns.adobe.com/camera-raw-settings/1.0/"
	crsVersion        = "15.0"
	crsProcessVersion = "11.0"
)

type xmpAttr struct {
	name  string
	value string
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the five XML special characters using named entities.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// FormatSignedInt rounds v half-up and always prints its sign ("+0", "-6").
// Values beyond the int64 range print in full.
func FormatSignedInt(v float64) string {
	r := roundHalfUp(v)
	digits := strconv.FormatFloat(r, 'f', 0, 64)
	if r < 0 {
		return digits
	}
	return "+" + digits
}

// FormatSignedFloat2 prints v with two decimals and an explicit sign ("+1.23").
func FormatSignedFloat2(v float64) string {
	if v == 0 {
		// Drop the sign of -0 so it prints as "+0.00".
		v = 0
	}
	return fmt.Sprintf("%+.2f", v)
}

// GenerateXMP renders adjustments as a Lightroom-compatible XMP preset.
//
// All eight mixer channels are written for hue, saturation and luminance;
// absent channels are written as +0. The name and profile are escaped but not
// validated; see ValidateName for the export-time checks.
func GenerateXMP(a Adjustments, name string) string {
	attrs := []xmpAttr{
		{"crs:PresetType", "Normal"},
		{"crs:Cluster", ""},
		{"crs:UUID", StableID(a, name)},
		{"crs:SupportsAmount", "False"},
		{"crs:SupportsColor", "True"},
		{"crs:SupportsMonochrome", "True"},
		{"crs:SupportsHighDynamicRange", "True"},
		{"crs:SupportsNormalDynamicRange", "True"},
		{"crs:SupportsSceneReferred", "True"},
		{"crs:SupportsOutputReferred", "True"},
		{"crs:CameraModelRestriction", ""},
		{"crs:Copyright", ""},
		{"crs:ContactInfo", ""},
		{"crs:Version", crsVersion},
		{"crs:ProcessVersion", crsProcessVersion},
		{"crs:LookName", EscapeXML(a.Profile)},
		{"crs:Exposure2012", FormatSignedFloat2(a.Exposure)},
		{"crs:Contrast2012", FormatSignedInt(a.Contrast)},
		{"crs:Highlights2012", FormatSignedInt(a.Highlights)},
		{"crs:Shadows2012", FormatSignedInt(a.Shadows)},
		{"crs:Whites2012", FormatSignedInt(a.Whites)},
		{"crs:Blacks2012", FormatSignedInt(a.Blacks)},
	}

	for _, group := range []struct {
		prefix string
		values ChannelValues
	}{
		{"HueAdjustment", a.Hue},
		{"SaturationAdjustment", a.Saturation},
		{"LuminanceAdjustment", a.Luminance},
	} {
		for _, c := range Channels {
			attrs = append(attrs, xmpAttr{"crs:" + group.prefix + c.String(), FormatSignedInt(group.values.Get(c))})
		}
	}

	cal := a.Calibration
	attrs = append(attrs,
		xmpAttr{"crs:ShadowTint", FormatSignedInt(cal.ShadowTint)},
		xmpAttr{"crs:RedHue", FormatSignedInt(cal.RedPrimary.Hue)},
		xmpAttr{"crs:RedSaturation", FormatSignedInt(cal.RedPrimary.Saturation)},
		xmpAttr{"crs:GreenHue", FormatSignedInt(cal.GreenPrimary.Hue)},
		xmpAttr{"crs:GreenSaturation", FormatSignedInt(cal.GreenPrimary.Saturation)},
		xmpAttr{"crs:BlueHue", FormatSignedInt(cal.BluePrimary.Hue)},
		xmpAttr{"crs:BlueSaturation", FormatSignedInt(cal.BluePrimary.Saturation)},
		xmpAttr{"crs:HasSettings", "True"},
	)

	var b strings.Builder
	fmt.Fprintf(&b, "<?xpacket begin=\"\" id=\"%s\"?>\n", xmpPacketID)
	fmt.Fprintf(&b, "<x:xmpmeta xmlns:x=\"adobe:ns:meta/\" x:xmptk=\"%s\">\n", xmpToolkit)
	fmt.Fprintf(&b, " <rdf:RDF xmlns:rdf=\"%s\">\n", rdfNamespace)
	b.WriteString("  <rdf:Description rdf:about=\"\"\n")
	fmt.Fprintf(&b, "    xmlns:crs=\"%s\"", crsNamespace)
	for _, attr := range attrs {
		fmt.Fprintf(&b, "\n   %s=\"%s\"", attr.name, attr.value)
	}
	b.WriteString(">\n")
	b.WriteString("   <crs:Name>\n")
	b.WriteString("    <rdf:Alt>\n")
	fmt.Fprintf(&b, "     <rdf:li xml:lang=\"x-default\">%s</rdf:li>\n", EscapeXML(name))
	b.WriteString("    </rdf:Alt>\n")
	b.WriteString("   </crs:Name>\n")
	b.WriteString("  </rdf:Description>\n")
	b.WriteString(" </rdf:RDF>\n")
	b.WriteString("</x:xmpmeta>\n")
	b.WriteString(`<?xpacket end="w"?>`)
	return b.String()
}

// GenerateXMPWithIntensity scales a by intensity before rendering it.
func GenerateXMPWithIntensity(a Adjustments, name string, intensity float64) string {
	return GenerateXMP(Scale(a, intensity), name)
}
