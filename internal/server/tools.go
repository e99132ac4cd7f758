package server

import "github.com/ironsheep/lift-mcp/internal/preset"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the reference photo (JPEG, PNG, WebP, GIF, TIFF or BMP)",
	}
}

func regionProperty(description string) map[string]interface{} {
	coord := func(d string) map[string]interface{} {
		return map[string]interface{}{"type": "integer", "description": d}
	}
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": coord("Left edge X coordinate (0-based)"),
			"y1": coord("Top edge Y coordinate (0-based)"),
			"x2": coord("Right edge X coordinate (exclusive)"),
			"y2": coord("Bottom edge Y coordinate (exclusive)"),
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

func intensityProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Preset strength from 0 (no effect) to 100 (full). Defaults to the server's configured intensity.",
		"minimum":     0,
		"maximum":     100,
	}
}

func profileProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Camera profile for the preset",
		"enum":        preset.SupportedProfiles,
	}
}

func adjustmentsProperty(description string) map[string]interface{} {
	channels := map[string]interface{}{
		"type":        "object",
		"description": "Mixer values keyed by channel: Red, Orange, Yellow, Green, Aqua, Blue, Purple, Magenta",
		"additionalProperties": map[string]interface{}{
			"type": "number",
		},
	}
	primary := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"hue":        map[string]interface{}{"type": "number"},
			"saturation": map[string]interface{}{"type": "number"},
		},
	}
	number := map[string]interface{}{"type": "number"}
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"profile":    map[string]interface{}{"type": "string"},
			"exposure":   number,
			"contrast":   number,
			"highlights": number,
			"shadows":    number,
			"whites":     number,
			"blacks":     number,
			"hue":        channels,
			"saturation": channels,
			"luminance":  channels,
			"calibration": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"shadowTint":   number,
					"redPrimary":   primary,
					"greenPrimary": primary,
					"bluePrimary":  primary,
				},
			},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load a reference photo and return its dimensions, detected format, color depth and file size. Rejects files that are not decodable images.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_grid",
			Description: "Overlay a labelled coordinate grid on a photo and return it as base64 PNG. Use it to choose regions for preset_analyze, preset_generate and preset_compare_regions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Grid spacing in pixels. Default 100",
						"default":     100,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label each intersection with its x,y coordinates. Default true",
						"default":     true,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as #rrggbb. Default #ff0000",
					},
				},
				"required": []string{"path"},
			},
		},

		// Analysis
		{
			Name:        "preset_analyze",
			Description: "Compute tonal and color statistics of a photo: luminance mean, median and 5th/95th percentiles, average saturation, per-channel means, and the distribution and mean color of the 11 luminance zones.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty("Optional rectangle to analyze instead of the whole photo"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "preset_generate",
			Description: "Derive a Lightroom preset from a reference photo. Returns the analysis, the full-strength adjustments, and the adjustments scaled to the requested intensity.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"region":    regionProperty("Optional rectangle to derive the preset from"),
					"profile":   profileProperty(),
					"intensity": intensityProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "preset_histogram",
			Description: "Compute 256-bin red, green and blue histograms of a photo for display.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "preset_preview",
			Description: "Render an approximate preview of a preset applied to a photo, returned as base64 PNG with before and after histograms. Without adjustments, the preset is derived from the same photo.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty(),
					"adjustments": adjustmentsProperty("Unscaled adjustments to preview, e.g. the adjustments from preset_generate"),
					"intensity":   intensityProperty(),
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the preview in pixels. Defaults to the server's configured size",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "preset_sample",
			Description: "Sample pixels and report their color, luma, tonal zone (0-10) and the HSL mixer channel that would move them.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Points to sample, returned in the same order",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "preset_compare_regions",
			Description: "Analyze two regions of a photo (e.g. sky and foreground) and report their luminance and saturation differences and how much their tonal zones overlap.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"first":  regionProperty("First region"),
					"second": regionProperty("Second region"),
				},
				"required": []string{"path", "first", "second"},
			},
		},

		// Export
		{
			Name:        "preset_xmp",
			Description: "Render adjustments as a Lightroom XMP preset document, scaled to the requested intensity. Returns the suggested file name, the stable preset UUID and the XMP text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"adjustments": adjustmentsProperty("Unscaled adjustments to export"),
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Preset name: up to 100 letters, numbers, spaces, -, _ or .",
					},
					"intensity": intensityProperty(),
				},
				"required": []string{"adjustments", "name"},
			},
		},
		{
			Name:        "preset_export",
			Description: "Write a Lightroom .xmp preset to disk. Give either a photo path to derive the preset from, or adjustments to export directly.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Preset name: up to 100 letters, numbers, spaces, -, _ or .",
					},
					"path":        pathProperty(),
					"adjustments": adjustmentsProperty("Unscaled adjustments to export instead of deriving from a photo"),
					"profile":     profileProperty(),
					"intensity":   intensityProperty(),
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write into. Defaults to the server's configured output directory",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "preset_profiles",
			Description: "List the supported camera profiles and the default profile.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
