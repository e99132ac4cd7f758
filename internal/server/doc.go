// Package server implements the MCP (Model Context Protocol) server that
// derives Lightroom presets from reference photos.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Load a photo and get metadata
//   - image_grid: Coordinate grid for choosing regions
//
// Analysis:
//   - preset_analyze: Tonal and color statistics
//   - preset_generate: Derive adjustments at an intensity
//   - preset_histogram: Per-channel histograms
//   - preset_preview: Approximate rendering with before/after histograms
//   - preset_sample: Zone and mixer channel of individual pixels
//   - preset_compare_regions: Tonal difference between two regions
//
// Export:
//   - preset_xmp: Render an XMP preset document
//   - preset_export: Write an .xmp preset to disk
//   - preset_profiles: List camera profiles
//
// Tools that take an intensity fall back to the configured default when it
// is omitted; see package config.
//
// # Image Caching
//
// Decoded photos are cached by path for the lifetime of the process, so a
// client can analyze, preview and export one photo without decoding it again.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC error responses:
//   - code: -32602 when the arguments are at fault (missing path, bad
//     intensity, invalid preset name, region out of bounds)
//   - code: -32000 for other failures (unreadable or undecodable file, disk
//     write errors)
//   - data: The Go error string
package server
