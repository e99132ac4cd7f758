package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/ironsheep/lift-mcp/internal/imaging"
	"github.com/ironsheep/lift-mcp/internal/preset"
)

// errInvalidArgument marks tool errors caused by the caller's arguments. They
// are reported with the JSON-RPC invalid params code.
var errInvalidArgument = errors.New("invalid argument")

func invalidArgf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errInvalidArgument, fmt.Sprintf(format, args...))
}

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "preset_generate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Argument errors return code -32602; other tool failures return -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Printf("Tool %s failed: %v", params.Name, err)
		if errors.Is(err, errInvalidArgument) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	text, err := marshalResult(result)
	if err != nil {
		log.Printf("Tool %s result encoding failed: %v", params.Name, err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_grid":
		return s.handleImageGrid(args)

	case "preset_analyze":
		return s.handlePresetAnalyze(args)
	case "preset_generate":
		return s.handlePresetGenerate(args)
	case "preset_histogram":
		return s.handlePresetHistogram(args)
	case "preset_preview":
		return s.handlePresetPreview(args)
	case "preset_sample":
		return s.handlePresetSample(args)
	case "preset_compare_regions":
		return s.handlePresetCompareRegions(args)

	case "preset_xmp":
		return s.handlePresetXMP(args)
	case "preset_export":
		return s.handlePresetExport(args)
	case "preset_profiles":
		return s.handlePresetProfiles(args)

	default:
		return nil, invalidArgf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// marshalResult converts a tool result to the pretty-printed JSON placed in
// the text content block.
func marshalResult(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(b), nil
}

// decodeArgs unmarshals tool arguments. Missing arguments decode as an empty
// object so that tools without required fields accept a bare call.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	return nil
}

// loadImage loads path from the cache, cropped to region when one is given.
func (s *Server) loadImage(path string, region *imaging.Region) (image.Image, error) {
	if path == "" {
		return nil, invalidArgf("path is required")
	}
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return img, nil
	}
	cropped, err := imaging.CropRegion(img, *region)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	return cropped, nil
}

// intensity resolves an optional intensity argument against the configured
// default.
func (s *Server) intensity(v *float64) (float64, error) {
	if v == nil {
		return s.cfg.DefaultIntensity, nil
	}
	if *v < 0 || *v > 100 {
		return 0, invalidArgf("intensity must be between 0 and 100, got %v", *v)
	}
	return *v, nil
}

// profile resolves an optional profile argument against the configured
// default.
func (s *Server) profile(name string) (string, error) {
	if name == "" {
		return s.cfg.DefaultProfile, nil
	}
	p, err := preset.ParseProfile(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	return p, nil
}

// supplied checks the profile carried by client-supplied adjustments. A
// non-empty override replaces it; an empty result falls back to the
// configured default.
func (s *Server) supplied(adj preset.Adjustments, override string) (preset.Adjustments, error) {
	name := override
	if name == "" {
		name = adj.Profile
	}
	p, err := s.profile(name)
	if err != nil {
		return adj, err
	}
	return adj.WithProfile(p), nil
}

// derive analyzes img and derives adjustments using the given profile.
func derive(img image.Image, profile string) (preset.Analysis, preset.Adjustments) {
	analysis := preset.Analyze(imaging.ToPixelBuffer(img))
	return analysis, preset.Derive(analysis).WithProfile(profile)
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, invalidArgf("path is required")
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageGridArgs struct {
	Path            string `json:"path"`
	Spacing         int    `json:"spacing"`
	ShowCoordinates *bool  `json:"show_coordinates"`
	Color           string `json:"color"`
}

func (s *Server) handleImageGrid(args json.RawMessage) (interface{}, error) {
	var a imageGridArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Spacing == 0 {
		a.Spacing = 100
	}
	show := true
	if a.ShowCoordinates != nil {
		show = *a.ShowCoordinates
	}
	img, err := s.loadImage(a.Path, nil)
	if err != nil {
		return nil, err
	}
	result, err := imaging.GridOverlay(img, a.Spacing, show, a.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	return result, nil
}

// === Analysis Handlers ===

type presetAnalyzeArgs struct {
	Path   string          `json:"path"`
	Region *imaging.Region `json:"region"`
}

func (s *Server) handlePresetAnalyze(args json.RawMessage) (interface{}, error) {
	var a presetAnalyzeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path, a.Region)
	if err != nil {
		return nil, err
	}
	return preset.Analyze(imaging.ToPixelBuffer(img)), nil
}

type presetGenerateArgs struct {
	Path      string          `json:"path"`
	Region    *imaging.Region `json:"region"`
	Profile   string          `json:"profile"`
	Intensity *float64        `json:"intensity"`
}

// GenerateResult is the outcome of deriving a preset from a photo.
type GenerateResult struct {
	Analysis    preset.Analysis    `json:"analysis"`
	Adjustments preset.Adjustments `json:"adjustments"`
	Scaled      preset.Adjustments `json:"scaled"`
	Intensity   float64            `json:"intensity"`
}

func (s *Server) handlePresetGenerate(args json.RawMessage) (interface{}, error) {
	var a presetGenerateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	intensity, err := s.intensity(a.Intensity)
	if err != nil {
		return nil, err
	}
	profile, err := s.profile(a.Profile)
	if err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path, a.Region)
	if err != nil {
		return nil, err
	}

	analysis, adj := derive(img, profile)
	s.debugf("derived preset for %s: exposure=%v contrast=%v", a.Path, adj.Exposure, adj.Contrast)

	return &GenerateResult{
		Analysis:    analysis,
		Adjustments: adj,
		Scaled:      preset.Scale(adj, intensity),
		Intensity:   intensity,
	}, nil
}

func (s *Server) handlePresetHistogram(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path, nil)
	if err != nil {
		return nil, err
	}
	h := preset.ComputeHistogram(imaging.ToPixelBuffer(img))
	return &h, nil
}

type presetPreviewArgs struct {
	Path         string              `json:"path"`
	Adjustments  *preset.Adjustments `json:"adjustments"`
	Intensity    *float64            `json:"intensity"`
	MaxDimension int                 `json:"max_dimension"`
}

func (s *Server) handlePresetPreview(args json.RawMessage) (interface{}, error) {
	var a presetPreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	intensity, err := s.intensity(a.Intensity)
	if err != nil {
		return nil, err
	}
	if a.MaxDimension < 0 {
		return nil, invalidArgf("max_dimension must not be negative, got %d", a.MaxDimension)
	}
	if a.MaxDimension == 0 {
		a.MaxDimension = s.cfg.PreviewMaxDimension
	}
	img, err := s.loadImage(a.Path, nil)
	if err != nil {
		return nil, err
	}

	var adj preset.Adjustments
	if a.Adjustments != nil {
		adj = *a.Adjustments
	} else {
		_, adj = derive(img, s.cfg.DefaultProfile)
	}
	return imaging.RenderPreview(img, adj, intensity, a.MaxDimension)
}

type presetSampleArgs struct {
	Path   string                 `json:"path"`
	Points []imaging.LabeledPoint `json:"points"`
}

func (s *Server) handlePresetSample(args json.RawMessage) (interface{}, error) {
	var a presetSampleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, invalidArgf("points must contain at least one point")
	}
	img, err := s.loadImage(a.Path, nil)
	if err != nil {
		return nil, err
	}
	result, err := imaging.SamplePoints(img, a.Points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	return result, nil
}

type presetCompareArgs struct {
	Path   string          `json:"path"`
	First  *imaging.Region `json:"first"`
	Second *imaging.Region `json:"second"`
}

func (s *Server) handlePresetCompareRegions(args json.RawMessage) (interface{}, error) {
	var a presetCompareArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.First == nil || a.Second == nil {
		return nil, invalidArgf("first and second regions are required")
	}
	img, err := s.loadImage(a.Path, nil)
	if err != nil {
		return nil, err
	}
	result, err := imaging.CompareRegions(img, *a.First, *a.Second)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	return result, nil
}

// === Export Handlers ===

type presetXMPArgs struct {
	Adjustments *preset.Adjustments `json:"adjustments"`
	Name        string              `json:"name"`
	Intensity   *float64            `json:"intensity"`
}

// XMPResult is a rendered preset document.
type XMPResult struct {
	Filename  string  `json:"filename"`
	UUID      string  `json:"uuid"`
	Intensity float64 `json:"intensity"`
	XMP       string  `json:"xmp"`
}

// renderXMP validates name, scales adj and renders the document.
func renderXMP(adj preset.Adjustments, name string, intensity float64) (*XMPResult, error) {
	if err := preset.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgument, err)
	}
	scaled := preset.Scale(adj, intensity)
	return &XMPResult{
		Filename:  preset.Filename(name),
		UUID:      preset.StableID(scaled, name),
		Intensity: intensity,
		XMP:       preset.GenerateXMP(scaled, name),
	}, nil
}

func (s *Server) handlePresetXMP(args json.RawMessage) (interface{}, error) {
	var a presetXMPArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Adjustments == nil {
		return nil, invalidArgf("adjustments are required")
	}
	intensity, err := s.intensity(a.Intensity)
	if err != nil {
		return nil, err
	}
	adj, err := s.supplied(*a.Adjustments, "")
	if err != nil {
		return nil, err
	}
	return renderXMP(adj, a.Name, intensity)
}

type presetExportArgs struct {
	Name        string              `json:"name"`
	Path        string              `json:"path"`
	Adjustments *preset.Adjustments `json:"adjustments"`
	Profile     string              `json:"profile"`
	Intensity   *float64            `json:"intensity"`
	OutputDir   string              `json:"output_dir"`
}

// ExportResult describes an .xmp file written to disk.
type ExportResult struct {
	Filename  string  `json:"filename"`
	Path      string  `json:"path"`
	UUID      string  `json:"uuid"`
	Intensity float64 `json:"intensity"`
	Bytes     int     `json:"bytes"`
}

func (s *Server) handlePresetExport(args json.RawMessage) (interface{}, error) {
	var a presetExportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if (a.Path == "") == (a.Adjustments == nil) {
		return nil, invalidArgf("exactly one of path or adjustments is required")
	}
	intensity, err := s.intensity(a.Intensity)
	if err != nil {
		return nil, err
	}

	var adj preset.Adjustments
	if a.Adjustments != nil {
		adj, err = s.supplied(*a.Adjustments, a.Profile)
		if err != nil {
			return nil, err
		}
	} else {
		profile, err := s.profile(a.Profile)
		if err != nil {
			return nil, err
		}
		img, err := s.loadImage(a.Path, nil)
		if err != nil {
			return nil, err
		}
		_, adj = derive(img, profile)
	}

	doc, err := renderXMP(adj, a.Name, intensity)
	if err != nil {
		return nil, err
	}

	dir := a.OutputDir
	if dir == "" {
		dir = s.cfg.OutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	out := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(out, []byte(doc.XMP), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write preset: %w", err)
	}
	s.debugf("wrote %s (%d bytes)", out, len(doc.XMP))

	return &ExportResult{
		Filename:  doc.Filename,
		Path:      out,
		UUID:      doc.UUID,
		Intensity: intensity,
		Bytes:     len(doc.XMP),
	}, nil
}

// ProfilesResult lists the supported camera profiles.
type ProfilesResult struct {
	Profiles []string `json:"profiles"`
	Default  string   `json:"default"`
}

func (s *Server) handlePresetProfiles(args json.RawMessage) (interface{}, error) {
	return &ProfilesResult{
		Profiles: preset.SupportedProfiles,
		Default:  s.cfg.DefaultProfile,
	}, nil
}
