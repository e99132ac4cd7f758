// Package preset derives color-grading presets from image statistics.
//
// The pipeline runs in one direction:
//
//	PixelBuffer -> Analyze -> Analysis -> Derive -> Adjustments -> Scale -> GenerateXMP
//
// ComputeHistogram reads the same pixels independently for display.
//
// Every function here is pure and synchronous, does no I/O and is safe to
// call concurrently. Nothing in the pipeline returns an error. An empty image
// yields NeutralAnalysis. Name validation (ValidateName) belongs to the export
// boundary and runs before serialization.
//
// # Number Formatting
//
// XMP values follow Lightroom's conventions. Exposure is written with two
// decimals and an explicit sign ("+0.20"). Every other value is rounded
// half-up to an integer and signed ("+0", "-6").
package preset
