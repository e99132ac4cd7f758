// Package imaging is the boundary between image files and the preset pipeline.
//
// It decodes reference photos, caches them, converts them to the pixel
// buffers consumed by package preset, and renders approximate previews of a
// preset applied to a photo. Everything that touches image.Image lives here;
// package preset only ever sees preset.PixelBuffer.
//
// Helpers for choosing what to analyze also live here: a coordinate grid
// overlay, per-pixel sampling in zone and mixer-channel terms, and a
// side-by-side analysis of two regions.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Regions are
// given as (x1,y1) inclusive and (x2,y2) exclusive.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Conversion and preview
// functions are stateless and never modify their input image.
//
// # Supported Formats
//
// PNG, JPEG and GIF are decoded by the standard library. WebP, TIFF and BMP
// are decoded through golang.org/x/image.
//
// # Error Handling
//
// Loading returns wrapped errors for missing files, undecodable data and
// empty images. Those are the "invalid upload" cases, and the pipeline is
// never invoked for them. Region crops reject rectangles outside the image
// bounds.
package imaging
