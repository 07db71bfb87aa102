// Package imaging moves pixel grids in and out of image files and renders
// them for inspection.
//
// It is the boundary between the seam package, which only knows about an
// arena of linked pixels, and raster formats on disk. Decoding and encoding
// go through github.com/disintegration/imaging, so PNG, JPEG, GIF, TIFF and
// BMP are supported, plus WebP for decoding only.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost live pixel of the row)
//   - Y: vertical position (0 = topmost row)
//
// Coordinates always refer to the current grid, so after a seam is deleted
// every pixel to its right moves one column left.
//
// # Rendering
//
// Render, Preview and EnergyPreview walk each row by traversal, so deleted
// pixels never appear in output. Previews are base64 PNG, optionally scaled
// with nearest-neighbour sampling. The energy heat map blends from deep blue
// to yellow in HCL space.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions
// read a *seam.Grid and, for the energy views, write its energy fields, so
// callers must not run them concurrently with edits on the same grid.
//
// # Error Handling
//
// Read and decode failures are reported as *DecodeError, encode and write
// failures as *EncodeError. Both unwrap to the underlying cause.
package imaging
