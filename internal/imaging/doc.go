// Package imaging holds the raster side of the ASCII art pipeline.
//
// A Raster is a fully decoded image kept as a flat, row-major byte buffer
// with one to four interleaved 8-bit channels. This package creates rasters
// from image files, resamples them to new dimensions and computes the
// perceived brightness of individual pixels.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Channel Layout
//
// The channel count follows the decoded color model:
//   - 1: gray
//   - 2: gray, alpha
//   - 3: red, green, blue
//   - 4: red, green, blue, alpha
//
// 16-bit images are reduced to 8 bits per channel on decode.
//
// # Ownership
//
// A Raster exclusively owns its pixel buffer. Resampling never modifies a
// buffer in place: it allocates a new one and swaps the whole raster value,
// so Width, Height, Channels and Pix always describe the same buffer.
//
// # Error Handling
//
// Decoding failures are reported as *DecodeError and buffers that cannot be
// allocated as *AllocationError. Both are fatal for the command line tool.
package imaging
