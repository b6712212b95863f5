// Package ascii turns a raster into text whose characters approximate each
// pixel's brightness.
//
// Brightness values are quantized onto a ten character ramp running from
// the densest glyph '@' to the sparsest, a space:
//
//	@ % # * + = - : .
//
// Without inversion bright pixels become sparse characters, which suits
// dark terminal backgrounds drawn in light ink. With inversion the ramp is
// read backwards and bright pixels become dense characters.
//
// # Rendered Text
//
// Render produces an Art buffer holding exactly width*height glyphs, one
// newline per row and a single terminating zero byte, for a total length of
// width*height + height + 1.
package ascii
