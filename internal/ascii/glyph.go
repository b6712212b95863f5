package ascii

import "math"

// Ramp lists the glyphs from densest to sparsest.
const Ramp = "@%#*+=-:. "

// InverseRamp is Ramp read from sparsest to densest.
const InverseRamp = " .:-=+*#%@"

// RampLen is the number of glyphs in the ramp.
const RampLen = 10

// bucketWidth is slightly wider than 255/RampLen so that a brightness of
// exactly 255 still lands in the last bucket.
const bucketWidth = 255.1 / float64(RampLen)

// GlyphIndex quantizes a brightness in [0, 255] to a ramp index in
// [0, RampLen-1]. Values outside the range are clamped.
func GlyphIndex(brightness float64) int {
	switch {
	case math.IsNaN(brightness) || brightness <= 0:
		return 0
	case brightness >= 255:
		return RampLen - 1
	}
	return int(brightness / bucketWidth)
}

// Glyph returns the character for brightness. Without invert, index 0 (the
// darkest pixels) maps to '@'; with invert it maps to ' '.
func Glyph(brightness float64, invert bool) byte {
	i := GlyphIndex(brightness)
	if invert {
		return InverseRamp[i]
	}
	return Ramp[i]
}
