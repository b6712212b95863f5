package imaging

import "math"

// Perceptual channel weights (ITU-R BT.601).
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// Brightness returns the alpha-weighted perceived brightness of pixel (x, y)
// in the range [0, 255].
//
// Channels are interpreted by count:
//   - 1: gray, replicated to red, green and blue; opaque
//   - 2: gray replicated as above, second channel is alpha
//   - 3: red, green, blue; opaque
//   - 4: red, green, blue, alpha
//
// The result is Luma(r, g, b) * alpha/255, so a fully transparent pixel
// has brightness 0 whatever its color.
//
// Coordinates must lie inside the raster; others panic with an index error.
func (r *Raster) Brightness(x, y int) float64 {
	i := (y*r.Width + x) * r.Channels
	p := r.Pix[i : i+r.Channels : i+r.Channels]

	var red, green, blue, alpha uint8
	switch r.Channels {
	case 1:
		red, green, blue, alpha = p[0], p[0], p[0], 0xff
	case 2:
		red, green, blue, alpha = p[0], p[0], p[0], p[1]
	case 3:
		red, green, blue, alpha = p[0], p[1], p[2], 0xff
	default:
		red, green, blue, alpha = p[0], p[1], p[2], p[3]
	}

	return Luma(red, green, blue) * (float64(alpha) / 255.0)
}

// Luma computes sqrt(0.299*R² + 0.587*G² + 0.114*B²), a perceptual
// brightness in [0, 255] for 8-bit components.
func Luma(r, g, b uint8) float64 {
	rf, gf, bf := float64(r), float64(g), float64(b)
	return math.Sqrt(lumaRed*rf*rf + lumaGreen*gf*gf + lumaBlue*bf*bf)
}
