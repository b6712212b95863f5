package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Raster is a decoded image held as interleaved 8-bit channels.
//
// Pix is row-major: the channels of pixel (x, y) start at offset
// (y*Width + x) * Channels. The invariant
//
//	len(Pix) == Width * Height * Channels
//
// holds for every Raster returned by this package.
type Raster struct {
	// Width is the number of pixels per row.
	Width int

	// Height is the number of rows.
	Height int

	// Channels is the number of interleaved channels per pixel (1-4).
	Channels int

	// Pix holds the pixel data. It is owned by the Raster.
	Pix []byte
}

// NewRaster wraps pix as a Raster after checking the buffer invariant.
// The Raster takes ownership of pix.
func NewRaster(width, height, channels int, pix []byte) (*Raster, error) {
	r := &Raster{Width: width, Height: height, Channels: channels, Pix: pix}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate reports whether the raster's fields are consistent with its buffer.
func (r *Raster) Validate() error {
	if r == nil {
		return fmt.Errorf("nil raster")
	}
	if r.Channels < 1 || r.Channels > 4 {
		return fmt.Errorf("unsupported channel count %d: must be 1-4", r.Channels)
	}
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("invalid raster dimensions %dx%d", r.Width, r.Height)
	}
	want := r.Width * r.Height * r.Channels
	if len(r.Pix) != want {
		return fmt.Errorf("pixel buffer holds %d bytes, %dx%dx%d raster needs %d",
			len(r.Pix), r.Width, r.Height, r.Channels, want)
	}
	return nil
}

// Empty reports whether the raster has no pixels.
func (r *Raster) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// FromImage copies img into a new Raster.
//
// The channel count is chosen from the decoded image:
//   - *image.Gray, *image.Gray16 -> 1
//   - fully opaque color images -> 3
//   - images with any transparent pixel -> 4
//
// Gray images with alpha decode to NRGBA and therefore get 4 channels.
func FromImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	channels := channelsOf(img)

	n, err := BufferLen("decoded image", bounds.Dx(), bounds.Dy(), channels)
	if err != nil {
		return nil, err
	}
	r := &Raster{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: channels,
		Pix:      make([]byte, n),
	}
	if n == 0 {
		return r, nil
	}

	if channels == 1 {
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				r.Pix[y*r.Width+x] = c.Y
			}
		}
		return r, nil
	}

	r.copyFromNRGBA(imaging.Clone(img))
	return r, nil
}

func channelsOf(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// view returns a view of the raster that disintegration/imaging can read.
// One and four channel rasters share Pix; the others are expanded to NRGBA.
func (r *Raster) view() image.Image {
	rect := image.Rect(0, 0, r.Width, r.Height)
	switch r.Channels {
	case 1:
		return &image.Gray{Pix: r.Pix, Stride: r.Width, Rect: rect}
	case 4:
		return &image.NRGBA{Pix: r.Pix, Stride: 4 * r.Width, Rect: rect}
	}

	dst := image.NewNRGBA(rect)
	for i, j := 0, 0; i < len(r.Pix); i, j = i+r.Channels, j+4 {
		d := dst.Pix[j : j+4 : j+4]
		if r.Channels == 2 {
			d[0], d[1], d[2], d[3] = r.Pix[i], r.Pix[i], r.Pix[i], r.Pix[i+1]
		} else {
			d[0], d[1], d[2], d[3] = r.Pix[i], r.Pix[i+1], r.Pix[i+2], 0xff
		}
	}
	return dst
}

// copyFromNRGBA fills Pix from src, which must be at least Width x Height.
// Gray rasters take the red channel, gray+alpha rasters red and alpha.
func (r *Raster) copyFromNRGBA(src *image.NRGBA) {
	for y := 0; y < r.Height; y++ {
		row := src.Pix[src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y):]
		for x := 0; x < r.Width; x++ {
			s := row[4*x : 4*x+4 : 4*x+4]
			d := r.Pix[(y*r.Width+x)*r.Channels:]
			switch r.Channels {
			case 1:
				d[0] = s[0]
			case 2:
				d[0], d[1] = s[0], s[3]
			case 3:
				d[0], d[1], d[2] = s[0], s[1], s[2]
			default:
				d[0], d[1], d[2], d[3] = s[0], s[1], s[2], s[3]
			}
		}
	}
}
