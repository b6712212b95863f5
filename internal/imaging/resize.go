package imaging

import (
	"fmt"
	"math"
	"sort"

	"github.com/disintegration/imaging"
)

// DefaultFilter is the resample filter used when none is named.
const DefaultFilter = "nearest"

var filters = map[string]imaging.ResampleFilter{
	"nearest":     imaging.NearestNeighbor,
	"box":         imaging.Box,
	"linear":      imaging.Linear,
	"catmull-rom": imaging.CatmullRom,
	"lanczos":     imaging.Lanczos,
}

// ParseFilter returns the resample filter registered under name.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	f, ok := filters[name]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resample filter %q (want one of %v)", name, FilterNames())
	}
	return f, nil
}

// FilterNames lists the accepted filter names in sorted order.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resample returns a new width x height raster sampled from src.
//
// The result has its own freshly allocated buffer and the same channel
// count as src; src is not modified. A zero width or height yields an
// empty raster. With imaging.NearestNeighbor every output pixel is an
// exact copy of a source pixel.
//
// # Errors
//
//   - *AllocationError if the output buffer would be too large
//   - an error if src is empty but the target is not
func Resample(src *Raster, width, height int, filter imaging.ResampleFilter) (*Raster, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	n, err := BufferLen("resized image", width, height, src.Channels)
	if err != nil {
		return nil, err
	}
	dst := &Raster{Width: width, Height: height, Channels: src.Channels, Pix: make([]byte, n)}
	if n == 0 {
		return dst, nil
	}
	if src.Empty() {
		return nil, fmt.Errorf("cannot resample empty %dx%d raster to %dx%d", src.Width, src.Height, width, height)
	}

	dst.copyFromNRGBA(imaging.Resize(src.view(), width, height, filter))
	return dst, nil
}

// Resize replaces r with a width x height resampling of itself.
//
// The old buffer is dropped and every field is replaced in a single
// assignment. On error r is left unchanged.
func (r *Raster) Resize(width, height int, filter imaging.ResampleFilter) error {
	dst, err := Resample(r, width, height, filter)
	if err != nil {
		return err
	}
	*r = *dst
	return nil
}

// Scale resizes r by independent width and height factors.
//
// Target dimensions are truncated, not rounded: int(Width*wScale) by
// int(Height*hScale). Scaling by exactly 1.0 on both axes returns at once
// without touching the pixel buffer.
func (r *Raster) Scale(wScale, hScale float64, filter imaging.ResampleFilter) error {
	if !(wScale > 0) || !(hScale > 0) {
		return fmt.Errorf("invalid scale factors %gx%g: both must be greater than 0", wScale, hScale)
	}
	if wScale == 1 && hScale == 1 {
		return nil
	}

	width, height, err := ScaledSize(r.Width, r.Height, wScale, hScale)
	if err != nil {
		return err
	}
	return r.Resize(width, height, filter)
}

// ScaledSize returns the truncated dimensions of a width x height image
// scaled by wScale and hScale.
func ScaledSize(width, height int, wScale, hScale float64) (int, int, error) {
	w := math.Trunc(float64(width) * wScale)
	h := math.Trunc(float64(height) * hScale)
	if !(w >= 0) || !(h >= 0) {
		return 0, 0, fmt.Errorf("invalid scaled size %gx%g", w, h)
	}
	if w > math.MaxInt32 || h > math.MaxInt32 {
		return 0, 0, &AllocationError{What: "resized image", Size: fmt.Sprintf("%gx%g", w, h)}
	}
	return int(w), int(h), nil
}
