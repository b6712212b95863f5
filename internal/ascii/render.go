package ascii

import (
	"fmt"
	"io"

	"github.com/ironsheep/asciigen/internal/imaging"
)

// Terminator is the byte that ends every Art buffer.
const Terminator = 0

// Art is rendered text: rows of glyphs, each followed by '\n', and a final
// Terminator byte.
type Art []byte

// Body returns the text without the terminator.
func (a Art) Body() []byte {
	if len(a) == 0 {
		return nil
	}
	return a[:len(a)-1]
}

func (a Art) String() string {
	return string(a.Body())
}

// WriteTo writes the text followed by a newline to w.
func (a Art) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.Body())
	if err != nil {
		return int64(n), fmt.Errorf("failed to write art: %w", err)
	}
	m, err := io.WriteString(w, "\n")
	if err != nil {
		return int64(n + m), fmt.Errorf("failed to write art: %w", err)
	}
	return int64(n + m), nil
}

// Len returns the size of the Art buffer for a width x height raster,
// width*height + height + 1, or *imaging.AllocationError if that is too
// large to allocate.
func Len(width, height int) (int, error) {
	n, err := imaging.BufferLen("rendered text", width+1, height)
	if err != nil {
		return 0, err
	}
	if n+1 > imaging.MaxBufferBytes {
		return 0, &imaging.AllocationError{What: "rendered text", Size: fmt.Sprintf("%dx%d", width, height)}
	}
	return n + 1, nil
}

// Render converts r to text, one glyph per pixel.
//
// Rows run top to bottom and columns left to right. Each pixel's
// brightness is mapped through Glyph and each row ends with '\n'.
//
// On error no Art is returned: an invalid raster yields a plain error and
// an oversized one *imaging.AllocationError.
func Render(r *imaging.Raster, invert bool) (Art, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	n, err := Len(r.Width, r.Height)
	if err != nil {
		return nil, err
	}

	art := make(Art, 0, n)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			art = append(art, Glyph(r.Brightness(x, y), invert))
		}
		art = append(art, '\n')
	}
	art = append(art, Terminator)
	return art, nil
}
