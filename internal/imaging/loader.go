package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Open loads and decodes the image file at path into a Raster.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. Only the first
// frame of an animated GIF is used.
//
// # Errors
//
// Every failure is returned as *DecodeError. When the file does not exist
// the error has NotFound set and its message names the attempted path.
func Open(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{
			Path:     path,
			Reason:   "can't open file: " + openReason(err),
			NotFound: errors.Is(err, fs.ErrNotExist),
			Err:      err,
		}
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return r, nil
}

// Decode reads an image in any registered format from rd into a Raster.
//
// Decoding failures are returned as *DecodeError with an empty Path.
// A decoded image too large to hold returns *AllocationError.
func Decode(rd io.Reader) (*Raster, error) {
	img, _, err := image.Decode(rd)
	if err != nil {
		return nil, &DecodeError{Reason: decodeReason(err), Err: err}
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, &DecodeError{Reason: fmt.Sprintf("image has no pixels (%dx%d)", bounds.Dx(), bounds.Dy())}
	}

	return FromImage(img)
}

func openReason(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

func decodeReason(err error) string {
	switch {
	case errors.Is(err, image.ErrFormat):
		return "unknown image format"
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return "truncated image data"
	}
	return err.Error()
}
