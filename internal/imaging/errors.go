package imaging

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxBufferBytes is the largest pixel or text buffer the pipeline will
// allocate. Requests above it fail with *AllocationError instead of
// exhausting memory.
const MaxBufferBytes = 1 << 30

// DecodeError reports an image file that could not be opened or decoded.
type DecodeError struct {
	// Path is the file that was being loaded.
	Path string

	// Reason is a short human readable cause such as "unknown format".
	Reason string

	// NotFound is set when the file could not be opened because it does
	// not exist.
	NotFound bool

	// Err is the underlying error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	msg := "error loading image: " + e.Reason
	if e.NotFound {
		msg += fmt.Sprintf(" - the file %s may not exist.", e.Path)
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AllocationError reports a buffer that could not be allocated, either
// because its size overflows or because it exceeds MaxBufferBytes.
type AllocationError struct {
	// What names the buffer, e.g. "resized image" or "rendered text".
	What string

	// Size describes the requested dimensions.
	Size string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("unable to allocate memory for %s (%s)", e.What, e.Size)
}

// BufferLen returns the product of dims as a buffer length.
//
// It fails with *AllocationError when a dimension is negative, when the
// product overflows, or when it exceeds MaxBufferBytes. A zero dimension
// yields a zero length.
func BufferLen(what string, dims ...int) (int, error) {
	total := uint64(1)
	for _, d := range dims {
		if d < 0 {
			return 0, &AllocationError{What: what, Size: formatDims(dims)}
		}
		hi, lo := bits.Mul64(total, uint64(d))
		if hi != 0 || lo > MaxBufferBytes {
			return 0, &AllocationError{What: what, Size: formatDims(dims)}
		}
		total = lo
	}
	return int(total), nil
}

func formatDims(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}
