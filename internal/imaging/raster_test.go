package imaging

import (
	"errors"
	"math"
	"testing"
)

func TestNewRaster(t *testing.T) {
	tests := []struct {
		name     string
		w, h, ch int
		pixLen   int
		wantErr  bool
	}{
		{"rgb", 2, 2, 3, 12, false},
		{"gray", 3, 1, 1, 3, false},
		{"empty", 0, 4, 4, 0, false},
		{"short buffer", 2, 2, 3, 11, true},
		{"long buffer", 2, 2, 4, 17, true},
		{"zero channels", 2, 2, 0, 0, true},
		{"five channels", 1, 1, 5, 5, true},
		{"negative width", -1, 2, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRaster(tt.w, tt.h, tt.ch, make([]byte, tt.pixLen))
			if tt.wantErr {
				if err == nil {
					t.Error("NewRaster should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRaster failed: %v", err)
			}
			if r.Width != tt.w || r.Height != tt.h || r.Channels != tt.ch {
				t.Errorf("got %dx%dx%d, want %dx%dx%d", r.Width, r.Height, r.Channels, tt.w, tt.h, tt.ch)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	var r *Raster
	if err := r.Validate(); err == nil {
		t.Error("Validate should fail for a nil raster")
	}
}

func TestBufferLen(t *testing.T) {
	n, err := BufferLen("test", 4, 3, 2)
	if err != nil {
		t.Fatalf("BufferLen failed: %v", err)
	}
	if n != 24 {
		t.Errorf("got %d, want 24", n)
	}

	n, err = BufferLen("test", 0, 1<<30)
	if err != nil || n != 0 {
		t.Errorf("zero dimension: got (%d, %v), want (0, nil)", n, err)
	}
}

func TestBufferLen_TooLarge(t *testing.T) {
	tests := []struct {
		name string
		dims []int
	}{
		{"over limit", []int{1 << 16, 1 << 16, 1}},
		{"overflow", []int{math.MaxInt, math.MaxInt, 4}},
		{"negative", []int{-1, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BufferLen("resized image", tt.dims...)
			var ae *AllocationError
			if !errors.As(err, &ae) {
				t.Fatalf("error type: got %T, want *AllocationError", err)
			}
			if ae.What != "resized image" {
				t.Errorf("What: got %q, want %q", ae.What, "resized image")
			}
		})
	}
}

func TestAllocationError_Message(t *testing.T) {
	_, err := BufferLen("resized image", 1<<16, 1<<16, 3)
	if err == nil {
		t.Fatal("BufferLen should fail")
	}
	want := "unable to allocate memory for resized image (65536x65536x3)"
	if err.Error() != want {
		t.Errorf("message: got %q, want %q", err.Error(), want)
	}
}
