package ascii

import (
	"math"
	"testing"
)

func TestRamps(t *testing.T) {
	if RampLen != 10 {
		t.Fatalf("RampLen: got %d, want 10", RampLen)
	}
	if len(Ramp) != RampLen || len(InverseRamp) != RampLen {
		t.Fatalf("ramp lengths: got %d and %d, want %d", len(Ramp), len(InverseRamp), RampLen)
	}
	if Ramp[0] != '@' || Ramp[RampLen-1] != ' ' {
		t.Errorf("Ramp should run from '@' to ' ', got %q", Ramp)
	}
	for i := 0; i < RampLen; i++ {
		if InverseRamp[i] != Ramp[RampLen-1-i] {
			t.Errorf("InverseRamp[%d] = %q, want %q", i, InverseRamp[i], Ramp[RampLen-1-i])
		}
	}
}

func TestBucketWidth(t *testing.T) {
	if bucketWidth <= 25.5 || bucketWidth >= 25.52 {
		t.Errorf("bucketWidth: got %v, want 25.51", bucketWidth)
	}
	maxBrightness := 255.0
	if got := int(maxBrightness / bucketWidth); got != RampLen-1 {
		t.Errorf("255 / bucketWidth: got index %d, want %d", got, RampLen-1)
	}
}

func TestGlyphIndex_KnownValues(t *testing.T) {
	tests := []struct {
		brightness float64
		want       int
	}{
		{0, 0},
		{25.4, 0},
		{25.6, 1},
		{127.5, 4},
		{229, 8},
		{230, 9},
		{254.9, 9},
		{255, 9},
		{-3, 0},
		{300, 9},
		{math.Inf(1), 9},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := GlyphIndex(tt.brightness); got != tt.want {
			t.Errorf("GlyphIndex(%v): got %d, want %d", tt.brightness, got, tt.want)
		}
	}
}

func TestGlyphIndex_RangeAndMonotonic(t *testing.T) {
	prev := GlyphIndex(-10)
	for b := -10.0; b <= 300; b += 0.05 {
		i := GlyphIndex(b)
		if i < 0 || i > RampLen-1 {
			t.Fatalf("GlyphIndex(%v) = %d outside [0,%d]", b, i, RampLen-1)
		}
		if i < prev {
			t.Fatalf("GlyphIndex not monotonic: GlyphIndex(%v) = %d after %d", b, i, prev)
		}
		prev = i
	}
}

func TestGlyphIndex_AllBucketsReachable(t *testing.T) {
	seen := make(map[int]bool)
	for b := 0; b <= 255; b++ {
		seen[GlyphIndex(float64(b))] = true
	}
	if len(seen) != RampLen {
		t.Errorf("reached %d buckets over 0..255, want %d", len(seen), RampLen)
	}
}

func TestGlyph_Inversion(t *testing.T) {
	for b := 0.0; b <= 255; b += 0.5 {
		i := GlyphIndex(b)
		normal := Glyph(b, false)
		inverted := Glyph(b, true)

		if normal != Ramp[i] {
			t.Fatalf("Glyph(%v, false) = %q, want %q", b, normal, Ramp[i])
		}
		if inverted != InverseRamp[i] {
			t.Fatalf("Glyph(%v, true) = %q, want %q", b, inverted, InverseRamp[i])
		}
		if i > 0 && i < RampLen-1 && normal == inverted {
			t.Fatalf("Glyph(%v) should differ between inverted and normal, both %q", b, normal)
		}
	}
}

func TestGlyph_Extremes(t *testing.T) {
	tests := []struct {
		name       string
		brightness float64
		invert     bool
		want       byte
	}{
		{"dark", 0, false, '@'},
		{"bright", 255, false, ' '},
		{"dark inverted", 0, true, ' '},
		{"bright inverted", 255, true, '@'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Glyph(tt.brightness, tt.invert); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
