package cli

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/ironsheep/asciigen/internal/config"
	"github.com/ironsheep/asciigen/internal/imaging"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConvert(t *testing.T) {
	path := createTestImage(t, 3, 2, color.Gray{Y: 128})
	cfg := config.RenderConfig{WidthScale: 1, HeightScale: 1, Filter: "nearest"}

	var buf bytes.Buffer
	if err := Convert(path, cfg, &buf, discardLogger()); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got, want := buf.String(), "===\n===\n\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConvert_ResizeTooLarge(t *testing.T) {
	path := createTestImage(t, 2, 2, color.Black)
	cfg := config.RenderConfig{WidthScale: 1 << 16, HeightScale: 1 << 16, Filter: "nearest"}

	var buf bytes.Buffer
	err := Convert(path, cfg, &buf, discardLogger())
	var ae *imaging.AllocationError
	if !errors.As(err, &ae) {
		t.Fatalf("error: got %T (%v), want *imaging.AllocationError", err, err)
	}
	if buf.Len() != 0 {
		t.Errorf("no output expected on allocation failure, got %q", buf.String())
	}
}

func TestConvert_UnknownFilter(t *testing.T) {
	cfg := config.RenderConfig{WidthScale: 2, HeightScale: 2, Filter: "mystery"}
	err := Convert("does-not-matter.png", cfg, io.Discard, discardLogger())

	var ce *config.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("error: got %T (%v), want *config.ConfigurationError", err, err)
	}
}
