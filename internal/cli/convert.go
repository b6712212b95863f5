package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ironsheep/asciigen/internal/ascii"
	"github.com/ironsheep/asciigen/internal/config"
	"github.com/ironsheep/asciigen/internal/imaging"
)

// Convert renders the image at path according to cfg and writes the art,
// followed by a newline, to w.
//
// Nothing is written to w unless rendering succeeds.
func Convert(path string, cfg config.RenderConfig, w io.Writer, logger *slog.Logger) error {
	filter, err := imaging.ParseFilter(cfg.Filter)
	if err != nil {
		return &config.ConfigurationError{Reason: err.Error()}
	}

	img, err := imaging.Open(path)
	if err != nil {
		return err
	}
	logger.Debug("decoded image",
		"path", path, "width", img.Width, "height", img.Height, "channels", img.Channels)

	if cfg.NeedsResample() {
		if err := img.Scale(cfg.WidthScale, cfg.HeightScale, filter); err != nil {
			return fmt.Errorf("failed to resize image: %w", err)
		}
		logger.Debug("resized image",
			"width", img.Width, "height", img.Height, "filter", cfg.Filter)
	}

	art, err := ascii.Render(img, cfg.Invert)
	if err != nil {
		return fmt.Errorf("error creating art string: %w", err)
	}
	logger.Debug("rendered art", "bytes", len(art), "invert", cfg.Invert)

	_, err = art.WriteTo(w)
	return err
}
