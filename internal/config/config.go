// Package config validates command line settings into a RenderConfig.
package config

import (
	"fmt"

	"github.com/ironsheep/asciigen/internal/imaging"
)

// Flags holds raw option values as parsed from the command line.
//
// A width or height scale counts as supplied when its Set field is true or
// its value is greater than 0.
type Flags struct {
	Invert      bool
	Scale       float64
	WidthScale  float64
	WidthSet    bool
	HeightScale float64
	HeightSet   bool
	Filter      string
}

// DefaultFlags returns the values used when no option is given.
func DefaultFlags() Flags {
	return Flags{
		Scale:  1.0,
		Filter: imaging.DefaultFilter,
	}
}

// RenderConfig is the validated, immutable configuration of one conversion.
type RenderConfig struct {
	// Invert reads the glyph ramp backwards so bright pixels are dense.
	Invert bool

	// WidthScale and HeightScale multiply the image dimensions. Both are > 0.
	WidthScale  float64
	HeightScale float64

	// Filter names the resample filter, see imaging.FilterNames.
	Filter string
}

// NeedsResample reports whether either scale differs from 1.0.
func (c RenderConfig) NeedsResample() bool {
	return c.WidthScale != 1 || c.HeightScale != 1
}

// ConfigurationError reports inconsistent or invalid options.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// Resolve validates f and produces the RenderConfig.
//
// If either a width or a height scale was supplied, both must be supplied
// and greater than 0. Otherwise the uniform Scale applies to both axes and
// must itself be greater than 0.
func Resolve(f Flags) (RenderConfig, error) {
	widthValid := f.WidthScale > 0
	heightValid := f.HeightScale > 0
	uniform := !f.WidthSet && !f.HeightSet && !widthValid && !heightValid

	if !uniform && (!widthValid || !heightValid) {
		return RenderConfig{}, &ConfigurationError{
			Reason: "if not using even scaling (-s), both width (-w) and height (-h) scales must be supplied and greater than 0",
		}
	}

	cfg := RenderConfig{
		Invert:      f.Invert,
		WidthScale:  f.WidthScale,
		HeightScale: f.HeightScale,
		Filter:      f.Filter,
	}
	if uniform {
		if !(f.Scale > 0) {
			return RenderConfig{}, &ConfigurationError{
				Reason: fmt.Sprintf("scale (-s) must be greater than 0, got %g", f.Scale),
			}
		}
		cfg.WidthScale = f.Scale
		cfg.HeightScale = f.Scale
	}

	if cfg.Filter == "" {
		cfg.Filter = imaging.DefaultFilter
	}
	if _, err := imaging.ParseFilter(cfg.Filter); err != nil {
		return RenderConfig{}, &ConfigurationError{Reason: err.Error()}
	}

	return cfg, nil
}
