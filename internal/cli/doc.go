// Package cli implements the asciigen command line.
//
// The root command parses options into a config.RenderConfig, then runs
// the conversion pipeline:
//
//  1. Decode the image file into a raster (imaging.Open)
//  2. Resample it when either scale differs from 1.0 (Raster.Scale)
//  3. Render the raster to text (ascii.Render)
//  4. Write the text and a trailing newline to stdout
//
// Options are validated before the image is opened. Every failure is
// returned to the caller as an error; cmd/asciigen prints it as a single
// line on stderr and exits with status 1. Help and version requests
// return nil and exit with status 0.
//
// # Options
//
//	-i, --invert              bright pixels use the densest characters
//	-w, --width-scale scale   output width is original_width * scale
//	-h, --height-scale scale  output height is original_height * scale
//	-s, --scale scale         even scaling of both dimensions
//	    --filter name         resample filter (default "nearest")
//	    --log-level level     debug, info, warn or error (default "warn")
//	-v, --version             print version
//	-H, --help                print help
//
// -w and -h must be given together. -h is the height scale, not help.
//
// # Environment Variables
//
//	ASCIIGEN_LOG_LEVEL   default for --log-level
package cli
