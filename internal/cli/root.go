package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ironsheep/asciigen/internal/ascii"
	"github.com/ironsheep/asciigen/internal/config"
	"github.com/ironsheep/asciigen/internal/imaging"
)

// BuildInfo carries version metadata set by ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// NewRootCommand builds the asciigen command writing art to stdout and
// help, version and logs to the given streams.
func NewRootCommand(info BuildInfo, stdout, stderr io.Writer) *cobra.Command {
	flags := config.DefaultFlags()
	logLevel := defaultLogLevel()

	cmd := &cobra.Command{
		Use:   "asciigen [options] image",
		Short: "asciigen - CLI ASCII art generator from image files",
		Long: "asciigen converts an image file into ASCII art.\n\n" +
			"Each pixel becomes one character from the ramp \"" + ascii.Ramp + "\",\n" +
			"densest for dark pixels and sparsest for bright ones (-i reverses this).",
		Version:           info.Version,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if cmd.Flags().NFlag() == 0 {
					return cmd.Help()
				}
				return &config.ConfigurationError{Reason: "no image file given"}
			}

			logger, err := newLogger(stderr, logLevel)
			if err != nil {
				return err
			}

			flags.WidthSet = cmd.Flags().Changed("width-scale")
			flags.HeightSet = cmd.Flags().Changed("height-scale")
			cfg, err := config.Resolve(flags)
			if err != nil {
				return err
			}

			return Convert(args[len(args)-1], cfg, stdout, logger)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(fmt.Sprintf("asciigen - v%s\n  Build time: %s\n  Git commit: %s\n",
		info.Version, info.BuildTime, info.GitCommit))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.ConfigurationError{Reason: err.Error()}
	})
	bindFlags(cmd.Flags(), &flags, &logLevel)

	return cmd
}

// bindFlags registers the options on fs. The help flag is declared here so
// that -h stays free for the height scale.
func bindFlags(fs *pflag.FlagSet, f *config.Flags, logLevel *string) {
	fs.SortFlags = false
	fs.BoolVarP(&f.Invert, "invert", "i", f.Invert,
		"inverts light and dark colors. Brightest pixels use densest characters")
	fs.Float64VarP(&f.WidthScale, "width-scale", "w", f.WidthScale,
		"width scaling factor. Output's width will be original_width * scale")
	fs.Float64VarP(&f.HeightScale, "height-scale", "h", f.HeightScale,
		"height scaling factor. Output's height will be original_height * scale")
	fs.Float64VarP(&f.Scale, "scale", "s", f.Scale,
		"even scaling factor. Output's dimensions will be original * scale")
	fs.StringVar(&f.Filter, "filter", f.Filter,
		"resample filter: "+strings.Join(imaging.FilterNames(), ", "))
	fs.StringVar(logLevel, "log-level", *logLevel,
		"log verbosity on stderr: debug, info, warn or error")
	fs.BoolP("version", "v", false, "prints version")
	fs.BoolP("help", "H", false, "prints help")
}
