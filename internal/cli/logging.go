package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ironsheep/asciigen/internal/config"
)

// LogLevelEnv overrides the default of --log-level.
const LogLevelEnv = "ASCIIGEN_LOG_LEVEL"

func defaultLogLevel() string {
	if lvl := os.Getenv(LogLevelEnv); lvl != "" {
		return lvl
	}
	return "warn"
}

// newLogger returns a text logger on w. stdout is reserved for art, so
// logs always go to the error stream.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, &config.ConfigurationError{Reason: fmt.Sprintf("invalid log level %q", level)}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
