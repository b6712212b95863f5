package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/asciigen/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit status:
// 0 on success, help and version, 1 for every failure. Diagnostics go to
// stderr as one line; art only ever reaches stdout.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}, stdout, stderr)
	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "asciigen:", err)
		return 1
	}
	return 0
}
