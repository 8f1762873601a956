// Package cli provides the command-line interface for placeicon.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/placeicon/internal/icon"
	"github.com/jmylchreest/placeicon/internal/version"
)

// options holds the logging flags shared by all commands.
type options struct {
	verbose bool
	quiet   bool
}

// NewRootCmd builds the placeicon command tree.
// Running the root command without arguments writes the placeholder icon
// set into the current working directory.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "placeicon",
		Short: "Generate placeholder extension icons",
		Long: `placeicon writes icon16.png, icon48.png and icon128.png into the current
directory: a solid blue square with "AI" on the larger sizes and a white
dot on the smallest. Use them during development until branded artwork exists.`,
		Version:      version.Short(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	addLoggingFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func addLoggingFlags(fs *pflag.FlagSet, opts *options) {
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	var reporter *icon.Reporter
	if !opts.quiet {
		out := cmd.OutOrStdout()
		reporter = icon.NewReporter(out, isTerminal(out))
	}

	cfg := icon.DefaultConfig()
	logger.Debug("generating icons", "sizes", cfg.Sizes, "dir", cfg.OutputDir)

	if err := icon.Generate(cfg, logger, reporter); err != nil {
		return fmt.Errorf("failed to generate icons: %w", err)
	}

	return nil
}

// newLogger configures the logger based on the verbose flag.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "placeicon",
		Output: w,
		Level:  level,
	})
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
