package cmd

import (
	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/Cyclone1070/grepbridge/internal/rlog"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// loadConfig is replaced in tests.
var loadConfig = config.Load

// NewRootCommand creates and returns the root cobra command for grepbridge
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grepbridge",
		Short: "Line-oriented text search over files and directory trees",
		Long: `grepbridge searches a file, or every non-hidden file below a directory,
for lines matching a regular expression (RE2 syntax).

The same engine is exported as a C library (search_path) for hosts that
receive matches through a callback.

Configuration is read from ~/.config/grepbridge/config.json (or config.yaml)
and GREPBRIDGE_<SECTION>_<KEY> environment variables.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			levelName, _ := cmd.Flags().GetString("log-level")

			level, err := rlog.ParseLevel(levelName)
			if err != nil {
				return err
			}
			if verbose {
				level = rlog.LevelDebug
			}
			rlog.SetLevel(level)
			return nil
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewTUICommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
