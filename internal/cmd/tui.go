package cmd

import (
	"fmt"
	"io"

	"github.com/Cyclone1070/grepbridge/internal/client"
	"github.com/Cyclone1070/grepbridge/internal/rlog"
	"github.com/Cyclone1070/grepbridge/internal/ui"
	"github.com/Cyclone1070/grepbridge/internal/ui/services"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/spf13/cobra"
)

// NewTUICommand creates and returns the interactive search subcommand
func NewTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [path] [pattern]",
		Short: "Search interactively",
		Long: `Open an interactive search screen with a pattern input, a path input and a
streaming result list. When both arguments are given the search starts
immediately. Press F1 for key bindings.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			c, err := client.NewFromConfig(&cfg.Search)
			if err != nil {
				return err
			}

			var opts ui.Options
			if len(args) > 0 {
				opts.Path = args[0]
			}
			if len(args) > 1 {
				opts.Pattern = args[1]
			}

			// Log lines would corrupt the alternate screen.
			rlog.SetOutput(io.Discard)

			spinnerFactory := func() spinner.Model {
				return spinner.New(spinner.WithSpinner(spinner.Dot))
			}
			return ui.NewUI(&cfg.UI, c, services.NewGlamourRenderer(), spinnerFactory, opts).Start()
		},
		SilenceUsage: true,
	}
}
