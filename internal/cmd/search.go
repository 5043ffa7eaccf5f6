package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Cyclone1070/grepbridge/internal/client"
	"github.com/Cyclone1070/grepbridge/internal/config"
	"github.com/Cyclone1070/grepbridge/internal/rlog"
	"github.com/Cyclone1070/grepbridge/internal/ui/services"
	"github.com/spf13/cobra"
)

// ErrNoMatches is returned when a search completes without a match. main
// turns it into exit status 1, like grep.
var ErrNoMatches = errors.New("no matches")

// reportWidth is the word-wrap width of --report output.
const reportWidth = 100

type searchOptions struct {
	count         bool
	report        bool
	ignoreCase    bool
	gitignore     bool
	noLineNumbers bool
	include       []string
	exclude       []string
	binary        string
	maxLineBytes  int
	color         string
}

// NewSearchCommand creates and returns the search subcommand
func NewSearchCommand() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <path> <pattern>",
		Short: "Search a file or directory and print matching lines",
		Long: `Search a file, or every non-hidden regular file below a directory, for
lines matching pattern.

Output is "file:line:text" when searching a directory and "line:text" when
searching a single file.

Exit code: 0 if a line matched, 1 if nothing matched, 2 on error`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return runSearch(cmd.OutOrStdout(), cfg, args[0], args[1], opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "Print the number of matching lines per file instead of the lines")
	cmd.Flags().BoolVar(&opts.report, "report", false, "Print a markdown summary of the search")
	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Match case-insensitively (overrides config)")
	cmd.Flags().BoolVar(&opts.gitignore, "gitignore", false, "Skip paths listed in the root .gitignore (overrides config)")
	cmd.Flags().BoolVarP(&opts.noLineNumbers, "no-line-number", "N", false, "Do not count lines")
	cmd.Flags().StringSliceVarP(&opts.include, "include", "g", nil, "Only search files matching this glob (repeatable)")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "Skip files and directories matching this glob (repeatable)")
	cmd.Flags().StringVar(&opts.binary, "binary", "", "Binary file handling: none or quit (default from config)")
	cmd.Flags().IntVar(&opts.maxLineBytes, "max-line-bytes", -1, "Fail on lines longer than this many bytes (0 = unlimited, -1 = use config)")
	cmd.Flags().StringVar(&opts.color, "color", colorAuto, "Colorize output: auto, always or never")

	return cmd
}

// applySearchFlags layers command-line flags over the loaded configuration.
func applySearchFlags(cfg *config.Config, opts *searchOptions) error {
	if opts.ignoreCase {
		cfg.Search.CaseInsensitive = true
	}
	if opts.gitignore {
		cfg.Search.RespectGitignore = true
	}
	if opts.noLineNumbers {
		cfg.Search.LineNumbers = false
	}
	cfg.Search.Include = append(cfg.Search.Include, opts.include...)
	cfg.Search.Exclude = append(cfg.Search.Exclude, opts.exclude...)
	if opts.binary != "" {
		cfg.Search.BinaryDetection = opts.binary
	}
	if opts.maxLineBytes >= 0 {
		cfg.Search.MaxLineBytes = opts.maxLineBytes
	}
	return cfg.Validate()
}

func runSearch(out io.Writer, cfg *config.Config, path, pattern string, opts *searchOptions) error {
	if err := applySearchFlags(cfg, opts); err != nil {
		return err
	}
	colored, err := useColor(opts.color, out)
	if err != nil {
		return err
	}

	c, err := client.NewFromConfig(&cfg.Search)
	if err != nil {
		return err
	}

	p := newPrinter(out, colored)
	var (
		results []client.Result
		counts  = make(map[string]int)
		order   []string
		total   int
	)

	start := time.Now()
	rlog.Debugf("searching %s for %q", path, pattern)

	err = c.Search(path, pattern, func(r client.Result) error {
		total++
		if opts.report {
			results = append(results, r)
		}
		if opts.count {
			if _, ok := counts[r.FileName]; !ok {
				order = append(order, r.FileName)
			}
			counts[r.FileName]++
		}
		if opts.report || opts.count {
			return nil
		}
		return p.result(r)
	})

	rlog.Debugf("search of %s finished in %s: %d matches", path, time.Since(start), total)
	if err != nil {
		return err
	}

	if opts.count {
		for _, name := range order {
			if err := p.count(name, counts[name]); err != nil {
				return err
			}
		}
	}

	if opts.report {
		if err := writeReport(out, services.Report{Pattern: pattern, Path: path, Results: results}, colored); err != nil {
			return err
		}
	}

	if total == 0 {
		return ErrNoMatches
	}
	return nil
}

func writeReport(out io.Writer, report services.Report, colored bool) error {
	md := report.Markdown()

	renderer := services.NewGlamourRendererWithStyle("notty")
	if colored {
		renderer = services.NewGlamourRenderer()
	}

	rendered, err := services.RenderMarkdown(md, reportWidth, renderer)
	if err != nil {
		rlog.Warnf("failed to render report, printing markdown: %v", err)
		rendered = md
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}
