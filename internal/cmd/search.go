package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/seekr/internal/config"
	"github.com/harrison/seekr/internal/display"
	"github.com/harrison/seekr/internal/executor"
	"github.com/harrison/seekr/internal/fileutil"
	"github.com/harrison/seekr/internal/logger"
	"github.com/harrison/seekr/internal/pattern"
)

// searchOptions holds the flag values of the root command.
type searchOptions struct {
	directory     string
	extension     string
	term          string
	recursive     bool
	caseSensitive bool
	regex         bool
	threads       int
	noProgress    bool
	verbose       bool
}

// runSearch wires one run end to end: defaults file, pattern compile,
// enumeration, parallel scan, report. Pattern and enumeration failures
// are fatal and returned to main; per-file scan failures are absorbed
// inside the pool and only surfaced as a count in verbose mode.
func runSearch(cmd *cobra.Command, opts *searchOptions) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigFile)
	if err != nil {
		return err
	}

	// Explicit flags win over the defaults file.
	if !cmd.Flags().Changed("threads") {
		opts.threads = fileCfg.Threads
	}
	if !cmd.Flags().Changed("recursive") {
		opts.recursive = fileCfg.Recursive
	}
	showProgress := fileCfg.Progress && !opts.noProgress

	cfg := config.SearchConfig{
		Directory:     opts.directory,
		Extension:     opts.extension,
		Term:          opts.term,
		Recursive:     opts.recursive,
		CaseSensitive: opts.caseSensitive,
		Regex:         opts.regex,
		Workers:       opts.threads,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	matcher, err := pattern.Compile(cfg.Term, cfg.Regex)
	if err != nil {
		return err
	}

	files, err := fileutil.Enumerate(cfg.Directory, cfg.Extension, cfg.Recursive)
	if err != nil {
		return err
	}

	// Progress is a live status stream, not part of the report: only
	// draw it when stderr is a real terminal.
	var progress executor.ProgressFunc
	if showProgress && isatty.IsTerminal(os.Stderr.Fd()) && len(files) > 0 {
		bar := logger.NewProgressBar(len(files), 40, display.UseColor(os.Stderr))
		progress = func(done, total int) {
			bar.Update(done)
			bar.Draw(os.Stderr)
		}
		defer bar.Finish(os.Stderr)
	}

	pool := executor.NewPool(cfg.Workers)
	results, failed := pool.Search(files, matcher, cfg.CaseSensitive, progress)

	out := cmd.OutOrStdout()
	display.RenderResults(out, results, display.UseColor(out))

	if opts.verbose && failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d file(s) skipped due to read errors\n", failed)
	}

	return nil
}
