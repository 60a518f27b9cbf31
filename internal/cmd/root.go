package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/seekr/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for seekr
func NewRootCommand() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "seekr",
		Short: "Parallel text search across a directory tree",
		Long: `Seekr searches every file under a directory for lines matching a
literal term or regular expression, in parallel, and prints each match
with its file, line number, and highlighted match spans.

Small files are read line by line; files over 10 MB are memory-mapped
and matched with per-line parallelism.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// Errors are printed once, in main, with color.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.directory, "directory", "d", ".", "directory to search in")
	flags.StringVarP(&opts.extension, "extension", "e", "", "only search files with this extension (no dot, exact match)")
	flags.StringVar(&opts.term, "term", "", "term to search for (required)")
	flags.BoolVarP(&opts.recursive, "recursive", "r", true, "search subdirectories recursively")
	flags.BoolVarP(&opts.caseSensitive, "case-sensitive", "c", false, "match case exactly")
	flags.BoolVarP(&opts.regex, "regex", "x", false, "treat the term as a regular expression")
	flags.IntVarP(&opts.threads, "threads", "t", config.DefaultWorkers, "number of parallel worker threads")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "disable the progress bar")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "report files skipped due to read errors")

	_ = cmd.MarkFlagRequired("term")

	return cmd
}
