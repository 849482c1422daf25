package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/filequery/fq/entry"
	"github.com/filequery/fq/version"
)

// NewRootCmd creates and returns the root cobra command for the fq CLI.
// Running it with no subcommand starts the interactive explorer in the
// given directory, defaulting to the working directory.
func NewRootCmd() *cobra.Command {
	var (
		showHidden     bool
		showFullPath   bool
		sortBy         string
		sortReverse    bool
		maxRows        int
		maxWidth       int
		nonInteractive bool
	)

	rootCmd := &cobra.Command{
		Use:   "fq [PATH]",
		Short: "fq - an interactive terminal file explorer",
		Long: `fq is an interactive terminal file explorer. It renders directories,
text files, hex dumps and symlinks as bordered tables sized to the
terminal, and reads one command per line from stdin.

Directory mode commands:
  NAME, A/B/C     descend into a child (exact name, then prefix match)
  ..              go to the parent directory
  ~               go back to the start directory
  ;j ;jj ;jjj ;N  move the listing offset down by 1, 10, 100 or to N
  q               quit

File mode commands:
  j jj jjj jN     scroll down by 1, 10, 100 or N steps
  k kk kkk kN     scroll up
  gg G            jump to the start / end
  N 0xN           jump to line N (text) or byte offset N (hex)
  /REGEX          search; n and N cycle matches, noh clears them
  q or ..         back to the directory`,
		Version: version.GetFullVersion(),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			abs, err := resolveStartDir(dir)
			if err != nil {
				return err
			}

			ex := newExplorer(cmd.InOrStdin(), cmd.OutOrStdout())
			ex.dirCfg.ShowHidden = showHidden
			ex.dirCfg.ShowFullPath = showFullPath
			ex.dirCfg.SortReverse = sortReverse
			key, err := parseSortKey(sortBy)
			if err != nil {
				return err
			}
			ex.dirCfg.SortBy = key
			if maxRows > 0 {
				ex.fixedRows = maxRows
			}
			if maxWidth > 0 {
				ex.fixedWidth = maxWidth
			}
			ex.interactive = !nonInteractive

			return ex.Run(cmd.Context(), abs)
		},
	}

	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "a", false, "Show dotfiles")
	rootCmd.Flags().BoolVar(&showFullPath, "full-path", false, "Show full paths instead of names")
	rootCmd.Flags().StringVarP(&sortBy, "sort", "s", "name", "Sort listings by name, size, total_size, modified, type or ext")
	rootCmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false, "Reverse the sort order")
	rootCmd.Flags().IntVar(&maxRows, "rows", 0, "Fixed number of table rows (default: fit the terminal)")
	rootCmd.Flags().IntVar(&maxWidth, "width", 0, "Fixed table width (default: fit the terminal)")
	rootCmd.Flags().BoolVar(&nonInteractive, "no-interactive", false, "Print the listing once and exit")

	return rootCmd
}

// resolveStartDir validates the start directory and makes it absolute so
// parent climbing never walks through "..".
func resolveStartDir(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q: %w", dir, entry.ErrNotDirectory)
	}
	return filepath.Abs(dir)
}

func parseSortKey(name string) (entry.SortKey, error) {
	keys := []entry.SortKey{
		entry.SortByName,
		entry.SortBySize,
		entry.SortByTotalSize,
		entry.SortByModified,
		entry.SortByKind,
		entry.SortByExt,
	}
	for _, k := range keys {
		if k.String() == name {
			return k, nil
		}
	}
	return entry.SortByName, fmt.Errorf("unknown sort key %q", name)
}
