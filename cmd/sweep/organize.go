package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sweep/internal/category"
	"sweep/internal/config"
	"sweep/internal/organize"
	"sweep/internal/ui"
)

var organizeCmd = &cobra.Command{
	Use:   "organize [dir]",
	Short: "Move the directory's files into category subfolders once",
	Long: `Enumerate the files sitting directly in the target directory, classify
each by extension, and move it into a category subfolder:

  dir/images/    dir/videos/    dir/documents/
  dir/audio/     dir/archives/  dir/code/      dir/others/

Files already inside category subfolders are left alone, so re-running
on an organized directory moves nothing. A file whose move fails is
reported and skipped; the rest of the batch still runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveTarget(args)
		if err != nil {
			return err
		}

		cfg := config.Load()
		table, err := cfg.Table()
		if err != nil {
			return err
		}

		summary, failures, err := organize.Run(dir, table)
		if err != nil {
			return err
		}

		printSummary(dir, table, summary)
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", ui.RenderWarn("⚠"), f.Path, f.Err)
		}
		return nil
	},
}

// printSummary writes per-category counts in table order, with the
// fallback category last.
func printSummary(dir string, table category.Table, summary organize.Summary) {
	if summary.Total() == 0 {
		fmt.Printf("%s Nothing to organize in %s\n", ui.RenderAccent("·"), dir)
		return
	}

	fmt.Printf("%s Organized %d file(s) in %s\n", ui.RenderPass("✓"), summary.Total(), dir)
	for _, cat := range table.Categories() {
		if cat.Name == category.Fallback {
			continue
		}
		if n := summary[cat.Name]; n > 0 {
			fmt.Printf("   %s: %d\n", cat.Name, n)
		}
	}
	if n := summary[category.Fallback]; n > 0 {
		fmt.Printf("   %s: %d\n", category.Fallback, n)
	}
}
