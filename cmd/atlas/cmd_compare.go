package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milaivanova-cpu/construct-atlas/internal/advisor"
	"github.com/milaivanova-cpu/construct-atlas/internal/export"
	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
	"github.com/milaivanova-cpu/construct-atlas/internal/logging"
)

var compareCSV bool

// compareCmd compares selected constructs on the command line.
var compareCmd = &cobra.Command{
	Use:   "compare <key>...",
	Short: "Compare constructs: warnings, component profiles, measures",
	Long: `Prints the jingle/jangle warnings, the component strength profile
per taxonomy dimension, and the measures table for the given construct
keys (see 'atlas query' for keys).

Example:
  atlas compare self-control grit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareCSV, "csv", false, "emit the measures table as CSV on stdout")
}

func runCompare(cmd *cobra.Command, args []string) error {
	kbase, err := loadKB()
	if err != nil {
		return err
	}

	// Validate keys up front so a typo reads as a usage error, not a bug.
	for _, key := range args {
		if _, err := kbase.Construct(key); err != nil {
			if errors.Is(err, kb.ErrNotFound) {
				return fmt.Errorf("unknown construct %q (try 'atlas query')", key)
			}
			return err
		}
	}

	warnings := advisor.Evaluate(advisor.DefaultRules(), args)
	logger.For(logging.CategoryAdvisor).Debug(
		fmt.Sprintf("%d warnings for selection %v", len(warnings), args))

	rows, err := kbase.MeasureRows(args)
	if err != nil {
		return err
	}

	if compareCSV {
		return export.WriteMeasureRows(os.Stdout, rows)
	}

	for _, w := range warnings {
		fmt.Println("⚠", advisor.StripMarkdown(w))
	}
	if len(warnings) > 0 {
		fmt.Println()
	}

	// Component profile: one row per taxonomy dimension, one column per
	// construct.
	labels := make([]string, len(args))
	vectors := make([][]int, len(args))
	for i, key := range args {
		c, _ := kbase.Construct(key)
		labels[i] = c.Label
		vectors[i], err = kbase.ComponentVector(key)
		if err != nil {
			return err
		}
	}

	fmt.Printf("%-24s", "DIMENSION")
	for _, label := range labels {
		fmt.Printf(" %-18s", label)
	}
	fmt.Println()
	for dim, name := range kbase.Taxonomy() {
		fmt.Printf("%-24s", name)
		for i := range args {
			level := vectors[i][dim]
			fmt.Printf(" %-18s", strings.Repeat("█", level)+strings.Repeat("·", 3-level))
		}
		fmt.Println()
	}
	fmt.Println()

	if len(rows) == 0 {
		fmt.Println("No measures recorded for this selection.")
		return nil
	}
	fmt.Printf("%-18s %-32s %-12s %-22s %s\n", "CONSTRUCT", "MEASURE", "TYPE", "TARGETS", "NOTES")
	for _, r := range rows {
		fmt.Printf("%-18s %-32s %-12s %-22s %s\n", r.ConstructLabel, r.Measure, r.Type, r.Targets, r.Notes)
	}
	return nil
}
