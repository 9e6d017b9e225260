package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milaivanova-cpu/construct-atlas/internal/logging"
)

// queryCmd searches constructs by name or synonym.
var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search constructs by name or synonym",
	Long: `Searches construct labels and synonyms for a case-insensitive
substring. Without an argument, lists every construct in document order.

Example:
  atlas query self`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	kbase, err := loadKB()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	keys := kbase.SearchConstructs(query)
	logger.For(logging.CategoryModel).Debug(
		fmt.Sprintf("query %q matched %d of %d constructs", query, len(keys), len(kbase.ConstructKeys())))

	if len(keys) == 0 {
		fmt.Printf("No constructs match %q.\n", query)
		return nil
	}

	fmt.Printf("%-24s %-28s %s\n", "KEY", "LABEL", "SYNONYMS")
	for _, key := range keys {
		c, err := kbase.Construct(key)
		if err != nil {
			return err
		}
		fmt.Printf("%-24s %-28s %s\n", key, c.Label, strings.Join(c.Synonyms, ", "))
	}
	return nil
}
