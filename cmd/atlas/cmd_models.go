package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milaivanova-cpu/construct-atlas/internal/export"
	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
	"github.com/milaivanova-cpu/construct-atlas/internal/logging"
)

var (
	modelsDomain string
	modelsOut    string
)

// modelsCmd prints the comparison-model dimension table.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show the comparison-model dimension table",
	Long: `Projects the knowledge base's comparison models onto the fixed
dimension list (level of analysis, conflict, emotion role, cognitive
function), one column per model. --domain filters models by their domain
tag; the default "all" keeps every model.

Example:
  atlas models --domain education/SRL --out srl-models.csv`,
	RunE: runModels,
}

func init() {
	modelsCmd.Flags().StringVar(&modelsDomain, "domain", kb.DomainAll, "model domain filter")
	modelsCmd.Flags().StringVar(&modelsOut, "out", "", "write the table as CSV to this path")
}

func runModels(cmd *cobra.Command, args []string) error {
	kbase, err := loadKB()
	if err != nil {
		return err
	}

	keys := kbase.ModelsByDomain(modelsDomain)
	if len(keys) == 0 {
		fmt.Printf("No models in domain %q.\n", modelsDomain)
		return nil
	}

	table, err := kbase.ModelDimensionTable(keys, kb.ModelDimensions)
	if err != nil {
		return err
	}

	if modelsOut != "" {
		f, err := os.Create(modelsOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", modelsOut, err)
		}
		defer f.Close()
		if err := export.WriteDimensionTable(f, table); err != nil {
			return err
		}
		logger.For(logging.CategoryExport).Info("wrote model comparison CSV: " + modelsOut)
		fmt.Println("Wrote", modelsOut)
		return nil
	}

	fmt.Printf("%-22s", "DIMENSION")
	for _, label := range table.Labels {
		fmt.Printf(" %-24s", label)
	}
	fmt.Println()
	for i, dim := range table.Dimensions {
		fmt.Printf("%-22s", dim)
		for _, cell := range table.Cells[i] {
			fmt.Printf(" %-24s", cell)
		}
		fmt.Println()
	}
	return nil
}
