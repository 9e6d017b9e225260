package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd loads the knowledge base and reports what it found.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the knowledge base and report its shape",
	Long: `Tries the candidate document locations in order, parses the first
hit, and reports the source path, entry counts, and taxonomy origin.
Exits nonzero on load, parse, or schema errors, naming the paths tried.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	kbase, err := loadKB()
	if err != nil {
		return err
	}

	fmt.Println("Source:        ", kbase.Source)
	if kbase.SchemaVersion != "" {
		fmt.Println("Schema version:", kbase.SchemaVersion)
	}
	fmt.Println("Constructs:    ", len(kbase.ConstructKeys()))
	fmt.Println("Models:        ", len(kbase.ModelKeys()))
	if kbase.UsedDefaultTaxonomy {
		fmt.Println("Taxonomy:       default (document omits components_taxonomy)")
	} else {
		fmt.Printf("Taxonomy:       %d dimensions from document\n", len(kbase.Taxonomy()))
	}

	// Surface obvious authoring slips without failing: strengths that
	// resolved to 0 from a non-empty label usually mean a typo.
	for _, key := range kbase.ConstructKeys() {
		c, err := kbase.Construct(key)
		if err != nil {
			return err
		}
		for dim, raw := range c.RawComponents {
			if c.Components[dim] == 0 && raw != "" && raw != "0" {
				fmt.Printf("Note: %s.%s has unrecognized strength %q (treated as 0)\n", key, dim, raw)
			}
		}
	}
	return nil
}
