// Package main provides the atlas CLI entry point.
//
// atlas is an interactive viewer over a hand-authored knowledge base of
// psychological constructs. Run without arguments to start the browser;
// the subcommands expose the same queries for scripting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
	"github.com/milaivanova-cpu/construct-atlas/internal/logging"
)

var (
	// Global flags
	verbose bool
	kbPath  string

	// Logger for the non-interactive commands
	logger *logging.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Construct Atlas - browse and compare psychological constructs",
	Long: `Construct Atlas is a terminal viewer over a YAML knowledge base of
psychological constructs (self-control, self-regulation, executive
function, ...), their component profiles, measures, and the theoretical
models used to compare them.

The knowledge base is read once per session from the first of: --kb (or
ATLAS_KB), constructs.yaml next to the binary, ./constructs.yaml,
./data/constructs.yaml.

Run without arguments to start the interactive browser.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive browser owns the terminal; skip logger init.
		if cmd.Use == "atlas" && cmd.CalledAs() == "atlas" {
			return nil
		}
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&kbPath, "kb", "", "explicit path to the knowledge base document")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadKB reads the knowledge base for this invocation. Each command loads
// exactly once and passes the instance down; there is no global cache.
func loadKB() (*kb.KnowledgeBase, error) {
	kbase, err := kb.Load(kb.Candidates(kbPath))
	if err != nil {
		return nil, err
	}
	if logger != nil {
		lg := logger.For(logging.CategoryLoader)
		if kbase.UsedDefaultTaxonomy {
			lg.Warn("document omits components_taxonomy, using default axes")
		}
		lg.Debug(fmt.Sprintf("loaded %s: %d constructs, %d models",
			kbase.Source, len(kbase.ConstructKeys()), len(kbase.ModelKeys())))
	}
	return kbase, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
