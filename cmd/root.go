package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/viewlens/viewlens-cli/internal/config"
	"github.com/viewlens/viewlens-cli/internal/dataset"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile    string
	sheetName  string
	sheetIndex int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "viewlens",
	Short: "ViewLens CLI: analyze video consumption workbooks",
	Long: `ViewLens reads a video consumption workbook (XLSX) and runs a set of
analyses over it: duplicate customer IDs, devices per customer, genre
popularity, region/genre relations, viewing recurrence and top shows.
Each command prints a console report and writes a spreadsheet export.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.viewlens/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet-name", dataset.DefaultSheetName, "sheet holding the records")
	rootCmd.PersistentFlags().IntVar(&sheetIndex, "sheet-index", dataset.DefaultSheetIndex, "1-based sheet fallback when --sheet-name is absent")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults still let every command run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Config fills in whatever the CLI did not override
	f := rootCmd.PersistentFlags()
	if !f.Changed("sheet-name") && cfg.SheetName != "" {
		sheetName = cfg.SheetName
	}
	if !f.Changed("sheet-index") && cfg.SheetIndex > 0 {
		sheetIndex = cfg.SheetIndex
	}
}

// loadSheet opens the workbook and resolves the records sheet, warning
// when resolution fell back to the positional index.
func loadSheet(path string) (*dataset.Sheet, error) {
	s, err := dataset.Load(path, sheetName, sheetIndex)
	if err != nil {
		return nil, err
	}
	if s.FellBack {
		fmt.Fprintf(os.Stderr, "⚠ Warning: sheet %q not found, using sheet %d (%q)\n",
			sheetName, sheetIndex, s.Name)
	}
	return s, nil
}

// chartsEnabled resolves the per-command --charts flag against config.
func chartsEnabled(cmd *cobra.Command, flagVal bool) bool {
	if cmd.Flags().Changed("charts") || cfg == nil {
		return flagVal
	}
	return cfg.Charts
}
