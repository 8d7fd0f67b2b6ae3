package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viewlens/viewlens-cli/internal/analysis"
	"github.com/viewlens/viewlens-cli/internal/export"
	"github.com/viewlens/viewlens-cli/internal/report"
)

var (
	scrOutput string
	scrCharts bool
)

var screentimeCmd = &cobra.Command{
	Use:   "screentime [file]",
	Short: "Analyze viewing recurrence per customer",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := len(args) == 0
		path, err := resolveInput(args)
		if err != nil {
			return err
		}
		def := "screentime_report.xlsx"
		if cfg != nil && cfg.OutputScreentime != "" {
			def = cfg.OutputScreentime
		}
		out, err := resolveOutput(scrOutput, def, interactive)
		if err != nil {
			return err
		}

		sheet, err := loadSheet(path)
		if err != nil {
			return err
		}
		rows, err := sheet.Records("CUSTOMER_ID", "SCREENTIME")
		if err != nil {
			return err
		}
		recs, err := analysis.ParseViewingRecords(rows)
		if err != nil {
			return err
		}
		rep, err := analysis.AnalyzeScreentime(recs)
		if err != nil {
			return err
		}

		report.Screentime(os.Stdout, rep)
		if err := export.Screentime(out, rep, chartsEnabled(cmd, scrCharts)); err != nil {
			return err
		}
		fmt.Printf("\n💾 Report saved as %q\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(screentimeCmd)
	screentimeCmd.Flags().StringVarP(&scrOutput, "output", "o", "", "path for the XLSX report")
	screentimeCmd.Flags().BoolVar(&scrCharts, "charts", true, "embed a frequency chart in the report")
}
