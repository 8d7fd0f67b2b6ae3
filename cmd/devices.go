package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viewlens/viewlens-cli/internal/analysis"
	"github.com/viewlens/viewlens-cli/internal/export"
	"github.com/viewlens/viewlens-cli/internal/report"
)

var devOutput string

var devicesCmd = &cobra.Command{
	Use:   "devices [file]",
	Short: "Analyze device usage per customer",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := len(args) == 0
		path, err := resolveInput(args)
		if err != nil {
			return err
		}
		def := "device_report.xlsx"
		if cfg != nil && cfg.OutputDevices != "" {
			def = cfg.OutputDevices
		}
		out, err := resolveOutput(devOutput, def, interactive)
		if err != nil {
			return err
		}

		sheet, err := loadSheet(path)
		if err != nil {
			return err
		}
		recs, err := sheet.Records("CUSTOMER_ID", "DEVICE")
		if err != nil {
			return err
		}
		pairs := make([][2]string, 0, len(recs))
		for _, r := range recs {
			pairs = append(pairs, [2]string{r[0], r[1]})
		}
		usage, err := analysis.DevicesPerCustomer(pairs)
		if err != nil {
			return err
		}

		report.Devices(os.Stdout, usage)
		if err := export.Devices(out, usage); err != nil {
			return err
		}
		fmt.Printf("\n💾 Report saved as %q\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
	devicesCmd.Flags().StringVarP(&devOutput, "output", "o", "", "path for the XLSX report")
}
