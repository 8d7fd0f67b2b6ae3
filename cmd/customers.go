package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viewlens/viewlens-cli/internal/analysis"
	"github.com/viewlens/viewlens-cli/internal/export"
	"github.com/viewlens/viewlens-cli/internal/report"
)

var cusOutput string

var customersCmd = &cobra.Command{
	Use:   "customers [file]",
	Short: "Audit duplicate customer IDs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := len(args) == 0
		path, err := resolveInput(args)
		if err != nil {
			return err
		}
		def := "customer_id_report.csv"
		if cfg != nil && cfg.OutputCustomers != "" {
			def = cfg.OutputCustomers
		}
		out, err := resolveOutput(cusOutput, def, interactive)
		if err != nil {
			return err
		}

		sheet, err := loadSheet(path)
		if err != nil {
			return err
		}
		recs, err := sheet.Records("CUSTOMER_ID")
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(recs))
		for _, r := range recs {
			ids = append(ids, r[0])
		}
		audit, err := analysis.AuditIDs(ids)
		if err != nil {
			return err
		}

		report.Customers(os.Stdout, audit)
		if err := export.Customers(out, audit); err != nil {
			return err
		}
		fmt.Printf("\n💾 Report saved as %q\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
	customersCmd.Flags().StringVarP(&cusOutput, "output", "o", "", "path for the CSV report")
}
