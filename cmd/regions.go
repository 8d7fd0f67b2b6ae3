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
	regOutput string
	regCharts bool
)

var regionsCmd = &cobra.Command{
	Use:   "regions [file]",
	Short: "Analyze the relation between region and genre",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := len(args) == 0
		path, err := resolveInput(args)
		if err != nil {
			return err
		}
		def := "region_genre_report.xlsx"
		if cfg != nil && cfg.OutputRegions != "" {
			def = cfg.OutputRegions
		}
		out, err := resolveOutput(regOutput, def, interactive)
		if err != nil {
			return err
		}

		sheet, err := loadSheet(path)
		if err != nil {
			return err
		}
		recs, err := sheet.Records("REGION", "GENRE")
		if err != nil {
			return err
		}
		pairs := make([][2]string, 0, len(recs))
		for _, r := range recs {
			pairs = append(pairs, [2]string{r[0], r[1]})
		}
		ct, err := analysis.NewCrosstab(pairs)
		if err != nil {
			return err
		}
		sums := ct.RegionSummaries()
		rel := ct.Relation(sums)

		report.Regions(os.Stdout, sums, rel)
		if err := export.Regions(out, ct, sums, rel, chartsEnabled(cmd, regCharts)); err != nil {
			return err
		}
		fmt.Printf("\n💾 Report saved as %q\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
	regionsCmd.Flags().StringVarP(&regOutput, "output", "o", "", "path for the XLSX report")
	regionsCmd.Flags().BoolVar(&regCharts, "charts", true, "embed a concentration chart in the report")
}
