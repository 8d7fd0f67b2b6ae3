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
	shoOutput string
	shoCharts bool
	shoTop    int
)

var showsCmd = &cobra.Command{
	Use:   "shows [file]",
	Short: "Rank shows by views",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := len(args) == 0
		path, err := resolveInput(args)
		if err != nil {
			return err
		}
		def := "top_shows_report.xlsx"
		if cfg != nil && cfg.OutputShows != "" {
			def = cfg.OutputShows
		}
		out, err := resolveOutput(shoOutput, def, interactive)
		if err != nil {
			return err
		}
		top := shoTop
		if !cmd.Flags().Changed("top") && cfg != nil && cfg.TopShows > 0 {
			top = cfg.TopShows
		}

		sheet, err := loadSheet(path)
		if err != nil {
			return err
		}
		recs, err := sheet.Records("TITLE", "GENRE")
		if err != nil {
			return err
		}
		pairs := make([][2]string, 0, len(recs))
		for _, r := range recs {
			pairs = append(pairs, [2]string{r[0], r[1]})
		}
		ranking, err := analysis.RankShows(pairs)
		if err != nil {
			return err
		}

		report.Shows(os.Stdout, ranking)
		if err := export.Shows(out, ranking, top, chartsEnabled(cmd, shoCharts)); err != nil {
			return err
		}
		fmt.Printf("\n💾 Report saved as %q\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showsCmd)
	showsCmd.Flags().StringVarP(&shoOutput, "output", "o", "", "path for the XLSX report")
	showsCmd.Flags().BoolVar(&shoCharts, "charts", true, "embed a pie chart in the report")
	showsCmd.Flags().IntVar(&shoTop, "top", 20, "number of shows to keep before folding into Other")
}
