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
	genOutput string
	genCharts bool
)

var genresCmd = &cobra.Command{
	Use:   "genres [file]",
	Short: "Rank video genres by views",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := len(args) == 0
		path, err := resolveInput(args)
		if err != nil {
			return err
		}
		def := "genre_report.xlsx"
		if cfg != nil && cfg.OutputGenres != "" {
			def = cfg.OutputGenres
		}
		out, err := resolveOutput(genOutput, def, interactive)
		if err != nil {
			return err
		}

		sheet, err := loadSheet(path)
		if err != nil {
			return err
		}
		recs, err := sheet.Records("GENRE")
		if err != nil {
			return err
		}
		genres := make([]string, 0, len(recs))
		for _, r := range recs {
			genres = append(genres, r[0])
		}
		ranking, err := analysis.RankGenres(genres)
		if err != nil {
			return err
		}

		report.Genres(os.Stdout, ranking)
		if err := export.Genres(out, ranking, chartsEnabled(cmd, genCharts)); err != nil {
			return err
		}
		fmt.Printf("\n💾 Report saved as %q\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
	genresCmd.Flags().StringVarP(&genOutput, "output", "o", "", "path for the XLSX report")
	genresCmd.Flags().BoolVar(&genCharts, "charts", true, "embed a pie chart in the report")
}
