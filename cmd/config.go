package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/viewlens/viewlens-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set ViewLens configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Wrote default config")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("sheet_name: %s\n", cfg.SheetName)
		fmt.Printf("sheet_index: %d\n", cfg.SheetIndex)
		fmt.Printf("charts: %t\n", cfg.Charts)
		fmt.Printf("top_shows: %d\n", cfg.TopShows)
		fmt.Printf("output_customers: %s\n", cfg.OutputCustomers)
		fmt.Printf("output_devices: %s\n", cfg.OutputDevices)
		fmt.Printf("output_genres: %s\n", cfg.OutputGenres)
		fmt.Printf("output_regions: %s\n", cfg.OutputRegions)
		fmt.Printf("output_screentime: %s\n", cfg.OutputScreentime)
		fmt.Printf("output_shows: %s\n", cfg.OutputShows)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "sheet_name":
			cfg.SheetName = val
		case "sheet_index":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for sheet_index: %v", val)
			}
			cfg.SheetIndex = i
		case "charts":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for charts: %v", val)
			}
			cfg.Charts = b
		case "top_shows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for top_shows: %v", val)
			}
			cfg.TopShows = i
		case "output_customers":
			cfg.OutputCustomers = val
		case "output_devices":
			cfg.OutputDevices = val
		case "output_genres":
			cfg.OutputGenres = val
		case "output_regions":
			cfg.OutputRegions = val
		case "output_screentime":
			cfg.OutputScreentime = val
		case "output_shows":
			cfg.OutputShows = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
