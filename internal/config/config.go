package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	SheetName  string `mapstructure:"sheet_name" yaml:"sheet_name"`
	SheetIndex int    `mapstructure:"sheet_index" yaml:"sheet_index"`
	Charts     bool   `mapstructure:"charts" yaml:"charts"`
	TopShows   int    `mapstructure:"top_shows" yaml:"top_shows"`

	// Default output filenames, one per analysis.
	OutputCustomers  string `mapstructure:"output_customers" yaml:"output_customers"`
	OutputDevices    string `mapstructure:"output_devices" yaml:"output_devices"`
	OutputGenres     string `mapstructure:"output_genres" yaml:"output_genres"`
	OutputRegions    string `mapstructure:"output_regions" yaml:"output_regions"`
	OutputScreentime string `mapstructure:"output_screentime" yaml:"output_screentime"`
	OutputShows      string `mapstructure:"output_shows" yaml:"output_shows"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile
// is empty, it writes to ~/.viewlens/config.yaml, creating the
// directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".viewlens")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("VIEWLENS")
	v.AutomaticEnv()

	v.SetDefault("sheet_name", "Dataset")
	v.SetDefault("sheet_index", 2)
	v.SetDefault("charts", true)
	v.SetDefault("top_shows", 20)
	v.SetDefault("output_customers", "customer_id_report.csv")
	v.SetDefault("output_devices", "device_report.xlsx")
	v.SetDefault("output_genres", "genre_report.xlsx")
	v.SetDefault("output_regions", "region_genre_report.xlsx")
	v.SetDefault("output_screentime", "screentime_report.xlsx")
	v.SetDefault("output_shows", "top_shows_report.xlsx")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".viewlens"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
