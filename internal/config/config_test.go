package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// A path that does not exist yet: defaults apply.
	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.SheetName != "Dataset" || c.SheetIndex != 2 {
		t.Fatalf("sheet defaults = %q/%d, want Dataset/2", c.SheetName, c.SheetIndex)
	}
	if !c.Charts {
		t.Fatal("charts should default to true")
	}
	if c.TopShows != 20 {
		t.Fatalf("top_shows = %d, want 20", c.TopShows)
	}
	if c.OutputCustomers != "customer_id_report.csv" {
		t.Fatalf("output_customers = %q", c.OutputCustomers)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.SheetName = "Records"
	c.SheetIndex = 3
	c.Charts = false
	c.OutputGenres = "out.xlsx"
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.SheetName != "Records" || got.SheetIndex != 3 {
		t.Fatalf("reloaded sheet = %q/%d", got.SheetName, got.SheetIndex)
	}
	if got.Charts {
		t.Fatal("charts should have persisted as false")
	}
	if got.OutputGenres != "out.xlsx" {
		t.Fatalf("output_genres = %q", got.OutputGenres)
	}
	// Untouched keys keep their defaults.
	if got.TopShows != 20 {
		t.Fatalf("top_shows = %d, want 20", got.TopShows)
	}
}
