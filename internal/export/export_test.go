package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

func TestCustomersCSV(t *testing.T) {
	audit, err := analysis.AuditIDs([]string{"a", "b", "a"})
	if err != nil {
		t.Fatalf("AuditIDs: %v", err)
	}
	path := filepath.Join(t.TempDir(), "customers.csv")
	if err := Customers(path, audit); err != nil {
		t.Fatalf("Customers: %v", err)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fh.Close()
	rows, err := csv.NewReader(fh).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "CUSTOMER_ID" {
		t.Fatalf("header = %v", rows[0])
	}
	// Duplicated IDs come first.
	if rows[1][0] != "a" || rows[1][2] != "true" {
		t.Fatalf("rows[1] = %v, want the duplicated id", rows[1])
	}
}

func TestGenresWorkbook(t *testing.T) {
	r, err := analysis.RankGenres([]string{"Drama", "Drama", "Comedy"})
	if err != nil {
		t.Fatalf("RankGenres: %v", err)
	}
	path := filepath.Join(t.TempDir(), "genres.xlsx")
	if err := Genres(path, r, true); err != nil {
		t.Fatalf("Genres: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	want := map[string]bool{"Genres": false, "Summary": false, "ChartData": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for s, seen := range want {
		if !seen {
			t.Fatalf("sheet %q missing from %v", s, sheets)
		}
	}
	got, err := f.GetCellValue("Genres", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "Drama" {
		t.Fatalf("Genres!A2 = %q, want Drama", got)
	}
}

func TestRegionsWorkbook(t *testing.T) {
	pairs := [][2]string{
		{"North", "Comedy"}, {"North", "Comedy"}, {"North", "Drama"},
		{"South", "Drama"},
	}
	ct, err := analysis.NewCrosstab(pairs)
	if err != nil {
		t.Fatalf("NewCrosstab: %v", err)
	}
	sums := ct.RegionSummaries()
	rel := ct.Relation(sums)

	path := filepath.Join(t.TempDir(), "regions.xlsx")
	if err := Regions(path, ct, sums, rel, false); err != nil {
		t.Fatalf("Regions: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Counts")
	if err != nil {
		t.Fatalf("read Counts: %v", err)
	}
	// Header plus one row per region.
	if len(rows) != 3 {
		t.Fatalf("Counts rows = %d, want 3", len(rows))
	}
	if rows[1][0] != "North" || rows[2][0] != "South" {
		t.Fatalf("region order = %q, %q", rows[1][0], rows[2][0])
	}
	for _, sheet := range []string{"Percentages", "TopGenres", "Regions", "Summary"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Fatalf("sheet %q missing", sheet)
		}
	}
}

func TestScreentimeWorkbook(t *testing.T) {
	recs := []analysis.ViewingRecord{
		{CustomerID: "a", Minutes: 30}, {CustomerID: "a", Minutes: 40},
		{CustomerID: "b", Minutes: 10},
		{CustomerID: "c", Minutes: 90}, {CustomerID: "c", Minutes: 90},
		{CustomerID: "c", Minutes: 90}, {CustomerID: "c", Minutes: 90},
	}
	r, err := analysis.AnalyzeScreentime(recs)
	if err != nil {
		t.Fatalf("AnalyzeScreentime: %v", err)
	}
	path := filepath.Join(t.TempDir(), "screentime.xlsx")
	if err := Screentime(path, r, false); err != nil {
		t.Fatalf("Screentime: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Customers")
	if err != nil {
		t.Fatalf("read Customers: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Customers rows = %d, want header + 3", len(rows))
	}
	// Sorted by views descending.
	if rows[1][0] != "c" {
		t.Fatalf("first customer = %q, want c", rows[1][0])
	}
	for _, sheet := range []string{"Summary", "Segments", "Valuable", "TopViews", "TopScreentime", "TopPerView"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Fatalf("sheet %q missing", sheet)
		}
	}
}

func TestShowsWorkbook(t *testing.T) {
	pairs := [][2]string{
		{"S1", "Drama"}, {"S1", "Drama"}, {"S2", "Comedy"},
	}
	r, err := analysis.RankShows(pairs)
	if err != nil {
		t.Fatalf("RankShows: %v", err)
	}
	path := filepath.Join(t.TempDir(), "shows.xlsx")
	if err := Shows(path, r, 20, true); err != nil {
		t.Fatalf("Shows: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	got, err := f.GetCellValue("Shows", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "S1" {
		t.Fatalf("Shows!A2 = %q, want S1", got)
	}
	for _, sheet := range []string{"TopPerGenre", "Summary", "Genres", "ChartData"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Fatalf("sheet %q missing", sheet)
		}
	}
}

func TestDevicesWorkbook(t *testing.T) {
	u, err := analysis.DevicesPerCustomer([][2]string{
		{"c1", "tv"}, {"c1", "phone"}, {"c2", "tv"},
	})
	if err != nil {
		t.Fatalf("DevicesPerCustomer: %v", err)
	}
	path := filepath.Join(t.TempDir(), "devices.xlsx")
	if err := Devices(path, u); err != nil {
		t.Fatalf("Devices: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Customers")
	if err != nil {
		t.Fatalf("read Customers: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Customers rows = %d, want header + 2", len(rows))
	}
	if rows[1][0] != "c1" {
		t.Fatalf("first customer = %q, want the multi-device one", rows[1][0])
	}
}
