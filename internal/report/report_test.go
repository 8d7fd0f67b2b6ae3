package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

func TestCustomersReport(t *testing.T) {
	audit, err := analysis.AuditIDs([]string{"a", "b", "a", "c"})
	if err != nil {
		t.Fatalf("AuditIDs: %v", err)
	}
	var buf bytes.Buffer
	Customers(&buf, audit)
	out := buf.String()

	for _, want := range []string{
		"Total records: 4",
		"Unique customer IDs: 3",
		"a: appears 2 times",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestCustomersReportNoDuplicates(t *testing.T) {
	audit, err := analysis.AuditIDs([]string{"a", "b"})
	if err != nil {
		t.Fatalf("AuditIDs: %v", err)
	}
	var buf bytes.Buffer
	Customers(&buf, audit)
	if !strings.Contains(buf.String(), "No duplicated customer IDs found") {
		t.Fatalf("expected the all-clear line:\n%s", buf.String())
	}
}

func TestRegionsReportVerdict(t *testing.T) {
	pairs := [][2]string{
		{"North", "Comedy"}, {"North", "Comedy"}, {"North", "Comedy"},
		{"North", "Comedy"}, {"North", "Comedy"}, {"North", "Comedy"},
		{"North", "Comedy"}, {"North", "Comedy"}, {"North", "Comedy"},
		{"North", "Drama"},
		{"South", "Comedy"}, {"South", "Comedy"},
		{"South", "Drama"}, {"South", "Drama"},
	}
	ct, err := analysis.NewCrosstab(pairs)
	if err != nil {
		t.Fatalf("NewCrosstab: %v", err)
	}
	sums := ct.RegionSummaries()
	rel := ct.Relation(sums)

	var buf bytes.Buffer
	Regions(&buf, sums, rel)
	out := buf.String()
	if !strings.Contains(out, "strong relation between region and genre") {
		t.Fatalf("expected the strong verdict:\n%s", out)
	}
	if !strings.Contains(out, "Busiest region: North") {
		t.Fatalf("expected busiest region line:\n%s", out)
	}
}

func TestScreentimeReportSegments(t *testing.T) {
	recs := []analysis.ViewingRecord{
		{CustomerID: "a", Minutes: 10}, {CustomerID: "a", Minutes: 10},
		{CustomerID: "b", Minutes: 300},
	}
	rep, err := analysis.AnalyzeScreentime(recs)
	if err != nil {
		t.Fatalf("AnalyzeScreentime: %v", err)
	}
	var buf bytes.Buffer
	Screentime(&buf, rep)
	out := buf.String()
	if !strings.Contains(out, "Unique customers: 2") {
		t.Fatalf("missing customer count:\n%s", out)
	}
	if !strings.Contains(out, "VIEW FREQUENCY DISTRIBUTION") {
		t.Fatalf("missing frequency section:\n%s", out)
	}
}
