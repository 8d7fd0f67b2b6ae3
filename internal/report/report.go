// Package report renders analysis results as human-readable console
// text. It holds no logic of its own: everything printed here was
// computed by the analysis package.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

const lineWidth = 70

func banner(w io.Writer, title string) {
	rule := strings.Repeat("=", lineWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", lineWidth-10))
}

// Customers prints the duplicate-ID audit.
func Customers(w io.Writer, a *analysis.IDAudit) {
	banner(w, "📊 CUSTOMER ID ANALYSIS")
	fmt.Fprintf(w, "📋 Total records: %d\n", a.Total)
	fmt.Fprintf(w, "👤 Unique customer IDs: %d\n", a.Unique)
	fmt.Fprintf(w, "🔄 Duplicated records: %d\n", a.Total-a.Unique)

	if len(a.Duplicated) > 0 {
		banner(w, "🔍 DUPLICATED CUSTOMER IDS")
		for _, c := range a.Duplicated {
			fmt.Fprintf(w, "• %s: appears %d times\n", c.ID, c.Count)
		}
		fmt.Fprintf(w, "📈 Duplicated IDs total: %d\n", len(a.Duplicated))
	} else {
		fmt.Fprintln(w, "✅ No duplicated customer IDs found")
	}

	fmt.Fprintf(w, "\n🔹 First %d unique customer IDs (sample):\n", len(a.SampleUnique))
	for i, id := range a.SampleUnique {
		fmt.Fprintf(w, "  %d. %s\n", i+1, id)
	}
	if a.Unique > len(a.SampleUnique) {
		fmt.Fprintf(w, "  ... and %d more\n", a.Unique-len(a.SampleUnique))
	}

	banner(w, "📈 STATISTICAL SUMMARY")
	fmt.Fprintf(w, "Duplicate percentage: %.2f%%\n", a.DuplicatePct)
	fmt.Fprintf(w, "Duplicated/unique ratio: %d/%d\n", len(a.Duplicated), a.Unique)
}

// Devices prints the per-customer device usage analysis.
func Devices(w io.Writer, u *analysis.DeviceUsage) {
	banner(w, "📱 DEVICE USAGE PER CUSTOMER")
	fmt.Fprintf(w, "👥 Unique customers: %d\n", u.TotalCustomers)
	fmt.Fprintf(w, "📊 Customers on multiple devices: %d (%.1f%%)\n", u.MultiDevice, u.MultiPct)
	fmt.Fprintf(w, "📱 Customers on a single device: %d\n", u.SingleDevice)
	fmt.Fprintf(w, "🔥 Customers on more than 2 devices: %d\n", u.MoreThanTwo)

	if u.MultiDevice > 0 {
		section(w, "🏆 TOP 10 CUSTOMERS BY DEVICE COUNT:")
		for i, c := range u.Customers {
			if i == 10 {
				break
			}
			fmt.Fprintf(w, "%2d. %-15s %2d devices: %s\n",
				i+1, c.CustomerID, c.DeviceCount, strings.Join(c.Devices, ", "))
		}
	}

	section(w, "📊 DEVICE DISTRIBUTION:")
	for i, d := range u.Distribution {
		if i == 10 {
			fmt.Fprintf(w, "  ... and %d more devices\n", len(u.Distribution)-10)
			break
		}
		fmt.Fprintf(w, "• %-20s: %4d customers\n", d.Device, d.Customers)
	}

	banner(w, "❓ DO CUSTOMERS USE MORE THAN ONE DEVICE?")
	if u.MultiDevice > 0 {
		fmt.Fprintf(w, "✅ YES, %d customers (%.1f%%) use multiple devices\n", u.MultiDevice, u.MultiPct)
	} else {
		fmt.Fprintln(w, "❌ NO, every customer uses a single device")
	}
}

// Genres prints the genre popularity ranking.
func Genres(w io.Writer, r *analysis.GenreRanking) {
	banner(w, "🎬 VIDEO GENRE ANALYSIS")
	fmt.Fprintf(w, "📊 Total views: %d\n", r.Total)
	fmt.Fprintf(w, "🎭 Unique genres: %d\n", len(r.Genres))

	section(w, "🏆 TOP 10 GENRES:")
	for i, g := range r.Genres {
		if i == 10 {
			break
		}
		fmt.Fprintf(w, "%2d. %-25s %5d views (%.1f%%)\n", i+1, g.Genre, g.Views, g.Pct)
	}

	lead := r.Leader()
	banner(w, fmt.Sprintf("👑 MOST VIEWED GENRE: %q", lead.Genre))
	fmt.Fprintf(w, "   👀 Views: %d\n", lead.Views)
	fmt.Fprintf(w, "   📈 Share: %.2f%%\n", lead.Pct)
}

// Regions prints the region/genre contingency analysis.
func Regions(w io.Writer, sums []analysis.RegionSummary, rel analysis.RegionRelation) {
	banner(w, "🌍 REGION / GENRE RELATION ANALYSIS")
	fmt.Fprintf(w, "📊 Valid records: %d\n", rel.Records)
	fmt.Fprintf(w, "🗺️  Unique regions: %d\n", rel.RegionCount)
	fmt.Fprintf(w, "🎭 Unique genres: %d\n", rel.GenreCount)

	section(w, "🏆 TOP GENRE PER REGION:")
	ranked := make([]analysis.RegionSummary, len(sums))
	copy(ranked, sums)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TopShare == ranked[j].TopShare {
			return ranked[i].Region < ranked[j].Region
		}
		return ranked[i].TopShare > ranked[j].TopShare
	})
	for i, s := range ranked {
		if i == 10 {
			break
		}
		fmt.Fprintf(w, "%2d. %-15s → %-20s (%.2f%%)\n", i+1, s.Region, s.TopGenre, s.TopShare)
	}

	section(w, "📈 OVERALL FINDINGS:")
	fmt.Fprintf(w, "Busiest region: %s\n", rel.BusiestRegion)
	fmt.Fprintf(w, "Quietest region: %s\n", rel.QuietestRegion)
	fmt.Fprintf(w, "Most popular genre overall: %s\n", rel.GlobalTop)
	fmt.Fprintf(w, "Most diverse region: %s\n", rel.MostDiverse)
	fmt.Fprintf(w, "Least diverse region: %s\n", rel.LeastDiverse)

	banner(w, "❓ IS THERE A RELATION BETWEEN REGION AND GENRE?")
	switch rel.Strength {
	case "strong":
		fmt.Fprintln(w, "✅ YES, a strong relation between region and genre")
		fmt.Fprintln(w, "   📊 Clear geographic patterns in preferences")
	case "moderate":
		fmt.Fprintln(w, "✅ YES, a moderate relation between region and genre")
		fmt.Fprintln(w, "   📊 Some regional differences in preferences")
	default:
		fmt.Fprintln(w, "❌ NO strong relation between region and genre")
		fmt.Fprintln(w, "   📊 Preferences look similar across regions")
	}
	fmt.Fprintf(w, "   📈 Preference spread: %.1f%%\n", rel.Spread)
}

// Screentime prints the viewing recurrence analysis.
func Screentime(w io.Writer, r *analysis.ScreentimeReport) {
	banner(w, "📊 VIEWING RECURRENCE PER CUSTOMER")
	fmt.Fprintf(w, "👥 Valid records: %d\n", r.Records)
	fmt.Fprintf(w, "👤 Unique customers: %d\n", r.UniqueCustomers)
	fmt.Fprintf(w, "📈 Average views per customer: %.2f\n", r.MeanViews)

	section(w, "📈 OVERALL STATISTICS:")
	fmt.Fprintf(w, "• Total screentime: %.0f minutes\n", r.TotalMinutes)
	fmt.Fprintf(w, "• Average screentime per customer: %.1f minutes\n", r.MeanPerCustomer)
	fmt.Fprintf(w, "• Average screentime per view: %.1f minutes\n", r.MeanPerView)
	fmt.Fprintf(w, "• Most views: %s (%d views)\n", r.TopViewer.CustomerID, r.TopViewer.Views)
	fmt.Fprintf(w, "• Most screentime: %s (%.0f minutes)\n", r.TopWatcher.CustomerID, r.TopWatcher.Total)

	section(w, "🎯 VIEW FREQUENCY DISTRIBUTION:")
	for _, b := range r.FrequencyDist {
		fmt.Fprintf(w, "• %s: %d customers (%.1f%%)\n", b.Label, b.Customers, b.Pct)
	}

	section(w, "⏰ TOTAL SCREENTIME DISTRIBUTION:")
	for _, b := range r.TierDist {
		fmt.Fprintf(w, "• %s: %d customers (%.1f%%)\n", b.Label, b.Customers, b.Pct)
	}

	fmt.Fprintf(w, "\n📊 Frequency/screentime correlation: %.3f\n", r.Correlation)

	section(w, "🔍 COMBINED SEGMENTS (frequency vs screentime):")
	for _, bucket := range analysis.FrequencyBuckets {
		row, ok := r.Segments[bucket]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-22s", bucket)
		for _, tier := range analysis.ScreentimeTiers {
			fmt.Fprintf(w, " %s=%-4d", tierShort(tier), row[tier])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\n💎 Valuable customers (frequent + high consumption): %d\n", len(r.Valuable))
}

func tierShort(tier string) string {
	if i := strings.IndexByte(tier, ' '); i > 0 {
		return tier[:i]
	}
	return tier
}

// Shows prints the top-shows ranking.
func Shows(w io.Writer, r *analysis.ShowRanking) {
	banner(w, "📺 TV SHOWS BY VIEWS")
	fmt.Fprintf(w, "📊 Total views: %d\n", r.Total)
	fmt.Fprintf(w, "🎬 Unique shows: %d\n", r.UniqueShows)
	fmt.Fprintf(w, "🎭 Unique genres: %d\n", r.UniqueGenres)

	section(w, fmt.Sprintf("🏆 TOP 10 SHOWS (%.1f%% of all views):", r.CumulativeShare(10)))
	for i, s := range r.Shows {
		if i == 10 {
			break
		}
		title := s.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(w, "%2d. %-40s [%-12s] %6d views (%.2f%%)\n", i+1, title, s.Genre, s.Views, s.Pct)
	}

	section(w, "🎯 MOST VIEWED SHOW PER GENRE:")
	for _, s := range r.TopPerGenre {
		title := s.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		fmt.Fprintf(w, "• %-15s: %-30s (%d views)\n", s.Genre, title, s.Views)
	}
}
