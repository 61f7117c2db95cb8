// Package site renders analysis results as a static HTML site: one page per
// dataset plus an index, with a shared stylesheet. The output is plain files
// suitable for any static host.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ademuri/playlist-insights/internal/analysis"
)

// Page is one dataset's rendered analysis.
type Page struct {
	Name        string
	Source      string
	Report      analysis.Report
	GeneratedAt time.Time
}

// Slug is the page's file name without extension.
func (p Page) Slug() string {
	return slugify(p.Name)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "dataset"
	}
	return slug
}

// Export writes the site into outDir, creating it if needed.
func Export(pages []Page, outDir string) error {
	assetsDir := filepath.Join(outDir, "assets")
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "style.css"), []byte(styleCSS), 0644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}

	for _, page := range pages {
		path := filepath.Join(outDir, page.Slug()+".html")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		err = pageTemplate.Execute(f, newPageData(page))
		f.Close()
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}
	}

	indexPath := filepath.Join(outDir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("creating index: %w", err)
	}
	defer f.Close()
	if err := indexTemplate.Execute(f, newIndexData(pages)); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	return nil
}

// Template-facing view types. Distributions are flattened into ordered rows
// because templates cannot sort maps.

type distRow struct {
	Period string
	Count  int
}

type featureRow struct {
	Name  string
	Stats analysis.FeatureStats
}

type pageData struct {
	Page
	MonthlyRows   []distRow
	WeekdayRows   []distRow
	DiscoveryRows []distRow
	FeatureRows   []featureRow
}

func newPageData(p Page) pageData {
	return pageData{
		Page:          p,
		MonthlyRows:   sortedRows(p.Report.Temporal.MonthlyDistribution),
		WeekdayRows:   sortedRows(p.Report.Temporal.WeekdayDistribution),
		DiscoveryRows: sortedRows(p.Report.Evolution.ArtistsPerPeriod),
		FeatureRows:   sortedFeatures(p.Report.Emotions.AudioFeatures),
	}
}

func sortedRows(dist map[string]int) []distRow {
	rows := make([]distRow, 0, len(dist))
	for period, count := range dist {
		rows = append(rows, distRow{period, count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })
	return rows
}

func sortedFeatures(features map[string]analysis.FeatureStats) []featureRow {
	rows := make([]featureRow, 0, len(features))
	for name, stats := range features {
		rows = append(rows, featureRow{name, stats})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

type indexEntry struct {
	Page
	Tracks    int
	Artists   int
	DateRange string
}

type indexData struct {
	Entries     []indexEntry
	GeneratedAt time.Time
}

func newIndexData(pages []Page) indexData {
	data := indexData{GeneratedAt: time.Now()}
	for _, p := range pages {
		entry := indexEntry{
			Page:    p,
			Tracks:  p.Report.Summary.TotalTracks,
			Artists: p.Report.Summary.UniqueArtists,
		}
		if r := p.Report.Summary.DateRange; r != nil {
			entry.DateRange = fmt.Sprintf("%s to %s", r.Earliest, r.Latest)
		}
		data.Entries = append(data.Entries, entry)
	}
	sort.Slice(data.Entries, func(i, j int) bool { return data.Entries[i].Name < data.Entries[j].Name })
	return data
}
