/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ademuri/playlist-insights/internal/analysis"
)

// Table holds tabular command output: a header row followed by data rows.
type Table struct {
	results [][]string
	summary string
}

func (t Table) String() string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header(t.results[0])
	for _, row := range t.results[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	if t.summary != "" {
		fmt.Fprintf(out, "%s\n", t.summary)
	}
	return out.String()
}

func summaryTable(stats analysis.SummaryStats) Table {
	results := [][]string{
		{"Metric", "Value"},
		{"Total tracks", strconv.Itoa(stats.TotalTracks)},
		{"Unique artists", strconv.Itoa(stats.UniqueArtists)},
		{"Unique albums", strconv.Itoa(stats.UniqueAlbums)},
	}
	if stats.MostCommonArtist != "" {
		results = append(results, []string{"Most common artist", stats.MostCommonArtist})
	}
	if stats.MostCommonAlbum != "" {
		results = append(results, []string{"Most common album", stats.MostCommonAlbum})
	}
	if stats.AveragePopularity != nil {
		results = append(results, []string{"Average popularity", fmt.Sprintf("%.1f", *stats.AveragePopularity)})
	}
	if stats.DateRange != nil {
		results = append(results, []string{
			"Date range",
			fmt.Sprintf("%s to %s (%d days)", stats.DateRange.Earliest, stats.DateRange.Latest, stats.DateRange.SpanDays),
		})
	}
	return Table{results: results}
}

func obsessionsTable(obsessions []analysis.Obsession) Table {
	if len(obsessions) == 0 {
		return Table{
			results: [][]string{{"Name", "Type", "Count", "%", "Intensity"}},
			summary: "No obsessions found above the threshold.",
		}
	}

	results := [][]string{{"Name", "Type", "Count", "%", "Intensity"}}
	for _, o := range obsessions {
		results = append(results, []string{
			o.Name,
			o.Type,
			strconv.Itoa(o.Count),
			fmt.Sprintf("%.1f", o.Percentage),
			o.Intensity,
		})
	}
	return Table{
		results: results,
		summary: fmt.Sprintf("%d obsessions found.", len(obsessions)),
	}
}

func temporalTable(patterns analysis.TemporalPatterns) Table {
	results := [][]string{{"Month", "Tracks added"}}

	months := make([]string, 0, len(patterns.MonthlyDistribution))
	for month := range patterns.MonthlyDistribution {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		results = append(results, []string{month, strconv.Itoa(patterns.MonthlyDistribution[month])})
	}

	table := Table{results: results}
	if patterns.PeakPeriods == nil {
		table.summary = "No rows with a valid timestamp."
	} else {
		table.summary = fmt.Sprintf("Peak month: %s (%d tracks, average %.1f/month).",
			patterns.PeakPeriods.PeakMonth, patterns.PeakPeriods.PeakCount, patterns.PeakPeriods.AverageMonthly)
	}
	return table
}

func evolutionTable(evolution analysis.ArtistEvolution) Table {
	results := [][]string{{"Year", "New artists"}}

	years := make([]string, 0, len(evolution.ArtistsPerPeriod))
	for year := range evolution.ArtistsPerPeriod {
		years = append(years, year)
	}
	sort.Strings(years)
	for _, year := range years {
		results = append(results, []string{year, strconv.Itoa(evolution.ArtistsPerPeriod[year])})
	}

	table := Table{results: results}
	if evolution.TotalDiscoveryPeriods == 0 {
		table.summary = "No rows with a valid timestamp."
	} else {
		table.summary = fmt.Sprintf("%d artists first appeared across %d year(s).",
			len(evolution.FirstAppearances), evolution.TotalDiscoveryPeriods)
	}
	return table
}

func diversityTable(metrics analysis.DiversityMetrics) Table {
	results := [][]string{{"Metric", "Value"}}

	if metrics.Artists != nil {
		results = append(results,
			[]string{"Unique artists", strconv.Itoa(metrics.Artists.TotalUniqueArtists)},
			[]string{"Simpson diversity index", fmt.Sprintf("%.3f", metrics.Artists.SimpsonDiversityIndex)},
			[]string{"Most common artist share", fmt.Sprintf("%.1f%%", metrics.Artists.MostCommonPercentage)},
			[]string{"Top 10 artists share", fmt.Sprintf("%.1f%%", metrics.Artists.Top10Percentage)},
		)
	}
	if metrics.Albums != nil {
		results = append(results,
			[]string{"Unique albums", strconv.Itoa(metrics.Albums.TotalUniqueAlbums)},
			[]string{"Most common album share", fmt.Sprintf("%.1f%%", metrics.Albums.MostCommonPercentage)},
			[]string{"Single-track albums", strconv.Itoa(metrics.Albums.SingleTrackAlbums)},
		)
	}

	table := Table{results: results}
	if metrics.Artists == nil {
		table.summary = "No tracks to measure."
	}
	return table
}

func emotionsTable(summary analysis.EmotionSummary) Table {
	results := [][]string{{"Feature", "Mean", "Std", "Min", "Max", "Median", "Zero fraction"}}

	features := make([]string, 0, len(summary.AudioFeatures))
	for feature := range summary.AudioFeatures {
		features = append(features, feature)
	}
	sort.Strings(features)
	for _, feature := range features {
		stats := summary.AudioFeatures[feature]
		results = append(results, []string{
			feature,
			fmt.Sprintf("%.3f", stats.Mean),
			fmt.Sprintf("%.3f", stats.Std),
			fmt.Sprintf("%.3f", stats.Min),
			fmt.Sprintf("%.3f", stats.Max),
			fmt.Sprintf("%.3f", stats.Median),
			fmt.Sprintf("%.2f", stats.ZeroFraction),
		})
	}

	table := Table{results: results}
	for _, rec := range summary.Recommendations {
		table.summary += rec + "\n"
	}
	return table
}
