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
	"strings"
	"testing"

	"github.com/ademuri/playlist-insights/internal/analysis"
)

func TestSummaryTable(t *testing.T) {
	popularity := 72.5
	stats := analysis.SummaryStats{
		TotalTracks:       10,
		UniqueArtists:     4,
		UniqueAlbums:      3,
		MostCommonArtist:  "Artist X",
		AveragePopularity: &popularity,
		DateRange: &analysis.DateRange{
			Earliest: "2024-01-05",
			Latest:   "2024-02-01",
			SpanDays: 27,
		},
	}

	out := summaryTable(stats).String()
	for _, want := range []string{"Total tracks", "10", "Artist X", "72.5", "2024-01-05 to 2024-02-01 (27 days)"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary table missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryTableOmitsEmptyFields(t *testing.T) {
	out := summaryTable(analysis.SummaryStats{TotalTracks: 1}).String()
	if strings.Contains(out, "Date range") {
		t.Errorf("summary table shows a date range with no dates:\n%s", out)
	}
	if strings.Contains(out, "Average popularity") {
		t.Errorf("summary table shows popularity with no values:\n%s", out)
	}
}

func TestObsessionsTable(t *testing.T) {
	obsessions := []analysis.Obsession{
		{Name: "Artist X", Type: "artist", Count: 5, Percentage: 83.33, Intensity: "Extreme"},
	}

	out := obsessionsTable(obsessions).String()
	for _, want := range []string{"Artist X", "artist", "83.3", "Extreme", "1 obsessions found."} {
		if !strings.Contains(out, want) {
			t.Errorf("obsessions table missing %q:\n%s", want, out)
		}
	}
}

func TestObsessionsTableEmpty(t *testing.T) {
	out := obsessionsTable(nil).String()
	if !strings.Contains(out, "No obsessions found above the threshold.") {
		t.Errorf("empty obsessions table missing notice:\n%s", out)
	}
}

func TestTemporalTable(t *testing.T) {
	patterns := analysis.TemporalPatterns{
		MonthlyDistribution: map[string]int{"2024-02": 1, "2024-01": 3},
		PeakPeriods: &analysis.PeakPeriods{
			PeakMonth: "2024-01", PeakCount: 3, AverageMonthly: 2.0,
		},
	}

	out := temporalTable(patterns).String()
	if !strings.Contains(out, "Peak month: 2024-01 (3 tracks, average 2.0/month).") {
		t.Errorf("temporal table missing peak summary:\n%s", out)
	}
	if strings.Index(out, "2024-01") > strings.Index(out, "2024-02") {
		t.Errorf("months not in ascending order:\n%s", out)
	}
}

func TestTemporalTableNoDates(t *testing.T) {
	out := temporalTable(analysis.TemporalPatterns{}).String()
	if !strings.Contains(out, "No rows with a valid timestamp.") {
		t.Errorf("temporal table missing empty notice:\n%s", out)
	}
}

func TestEvolutionTable(t *testing.T) {
	evolution := analysis.ArtistEvolution{
		FirstAppearances:      map[string]string{"Artist X": "2023-01-05", "Artist Y": "2024-02-14"},
		ArtistsPerPeriod:      map[string]int{"2024": 1, "2023": 1},
		TotalDiscoveryPeriods: 2,
	}

	out := evolutionTable(evolution).String()
	if !strings.Contains(out, "2 artists first appeared across 2 year(s).") {
		t.Errorf("evolution table missing summary:\n%s", out)
	}
	if strings.Index(out, "2023") > strings.Index(out, "2024") {
		t.Errorf("years not in ascending order:\n%s", out)
	}
}

func TestEvolutionTableNoDates(t *testing.T) {
	out := evolutionTable(analysis.ArtistEvolution{}).String()
	if !strings.Contains(out, "No rows with a valid timestamp.") {
		t.Errorf("evolution table missing empty notice:\n%s", out)
	}
}

func TestDiversityTable(t *testing.T) {
	metrics := analysis.DiversityMetrics{
		Artists: &analysis.ArtistDiversity{
			TotalUniqueArtists:    4,
			SimpsonDiversityIndex: 0.5,
			MostCommonPercentage:  75.0,
			Top10Percentage:       100.0,
		},
		Albums: &analysis.AlbumDiversity{
			TotalUniqueAlbums:    2,
			MostCommonPercentage: 50.0,
			SingleTrackAlbums:    1,
		},
	}

	out := diversityTable(metrics).String()
	for _, want := range []string{"Simpson diversity index", "0.500", "75.0%", "Single-track albums"} {
		if !strings.Contains(out, want) {
			t.Errorf("diversity table missing %q:\n%s", want, out)
		}
	}
}

func TestDiversityTableEmpty(t *testing.T) {
	out := diversityTable(analysis.DiversityMetrics{}).String()
	if !strings.Contains(out, "No tracks to measure.") {
		t.Errorf("empty diversity table missing notice:\n%s", out)
	}
}

func TestEmotionsTable(t *testing.T) {
	summary := analysis.EmotionSummary{
		AudioFeatures: map[string]analysis.FeatureStats{
			"valence": {Mean: 0.8, Std: 0.05, Min: 0.7, Max: 0.9, Median: 0.8, Count: 3},
		},
		Recommendations: []string{"High valence detected"},
	}

	out := emotionsTable(summary).String()
	for _, want := range []string{"valence", "0.800", "High valence detected"} {
		if !strings.Contains(out, want) {
			t.Errorf("emotions table missing %q:\n%s", want, out)
		}
	}
}
