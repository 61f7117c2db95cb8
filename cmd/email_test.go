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

func TestGenerateEmailContent(t *testing.T) {
	config := SendEmailConfig{
		From:        "insights@example.com",
		To:          "listener@example.com",
		DatasetName: "liked-songs",
		Report: analysis.Report{
			Summary: analysis.SummaryStats{
				TotalTracks:      6,
				UniqueArtists:    2,
				UniqueAlbums:     1,
				MostCommonArtist: "Artist X",
				DateRange:        &analysis.DateRange{Earliest: "2024-01-05", Latest: "2024-02-01", SpanDays: 27},
			},
			Obsessions: []analysis.Obsession{
				{Name: "Artist X", Type: "artist", Count: 5, Percentage: 83.3, Intensity: "Extreme"},
			},
			Diversity: analysis.DiversityMetrics{
				Artists: &analysis.ArtistDiversity{
					TotalUniqueArtists:    2,
					SimpsonDiversityIndex: 0.278,
					Top10Percentage:       100.0,
				},
			},
			Emotions: analysis.EmotionSummary{
				Recommendations: []string{"High valence detected"},
			},
		},
	}

	body := generateEmailContent(config)
	for _, want := range []string{
		"Playlist insights for liked-songs",
		"<tr><td>Total tracks</td><td>6</td></tr>",
		"Artist X",
		"2024-01-05 to 2024-02-01",
		"Extreme",
		"<tr><td>Simpson diversity index</td><td>0.278</td></tr>",
		"<li>High valence detected</li>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("email body missing %q", want)
		}
	}
}

func TestGenerateEmailContentEscapes(t *testing.T) {
	config := SendEmailConfig{
		DatasetName: "x",
		Report: analysis.Report{
			Summary: analysis.SummaryStats{MostCommonArtist: "<b>Artist</b>"},
		},
	}

	body := generateEmailContent(config)
	if strings.Contains(body, "<b>Artist</b>") {
		t.Error("artist name not escaped")
	}
	if !strings.Contains(body, "&lt;b&gt;Artist&lt;/b&gt;") {
		t.Error("escaped artist name missing")
	}
}

func TestGenerateEmailContentOmitsEmptySections(t *testing.T) {
	body := generateEmailContent(SendEmailConfig{DatasetName: "x"})
	if strings.Contains(body, "Obsessions") {
		t.Error("email shows obsessions section with no obsessions")
	}
	if strings.Contains(body, "Reflections") {
		t.Error("email shows reflections section with no recommendations")
	}
	if strings.Contains(body, "Diversity") {
		t.Error("email shows diversity section with no tracks")
	}
}

func TestSendEmailDryRun(t *testing.T) {
	err := sendEmail(SendEmailConfig{DatasetName: "x", DryRun: true})
	if err != nil {
		t.Errorf("dry run sendEmail: %v", err)
	}
}

func TestSendEmailRequiresApiKey(t *testing.T) {
	err := sendEmail(SendEmailConfig{DatasetName: "x"})
	if err == nil {
		t.Error("sendEmail without an API key should fail")
	}
}
