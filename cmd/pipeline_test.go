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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/ademuri/playlist-insights/internal/dataset"
	"github.com/ademuri/playlist-insights/internal/enrich"
)

func writeTestCSV(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestRunPipeline(t *testing.T) {
	path := writeTestCSV(t, "liked_songs.csv",
		"Track Name,Artist Name(s),Added At\n"+
			"Song A,Artist X,2024-01-05T10:30:00Z\n"+
			"Song A,Artist X,2024-01-05T10:30:00Z\n"+
			"Song B,Artist X,2024-02-01T08:00:00Z\n")

	tracks, report, err := runPipeline(context.Background(), path)
	if err != nil {
		t.Fatalf("runPipeline: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2 after dedup", len(tracks))
	}
	if report.Summary.TotalTracks != 2 {
		t.Errorf("TotalTracks = %d, want 2", report.Summary.TotalTracks)
	}

	// The default mock provider fills every feature column.
	for _, feature := range dataset.FeatureColumns {
		if _, ok := tracks[0].Feature(feature); !ok {
			t.Errorf("missing feature %q after enrichment", feature)
		}
	}
	if len(report.Emotions.AudioFeatures) == 0 {
		t.Error("no audio feature stats after mock enrichment")
	}
	if report.Diversity.Artists == nil {
		t.Error("report missing diversity metrics")
	}
	if report.Evolution.TotalDiscoveryPeriods != 1 {
		t.Errorf("TotalDiscoveryPeriods = %d, want 1", report.Evolution.TotalDiscoveryPeriods)
	}
}

func TestRunPipelineMissingFile(t *testing.T) {
	_, _, err := runPipeline(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Error("runPipeline on a missing file should fail")
	}
}

func TestEnrichTracksOff(t *testing.T) {
	viper.Set("enrich", "off")
	defer viper.Set("enrich", "mock")

	tracks := []dataset.Track{{TrackName: "Song A", ArtistName: "Artist X"}}
	enriched := enrichTracks(context.Background(), tracks)
	if enriched[0].Features != nil {
		t.Errorf("features = %v, want none with enrichment off", enriched[0].Features)
	}
}

func TestEnrichTracksMockIsDeterministic(t *testing.T) {
	tracks := []dataset.Track{{TrackName: "Song A", ArtistName: "Artist X"}}

	first := enrichTracks(context.Background(), tracks)
	second := enrichTracks(context.Background(), tracks)
	for _, feature := range dataset.FeatureColumns {
		a, _ := first[0].Feature(feature)
		b, _ := second[0].Feature(feature)
		if a != b {
			t.Errorf("feature %q differs between runs: %v vs %v", feature, a, b)
		}
	}
}

func TestSeedDefaultMatchesProvider(t *testing.T) {
	if got := viper.GetInt64("seed"); got != enrich.DefaultSeed {
		t.Errorf("seed default = %d, want enrich.DefaultSeed (%d)", got, enrich.DefaultSeed)
	}
}

func TestDatasetName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"liked_songs.csv", "liked_songs"},
		{"/data/exports/road trip.csv", "road trip"},
		{"plain", "plain"},
	}
	for _, test := range tests {
		if got := datasetName(test.path); got != test.want {
			t.Errorf("datasetName(%q) = %q, want %q", test.path, got, test.want)
		}
	}
}
