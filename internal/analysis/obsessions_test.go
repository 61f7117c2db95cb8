package analysis

import (
	"fmt"
	"math"
	"testing"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

func TestFindObsessions(t *testing.T) {
	// 5 tracks by Artist X, 1 by Artist Y, all distinct names.
	tracks := []dataset.Track{
		makeTrack("Song A", "Artist X", "", ""),
		makeTrack("Song B", "Artist X", "", ""),
		makeTrack("Song C", "Artist X", "", ""),
		makeTrack("Song D", "Artist X", "", ""),
		makeTrack("Song E", "Artist X", "", ""),
		makeTrack("Song F", "Artist Y", "", ""),
	}

	obsessions := FindObsessions(tracks, 3)
	if len(obsessions) != 1 {
		t.Fatalf("got %d obsessions, want 1: %+v", len(obsessions), obsessions)
	}

	o := obsessions[0]
	if o.Name != "Artist X" || o.Type != "artist" || o.Count != 5 {
		t.Errorf("obsession = %+v, want Artist X/artist/5", o)
	}
	if math.Abs(o.Percentage-83.33) > 0.01 {
		t.Errorf("Percentage = %v, want 83.33", o.Percentage)
	}
	if o.Intensity != "Extreme" {
		t.Errorf("Intensity = %q, want Extreme", o.Intensity)
	}
}

func TestFindObsessionsPercentageConsistency(t *testing.T) {
	var tracks []dataset.Track
	for i := 0; i < 7; i++ {
		tracks = append(tracks, makeTrack(fmt.Sprintf("Song %d", i%3), "Artist X", "Album Z", ""))
	}

	for _, o := range FindObsessions(tracks, 1) {
		want := float64(o.Count) / float64(len(tracks)) * 100
		if math.Abs(o.Percentage-want) > 1e-9 {
			t.Errorf("%s: Percentage = %v, want %v", o.Name, o.Percentage, want)
		}
	}
}

func TestFindObsessionsOrdering(t *testing.T) {
	tracks := []dataset.Track{
		makeTrack("Song A", "Artist B", "", ""),
		makeTrack("Song B", "Artist B", "", ""),
		makeTrack("Song C", "Artist A", "", ""),
		makeTrack("Song D", "Artist A", "", ""),
		makeTrack("Song E", "Artist C", "", ""),
		makeTrack("Song F", "Artist C", "", ""),
		makeTrack("Song G", "Artist C", "", ""),
	}

	obsessions := FindObsessions(tracks, 2)
	if len(obsessions) != 3 {
		t.Fatalf("got %d obsessions, want 3", len(obsessions))
	}
	// Descending by count; equal counts keep first-encountered order.
	if obsessions[0].Name != "Artist C" {
		t.Errorf("first = %q, want Artist C", obsessions[0].Name)
	}
	if obsessions[1].Name != "Artist B" || obsessions[2].Name != "Artist A" {
		t.Errorf("tie order = %q, %q; want Artist B, Artist A", obsessions[1].Name, obsessions[2].Name)
	}
}

func TestFindObsessionsThresholdMonotonicity(t *testing.T) {
	var tracks []dataset.Track
	for i := 0; i < 20; i++ {
		tracks = append(tracks, makeTrack(fmt.Sprintf("Song %d", i%5), fmt.Sprintf("Artist %d", i%3), fmt.Sprintf("Album %d", i%2), ""))
	}

	previous := len(FindObsessions(tracks, 0))
	for threshold := 1; threshold <= 25; threshold++ {
		current := len(FindObsessions(tracks, threshold))
		if current > previous {
			t.Errorf("threshold %d returned %d results, more than %d at threshold %d", threshold, current, previous, threshold-1)
		}
		previous = current
	}
}

func TestFindObsessionsZeroThreshold(t *testing.T) {
	tracks := []dataset.Track{
		makeTrack("Song A", "Artist X", "Album Z", ""),
		makeTrack("Song B", "Artist Y", "", ""),
	}

	// Everything qualifies: 2 artists + 2 tracks + 1 album.
	obsessions := FindObsessions(tracks, 0)
	if len(obsessions) != 5 {
		t.Errorf("got %d obsessions, want 5: %+v", len(obsessions), obsessions)
	}
}

func TestFindObsessionsHighThreshold(t *testing.T) {
	tracks := []dataset.Track{
		makeTrack("Song A", "Artist X", "", ""),
	}

	if got := FindObsessions(tracks, 100); len(got) != 0 {
		t.Errorf("got %d obsessions, want 0", len(got))
	}
}

func TestFindObsessionsEmpty(t *testing.T) {
	if got := FindObsessions(nil, 1); len(got) != 0 {
		t.Errorf("got %d obsessions for empty input, want 0", len(got))
	}
}

func TestIntensityBuckets(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{15.0, "Extreme"},
		{10.0, "Extreme"},
		{7.5, "High"},
		{5.0, "High"},
		{3.0, "Moderate"},
		{2.0, "Moderate"},
		{1.9, "Low"},
		{0.0, "Low"},
	}
	for _, test := range tests {
		if got := intensity(test.percentage); got != test.want {
			t.Errorf("intensity(%v) = %q, want %q", test.percentage, got, test.want)
		}
	}
}
