package analysis

import (
	"math"
	"testing"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

func TestDiversity(t *testing.T) {
	// 3 tracks by Artist X, 1 by Artist Y.
	tracks := []dataset.Track{
		makeTrack("Song A", "Artist X", "Album Z", ""),
		makeTrack("Song B", "Artist X", "Album Z", ""),
		makeTrack("Song C", "Artist X", "Album W", ""),
		makeTrack("Song D", "Artist Y", "", ""),
	}

	metrics := Diversity(tracks)
	if metrics.Artists == nil {
		t.Fatal("Artists = nil, want value")
	}

	if metrics.Artists.TotalUniqueArtists != 2 {
		t.Errorf("TotalUniqueArtists = %d, want 2", metrics.Artists.TotalUniqueArtists)
	}
	// 1 - (3*2 + 1*0) / (4*3) = 1 - 6/12 = 0.5
	if math.Abs(metrics.Artists.SimpsonDiversityIndex-0.5) > 1e-9 {
		t.Errorf("SimpsonDiversityIndex = %v, want 0.5", metrics.Artists.SimpsonDiversityIndex)
	}
	if math.Abs(metrics.Artists.MostCommonPercentage-75.0) > 1e-9 {
		t.Errorf("MostCommonPercentage = %v, want 75.0", metrics.Artists.MostCommonPercentage)
	}
	// Fewer than 10 artists: the top-10 share covers everything.
	if math.Abs(metrics.Artists.Top10Percentage-100.0) > 1e-9 {
		t.Errorf("Top10Percentage = %v, want 100.0", metrics.Artists.Top10Percentage)
	}

	if metrics.Albums == nil {
		t.Fatal("Albums = nil, want value")
	}
	if metrics.Albums.TotalUniqueAlbums != 2 {
		t.Errorf("TotalUniqueAlbums = %d, want 2", metrics.Albums.TotalUniqueAlbums)
	}
	// Album share is over all 4 tracks, including the album-less row.
	if math.Abs(metrics.Albums.MostCommonPercentage-50.0) > 1e-9 {
		t.Errorf("album MostCommonPercentage = %v, want 50.0", metrics.Albums.MostCommonPercentage)
	}
	if metrics.Albums.SingleTrackAlbums != 1 {
		t.Errorf("SingleTrackAlbums = %d, want 1", metrics.Albums.SingleTrackAlbums)
	}
}

func TestDiversityTop10Percentage(t *testing.T) {
	var tracks []dataset.Track
	// 12 artists: counts 12, 11, ..., 1. Top 10 leaves out the two
	// smallest counts (2 and 1).
	total := 0
	for i := 1; i <= 12; i++ {
		for j := 0; j < i; j++ {
			tracks = append(tracks, makeTrack("Song", artistName(i), "", ""))
		}
		total += i
	}

	metrics := Diversity(tracks)
	want := float64(total-3) / float64(total) * 100
	if math.Abs(metrics.Artists.Top10Percentage-want) > 1e-9 {
		t.Errorf("Top10Percentage = %v, want %v", metrics.Artists.Top10Percentage, want)
	}
}

func artistName(i int) string {
	return "Artist " + string(rune('A'+i-1))
}

func TestDiversitySingleTrack(t *testing.T) {
	metrics := Diversity([]dataset.Track{makeTrack("Song A", "Artist X", "", "")})

	// No pair to draw from a single track.
	if metrics.Artists.SimpsonDiversityIndex != 0 {
		t.Errorf("SimpsonDiversityIndex = %v, want 0 for a single track", metrics.Artists.SimpsonDiversityIndex)
	}
	if metrics.Artists.MostCommonPercentage != 100.0 {
		t.Errorf("MostCommonPercentage = %v, want 100.0", metrics.Artists.MostCommonPercentage)
	}
}

func TestDiversityAllDistinctArtists(t *testing.T) {
	tracks := []dataset.Track{
		makeTrack("Song A", "Artist X", "", ""),
		makeTrack("Song B", "Artist Y", "", ""),
		makeTrack("Song C", "Artist Z", "", ""),
	}

	metrics := Diversity(tracks)
	if metrics.Artists.SimpsonDiversityIndex != 1.0 {
		t.Errorf("SimpsonDiversityIndex = %v, want 1.0 for all-distinct artists", metrics.Artists.SimpsonDiversityIndex)
	}
}

func TestDiversityNoAlbums(t *testing.T) {
	tracks := []dataset.Track{
		makeTrack("Song A", "Artist X", "", ""),
		makeTrack("Song B", "Artist Y", "", ""),
	}

	metrics := Diversity(tracks)
	if metrics.Albums != nil {
		t.Errorf("Albums = %+v, want nil with no album names", metrics.Albums)
	}
}

func TestDiversityEmpty(t *testing.T) {
	metrics := Diversity(nil)
	if metrics.Artists != nil || metrics.Albums != nil {
		t.Errorf("Diversity(nil) = %+v, want empty", metrics)
	}
}
