package analysis

import (
	"sort"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// Diversity measures how concentrated the library is on a few artists and
// albums. Percentages are over all tracks, so album-less rows dilute the
// album figures rather than being ignored.
func Diversity(tracks []dataset.Track) DiversityMetrics {
	total := len(tracks)
	if total == 0 {
		return DiversityMetrics{}
	}

	artists := newCounter()
	albums := newCounter()
	for _, t := range tracks {
		artists.add(t.ArtistName)
		if t.AlbumName != "" {
			albums.add(t.AlbumName)
		}
	}

	metrics := DiversityMetrics{
		Artists: &ArtistDiversity{
			TotalUniqueArtists:    artists.distinct(),
			SimpsonDiversityIndex: simpsonDiversity(artists, total),
		},
	}

	_, mostCommon := artists.mostCommon()
	metrics.Artists.MostCommonPercentage = float64(mostCommon) / float64(total) * 100

	counts := make([]int, 0, artists.distinct())
	for _, name := range artists.order {
		counts = append(counts, artists.counts[name])
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	var topSum int
	for i, count := range counts {
		if i == 10 {
			break
		}
		topSum += count
	}
	metrics.Artists.Top10Percentage = float64(topSum) / float64(total) * 100

	if albums.distinct() > 0 {
		_, commonAlbum := albums.mostCommon()
		var singles int
		for _, name := range albums.order {
			if albums.counts[name] == 1 {
				singles++
			}
		}
		metrics.Albums = &AlbumDiversity{
			TotalUniqueAlbums:    albums.distinct(),
			MostCommonPercentage: float64(commonAlbum) / float64(total) * 100,
			SingleTrackAlbums:    singles,
		}
	}

	return metrics
}

// simpsonDiversity is 1 minus Simpson's index over artist counts: the
// probability that two tracks drawn without replacement have different
// artists. A single-track library has no pair to draw, so it scores zero.
func simpsonDiversity(c *counter, total int) float64 {
	if total < 2 {
		return 0
	}
	var index float64
	for _, count := range c.counts {
		index += float64(count*(count-1)) / float64(total*(total-1))
	}
	return 1 - index
}
