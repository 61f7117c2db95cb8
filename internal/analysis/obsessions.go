package analysis

import (
	"sort"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// Intensity cut points, as percentages of the dataset. Kept as variables
// rather than re-derived thresholds: these are the tool's defaults.
var (
	ExtremePercentage  = 10.0
	HighPercentage     = 5.0
	ModeratePercentage = 2.0
)

// FindObsessions finds artists, tracks, and albums whose occurrence count
// meets threshold. The three dimensions are counted independently. Results
// are ordered by descending count; ties keep first-encountered order.
//
// A threshold of zero or below qualifies every distinct entity; a threshold
// above the maximum count yields an empty list.
func FindObsessions(tracks []dataset.Track, threshold int) []Obsession {
	total := len(tracks)
	if total == 0 {
		return nil
	}

	artists := newCounter()
	names := newCounter()
	albums := newCounter()
	for _, t := range tracks {
		artists.add(t.ArtistName)
		names.add(t.TrackName)
		if t.AlbumName != "" {
			albums.add(t.AlbumName)
		}
	}

	var obsessions []Obsession
	collect := func(c *counter, kind string) {
		for _, name := range c.order {
			count := c.counts[name]
			if count < threshold {
				continue
			}
			percentage := float64(count) / float64(total) * 100
			obsessions = append(obsessions, Obsession{
				Name:       name,
				Type:       kind,
				Count:      count,
				Percentage: percentage,
				Intensity:  intensity(percentage),
			})
		}
	}
	collect(artists, "artist")
	collect(names, "track")
	collect(albums, "album")

	sort.SliceStable(obsessions, func(i, j int) bool {
		return obsessions[i].Count > obsessions[j].Count
	})
	return obsessions
}

func intensity(percentage float64) string {
	switch {
	case percentage >= ExtremePercentage:
		return "Extreme"
	case percentage >= HighPercentage:
		return "High"
	case percentage >= ModeratePercentage:
		return "Moderate"
	default:
		return "Low"
	}
}
