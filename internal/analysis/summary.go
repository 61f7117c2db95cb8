package analysis

import (
	"time"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// Summary computes descriptive statistics over a normalized dataset.
// Ties for "most common" resolve to the first-encountered name.
func Summary(tracks []dataset.Track) SummaryStats {
	stats := SummaryStats{TotalTracks: len(tracks)}
	if len(tracks) == 0 {
		return stats
	}

	artists := newCounter()
	albums := newCounter()
	var earliest, latest *time.Time
	var popularitySum float64
	var popularityCount int

	for _, t := range tracks {
		artists.add(t.ArtistName)
		if t.AlbumName != "" {
			albums.add(t.AlbumName)
		}
		if t.AddedAt != nil {
			if earliest == nil || t.AddedAt.Before(*earliest) {
				earliest = t.AddedAt
			}
			if latest == nil || t.AddedAt.After(*latest) {
				latest = t.AddedAt
			}
		}
		if t.Popularity != nil {
			popularitySum += *t.Popularity
			popularityCount++
		}
	}

	stats.UniqueArtists = artists.distinct()
	stats.UniqueAlbums = albums.distinct()
	stats.MostCommonArtist, _ = artists.mostCommon()
	stats.MostCommonAlbum, _ = albums.mostCommon()

	if popularityCount > 0 {
		avg := popularitySum / float64(popularityCount)
		stats.AveragePopularity = &avg
	}

	if earliest != nil && latest != nil {
		stats.DateRange = &DateRange{
			Earliest: earliest.Format("2006-01-02"),
			Latest:   latest.Format("2006-01-02"),
			SpanDays: int(latest.Sub(*earliest).Hours() / 24),
		}
	}

	return stats
}

// counter counts names while remembering first-encounter order, so that
// ties resolve deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *counter) distinct() int {
	return len(c.order)
}

// mostCommon returns the first-encountered name among the maximum-count
// group, or "" when nothing was counted.
func (c *counter) mostCommon() (string, int) {
	best := ""
	bestCount := 0
	for _, name := range c.order {
		if c.counts[name] > bestCount {
			best = name
			bestCount = c.counts[name]
		}
	}
	return best, bestCount
}
