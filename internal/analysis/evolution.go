package analysis

import (
	"sort"
	"time"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// Evolution builds the artist discovery timeline: when each artist first
// appeared, grouped by year. Artists whose rows all lack a timestamp are
// excluded; with no dated rows at all every field stays empty, which is not
// an error.
func Evolution(tracks []dataset.Track) ArtistEvolution {
	first := make(map[string]time.Time)
	for _, t := range tracks {
		if t.AddedAt == nil {
			continue
		}
		if cur, seen := first[t.ArtistName]; !seen || t.AddedAt.Before(cur) {
			first[t.ArtistName] = *t.AddedAt
		}
	}
	if len(first) == 0 {
		return ArtistEvolution{}
	}

	evolution := ArtistEvolution{
		FirstAppearances:  make(map[string]string, len(first)),
		DiscoveryTimeline: make(map[string][]string),
		ArtistsPerPeriod:  make(map[string]int),
	}
	for artist, ts := range first {
		evolution.FirstAppearances[artist] = ts.Format("2006-01-02")
		year := ts.Format("2006")
		evolution.DiscoveryTimeline[year] = append(evolution.DiscoveryTimeline[year], artist)
	}
	for year, artists := range evolution.DiscoveryTimeline {
		sort.Strings(artists)
		evolution.ArtistsPerPeriod[year] = len(artists)
	}
	evolution.TotalDiscoveryPeriods = len(evolution.DiscoveryTimeline)

	return evolution
}
