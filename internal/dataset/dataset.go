package dataset

import (
	"time"
)

// Row is a single parsed CSV row, keyed by source column name. Values are
// kept as strings until Normalize coerces them.
type Row map[string]string

// Track is one normalized playlist entry. TrackName and ArtistName are
// always non-empty after Normalize; everything else is optional.
type Track struct {
	TrackName  string
	ArtistName string
	AlbumName  string

	// AddedAt is nil when the source timestamp was missing or unparseable.
	AddedAt *time.Time

	Popularity *float64
	DurationMS *float64

	// Features holds numeric audio-feature values (valence, energy, ...)
	// supplied by an enrichment provider or present in the source CSV.
	// Absent features have no key; they are never stored as zero.
	Features map[string]float64

	// Extra preserves unmapped source columns verbatim.
	Extra map[string]string
}

// FeatureColumns is the set of audio-feature columns an enrichment provider
// populates. Tempo is on a different scale than the 0-1 features, so
// statistics consumers typically exclude it.
var FeatureColumns = []string{
	"valence",
	"energy",
	"danceability",
	"acousticness",
	"instrumentalness",
	"liveness",
	"speechiness",
	"tempo",
}

// Feature returns the named feature value, and whether it is present.
func (t Track) Feature(name string) (float64, bool) {
	v, ok := t.Features[name]
	return v, ok
}

// Key is the case-insensitive identity used for deduplication.
func (t Track) Key() string {
	return dedupKey(t.TrackName, t.ArtistName)
}
