package dataset

import (
	"strconv"
	"strings"
	"time"
)

// Canonical field names mapped to the source-column aliases seen across
// Exportify versions and similar export tools. Order matters: the first
// present, non-empty alias wins.
var fieldAliases = []struct {
	field   string
	aliases []string
}{
	{"track_name", []string{"Track Name", "track_name", "name", "song"}},
	{"artist_name", []string{"Artist Name(s)", "artist_name", "artist", "Artist Name"}},
	{"album_name", []string{"Album Name", "album_name", "album"}},
	{"added_at", []string{"Added At", "added_at", "date_added", "timestamp"}},
}

var popularityAliases = []string{"Popularity", "popularity", "play_count"}
var durationAliases = []string{"Track Duration (ms)", "duration_ms", "duration"}

// Timestamp layouts tried in order. Exportify emits RFC 3339; other export
// tools drop the timezone or the time entirely.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Report summarizes what Normalize removed, for logging only.
type Report struct {
	RawRows        int
	Duplicates     int
	MissingFields  int
	InvalidDates   int
	InvalidNumbers int
}

// Kept returns the number of rows that survived cleaning.
func (r Report) Kept() int {
	return r.RawRows - r.Duplicates - r.MissingFields
}

// Normalize maps variant source columns onto the canonical track schema,
// coerces types, drops rows missing a track or artist name, and removes
// duplicates by case-insensitive (track, artist) pair, keeping the first
// occurrence. It is a pure function: row-level problems are folded into the
// Report, never raised.
func Normalize(rows []Row) ([]Track, Report) {
	report := Report{RawRows: len(rows)}
	seen := make(map[string]bool, len(rows))
	tracks := make([]Track, 0, len(rows))

	for _, row := range rows {
		track := Track{}
		mapped := make(map[string]bool)

		for _, fa := range fieldAliases {
			value, source, ok := resolveAlias(row, fa.aliases)
			if !ok {
				continue
			}
			mapped[source] = true

			switch fa.field {
			case "track_name":
				track.TrackName = value
			case "artist_name":
				track.ArtistName = value
			case "album_name":
				track.AlbumName = value
			case "added_at":
				if ts, ok := parseTimestamp(value); ok {
					track.AddedAt = &ts
				} else {
					report.InvalidDates++
				}
			}
		}

		if track.TrackName == "" || track.ArtistName == "" {
			report.MissingFields++
			continue
		}

		key := dedupKey(track.TrackName, track.ArtistName)
		if seen[key] {
			report.Duplicates++
			continue
		}
		seen[key] = true

		if v, source, ok := resolveAlias(row, popularityAliases); ok {
			mapped[source] = true
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				track.Popularity = &f
			} else {
				report.InvalidNumbers++
			}
		}
		if v, source, ok := resolveAlias(row, durationAliases); ok {
			mapped[source] = true
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				track.DurationMS = &f
			} else {
				report.InvalidNumbers++
			}
		}

		// Some exports already carry audio-feature columns; lift any
		// numeric values so they flow into the emotion summary.
		for _, feature := range FeatureColumns {
			v, ok := row[feature]
			if !ok || strings.TrimSpace(v) == "" {
				continue
			}
			mapped[feature] = true
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				report.InvalidNumbers++
				continue
			}
			if track.Features == nil {
				track.Features = make(map[string]float64)
			}
			track.Features[feature] = f
		}

		// Unmapped source columns pass through unchanged.
		for name, value := range row {
			if mapped[name] {
				continue
			}
			if track.Extra == nil {
				track.Extra = make(map[string]string)
			}
			track.Extra[name] = value
		}

		tracks = append(tracks, track)
	}

	return tracks, report
}

func resolveAlias(row Row, aliases []string) (value, source string, ok bool) {
	for _, alias := range aliases {
		if v, present := row[alias]; present {
			v = strings.TrimSpace(v)
			if v != "" {
				return v, alias, true
			}
		}
	}
	return "", "", false
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func dedupKey(trackName, artistName string) string {
	return strings.ToLower(trackName) + "\x00" + strings.ToLower(artistName)
}
