package store

import (
	"fmt"
	"time"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// SaveDataset replaces any cached copy of the named dataset with the given
// tracks, transactionally. Position preserves input order so reloads keep
// the normalizer's stable ordering.
func (s *Store) SaveDataset(name, source string, tracks []dataset.Track) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM TrackFeature WHERE track IN (SELECT id FROM Track WHERE dataset = ?)", name); err != nil {
		return fmt.Errorf("clearing features for %q: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM Track WHERE dataset = ?", name); err != nil {
		return fmt.Errorf("clearing tracks for %q: %w", name, err)
	}
	if _, err := tx.Exec(
		"INSERT INTO Dataset (name, source, imported_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(name) DO UPDATE SET source = excluded.source, imported_at = excluded.imported_at",
		name, source, time.Now().UTC()); err != nil {
		return fmt.Errorf("upserting dataset %q: %w", name, err)
	}

	for i, t := range tracks {
		var addedAt interface{}
		if t.AddedAt != nil {
			addedAt = t.AddedAt.UTC()
		}
		var popularity, duration interface{}
		if t.Popularity != nil {
			popularity = *t.Popularity
		}
		if t.DurationMS != nil {
			duration = *t.DurationMS
		}

		result, err := tx.Exec(
			"INSERT INTO Track (dataset, position, name, artist, album, added_at, popularity, duration_ms) "+
				"VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			name, i, t.TrackName, t.ArtistName, t.AlbumName, addedAt, popularity, duration)
		if err != nil {
			return fmt.Errorf("inserting track %q: %w", t.TrackName, err)
		}
		trackID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting track id: %w", err)
		}

		for feature, value := range t.Features {
			if _, err := tx.Exec(
				"INSERT INTO TrackFeature (track, feature, value) VALUES (?, ?, ?)",
				trackID, feature, value); err != nil {
				return fmt.Errorf("inserting feature %q for track %q: %w", feature, t.TrackName, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
