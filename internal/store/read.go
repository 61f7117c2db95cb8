package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// DatasetInfo is one row of ListDatasets.
type DatasetInfo struct {
	Name       string
	Source     string
	ImportedAt time.Time
	Tracks     int
}

// ListDatasets returns the cached datasets, newest first.
func (s *Store) ListDatasets() ([]DatasetInfo, error) {
	rows, err := s.db.Query(`
		SELECT d.name, d.source, d.imported_at, COUNT(t.id)
		FROM Dataset d
		LEFT JOIN Track t ON t.dataset = d.name
		GROUP BY d.name
		ORDER BY d.imported_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	defer rows.Close()

	var infos []DatasetInfo
	for rows.Next() {
		var info DatasetInfo
		if err := rows.Scan(&info.Name, &info.Source, &info.ImportedAt, &info.Tracks); err != nil {
			return nil, fmt.Errorf("scanning dataset: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// LoadDataset reloads a cached dataset in its original order. It returns
// sql.ErrNoRows when the dataset is not cached.
func (s *Store) LoadDataset(name string) ([]dataset.Track, error) {
	row := s.db.QueryRow("SELECT name FROM Dataset WHERE name = ?", name)
	var dummy string
	if err := row.Scan(&dummy); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT id, name, artist, album, added_at, popularity, duration_ms
		FROM Track WHERE dataset = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("querying tracks for %q: %w", name, err)
	}
	defer rows.Close()

	var tracks []dataset.Track
	var ids []int64
	for rows.Next() {
		var id int64
		var t dataset.Track
		var addedAt sql.NullTime
		var popularity, duration sql.NullFloat64
		if err := rows.Scan(&id, &t.TrackName, &t.ArtistName, &t.AlbumName, &addedAt, &popularity, &duration); err != nil {
			return nil, fmt.Errorf("scanning track: %w", err)
		}
		if addedAt.Valid {
			ts := addedAt.Time
			t.AddedAt = &ts
		}
		if popularity.Valid {
			v := popularity.Float64
			t.Popularity = &v
		}
		if duration.Valid {
			v := duration.Float64
			t.DurationMS = &v
		}
		tracks = append(tracks, t)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		features, err := s.loadFeatures(id)
		if err != nil {
			return nil, err
		}
		tracks[i].Features = features
	}

	return tracks, nil
}

func (s *Store) loadFeatures(trackID int64) (map[string]float64, error) {
	rows, err := s.db.Query("SELECT feature, value FROM TrackFeature WHERE track = ?", trackID)
	if err != nil {
		return nil, fmt.Errorf("querying features: %w", err)
	}
	defer rows.Close()

	var features map[string]float64
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scanning feature: %w", err)
		}
		if features == nil {
			features = make(map[string]float64)
		}
		features[name] = value
	}
	return features, rows.Err()
}
