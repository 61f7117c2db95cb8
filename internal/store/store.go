package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store caches normalized, enriched datasets in SQLite so analysis commands
// can re-run without re-reading and re-enriching the source CSV.
type Store struct {
	db *sql.DB
}

const createSchema = `
CREATE TABLE IF NOT EXISTS Dataset (
  name TEXT PRIMARY KEY,
  source TEXT,
  imported_at DATETIME
);

CREATE TABLE IF NOT EXISTS Track (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  dataset TEXT NOT NULL,
  position INTEGER NOT NULL,
  name TEXT NOT NULL,
  artist TEXT NOT NULL,
  album TEXT,
  added_at DATETIME,
  popularity REAL,
  duration_ms REAL,
  FOREIGN KEY (dataset) REFERENCES Dataset(name)
);

CREATE TABLE IF NOT EXISTS TrackFeature (
  track INTEGER NOT NULL,
  feature TEXT NOT NULL,
  value REAL NOT NULL,
  PRIMARY KEY (track, feature),
  FOREIGN KEY (track) REFERENCES Track(id)
);

CREATE INDEX IF NOT EXISTS idx_track_dataset ON Track(dataset, position);
`

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(createSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
