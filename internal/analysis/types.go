package analysis

// SummaryStats is the top-level descriptive summary for a dataset.
type SummaryStats struct {
	TotalTracks       int        `yaml:"total_tracks"`
	UniqueArtists     int        `yaml:"unique_artists"`
	UniqueAlbums      int        `yaml:"unique_albums"`
	MostCommonArtist  string     `yaml:"most_common_artist,omitempty"`
	MostCommonAlbum   string     `yaml:"most_common_album,omitempty"`
	AveragePopularity *float64   `yaml:"average_popularity,omitempty"`
	DateRange         *DateRange `yaml:"date_range,omitempty"`
}

// DateRange covers the rows with a valid timestamp only.
type DateRange struct {
	Earliest string `yaml:"earliest"`
	Latest   string `yaml:"latest"`
	SpanDays int    `yaml:"span_days"`
}

// Obsession is an artist, track, or album whose occurrence count meets the
// caller-supplied threshold.
type Obsession struct {
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Count      int     `yaml:"count"`
	Percentage float64 `yaml:"percentage"`
	Intensity  string  `yaml:"intensity"`
}

// TemporalPatterns buckets rows with a valid timestamp by calendar period.
// All fields are empty or nil when no row has a usable date.
type TemporalPatterns struct {
	MonthlyDistribution map[string]int `yaml:"monthly_distribution"`
	YearlyDistribution  map[string]int `yaml:"yearly_distribution"`
	WeeklyDistribution  map[string]int `yaml:"weekly_distribution"`
	WeekdayDistribution map[string]int `yaml:"weekday_distribution"`
	HourlyDistribution  map[string]int `yaml:"hourly_distribution"`
	PeakPeriods         *PeakPeriods   `yaml:"peak_periods,omitempty"`
}

type PeakPeriods struct {
	PeakMonth      string  `yaml:"peak_month"`
	PeakCount      int     `yaml:"peak_count"`
	AverageMonthly float64 `yaml:"average_monthly"`
	PeakYear       string  `yaml:"peak_year"`
	ActiveYears    int     `yaml:"active_years"`
	PeakWeekday    string  `yaml:"peak_weekday,omitempty"`
	PeakHour       string  `yaml:"peak_hour,omitempty"`
}

// ArtistEvolution tracks when each artist first entered the library. Only
// rows with a valid timestamp participate.
type ArtistEvolution struct {
	FirstAppearances      map[string]string   `yaml:"first_appearances"`
	DiscoveryTimeline     map[string][]string `yaml:"discovery_timeline"`
	ArtistsPerPeriod      map[string]int      `yaml:"artists_per_period"`
	TotalDiscoveryPeriods int                 `yaml:"total_discovery_periods"`
}

// DiversityMetrics measures how concentrated the library is. Blocks are nil
// when the corresponding dimension has no data.
type DiversityMetrics struct {
	Artists *ArtistDiversity `yaml:"artist_diversity,omitempty"`
	Albums  *AlbumDiversity  `yaml:"album_diversity,omitempty"`
}

type ArtistDiversity struct {
	TotalUniqueArtists    int     `yaml:"total_unique_artists"`
	SimpsonDiversityIndex float64 `yaml:"simpson_diversity_index"`
	MostCommonPercentage  float64 `yaml:"most_common_percentage"`
	Top10Percentage       float64 `yaml:"top_10_percentage"`
}

type AlbumDiversity struct {
	TotalUniqueAlbums    int     `yaml:"total_unique_albums"`
	MostCommonPercentage float64 `yaml:"most_common_percentage"`
	SingleTrackAlbums    int     `yaml:"single_track_albums"`
}

// FeatureStats is the per-feature statistics block of the emotion summary.
type FeatureStats struct {
	Mean         float64 `yaml:"mean"`
	Std          float64 `yaml:"std"`
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
	Median       float64 `yaml:"median"`
	Count        int     `yaml:"count"`
	ZeroFraction float64 `yaml:"zero_fraction"`
}

// EmotionSummary aggregates audio features across the dataset. Features with
// no observations are omitted from AudioFeatures entirely.
type EmotionSummary struct {
	AudioFeatures   map[string]FeatureStats `yaml:"audio_features"`
	Recommendations []string                `yaml:"recommendations"`
}

// Report bundles every metric for serialization (YAML report, email,
// static site).
type Report struct {
	Summary    SummaryStats     `yaml:"summary"`
	Obsessions []Obsession      `yaml:"obsessions"`
	Temporal   TemporalPatterns `yaml:"temporal_patterns"`
	Evolution  ArtistEvolution  `yaml:"artist_evolution"`
	Diversity  DiversityMetrics `yaml:"diversity_metrics"`
	Emotions   EmotionSummary   `yaml:"emotion_summary"`
}
