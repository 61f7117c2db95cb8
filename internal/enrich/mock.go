package enrich

import (
	"context"
	"math/rand"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// MockProvider generates deterministic pseudo-random audio features from a
// fixed seed. It stands in for the Spotify API so the rest of the pipeline
// is testable without network access.
type MockProvider struct {
	Seed int64
}

func NewMockProvider(seed int64) *MockProvider {
	return &MockProvider{Seed: seed}
}

// Enrich fills every feature column for every track. Tempo is drawn from
// [60, 200); the other features from [0, 1).
func (p *MockProvider) Enrich(_ context.Context, tracks []dataset.Track) ([]dataset.Track, error) {
	rng := rand.New(rand.NewSource(p.Seed))

	enriched := make([]dataset.Track, 0, len(tracks))
	for _, t := range tracks {
		clone := cloneTrack(t)
		for _, feature := range dataset.FeatureColumns {
			if feature == "tempo" {
				clone.Features[feature] = 60 + rng.Float64()*140
			} else {
				clone.Features[feature] = rng.Float64()
			}
		}
		enriched = append(enriched, clone)
	}
	return enriched, nil
}
