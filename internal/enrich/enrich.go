package enrich

import (
	"context"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// Provider adds audio-feature columns to a dataset. Implementations must
// not mutate the input slice; they return an enriched copy. Tracks the
// provider cannot resolve keep their features unset.
type Provider interface {
	Enrich(ctx context.Context, tracks []dataset.Track) ([]dataset.Track, error)
}

// DefaultSeed is the seed used by the mock provider unless overridden, so
// that runs without API credentials stay reproducible.
const DefaultSeed = 42

func cloneTrack(t dataset.Track) dataset.Track {
	clone := t
	clone.Features = make(map[string]float64, len(t.Features)+len(dataset.FeatureColumns))
	for k, v := range t.Features {
		clone.Features[k] = v
	}
	return clone
}
