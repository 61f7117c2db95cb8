package analysis

import (
	"math"
	"sort"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// Recommendation thresholds on mean valence/energy. The valence and energy
// rules evaluate independently; both may fire.
var (
	HighMoodThreshold = 0.7
	LowMoodThreshold  = 0.3
)

const (
	highValenceMessage = "High valence detected — your taste leans upbeat, energetic, and positive."
	lowValenceMessage  = "Low valence detected — your taste tends toward introspective or melancholic moods."
	highEnergyMessage  = "High energy detected — you prefer dynamic, lively tracks."
	lowEnergyMessage   = "Low energy detected — you enjoy calm, mellow, or acoustic music."
)

// Emotions aggregates the 0-1 audio features into per-feature statistics and
// threshold-rule recommendations. Tempo is excluded: it lives on a different
// scale. Features with no observations are omitted rather than zero-filled.
// The aggregation has no randomness; identical input yields identical output.
func Emotions(tracks []dataset.Track) EmotionSummary {
	summary := EmotionSummary{AudioFeatures: map[string]FeatureStats{}}

	for _, feature := range dataset.FeatureColumns {
		if feature == "tempo" {
			continue
		}

		var values []float64
		for _, t := range tracks {
			if v, ok := t.Feature(feature); ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		summary.AudioFeatures[feature] = featureStats(values)
	}

	if stats, ok := summary.AudioFeatures["valence"]; ok {
		switch {
		case stats.Mean > HighMoodThreshold:
			summary.Recommendations = append(summary.Recommendations, highValenceMessage)
		case stats.Mean < LowMoodThreshold:
			summary.Recommendations = append(summary.Recommendations, lowValenceMessage)
		}
	}
	if stats, ok := summary.AudioFeatures["energy"]; ok {
		switch {
		case stats.Mean > HighMoodThreshold:
			summary.Recommendations = append(summary.Recommendations, highEnergyMessage)
		case stats.Mean < LowMoodThreshold:
			summary.Recommendations = append(summary.Recommendations, lowEnergyMessage)
		}
	}

	return summary
}

func featureStats(values []float64) FeatureStats {
	stats := FeatureStats{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}

	var sum float64
	var zeros int
	for _, v := range values {
		sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		if v == 0.0 {
			zeros++
		}
	}
	stats.Mean = sum / float64(len(values))
	stats.ZeroFraction = float64(zeros) / float64(len(values))

	// Population standard deviation: zero spread for a single observation.
	var sqSum float64
	for _, v := range values {
		d := v - stats.Mean
		sqSum += d * d
	}
	stats.Std = math.Sqrt(sqSum / float64(len(values)))

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		stats.Median = sorted[mid]
	} else {
		stats.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return stats
}
