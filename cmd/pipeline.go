/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"

	"github.com/spf13/viper"

	"github.com/ademuri/playlist-insights/internal/analysis"
	"github.com/ademuri/playlist-insights/internal/dataset"
	"github.com/ademuri/playlist-insights/internal/enrich"
	"github.com/ademuri/playlist-insights/internal/logger"
)

// loadTracks loads and normalizes a CSV, logging what cleaning removed.
func loadTracks(csvPath string) ([]dataset.Track, error) {
	tracks, report, err := dataset.FromFile(csvPath)
	if err != nil {
		return nil, err
	}

	logger.L().Infow("cleaned dataset",
		"path", csvPath,
		"raw_rows", report.RawRows,
		"kept", report.Kept(),
		"duplicates", report.Duplicates,
		"missing_fields", report.MissingFields,
		"invalid_dates", report.InvalidDates,
		"invalid_numbers", report.InvalidNumbers,
	)
	return tracks, nil
}

// enrichTracks adds audio features using the configured provider. Provider
// failures are logged and swallowed: the run continues with whatever
// features the input already had.
func enrichTracks(ctx context.Context, tracks []dataset.Track) []dataset.Track {
	switch viper.GetString("enrich") {
	case "off":
		return tracks

	case "spotify":
		provider, err := enrich.NewSpotifyProvider(ctx,
			viper.GetString("spotify_id"), viper.GetString("spotify_secret"))
		if err != nil {
			logger.L().Warnw("spotify enrichment unavailable, continuing without audio features", "error", err)
			return tracks
		}
		provider.ShowProgress = true
		enriched, err := provider.Enrich(ctx, tracks)
		if err != nil {
			logger.L().Warnw("spotify enrichment failed, continuing without audio features", "error", err)
			return tracks
		}
		return enriched

	default:
		enriched, err := enrich.NewMockProvider(viper.GetInt64("seed")).Enrich(ctx, tracks)
		if err != nil {
			logger.L().Warnw("mock enrichment failed", "error", err)
			return tracks
		}
		return enriched
	}
}

// runPipeline is the full load, clean, enrich, analyze flow shared by the
// analyze, report, export, and email commands.
func runPipeline(ctx context.Context, csvPath string) ([]dataset.Track, analysis.Report, error) {
	tracks, err := loadTracks(csvPath)
	if err != nil {
		return nil, analysis.Report{}, err
	}
	tracks = enrichTracks(ctx, tracks)
	return tracks, buildReport(tracks), nil
}

func buildReport(tracks []dataset.Track) analysis.Report {
	return analysis.Report{
		Summary:    analysis.Summary(tracks),
		Obsessions: analysis.FindObsessions(tracks, viper.GetInt("threshold")),
		Temporal:   analysis.Temporal(tracks),
		Evolution:  analysis.Evolution(tracks),
		Diversity:  analysis.Diversity(tracks),
		Emotions:   analysis.Emotions(tracks),
	}
}
