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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/playlist-insights/internal/store"
)

var analyzeSave bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <csv>",
	Short: "Runs the full analysis pipeline on a playlist export",
	Long: `Loads and cleans the CSV, adds audio features using the configured
enrichment provider, and prints the summary, obsessions, temporal patterns,
and emotion summary.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAnalyze(os.Stdout, args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Cache the processed dataset in the SQLite database")
}

func runAnalyze(out io.Writer, csvPath string) error {
	ctx := context.Background()
	tracks, report, err := runPipeline(ctx, csvPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "## Summary\n%s\n", summaryTable(report.Summary))
	fmt.Fprintf(out, "## Obsessions (threshold %d)\n%s\n", viper.GetInt("threshold"), obsessionsTable(report.Obsessions))
	fmt.Fprintf(out, "## Temporal patterns\n%s\n", temporalTable(report.Temporal))
	fmt.Fprintf(out, "## Artist evolution\n%s\n", evolutionTable(report.Evolution))
	fmt.Fprintf(out, "## Diversity\n%s\n", diversityTable(report.Diversity))
	fmt.Fprintf(out, "## Emotion summary\n%s\n", emotionsTable(report.Emotions))

	if analyzeSave {
		db, err := store.New(viper.GetString("database"))
		if err != nil {
			return fmt.Errorf("opening dataset cache: %w", err)
		}
		defer db.Close()

		name := datasetName(csvPath)
		if err := db.SaveDataset(name, csvPath, tracks); err != nil {
			return fmt.Errorf("caching dataset: %w", err)
		}
		fmt.Fprintf(out, "Cached dataset %q (%d tracks).\n", name, len(tracks))
	}

	return nil
}

func datasetName(csvPath string) string {
	base := filepath.Base(csvPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
