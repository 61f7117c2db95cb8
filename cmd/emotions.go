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
	"os"

	"github.com/spf13/cobra"

	"github.com/ademuri/playlist-insights/internal/analysis"
)

var emotionsCmd = &cobra.Command{
	Use:   "emotions <csv>",
	Short: "Summarizes audio features into an emotion profile",
	Long: `Adds audio features using the configured enrichment provider and
prints per-feature statistics plus threshold-rule reflections.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tracks, err := loadTracks(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		tracks = enrichTracks(context.Background(), tracks)
		fmt.Println(emotionsTable(analysis.Emotions(tracks)))
	},
}

func init() {
	rootCmd.AddCommand(emotionsCmd)
}
