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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/playlist-insights/internal/analysis"
)

var obsessionsCmd = &cobra.Command{
	Use:   "obsessions <csv>",
	Short: "Finds artists, tracks, and albums you keep coming back to",
	Long: `Counts each artist, track, and album independently and reports the
ones at or above the threshold, ordered by count.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tracks, err := loadTracks(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		obsessions := analysis.FindObsessions(tracks, viper.GetInt("threshold"))
		fmt.Println(obsessionsTable(obsessions))
	},
}

func init() {
	rootCmd.AddCommand(obsessionsCmd)
}
