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
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/playlist-insights/internal/store"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Lists datasets cached in the SQLite database",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDatasets(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}

func runDatasets() error {
	db, err := store.New(viper.GetString("database"))
	if err != nil {
		return fmt.Errorf("opening dataset cache: %w", err)
	}
	defer db.Close()

	infos, err := db.ListDatasets()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No cached datasets - run analyze --save first.")
		return nil
	}

	results := [][]string{{"Name", "Source", "Tracks", "Imported"}}
	for _, info := range infos {
		results = append(results, []string{
			info.Name,
			info.Source,
			strconv.Itoa(info.Tracks),
			info.ImportedAt.Format("2006-01-02 15:04"),
		})
	}
	fmt.Println(Table{results: results})
	return nil
}
