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
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/playlist-insights/internal/analysis"
	"github.com/ademuri/playlist-insights/internal/store"
)

var reportCached bool

var reportCmd = &cobra.Command{
	Use:   "report <csv>",
	Short: "Generates a full YAML analysis report",
	Long: `Runs the full pipeline and writes the summary, obsessions, temporal
patterns, and emotion summary as YAML to stdout. With --cached, the argument
is the name of a dataset previously saved with analyze --save.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().BoolVar(&reportCached, "cached", false, "Treat the argument as a cached dataset name instead of a CSV path")
}

func runReport(source string) error {
	var report analysis.Report
	if reportCached {
		db, err := store.New(viper.GetString("database"))
		if err != nil {
			return fmt.Errorf("opening dataset cache: %w", err)
		}
		defer db.Close()

		tracks, err := db.LoadDataset(source)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("no cached dataset named %q - run analyze --save first", source)
		}
		if err != nil {
			return err
		}
		report = buildReport(tracks)
	} else {
		var err error
		_, report, err = runPipeline(context.Background(), source)
		if err != nil {
			return err
		}
	}

	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
