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
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ademuri/playlist-insights/internal/logger"
	"github.com/ademuri/playlist-insights/internal/site"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <csv-dir>",
	Short: "Exports a static HTML site for every CSV in a directory",
	Long: `Runs the full pipeline for each CSV in the directory and writes a
static site: one page per dataset plus an index.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(args[0], exportOut); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "./docs", "Output directory for the static site")
}

func runExport(csvDir, outDir string) error {
	matches, err := filepath.Glob(filepath.Join(csvDir, "*.csv"))
	if err != nil {
		return fmt.Errorf("listing CSV files: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no CSV files found in %s", csvDir)
	}

	ctx := context.Background()
	var pages []site.Page
	for _, csvPath := range matches {
		_, report, err := runPipeline(ctx, csvPath)
		if err != nil {
			// One bad file should not sink the whole export.
			logger.L().Warnw("skipping dataset", "path", csvPath, "error", err)
			continue
		}
		pages = append(pages, site.Page{
			Name:        datasetName(csvPath),
			Source:      filepath.Base(csvPath),
			Report:      report,
			GeneratedAt: time.Now(),
		})
	}
	if len(pages) == 0 {
		return fmt.Errorf("no datasets could be processed from %s", csvDir)
	}

	if err := site.Export(pages, outDir); err != nil {
		return err
	}
	fmt.Printf("Exported %d dataset page(s) to %s\n", len(pages), outDir)
	return nil
}
