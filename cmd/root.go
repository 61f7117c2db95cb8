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

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ademuri/playlist-insights/internal/enrich"
	"github.com/ademuri/playlist-insights/internal/logger"
)

var cfgFile string
var databasePath string
var logLevel string
var threshold int
var enrichMode string
var enrichSeed int64
var spotifyID string
var spotifySecret string
var sendgridApiKey string
var fromAddress string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playlist-insights",
	Short: "Performs analysis on Spotify playlist exports",
	Long: `Ingests an Exportify-style CSV, cleans it, and computes listening
statistics: top artists, repeat obsessions, temporal trends, and an audio
feature based emotion summary.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.playlist-insights.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&databasePath, "database", "d", "./insights.db", "Path to the SQLite dataset cache")
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.PersistentFlags().StringVar(&logLevel, "log_level", "info", "Log level (debug, info, warn, error)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))

	rootCmd.PersistentFlags().IntVarP(
		&threshold, "threshold", "t", 5, "Minimum occurrence count for an obsession")
	viper.BindPFlag("threshold", rootCmd.PersistentFlags().Lookup("threshold"))

	rootCmd.PersistentFlags().StringVar(
		&enrichMode, "enrich", "mock", "Audio feature source: off, mock, or spotify")
	viper.BindPFlag("enrich", rootCmd.PersistentFlags().Lookup("enrich"))

	rootCmd.PersistentFlags().Int64Var(
		&enrichSeed, "seed", enrich.DefaultSeed, "Seed for the mock audio feature generator")
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))

	rootCmd.PersistentFlags().StringVar(&spotifyID, "spotify_id", "", "Spotify client ID")
	viper.BindPFlag("spotify_id", rootCmd.PersistentFlags().Lookup("spotify_id"))
	viper.BindEnv("spotify_id", "SPOTIFY_CLIENT_ID")

	rootCmd.PersistentFlags().StringVar(&spotifySecret, "spotify_secret", "", "Spotify client secret")
	viper.BindPFlag("spotify_secret", rootCmd.PersistentFlags().Lookup("spotify_secret"))
	viper.BindEnv("spotify_secret", "SPOTIFY_CLIENT_SECRET")

	rootCmd.PersistentFlags().StringVar(&sendgridApiKey, "sendgrid_api_key", "", "SendGrid API key")
	viper.BindPFlag("sendgrid_api_key", rootCmd.PersistentFlags().Lookup("sendgrid_api_key"))
	viper.BindEnv("sendgrid_api_key", "SENDGRID_API_KEY")

	rootCmd.PersistentFlags().StringVar(&fromAddress, "from", "", "From email address")
	viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Credentials may live in a .env file next to the binary. Missing
	// .env is fine.
	godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".playlist-insights" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".playlist-insights")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})

	logger.Init(viper.GetString("log_level"))
}
