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
	"html"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/playlist-insights/internal/analysis"
)

type SendEmailConfig struct {
	From           string
	To             string
	DatasetName    string
	Report         analysis.Report
	DryRun         bool
	SendgridApiKey string
}

var emailCmd = &cobra.Command{
	Use:   "email <address> <csv>",
	Short: "Sends an analysis report by email",
	Long:  `Runs the full pipeline on the CSV and emails the results as HTML.`,
	Args:  cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_, report, err := runPipeline(context.Background(), args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		config := SendEmailConfig{
			From:           viper.GetString("from"),
			To:             args[0],
			DatasetName:    datasetName(args[1]),
			Report:         report,
			DryRun:         viper.GetBool("dryRun"),
			SendgridApiKey: viper.GetString("sendgrid_api_key"),
		}
		if err := sendEmail(config); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))
}

func sendEmail(config SendEmailConfig) error {
	subject := fmt.Sprintf("Playlist insights for %s", config.DatasetName)
	body := generateEmailContent(config)

	if config.DryRun {
		fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, body)
		return nil
	}

	if config.SendgridApiKey == "" {
		return fmt.Errorf("sendgrid_api_key must be set in order to send emails")
	}

	from := mail.NewEmail("playlist-insights", config.From)
	to := mail.NewEmail(config.To, config.To)
	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(config.SendgridApiKey)
	if _, err := client.Send(message); err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}
	return nil
}

func generateEmailContent(config SendEmailConfig) string {
	out := `
<html>
  <head>
<style>
td {
  padding: 0.1em 0.2em;
}
table, th, td {
  border: 1px solid black;
  border-collapse: collapse;
}
</style>
  </head>
  <body>
`
	out += fmt.Sprintf("<h2>Playlist insights for %s:</h2>\n", html.EscapeString(config.DatasetName))

	s := config.Report.Summary
	out += "<div><h3>Summary</h3><table>\n"
	out += fmt.Sprintf("<tr><td>Total tracks</td><td>%d</td></tr>\n", s.TotalTracks)
	out += fmt.Sprintf("<tr><td>Unique artists</td><td>%d</td></tr>\n", s.UniqueArtists)
	out += fmt.Sprintf("<tr><td>Unique albums</td><td>%d</td></tr>\n", s.UniqueAlbums)
	if s.MostCommonArtist != "" {
		out += fmt.Sprintf("<tr><td>Most common artist</td><td>%s</td></tr>\n", html.EscapeString(s.MostCommonArtist))
	}
	if s.DateRange != nil {
		out += fmt.Sprintf("<tr><td>Date range</td><td>%s to %s</td></tr>\n", s.DateRange.Earliest, s.DateRange.Latest)
	}
	out += "</table></div>\n"

	if len(config.Report.Obsessions) > 0 {
		out += "<div><h3>Obsessions</h3><table>\n"
		out += "<tr><th>Name</th><th>Type</th><th>Count</th><th>%</th><th>Intensity</th></tr>\n"
		for _, o := range config.Report.Obsessions {
			out += fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%d</td><td>%.1f</td><td>%s</td></tr>\n",
				html.EscapeString(o.Name), o.Type, o.Count, o.Percentage, o.Intensity)
		}
		out += "</table></div>\n"
	}

	if d := config.Report.Diversity.Artists; d != nil {
		out += "<div><h3>Diversity</h3><table>\n"
		out += fmt.Sprintf("<tr><td>Unique artists</td><td>%d</td></tr>\n", d.TotalUniqueArtists)
		out += fmt.Sprintf("<tr><td>Simpson diversity index</td><td>%.3f</td></tr>\n", d.SimpsonDiversityIndex)
		out += fmt.Sprintf("<tr><td>Top 10 artists share</td><td>%.1f%%</td></tr>\n", d.Top10Percentage)
		out += "</table></div>\n"
	}

	if len(config.Report.Emotions.Recommendations) > 0 {
		out += "<div><h3>Reflections</h3><ul>\n"
		for _, rec := range config.Report.Emotions.Recommendations {
			out += fmt.Sprintf("<li>%s</li>\n", html.EscapeString(rec))
		}
		out += "</ul></div>\n"
	}

	out += `
  </body>
</html>
`
	return out
}
