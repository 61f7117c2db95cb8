package site

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Name}} - playlist insights</title>
  <link rel="stylesheet" href="assets/style.css">
</head>
<body>
<main>
  <p><a href="index.html">&larr; Back to index</a></p>
  <h1>{{.Name}}</h1>
  <p class="meta">Source: {{.Source}} &middot; Generated {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>

  <section class="cards">
    <div class="card"><h3>Tracks</h3><p>{{.Report.Summary.TotalTracks}}</p></div>
    <div class="card"><h3>Artists</h3><p>{{.Report.Summary.UniqueArtists}}</p></div>
    <div class="card"><h3>Albums</h3><p>{{.Report.Summary.UniqueAlbums}}</p></div>
    {{if .Report.Summary.MostCommonArtist}}<div class="card"><h3>Top artist</h3><p>{{.Report.Summary.MostCommonArtist}}</p></div>{{end}}
    {{if .Report.Summary.DateRange}}<div class="card"><h3>Date range</h3><p>{{.Report.Summary.DateRange.Earliest}} to {{.Report.Summary.DateRange.Latest}} ({{.Report.Summary.DateRange.SpanDays}} days)</p></div>{{end}}
  </section>

  {{if .Report.Obsessions}}
  <section class="card">
    <h2>Obsessions</h2>
    <table>
      <thead><tr><th>Name</th><th>Type</th><th>Count</th><th>%</th><th>Intensity</th></tr></thead>
      <tbody>
      {{range .Report.Obsessions}}
        <tr><td>{{.Name}}</td><td>{{.Type}}</td><td>{{.Count}}</td><td>{{printf "%.1f" .Percentage}}</td><td>{{.Intensity}}</td></tr>
      {{end}}
      </tbody>
    </table>
  </section>
  {{end}}

  {{if .MonthlyRows}}
  <section class="card">
    <h2>Tracks added per month</h2>
    <table>
      <thead><tr><th>Month</th><th>Tracks</th></tr></thead>
      <tbody>
      {{range .MonthlyRows}}<tr><td>{{.Period}}</td><td>{{.Count}}</td></tr>{{end}}
      </tbody>
    </table>
    {{with .Report.Temporal.PeakPeriods}}
    <p>Peak month: {{.PeakMonth}} with {{.PeakCount}} tracks (average {{printf "%.1f" .AverageMonthly}}/month).</p>
    {{end}}
  </section>
  {{end}}

  {{if .DiscoveryRows}}
  <section class="card">
    <h2>New artists per year</h2>
    <table>
      <thead><tr><th>Year</th><th>New artists</th></tr></thead>
      <tbody>
      {{range .DiscoveryRows}}<tr><td>{{.Period}}</td><td>{{.Count}}</td></tr>{{end}}
      </tbody>
    </table>
  </section>
  {{end}}

  {{with .Report.Diversity.Artists}}
  <section class="card">
    <h2>Diversity</h2>
    <table>
      <tbody>
      <tr><td>Unique artists</td><td>{{.TotalUniqueArtists}}</td></tr>
      <tr><td>Simpson diversity index</td><td>{{printf "%.3f" .SimpsonDiversityIndex}}</td></tr>
      <tr><td>Most common artist share</td><td>{{printf "%.1f" .MostCommonPercentage}}%</td></tr>
      <tr><td>Top 10 artists share</td><td>{{printf "%.1f" .Top10Percentage}}%</td></tr>
      </tbody>
    </table>
  </section>
  {{end}}

  {{if .FeatureRows}}
  <section class="card">
    <h2>Audio features</h2>
    <table>
      <thead><tr><th>Feature</th><th>Mean</th><th>Std</th><th>Min</th><th>Max</th><th>Median</th><th>Zero fraction</th></tr></thead>
      <tbody>
      {{range .FeatureRows}}
        <tr><td>{{.Name}}</td><td>{{printf "%.3f" .Stats.Mean}}</td><td>{{printf "%.3f" .Stats.Std}}</td><td>{{printf "%.3f" .Stats.Min}}</td><td>{{printf "%.3f" .Stats.Max}}</td><td>{{printf "%.3f" .Stats.Median}}</td><td>{{printf "%.2f" .Stats.ZeroFraction}}</td></tr>
      {{end}}
      </tbody>
    </table>
  </section>
  {{end}}

  {{if .Report.Emotions.Recommendations}}
  <section class="card">
    <h2>Reflections</h2>
    <ul>
    {{range .Report.Emotions.Recommendations}}<li>{{.}}</li>{{end}}
    </ul>
  </section>
  {{end}}
</main>
</body>
</html>
`))

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>playlist insights</title>
  <link rel="stylesheet" href="assets/style.css">
</head>
<body>
<main>
  <h1>Playlist insights</h1>
  <p class="meta">Generated {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
  <table>
    <thead><tr><th>Dataset</th><th>Tracks</th><th>Artists</th><th>Date range</th></tr></thead>
    <tbody>
    {{range .Entries}}
      <tr>
        <td><a href="{{.Slug}}.html">{{.Name}}</a></td>
        <td>{{.Tracks}}</td>
        <td>{{.Artists}}</td>
        <td>{{.DateRange}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>
</main>
</body>
</html>
`))

const styleCSS = `body {
  font-family: system-ui, sans-serif;
  margin: 0;
  background: #f5f3ef;
  color: #222;
}
main {
  max-width: 960px;
  margin: 0 auto;
  padding: 2rem 1rem;
}
.meta {
  color: #666;
  font-size: 0.9rem;
}
.cards {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
  gap: 1rem;
  margin-bottom: 1.5rem;
}
.card {
  background: #fff;
  border-radius: 8px;
  padding: 1rem;
  box-shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
  margin-bottom: 1rem;
}
.card h3 {
  margin: 0 0 0.25rem;
  font-size: 0.85rem;
  text-transform: uppercase;
  color: #888;
}
table {
  width: 100%;
  border-collapse: collapse;
}
th, td {
  text-align: left;
  padding: 0.35rem 0.5rem;
  border-bottom: 1px solid #e0ddd6;
}
tbody tr:hover {
  background: #faf8f4;
}
`
