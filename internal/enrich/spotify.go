package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/schollz/progressbar/v3"
	spotify "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// Spotify's audio-features endpoint accepts at most 100 IDs; Exportify
// exports were built against the older limit of 50, so we stay there.
const spotifyBatchSize = 50

// Track URI columns as emitted by the known export tools.
var trackURIAliases = []string{"Track URI", "track_uri", "uri"}

// SpotifyProvider fetches audio features from the Spotify Web API using the
// client-credentials flow. Calls are rate limited and retried.
type SpotifyProvider struct {
	client  *spotify.Client
	limiter *rate.Limiter

	// ShowProgress renders a progress bar while fetching batches.
	ShowProgress bool
}

// NewSpotifyProvider authenticates with the given client credentials.
func NewSpotifyProvider(ctx context.Context, clientID, clientSecret string) (*SpotifyProvider, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("spotify_id and spotify_secret must be set to use the spotify provider")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticating with Spotify: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &SpotifyProvider{
		client:  spotify.New(httpClient),
		limiter: rate.NewLimiter(rate.Every(1*time.Second), 1),
	}, nil
}

// Enrich looks up audio features for every track with a resolvable Spotify
// track URI. Tracks without a URI, and batches that fail after retries, are
// left with their features unset.
func (p *SpotifyProvider) Enrich(ctx context.Context, tracks []dataset.Track) ([]dataset.Track, error) {
	enriched := make([]dataset.Track, 0, len(tracks))
	ids := make([]spotify.ID, 0, len(tracks))
	for _, t := range tracks {
		enriched = append(enriched, cloneTrack(t))
		ids = append(ids, trackID(t))
	}

	batches := (len(ids) + spotifyBatchSize - 1) / spotifyBatchSize
	var bar *progressbar.ProgressBar
	if p.ShowProgress {
		bar = progressbar.Default(int64(batches), "fetching audio features")
	}

	for start := 0; start < len(ids); start += spotifyBatchSize {
		end := start + spotifyBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		batch := make([]spotify.ID, 0, end-start)
		indexes := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			if ids[i] != "" {
				batch = append(batch, ids[i])
				indexes = append(indexes, i)
			}
		}
		if bar != nil {
			bar.Add(1)
		}
		if len(batch) == 0 {
			continue
		}

		var features []*spotify.AudioFeatures
		err := retry.Do(
			func() error {
				if err := p.limiter.Wait(ctx); err != nil {
					return err
				}
				var err error
				features, err = p.client.GetAudioFeatures(ctx, batch...)
				return err
			},
			retry.Attempts(3),
			retry.Context(ctx),
		)
		if err != nil {
			return enriched, fmt.Errorf("fetching audio features for batch starting at %d: %w", start, err)
		}

		for j, f := range features {
			if f == nil {
				continue
			}
			applyFeatures(&enriched[indexes[j]], f)
		}
	}

	return enriched, nil
}

func applyFeatures(t *dataset.Track, f *spotify.AudioFeatures) {
	t.Features["valence"] = float64(f.Valence)
	t.Features["energy"] = float64(f.Energy)
	t.Features["danceability"] = float64(f.Danceability)
	t.Features["acousticness"] = float64(f.Acousticness)
	t.Features["instrumentalness"] = float64(f.Instrumentalness)
	t.Features["liveness"] = float64(f.Liveness)
	t.Features["speechiness"] = float64(f.Speechiness)
	t.Features["tempo"] = float64(f.Tempo)
}

// trackID extracts the bare Spotify track ID from a pass-through URI
// column, or "" when none is present.
func trackID(t dataset.Track) spotify.ID {
	for _, alias := range trackURIAliases {
		uri, ok := t.Extra[alias]
		if !ok || uri == "" {
			continue
		}
		if strings.HasPrefix(uri, "spotify:track:") {
			return spotify.ID(strings.TrimPrefix(uri, "spotify:track:"))
		}
	}
	return ""
}
