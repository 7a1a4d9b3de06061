package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kritika-companion/server/internal/companion/model"
	errx "github.com/kritika-companion/server/internal/core/error"
	logx "github.com/kritika-companion/server/pkg/logger"
)

const (
	tenorSearchEndpoint = "https://tenor.googleapis.com/v2/search"
	tenorResultLimit    = "3"
)

// tenorFormatPreference is tried in order per result: animated formats
// before static fallbacks.
var tenorFormatPreference = []string{"gif", "mediumgif", "tinygif", "mp4", "loopedmp4"}

// TenorClient is the image/GIF-kind model.MediaProvider over the Tenor v2
// search API. Same bounded-retry policy as the video provider.
type TenorClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
	attempts int
	minScore int
}

func NewTenorClient(cfg model.MediaConfig, opts ...Option) *TenorClient {
	o := applyOpts(tenorSearchEndpoint, &http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	}, opts)

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &TenorClient{
		apiKey:   cfg.TenorAPIKey,
		endpoint: o.endpoint,
		client:   o.client,
		attempts: attempts,
		minScore: cfg.ImageMinScore,
	}
}

func (c *TenorClient) Kind() model.MediaKind {
	return model.MediaImage
}

func (c *TenorClient) MinScore() int {
	return c.minScore
}

type tenorSearchResponse struct {
	Results []struct {
		ContentDescription string `json:"content_description"`
		MediaFormats       map[string]struct {
			URL string `json:"url"`
		} `json:"media_formats"`
	} `json:"results"`
}

// Search returns at most one candidate: the first result carrying a URL in
// any of the preferred formats. Tenor already ranks by relevance, so the
// top usable hit stands.
func (c *TenorClient) Search(ctx context.Context, query string) []model.MediaCandidate {
	params := url.Values{
		"q":     {query},
		"limit": {tenorResultLimit},
		"key":   {c.apiKey},
	}
	endpoint := c.endpoint + "?" + params.Encode()

	for attempt := 1; attempt <= c.attempts; attempt++ {
		data, err := c.fetch(ctx, endpoint)
		if err != nil {
			logx.Warn().Err(errx.WrapProvider("tenor", err)).
				Int("attempt", attempt).
				Msg("image search attempt failed")
			continue
		}

		for _, result := range data.Results {
			for _, format := range tenorFormatPreference {
				if media, ok := result.MediaFormats[format]; ok && media.URL != "" {
					return []model.MediaCandidate{{
						Kind:  model.MediaImage,
						URL:   media.URL,
						Title: result.ContentDescription,
					}}
				}
			}
		}
		return nil
	}
	return nil
}

func (c *TenorClient) fetch(ctx context.Context, endpoint string) (*tenorSearchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var data tenorSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &data, nil
}

var _ model.MediaProvider = (*TenorClient)(nil)
