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
	youtubeSearchEndpoint = "https://www.googleapis.com/youtube/v3/search"
	youtubeWatchURL       = "https://www.youtube.com/watch?v="
	youtubeMaxResults     = "5"
)

// YouTubeClient is the video-kind model.MediaProvider over the YouTube Data
// API. Request failures are retried up to the configured attempt bound,
// then absorbed into an empty result.
type YouTubeClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
	attempts int
	minScore int
}

func NewYouTubeClient(cfg model.MediaConfig, opts ...Option) *YouTubeClient {
	o := applyOpts(youtubeSearchEndpoint, &http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	}, opts)

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &YouTubeClient{
		apiKey:   cfg.YouTubeAPIKey,
		endpoint: o.endpoint,
		client:   o.client,
		attempts: attempts,
		minScore: cfg.VideoMinScore,
	}
}

func (c *YouTubeClient) Kind() model.MediaKind {
	return model.MediaVideo
}

func (c *YouTubeClient) MinScore() int {
	return c.minScore
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search queries embeddable, safe-searched videos and returns the raw
// candidate list. An empty slice means no media available.
func (c *YouTubeClient) Search(ctx context.Context, query string) []model.MediaCandidate {
	params := url.Values{
		"part":              {"snippet"},
		"q":                 {query},
		"type":              {"video"},
		"maxResults":        {youtubeMaxResults},
		"relevanceLanguage": {"en"},
		"safeSearch":        {"moderate"},
		"videoEmbeddable":   {"true"},
		"key":               {c.apiKey},
	}
	endpoint := c.endpoint + "?" + params.Encode()

	for attempt := 1; attempt <= c.attempts; attempt++ {
		data, err := c.fetch(ctx, endpoint)
		if err != nil {
			logx.Warn().Err(errx.WrapProvider("youtube", err)).
				Int("attempt", attempt).
				Msg("video search attempt failed")
			continue
		}

		candidates := make([]model.MediaCandidate, 0, len(data.Items))
		for _, item := range data.Items {
			if item.ID.VideoID == "" {
				continue
			}
			candidates = append(candidates, model.MediaCandidate{
				Kind:        model.MediaVideo,
				URL:         youtubeWatchURL + item.ID.VideoID,
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
			})
		}
		return candidates
	}
	return nil
}

func (c *YouTubeClient) fetch(ctx context.Context, endpoint string) (*youtubeSearchResponse, error) {
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

	var data youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &data, nil
}

var _ model.MediaProvider = (*YouTubeClient)(nil)
