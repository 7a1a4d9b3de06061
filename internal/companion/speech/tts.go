// Package speech renders reply text to audio bytes through a Translate-TTS
// style endpoint. Persistence of the audio is the caller's concern.
package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kritika-companion/server/internal/companion/model"
	errx "github.com/kritika-companion/server/internal/core/error"
)

// maxAudioBytes bounds the response read; synthesized chat replies are small.
const maxAudioBytes = 4 << 20

// Client is the live model.SpeechSynthesizer.
type Client struct {
	endpoint string
	language string
	client   *http.Client
}

func NewClient(cfg model.SpeechConfig) *Client {
	return &Client{
		endpoint: accentEndpoint(cfg.BaseURL, cfg.TLD),
		language: cfg.Language,
		client:   &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
	}
}

// accentEndpoint swaps the endpoint's top-level domain; the TTS service
// varies the speaker accent per regional domain.
func accentEndpoint(baseURL, tld string) string {
	if tld == "" || tld == "com" {
		return baseURL
	}
	return strings.Replace(baseURL, ".com/", "."+tld+"/", 1)
}

// Synthesize returns the spoken form of text as encoded audio bytes.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	params := url.Values{
		"ie":     {"UTF-8"},
		"q":      {text},
		"tl":     {c.language},
		"client": {"tw-ob"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errx.WrapSpeech(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errx.WrapSpeech(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errx.WrapSpeech(fmt.Errorf("status %d", resp.StatusCode))
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, errx.WrapSpeech(err)
	}
	if len(audio) == 0 {
		return nil, errx.WrapSpeech(fmt.Errorf("empty audio response"))
	}
	return audio, nil
}

var _ model.SpeechSynthesizer = (*Client)(nil)
