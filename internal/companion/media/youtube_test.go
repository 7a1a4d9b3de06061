package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kritika-companion/server/internal/companion/model"
)

const youtubeFixture = `{
  "items": [
    {"id": {"videoId": "abc123"}, "snippet": {"title": "Funny Cat Video", "description": "cats being cats"}},
    {"id": {"videoId": "def456"}, "snippet": {"title": "Random Clip", "description": ""}},
    {"id": {}, "snippet": {"title": "Broken item without id", "description": ""}}
  ]
}`

func mediaConfig() model.MediaConfig {
	return model.MediaConfig{
		YouTubeAPIKey: "yt-key",
		TenorAPIKey:   "tenor-key",
		Timeout:       5,
		MaxAttempts:   2,
		VideoMinScore: 1,
	}
}

func TestYouTubeSearch(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "show me a cat video", q.Get("q"))
		require.Equal(t, "snippet", q.Get("part"))
		require.Equal(t, "video", q.Get("type"))
		require.Equal(t, "5", q.Get("maxResults"))
		require.Equal(t, "en", q.Get("relevanceLanguage"))
		require.Equal(t, "moderate", q.Get("safeSearch"))
		require.Equal(t, "true", q.Get("videoEmbeddable"))
		require.Equal(t, "yt-key", q.Get("key"))

		_, _ = w.Write([]byte(youtubeFixture))
	}))
	defer server.Close()

	client := NewYouTubeClient(mediaConfig(), WithEndpoint(server.URL))
	candidates := client.Search(context.Background(), "show me a cat video")

	req.Len(candidates, 2, "items without a video id are dropped")
	req.Equal("https://www.youtube.com/watch?v=abc123", candidates[0].URL)
	req.Equal("Funny Cat Video", candidates[0].Title)
	req.Equal(model.MediaVideo, candidates[0].Kind)
}

func TestYouTubeSearchRetriesOnce(t *testing.T) {
	req := require.New(t)

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(youtubeFixture))
	}))
	defer server.Close()

	client := NewYouTubeClient(mediaConfig(), WithEndpoint(server.URL))
	candidates := client.Search(context.Background(), "cat")

	req.Equal(2, hits)
	req.Len(candidates, 2)
}

func TestYouTubeSearchGivesUpAfterBoundedAttempts(t *testing.T) {
	req := require.New(t)

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewYouTubeClient(mediaConfig(), WithEndpoint(server.URL))
	candidates := client.Search(context.Background(), "cat")

	req.Nil(candidates, "exhausted retries absorb into no result")
	req.Equal(2, hits)
}
