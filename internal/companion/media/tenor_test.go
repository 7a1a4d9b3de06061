package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kritika-companion/server/internal/companion/model"
)

func TestTenorSearchPrefersAnimatedFormats(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "cat", q.Get("q"))
		require.Equal(t, "3", q.Get("limit"))
		require.Equal(t, "tenor-key", q.Get("key"))

		_, _ = w.Write([]byte(`{
  "results": [
    {
      "content_description": "a cat gif",
      "media_formats": {
        "mp4": {"url": "https://cdn.example/cat.mp4"},
        "gif": {"url": "https://cdn.example/cat.gif"}
      }
    }
  ]
}`))
	}))
	defer server.Close()

	client := NewTenorClient(mediaConfig(), WithEndpoint(server.URL))
	candidates := client.Search(context.Background(), "cat")

	req.Len(candidates, 1)
	req.Equal("https://cdn.example/cat.gif", candidates[0].URL, "gif preferred over mp4")
	req.Equal("a cat gif", candidates[0].Title)
	req.Equal(model.MediaImage, candidates[0].Kind)
}

func TestTenorSearchSkipsResultsWithoutUsableFormat(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
  "results": [
    {"content_description": "no formats", "media_formats": {}},
    {"content_description": "webm only", "media_formats": {"webm": {"url": "https://cdn.example/skip.webm"}}},
    {"content_description": "static fallback", "media_formats": {"mp4": {"url": "https://cdn.example/ok.mp4"}}}
  ]
}`))
	}))
	defer server.Close()

	client := NewTenorClient(mediaConfig(), WithEndpoint(server.URL))
	candidates := client.Search(context.Background(), "cat")

	req.Len(candidates, 1)
	req.Equal("https://cdn.example/ok.mp4", candidates[0].URL)
}

func TestTenorSearchEmptyResults(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewTenorClient(mediaConfig(), WithEndpoint(server.URL))
	req.Nil(client.Search(context.Background(), "cat"))
}

func TestTenorSearchAbsorbsFailures(t *testing.T) {
	req := require.New(t)

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewTenorClient(mediaConfig(), WithEndpoint(server.URL))
	req.Nil(client.Search(context.Background(), "cat"))
	req.Equal(2, hits)
}
