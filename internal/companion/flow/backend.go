package flow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kritika-companion/server/internal/companion/model"
	errx "github.com/kritika-companion/server/internal/core/error"
)

const maxErrorBodySnippet = 200

// BackendClient is the live model.FlowBackend over the flow execution HTTP API.
type BackendClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewBackendClient(cfg model.FlowConfig) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
	}
}

type executeResponse struct {
	Response string `json:"response"`
}

// Execute submits the payload to the versioned flow and returns the backend's
// response text.
func (c *BackendClient) Execute(ctx context.Context, flowID string, payload map[string]any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errx.WrapFlowBackend(fmt.Errorf("marshal payload: %w", err))
	}

	endpoint := fmt.Sprintf("%s/v1/flows/%s/execute", c.baseURL, url.PathEscape(flowID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errx.WrapFlowBackend(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errx.WrapFlowBackend(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySnippet))
		return "", errx.WrapFlowBackend(fmt.Errorf("status %d: %s", resp.StatusCode, snippet))
	}

	var out executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errx.WrapFlowBackend(fmt.Errorf("decode response: %w", err))
	}
	return out.Response, nil
}

var _ model.FlowBackend = (*BackendClient)(nil)
