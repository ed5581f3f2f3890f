package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"research-agent/internal/domain/entity"
	"research-agent/internal/domain/ports"
)

const (
	defaultBaseURL = "https://api.tavily.com"
	defaultTimeout = 60 * time.Second
)

var _ ports.SearchClient = (*Client)(nil)

// Client talks to the Tavily search API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
	}
}

type loggingTransport struct {
	base   http.RoundTripper
	logger *zap.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		t.logger.Error("search request failed", append(fields, zap.Error(err))...)
		return resp, err
	}
	t.logger.Info("search request", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	transport := http.DefaultTransport
	if cfg.Logger != nil {
		transport = &loggingTransport{base: http.DefaultTransport, logger: cfg.Logger}
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

type searchRequest struct {
	APIKey            string `json:"api_key"`
	Query             string `json:"query"`
	MaxResults        int    `json:"max_results"`
	Topic             string `json:"topic"`
	IncludeRawContent bool   `json:"include_raw_content"`
}

// Search posts one query and returns the response body exactly as the
// provider produced it. No field of the response is interpreted here.
func (c *Client) Search(ctx context.Context, query entity.SearchQuery) (json.RawMessage, error) {
	payload, err := json.Marshal(searchRequest{
		APIKey:            c.apiKey,
		Query:             query.Query,
		MaxResults:        query.MaxResults,
		Topic:             query.Topic.String(),
		IncludeRawContent: query.IncludeRawContent,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return body, nil
}
