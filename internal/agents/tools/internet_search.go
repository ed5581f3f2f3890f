package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	lctools "github.com/tmc/langchaingo/tools"
	"go.uber.org/zap"

	"research-agent/internal/domain/entity"
	"research-agent/internal/domain/ports"
)

var _ lctools.Tool = (*InternetSearch)(nil)

// InternetSearch exposes the search provider to the agent. The provider
// response is handed back verbatim as the observation; ranking and
// summarization are the model's job.
type InternetSearch struct {
	client ports.SearchClient
	logger *zap.Logger
}

func NewInternetSearch(client ports.SearchClient, logger *zap.Logger) *InternetSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InternetSearch{client: client, logger: logger}
}

func (t *InternetSearch) Name() string {
	return "internet_search"
}

func (t *InternetSearch) Description() string {
	return `Run an internet search for a given query. ` +
		`Input is a JSON object: {"query": string (required), ` +
		`"max_results": number (default 5), ` +
		`"topic": "general" | "news" | "finance" (default "general"), ` +
		`"include_raw_content": boolean (default false)}. ` +
		`A plain text input is treated as the query.`
}

type searchArgs struct {
	Query             string `json:"query"`
	MaxResults        int    `json:"max_results"`
	Topic             string `json:"topic"`
	IncludeRawContent bool   `json:"include_raw_content"`
}

func (t *InternetSearch) Call(ctx context.Context, input string) (string, error) {
	query, err := parseInput(input)
	if err != nil {
		return "", err
	}

	start := time.Now()
	raw, err := t.client.Search(ctx, query)
	if err != nil {
		t.logger.Error("search failed", zap.String("query", query.Query), zap.Error(err))
		return "", err
	}

	t.logger.Info("search completed",
		zap.String("query", query.Query),
		zap.Int("maxResults", query.MaxResults),
		zap.String("topic", query.Topic.String()),
		zap.Duration("duration", time.Since(start)),
	)

	return string(raw), nil
}

// parseInput accepts either the JSON argument object or a bare query string.
func parseInput(input string) (entity.SearchQuery, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return entity.SearchQuery{}, fmt.Errorf("query parameter is required")
	}

	if strings.HasPrefix(trimmed, "{") {
		var args searchArgs
		if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
			return entity.SearchQuery{}, fmt.Errorf("invalid input format: %w", err)
		}
		if args.Query == "" {
			return entity.SearchQuery{}, fmt.Errorf("query parameter is required")
		}
		return entity.SearchQuery{
			Query:             args.Query,
			MaxResults:        args.MaxResults,
			Topic:             entity.SearchTopic(args.Topic),
			IncludeRawContent: args.IncludeRawContent,
		}.WithDefaults(), nil
	}

	return entity.SearchQuery{Query: strings.Trim(trimmed, `"`)}.WithDefaults(), nil
}
