package ports

import (
	"context"
	"encoding/json"

	"research-agent/internal/domain/entity"
)

// SearchClient performs one search request against the provider and returns
// the response body exactly as the provider produced it.
type SearchClient interface {
	Search(ctx context.Context, query entity.SearchQuery) (json.RawMessage, error)
}
