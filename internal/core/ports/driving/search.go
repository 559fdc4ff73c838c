package driving

import (
	"context"

	"github.com/custodia-labs/wordbook/internal/core/domain"
)

// SearchService resolves queries against the stored words.
type SearchService interface {
	// Resolve attempts a case-sensitive exact lookup first, then falls
	// back to the case-insensitive substring scan over the full word
	// snapshot. An empty fuzzy match set is a valid result, not an error.
	Resolve(ctx context.Context, query string) (domain.Resolution, error)
}
