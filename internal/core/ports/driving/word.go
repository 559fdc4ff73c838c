package driving

import (
	"context"

	"github.com/custodia-labs/wordbook/internal/core/domain"
)

// WordService manages the word lifecycle.
type WordService interface {
	// Create stores a new word with the given name.
	// Returns domain.ErrInvalidInput for empty or blank-only names.
	Create(ctx context.Context, name string) (*domain.Word, error)

	// Get retrieves a word by ID.
	// Returns domain.ErrNotFound if no such word exists.
	Get(ctx context.Context, id string) (*domain.Word, error)

	// List returns all words in creation order.
	List(ctx context.Context) ([]domain.Word, error)

	// Delete removes a word by ID.
	Delete(ctx context.Context, id string) error
}
