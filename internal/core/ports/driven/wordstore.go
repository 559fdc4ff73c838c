package driven

import (
	"context"

	"github.com/custodia-labs/wordbook/internal/core/domain"
)

// WordStore persists words.
// Backed by SQLite for durable storage; an in-memory implementation
// exists for tests and ephemeral runs.
type WordStore interface {
	// SaveWord stores or updates a word.
	SaveWord(ctx context.Context, word *domain.Word) error

	// GetWord retrieves a word by ID.
	// Returns domain.ErrNotFound if no such word exists.
	GetWord(ctx context.Context, id string) (*domain.Word, error)

	// FindByName performs a case-sensitive exact lookup by name.
	// When duplicate names exist, the earliest-created word is returned.
	// Returns domain.ErrNotFound if no word has that exact name.
	FindByName(ctx context.Context, name string) (*domain.Word, error)

	// ListWords returns a full snapshot of all words in creation order.
	// The order is stable within one snapshot read.
	ListWords(ctx context.Context) ([]domain.Word, error)

	// DeleteWord removes a word. Deleting an absent ID is not an error.
	DeleteWord(ctx context.Context, id string) error
}
