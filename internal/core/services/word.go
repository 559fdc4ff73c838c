package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/wordbook/internal/core/domain"
	"github.com/custodia-labs/wordbook/internal/core/ports/driven"
	"github.com/custodia-labs/wordbook/internal/core/ports/driving"
	"github.com/custodia-labs/wordbook/internal/logger"
)

// Ensure WordService implements the interface.
var _ driving.WordService = (*WordService)(nil)

// WordService manages word creation, lookup and deletion.
// Duplicate names are permitted; every Create mints a fresh identity.
type WordService struct {
	words driven.WordStore
}

// NewWordService creates a new word service.
func NewWordService(words driven.WordStore) *WordService {
	return &WordService{words: words}
}

// Create stores a new word. The name must contain at least one
// non-whitespace character; the stored name keeps its original form.
func (s *WordService) Create(ctx context.Context, name string) (*domain.Word, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("word name must not be blank: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	word := &domain.Word{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.words.SaveWord(ctx, word); err != nil {
		return nil, fmt.Errorf("save word: %w", err)
	}

	logger.Debug("Created word %s (%s)", word.Name, word.ID)
	return word, nil
}

// Get retrieves a word by ID.
func (s *WordService) Get(ctx context.Context, id string) (*domain.Word, error) {
	word, err := s.words.GetWord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get word %s: %w", id, err)
	}
	return word, nil
}

// List returns all words in creation order.
func (s *WordService) List(ctx context.Context) ([]domain.Word, error) {
	words, err := s.words.ListWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// Delete removes a word by ID.
func (s *WordService) Delete(ctx context.Context, id string) error {
	if err := s.words.DeleteWord(ctx, id); err != nil {
		return fmt.Errorf("delete word %s: %w", id, err)
	}
	logger.Debug("Deleted word %s", id)
	return nil
}
