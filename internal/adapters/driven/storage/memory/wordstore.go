// Package memory provides in-memory implementations of the driven
// storage ports, used as test fixtures and for ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/wordbook/internal/core/domain"
	"github.com/custodia-labs/wordbook/internal/core/ports/driven"
)

// Ensure WordStore implements the interface.
var _ driven.WordStore = (*WordStore)(nil)

// WordStore is an in-memory implementation of driven.WordStore.
// Insertion order is tracked explicitly so ListWords enumerates words
// in creation order, matching the SQLite adapter.
type WordStore struct {
	mu    sync.RWMutex
	words map[string]domain.Word
	order []string
}

// NewWordStore creates a new in-memory word store.
func NewWordStore() *WordStore {
	return &WordStore{
		words: make(map[string]domain.Word),
	}
}

// SaveWord stores or updates a word. Updates keep the original position
// in the enumeration order.
func (s *WordStore) SaveWord(_ context.Context, word *domain.Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.words[word.ID]; !ok {
		s.order = append(s.order, word.ID)
	}
	s.words[word.ID] = *word
	return nil
}

// GetWord retrieves a word by ID.
func (s *WordStore) GetWord(_ context.Context, id string) (*domain.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	word, ok := s.words[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &word, nil
}

// FindByName performs a case-sensitive exact lookup. With duplicate
// names the earliest-created word wins, so the scan walks creation
// order and stops at the first hit.
func (s *WordStore) FindByName(_ context.Context, name string) (*domain.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		word := s.words[id]
		if word.Name == name {
			return &word, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListWords returns all words in creation order.
func (s *WordStore) ListWords(_ context.Context) ([]domain.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]domain.Word, 0, len(s.order))
	for _, id := range s.order {
		words = append(words, s.words[id])
	}
	return words, nil
}

// DeleteWord removes a word. Absent IDs are ignored.
func (s *WordStore) DeleteWord(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.words[id]; !ok {
		return nil
	}
	delete(s.words, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
