package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/wordbook/internal/core/domain"
	"github.com/custodia-labs/wordbook/internal/core/ports/driven"
	"github.com/custodia-labs/wordbook/internal/core/ports/driving"
	"github.com/custodia-labs/wordbook/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService resolves queries against the word store.
//
// Resolution is exact-match-first: a case-sensitive lookup with the raw
// query takes precedence over any fuzzy outcome. Only on a miss does the
// resolver lower-case the query and scan the full snapshot for substring
// containment.
//
// Note the deliberate asymmetry: the exact lookup is case-sensitive while
// the fuzzy scan is case-insensitive. A user typing a differently-cased
// stored word falls through to the fuzzy path (and typically comes back
// as a singleton there). This mirrors the observed behaviour of the
// system and is kept as-is rather than "fixed".
type SearchService struct {
	words driven.WordStore
}

// NewSearchService creates a new search service.
func NewSearchService(words driven.WordStore) *SearchService {
	return &SearchService{words: words}
}

// Resolve resolves a query to either an exact match or an ordered fuzzy
// match set. The query is used verbatim for the exact lookup and is not
// trimmed or otherwise sanitised; an empty query has no exact match and
// fuzzy-matches every stored word, because the empty string is a
// substring of every string. That is a faithful consequence of the
// containment rule, not a case to suppress.
func (s *SearchService) Resolve(ctx context.Context, query string) (domain.Resolution, error) {
	logger.Section("Search Resolution")
	logger.Debug("Query: %q", query)

	exact, err := s.words.FindByName(ctx, query)
	switch {
	case err == nil:
		logger.Info("Exact match: %s (%s)", exact.Name, exact.ID)
		return domain.Resolution{Kind: domain.MatchExact, Exact: exact}, nil
	case !errors.Is(err, domain.ErrNotFound):
		logger.Warn("Exact lookup failed: %v", err)
		return domain.Resolution{}, fmt.Errorf("exact lookup: %w", err)
	}

	// One snapshot per resolution. Words inserted after this read are
	// not considered; see the concurrency notes on ListWords.
	all, err := s.words.ListWords(ctx)
	if err != nil {
		logger.Warn("Snapshot read failed: %v", err)
		return domain.Resolution{}, fmt.Errorf("list words: %w", err)
	}

	matches := filterByContainment(all, normalise(query))
	logger.Info("Fuzzy matches: %d of %d words", len(matches), len(all))

	return domain.Resolution{Kind: domain.MatchFuzzy, Matches: matches}, nil
}

// normalise lower-cases a query or word name for the fuzzy comparison.
// Kept as its own function so tests can pin it down independently of the
// containment scan: silently skipping normalisation is the easiest bug
// to reintroduce here.
func normalise(s string) string {
	return strings.ToLower(s)
}

// filterByContainment returns every word whose normalised name contains
// needle, preserving the input order. The needle must already be
// normalised. An empty needle matches every word.
func filterByContainment(words []domain.Word, needle string) []domain.Word {
	matches := make([]domain.Word, 0, len(words))
	for _, w := range words {
		if strings.Contains(normalise(w.Name), needle) {
			matches = append(matches, w)
		}
	}
	return matches
}
