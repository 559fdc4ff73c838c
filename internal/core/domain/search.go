package domain

// MatchKind discriminates the two resolution outcomes.
type MatchKind int

const (
	// MatchExact means a stored word's name equals the raw query
	// character for character, including case.
	MatchExact MatchKind = iota

	// MatchFuzzy means the query was resolved by the case-insensitive
	// substring scan. The match set may be empty.
	MatchFuzzy
)

// String returns a human-readable name for the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving a search query against the
// word store. Exactly one of the two shapes applies:
//
//   - MatchExact: Exact holds the matched word, Matches is nil.
//   - MatchFuzzy: Matches holds every word whose lower-cased name
//     contains the lower-cased query, in store enumeration order.
//
// An empty Matches slice is a valid result, not an error.
type Resolution struct {
	// Kind discriminates exact from fuzzy outcomes.
	Kind MatchKind

	// Exact is the word matched by the case-sensitive exact lookup.
	// Only set when Kind is MatchExact.
	Exact *Word

	// Matches are the fuzzy hits in store order.
	// Only set when Kind is MatchFuzzy; may be empty.
	Matches []Word
}

// Singleton returns the word a caller should treat as the sole hit, if
// any. An exact match always qualifies; a fuzzy set qualifies only when
// it contains exactly one word. This is the caller-side redirect policy:
// Resolution itself never collapses a singleton fuzzy set into an exact
// match.
func (r Resolution) Singleton() (*Word, bool) {
	if r.Kind == MatchExact && r.Exact != nil {
		return r.Exact, true
	}
	if r.Kind == MatchFuzzy && len(r.Matches) == 1 {
		return &r.Matches[0], true
	}
	return nil, false
}
