package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchKind_String(t *testing.T) {
	assert.Equal(t, "exact", MatchExact.String())
	assert.Equal(t, "fuzzy", MatchFuzzy.String())
	assert.Equal(t, "unknown", MatchKind(99).String())
}

func TestResolution_Singleton_Exact(t *testing.T) {
	w := Word{ID: "w1", Name: "apple"}
	r := Resolution{Kind: MatchExact, Exact: &w}

	got, ok := r.Singleton()

	require.True(t, ok)
	assert.Equal(t, "w1", got.ID)
}

func TestResolution_Singleton_SingleFuzzyMatch(t *testing.T) {
	r := Resolution{Kind: MatchFuzzy, Matches: []Word{{ID: "w1", Name: "Apple"}}}

	got, ok := r.Singleton()

	require.True(t, ok)
	assert.Equal(t, "Apple", got.Name)
}

func TestResolution_Singleton_MultipleFuzzyMatches(t *testing.T) {
	r := Resolution{Kind: MatchFuzzy, Matches: []Word{
		{ID: "w1", Name: "apple"},
		{ID: "w2", Name: "application"},
	}}

	_, ok := r.Singleton()

	assert.False(t, ok)
}

func TestResolution_Singleton_EmptyFuzzySet(t *testing.T) {
	r := Resolution{Kind: MatchFuzzy, Matches: []Word{}}

	_, ok := r.Singleton()

	assert.False(t, ok)
}
