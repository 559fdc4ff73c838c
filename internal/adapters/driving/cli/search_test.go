package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Search the word catalogue", searchCmd.Short)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t, "search")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasJSONFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("json")
	require.NotNil(t, flag, "json flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestSearchCmd_NotConfigured(t *testing.T) {
	searchService = nil

	_, err := execute(t, "search", "apple")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestSearchCmd_ExactMatch(t *testing.T) {
	cleanup := setupTestServices(t, "apple", "application")
	defer cleanup()

	out, err := execute(t, "search", "apple")

	require.NoError(t, err)
	assert.Contains(t, out, "Exact match: apple")
}

func TestSearchCmd_SingletonFuzzyReadsAsDirectHit(t *testing.T) {
	cleanup := setupTestServices(t, "Apple")
	defer cleanup()

	out, err := execute(t, "search", "apple")

	require.NoError(t, err)
	assert.Contains(t, out, "Match: Apple")
}

func TestSearchCmd_MultipleMatches(t *testing.T) {
	cleanup := setupTestServices(t, "apple", "application", "banana")
	defer cleanup()

	out, err := execute(t, "search", "app")

	require.NoError(t, err)
	assert.Contains(t, out, `Matches for "app":`)
	assert.Contains(t, out, "apple")
	assert.Contains(t, out, "application")
	assert.NotContains(t, out, "banana")
}

func TestSearchCmd_NoMatches(t *testing.T) {
	cleanup := setupTestServices(t, "apple", "banana")
	defer cleanup()

	out, err := execute(t, "search", "xyz")

	require.NoError(t, err)
	assert.Contains(t, out, `No words matched "xyz".`)
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(t, "apple")
	defer cleanup()
	defer func() { searchJSON = false }()

	out, err := execute(t, "search", "--json", "apple")

	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "exact"`)
	assert.Contains(t, out, `"Name": "apple"`)
}
