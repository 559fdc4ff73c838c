package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCmd_Subcommands(t *testing.T) {
	var uses []string
	for _, cmd := range wordCmd.Commands() {
		uses = append(uses, cmd.Use)
	}

	assert.Contains(t, uses, "add [name]")
	assert.Contains(t, uses, "list")
	assert.Contains(t, uses, "show [id]")
	assert.Contains(t, uses, "delete [id]")
}

func TestWordAdd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "word", "add", "apple")

	require.NoError(t, err)
	assert.Contains(t, out, "Added apple")
}

func TestWordAdd_BlankName(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "word", "add", "   ")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid word name")
}

func TestWordList_Empty(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "word", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No words yet.")
}

func TestWordList_CreationOrder(t *testing.T) {
	cleanup := setupTestServices(t, "cherry", "apple", "banana")
	defer cleanup()

	out, err := execute(t, "word", "list")

	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "cherry"), strings.Index(out, "apple"))
	assert.Less(t, strings.Index(out, "apple"), strings.Index(out, "banana"))
}

func TestWordShowAndDelete(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "word", "add", "apple")
	require.NoError(t, err)

	// Output form: "Added apple (<id>)"
	start := strings.Index(out, "(")
	end := strings.Index(out, ")")
	require.Greater(t, end, start)
	id := out[start+1 : end]

	out, err = execute(t, "word", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Name:    apple")

	out, err = execute(t, "word", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+id)

	_, err = execute(t, "word", "show", id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no word with ID")
}

func TestWordShow_NotConfigured(t *testing.T) {
	wordService = nil

	_, err := execute(t, "word", "show", "some-id")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
