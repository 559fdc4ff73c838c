package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordbook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wordbook/internal/core/services"
)

// setupTestServices wires memory-backed services into the command tree
// and returns a cleanup that puts the package back to unconfigured.
func setupTestServices(t *testing.T, names ...string) func() {
	t.Helper()

	store := memory.NewWordStore()
	wordSvc := services.NewWordService(store)
	for _, name := range names {
		_, err := wordSvc.Create(context.Background(), name)
		require.NoError(t, err)
	}

	SetConfig(&Config{
		SearchService: services.NewSearchService(store),
		WordService:   wordSvc,
	})

	return func() {
		searchService = nil
		wordService = nil
	}
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
