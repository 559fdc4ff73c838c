package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordbook/internal/core/domain"
)

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Manage the word catalogue",
}

var wordAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a word",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordAdd,
}

var wordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all words in creation order",
	Args:  cobra.NoArgs,
	RunE:  runWordList,
}

var wordShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a word by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordShow,
}

var wordDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a word by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordDelete,
}

func init() {
	wordCmd.AddCommand(wordAddCmd)
	wordCmd.AddCommand(wordListCmd)
	wordCmd.AddCommand(wordShowCmd)
	wordCmd.AddCommand(wordDeleteCmd)
	rootCmd.AddCommand(wordCmd)
}

func runWordAdd(cmd *cobra.Command, args []string) error {
	if wordService == nil {
		return errors.New("word service not configured")
	}

	word, err := wordService.Create(context.Background(), args[0])
	if errors.Is(err, domain.ErrInvalidInput) {
		return fmt.Errorf("invalid word name %q: %w", args[0], err)
	}
	if err != nil {
		return fmt.Errorf("add word: %w", err)
	}

	cmd.Printf("Added %s (%s)\n", word.Name, word.ID)
	return nil
}

func runWordList(cmd *cobra.Command, _ []string) error {
	if wordService == nil {
		return errors.New("word service not configured")
	}

	words, err := wordService.List(context.Background())
	if err != nil {
		return fmt.Errorf("list words: %w", err)
	}

	if len(words) == 0 {
		cmd.Println("No words yet.")
		return nil
	}

	for i := range words {
		cmd.Printf("%s  %s\n", words[i].ID, words[i].Name)
	}
	return nil
}

func runWordShow(cmd *cobra.Command, args []string) error {
	if wordService == nil {
		return errors.New("word service not configured")
	}

	word, err := wordService.Get(context.Background(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no word with ID %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("show word: %w", err)
	}

	cmd.Printf("ID:      %s\n", word.ID)
	cmd.Printf("Name:    %s\n", word.Name)
	cmd.Printf("Created: %s\n", word.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("Updated: %s\n", word.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runWordDelete(cmd *cobra.Command, args []string) error {
	if wordService == nil {
		return errors.New("word service not configured")
	}

	if err := wordService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
