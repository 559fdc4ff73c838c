// Command wordbook runs the word catalogue: a SQLite-backed store, the
// search resolver, and the web and command-line surfaces on top.
package main

import (
	"fmt"
	"os"

	configfile "github.com/custodia-labs/wordbook/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wordbook/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/wordbook/internal/adapters/driving/cli"
	"github.com/custodia-labs/wordbook/internal/adapters/driving/web"
	"github.com/custodia-labs/wordbook/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wordbook: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// WORDBOOK_CONFIG_DIR overrides ~/.wordbook, mainly for tests and
	// side-by-side installs.
	configStore, err := configfile.NewConfigStore(os.Getenv("WORDBOOK_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// --data-dir must be known before the store opens, which is before
	// cobra parses anything; pre-scan the arguments for it.
	dataDir := cli.DataDirOverride(os.Args[1:])
	if dataDir == "" {
		dataDir = configStore.GetString("storage.data_dir")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	words := store.WordStore()

	cli.SetConfig(&cli.Config{
		SearchService: services.NewSearchService(words),
		WordService:   services.NewWordService(words),
		ConfigStore:   configStore,
		WebConfig: web.Config{
			Addr: configStore.GetString("server.addr"),
			RateLimit: web.RateLimitConfig{
				RequestsPerSecond: configStore.GetFloat("server.rate_limit"),
				BurstSize:         configStore.GetInt("server.rate_burst"),
			},
		},
	})

	return cli.Execute()
}
