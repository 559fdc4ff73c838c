package cli

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordbook/internal/adapters/driving/web"
	"github.com/custodia-labs/wordbook/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Wordbook web server",
	Long: `Serves the Wordbook HTTP surface until interrupted:

  GET /            the search form
  GET /words       all words
  GET /words/{id}  one word
  GET /search      resolve ?keyword= and redirect or list`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil || wordService == nil {
		return errors.New("services not configured")
	}

	cfg := webConfig
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	server := web.NewServer(cfg, &web.Ports{
		Search: searchService,
		Words:  wordService,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Config stores that can watch their backing file push rate-limit
	// changes into the running server.
	if watcher, ok := configStore.(configWatcher); ok {
		go func() {
			err := watcher.Watch(ctx.Done(), func() {
				server.UpdateRateLimit(web.RateLimitConfig{
					RequestsPerSecond: configStore.GetFloat("server.rate_limit"),
					BurstSize:         configStore.GetInt("server.rate_burst"),
				})
			})
			if err != nil {
				logger.Warn("Config watch stopped: %v", err)
			}
		}()
	}

	cmd.Printf("Serving on %s\n", cfg.Addr)
	return server.Start(ctx)
}

// configWatcher is the optional reload capability of a config store.
type configWatcher interface {
	Watch(done <-chan struct{}, onReload func()) error
}
