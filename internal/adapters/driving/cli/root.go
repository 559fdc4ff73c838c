// Package cli is the command-line driving adapter. Commands consume the
// driving ports only; services are injected via SetConfig before Execute.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/wordbook/internal/adapters/driving/web"
	"github.com/custodia-labs/wordbook/internal/core/ports/driven"
	"github.com/custodia-labs/wordbook/internal/core/ports/driving"
	"github.com/custodia-labs/wordbook/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Config holds the services and settings the commands consume.
type Config struct {
	SearchService driving.SearchService
	WordService   driving.WordService
	ConfigStore   driven.ConfigStore
	WebConfig     web.Config
}

var (
	searchService driving.SearchService
	wordService   driving.WordService
	configStore   driven.ConfigStore
	webConfig     web.Config

	verboseFlag bool
	dataDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "wordbook",
	Short: "A small word catalogue with search",
	Long: `Wordbook keeps a catalogue of words and resolves searches over it.

A query that exactly matches a stored word (case included) resolves
directly to that word. Anything else falls back to a case-insensitive
substring scan over the whole catalogue.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (overrides storage.data_dir)")
}

// DataDirOverride extracts the --data-dir flag from args without
// running the command tree. The store must be open before Execute
// parses flags, so the composition root pre-scans the arguments; any
// other flag is left for cobra to handle.
func DataDirOverride(args []string) string {
	fs := pflag.NewFlagSet("wordbook", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}

	dataDir := fs.String("data-dir", "", "")
	fs.BoolP("verbose", "v", false, "")

	_ = fs.Parse(args)
	return *dataDir
}

// SetConfig injects the services the commands run against.
func SetConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	searchService = cfg.SearchService
	wordService = cfg.WordService
	configStore = cfg.ConfigStore
	webConfig = cfg.WebConfig
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
