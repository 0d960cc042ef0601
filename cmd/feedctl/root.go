package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"feedstore/internal/config"
	"feedstore/internal/infra/adapter/persistence/jsonfile"
	"feedstore/internal/observability/logging"
	feedUC "feedstore/internal/usecase/feed"
)

// Settings keys. Each is also read from FEEDCTL_<KEY>.
const (
	keyStorageFile = "storage_file"
	keyHistoryDays = "history_days"
	keyMaxEntries  = "max_entries_per_feed"
	keyTitle       = "general_feed_title"
	keyBaseURL     = "base_url"
	keyLogLevel    = "log_level"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:           "feedctl",
		Short:         "Inspect and maintain a feed storage file",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config: %w", err)
				}
			}

			logger, _ := logging.New(logging.Options{Level: v.GetString(keyLogLevel)}, cmd.ErrOrStderr())
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	defaults := config.DefaultStoreConfig()
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML file with the same keys as the server config")
	flags.String("storage-file", defaults.StorageFile, "feed storage file")
	flags.Int("history-days", defaults.HistoryDays, "retention window in days (0 disables)")
	flags.Int("max-entries", defaults.MaxEntriesPerFeed, "maximum entries per feed (0 disables)")
	flags.String("title", defaults.GeneralFeedTitle, "channel title of the combined export")
	flags.String("base-url", "http://localhost:5000", "link of the combined export channel")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	for key, flag := range map[string]string{
		keyStorageFile: "storage-file",
		keyHistoryDays: "history-days",
		keyMaxEntries:  "max-entries",
		keyTitle:       "title",
		keyBaseURL:     "base-url",
		keyLogLevel:    "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	v.SetEnvPrefix("FEEDCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		newStatusCmd(v),
		newListCmd(v),
		newShowCmd(v),
		newExportCmd(v),
		newPruneCmd(v),
	)
	return root
}

// openStore loads the storage file with the retention settings in v.
func openStore(cmd *cobra.Command, v *viper.Viper) (*feedUC.Store, error) {
	path := v.GetString(keyStorageFile)
	if path == "" {
		return nil, fmt.Errorf("storage file is required")
	}
	return feedUC.NewStore(cmd.Context(), jsonfile.NewFeedRepo(path), feedUC.Config{
		HistoryDays:       v.GetInt(keyHistoryDays),
		MaxEntriesPerFeed: v.GetInt(keyMaxEntries),
		GeneralFeedTitle:  v.GetString(keyTitle),
	}, feedUC.WithLogger(logging.FromContext(cmd.Context())))
}
