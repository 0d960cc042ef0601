package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"feedstore/internal/observability/logging"
	"feedstore/internal/render/rss"
)

func newStatusCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show feed and entry counts and retention settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd, v)
			if err != nil {
				return err
			}
			st := store.Status(cmd.Context())

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "storage:\t%s\n", st.StoragePath)
			fmt.Fprintf(w, "feeds:\t%d\n", st.FeedCount)
			fmt.Fprintf(w, "entries:\t%d\n", st.EntryCount)
			fmt.Fprintf(w, "history_days:\t%d\n", st.HistoryDays)
			fmt.Fprintf(w, "max_entries_per_feed:\t%d\n", st.MaxEntriesPerFeed)
			return w.Flush()
		},
	}
}

func newListCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List feeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd, v)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tLANGUAGE\tENTRIES")
			for _, f := range store.GetAllFeeds(cmd.Context()) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", f.FeedID, f.Title, f.Language, len(f.Entries))
			}
			return w.Flush()
		},
	}
}

func newShowCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show <feed-id>",
		Short: "Print one feed as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd, v)
			if err != nil {
				return err
			}
			f, err := store.GetFeed(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(f)
		},
	}
}

func newExportCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "export [feed-id]",
		Short: "Write one feed, or all feeds combined, as RSS 2.0",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd, v)
			if err != nil {
				return err
			}

			var body []byte
			if len(args) == 1 {
				f, err := store.GetFeed(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				body, err = rss.FeedXML(f)
				if err != nil {
					return err
				}
			} else {
				body, err = rss.CollectionXML(rss.Channel{
					Title:       v.GetString(keyTitle),
					Link:        strings.TrimRight(v.GetString(keyBaseURL), "/") + "/",
					Description: rss.CombinedDescription,
				}, store.GetAllFeeds(cmd.Context()))
				if err != nil {
					return err
				}
			}

			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}
}

func newPruneCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Apply retention and write the storage file back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd, v)
			if err != nil {
				return err
			}
			res, err := store.Prune(cmd.Context())
			if err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Info("prune finished",
				slog.Int("expired", res.Expired),
				slog.Int("overflow", res.Overflow))
			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d entries (expired %d, overflow %d)\n",
				res.Total(), res.Expired, res.Overflow)
			return nil
		},
	}
}
