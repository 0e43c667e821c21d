package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/storage/sqlitekv"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/config"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/session"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Sweep expired reading sessions from storage",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.StoragePath == "" {
			return fmt.Errorf("STORAGE_PATH is not set; nothing to purge")
		}

		store, err := sqlitekv.New(cfg.StoragePath)
		if err != nil {
			return err
		}
		defer store.Close()

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		cache := session.NewCache(store, logger, cfg.CacheTTL)

		removed := cache.PurgeStale(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired session(s)\n", removed)
		return nil
	},
}
