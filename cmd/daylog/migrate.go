// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Moves every collection from the configured backend to another one.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/daylog/internal/config"
	"github.com/harperreed/daylog/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	migrateTo     string
	migrateDryRun bool
	migrateForce  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data to another storage backend",
	Long: `Copy every stored collection from the current backend to another one.

The source is the configured backend (or --backend). The destination lives in
the same data directory. Values are copied verbatim.

IMPORTANT:

  - Existing destination data is NOT overwritten unless --force is given
  - Run with --dry-run first to see what would be copied
  - Afterwards set "backend" in ~/.config/daylog/config.json to switch

USAGE:

  daylog migrate --to badger --dry-run   # Preview
  daylog migrate --to badger             # Copy sqlite data into badger
  daylog --backend badger migrate --to sqlite`,
	Annotations: map[string]string{noStore: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from := cfg.GetBackend()
		dataDir := cfg.GetDataDir()

		if migrateTo == "" {
			return errors.New("--to is required (sqlite or badger)")
		}
		if migrateTo == from {
			return fmt.Errorf("source and destination are both %s", from)
		}
		if from == config.BackendMemory || migrateTo == config.BackendMemory {
			return errors.New("the memory backend cannot be migrated to or from")
		}

		exists, err := destinationHasData(migrateTo, dataDir)
		if err != nil {
			return err
		}
		if exists && !migrateForce && !migrateDryRun {
			return fmt.Errorf("%s data already exists in %s (use --force to overwrite)", migrateTo, dataDir)
		}

		src, err := config.OpenBackend(from, dataDir, logger)
		if err != nil {
			return fmt.Errorf("open %s: %w", from, err)
		}
		defer src.Close()

		out := cmd.OutOrStdout()
		if migrateDryRun {
			yellow.Fprintln(out, "Dry run mode - no changes will be made")
			keys, err := src.Keys()
			if err != nil {
				return fmt.Errorf("list %s keys: %w", from, err)
			}
			fmt.Fprintf(out, "Would copy %d collections from %s to %s:\n", len(keys), from, migrateTo)
			for _, k := range keys {
				fmt.Fprintf(out, "  %s\n", k)
			}
			return nil
		}

		dst, err := config.OpenBackend(migrateTo, dataDir, logger)
		if err != nil {
			return fmt.Errorf("open %s: %w", migrateTo, err)
		}
		defer dst.Close()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		logger.Info("migrated", zap.String("from", from), zap.String("to", migrateTo),
			zap.Int("keys", summary.Keys), zap.Int("bytes", summary.Bytes))
		success(out, "Copied %d collections (%d bytes) from %s to %s", summary.Keys, summary.Bytes, from, migrateTo)
		fmt.Fprintf(out, "  %s\n", faint.Sprintf("set \"backend\": %q in your config to use it", migrateTo))
		return nil
	},
}

// destinationHasData reports whether backend already has files in dataDir.
func destinationHasData(backend, dataDir string) (bool, error) {
	switch backend {
	case config.BackendBadger:
		return storage.IsDirNonEmpty(filepath.Join(dataDir, config.BadgerDir))
	case config.BackendSQLite:
		_, err := os.Stat(filepath.Join(dataDir, config.SQLiteFile))
		if os.IsNotExist(err) {
			return false, nil
		}
		return err == nil, err
	default:
		return false, fmt.Errorf("unknown backend: %q", backend)
	}
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend (sqlite or badger)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite existing destination data")
	rootCmd.AddCommand(migrateCmd)
}
