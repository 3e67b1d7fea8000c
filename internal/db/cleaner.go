package db

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// StartOrphanImageCleaner removes uploaded image files no longer referenced
// by any menu item. Deleting an item or replacing its image leaves the old
// file on disk; the cleaner sweeps those on an interval. Files younger than
// minAge are skipped so an upload in progress is never removed.
func StartOrphanImageCleaner(
	ctx context.Context,
	db *sql.DB,
	uploadsDir string,
	interval time.Duration,
	minAge time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := sweepOrphanImages(ctx, db, uploadsDir, minAge)
				if err != nil {
					log.Error("failed to clean orphaned images", zap.Error(err))
					continue
				}
				if removed > 0 {
					log.Info("cleaned orphaned images", zap.Int("removed", removed))
				}
			}
		}
	}()
}

func sweepOrphanImages(ctx context.Context, db *sql.DB, uploadsDir string, minAge time.Duration) (int, error) {
	rows, err := db.QueryContext(ctx, `SELECT image FROM menu_items WHERE image <> ''`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	referenced := make(map[string]bool)
	for rows.Next() {
		var image string
		if err := rows.Scan(&image); err != nil {
			return 0, err
		}
		referenced[filepath.Base(image)] = true
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(uploadsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-minAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(uploadsDir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}
