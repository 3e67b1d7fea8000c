package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func writeAgedFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("jpeg-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSweepOrphanImages(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()

	dir := t.TempDir()
	referenced := writeAgedFile(t, dir, "kept.jpg", 48*time.Hour)
	orphan := writeAgedFile(t, dir, "orphan.jpg", 48*time.Hour)
	fresh := writeAgedFile(t, dir, "fresh.jpg", time.Minute)

	mock.ExpectQuery(`SELECT image FROM menu_items WHERE image <> ''`).
		WillReturnRows(sqlmock.NewRows([]string{"image"}).AddRow("uploads/kept.jpg"))

	removed, err := sweepOrphanImages(context.Background(), mockDB, dir, 24*time.Hour)
	if err != nil {
		t.Fatalf("sweep returned error: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d; want 1", removed)
	}

	if _, err := os.Stat(referenced); err != nil {
		t.Error("expected the referenced file to survive")
	}
	if _, err := os.Stat(orphan); !os.IsNotExist(err) {
		t.Error("expected the aged orphan to be removed")
	}
	// A fresh file may be an upload in progress.
	if _, err := os.Stat(fresh); err != nil {
		t.Error("expected the fresh orphan to survive")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSweepOrphanImages_MissingDir(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT image FROM menu_items WHERE image <> ''`).
		WillReturnRows(sqlmock.NewRows([]string{"image"}))

	removed, err := sweepOrphanImages(context.Background(), mockDB, filepath.Join(t.TempDir(), "absent"), time.Hour)
	if err != nil {
		t.Fatalf("sweep returned error: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d; want 0", removed)
	}
}
