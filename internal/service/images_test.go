package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := DiskImageStore{Dir: dir}

	path, err := store.Save("Soup Photo.JPG", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if !strings.HasPrefix(path, "uploads/") {
		t.Errorf("path = %q; want an uploads/ reference", path)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Errorf("path = %q; want the extension kept and lowercased", path)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("stored content = %q; want %q", data, "jpeg-bytes")
	}
}

func TestDiskImageStore_FreshNamePerUpload(t *testing.T) {
	store := DiskImageStore{Dir: t.TempDir()}

	first, err := store.Save("a.png", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	second, err := store.Save("a.png", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct stored names, got %q twice", first)
	}
}
