//go:build !android

package utils

import (
	"path/filepath"
	"testing"
)

func TestStorageLocation(t *testing.T) {
	if err := EnsureStorageDir(); err != nil {
		t.Fatalf("EnsureStorageDir failed: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("HOME", "/tmp/home")
	got := StorageLocation("danmaku")
	if filepath.Base(got) != "danmaku" {
		t.Errorf("StorageLocation = %q, want a path ending in danmaku", got)
	}
}
