package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWatchDirs(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if got := watchDirs("extended"); len(got) != 0 {
		t.Errorf("No data dirs on disk, got %v", got)
	}

	if err := os.MkdirAll(filepath.Join("data", "profiles"), 0755); err != nil {
		t.Fatal(err)
	}
	if got, want := watchDirs("extended"), []string{filepath.Join("data", "profiles")}; !reflect.DeepEqual(got, want) {
		t.Errorf("watchDirs = %v, want %v", got, want)
	}

	if err := os.MkdirAll("custom", 0755); err != nil {
		t.Fatal(err)
	}
	if got, want := watchDirs(filepath.Join("custom", "mine.yaml")), []string{"custom"}; !reflect.DeepEqual(got, want) {
		t.Errorf("watchDirs = %v, want %v", got, want)
	}
}

func TestOpenSettingsNoSave(t *testing.T) {
	sm := openSettings(true)
	if sm.IsPersistent() {
		t.Error("NoSave should give memory-only settings")
	}
}
