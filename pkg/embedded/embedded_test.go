package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/profiles/extended.yaml": {Data: []byte("name: extended\n")},
		"data/profiles/classic.yaml":  {Data: []byte("name: classic\n")},
		"data/dialogue/boss.yaml":     {Data: []byte("lines: []\n")},
	}
}

func TestNotInitialized(t *testing.T) {
	Reset()

	if IsInitialized() {
		t.Fatal("Expected IsInitialized() to return false before Init()")
	}
	if _, err := ReadFile("data/profiles/extended.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/profiles/extended.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Reset()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"plain path", "data/profiles/extended.yaml", "name: extended\n", false},
		{"dot prefix", "./data/profiles/classic.yaml", "name: classic\n", false},
		{"wrong prefix", "assets/player.png", "", true},
		{"missing file", "data/profiles/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestGlob(t *testing.T) {
	Init(testFS())
	defer Reset()

	matches, err := Glob("data/profiles/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 profiles, got %v", matches)
	}
	if !Exists("data/dialogue/boss.yaml") {
		t.Error("Expected dialogue script to exist")
	}
}
