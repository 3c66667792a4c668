package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时 HOME 下创建 gdata 存储
func newTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.MusicVolume != 1.0 || s.SoundVolume != 0.8 {
		t.Errorf("unexpected default volumes %v/%v", s.MusicVolume, s.SoundVolume)
	}
	if !s.MusicEnabled || !s.SoundEnabled {
		t.Error("audio should be enabled by default")
	}
	if s.HighScore != 0 {
		t.Errorf("HighScore: got %d, want 0", s.HighScore)
	}
}

func TestSettingsManagerDegradedMode(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.IsPersistent() {
		t.Error("nil gdata manager should not be persistent")
	}

	sm.SetMusicVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should not fail, got %v", err)
	}
	if sm.GetSettings().MusicVolume != 0.3 {
		t.Error("in-memory setting should be kept")
	}
}

func TestSettingsManagerSaveAndLoad(t *testing.T) {
	gm := newTestGdata(t, "danmaku_settings_test")

	sm := NewSettingsManager(gm)
	sm.SetMusicVolume(0.25)
	sm.SetSoundEnabled(false)
	sm.SetLastProfile("classic")
	sm.SetFullscreen(true)
	sm.RecordScore(4200)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewSettingsManager(gm)
	s := reloaded.GetSettings()
	if s.MusicVolume != 0.25 {
		t.Errorf("MusicVolume: got %v, want 0.25", s.MusicVolume)
	}
	if s.SoundEnabled {
		t.Error("SoundEnabled should be false after reload")
	}
	if !s.Fullscreen {
		t.Error("Fullscreen should be true after reload")
	}
	if s.LastProfile != "classic" {
		t.Errorf("LastProfile: got %q, want classic", s.LastProfile)
	}
	if s.HighScore != 4200 {
		t.Errorf("HighScore: got %d, want 4200", s.HighScore)
	}
}

func TestVolumeClamping(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"negative", -0.5, 0},
		{"in range", 0.4, 0.4},
		{"too loud", 3, 1},
	}

	sm := NewSettingsManager(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetMusicVolume(tt.input)
			if got := sm.GetSettings().MusicVolume; got != tt.want {
				t.Errorf("MusicVolume = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectiveMusicVolume(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetMusicVolume(0.5)
	if got := sm.EffectiveMusicVolume(0.5); got != 0.25 {
		t.Errorf("EffectiveMusicVolume = %v, want 0.25", got)
	}
	sm.SetMusicEnabled(false)
	if got := sm.EffectiveMusicVolume(0.5); got != 0 {
		t.Errorf("disabled music should be silent, got %v", got)
	}
}

func TestRecordScore(t *testing.T) {
	sm := NewSettingsManager(nil)
	if !sm.RecordScore(100) {
		t.Error("first score should be a record")
	}
	if sm.RecordScore(50) {
		t.Error("lower score should not be a record")
	}
	if sm.RecordScore(100) {
		t.Error("equal score should not be a record")
	}
}
