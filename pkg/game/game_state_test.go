package game

import "testing"

func TestNewGameState(t *testing.T) {
	gs := NewGameState(3, 3)
	if gs.Mode != ModeNotStarted {
		t.Errorf("new game should start on the title screen, got %s", gs.Mode)
	}
	if gs.Lives != 3 || gs.Bombs != 3 || gs.Score != 0 || gs.FrameCount != 0 {
		t.Errorf("unexpected initial state %+v", gs)
	}
}

func TestLoseLifeNeverNegative(t *testing.T) {
	gs := NewGameState(3, 3)
	gs.Reset()

	results := []bool{}
	for i := 0; i < 6; i++ {
		results = append(results, gs.LoseLife())
		if gs.Lives < 0 {
			t.Fatalf("lives went negative: %d", gs.Lives)
		}
	}

	want := []bool{false, false, true, false, false, false}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("LoseLife #%d returned %v, want %v", i+1, results[i], want[i])
		}
	}
	if gs.Mode != ModeGameOver {
		t.Errorf("expected GameOver, got %s", gs.Mode)
	}
	if gs.GameOverCount() != 1 {
		t.Errorf("GameOver should be entered exactly once, got %d", gs.GameOverCount())
	}
}

func TestReset(t *testing.T) {
	gs := NewGameState(3, 3)
	gs.Reset()
	gs.AddScore(1200)
	gs.ConsumeBomb()
	gs.LoseLife()
	gs.FrameCount = 999
	gs.BossDialogueShown = true
	gs.SetMode(ModeDialogue)

	gs.Reset()

	if gs.Score != 0 || gs.Lives != 3 || gs.Bombs != 3 || gs.FrameCount != 0 {
		t.Errorf("unexpected state after reset %+v", gs)
	}
	if gs.Mode != ModeRunning {
		t.Errorf("expected Running after reset, got %s", gs.Mode)
	}
	if gs.BossDialogueShown {
		t.Error("BossDialogueShown should be cleared")
	}
}

func TestConsumeBombAndScore(t *testing.T) {
	gs := NewGameState(3, 1)
	if !gs.ConsumeBomb() {
		t.Fatal("first bomb should be available")
	}
	if gs.ConsumeBomb() {
		t.Error("no bombs left")
	}
	if gs.Bombs != 0 {
		t.Errorf("bombs = %d, want 0", gs.Bombs)
	}

	gs.AddScore(100)
	gs.AddScore(-50)
	if gs.Score != 100 {
		t.Errorf("score = %d, want 100", gs.Score)
	}
}

func TestEventLog(t *testing.T) {
	var l EventLog
	l.Emit(EventEnemyHit)
	l.Emit(EventEnemyHit)
	l.Emit(EventBomb)
	if l.Count(EventEnemyHit) != 2 || l.Count(EventBomb) != 1 {
		t.Errorf("unexpected counts %v", l.Events())
	}
	l.Clear()
	if len(l.Events()) != 0 {
		t.Error("Clear should drop events")
	}
}

func TestInputAdapters(t *testing.T) {
	src := StaticInput{Fire: true}
	if !src.Poll().Fire || !src.Poll().Any() {
		t.Error("StaticInput should return its state")
	}
	f := InputFunc(func() InputState { return InputState{} })
	if f.Poll().Any() {
		t.Error("empty input should report no keys")
	}
}
