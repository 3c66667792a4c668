package game

import (
	"fmt"
	"log"
)

// Mode 游戏的全局模式
type Mode int

const (
	// ModeNotStarted 标题画面，等待开始
	ModeNotStarted Mode = iota
	// ModeRunning 战斗进行中
	ModeRunning
	// ModeDialogue Boss 战前对话，所有战斗系统冻结
	ModeDialogue
	// ModeGameOver 残机耗尽
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeNotStarted:
		return "NotStarted"
	case ModeRunning:
		return "Running"
	case ModeDialogue:
		return "Dialogue"
	case ModeGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// GameState 一局游戏的全局状态
//
// 不是全局单例：由 GameLoop 持有，并在构造时注入各个系统。
type GameState struct {
	Score      int
	Lives      int
	Bombs      int
	FrameCount int
	Mode       Mode

	// BossDialogueShown Boss 对话是否已经触发过（保证 Boss 只出现一次）
	BossDialogueShown bool

	initialLives int
	initialBombs int
	gameOvers    int
}

// NewGameState 创建处于标题画面的游戏状态
func NewGameState(lives, bombs int) *GameState {
	gs := &GameState{
		initialLives: lives,
		initialBombs: bombs,
	}
	gs.Lives = lives
	gs.Bombs = bombs
	gs.Mode = ModeNotStarted
	return gs
}

// Reset 恢复到新一局开始时的状态并进入 Running
func (gs *GameState) Reset() {
	gs.Score = 0
	gs.Lives = gs.initialLives
	gs.Bombs = gs.initialBombs
	gs.FrameCount = 0
	gs.BossDialogueShown = false
	gs.gameOvers = 0
	gs.SetMode(ModeRunning)
}

// SetMode 切换模式
func (gs *GameState) SetMode(m Mode) {
	if gs.Mode == m {
		return
	}
	log.Printf("[GameState] Mode %s -> %s (frame %d)", gs.Mode, m, gs.FrameCount)
	if m == ModeGameOver {
		gs.gameOvers++
	}
	gs.Mode = m
}

// AddScore 增加分数（负数被忽略）
func (gs *GameState) AddScore(points int) {
	if points > 0 {
		gs.Score += points
	}
}

// LoseLife 扣除一条残机
// 残机不会变为负数；归零时进入 GameOver 并返回 true
func (gs *GameState) LoseLife() bool {
	if gs.Lives <= 0 {
		return false
	}
	gs.Lives--
	if gs.Lives == 0 {
		gs.SetMode(ModeGameOver)
		return true
	}
	return false
}

// ConsumeBomb 消耗一枚炸弹，没有炸弹时返回 false
func (gs *GameState) ConsumeBomb() bool {
	if gs.Bombs <= 0 {
		return false
	}
	gs.Bombs--
	return true
}

// GameOverCount 本局进入 GameOver 的次数（正常情况下至多为 1）
func (gs *GameState) GameOverCount() int {
	return gs.gameOvers
}
