package systems

import (
	"log"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/entities"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/types"
)

// DialogueView 渲染层读取的对话框内容
type DialogueView struct {
	Visible bool
	Speaker string
	Side    types.DialogueSide
	// Text 当前已显示的文字（打字机进行中时为前缀）
	Text  string
	State types.DialogueState
	// Line/Total 当前行号（从 0 开始）和总行数
	Line, Total int
}

// DialogueSystem Boss 战前对话
//
// 对话期间游戏处于 Dialogue 模式，战斗系统全部冻结。
// 打字机由 Update(dt) 驱动，Advance 可随时跳过当前行的打字过程。
// 对话结束时恢复 Running，清空杂兵和敌弹，并生成首领（每局只生成一次）。
type DialogueSystem struct {
	em      *ecs.EntityManager
	gs      *game.GameState
	profile *config.GameProfile
	events  *game.EventLog
	rng     Random

	thoughtOpen, thoughtClose string

	sessionID ecs.EntityID
}

// NewDialogueSystem 创建对话系统
// script 为 nil 时心理活动括号使用默认值
func NewDialogueSystem(em *ecs.EntityManager, gs *game.GameState, profile *config.GameProfile, events *game.EventLog, rng Random, script *config.DialogueScript) *DialogueSystem {
	s := &DialogueSystem{
		em:           em,
		gs:           gs,
		profile:      profile,
		events:       events,
		rng:          rng,
		thoughtOpen:  config.DefaultThoughtOpen,
		thoughtClose: config.DefaultThoughtClose,
	}
	if script != nil {
		s.thoughtOpen = script.Thought.Open
		s.thoughtClose = script.Thought.Close
	}
	return s
}

// Active 是否有进行中的对话
func (s *DialogueSystem) Active() bool {
	_, ok := s.session()
	return ok
}

func (s *DialogueSystem) session() (*components.DialogueComponent, bool) {
	if s.sessionID == ecs.InvalidEntity || !s.em.IsAlive(s.sessionID) {
		return nil, false
	}
	return ecs.GetComponent[*components.DialogueComponent](s.em, s.sessionID)
}

// Start 开始一段对话
// 已有进行中的对话时忽略；台词为空时立即结束
func (s *DialogueSystem) Start(lines []components.DialogueLine) {
	if s.Active() {
		log.Printf("[DialogueSystem] Start ignored: dialogue already active")
		return
	}

	s.sessionID = entities.NewDialogueSession(s.em, lines, s.profile.Dialogue.CharDelay(), s.thoughtOpen, s.thoughtClose)
	s.gs.SetMode(game.ModeDialogue)
	s.events.Emit(game.EventDialogueStarted)
	log.Printf("[DialogueSystem] Dialogue started (%d lines) at frame %d", len(lines), s.gs.FrameCount)

	d, _ := s.session()
	d.Cursor = 0
	s.present(d)
}

// present 展示当前行；越界时结束对话
func (s *DialogueSystem) present(d *components.DialogueComponent) {
	line, ok := d.CurrentLine()
	if !ok {
		s.end(d)
		return
	}

	d.State = types.DialoguePresenting
	d.Elapsed = 0

	if s.isThought(line.Text, d) || d.CharDelay <= 0 {
		d.Revealed = utf8.RuneCountInString(line.Text)
		d.State = types.DialogueWaitingForAdvance
		return
	}

	d.Revealed = 0
	d.State = types.DialogueTyping
	if line.Text == "" {
		d.State = types.DialogueWaitingForAdvance
	}
}

// isThought 以心理活动括号开头并结尾的台词立即完整显示
func (s *DialogueSystem) isThought(text string, d *components.DialogueComponent) bool {
	open, close := d.ThoughtOpen, d.ThoughtClose
	if open == "" || close == "" || len(text) < len(open)+len(close) {
		return false
	}
	return strings.HasPrefix(text, open) && strings.HasSuffix(text, close)
}

// Update 推进打字机，dt 为本帧时长（秒）
func (s *DialogueSystem) Update(dt float64) {
	d, ok := s.session()
	if !ok || d.State != types.DialogueTyping {
		return
	}
	line, _ := d.CurrentLine()
	total := utf8.RuneCountInString(line.Text)

	d.Elapsed += dt
	for d.Elapsed >= d.CharDelay && d.Revealed < total {
		d.Elapsed -= d.CharDelay
		d.Revealed++
	}
	if d.Revealed >= total {
		d.Revealed = total
		d.Elapsed = 0
		d.State = types.DialogueWaitingForAdvance
	}
}

// Advance 推进对话
// 打字中：立即显示整行；等待中：进入下一行或结束
func (s *DialogueSystem) Advance() {
	d, ok := s.session()
	if !ok {
		return
	}

	switch d.State {
	case types.DialogueTyping:
		line, _ := d.CurrentLine()
		d.Revealed = utf8.RuneCountInString(line.Text)
		d.Elapsed = 0
		d.State = types.DialogueWaitingForAdvance
	case types.DialogueWaitingForAdvance:
		d.Cursor++
		s.present(d)
	}
}

// end 结束对话并生成首领
func (s *DialogueSystem) end(d *components.DialogueComponent) {
	d.State = types.DialogueEnded
	s.em.DestroyEntity(s.sessionID)
	s.sessionID = ecs.InvalidEntity
	s.gs.SetMode(game.ModeRunning)

	if s.gs.BossDialogueShown {
		return
	}
	s.gs.BossDialogueShown = true

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyBulletComponent](s.em) {
		s.em.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.em) {
		if !isBoss(s.em, id) {
			s.em.DestroyEntity(id)
		}
	}

	if BossAlive(s.em) {
		log.Printf("[DialogueSystem] Boss already on field, skip spawn")
		return
	}
	cfg := s.profile.Enemies.Boss
	entities.NewBoss(s.em, cfg, s.profile.Canvas.Width/2, cfg.SpawnY, s.rng.Float64()*2*math.Pi)
	s.events.Emit(game.EventBossSpawned)
	log.Printf("[DialogueSystem] Dialogue ended, boss spawned at frame %d", s.gs.FrameCount)
}

// View 当前对话框内容
func (s *DialogueSystem) View() DialogueView {
	d, ok := s.session()
	if !ok {
		return DialogueView{State: types.DialogueIdle}
	}
	line, ok := d.CurrentLine()
	if !ok {
		return DialogueView{State: d.State}
	}

	text := line.Text
	if n := d.Revealed; n < utf8.RuneCountInString(text) {
		text = string([]rune(text)[:n])
	}
	return DialogueView{
		Visible: true,
		Speaker: line.Speaker,
		Side:    line.Side,
		Text:    text,
		State:   d.State,
		Line:    d.Cursor,
		Total:   len(d.Lines),
	}
}

// Reset 丢弃进行中的对话（不生成首领）
func (s *DialogueSystem) Reset() {
	if s.sessionID != ecs.InvalidEntity {
		s.em.DestroyEntity(s.sessionID)
	}
	s.sessionID = ecs.InvalidEntity
}
