package game

// EventKind 一帧内发生的游戏事件
// 前端用它播放音效或闪屏，模拟器用它统计；事件不影响模拟本身
type EventKind int

const (
	EventPlayerShot EventKind = iota
	EventPlayerHit
	EventEnemyHit
	EventEnemyDestroyed
	EventBossDestroyed
	EventBomb
	EventDialogueStarted
	EventBossSpawned
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventPlayerShot:
		return "player_shot"
	case EventPlayerHit:
		return "player_hit"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventBossDestroyed:
		return "boss_destroyed"
	case EventBomb:
		return "bomb"
	case EventDialogueStarted:
		return "dialogue_started"
	case EventBossSpawned:
		return "boss_spawned"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventLog 按帧收集事件
type EventLog struct {
	events []EventKind
}

// Emit 记录一个事件
func (l *EventLog) Emit(k EventKind) {
	l.events = append(l.events, k)
}

// Events 返回本帧事件（调用方不得修改）
func (l *EventLog) Events() []EventKind {
	return l.events
}

// Count 统计某类事件数量
func (l *EventLog) Count(k EventKind) int {
	n := 0
	for _, e := range l.events {
		if e == k {
			n++
		}
	}
	return n
}

// Clear 清空，每帧开始时调用
func (l *EventLog) Clear() {
	l.events = l.events[:0]
}
