// Package types 定义共享的基础类型
package types

import "fmt"

// EnemyKind 定义敌人的类型（封闭枚举）
type EnemyKind int

const (
	// EnemyBasic 杂兵：从屏幕上方或两侧进入，左右摆动下落
	EnemyBasic EnemyKind = iota
	// EnemyBoss 首领：对话结束后出现，拥有多个攻击阶段
	EnemyBoss
)

// String 返回敌人类型名称（用于日志和配置文件）
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyBoss:
		return "boss"
	default:
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
}

// KillScore 返回击破该类型敌人获得的分数
func (k EnemyKind) KillScore() int {
	switch k {
	case EnemyBoss:
		return 1000
	default:
		return 100
	}
}
