package components

// PlayerComponent 玩家自机的运行时状态
//
// 坐标存放在 PositionComponent 中，尺寸用于移动边界计算，
// 与敌弹的碰撞只使用 HitboxRadius（判定点远小于贴图）。
type PlayerComponent struct {
	Width, Height float64

	Speed     float64 // 普通移动速度（像素/帧）
	SlowSpeed float64 // 低速（Focus）移动速度

	FireCooldown  int // 射击间隔（帧）
	ShootCooldown int // 距离下次可以射击的剩余帧数

	// Invulnerable 剩余无敌帧数，0 表示可被击中
	Invulnerable int

	HitboxRadius float64

	// 入场动画：从 EntryStartY 以 EntrySpeed 向上移动到 EntryTargetY
	Entering     bool
	EntryStartY  float64
	EntryTargetY float64
	EntrySpeed   float64

	// BombLatch 炸弹键上一帧是否按下（用于检测上升沿）
	BombLatch bool

	// Focused 当前是否处于低速模式（渲染判定点用）
	Focused bool
}

// PlayerBulletComponent 玩家子弹标记
type PlayerBulletComponent struct {
	OwnerID       uint64 // 发射该子弹的玩家实体ID
	Width, Height float64
}
