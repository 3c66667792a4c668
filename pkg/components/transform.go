package components

// PositionComponent 实体中心点在游戏画布上的坐标（像素，y 轴向下）
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 每帧的位移量（像素/帧）
// 子弹和粒子使用；玩家与敌人的移动由各自系统直接计算
type VelocityComponent struct {
	VX, VY float64
}
