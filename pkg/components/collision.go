package components

// CollisionComponent 以实体中心为基准的碰撞盒
// 用于玩家子弹与敌人之间的 AABB 检测
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
