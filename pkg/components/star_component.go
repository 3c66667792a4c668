package components

// StarComponent 背景星空中的一颗星
// 背景装饰在标题画面和对话期间也保持滚动
type StarComponent struct {
	Speed float64
	Size  float64
}
