package config

// 窗口与界面布局常量
// 游戏画布尺寸来自配置档，这里只定义与配置档无关的界面参数
const (
	// WindowTitle 窗口标题
	WindowTitle = "Danmaku"

	// WindowScale 窗口相对画布的缩放
	WindowScale = 1.0

	// HUDMargin HUD 与画布边缘的距离
	HUDMargin = 10.0

	// HUDLineHeight HUD 文本行高
	HUDLineHeight = 18.0

	// HUDIconSize 残机/炸弹图标边长
	HUDIconSize = 10.0

	// BossBarHeight Boss 血条高度
	BossBarHeight = 6.0

	// DialogueBoxHeight 对话框高度（占画布底部）
	DialogueBoxHeight = 140.0

	// DialoguePortraitSize 对话立绘边长
	DialoguePortraitSize = 96.0

	// TitleButtonWidth 标题画面按钮宽度
	TitleButtonWidth = 160

	// TitleButtonHeight 标题画面按钮高度
	TitleButtonHeight = 36
)

// WindowSize 根据画布尺寸计算窗口大小
func WindowSize(canvasWidth, canvasHeight float64) (int, int) {
	return int(canvasWidth * WindowScale), int(canvasHeight * WindowScale)
}
