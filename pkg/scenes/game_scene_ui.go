package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/systems"
	"github.com/decker502/danmaku/pkg/types"
	"github.com/decker502/danmaku/pkg/utils"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawHUD 左上角分数，下方一行残机图标、一行炸弹图标
func (s *GameScene) drawHUD(screen *ebiten.Image, snap *systems.Snapshot) {
	if snap.Mode == game.ModeNotStarted {
		return
	}
	x, y := config.HUDMargin, config.HUDMargin
	drawText(screen, fmt.Sprintf("Score: %d", snap.HUD.Score), s.face, x, y, color.White)

	y += config.HUDLineHeight
	for i := 0; i < snap.HUD.Lives; i++ {
		cx := float32(x + config.HUDIconSize/2 + float64(i)*(config.HUDIconSize+4))
		vector.DrawFilledCircle(screen, cx, float32(y+config.HUDIconSize/2), config.HUDIconSize/2, colorPlayer, true)
	}

	y += config.HUDLineHeight
	for i := 0; i < snap.HUD.Bombs; i++ {
		ix := float32(x + float64(i)*(config.HUDIconSize+4))
		vector.DrawFilledRect(screen, ix, float32(y), config.HUDIconSize, config.HUDIconSize, colorPetal, false)
	}
}

// drawBossBar 画布顶部的首领血条，长度按 hp/maxHp 缩放
func (s *GameScene) drawBossBar(screen *ebiten.Image, snap *systems.Snapshot) {
	if !snap.BossVisible {
		return
	}
	full := snap.Width - 2*config.HUDMargin
	y := float32(config.HUDMargin / 2)
	vector.DrawFilledRect(screen, float32(config.HUDMargin), y, float32(full), config.BossBarHeight, colorBossBarBack, false)
	vector.DrawFilledRect(screen, float32(config.HUDMargin), y, float32(bossBarWidth(snap.BossHPRatio, full)), config.BossBarHeight, colorBossBar, false)
}

// drawDialogue 底部对话框：两侧立绘框（说话的一侧高亮）、说话人、逐字显示的台词
func (s *GameScene) drawDialogue(screen *ebiten.Image, snap *systems.Snapshot) {
	d := snap.Dialogue
	if !d.Visible {
		return
	}

	w, h := snap.Width, snap.Height
	top := h - config.DialogueBoxHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), config.DialogueBoxHeight, colorDialogueBox, false)

	size := float32(config.DialoguePortraitSize)
	portraitY := float32(top) - size - 4
	left, right := colorDim, colorDim
	if d.Side == types.SideLeft {
		left = colorPlayer
	} else {
		right = colorBoss
	}
	vector.StrokeRect(screen, float32(config.HUDMargin), portraitY, size, size, 2, left, false)
	vector.StrokeRect(screen, float32(w-config.HUDMargin)-size, portraitY, size, size, 2, right, false)

	x := config.HUDMargin * 2
	y := top + config.HUDMargin
	if d.Speaker != "" {
		drawText(screen, d.Speaker, s.face, x, y, colorPetal)
		y += config.HUDLineHeight * 1.5
	}
	for _, line := range wrapText(d.Text, s.face, w-x*2) {
		drawText(screen, line, s.face, x, y, color.White)
		y += config.HUDLineHeight
	}

	if d.State == types.DialogueWaitingForAdvance {
		pulse := utils.EaseInOutSine(pulsePhase(s.ticks, 60))
		drawText(screen, "v", s.face, w-x, h-config.HUDLineHeight-config.HUDMargin, withAlpha(colorText, 0.3+0.7*pulse))
	}
}

// panelImages ebitenui 面板和按钮的纯色九宫格
func panelImages() (*imageui.NineSlice, *widget.ButtonImage) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	idle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x55, A: 255})
	pressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x88, A: 255})
	return panelImg, &widget.ButtonImage{Idle: idle, Pressed: pressed}
}

// newPanel 居中的纵向面板
func newPanel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panelImg, _ := panelImages()
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func (s *GameScene) newLabel(label string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &s.face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (s *GameScene) newButton(label string, onClick func()) *widget.Button {
	_, btnImg := panelImages()
	return widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text(label, &s.face, &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(config.TitleButtonWidth, config.TitleButtonHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// newTitleUI 标题画面：开始按钮（或 Enter）
func (s *GameScene) newTitleUI() *ebitenui.UI {
	return newPanel(
		s.newLabel(config.WindowTitle, colorPetal),
		s.newButton("Start", func() { s.loop.Start() }),
		s.newLabel("Enter: start   M: music", colorDim),
		s.newLabel("Z: shot  X: bomb  Shift: focus", colorDim),
	)
}

// newGameOverUI 结算画面：最终分数与重新开始按钮
func (s *GameScene) newGameOverUI() (*ebitenui.UI, *widget.Text) {
	result := s.newLabel(resultLabel(0, false), color.White)
	ui := newPanel(
		s.newLabel("GAME OVER", colorEnemy),
		result,
		s.newButton("Restart", func() { s.loop.ResetGame() }),
		s.newLabel("Enter to restart", colorDim),
	)
	return ui, result
}
