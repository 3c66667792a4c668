//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.danmaku -o build/android/danmaku.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Danmaku.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/danmaku/pkg/app"
	"github.com/decker502/danmaku/pkg/embedded"
)

// Enabled 当前是否为 ebitenmobile 构建
const Enabled = true

func init() {
	embedded.Init(dataFS)

	// 移动端不打包图片和音乐，使用程序化图形并静音
	gameApp, err := app.NewApp(app.Config{
		Verbose:   true,
		AssetsDir: "assets",
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
