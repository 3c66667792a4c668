package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/danmaku/pkg/app"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	profile := flag.String("profile", "", "Profile name (extended, classic) or YAML file; defaults to the last one played")
	configPath := flag.String("config", "", "Alias of -profile that takes a YAML file path")
	assets := flag.String("assets", "assets", "Directory containing images, music and fonts")
	font := flag.String("font", "", "Font file inside the assets directory (built-in bitmap font if empty)")
	watch := flag.Bool("watch", false, "Reload profiles from disk when they change (applied on the next game)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	noSave := flag.Bool("nosave", false, "Do not read or write local settings")
	flag.Parse()

	// 嵌入的数据文件，磁盘上没有 data/ 目录时使用
	embedded.Init(dataFS)

	name := *profile
	if *configPath != "" {
		name = *configPath
	}

	ebiten.SetWindowClosingHandled(true)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Profile:   name,
		AssetsDir: *assets,
		FontPath:  *font,
		Watch:     *watch,
		Seed:      *seed,
		NoSave:    *noSave,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		gameApp.Close()
		log.Fatal(err)
	}
}
