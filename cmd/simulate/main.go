// simulate 无界面运行游戏并输出统计
//
// 用自动驾驶输入跑固定帧数，最后以 YAML 打印分数、残机和事件统计。
// 相同的 -profile 和 -seed 总是得到相同的输出，可以用来比较调参前后的差异。
//
// 使用方法:
//
//	go run ./cmd/simulate -profile classic -ticks 3600 -seed 42
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/systems"
	"gopkg.in/yaml.v3"
)

var (
	profileFlag  = flag.String("profile", config.DefaultProfile, "Profile name or YAML path")
	ticksFlag    = flag.Int("ticks", 3600, "Number of ticks to simulate (60 per second)")
	seedFlag     = flag.Int64("seed", 1, "Random seed")
	bombsFlag    = flag.Bool("bombs", false, "Let the autopilot use bombs")
	continueFlag = flag.Bool("continue", false, "Restart after game over instead of stopping")
	verbose      = flag.Bool("verbose", false, "显示详细调试信息")
)

// summary 一次模拟的结果
type summary struct {
	Profile string        `yaml:"profile"`
	Seed    int64         `yaml:"seed"`
	Ticks   int           `yaml:"ticks"`
	Frame   int           `yaml:"frame"`
	Mode    string        `yaml:"mode"`
	Level   int           `yaml:"level"`
	Score   int           `yaml:"score"`
	Lives   int           `yaml:"lives"`
	Bombs   int           `yaml:"bombs"`
	Games   int           `yaml:"games"`
	Stats   systems.Stats `yaml:"stats"`
}

// simOptions 模拟参数
type simOptions struct {
	Profile  *config.GameProfile
	Ticks    int
	Seed     int64
	Bombs    bool
	Continue bool
}

// simulate 运行模拟
// 默认在第一次 GameOver 时停止；Continue 时自动驾驶会重新开始，统计只保留最后一局
func simulate(opts simOptions) (summary, error) {
	loop, err := systems.NewGameLoop(opts.Profile, systems.Options{Seed: opts.Seed})
	if err != nil {
		return summary{}, fmt.Errorf("failed to create game loop: %w", err)
	}
	pilot := systems.NewAutopilot(loop)
	pilot.Bombs = opts.Bombs

	s := summary{Profile: opts.Profile.Name, Seed: opts.Seed}
	var snap systems.Snapshot
	for s.Ticks < opts.Ticks {
		loop.Tick(pilot.Poll(), systems.TickSeconds)
		s.Ticks++
		snap = loop.Snapshot()
		for _, e := range snap.Events {
			if e == game.EventGameOver {
				s.Games++
			}
		}
		if snap.Mode == game.ModeGameOver && !opts.Continue {
			break
		}
	}

	st := loop.State()
	s.Frame = st.FrameCount
	s.Mode = st.Mode.String()
	s.Level = snap.Level
	s.Score = st.Score
	s.Lives = st.Lives
	s.Bombs = st.Bombs
	s.Stats = loop.Stats()
	return s, nil
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	profile, err := config.LoadProfile(*profileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	s, err := simulate(simOptions{
		Profile:  profile,
		Ticks:    *ticksFlag,
		Seed:     *seedFlag,
		Bombs:    *bombsFlag,
		Continue: *continueFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(s); err != nil {
		fmt.Fprintf(os.Stderr, "❌ failed to encode summary: %v\n", err)
		os.Exit(1)
	}
}
