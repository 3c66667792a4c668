// validate-profile 检查配置档能否被游戏加载
//
// 对每个配置档依次检查：YAML 解析与字段校验、弹幕脚本编译、对话脚本读取。
// 不带参数时检查 data/profiles/ 下的全部配置档。
//
// 使用方法:
//
//	go run ./cmd/validate-profile [name|path.yaml ...]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/systems"
)

var verbose = flag.Bool("verbose", false, "显示详细调试信息")

// result 一个配置档的检查结果
type result struct {
	Source  string
	Profile *config.GameProfile
	Err     error
}

// validate 检查一个配置档
// 创建 GameLoop 会编译全部弹幕脚本并读取对话脚本，和游戏启动时走同一条路径
func validate(source string) result {
	r := result{Source: source}
	profile, err := config.LoadProfile(source)
	if err != nil {
		r.Err = err
		return r
	}
	r.Profile = profile

	if _, err := systems.NewGameLoop(profile, systems.Options{Seed: 1}); err != nil {
		r.Err = err
	}
	return r
}

// defaultSources data/profiles/ 下的全部 YAML 文件，按名称排序
func defaultSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func report(w io.Writer, results []result) (failed int) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "❌ %s: %v\n", r.Source, r.Err)
			failed++
			continue
		}
		p := r.Profile
		fmt.Fprintf(w, "✅ %s: %q %vx%v, boss phases %d, boss policy %s\n",
			r.Source, p.Name, p.Canvas.Width, p.Canvas.Height, len(p.Enemies.Boss.Phases), p.Spawn.Boss.Policy)
	}
	if failed > 0 {
		fmt.Fprintf(w, "❌ %d/%d profiles failed\n", failed, len(results))
	} else {
		fmt.Fprintf(w, "✅ All %d profiles OK\n", len(results))
	}
	return failed
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	sources := flag.Args()
	if len(sources) == 0 {
		var err error
		sources, err = defaultSources(filepath.Join("data", "profiles"))
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
	}

	results := make([]result, 0, len(sources))
	for _, s := range sources {
		results = append(results, validate(s))
	}
	if report(os.Stdout, results) > 0 {
		os.Exit(1)
	}
}
