package systems

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/types"
)

const (
	// 脚本发射器的内存上限（对象分配次数）
	scriptMaxAllocs = 20000

	// 单次运行的时间上限，超时的脚本被中止
	scriptTimeout = 20 * time.Millisecond
)

// ScriptEmitter 由 tengo 脚本计算弹道的发射器
//
// 脚本可读取的全局变量：x, y, frame, count, speed, player_x, player_y, has_player。
// 脚本需定义 bullets 数组，每项为 [x, y, vx, vy]。
type ScriptEmitter struct {
	path     string
	compiled *tengo.Compiled
	count    int
	speed    float64
	pattern  types.BulletPattern
}

// NewScriptEmitter 读取并编译脚本
func NewScriptEmitter(cfg config.EmitterConfig) (*ScriptEmitter, error) {
	src, err := config.ReadDataFile(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern script %s: %w", cfg.Script, err)
	}
	e, err := CompilePatternScript(cfg.Script, src)
	if err != nil {
		return nil, err
	}
	e.count = cfg.Count
	e.speed = cfg.Speed
	e.pattern = cfg.BulletPattern()
	return e, nil
}

// CompilePatternScript 编译脚本源码
func CompilePatternScript(name string, src []byte) (*ScriptEmitter, error) {
	script := tengo.NewScript(src)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("frame", 0)
	_ = script.Add("count", 0)
	_ = script.Add("speed", 0.0)
	_ = script.Add("player_x", 0.0)
	_ = script.Add("player_y", 0.0)
	_ = script.Add("has_player", false)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	script.SetMaxAllocs(scriptMaxAllocs)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern script %s: %w", name, err)
	}

	return &ScriptEmitter{path: name, compiled: compiled, pattern: types.BulletNormal}, nil
}

// Emit 实现 AttackEmitter
// 脚本运行出错（包括 VM 内部 panic 和超时）时记录日志并不发射
func (e *ScriptEmitter) Emit(ctx EmitContext) []BulletSpec {
	c := e.compiled
	_ = c.Set("x", ctx.X)
	_ = c.Set("y", ctx.Y)
	_ = c.Set("frame", ctx.Frame)
	_ = c.Set("count", e.count)
	_ = c.Set("speed", e.speed)
	_ = c.Set("player_x", ctx.PlayerX)
	_ = c.Set("player_y", ctx.PlayerY)
	_ = c.Set("has_player", ctx.HasPlayer)

	runCtx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	if err := c.RunContext(runCtx); err != nil {
		log.Printf("[ScriptEmitter] %s: run error: %v", e.path, err)
		return nil
	}
	if !c.IsDefined("bullets") {
		log.Printf("[ScriptEmitter] %s: bullets is not defined", e.path)
		return nil
	}

	raw := c.Get("bullets").Array()
	out := make([]BulletSpec, 0, len(raw))
	for i, item := range raw {
		vals, ok := item.([]interface{})
		if !ok || len(vals) < 4 {
			log.Printf("[ScriptEmitter] %s: bullets[%d] is not [x, y, vx, vy]", e.path, i)
			continue
		}
		var f [4]float64
		valid := true
		for j := 0; j < 4; j++ {
			f[j], ok = toFloat(vals[j])
			if !ok {
				valid = false
				break
			}
		}
		if !valid {
			log.Printf("[ScriptEmitter] %s: bullets[%d] has a non-numeric value", e.path, i)
			continue
		}
		out = append(out, BulletSpec{X: f[0], Y: f[1], VX: f[2], VY: f[3], Pattern: e.pattern})
	}
	return out
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
