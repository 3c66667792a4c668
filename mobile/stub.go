//go:build !mobile

// 普通构建时 mobile 包不包含游戏入口（入口在 mobile.go，需要 -tags mobile）
package mobile

// Enabled 当前是否为 ebitenmobile 构建
const Enabled = false

// Dummy 与 mobile.go 中的同名函数对应，保证两种构建导出相同的符号
func Dummy() {}
