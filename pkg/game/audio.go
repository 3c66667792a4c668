package game

import "log"

// AudioController 背景音乐控制
// 调用是"发射后不管"的：实现内部记录并吞掉失败，不向游戏循环返回错误
type AudioController interface {
	PlayBGM()
	StopBGM()
}

// NopAudio 静音实现（无音频设备或测试时使用）
type NopAudio struct{}

func (NopAudio) PlayBGM() {}
func (NopAudio) StopBGM() {}

// LoggingAudio 只记录调用的实现，用于无头模拟
type LoggingAudio struct {
	Plays, Stops int
}

func (a *LoggingAudio) PlayBGM() {
	a.Plays++
	log.Printf("[Audio] PlayBGM (#%d)", a.Plays)
}

func (a *LoggingAudio) StopBGM() {
	a.Stops++
	log.Printf("[Audio] StopBGM (#%d)", a.Stops)
}
