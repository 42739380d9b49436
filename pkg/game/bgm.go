package game

import "time"

// BgmSnapshot 背景音乐快照
// 记录一条背景音轨的播放参数和播放位置，用于菜单会话结束后从中断处精确恢复播放。
//
// 不变量：快照一旦捕获即不可变；要么为 nil（捕获时没有音乐在播放），
// 要么所有字段完整填充。
type BgmSnapshot struct {
	// Track 音轨标识（资源ID），空字符串表示无音轨
	Track string
	// Volume 音量 0 ~ 100
	Volume int
	// Pitch 音调 50 ~ 150
	Pitch int
	// Pan 声像，引擎定义范围（-100 左 ~ 100 右）
	Pan int
	// Position 捕获时的播放位置
	Position time.Duration
}

// AudioDevice 音频设备接口
// 抽象宿主引擎的全局"当前播放音轨"设备。整个进程只有一个该设备实例，
// 并且只被 MenuAudioController 独占修改（单线程帧驱动模型，无需加锁）。
//
// 生产实现为 AudioManager（基于 Ebitengine audio），测试使用记录调用序列的桩实现。
type AudioDevice interface {
	// Stop 停止当前播放的音轨
	Stop()

	// Play 从头播放指定音轨
	Play(track string, volume, pitch, pan int)

	// CaptureCurrent 捕获当前播放状态
	// 返回 nil 表示当前没有音乐在播放
	CaptureCurrent() *BgmSnapshot

	// Resume 从快照记录的位置恢复播放
	// snapshot 为 nil 时不做任何事（恢复为静音）
	Resume(snapshot *BgmSnapshot)
}
