package game

import "log"

// MenuConfigView 菜单音频配置的只读视图
// 由 pkg/config 的插件参数加载产生，进程启动后不再变化
type MenuConfigView struct {
	// Track 菜单 BGM 音轨标识，空字符串表示功能禁用
	Track string
	// Volume 音量 0 ~ 100
	Volume int
	// Pitch 音调 50 ~ 150
	Pitch int
}

// MenuAudioController 菜单音频控制器
// 职责：
//   - 保证菜单 BGM 在一次菜单访问中最多启动一次
//   - 玩家返回外部世界时，让此前的音轨从中断处精确恢复
//   - 跨多个嵌套菜单场景保持同一个音频会话
//
// 状态约束：menuTrackActive 仅在"进入菜单"与对应的"返回地图"之间为 true；
// 菜单曲未启动时它永远不会为 true。savedSnapshot 由本控制器独占持有，
// 恰好消费一次后丢弃。
type MenuAudioController struct {
	device AudioDevice     // 音频设备（外部世界唯一共享可变资源）
	config *MenuConfigView // 菜单音频配置（只读）

	savedSnapshot   *BgmSnapshot // 进入菜单前捕获的播放状态，nil 表示当时静音
	menuTrackActive bool         // 菜单曲是否已启动
}

// NewMenuAudioController 创建菜单音频控制器
//
// 参数：
//   - device: 音频设备（不可为 nil）
//   - cfg: 菜单音频配置视图（不可为 nil；Track 为空表示禁用菜单曲）
func NewMenuAudioController(device AudioDevice, cfg *MenuConfigView) *MenuAudioController {
	return &MenuAudioController{
		device: device,
		config: cfg,
	}
}

// OnLeavingOutsideWorld 在控制权即将从非菜单上下文进入菜单上下文时调用，恰好一次
//
// 前置条件：当前未持有快照（由调用方的状态机保证，见 MenuSessionController）。
// 效果：捕获当前播放的音轨（名称、音量、音调、声像、位置）；
// 若当前静音则记录"无快照"。
func (c *MenuAudioController) OnLeavingOutsideWorld() {
	c.savedSnapshot = c.device.CaptureCurrent()
	if c.savedSnapshot != nil {
		log.Printf("[MenuAudio] Captured BGM: %s (pos=%v)", c.savedSnapshot.Track, c.savedSnapshot.Position)
	} else {
		log.Printf("[MenuAudio] No BGM playing, captured silence")
	}
}

// OnMenuSessionStart 在会话中第一个菜单场景激活时调用
//
// 效果：若菜单曲尚未启动且配置了音轨标识，停止当前播放并以配置的
// 音量/音调启动菜单曲。会话已激活时再次调用是空操作，
// 避免在菜单子场景间导航时重启音轨。
func (c *MenuAudioController) OnMenuSessionStart() {
	if c.menuTrackActive {
		return
	}
	if c.config.Track == "" {
		return
	}

	c.device.Stop()
	c.device.Play(c.config.Track, c.config.Volume, c.config.Pitch, 0)
	c.menuTrackActive = true
	log.Printf("[MenuAudio] Menu track started: %s (vol=%d pitch=%d)", c.config.Track, c.config.Volume, c.config.Pitch)
}

// OnReturnToOutsideWorld 在菜单会话结束、控制权返回非菜单上下文时调用
//
// 效果：若菜单曲已启动则停止播放，并在持有快照时从保存的位置恢复；
// 无条件清空 menuTrackActive 和 savedSnapshot。
// 缺失快照不是错误：恢复为静音即可。
func (c *MenuAudioController) OnReturnToOutsideWorld() {
	if c.menuTrackActive {
		c.device.Stop()
		if c.savedSnapshot != nil {
			c.device.Resume(c.savedSnapshot)
			log.Printf("[MenuAudio] Restored BGM: %s (pos=%v)", c.savedSnapshot.Track, c.savedSnapshot.Position)
		}
	}
	c.menuTrackActive = false
	c.savedSnapshot = nil
}

// IsMenuTrackActive 返回菜单曲是否处于激活状态
func (c *MenuAudioController) IsMenuTrackActive() bool {
	return c.menuTrackActive
}
