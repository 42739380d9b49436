package game

import (
	"log"
)

// AudioManager 音频管理器 —— AudioDevice 的生产实现
// 职责：
//   - 统一管理背景音乐与音效的播放
//   - 实现音量控制（从 SettingsManager 读取主音量设置）
//   - 维护进程全局唯一的"当前播放音轨"槽位，支持捕获与恢复
//
// 设计原则：
//   - 中心化管理：所有音频播放都通过 AudioManager
//   - 与设置联动：自动应用 SettingsManager 中的主音量和 BGM 开关
//   - 单线程帧驱动：只在主更新循环上被调用，无需加锁
//
// 已知限制：Ebitengine 播放器不支持运行时音调调整，Pitch 和 Pan
// 原样记录在快照中参与恢复往返，但不影响实际回放。
type AudioManager struct {
	resourceManager *ResourceManager // 资源管理器（用于加载音频）
	settingsManager *SettingsManager // 设置管理器（用于读取音量设置，可为 nil）

	currentTrack  string // 当前播放的音轨资源ID，空表示静音
	currentVolume int    // 当前音轨的逻辑音量 0 ~ 100
	currentPitch  int    // 当前音轨的音调 50 ~ 150
	currentPan    int    // 当前音轨的声像
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
	}
}

// Play 从头播放指定音轨（实现 AudioDevice）
// 同一时间只有一条背景音轨；当前音轨会先被停止。
//
// 参数：
//   - track: 音轨资源ID（如 "BGM_MENU_THEME"）
//   - volume: 逻辑音量 0 ~ 100
//   - pitch: 音调 50 ~ 150（记录用，见类型注释）
//   - pan: 声像（记录用）
func (am *AudioManager) Play(track string, volume, pitch, pan int) {
	if !am.bgmEnabled() {
		return
	}

	am.Stop()

	player := am.resourceManager.GetAudioPlayerByID(track)
	if player == nil {
		return
	}

	player.SetVolume(am.effectiveVolume(volume))
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind track %s: %v", track, err)
	}
	player.Play()

	am.currentTrack = track
	am.currentVolume = volume
	am.currentPitch = pitch
	am.currentPan = pan

	log.Printf("[AudioManager] Playing track: %s (vol=%d)", track, volume)
}

// Stop 停止当前播放的音轨（实现 AudioDevice）
// 播放器保留在缓存中，音轨槽位清空。
func (am *AudioManager) Stop() {
	if am.currentTrack == "" {
		return
	}
	if player := am.resourceManager.GetAudioPlayerByID(am.currentTrack); player != nil {
		player.Pause()
	}
	am.currentTrack = ""
	am.currentVolume = 0
	am.currentPitch = 0
	am.currentPan = 0
}

// CaptureCurrent 捕获当前播放状态（实现 AudioDevice）
//
// 返回：
//   - *BgmSnapshot: 当前音轨的完整快照；当前静音时返回 nil
func (am *AudioManager) CaptureCurrent() *BgmSnapshot {
	if am.currentTrack == "" {
		return nil
	}
	player := am.resourceManager.GetAudioPlayerByID(am.currentTrack)
	if player == nil || !player.IsPlaying() {
		return nil
	}
	return &BgmSnapshot{
		Track:    am.currentTrack,
		Volume:   am.currentVolume,
		Pitch:    am.currentPitch,
		Pan:      am.currentPan,
		Position: player.Position(),
	}
}

// Resume 从快照记录的位置恢复播放（实现 AudioDevice）
// snapshot 为 nil 时不做任何事（恢复为静音）。
func (am *AudioManager) Resume(snapshot *BgmSnapshot) {
	if snapshot == nil {
		return
	}
	if !am.bgmEnabled() {
		return
	}

	player := am.resourceManager.GetAudioPlayerByID(snapshot.Track)
	if player == nil {
		return
	}

	player.SetVolume(am.effectiveVolume(snapshot.Volume))
	if err := player.SetPosition(snapshot.Position); err != nil {
		log.Printf("[AudioManager] Warning: Failed to seek track %s: %v", snapshot.Track, err)
	}
	player.Play()

	am.currentTrack = snapshot.Track
	am.currentVolume = snapshot.Volume
	am.currentPitch = snapshot.Pitch
	am.currentPan = snapshot.Pan

	log.Printf("[AudioManager] Resumed track: %s (pos=%v)", snapshot.Track, snapshot.Position)
}

// RefreshVolume 重算当前音轨的播放器音量
// 主音量设置变化后调用，让正在播放的音轨立即反映新设置
func (am *AudioManager) RefreshVolume() {
	if am.currentTrack == "" {
		return
	}
	if player := am.resourceManager.GetAudioPlayerByID(am.currentTrack); player != nil {
		player.SetVolume(am.effectiveVolume(am.currentVolume))
	}
}

// CurrentTrack 返回当前播放的音轨资源ID，静音时为空字符串
func (am *AudioManager) CurrentTrack() string {
	return am.currentTrack
}

// PlaySound 播放单次音效（光标移动、确认等）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.resourceManager.GetSoundPlayerByID(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.masterVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// effectiveVolume 把逻辑音量 0~100 折算成播放器音量 0.0~1.0，并应用主音量
func (am *AudioManager) effectiveVolume(volume int) float64 {
	v := float64(volume) / 100.0
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v * am.masterVolume()
}

// masterVolume 读取主音量设置
func (am *AudioManager) masterVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MasterVolume
	}
	return 1.0 // 默认值
}

// bgmEnabled 读取 BGM 开关设置
func (am *AudioManager) bgmEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().BgmEnabled
	}
	return true
}
