// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：创建音频上下文、资源/设置/音频
// 管理器、菜单会话控制器和场景管理器，并把它们接到 ebiten 主循环上。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/rpgmenu/pkg/config"
	"github.com/decker502/rpgmenu/pkg/embedded"
	"github.com/decker502/rpgmenu/pkg/game"
	"github.com/decker502/rpgmenu/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StartScene 指定启动场景ID（为空则默认地图场景）
	StartScene string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	audioManager             *game.AudioManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 嵌入资源必须先于任何资源加载初始化
	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("嵌入资源未初始化，请先调用 embedded.Init()")
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器并加载资源配置
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 初始化设置管理器（gdata 打开失败时降级为仅内存设置）
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "rpgmenu"}); err == nil {
		gdataManager = m
	} else {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: settings load failed: %v", err)
	}

	// 加载插件参数（缺失/非法值按 parse-or-default 替换为默认值）
	menuConfig := loadMenuConfig()

	// 初始化音频管理器与菜单会话状态机
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	menuAudio := game.NewMenuAudioController(audioManager, &game.MenuConfigView{
		Track:  menuConfig.MenuTrack,
		Volume: menuConfig.MenuVolume,
		Pitch:  menuConfig.MenuPitch,
	})
	session := game.NewMenuSessionController(menuAudio)
	log.Printf("[App] AudioManager initialized")

	// 创建场景管理器并绑定场景工厂
	sceneManager := game.NewSceneManager(session)
	env := &scenes.Env{
		Resources: resourceManager,
		Manager:   sceneManager,
		Audio:     audioManager,
		Party:     game.DefaultParty(),
		Menu:      menuConfig,
	}
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(env))

	// 启动场景
	startScene := cfg.StartScene
	if startScene == "" {
		startScene = scenes.SceneMap
	}
	log.Printf("[App] Starting scene: %s", startScene)
	sceneManager.SwitchToID(startScene)

	// 应用显示设置
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadMenuConfig 读取插件参数文件
// 文件缺失不是错误：返回全默认配置
func loadMenuConfig() *config.MenuConfig {
	data, err := readPluginParams()
	if err != nil {
		log.Printf("[App] Warning: plugin params unavailable: %v (using defaults)", err)
		return config.DefaultMenuConfig()
	}
	return config.LoadMenuConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(!isFullscreen)
		a.saveSettings()
	}

	// 音频快捷键：F9 背景音乐开关，F10 音效开关，-/= 主音量增减
	a.handleAudioKeys()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// masterVolumeStep 主音量快捷键的单次步长
const masterVolumeStep = 0.1

// handleAudioKeys 处理音频设置快捷键
// 所有变更立即持久化，主音量变化实时作用到正在播放的音轨
func (a *App) handleAudioKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		enabled := !a.settingsManager.GetSettings().BgmEnabled
		a.settingsManager.SetBgmEnabled(enabled)
		if !enabled {
			a.audioManager.Stop()
		}
		log.Printf("[App] BGM enabled: %v", enabled)
		a.saveSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		enabled := !a.settingsManager.GetSettings().SoundEnabled
		a.settingsManager.SetSoundEnabled(enabled)
		log.Printf("[App] Sound enabled: %v", enabled)
		a.saveSettings()
	}

	volumeDelta := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		volumeDelta = -masterVolumeStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		volumeDelta = masterVolumeStep
	}
	if volumeDelta != 0 {
		a.settingsManager.SetMasterVolume(a.settingsManager.GetSettings().MasterVolume + volumeDelta)
		a.audioManager.RefreshVolume()
		log.Printf("[App] Master volume: %.1f", a.settingsManager.GetSettings().MasterVolume)
		a.saveSettings()
	}
}

// saveSettings 持久化设置，失败只记录警告
func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
