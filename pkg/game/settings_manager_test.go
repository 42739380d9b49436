package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.MasterVolume != 1.0 {
		t.Errorf("MasterVolume: got %v, want 1.0", settings.MasterVolume)
	}

	if !settings.BgmEnabled {
		t.Error("BgmEnabled: got false, want true")
	}

	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	gdataManager := newTestGdataManager(t)

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	// 验证初始化后使用默认设置
	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}

	if settings.MasterVolume != 1.0 {
		t.Errorf("Initial MasterVolume: got %v, want 1.0", settings.MasterVolume)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	// 降级模式下仍然可用，使用默认设置
	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	if !settings.BgmEnabled {
		t.Error("BgmEnabled: got false, want true in degraded mode")
	}

	// 降级模式下保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode returned error: %v", err)
	}
}

// TestSettingsSaveLoad 测试设置的保存和重新加载
func TestSettingsSaveLoad(t *testing.T) {
	gdataManager := newTestGdataManager(t)

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	// 修改设置并保存
	sm.SetMasterVolume(0.4)
	sm.SetBgmEnabled(false)
	sm.SetFullscreen(true)

	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 用同一个存储重新创建管理器，验证加载结果
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() (reload) error: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.MasterVolume != 0.4 {
		t.Errorf("MasterVolume after reload: got %v, want 0.4", settings.MasterVolume)
	}
	if settings.BgmEnabled {
		t.Error("BgmEnabled after reload: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Fullscreen after reload: got false, want true")
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled after reload: got false, want true (unchanged)")
	}
}

// TestSetMasterVolumeClamp 测试音量设置的范围限制
func TestSetMasterVolumeClamp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "normal", input: 0.5, want: 0.5},
		{name: "below range", input: -0.3, want: 0.0},
		{name: "above range", input: 1.8, want: 1.0},
		{name: "lower bound", input: 0.0, want: 0.0},
		{name: "upper bound", input: 1.0, want: 1.0},
	}

	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetMasterVolume(tt.input)
			if got := sm.GetSettings().MasterVolume; got != tt.want {
				t.Errorf("SetMasterVolume(%v): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestLoadClampsMasterVolume 外部写入的越界主音量在加载时被截断
// ebiten 播放器对 [0,1] 之外的音量会 panic，加载路径必须和 setter 一样夹取
func TestLoadClampsMasterVolume(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want float64
	}{
		{
			name: "above range",
			blob: "masterVolume: 5.0\nbgmEnabled: true\nsoundEnabled: true\nfullscreen: false\n",
			want: 1.0,
		},
		{
			name: "below range",
			blob: "masterVolume: -2.0\nbgmEnabled: true\nsoundEnabled: true\nfullscreen: false\n",
			want: 0.0,
		},
		{
			name: "in range untouched",
			blob: "masterVolume: 0.6\nbgmEnabled: true\nsoundEnabled: true\nfullscreen: false\n",
			want: 0.6,
		},
	}

	gdataManager := newTestGdataManager(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte(tt.blob)); err != nil {
				t.Fatalf("SaveObjectProp() error: %v", err)
			}

			sm, err := NewSettingsManager(gdataManager)
			if err != nil {
				t.Fatalf("NewSettingsManager() error: %v", err)
			}

			if got := sm.GetSettings().MasterVolume; got != tt.want {
				t.Errorf("loaded MasterVolume = %v, want %v", got, tt.want)
			}
		})
	}
}

// newTestGdataManager 创建使用临时目录的 gdata 管理器
func newTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}
