package game

import (
	"reflect"
	"testing"
	"time"
)

// newTestSession 构造带记录桩设备的会话控制器
func newTestSession(current *BgmSnapshot, track string) (*MenuSessionController, *fakeAudioDevice) {
	device := &fakeAudioDevice{current: current}
	audio := NewMenuAudioController(device, &MenuConfigView{Track: track, Volume: 80, Pitch: 100})
	return NewMenuSessionController(audio), device
}

// TestSessionOutsideToMenu Outside → InMenu 按顺序触发捕获和菜单曲启动
func TestSessionOutsideToMenu(t *testing.T) {
	sc, device := newTestSession(&BgmSnapshot{Track: "Field", Volume: 90, Pitch: 100, Position: time.Second}, "Theme1")

	sc.OnSceneTransition(CategoryMenu)

	if !sc.InMenu() {
		t.Fatal("controller should be in menu state")
	}
	// 捕获必须严格先于菜单曲启动
	want := []string{"capture()", "stop()", "play(Theme1,80,100,0)"}
	if !reflect.DeepEqual(device.calls, want) {
		t.Errorf("device calls = %v, want %v", device.calls, want)
	}
}

// TestSessionMenuToMenu 菜单子场景间导航不触碰音频会话
func TestSessionMenuToMenu(t *testing.T) {
	sc, device := newTestSession(nil, "Theme1")

	sc.OnSceneTransition(CategoryMenu) // outside -> menu
	callsAfterEnter := len(device.calls)

	sc.OnSceneTransition(CategoryMenu) // menu -> menu（如 主菜单 -> 物品）
	sc.OnSceneTransition(CategoryMenu)

	if len(device.calls) != callsAfterEnter {
		t.Errorf("menu->menu transitions issued device calls: %v", device.calls[callsAfterEnter:])
	}
	if !sc.InMenu() {
		t.Error("controller should still be in menu state")
	}
}

// TestSessionFullRoundTrip 完整会话：进入（含子场景导航）后退出，恢复外部音轨
func TestSessionFullRoundTrip(t *testing.T) {
	sc, device := newTestSession(&BgmSnapshot{Track: "Field", Volume: 90, Pitch: 100, Position: 12500 * time.Millisecond}, "Theme1")

	sc.OnSceneTransition(CategoryMenu) // 进入主菜单
	sc.OnSceneTransition(CategoryMenu) // 主菜单 -> 物品
	sc.OnSceneTransition(CategoryMenu) // 物品 -> 主菜单
	sc.OnSceneTransition(CategoryMap)  // 返回地图

	if sc.InMenu() {
		t.Error("controller should be back outside")
	}

	want := []string{
		"stop()",
		"play(Theme1,80,100,0)",
		"stop()",
		"resume(Field,12.5s)",
	}
	if got := device.playbackCalls(); !reflect.DeepEqual(got, want) {
		t.Errorf("device calls = %v, want %v", got, want)
	}
}

// TestSessionOutsideToOutside 地图间切换不属于菜单会话，不触发任何动作
func TestSessionOutsideToOutside(t *testing.T) {
	sc, device := newTestSession(&BgmSnapshot{Track: "Field", Volume: 90, Pitch: 100}, "Theme1")

	sc.OnSceneTransition(CategoryMap)
	sc.OnSceneTransition(CategoryMap)

	if len(device.calls) != 0 {
		t.Errorf("outside->outside transitions issued device calls: %v", device.calls)
	}
	if sc.InMenu() {
		t.Error("controller should remain outside")
	}
}
