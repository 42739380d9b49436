package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 指定类别的场景桩
type stubScene struct {
	category SceneCategory
	updates  int
}

func (s *stubScene) Update(deltaTime float64)  { s.updates++ }
func (s *stubScene) Draw(screen *ebiten.Image) {}
func (s *stubScene) Category() SceneCategory   { return s.category }

// plainScene 不实现 Categorized 的场景桩
type plainScene struct{}

func (s *plainScene) Update(deltaTime float64)  {}
func (s *plainScene) Draw(screen *ebiten.Image) {}

// TestCategoryOf 未实现 Categorized 的场景按地图类别处理
func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name  string
		scene Scene
		want  SceneCategory
	}{
		{name: "nil scene", scene: nil, want: CategoryMap},
		{name: "plain scene", scene: &plainScene{}, want: CategoryMap},
		{name: "menu scene", scene: &stubScene{category: CategoryMenu}, want: CategoryMenu},
		{name: "map scene", scene: &stubScene{category: CategoryMap}, want: CategoryMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryOf(tt.scene); got != tt.want {
				t.Errorf("CategoryOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSceneManagerDrivesSession SwitchTo 在激活新场景之前驱动会话状态机
func TestSceneManagerDrivesSession(t *testing.T) {
	device := &fakeAudioDevice{}
	audio := NewMenuAudioController(device, &MenuConfigView{Track: "Theme1", Volume: 80, Pitch: 100})
	session := NewMenuSessionController(audio)
	sm := NewSceneManager(session)

	mapScene := &stubScene{category: CategoryMap}
	menuScene := &stubScene{category: CategoryMenu}
	itemScene := &stubScene{category: CategoryMenu}

	sm.SwitchTo(mapScene)
	if session.InMenu() {
		t.Fatal("switching to a map scene must not open a menu session")
	}

	sm.SwitchTo(menuScene)
	if !session.InMenu() {
		t.Fatal("switching to a menu scene must open a menu session")
	}
	playsAfterEnter := len(device.playbackCalls())

	sm.SwitchTo(itemScene) // menu -> menu
	if len(device.playbackCalls()) != playsAfterEnter {
		t.Error("menu->menu switch issued audio device calls")
	}

	sm.SwitchTo(mapScene)
	if session.InMenu() {
		t.Error("switching back to the map must close the menu session")
	}
	if sm.GetCurrentScene() != mapScene {
		t.Error("current scene not updated")
	}
}

// TestSceneManagerNilSession 无会话控制器时场景切换仍然工作
func TestSceneManagerNilSession(t *testing.T) {
	sm := NewSceneManager(nil)
	scene := &stubScene{category: CategoryMenu}
	sm.SwitchTo(scene)
	if sm.GetCurrentScene() != scene {
		t.Error("current scene not updated")
	}
}

// TestSceneManagerUpdateDispatch Update 只转发给当前场景
func TestSceneManagerUpdateDispatch(t *testing.T) {
	sm := NewSceneManager(nil)
	sm.Update(1.0 / 60.0) // 无场景时不应 panic

	scene := &stubScene{category: CategoryMap}
	sm.SwitchTo(scene)
	sm.Update(1.0 / 60.0)
	sm.Update(1.0 / 60.0)
	if scene.updates != 2 {
		t.Errorf("scene updates = %d, want 2", scene.updates)
	}
}

// TestSceneManagerFactory SwitchToID 通过工厂创建场景
func TestSceneManagerFactory(t *testing.T) {
	sm := NewSceneManager(nil)

	sm.SwitchToID("menu") // 工厂未设置：保持无场景
	if sm.GetCurrentScene() != nil {
		t.Error("SwitchToID without factory must not set a scene")
	}

	sm.SetSceneFactory(func(sceneID string) Scene {
		if sceneID == "menu" {
			return &stubScene{category: CategoryMenu}
		}
		return nil
	})

	sm.SwitchToID("menu")
	if CategoryOf(sm.GetCurrentScene()) != CategoryMenu {
		t.Error("factory-created scene not activated")
	}

	current := sm.GetCurrentScene()
	sm.SwitchToID("unknown") // 工厂返回 nil：保持当前场景
	if sm.GetCurrentScene() != current {
		t.Error("nil factory result must not replace the current scene")
	}
}
