package game

import "testing"

// TestPathForID 资源ID → 文件路径映射（base_path 与相对路径拼接）
func TestPathForID(t *testing.T) {
	rm := NewResourceManager(nil)
	rm.config = &ResourceConfig{
		Version:  "1.0",
		BasePath: "assets",
		Groups: map[string]ResourceGroup{
			"menu": {
				Images: []ImageResource{
					{ID: "IMAGE_MENU_PARALLAX", Path: "images/parallax/clouds.png"},
				},
				Sounds: []SoundResource{
					{ID: "BGM_MENU_THEME", Path: "audio/bgm/theme1.ogg"},
				},
			},
		},
	}
	rm.buildResourceMap()

	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "image id", id: "IMAGE_MENU_PARALLAX", want: "assets/images/parallax/clouds.png"},
		{name: "sound id", id: "BGM_MENU_THEME", want: "assets/audio/bgm/theme1.ogg"},
		{name: "unknown id", id: "NO_SUCH_ID", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rm.PathForID(tt.id); got != tt.want {
				t.Errorf("PathForID(%s) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

// TestGetImageByIDUnknown 未知资源ID降级为 nil，不 panic
func TestGetImageByIDUnknown(t *testing.T) {
	rm := NewResourceManager(nil)
	if img := rm.GetImageByID("NO_SUCH_ID"); img != nil {
		t.Error("GetImageByID with unknown id should return nil")
	}
	if player := rm.GetSoundPlayerByID("NO_SUCH_ID"); player != nil {
		t.Error("GetSoundPlayerByID with unknown id should return nil")
	}
}
