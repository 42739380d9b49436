package config

import "testing"

// TestLoadMenuConfigDefaults 空数据返回全部默认值
func TestLoadMenuConfigDefaults(t *testing.T) {
	cfg := LoadMenuConfig(nil)

	if cfg.ParallaxVX != 1.0 {
		t.Errorf("ParallaxVX: got %v, want 1.0", cfg.ParallaxVX)
	}
	if cfg.ParallaxVY != 0.0 {
		t.Errorf("ParallaxVY: got %v, want 0.0", cfg.ParallaxVY)
	}
	if cfg.BackgroundImage != "" {
		t.Errorf("BackgroundImage: got %q, want empty", cfg.BackgroundImage)
	}
	if cfg.MenuTrack != "" {
		t.Errorf("MenuTrack: got %q, want empty", cfg.MenuTrack)
	}
	if cfg.MenuVolume != 80 {
		t.Errorf("MenuVolume: got %d, want 80", cfg.MenuVolume)
	}
	if cfg.MenuPitch != 100 {
		t.Errorf("MenuPitch: got %d, want 100", cfg.MenuPitch)
	}
}

// TestLoadMenuConfigFull 完整配置的解析
func TestLoadMenuConfigFull(t *testing.T) {
	data := []byte(`{
		"CustomMenu": {
			"backgroundImage": "IMAGE_MENU_PARALLAX",
			"parallaxHorizontalSpeed": "2.5",
			"parallaxVerticalSpeed": "-1",
			"menuTrack": "BGM_MENU_THEME",
			"menuVolume": "65",
			"menuPitch": "110",
			"fieldTrack": "BGM_FIELD",
			"fieldVolume": "90"
		}
	}`)

	cfg := LoadMenuConfig(data)

	if cfg.BackgroundImage != "IMAGE_MENU_PARALLAX" {
		t.Errorf("BackgroundImage: got %q", cfg.BackgroundImage)
	}
	if cfg.ParallaxVX != 2.5 {
		t.Errorf("ParallaxVX: got %v, want 2.5", cfg.ParallaxVX)
	}
	if cfg.ParallaxVY != -1.0 {
		t.Errorf("ParallaxVY: got %v, want -1.0", cfg.ParallaxVY)
	}
	if cfg.MenuTrack != "BGM_MENU_THEME" {
		t.Errorf("MenuTrack: got %q", cfg.MenuTrack)
	}
	if cfg.MenuVolume != 65 {
		t.Errorf("MenuVolume: got %d, want 65", cfg.MenuVolume)
	}
	if cfg.MenuPitch != 110 {
		t.Errorf("MenuPitch: got %d, want 110", cfg.MenuPitch)
	}
	if cfg.FieldTrack != "BGM_FIELD" {
		t.Errorf("FieldTrack: got %q", cfg.FieldTrack)
	}
	if cfg.FieldVolume != 90 {
		t.Errorf("FieldVolume: got %d, want 90", cfg.FieldVolume)
	}
}

// TestLoadMenuConfigParseOrDefault 非法值退回默认值而不是 0
func TestLoadMenuConfigParseOrDefault(t *testing.T) {
	tests := []struct {
		name string
		data string
		want func(t *testing.T, cfg *MenuConfig)
	}{
		{
			name: "non-numeric parallax speed",
			data: `{"CustomMenu": {"parallaxHorizontalSpeed": "abc"}}`,
			want: func(t *testing.T, cfg *MenuConfig) {
				if cfg.ParallaxVX != 1.0 {
					t.Errorf("ParallaxVX: got %v, want 1.0", cfg.ParallaxVX)
				}
			},
		},
		{
			name: "empty string parallax speed",
			data: `{"CustomMenu": {"parallaxHorizontalSpeed": ""}}`,
			want: func(t *testing.T, cfg *MenuConfig) {
				if cfg.ParallaxVX != 1.0 {
					t.Errorf("ParallaxVX: got %v, want 1.0", cfg.ParallaxVX)
				}
			},
		},
		{
			name: "non-numeric volume",
			data: `{"CustomMenu": {"menuVolume": "loud"}}`,
			want: func(t *testing.T, cfg *MenuConfig) {
				if cfg.MenuVolume != 80 {
					t.Errorf("MenuVolume: got %d, want 80", cfg.MenuVolume)
				}
			},
		},
		{
			name: "malformed json",
			data: `{not json`,
			want: func(t *testing.T, cfg *MenuConfig) {
				if cfg.ParallaxVX != 1.0 || cfg.MenuVolume != 80 {
					t.Errorf("got ParallaxVX=%v MenuVolume=%d, want defaults", cfg.ParallaxVX, cfg.MenuVolume)
				}
			},
		},
		{
			name: "missing CustomMenu section",
			data: `{"OtherPlugin": {"foo": "1"}}`,
			want: func(t *testing.T, cfg *MenuConfig) {
				if cfg.ParallaxVX != 1.0 || cfg.MenuTrack != "" {
					t.Errorf("got ParallaxVX=%v MenuTrack=%q, want defaults", cfg.ParallaxVX, cfg.MenuTrack)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, LoadMenuConfig([]byte(tt.data)))
		})
	}
}

// TestLoadMenuConfigClamp 越界数值被截断到合法范围
func TestLoadMenuConfigClamp(t *testing.T) {
	data := []byte(`{
		"CustomMenu": {
			"menuVolume": "250",
			"menuPitch": "10",
			"fieldVolume": "-5"
		}
	}`)

	cfg := LoadMenuConfig(data)

	if cfg.MenuVolume != 100 {
		t.Errorf("MenuVolume: got %d, want 100", cfg.MenuVolume)
	}
	if cfg.MenuPitch != 50 {
		t.Errorf("MenuPitch: got %d, want 50", cfg.MenuPitch)
	}
	if cfg.FieldVolume != 0 {
		t.Errorf("FieldVolume: got %d, want 0", cfg.FieldVolume)
	}
}

// TestLoadMenuConfigTrimsWhitespace 字符串参数去除前后空白
func TestLoadMenuConfigTrimsWhitespace(t *testing.T) {
	data := []byte(`{"CustomMenu": {"menuTrack": "  BGM_MENU_THEME  "}}`)
	cfg := LoadMenuConfig(data)

	if cfg.MenuTrack != "BGM_MENU_THEME" {
		t.Errorf("MenuTrack: got %q, want %q", cfg.MenuTrack, "BGM_MENU_THEME")
	}
}
