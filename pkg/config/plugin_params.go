package config

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// 插件参数加载
//
// 宿主引擎把插件参数以 JSON 形式存储，所有值都是字符串（即使语义上是数字）。
// 本文件实现 "parse-or-default" 契约：任何缺失或无法解析的值
// 都在本地替换为文档化的默认值，绝不向外抛错（ConfigInvalid 不是可见错误）。
// 配置在进程启动时加载一次，之后只读。

// MenuConfig 菜单会话配置
type MenuConfig struct {
	// BackgroundImage 菜单背景图资源ID，空字符串表示禁用视差背景
	BackgroundImage string
	// ParallaxVX 水平视差速度（每 tick 像素），默认 1
	ParallaxVX float64
	// ParallaxVY 垂直视差速度（每 tick 像素），默认 0
	ParallaxVY float64
	// MenuTrack 菜单 BGM 资源ID，空字符串表示禁用菜单曲
	MenuTrack string
	// MenuVolume 菜单 BGM 音量 0 ~ 100，默认 80
	MenuVolume int
	// MenuPitch 菜单 BGM 音调 50 ~ 150，默认 100
	MenuPitch int
	// FieldTrack 地图场景 BGM 资源ID，空字符串表示地图静音
	FieldTrack string
	// FieldVolume 地图 BGM 音量 0 ~ 100，默认 80
	FieldVolume int
}

// 文档化默认值
const (
	DefaultParallaxVX = 1.0
	DefaultParallaxVY = 0.0
	DefaultMenuVolume = 80
	DefaultMenuPitch  = 100

	minVolume = 0
	maxVolume = 100
	minPitch  = 50
	maxPitch  = 150
)

// DefaultMenuConfig 返回全部取默认值的菜单配置
func DefaultMenuConfig() *MenuConfig {
	return &MenuConfig{
		BackgroundImage: "",
		ParallaxVX:      DefaultParallaxVX,
		ParallaxVY:      DefaultParallaxVY,
		MenuTrack:       "",
		MenuVolume:      DefaultMenuVolume,
		MenuPitch:       DefaultMenuPitch,
		FieldTrack:      "",
		FieldVolume:     DefaultMenuVolume,
	}
}

// LoadMenuConfig 从插件参数 JSON 中加载菜单配置
//
// 参数：
//   - data: 插件参数 JSON（如 assets/config/plugins.json 的内容）
//
// 返回：
//   - *MenuConfig: 配置实例，缺失/非法字段已替换为默认值
//
// 解析规则：
//   - 字符串字段：缺失 ⇒ 默认；前后空白被去除
//   - 数字字段：缺失或非数字（如 "abc"）⇒ 默认；越界 ⇒ 截断到合法范围
func LoadMenuConfig(data []byte) *MenuConfig {
	cfg := DefaultMenuConfig()
	if len(data) == 0 {
		return cfg
	}

	cfg.BackgroundImage = stringParam(data, "CustomMenu.backgroundImage", cfg.BackgroundImage)
	cfg.ParallaxVX = floatParam(data, "CustomMenu.parallaxHorizontalSpeed", DefaultParallaxVX)
	cfg.ParallaxVY = floatParam(data, "CustomMenu.parallaxVerticalSpeed", DefaultParallaxVY)
	cfg.MenuTrack = stringParam(data, "CustomMenu.menuTrack", cfg.MenuTrack)
	cfg.MenuVolume = clampInt(intParam(data, "CustomMenu.menuVolume", DefaultMenuVolume), minVolume, maxVolume)
	cfg.MenuPitch = clampInt(intParam(data, "CustomMenu.menuPitch", DefaultMenuPitch), minPitch, maxPitch)
	cfg.FieldTrack = stringParam(data, "CustomMenu.fieldTrack", cfg.FieldTrack)
	cfg.FieldVolume = clampInt(intParam(data, "CustomMenu.fieldVolume", DefaultMenuVolume), minVolume, maxVolume)

	return cfg
}

// stringParam 读取字符串参数，缺失时返回默认值
func stringParam(data []byte, path, def string) string {
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return def
	}
	return strings.TrimSpace(res.String())
}

// floatParam 读取数字参数
// 引擎把数字参数存成字符串，所以这里显式 ParseFloat：
// 非数字输入（如 "abc"）按 parse-or-default 契约返回默认值，而不是 0
func floatParam(data []byte, path string, def float64) float64 {
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(res.String()), 64)
	if err != nil {
		return def
	}
	return v
}

// intParam 读取整数参数，非整数输入返回默认值
func intParam(data []byte, path string, def int) int {
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(res.String()))
	if err != nil {
		return def
	}
	return v
}

// clampInt 将值限制在 [min, max] 范围内
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
