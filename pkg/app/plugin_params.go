package app

import (
	"github.com/decker502/rpgmenu/pkg/embedded"
)

// pluginParamsPath 插件参数文件路径
const pluginParamsPath = "assets/config/plugins.json"

// readPluginParams 读取嵌入的插件参数 JSON
func readPluginParams() ([]byte, error) {
	return embedded.ReadFile(pluginParamsPath)
}
