package main

import (
	"flag"
	"log"

	"github.com/decker502/rpgmenu/pkg/app"
	"github.com/decker502/rpgmenu/pkg/config"
	"github.com/decker502/rpgmenu/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	startScene := flag.String("scene", "", "start scene id (map, menu, item)")
	flag.Parse()

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(assetsFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		StartScene: *startScene,
	})
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("RPG Menu Session")

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
