package main

import (
	"embed"
	"fmt"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/Tharlwin/nitroshare-go/internal/config"
)

//go:embed all:frontend/dist
var assets embed.FS

// String can be overwritten by using linker flags: -ldflags "-X main.version=VERSION"
var version string = "DEVELOPMENT_VERSION"

func main() {

	log.Printf("Version %s", version)

	cfg, err := config.ReadConfig(config.DefaultConfigFileName())
	if err != nil {
		log.Print(fmt.Errorf("failed to read config file: %w", err))
	}
	log.Printf("Config file used: %s", config.GetCurrentConfigFilePath())

	app := NewApp(cfg, version)

	err = wails.Run(&options.App{
		Title:  "nitroshare",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnBeforeClose:    app.beforeClose,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
