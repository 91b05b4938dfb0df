package main

import (
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/Tharlwin/nitroshare-go/internal/config"
	"github.com/Tharlwin/nitroshare-go/internal/coordinator"
	"github.com/Tharlwin/nitroshare-go/internal/notify"
	"github.com/Tharlwin/nitroshare-go/internal/webserver"
)

// String can be overwritten by using linker flags: -ldflags "-X main.version=VERSION"
var version string = "DEVELOPMENT_VERSION"

func main() {
	slog.Info("", "Version", version)

	cfg, err := config.ReadConfig(config.DefaultConfigFileName())
	if err != nil {
		panic(fmt.Errorf("failed to read config file: %w", err))
	}
	slog.Info("Config file read", "file", config.GetCurrentConfigFilePath())

	svc := coordinator.NewService(coordinator.Options{
		Surface:          notify.NewLogSurface(),
		SoundEnabled:     config.SoundEnabled,
		ConcurrencyLimit: cfg.Misc.ConcurrencyLimit,
		ProgressInterval: time.Duration(cfg.Notifications.ProgressIntervalMs) * time.Millisecond,
	})

	s := webserver.NewTransferServer(svc, cfg.Misc.Port)
	log.Fatal(s.ListenAndServe())
}
