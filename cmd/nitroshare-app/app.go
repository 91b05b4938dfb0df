package main

import (
	"context"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/Tharlwin/nitroshare-go/internal/config"
	"github.com/Tharlwin/nitroshare-go/internal/coordinator"
	"github.com/Tharlwin/nitroshare-go/internal/notify"
	"github.com/Tharlwin/nitroshare-go/internal/transfer"
	"github.com/Tharlwin/nitroshare-go/internal/webserver"
)

// WailsSurface renders notifications by emitting events to the frontend.
type WailsSurface struct {
	AppContext context.Context
}

func (w *WailsSurface) Start(id notify.ID, state notify.State) {
	runtime.EventsEmit(w.AppContext, "notification-started", id, state)
}

func (w *WailsSurface) Update(id notify.ID, state notify.State) {
	runtime.EventsEmit(w.AppContext, "notification-updated", id, state)
}

func (w *WailsSurface) Stop(id notify.ID) {
	runtime.EventsEmit(w.AppContext, "notification-stopped", id)
}

// App struct
type App struct {
	ctx     context.Context
	svc     *coordinator.Service
	config  config.Config
	version string
}

// NewApp creates a new App application struct
func NewApp(cfg config.Config, version string) *App {
	return &App{config: cfg, version: version}
}

// Show prompt before closing the app
func (a *App) beforeClose(ctx context.Context) (prevent bool) {
	dialog, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:    runtime.QuestionDialog,
		Title:   "Quit?",
		Message: "Are you sure you want to quit? This will stop all active transfers.",
	})

	if err != nil {
		return false
	}
	return dialog != "Yes"
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.svc = coordinator.NewService(coordinator.Options{
		Surface:          notify.NewHub(notify.NewLogSurface(), &WailsSurface{AppContext: ctx}),
		SoundEnabled:     config.SoundEnabled,
		ConcurrencyLimit: a.config.Misc.ConcurrencyLimit,
		ProgressInterval: time.Duration(a.config.Notifications.ProgressIntervalMs) * time.Millisecond,
		Context:          ctx,
	})

	go func(port int) {
		s := webserver.NewTransferServer(a.svc, port)
		if err := s.ListenAndServe(); err != nil {
			runtime.LogError(a.ctx, err.Error())
		}
	}(a.config.Misc.Port)
}

func (a *App) Transfers() []webserver.TransferItem {
	statuses := a.svc.Transfers()
	items := make([]webserver.TransferItem, 0, len(statuses))
	for _, s := range statuses {
		items = append(items, webserver.TransferItem{
			ID:        int64(s.ID),
			Direction: s.Direction.String(),
			Remote:    s.Remote,
			Phase:     s.Phase.String(),
			Progress:  s.Percent,
		})
	}
	return items
}

func (a *App) StopTransfer(id int64) {
	a.svc.StopTransfer(notify.ID(id))
}

func (a *App) SetSoundEnabled(enabled bool) {
	config.SetConfKey("Notifications.Sound", enabled)
	if err := config.SaveConfig(); err != nil {
		runtime.LogError(a.ctx, err.Error())
	}
}

// StartDemoTransfer runs a scripted transfer through the whole
// coordination pipeline so the frontend can be exercised without a peer.
func (a *App) StartDemoTransfer() int64 {
	id := a.svc.Start(&transfer.Script{
		Dir:      transfer.Receive,
		Remote:   "Demo device",
		Items:    3,
		Interval: time.Second,
	})
	return int64(id)
}
