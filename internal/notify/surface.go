package notify

import "log/slog"

// Surface renders notifications. Start introduces a new notification slot,
// Update replaces the state of an existing one and Stop retires it. The
// coordination layer only hands surfaces immutable snapshots and never
// inspects rendering results. Implementations must apply calls for a given
// id in the order they are made.
type Surface interface {
	Start(id ID, state State)
	Update(id ID, state State)
	Stop(id ID)
}

// LogSurface renders notifications as structured log lines. It is the
// default surface for the headless service.
type LogSurface struct {
	logger slog.Logger
}

func NewLogSurface() *LogSurface {
	s := new(LogSurface)
	s.logger = *slog.Default().With("component", "notify")
	return s
}

func (s *LogSurface) Start(id ID, state State) {
	s.logger.Info("Notification started", "id", id, "body", state.Body, "icon", state.Icon.String())
}

func (s *LogSurface) Update(id ID, state State) {
	s.logger.Info("Notification updated", "id", id, "body", state.Body,
		"progress", state.Progress, "sound", state.PlaySound)
}

func (s *LogSurface) Stop(id ID) {
	s.logger.Info("Notification stopped", "id", id)
}

// Hub fans every call out to multiple surfaces. Calls are forwarded
// synchronously so per-id ordering is preserved for each surface.
type Hub struct {
	surfaces []Surface
}

func NewHub(surfaces ...Surface) *Hub {
	return &Hub{surfaces: surfaces}
}

func (h *Hub) Start(id ID, state State) {
	for _, s := range h.surfaces {
		s.Start(id, state)
	}
}

func (h *Hub) Update(id ID, state State) {
	for _, s := range h.surfaces {
		s.Update(id, state)
	}
}

func (h *Hub) Stop(id ID) {
	for _, s := range h.surfaces {
		s.Stop(id)
	}
}
