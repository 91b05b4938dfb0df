package coordinator

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/Tharlwin/nitroshare-go/internal/notify"
	"github.com/Tharlwin/nitroshare-go/internal/transfer"
)

// DefaultProgressInterval is the minimum spacing between progress-driven
// notification updates for one transfer.
const DefaultProgressInterval = time.Second

const eventBuffer = 16

type Options struct {
	// Surface receives all notification calls. Defaults to a LogSurface.
	Surface notify.Surface
	// SoundEnabled is read fresh at every notification build, so preference
	// changes mid-transfer take effect. Defaults to always false.
	SoundEnabled func() bool
	// ConcurrencyLimit bounds how many transfer runs execute at once.
	// Zero or negative means no limit.
	ConcurrencyLimit int
	ProgressInterval time.Duration
	// Context is handed to every transfer run. Defaults to Background.
	Context context.Context
}

// Service is the process-scoped coordination point for all transfers. It
// owns the identity allocator, the registry and the worker pool; construct
// one at startup and share it by reference.
type Service struct {
	ids              notify.Allocator
	registry         *Registry
	surface          notify.Surface
	soundEnabled     func() bool
	progressInterval time.Duration
	pool             pond.Pool
	ctx              context.Context
}

func NewService(opts Options) *Service {
	if opts.Surface == nil {
		opts.Surface = notify.NewLogSurface()
	}
	if opts.SoundEnabled == nil {
		opts.SoundEnabled = func() bool { return false }
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return &Service{
		registry:         NewRegistry(),
		surface:          opts.Surface,
		soundEnabled:     opts.SoundEnabled,
		progressInterval: opts.ProgressInterval,
		pool:             pond.NewPool(opts.ConcurrencyLimit),
		ctx:              opts.Context,
	}
}

// Start wraps the transfer in a coordinator, registers it, shows the initial
// notification and launches the transfer run concurrently. It returns the
// transfer's identity, which keys the live notification slot.
func (s *Service) Start(t transfer.Transfer) notify.ID {
	c := &Coordinator{
		id:       s.ids.Next(),
		transfer: t,
		svc:      s,
		phase:    notify.PhaseCreated,
	}
	s.registry.Register(c.id, c)
	s.surface.Start(c.id, c.buildLive())

	events := make(chan transfer.Event, eventBuffer)
	go c.consume(events)
	s.pool.Submit(func() {
		t.Run(s.ctx, events)
		close(events)
	})

	log().Info("Created transfer", "id", c.id,
		"direction", t.Direction().String(), "remote", t.RemoteName())
	return c.id
}

// StopTransfer asks the transfer with the given identity to stop. Fire and
// forget: unknown or already finished identities are ignored, and actual
// termination is observed later through the finish event.
func (s *Service) StopTransfer(id notify.ID) {
	s.registry.RequestStop(id)
}

// Transfers returns a snapshot of every live transfer in registration order.
func (s *Service) Transfers() []Status {
	coordinators := s.registry.List()
	statuses := make([]Status, 0, len(coordinators))
	for _, c := range coordinators {
		statuses = append(statuses, c.Status())
	}
	return statuses
}

func (s *Service) Transfer(id notify.ID) (Status, bool) {
	c, found := s.registry.Get(id)
	if !found {
		return Status{}, false
	}
	return c.Status(), true
}

func (s *Service) TransferCount() int {
	return s.registry.Len()
}

// Shutdown signals every live transfer to stop and waits for the runs to
// return. An engine that never honours the signal keeps Shutdown blocked;
// there is no force path.
func (s *Service) Shutdown() {
	for _, c := range s.registry.List() {
		c.transfer.Stop()
	}
	s.pool.StopAndWait()
}
