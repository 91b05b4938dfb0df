package coordinator

import (
	"sync"
	"time"

	"github.com/Tharlwin/nitroshare-go/internal/notify"
	"github.com/Tharlwin/nitroshare-go/internal/transfer"
)

// Coordinator tracks one running transfer and keeps its live notification
// in sync with the event stream. Events for a transfer arrive in order on a
// single goroutine, so the fields below have one writer; the lock only
// covers reads from other goroutines (status listing).
type Coordinator struct {
	id       notify.ID
	transfer transfer.Transfer
	svc      *Service

	mu          sync.RWMutex
	phase       notify.Phase
	percent     int
	lastPublish time.Time
}

// Status is a point-in-time view of one transfer, safe to take from any
// goroutine.
type Status struct {
	ID        notify.ID
	Direction transfer.Direction
	Remote    string
	Phase     notify.Phase
	Percent   int
}

func (c *Coordinator) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Status{
		ID:        c.id,
		Direction: c.transfer.Direction(),
		Remote:    c.transfer.RemoteName(),
		Phase:     c.phase,
		Percent:   c.percent,
	}
}

func (c *Coordinator) consume(events <-chan transfer.Event) {
	for ev := range events {
		c.apply(ev)
	}

	c.mu.RLock()
	phase := c.phase
	c.mu.RUnlock()
	if phase != notify.PhaseFinished {
		// engine contract violation; finish anyway so the registry entry
		// and the live notification are not leaked
		log().Warn("Event stream ended without a finish event", "id", c.id)
		c.finish()
	}
}

func (c *Coordinator) apply(ev transfer.Event) {
	defer func() {
		if r := recover(); r != nil {
			log().Error("Notification update panicked", "id", c.id, "kind", int(ev.Kind), "panic", r)
		}
	}()

	switch ev.Kind {
	case transfer.EventConnect:
		c.onConnect()
	case transfer.EventHeader:
		c.onHeader(ev.ItemCount)
	case transfer.EventProgress:
		c.onProgress(ev.Percent)
	case transfer.EventSuccess:
		c.onSuccess()
	case transfer.EventError:
		c.onError(ev.Message)
	case transfer.EventFinish:
		c.finish()
	default:
		log().Warn("Unknown transfer event ignored", "id", c.id, "kind", int(ev.Kind))
	}
}

func (c *Coordinator) onConnect() {
	c.mu.Lock()
	c.phase = notify.PhaseActive
	c.mu.Unlock()
	c.svc.surface.Update(c.id, c.buildLive())
}

func (c *Coordinator) onHeader(count int64) {
	log().Info("Incoming transfer header", "id", c.id, "items", count)
	c.mu.Lock()
	c.phase = notify.PhaseActive
	c.mu.Unlock()
	if c.transfer.Direction() == transfer.Receive {
		c.svc.surface.Update(c.id, c.buildLive())
	}
}

// onProgress republishes the live snapshot at most once per throttle
// window. The zero lastPublish lets the first progress event through and
// seed the window. A final 100% inside a closed window is coalesced; the
// terminal snapshot comes from onSuccess or onError, not from here.
func (c *Coordinator) onProgress(percent int) {
	now := time.Now()
	c.mu.Lock()
	c.percent = percent
	publish := now.Sub(c.lastPublish) >= c.svc.progressInterval
	if publish {
		c.lastPublish = now
	}
	c.mu.Unlock()

	if publish {
		c.svc.surface.Update(c.id, c.buildLive())
	}
}

func (c *Coordinator) onSuccess() {
	log().Info("Transfer succeeded", "id", c.id)
	c.mu.Lock()
	c.phase = notify.PhaseSucceeded
	c.mu.Unlock()
	c.publishResult(notify.PhaseSucceeded, "")
}

func (c *Coordinator) onError(message string) {
	log().Info("Transfer failed", "id", c.id, "err", message)
	c.mu.Lock()
	c.phase = notify.PhaseFailed
	c.mu.Unlock()
	c.publishResult(notify.PhaseFailed, message)
}

// publishResult announces the terminal outcome under a fresh identity so
// it outlives the live slot, which finish retires separately. A fast finish
// right after this never retracts the user-visible result.
func (c *Coordinator) publishResult(phase notify.Phase, message string) {
	resultID := c.svc.ids.Next()
	state := notify.Build(resultID, c.transfer.Direction(), phase,
		c.transfer.RemoteName(), 0, message, c.svc.soundEnabled())
	c.svc.surface.Start(resultID, state)
}

func (c *Coordinator) finish() {
	c.mu.Lock()
	if c.phase == notify.PhaseFinished {
		c.mu.Unlock()
		log().Warn("Duplicate finish ignored", "id", c.id)
		return
	}
	c.phase = notify.PhaseFinished
	c.mu.Unlock()

	c.svc.registry.Remove(c.id)
	c.svc.surface.Stop(c.id)
	log().Info("Transfer finished", "id", c.id)
}

func (c *Coordinator) buildLive() notify.State {
	c.mu.RLock()
	phase := c.phase
	percent := c.percent
	c.mu.RUnlock()
	return notify.Build(c.id, c.transfer.Direction(), phase,
		c.transfer.RemoteName(), percent, "", c.svc.soundEnabled())
}
