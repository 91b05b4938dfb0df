package transfer

import (
	"context"
	"sync/atomic"
	"time"
)

// Script is a transfer that replays a fixed lifecycle without touching the
// network, pacing progress events by Interval. The desktop app uses it for
// demo transfers and tests use it to exercise the coordination pipeline.
type Script struct {
	Dir      Direction
	Remote   string
	Items    int64
	Interval time.Duration

	stopped atomic.Bool
}

func (s *Script) Direction() Direction { return s.Dir }

func (s *Script) RemoteName() string { return s.Remote }

func (s *Script) Stop() { s.stopped.Store(true) }

func (s *Script) Run(ctx context.Context, events chan<- Event) {
	events <- Event{Kind: EventConnect}
	events <- Event{Kind: EventHeader, ItemCount: s.Items}

	for percent := 10; percent <= 100; percent += 10 {
		if s.stopped.Load() {
			events <- Event{Kind: EventError, Message: "transfer was stopped"}
			events <- Event{Kind: EventFinish}
			return
		}

		select {
		case <-ctx.Done():
			events <- Event{Kind: EventError, Message: ctx.Err().Error()}
			events <- Event{Kind: EventFinish}
			return
		case <-time.After(s.Interval):
		}

		events <- Event{Kind: EventProgress, Percent: percent}
	}

	events <- Event{Kind: EventSuccess}
	events <- Event{Kind: EventFinish}
}
