package transfer

import "context"

type Direction int

const (
	Send Direction = iota + 1
	Receive
)

func (d Direction) String() string {
	switch d {
	case Send:
		return "send"
	case Receive:
		return "receive"
	default:
		return "invalid direction"
	}
}

type EventKind int

const (
	EventConnect EventKind = iota + 1
	EventHeader
	EventProgress
	EventSuccess
	EventError
	EventFinish
)

// Event is one step in a transfer's lifecycle. For a given transfer the
// engine delivers events in order: connect, header, zero or more progress
// events, one of success or error, then finish. Events for a single
// transfer are never concurrent with each other.
type Event struct {
	Kind      EventKind
	ItemCount int64  // EventHeader
	Percent   int    // EventProgress
	Message   string // EventError
}

// Transfer is the engine that performs the actual network I/O. Run blocks
// until the transfer is over and sends the lifecycle events, in order, on
// the given channel. It must not close the channel; the caller does that
// once Run returns.
//
// Stop requests cooperative termination. It never blocks; an engine that
// honours it ends the event stream with an error and a finish event,
// the caller only observes termination through those.
type Transfer interface {
	Direction() Direction
	RemoteName() string
	Run(ctx context.Context, events chan<- Event)
	Stop()
}
