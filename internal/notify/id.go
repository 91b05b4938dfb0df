package notify

import "sync/atomic"

// ID names one transfer or one ephemeral result notification.
type ID int64

// None is the reserved sentinel, never handed out by an Allocator.
const None ID = 0

// Allocator hands out process-unique identities. Transfer identities and
// result-notification identities are drawn from the same counter so the two
// can coexist on the notification surface without colliding.
type Allocator struct {
	last atomic.Int64
}

func (a *Allocator) Next() ID {
	return ID(a.last.Add(1))
}
