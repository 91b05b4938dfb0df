package coordinator

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/Tharlwin/nitroshare-go/internal/notify"
)

// Registry is the concurrent-safe map of live transfers. An entry exists
// from registration until the transfer's finish event removes it. Only
// existence and lookup are protected here; a coordinator's own fields are
// guarded by the coordinator itself.
type Registry struct {
	mu        sync.RWMutex
	transfers *orderedmap.OrderedMap[notify.ID, *Coordinator]
}

func NewRegistry() *Registry {
	return &Registry{
		transfers: orderedmap.NewOrderedMap[notify.ID, *Coordinator](),
	}
}

// Register inserts the coordinator under its identity. A duplicate identity
// indicates an allocator or caller bug; it is logged and the original entry
// is kept so unrelated transfers keep running.
func (r *Registry) Register(id notify.ID, c *Coordinator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.transfers.Get(id); found {
		log().Warn("Duplicate transfer registration ignored", "id", id)
		return
	}
	r.transfers.Set(id, c)
}

// RequestStop forwards a cooperative stop signal to the transfer with the
// given identity. Termination is asynchronous and observed later through
// the finish event. An unknown identity is a no-op: the transfer may have
// already finished.
func (r *Registry) RequestStop(id notify.ID) {
	r.mu.RLock()
	c, found := r.transfers.Get(id)
	r.mu.RUnlock()
	if !found {
		return
	}
	c.transfer.Stop()
}

// Remove deletes the entry if present. Idempotent: a stop racing a natural
// finish may remove twice.
func (r *Registry) Remove(id notify.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transfers.Delete(id)
}

func (r *Registry) Get(id notify.ID) (*Coordinator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transfers.Get(id)
}

// List returns the live coordinators in registration order.
func (r *Registry) List() []*Coordinator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*Coordinator, 0, r.transfers.Len())
	for _, key := range r.transfers.Keys() {
		c, _ := r.transfers.Get(key)
		list = append(list, c)
	}
	return list
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transfers.Len()
}
