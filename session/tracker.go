package session

import (
	"sync"

	"github.com/scylladb/go-set/u32set"

	"github.com/emberhold/shard/menu"
)

// tracker keeps the menus a session has live, keyed by serial. Every serial
// ever shown to the client is additionally remembered in a set so the
// dispatcher can tell a stale reply (menu already resolved) apart from a
// serial the client made up.
type tracker struct {
	menus map[uint32]menu.Menu
	seen  *u32set.Set
	mu    sync.RWMutex
}

func newTracker() *tracker {
	return &tracker{
		menus: make(map[uint32]menu.Menu),
		seen:  u32set.New(),
	}
}

func (t *tracker) add(m menu.Menu) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.menus[m.Serial()] = m
	t.seen.Add(m.Serial())
}

func (t *tracker) get(serial uint32) menu.Menu {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.menus[serial]
}

func (t *tracker) remove(serial uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.menus, serial)
}

// stale reports whether serial belonged to a menu that is no longer live.
func (t *tracker) stale(serial uint32) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, live := t.menus[serial]
	return !live && t.seen.Has(serial)
}

// clear drops every live menu, optionally firing its cancel callback first.
func (t *tracker) clear(cancel bool) {
	t.mu.Lock()
	menus := t.menus
	t.menus = make(map[uint32]menu.Menu)
	t.seen.Clear()
	t.mu.Unlock()

	if !cancel {
		return
	}

	for _, m := range menus {
		m.OnCancel()
	}
}
