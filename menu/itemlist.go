package menu

import (
	"errors"
	"sync/atomic"

	"github.com/emberhold/shard/protocol/packet"
)

// ItemEntry is a selectable row of an item-list menu.
type ItemEntry = packet.ItemEntry

// ItemListMenu presents a question and an ordered list of item entries to
// pick from.
type ItemListMenu struct {
	Question string
	Entries  []ItemEntry

	// Handler is invoked with the index of the selected entry. A nil
	// handler ignores the selection.
	Handler func(index int)
	// CancelHandler is invoked when the client dismisses the menu. A nil
	// handler ignores the cancellation.
	CancelHandler func()

	serial   uint32
	sent     atomic.Bool
	resolved atomic.Bool
}

// NewItemListMenu creates a menu with a fresh tagged serial.
func NewItemListMenu(question string, entries ...ItemEntry) *ItemListMenu {
	return &ItemListMenu{
		Question: question,
		Entries:  entries,
		serial:   NextItemListSerial(),
	}
}

// Serial ...
func (m *ItemListMenu) Serial() uint32 {
	return m.serial
}

// EntryCount ...
func (m *ItemListMenu) EntryCount() int {
	return len(m.Entries)
}

// SendTo ...
func (m *ItemListMenu) SendTo(c Conn) error {
	if !m.sent.CompareAndSwap(false, true) {
		return errors.New("menu already sent")
	}

	c.RegisterMenu(m)
	if err := c.WritePacket(&packet.MenuItems{
		Serial:   m.serial,
		Question: m.Question,
		Entries:  m.Entries,
	}); err != nil {
		c.UnregisterMenu(m.serial)
		return err
	}
	return nil
}

// OnResponse ...
func (m *ItemListMenu) OnResponse(index int) {
	if !m.resolved.CompareAndSwap(false, true) {
		return
	}

	if m.Handler != nil {
		m.Handler(index)
	}
}

// OnCancel ...
func (m *ItemListMenu) OnCancel() {
	if !m.resolved.CompareAndSwap(false, true) {
		return
	}

	if m.CancelHandler != nil {
		m.CancelHandler()
	}
}
