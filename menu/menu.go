// Package menu implements transient, single-shot interactive requests shown
// to game clients. A menu is created with a fresh serial, presented at most
// once, and resolved at most once by a response, a cancellation, or the
// session going away. Re-presenting a resolved menu requires constructing a
// new one.
package menu

import "github.com/emberhold/shard/protocol/packet"

// Conn is the per-session surface a menu presents itself through: a registry
// of live menus and a way to push packets to the client.
type Conn interface {
	// RegisterMenu records m as live under its serial until the client
	// responds, cancels, or disconnects.
	RegisterMenu(m Menu)
	// UnregisterMenu drops the live menu recorded under serial.
	UnregisterMenu(serial uint32)
	// WritePacket queues pk for transmission to the client.
	WritePacket(pk packet.Packet) error
}

// Menu represents an interactive request awaiting exactly one client reply.
type Menu interface {
	// Serial returns the identity the menu is tracked under while live.
	// It is never zero.
	Serial() uint32
	// EntryCount returns the number of selectable options.
	EntryCount() int
	// SendTo registers the menu with c and queues its render packet.
	SendTo(c Conn) error
	// OnResponse is invoked by the dispatcher when the client selects the
	// entry at index. The dispatcher bounds-checks index beforehand;
	// handlers acting on it should still treat it as untrusted input.
	OnResponse(index int)
	// OnCancel is invoked by the dispatcher when the client dismisses the
	// menu without selecting.
	OnCancel()
}
