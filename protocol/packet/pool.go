package packet

import "github.com/emberhold/shard/internal"

// packets maps packet IDs to their respective factory functions.
var packets = map[uint32]func() Packet{}

// Register registers a packet factory function for a given ID.
func Register(id uint32, factory func() Packet) {
	packets[id] = factory
}

// Pool is a map holding packet factory functions indexed by their ID.
type Pool map[uint32]func() Packet

// NewPool creates a new Pool populated with registered packet factories.
func NewPool() Pool {
	pool := Pool{}
	for id, factory := range packets {
		pool[id] = factory
	}
	return pool
}

func init() {
	Register(IDMenuItems, func() Packet { return &MenuItems{} })
	Register(IDMenuQuestion, func() Packet { return &MenuQuestion{} })
	Register(IDMenuResponse, func() Packet { return &MenuResponse{} })
	Register(IDMenuCancel, func() Packet { return &MenuCancel{} })

	internal.RegisterClientPacket(IDMenuResponse)
	internal.RegisterClientPacket(IDMenuCancel)
}
