package internal

import "github.com/brentp/intintmap"

var clientPackets = intintmap.New(16, 0.6)

// RegisterClientPacket marks id as a packet the client is allowed to send.
func RegisterClientPacket(id uint32) {
	clientPackets.Put(int64(id), 1)
}

// ClientPacketExists reports whether id names a client-originated packet.
func ClientPacketExists(id uint32) bool {
	_, ok := clientPackets.Get(int64(id))
	return ok
}
