package packet

import "bytes"

// Packet represents a protocol packet exchanged with a game client. It
// defines methods for identifying the packet, encoding itself to binary,
// and decoding itself from binary.
type Packet interface {
	// ID returns the unique identifier of the packet.
	ID() uint32
	// Encode will encode the packet into binary form and write it to buf.
	Encode(buf *bytes.Buffer)
	// Decode will decode binary data from buf into the packet.
	Decode(buf *bytes.Buffer)
}

const (
	IDMenuItems uint32 = iota
	IDMenuQuestion
	IDMenuResponse
	IDMenuCancel
)
