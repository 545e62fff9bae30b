package packet

import "bytes"

// MenuResponse is sent by the client to answer a previously presented menu.
// Index is the zero-based position of the chosen entry.
type MenuResponse struct {
	Serial uint32
	Index  int32
}

// ID ...
func (pk *MenuResponse) ID() uint32 {
	return IDMenuResponse
}

// Encode ...
func (pk *MenuResponse) Encode(buf *bytes.Buffer) {
	WriteUint32(buf, pk.Serial)
	WriteInt32(buf, pk.Index)
}

// Decode ...
func (pk *MenuResponse) Decode(buf *bytes.Buffer) {
	pk.Serial = ReadUint32(buf)
	pk.Index = ReadInt32(buf)
}
