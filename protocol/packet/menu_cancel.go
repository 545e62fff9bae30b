package packet

import "bytes"

// MenuCancel is sent by the client to dismiss a previously presented menu
// without selecting an entry.
type MenuCancel struct {
	Serial uint32
}

// ID ...
func (pk *MenuCancel) ID() uint32 {
	return IDMenuCancel
}

// Encode ...
func (pk *MenuCancel) Encode(buf *bytes.Buffer) {
	WriteUint32(buf, pk.Serial)
}

// Decode ...
func (pk *MenuCancel) Decode(buf *bytes.Buffer) {
	pk.Serial = ReadUint32(buf)
}
