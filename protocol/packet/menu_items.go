package packet

import "bytes"

// maxMenuEntries is the largest entry list the 16-bit count field can carry.
const maxMenuEntries = 0xFFFF

// ItemEntry is a single selectable row of an item-list menu: a display name
// plus the art and hue the client renders it with.
type ItemEntry struct {
	Name     string
	VisualID uint16
	Tint     uint16
}

// MenuItems is sent by the server to present an item-list menu to the
// client. Serial carries the ephemeral namespace tag in its high bit.
type MenuItems struct {
	Serial   uint32
	Question string
	Entries  []ItemEntry
}

// ID ...
func (pk *MenuItems) ID() uint32 {
	return IDMenuItems
}

// Encode ...
func (pk *MenuItems) Encode(buf *bytes.Buffer) {
	entries := pk.Entries
	if len(entries) > maxMenuEntries {
		entries = entries[:maxMenuEntries]
	}

	WriteUint32(buf, pk.Serial)
	WriteString(buf, pk.Question)
	WriteUint16(buf, uint16(len(entries)))
	for _, entry := range entries {
		WriteUint16(buf, entry.VisualID)
		WriteUint16(buf, entry.Tint)
		WriteString(buf, entry.Name)
	}
}

// Decode ...
func (pk *MenuItems) Decode(buf *bytes.Buffer) {
	pk.Serial = ReadUint32(buf)
	pk.Question = ReadString(buf)
	pk.Entries = make([]ItemEntry, ReadUint16(buf))
	for i := range pk.Entries {
		pk.Entries[i].VisualID = ReadUint16(buf)
		pk.Entries[i].Tint = ReadUint16(buf)
		pk.Entries[i].Name = ReadString(buf)
	}
}
