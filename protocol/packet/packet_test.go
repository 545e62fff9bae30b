package packet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhold/shard/protocol/packet"
)

func TestMenuItemsRoundTrip(t *testing.T) {
	pk := &packet.MenuItems{
		Serial:   0x80000001,
		Question: "Choose a weapon",
		Entries: []packet.ItemEntry{
			{Name: "Sword", VisualID: 100, Tint: 0},
			{Name: "Axe", VisualID: 101, Tint: 5},
		},
	}

	buf := &bytes.Buffer{}
	pk.Encode(buf)

	decoded := &packet.MenuItems{}
	decoded.Decode(buf)
	assert.Equal(t, pk, decoded)
}

func TestMenuQuestionRoundTrip(t *testing.T) {
	pk := &packet.MenuQuestion{
		Serial:   42,
		Question: "Accept the quest?",
		Answers:  []string{"Yes", "No", "Ask again later"},
	}

	buf := &bytes.Buffer{}
	pk.Encode(buf)

	decoded := &packet.MenuQuestion{}
	decoded.Decode(buf)
	assert.Equal(t, pk, decoded)
}

func TestMenuItemsEncodeClampsEntries(t *testing.T) {
	pk := &packet.MenuItems{Serial: 0x80000001, Question: "q"}
	pk.Entries = make([]packet.ItemEntry, 0xFFFF+2)
	for i := range pk.Entries {
		pk.Entries[i] = packet.ItemEntry{Name: "Sword", VisualID: uint16(i)}
	}

	buf := &bytes.Buffer{}
	pk.Encode(buf)

	decoded := &packet.MenuItems{}
	decoded.Decode(buf)
	assert.Len(t, decoded.Entries, 0xFFFF, "the entry count and the entries written must agree")
	assert.Zero(t, buf.Len(), "encoding an oversized entry list must not corrupt the stream")
}

func TestPool(t *testing.T) {
	pool := packet.NewPool()
	for _, id := range []uint32{packet.IDMenuItems, packet.IDMenuQuestion, packet.IDMenuResponse, packet.IDMenuCancel} {
		factory, ok := pool[id]
		require.True(t, ok, "packet %v is not registered", id)
		assert.Equal(t, id, factory().ID())
	}
}
