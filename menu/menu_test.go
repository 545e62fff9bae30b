package menu_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhold/shard/menu"
	"github.com/emberhold/shard/protocol/packet"
)

type recordingConn struct {
	registered   []menu.Menu
	unregistered []uint32
	packets      []packet.Packet
	writeErr     error
}

func (c *recordingConn) RegisterMenu(m menu.Menu) {
	c.registered = append(c.registered, m)
}

func (c *recordingConn) UnregisterMenu(serial uint32) {
	c.unregistered = append(c.unregistered, serial)
}

func (c *recordingConn) WritePacket(pk packet.Packet) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.packets = append(c.packets, pk)
	return nil
}

func TestItemListMenuSendTo(t *testing.T) {
	conn := &recordingConn{}
	m := menu.NewItemListMenu("Choose a weapon",
		menu.ItemEntry{Name: "Sword", VisualID: 100},
		menu.ItemEntry{Name: "Axe", VisualID: 101, Tint: 5},
	)
	require.NoError(t, m.SendTo(conn))
	require.Len(t, conn.registered, 1)
	assert.Equal(t, m, conn.registered[0].(*menu.ItemListMenu))

	require.Len(t, conn.packets, 1)
	pk := conn.packets[0].(*packet.MenuItems)
	assert.Equal(t, m.Serial(), pk.Serial)
	assert.Equal(t, "Choose a weapon", pk.Question)
	assert.Equal(t, m.Entries, pk.Entries)

	assert.Error(t, m.SendTo(conn), "a menu is single-shot and must not be re-sent")
}

func TestQuestionMenuSendTo(t *testing.T) {
	conn := &recordingConn{}
	m := menu.NewQuestionMenu("Accept the quest?", "Yes", "No")
	assert.Equal(t, 2, m.EntryCount())
	require.NoError(t, m.SendTo(conn))

	require.Len(t, conn.packets, 1)
	pk := conn.packets[0].(*packet.MenuQuestion)
	assert.Equal(t, m.Serial(), pk.Serial)
	assert.Equal(t, "Accept the quest?", pk.Question)
	assert.Equal(t, []string{"Yes", "No"}, pk.Answers)
	assert.Zero(t, pk.Serial&menu.TagEphemeral)
}

func TestMenuSendToWriteFailure(t *testing.T) {
	conn := &recordingConn{writeErr: errors.New("connection reset")}

	m := menu.NewItemListMenu("q", menu.ItemEntry{Name: "Sword", VisualID: 100})
	assert.Error(t, m.SendTo(conn))
	assert.Equal(t, []uint32{m.Serial()}, conn.unregistered, "a menu the client never saw must not stay registered")

	q := menu.NewQuestionMenu("q", "Yes")
	assert.Error(t, q.SendTo(conn))
	assert.Equal(t, []uint32{m.Serial(), q.Serial()}, conn.unregistered)
}

func TestItemListMenuSingleShotResponse(t *testing.T) {
	var responses, cancels int
	var lastIndex int
	m := menu.NewItemListMenu("q",
		menu.ItemEntry{Name: "Sword", VisualID: 100},
		menu.ItemEntry{Name: "Axe", VisualID: 101},
	)
	m.Handler = func(index int) {
		responses++
		lastIndex = index
	}
	m.CancelHandler = func() {
		cancels++
	}

	m.OnResponse(1)
	m.OnResponse(0)
	m.OnCancel()
	assert.Equal(t, 1, responses)
	assert.Equal(t, 1, lastIndex)
	assert.Zero(t, cancels, "a resolved menu must not also be cancelled")
}

func TestItemListMenuSingleShotCancel(t *testing.T) {
	var responses, cancels int
	m := menu.NewItemListMenu("q", menu.ItemEntry{Name: "Sword", VisualID: 100})
	m.Handler = func(int) { responses++ }
	m.CancelHandler = func() { cancels++ }

	m.OnCancel()
	m.OnCancel()
	m.OnResponse(0)
	assert.Equal(t, 1, cancels)
	assert.Zero(t, responses, "a cancelled menu must not also resolve")
}

func TestMenuNilHandlers(t *testing.T) {
	m := menu.NewQuestionMenu("q", "Yes")
	assert.NotPanics(t, func() {
		m.OnResponse(0)
	})

	m = menu.NewQuestionMenu("q", "Yes")
	assert.NotPanics(t, func() {
		m.OnCancel()
	})
}

func TestMenuFreshSerials(t *testing.T) {
	a := menu.NewItemListMenu("q")
	b := menu.NewItemListMenu("q")
	assert.NotEqual(t, a.Serial(), b.Serial())

	c := menu.NewQuestionMenu("q")
	d := menu.NewQuestionMenu("q")
	assert.NotEqual(t, c.Serial(), d.Serial())
}
