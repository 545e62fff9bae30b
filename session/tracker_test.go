package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberhold/shard/menu"
)

func TestTrackerLifecycle(t *testing.T) {
	tr := newTracker()
	m := menu.NewItemListMenu("q", menu.ItemEntry{Name: "Sword", VisualID: 100})

	assert.Nil(t, tr.get(m.Serial()))
	assert.False(t, tr.stale(m.Serial()), "a serial never shown is unknown, not stale")

	tr.add(m)
	assert.Equal(t, m, tr.get(m.Serial()))
	assert.False(t, tr.stale(m.Serial()))

	tr.remove(m.Serial())
	assert.Nil(t, tr.get(m.Serial()))
	assert.True(t, tr.stale(m.Serial()), "a resolved serial is stale")
}

func TestTrackerClear(t *testing.T) {
	tr := newTracker()

	var cancels int
	for i := 0; i < 3; i++ {
		m := menu.NewQuestionMenu("q", "Yes")
		m.CancelHandler = func() { cancels++ }
		tr.add(m)
	}
	tr.clear(true)
	assert.Equal(t, 3, cancels)

	cancels = 0
	m := menu.NewQuestionMenu("q", "Yes")
	m.CancelHandler = func() { cancels++ }
	tr.add(m)
	tr.clear(false)
	assert.Zero(t, cancels, "clear without cancel must drop menus silently")
	assert.Nil(t, tr.get(m.Serial()))
}
