package menu

import (
	"errors"
	"sync/atomic"

	"github.com/emberhold/shard/protocol/packet"
)

// QuestionMenu presents a question with a fixed set of textual answers.
// Question may be rewritten up until the menu is sent.
type QuestionMenu struct {
	Question string
	Answers  []string

	// Handler is invoked with the index of the selected answer. A nil
	// handler ignores the selection.
	Handler func(index int)
	// CancelHandler is invoked when the client dismisses the menu. A nil
	// handler ignores the cancellation.
	CancelHandler func()

	serial   uint32
	sent     atomic.Bool
	resolved atomic.Bool
}

// NewQuestionMenu creates a menu with a fresh serial.
func NewQuestionMenu(question string, answers ...string) *QuestionMenu {
	return &QuestionMenu{
		Question: question,
		Answers:  answers,
		serial:   NextQuestionSerial(),
	}
}

// Serial ...
func (m *QuestionMenu) Serial() uint32 {
	return m.serial
}

// EntryCount ...
func (m *QuestionMenu) EntryCount() int {
	return len(m.Answers)
}

// SendTo ...
func (m *QuestionMenu) SendTo(c Conn) error {
	if !m.sent.CompareAndSwap(false, true) {
		return errors.New("menu already sent")
	}

	c.RegisterMenu(m)
	if err := c.WritePacket(&packet.MenuQuestion{
		Serial:   m.serial,
		Question: m.Question,
		Answers:  m.Answers,
	}); err != nil {
		c.UnregisterMenu(m.serial)
		return err
	}
	return nil
}

// OnResponse ...
func (m *QuestionMenu) OnResponse(index int) {
	if !m.resolved.CompareAndSwap(false, true) {
		return
	}

	if m.Handler != nil {
		m.Handler(index)
	}
}

// OnCancel ...
func (m *QuestionMenu) OnCancel() {
	if !m.resolved.CompareAndSwap(false, true) {
		return
	}

	if m.CancelHandler != nil {
		m.CancelHandler()
	}
}
