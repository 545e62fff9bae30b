package session

import (
	"errors"
	"io"
	"net"

	"github.com/emberhold/shard/protocol/packet"
)

func handleIncoming(s *Session) {
	defer s.Close()
	for {
		select {
		case <-s.closed:
			return
		default:
			pk, err := s.readPacket()
			if err != nil {
				if !s.isClosed() && !errors.Is(err, net.ErrClosed) && !errors.Is(err, io.EOF) {
					s.logger.Error("failed to read packet from client", "id", s.id, "err", err)
				}
				return
			}

			ctx := NewContext()
			s.Processor().ProcessClient(ctx, pk)
			if ctx.Cancelled() {
				continue
			}

			switch pk := pk.(type) {
			case *packet.MenuResponse:
				handleMenuResponse(s, pk)
			case *packet.MenuCancel:
				handleMenuCancel(s, pk)
			}
		}
	}
}

// handleMenuResponse routes a client selection to the live menu it names.
// The index is bounds-checked here, before the menu sees it; an out-of-range
// index resolves the menu as cancelled rather than killing the session.
func handleMenuResponse(s *Session, pk *packet.MenuResponse) {
	m := s.menus.get(pk.Serial)
	if m == nil {
		if !s.menus.stale(pk.Serial) {
			s.logger.Debug("response for unknown menu", "id", s.id, "serial", pk.Serial)
		}
		return
	}

	s.menus.remove(pk.Serial)
	index := int(pk.Index)
	if index < 0 || index >= m.EntryCount() {
		s.logger.Debug("menu response index out of range", "id", s.id, "serial", pk.Serial, "index", index)
		m.OnCancel()
		return
	}
	m.OnResponse(index)
}

func handleMenuCancel(s *Session, pk *packet.MenuCancel) {
	m := s.menus.get(pk.Serial)
	if m == nil {
		if !s.menus.stale(pk.Serial) {
			s.logger.Debug("cancel for unknown menu", "id", s.id, "serial", pk.Serial)
		}
		return
	}

	s.menus.remove(pk.Serial)
	m.OnCancel()
}
