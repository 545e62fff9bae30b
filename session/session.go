package session

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/emberhold/shard/internal"
	"github.com/emberhold/shard/menu"
	proto "github.com/emberhold/shard/protocol"
	"github.com/emberhold/shard/protocol/packet"
)

// Session wraps a single client connection. It owns the connection's framing
// reader and writer, the registry entry for the session, and the set of
// menus currently awaiting a reply from this client.
type Session struct {
	conn io.ReadWriteCloser
	id   string

	reader  *proto.Reader
	writer  *proto.Writer
	writeMu sync.Mutex

	logger   *slog.Logger
	registry *Registry
	menus    *tracker

	processor   Processor
	processorMu sync.RWMutex

	pool packet.Pool

	cancelMenusOnClose bool

	once   sync.Once
	closed chan struct{}
}

func NewSession(conn io.ReadWriteCloser, id string, logger *slog.Logger, registry *Registry, cancelMenusOnClose bool) *Session {
	s := &Session{
		conn: conn,
		id:   id,

		reader: proto.NewReader(conn),
		writer: proto.NewWriter(conn),

		logger:   logger,
		registry: registry,
		menus:    newTracker(),

		processor: NopProcessor{},
		pool:      packet.NewPool(),

		cancelMenusOnClose: cancelMenusOnClose,
		closed:             make(chan struct{}),
	}

	registry.AddSession(id, s)
	go handleIncoming(s)
	s.logger.Info("started session", "id", id)
	return s
}

// ID returns the identifier assigned to the session at accept time.
func (s *Session) ID() string {
	return s.id
}

// RegisterMenu records m as live until the client responds, cancels, or
// disconnects.
func (s *Session) RegisterMenu(m menu.Menu) {
	s.menus.add(m)
}

// UnregisterMenu drops the live menu recorded under serial.
func (s *Session) UnregisterMenu(serial uint32) {
	s.menus.remove(serial)
}

// Menu returns the live menu recorded under serial, or nil.
func (s *Session) Menu(serial uint32) menu.Menu {
	return s.menus.get(serial)
}

// WritePacket encodes pk and queues it for transmission to the client.
func (s *Session) WritePacket(pk packet.Packet) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()

	packet.WriteUint32(buf, pk.ID())
	pk.Encode(buf)
	return s.writer.Write(buf.Bytes())
}

// Processor ...
func (s *Session) Processor() Processor {
	s.processorMu.RLock()
	defer s.processorMu.RUnlock()
	return s.processor
}

// SetProcessor ...
func (s *Session) SetProcessor(processor Processor) {
	s.processorMu.Lock()
	defer s.processorMu.Unlock()
	s.processor = processor
}

func (s *Session) Close() {
	s.once.Do(func() {
		close(s.closed)
		_ = s.conn.Close()
		s.menus.clear(s.cancelMenusOnClose)
		s.registry.RemoveSession(s.id)
		s.logger.Info("closed session", "id", s.id)
	})
}

func (s *Session) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// readPacket reads the next frame from the client and decodes it into a
// registered packet.
func (s *Session) readPacket() (packet.Packet, error) {
	payload, err := s.reader.ReadPacket()
	if err != nil {
		return nil, err
	}
	return s.decode(payload)
}

// decode decodes a packet payload and returns the decoded packet or an error
// if the payload does not hold a known client packet.
func (s *Session) decode(payload []byte) (pk packet.Packet, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while reading packet: %v", r)
		}
	}()

	buf := bytes.NewBuffer(payload)
	id := packet.ReadUint32(buf)
	if !internal.ClientPacketExists(id) {
		return nil, fmt.Errorf("received non-client packet ID %v", id)
	}

	factory, ok := s.pool[id]
	if !ok {
		return nil, fmt.Errorf("unknown packet ID %v", id)
	}

	pk = factory()
	pk.Decode(buf)
	return pk, nil
}
