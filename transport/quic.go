package transport

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"time"

	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/qlog"
)

// QUIC implements the Transport interface to accept client connections over
// the QUIC protocol. Each client owns a single bidirectional stream opened
// at connection time.
type QUIC struct {
	tlsConf *tls.Config
	logger  *slog.Logger
}

// NewQUIC creates a new QUIC transport instance.
func NewQUIC(logger *slog.Logger, tlsConf *tls.Config) *QUIC {
	if tlsConf == nil {
		tlsConf = &tls.Config{}
	} else {
		tlsConf = tlsConf.Clone()
	}
	tlsConf.NextProtos = []string{"shard"}
	return &QUIC{
		tlsConf: tlsConf,
		logger:  logger,
	}
}

// Listen ...
func (q *QUIC) Listen(addr string) (Listener, error) {
	listener, err := quic.ListenAddr(
		addr,
		q.tlsConf,
		&quic.Config{
			MaxIdleTimeout:                 time.Second * 10,
			InitialStreamReceiveWindow:     1024 * 1024 * 10,
			InitialConnectionReceiveWindow: 1024 * 1024 * 10,
			KeepAlivePeriod:                0,
			InitialPacketSize:              1350,
			Tracer:                         qlog.DefaultConnectionTracer,
		},
	)
	if err != nil {
		return nil, err
	}
	return &quicListener{listener: listener, logger: q.logger}, nil
}

type quicListener struct {
	listener *quic.Listener
	logger   *slog.Logger
}

// Accept ...
func (l *quicListener) Accept() (io.ReadWriteCloser, error) {
	conn, err := l.listener.Accept(context.Background())
	if err != nil {
		return nil, err
	}

	stream, err := conn.AcceptStream(context.Background())
	if err != nil {
		_ = conn.CloseWithError(0, "failed to accept stream")
		return nil, err
	}

	l.logger.Debug("established connection", "addr", conn.RemoteAddr())
	return &quicConn{Stream: stream, conn: conn}, nil
}

// Close ...
func (l *quicListener) Close() error {
	return l.listener.Close()
}

type quicConn struct {
	quic.Stream
	conn quic.Connection
}

// Close ...
func (c *quicConn) Close() error {
	return c.conn.CloseWithError(0, "")
}
