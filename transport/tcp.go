package transport

import (
	"io"
	"net"
)

// TCP implements the Transport interface to accept client connections over
// the TCP protocol.
type TCP struct{}

// NewTCP creates a new TCP transport instance.
func NewTCP() *TCP {
	return &TCP{}
}

// Listen ...
func (t *TCP) Listen(addr string) (Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &tcpListener{listener: listener}, nil
}

type tcpListener struct {
	listener net.Listener
}

// Accept ...
func (l *tcpListener) Accept() (io.ReadWriteCloser, error) {
	conn, err := l.listener.Accept()
	if err != nil {
		return nil, err
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
		_ = tcpConn.SetLinger(0)
		_ = tcpConn.SetReadBuffer(1024 * 1024 * 8)
		_ = tcpConn.SetWriteBuffer(1024 * 1024 * 8)
	}
	return conn, nil
}

// Close ...
func (l *tcpListener) Close() error {
	return l.listener.Close()
}
