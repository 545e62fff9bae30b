package transport

import (
	"io"

	"github.com/xtaci/kcp-go"
)

// KCP implements the Transport interface to accept client connections over
// the KCP protocol.
type KCP struct{}

// NewKCP creates a new KCP transport instance.
func NewKCP() *KCP {
	return &KCP{}
}

// Listen ...
func (k *KCP) Listen(addr string) (Listener, error) {
	listener, err := kcp.ListenWithOptions(addr, nil, 10, 3)
	if err != nil {
		return nil, err
	}
	return &kcpListener{listener: listener}, nil
}

type kcpListener struct {
	listener *kcp.Listener
}

// Accept ...
func (l *kcpListener) Accept() (io.ReadWriteCloser, error) {
	conn, err := l.listener.AcceptKCP()
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Close ...
func (l *kcpListener) Close() error {
	return l.listener.Close()
}
