package transport

import "io"

// Transport defines an interface for accepting client connections over a
// particular network protocol.
type Transport interface {
	// Listen starts listening on addr. It returns an error if the listener
	// cannot be established.
	Listen(addr string) (Listener, error)
}

// Listener accepts established client connections.
type Listener interface {
	// Accept blocks until the next client connection is established and
	// returns an io.ReadWriteCloser for it.
	Accept() (io.ReadWriteCloser, error)
	// Close stops the listener.
	Close() error
}
