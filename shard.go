package shard

import (
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/emberhold/shard/session"
	tr "github.com/emberhold/shard/transport"
	"github.com/emberhold/shard/util"
)

// Shard accepts client connections over a transport and wraps each one in a
// session that tracks its interactive menus.
type Shard struct {
	transport tr.Transport
	listener  tr.Listener
	registry  *session.Registry

	logger *slog.Logger
	opts   util.Opts
}

func NewShard(logger *slog.Logger, opts *util.Opts, transport tr.Transport) *Shard {
	if opts == nil {
		opts = util.DefaultOpts()
	}

	if transport == nil {
		transport = tr.NewTCP()
	}
	return &Shard{
		transport: transport,

		registry: session.NewRegistry(),

		logger: logger,
		opts:   *opts,
	}
}

func (s *Shard) Listen() (err error) {
	listener, err := s.transport.Listen(s.opts.Addr)
	if err != nil {
		s.logger.Error("failed to listen", "err", err)
		return err
	}

	s.listener = listener
	s.logger.Info("started listening", "addr", s.opts.Addr)
	return nil
}

func (s *Shard) Accept() (*session.Session, error) {
	conn, err := s.listener.Accept()
	if err != nil {
		s.logger.Error("failed to accept session", "err", err)
		return nil, err
	}

	id := ulid.Make().String()
	newSession := session.NewSession(conn, id, s.logger, s.registry, s.opts.CancelMenusOnClose)
	s.logger.Debug("accepted session", "id", id)
	return newSession, nil
}

func (s *Shard) Opts() util.Opts {
	return s.opts
}

func (s *Shard) Registry() *session.Registry {
	return s.registry
}

func (s *Shard) Transport() tr.Transport {
	return s.transport
}

func (s *Shard) Close() error {
	return s.listener.Close()
}
