package session

import "github.com/emberhold/shard/protocol/packet"

// Context carries the outcome of a processor pass over a packet.
type Context struct {
	cancelled bool
}

func NewContext() *Context {
	return &Context{}
}

// Cancel stops the packet from being dispatched any further.
func (ctx *Context) Cancel() {
	ctx.cancelled = true
}

// Cancelled ...
func (ctx *Context) Cancelled() bool {
	return ctx.cancelled
}

// Processor intercepts client packets before the session dispatches them.
type Processor interface {
	// ProcessClient is called for every decoded client packet. Cancelling
	// ctx drops the packet before menu dispatch.
	ProcessClient(ctx *Context, pk packet.Packet)
}

// NopProcessor implements Processor and does nothing.
type NopProcessor struct{}

// ProcessClient ...
func (NopProcessor) ProcessClient(_ *Context, _ packet.Packet) {}
