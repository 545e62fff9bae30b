package menu

import "sync/atomic"

// TagEphemeral is OR'd into the high bit of an item-list serial before it is
// exposed, marking the value as belonging to the ephemeral menu namespace
// rather than the persistent object namespace that shares the same 32-bit
// wire field.
const TagEphemeral uint32 = 0x80000000

// serialCounter hands out 31-bit menu serials. Counters are process-wide:
// every session draws serials of a given menu kind from the same counter,
// which lives for the process lifetime and wraps at 2^31.
type serialCounter struct {
	v atomic.Uint32
}

// next returns the next serial, masked to 31 bits. The result is never zero:
// zero means "no active menu" elsewhere in the protocol, so the counter is
// bumped again whenever the mask lands on it.
func (c *serialCounter) next() uint32 {
	for {
		if v := c.v.Add(1) & 0x7FFFFFFF; v != 0 {
			return v
		}
	}
}

var (
	itemListSerial serialCounter
	questionSerial serialCounter
)

// NextItemListSerial allocates the identity for an item-list menu. The
// exposed value carries the ephemeral tag bit.
func NextItemListSerial() uint32 {
	return itemListSerial.next() | TagEphemeral
}

// NextQuestionSerial allocates the identity for a question menu. Unlike
// item-list serials the exposed value carries no namespace tag, so a reader
// comparing it against persistent object serials cannot tell them apart.
// TODO: tag question serials too once clients are confirmed to mask the bit.
func NextQuestionSerial() uint32 {
	return questionSerial.next()
}
