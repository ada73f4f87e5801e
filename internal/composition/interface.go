package composition

import (
	"context"

	"stubdns/internal/wire"
)

// Responder defines the contract for responders: turning one parsed query
// into one reply message. Implementations must not send partial replies;
// on any failure the error is returned and the datagram is dropped by the
// caller.
type Responder interface {
	Respond(ctx context.Context, query *wire.Message) (*wire.Message, error)
}
