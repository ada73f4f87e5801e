package composition

import (
	"fmt"

	"stubdns/internal/config"
	"stubdns/internal/responder"
)

// NewResponder creates a responder based on the resolver configuration: a
// configured upstream address (or system resolver discovery) selects
// forwarding mode, otherwise the server answers from the stub.
func NewResponder(cfg *config.Config) (Responder, error) {
	upstream := cfg.Resolver.Address
	if upstream == "" && cfg.Resolver.UseSystemDefaults {
		addr, err := responder.SystemResolver()
		if err != nil {
			return nil, fmt.Errorf("discovering system resolver: %w", err)
		}
		upstream = addr
	}

	if upstream == "" {
		stub, err := responder.NewStub(cfg.Stub.Address, cfg.Stub.TTL)
		if err != nil {
			return nil, fmt.Errorf("creating stub responder: %w", err)
		}
		return stub, nil
	}

	return responder.NewForwarder(upstream, cfg.Server.MaxPacketSize), nil
}
