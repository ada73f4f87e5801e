package responder

import (
	"context"
	"fmt"

	"stubdns/internal/wire"
)

// Stub answers every question with one canned A record: same name, class
// IN, and the configured address and TTL.
type Stub struct {
	address wire.RDataA
	ttl     uint32
}

// NewStub creates a stub responder answering with the given dotted-quad
// address and TTL.
func NewStub(address string, ttl uint32) (*Stub, error) {
	rdata, err := wire.RDataAFromString(address)
	if err != nil {
		return nil, fmt.Errorf("stub address: %w", err)
	}
	return &Stub{address: rdata, ttl: ttl}, nil
}

// Respond synthesizes one answer per question. It never fails.
func (s *Stub) Respond(_ context.Context, query *wire.Message) (*wire.Message, error) {
	answers := make([]wire.ResourceRecord, 0, len(query.Questions))
	for _, q := range query.Questions {
		answers = append(answers, wire.ResourceRecord{
			Name:  q.Name,
			Type:  wire.TypeA,
			Class: wire.ClassIN,
			TTL:   s.ttl,
			Data:  s.address,
		})
	}

	return &wire.Message{
		Header:    replyHeader(query.Header, uint16(len(answers))),
		Questions: query.Questions,
		Answers:   answers,
	}, nil
}
