package responder

import (
	"context"
	"fmt"
	"net"

	"stubdns/internal/wire"
)

// Forwarder splits a multi-question query into singleton sub-queries,
// resolves each against the upstream resolver sequentially in question
// order, and recombines the answers into one reply.
type Forwarder struct {
	upstream string
	bufSize  int
}

// NewForwarder creates a forwarding responder using the upstream resolver
// at addr (host:port). bufSize caps the size of reply datagrams read back
// from the upstream.
func NewForwarder(addr string, bufSize int) *Forwarder {
	return &Forwarder{upstream: addr, bufSize: bufSize}
}

// Respond forwards each question and aggregates every answer from each
// reply, in question order. Any I/O or decode failure on any sub-query
// aborts the whole response; no partial reply is ever produced.
func (f *Forwarder) Respond(ctx context.Context, query *wire.Message) (*wire.Message, error) {
	var answers []wire.ResourceRecord
	for i, q := range query.Questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reply, err := f.exchange(q, query.Header)
		if err != nil {
			return nil, fmt.Errorf("forwarding question %d (%s): %w", i, q.Name, err)
		}
		answers = append(answers, reply.Answers...)
	}

	return &wire.Message{
		Header:    replyHeader(query.Header, uint16(len(answers))),
		Questions: query.Questions,
		Answers:   answers,
	}, nil
}

// exchange sends one singleton sub-query over a fresh UDP endpoint and
// reads back exactly one reply datagram. There is no read deadline: a
// non-responsive upstream stalls the calling task.
func (f *Forwarder) exchange(q wire.Question, header wire.Header) (*wire.Message, error) {
	sub := &wire.Message{Header: header, Questions: []wire.Question{q}}
	sub.Header.QuestionCount = 1
	sub.Header.AnswerCount = 0
	sub.Header.AuthorityCount = 0
	sub.Header.AdditionalCount = 0

	payload, err := sub.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding sub-query: %w", err)
	}

	raddr, err := net.ResolveUDPAddr("udp", f.upstream)
	if err != nil {
		return nil, fmt.Errorf("resolving upstream address: %w", err)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, fmt.Errorf("connecting to upstream: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		return nil, fmt.Errorf("sending sub-query: %w", err)
	}

	buf := make([]byte, f.bufSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("reading upstream reply: %w", err)
	}

	reply, err := wire.DecodeMessage(buf[:n])
	if err != nil {
		return nil, fmt.Errorf("decoding upstream reply: %w", err)
	}
	return reply, nil
}
