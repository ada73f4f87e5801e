package responder

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"stubdns/internal/wire"
)

// fakeUpstream answers n queries with one A record per question, using a
// distinct address per reply so tests can assert ordering. It reports the
// question names it saw, in arrival order, on the received channel.
func fakeUpstream(t *testing.T, n int) (*net.UDPConn, chan string) {
	t.Helper()

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	received := make(chan string, n)
	go func() {
		buf := make([]byte, 512)
		for i := 0; i < n; i++ {
			size, peer, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			query, err := wire.DecodeMessage(buf[:size])
			if err != nil || len(query.Questions) != 1 {
				return
			}
			q := query.Questions[0]
			received <- q.Name.String()

			reply := &wire.Message{
				Header: wire.Header{
					ID:            query.Header.ID,
					QR:            true,
					QuestionCount: 1,
					AnswerCount:   1,
				},
				Questions: []wire.Question{q},
				Answers: []wire.ResourceRecord{{
					Name:  q.Name,
					Type:  wire.TypeA,
					Class: wire.ClassIN,
					TTL:   60,
					Data:  wire.RDataA{Address: [4]byte{10, 0, 0, byte(i + 1)}},
				}},
			}
			payload, err := reply.Bytes()
			if err != nil {
				return
			}
			conn.WriteToUDP(payload, peer)
		}
	}()

	return conn, received
}

func TestForwarderSplitsAndRecombines(t *testing.T) {
	upstream, received := fakeUpstream(t, 2)

	forwarder := NewForwarder(upstream.LocalAddr().String(), 512)

	query := &wire.Message{
		Header: wire.Header{
			ID:            7,
			Opcode:        wire.OpcodeStandardQuery,
			RD:            true,
			QuestionCount: 2,
		},
		Questions: []wire.Question{
			{Name: wire.NameFromString("one.example"), Type: wire.TypeA, Class: wire.ClassIN},
			{Name: wire.NameFromString("two.example"), Type: wire.TypeA, Class: wire.ClassIN},
		},
	}

	reply, err := forwarder.Respond(context.Background(), query)
	require.NoError(t, err)

	// Sub-queries were issued sequentially in question order.
	require.Equal(t, "one.example", <-received)
	require.Equal(t, "two.example", <-received)

	require.True(t, reply.Header.QR)
	require.Equal(t, uint16(7), reply.Header.ID)
	require.Equal(t, uint8(0), reply.Header.Rcode)
	require.Equal(t, uint16(2), reply.Header.QuestionCount)
	require.Equal(t, uint16(2), reply.Header.AnswerCount)
	require.Len(t, reply.Questions, 2)

	require.Len(t, reply.Answers, 2)
	require.Equal(t, "one.example", reply.Answers[0].Name.String())
	require.Equal(t, wire.RDataA{Address: [4]byte{10, 0, 0, 1}}, reply.Answers[0].Data)
	require.Equal(t, "two.example", reply.Answers[1].Name.String())
	require.Equal(t, wire.RDataA{Address: [4]byte{10, 0, 0, 2}}, reply.Answers[1].Data)
}

func TestForwarderAbortsOnBadUpstreamReply(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// The upstream answers with garbage that cannot decode.
	go func() {
		buf := make([]byte, 512)
		size, peer, err := conn.ReadFromUDP(buf)
		if err != nil || size == 0 {
			return
		}
		conn.WriteToUDP([]byte{0xDE, 0xAD}, peer)
	}()

	forwarder := NewForwarder(conn.LocalAddr().String(), 512)

	query := &wire.Message{
		Header: wire.Header{QuestionCount: 1},
		Questions: []wire.Question{
			{Name: wire.NameFromString("example.com"), Type: wire.TypeA, Class: wire.ClassIN},
		},
	}

	_, err = forwarder.Respond(context.Background(), query)
	require.Error(t, err)
}

func TestForwarderHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	forwarder := NewForwarder("127.0.0.1:1", 512)
	query := &wire.Message{
		Header: wire.Header{QuestionCount: 1},
		Questions: []wire.Question{
			{Name: wire.NameFromString("example.com"), Type: wire.TypeA, Class: wire.ClassIN},
		},
	}

	_, err := forwarder.Respond(ctx, query)
	require.ErrorIs(t, err, context.Canceled)
}
