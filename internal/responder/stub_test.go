package responder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"stubdns/internal/wire"
)

func TestStubAnswersSingleQuestion(t *testing.T) {
	stub, err := NewStub("8.8.8.8", 60)
	require.NoError(t, err)

	query := &wire.Message{
		Header: wire.Header{
			ID:            0x4242,
			Opcode:        wire.OpcodeStandardQuery,
			RD:            true,
			Z:             3,
			QuestionCount: 1,
		},
		Questions: []wire.Question{
			{Name: wire.NameFromString("example.com"), Type: wire.TypeA, Class: wire.ClassIN},
		},
	}

	reply, err := stub.Respond(context.Background(), query)
	require.NoError(t, err)

	require.True(t, reply.Header.QR)
	require.False(t, reply.Header.AA)
	require.False(t, reply.Header.TC)
	require.False(t, reply.Header.RA)
	require.True(t, reply.Header.RD)
	require.Equal(t, uint8(0), reply.Header.Z)
	require.Equal(t, uint8(0), reply.Header.Rcode)
	require.Equal(t, uint16(0x4242), reply.Header.ID)
	require.Equal(t, uint16(1), reply.Header.QuestionCount)
	require.Equal(t, uint16(1), reply.Header.AnswerCount)

	require.Len(t, reply.Answers, 1)
	rr := reply.Answers[0]
	require.Equal(t, "example.com", rr.Name.String())
	require.Equal(t, wire.TypeA, rr.Type)
	require.Equal(t, wire.ClassIN, rr.Class)
	require.Equal(t, uint32(60), rr.TTL)
	require.Equal(t, wire.RDataA{Address: [4]byte{8, 8, 8, 8}}, rr.Data)
}

func TestStubAnswersEveryQuestion(t *testing.T) {
	stub, err := NewStub("1.2.3.4", 300)
	require.NoError(t, err)

	query := &wire.Message{
		Header: wire.Header{QuestionCount: 3},
		Questions: []wire.Question{
			{Name: wire.NameFromString("a.example"), Type: wire.TypeA, Class: wire.ClassIN},
			{Name: wire.NameFromString("b.example"), Type: wire.TypeA, Class: wire.ClassIN},
			{Name: wire.NameFromString("c.example"), Type: wire.TypeA, Class: wire.ClassIN},
		},
	}

	reply, err := stub.Respond(context.Background(), query)
	require.NoError(t, err)
	require.Equal(t, uint16(3), reply.Header.AnswerCount)
	require.Len(t, reply.Answers, 3)
	for i, rr := range reply.Answers {
		require.True(t, query.Questions[i].Name.Equal(rr.Name))
		require.Equal(t, uint32(300), rr.TTL)
	}
}

func TestStubNonStandardOpcode(t *testing.T) {
	stub, err := NewStub("8.8.8.8", 60)
	require.NoError(t, err)

	query := &wire.Message{
		Header: wire.Header{Opcode: wire.OpcodeInverseQuery, QuestionCount: 1},
		Questions: []wire.Question{
			{Name: wire.NameFromString("example.com"), Type: wire.TypeA, Class: wire.ClassIN},
		},
	}

	reply, err := stub.Respond(context.Background(), query)
	require.NoError(t, err)
	require.Equal(t, uint8(rcodeNotImplemented), reply.Header.Rcode)
}

func TestNewStubRejectsBadAddress(t *testing.T) {
	_, err := NewStub("not-an-ip", 60)
	require.Error(t, err)
}
