package wire

import (
	"encoding/binary"
	"io"
)

// HeaderLen is the fixed size of a DNS message header.
const HeaderLen = 12

// Opcode is the 4-bit query kind carried in the header.
type Opcode uint8

const (
	// OpcodeStandardQuery is a standard query (QUERY).
	OpcodeStandardQuery Opcode = 0
	// OpcodeInverseQuery is an inverse query (IQUERY).
	OpcodeInverseQuery Opcode = 1
	// OpcodeServerStatus is a server status request (STATUS).
	OpcodeServerStatus Opcode = 2
	// OpcodeInvalid stands in for any other 4-bit pattern seen on the
	// wire. The message as a whole remains structurally valid.
	OpcodeInvalid Opcode = 3
)

func (o Opcode) String() string {
	switch o {
	case OpcodeStandardQuery:
		return "QUERY"
	case OpcodeInverseQuery:
		return "IQUERY"
	case OpcodeServerStatus:
		return "STATUS"
	default:
		return "INVALID"
	}
}

// Header is the fixed 12-byte header of a DNS message.
//
// The count fields reflect the number of entries actually present in the
// message: decoding reads exactly that many entries per section, and on
// encoding the caller is responsible for keeping the counts consistent
// with the section slices it supplies.
type Header struct {
	// ID is the transaction ID. Responses must echo the query's ID.
	ID uint16
	// QR is true for a reply packet, false for a question packet.
	QR bool
	// Opcode is the kind of query in this message.
	Opcode Opcode
	// AA is true when the responding server is authoritative for the
	// queried domain.
	AA bool
	// TC is true when the message was truncated.
	TC bool
	// RD is set by the sender to request recursive resolution.
	RD bool
	// RA is set by a server to indicate recursion is available.
	RA bool
	// Z holds the reserved bits. They round-trip verbatim.
	Z uint8
	// Rcode is the response status code.
	Rcode uint8

	QuestionCount   uint16
	AnswerCount     uint16
	AuthorityCount  uint16
	AdditionalCount uint16
}

// DecodeHeader decodes the fixed header from the start of buf. It fails
// with NotEnoughDataError when fewer than HeaderLen bytes are available.
func DecodeHeader(buf []byte) (Header, error) {
	return decodeHeader(newCursor(buf))
}

func decodeHeader(c *cursor) (Header, error) {
	if c.remaining() < HeaderLen {
		return Header{}, &NotEnoughDataError{Requested: HeaderLen, Available: c.remaining()}
	}

	var h Header
	h.ID, _ = c.u16()

	b, _ := c.u8()
	h.QR = b&0x80 != 0
	switch (b >> 3) & 0x0F {
	case 0:
		h.Opcode = OpcodeStandardQuery
	case 1:
		h.Opcode = OpcodeInverseQuery
	case 2:
		h.Opcode = OpcodeServerStatus
	default:
		h.Opcode = OpcodeInvalid
	}
	h.AA = b&0x04 != 0
	h.TC = b&0x02 != 0
	h.RD = b&0x01 != 0

	b, _ = c.u8()
	h.RA = b&0x80 != 0
	h.Z = (b >> 4) & 0x07
	h.Rcode = b & 0x0F

	h.QuestionCount, _ = c.u16()
	h.AnswerCount, _ = c.u16()
	h.AuthorityCount, _ = c.u16()
	h.AdditionalCount, _ = c.u16()
	return h, nil
}

// Encode writes the exact 12-byte wire form of the header. Field widths
// are already constrained by the types; no further range validation
// happens here.
func (h Header) Encode(w io.Writer) error {
	var b [HeaderLen]byte
	binary.BigEndian.PutUint16(b[0:2], h.ID)
	b[2] = boolBit(h.QR)<<7 | uint8(h.Opcode&0x0F)<<3 | boolBit(h.AA)<<2 | boolBit(h.TC)<<1 | boolBit(h.RD)
	b[3] = boolBit(h.RA)<<7 | (h.Z&0x07)<<4 | h.Rcode&0x0F
	binary.BigEndian.PutUint16(b[4:6], h.QuestionCount)
	binary.BigEndian.PutUint16(b[6:8], h.AnswerCount)
	binary.BigEndian.PutUint16(b[8:10], h.AuthorityCount)
	binary.BigEndian.PutUint16(b[10:12], h.AdditionalCount)
	_, err := w.Write(b[:])
	return err
}

func boolBit(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}
