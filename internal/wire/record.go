package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"net/netip"
)

// RData is the type-specific payload of a resource record. It is a closed
// union: adding support for a new record type means adding a new variant
// here, not branching inside the codec.
type RData interface {
	Encoder
	rdata()
}

// RDataA is the payload of an A record: a 4-byte IPv4 address.
type RDataA struct {
	Address [4]byte
}

func (RDataA) rdata() {}

// RDataAFromString builds an A payload from a dotted-quad string.
func RDataAFromString(s string) (RDataA, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return RDataA{}, fmt.Errorf("not an IPv4 address: %q", s)
	}
	return RDataA{Address: addr.As4()}, nil
}

func (r RDataA) String() string {
	return netip.AddrFrom4(r.Address).String()
}

// Encode writes the record-data length followed by the address. The
// length field is always 4 for an A body.
func (r RDataA) Encode(w io.Writer) error {
	_, err := w.Write([]byte{0, 4, r.Address[0], r.Address[1], r.Address[2], r.Address[3]})
	return err
}

// ResourceRecord is one entry of the answer section.
type ResourceRecord struct {
	Name  Name
	Type  Type
	Class Class
	// TTL is how many seconds a consumer may cache the record.
	TTL  uint32
	Data RData
}

// decodeRecord reads one resource record. The declared record-data length
// is consumed but not validated against the interpreted payload: every
// body is read as a 4-byte A address, so records of other types would be
// misinterpreted here.
func decodeRecord(c *cursor) (ResourceRecord, error) {
	var rr ResourceRecord
	var err error

	if rr.Name, err = decodeName(c); err != nil {
		return ResourceRecord{}, err
	}

	rawType, err := c.u16()
	if err != nil {
		return ResourceRecord{}, err
	}
	if rr.Type, err = TypeFromCode(rawType); err != nil {
		return ResourceRecord{}, err
	}

	rawClass, err := c.u16()
	if err != nil {
		return ResourceRecord{}, err
	}
	if rr.Class, err = ClassFromCode(rawClass); err != nil {
		return ResourceRecord{}, err
	}

	if rr.TTL, err = c.u32(); err != nil {
		return ResourceRecord{}, err
	}

	if _, err = c.u16(); err != nil { // record-data length
		return ResourceRecord{}, err
	}

	body, err := c.take(4)
	if err != nil {
		return ResourceRecord{}, err
	}
	rr.Data = RDataA{Address: [4]byte(body)}
	return rr, nil
}

// Encode writes the record in wire form: name, type, class, TTL, then the
// record data with its length prefix.
func (rr ResourceRecord) Encode(w io.Writer) error {
	if err := rr.Name.Encode(w); err != nil {
		return err
	}
	var b [8]byte
	binary.BigEndian.PutUint16(b[0:2], uint16(rr.Type))
	binary.BigEndian.PutUint16(b[2:4], uint16(rr.Class))
	binary.BigEndian.PutUint32(b[4:8], rr.TTL)
	if _, err := w.Write(b[:]); err != nil {
		return err
	}
	return rr.Data.Encode(w)
}
