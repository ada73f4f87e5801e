package wire

import (
	"encoding/binary"
	"io"
)

// Type is a resource record or question type code. Only codes present in
// the enumeration below are accepted by the decoder.
type Type uint16

const (
	// TypeA is a host address.
	TypeA Type = 1
	// TypeNS is an authoritative name server.
	TypeNS Type = 2
	// TypeMD is a mail destination (obsolete, use MX).
	TypeMD Type = 3
	// TypeMF is a mail forwarder (obsolete, use MX).
	TypeMF Type = 4
	// TypeCNAME is the canonical name for an alias.
	TypeCNAME Type = 5
	// TypeSOA marks the start of a zone of authority.
	TypeSOA Type = 6
	// TypeMB is a mailbox domain name (experimental).
	TypeMB Type = 7
	// TypeMG is a mail group member (experimental).
	TypeMG Type = 8
	// TypeMR is a mail rename domain name (experimental).
	TypeMR Type = 9
	// TypeNULL is a null RR (experimental).
	TypeNULL Type = 10
	// TypeWKS is a well known service description.
	TypeWKS Type = 11
	// TypePTR is a domain name pointer.
	TypePTR Type = 12
	// TypeHINFO is host information.
	TypeHINFO Type = 13
	// TypeMINFO is mailbox or mail list information.
	TypeMINFO Type = 14
	// TypeMX is a mail exchange.
	TypeMX Type = 15
	// TypeTXT is text strings.
	TypeTXT Type = 16

	// TypeAXFR requests a transfer of an entire zone (question only).
	TypeAXFR Type = 252
	// TypeMAILB requests mailbox-related records (question only).
	TypeMAILB Type = 253
	// TypeMAILA requests mail agent RRs (obsolete, question only).
	TypeMAILA Type = 254
	// TypeWildcard requests all records (question only).
	TypeWildcard Type = 255
)

// TypeFromCode maps a 16-bit code to a Type, failing with
// InvalidTypeError for codes outside the enumeration.
func TypeFromCode(code uint16) (Type, error) {
	switch t := Type(code); t {
	case TypeA, TypeNS, TypeMD, TypeMF, TypeCNAME, TypeSOA, TypeMB, TypeMG,
		TypeMR, TypeNULL, TypeWKS, TypePTR, TypeHINFO, TypeMINFO, TypeMX,
		TypeTXT, TypeAXFR, TypeMAILB, TypeMAILA, TypeWildcard:
		return t, nil
	default:
		return 0, &InvalidTypeError{Code: code}
	}
}

// Class is a resource record or question class code.
type Class uint16

const (
	// ClassIN is the Internet.
	ClassIN Class = 1
	// ClassCS is the CSNET class (obsolete).
	ClassCS Class = 2
	// ClassCH is the CHAOS class.
	ClassCH Class = 3
	// ClassHS is Hesiod.
	ClassHS Class = 4

	// ClassWildcard matches any class (question only).
	ClassWildcard Class = 255
)

// ClassFromCode maps a 16-bit code to a Class, failing with
// InvalidClassError for codes outside the enumeration.
func ClassFromCode(code uint16) (Class, error) {
	switch c := Class(code); c {
	case ClassIN, ClassCS, ClassCH, ClassHS, ClassWildcard:
		return c, nil
	default:
		return 0, &InvalidClassError{Code: code}
	}
}

// Question is one entry of the question section.
type Question struct {
	Name  Name
	Type  Type
	Class Class
}

func decodeQuestion(c *cursor) (Question, error) {
	name, err := decodeName(c)
	if err != nil {
		return Question{}, err
	}

	rawType, err := c.u16()
	if err != nil {
		return Question{}, err
	}
	qtype, err := TypeFromCode(rawType)
	if err != nil {
		return Question{}, err
	}

	rawClass, err := c.u16()
	if err != nil {
		return Question{}, err
	}
	class, err := ClassFromCode(rawClass)
	if err != nil {
		return Question{}, err
	}

	return Question{Name: name, Type: qtype, Class: class}, nil
}

// Encode writes the question in wire form: name, then big-endian type
// and class.
func (q Question) Encode(w io.Writer) error {
	if err := q.Name.Encode(w); err != nil {
		return err
	}
	var b [4]byte
	binary.BigEndian.PutUint16(b[0:2], uint16(q.Type))
	binary.BigEndian.PutUint16(b[2:4], uint16(q.Class))
	_, err := w.Write(b[:])
	return err
}
