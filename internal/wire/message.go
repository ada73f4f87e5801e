// Package wire implements the DNS wire-format codec: the fixed header,
// compression-aware domain names, questions, resource records, and the
// message assembler tying them together.
//
// Decoded messages alias the datagram buffer they were parsed from. A
// message is built fresh per datagram and must not outlive that buffer.
package wire

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder is the serialization capability shared by every section of a
// DNS message. Implementations write their exact wire form to w.
type Encoder interface {
	Encode(w io.Writer) error
}

// Message is one parsed DNS message: header, question section, and
// answer section. The header counts are authoritative: decoding reads
// exactly QuestionCount questions and AnswerCount records, and encoding
// performs no count reconciliation.
type Message struct {
	Header    Header
	Questions []Question
	Answers   []ResourceRecord
}

// DecodeMessage parses a raw datagram into a Message. Any shortfall in a
// section surfaces the underlying codec error.
func DecodeMessage(buf []byte) (*Message, error) {
	c := newCursor(buf)

	header, err := decodeHeader(c)
	if err != nil {
		return nil, fmt.Errorf("decoding header: %w", err)
	}

	questions := make([]Question, 0, header.QuestionCount)
	for i := 0; i < int(header.QuestionCount); i++ {
		q, err := decodeQuestion(c)
		if err != nil {
			return nil, fmt.Errorf("decoding question %d: %w", i, err)
		}
		questions = append(questions, q)
	}

	answers := make([]ResourceRecord, 0, header.AnswerCount)
	for i := 0; i < int(header.AnswerCount); i++ {
		rr, err := decodeRecord(c)
		if err != nil {
			return nil, fmt.Errorf("decoding answer %d: %w", i, err)
		}
		answers = append(answers, rr)
	}

	return &Message{Header: header, Questions: questions, Answers: answers}, nil
}

// Encode writes the header, each question, and each answer in sequence.
func (m *Message) Encode(w io.Writer) error {
	sections := make([]Encoder, 0, 1+len(m.Questions)+len(m.Answers))
	sections = append(sections, m.Header)
	for _, q := range m.Questions {
		sections = append(sections, q)
	}
	for _, rr := range m.Answers {
		sections = append(sections, rr)
	}
	for _, s := range sections {
		if err := s.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the encoded wire form of the message.
func (m *Message) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
