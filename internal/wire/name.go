package wire

import (
	"bytes"
	"io"
	"strings"
)

// maxLabels bounds the work done on adversarial input. Once a name has
// accumulated this many labels, parsing treats it as complete regardless
// of further content.
const maxLabels = 30

// pointerMask marks a length octet whose top two bits are 11, turning it
// and the following octet into a 14-bit back-reference.
const pointerMask = 0xC0

// Label is one length-prefixed segment of a domain name. Decoded labels
// alias the datagram buffer they were parsed from and are only valid
// while that buffer is retained.
type Label []byte

// Name is an ordered sequence of labels. Two names are equal when their
// resolved label sequences are equal, regardless of whether either was
// decoded through a compression pointer.
type Name struct {
	Labels []Label
}

// NameFromString builds a Name from a dotted domain string. A trailing
// dot and empty segments are ignored.
func NameFromString(s string) Name {
	var labels []Label
	for _, part := range strings.Split(strings.TrimSuffix(s, "."), ".") {
		if part == "" {
			continue
		}
		labels = append(labels, Label(part))
	}
	return Name{Labels: labels}
}

// String returns the dotted form of the name.
func (n Name) String() string {
	parts := make([]string, 0, len(n.Labels))
	for _, l := range n.Labels {
		parts = append(parts, string(l))
	}
	return strings.Join(parts, ".")
}

// Equal reports whether both names resolve to the same label sequence.
func (n Name) Equal(other Name) bool {
	if len(n.Labels) != len(other.Labels) {
		return false
	}
	for i := range n.Labels {
		if !bytes.Equal(n.Labels[i], other.Labels[i]) {
			return false
		}
	}
	return true
}

// Encode writes the fully uncompressed wire form: each label prefixed by
// its length, then a zero terminator. Compression is never re-introduced,
// even when re-serializing a name that was decoded through a pointer.
func (n Name) Encode(w io.Writer) error {
	for _, l := range n.Labels {
		if _, err := w.Write([]byte{uint8(len(l))}); err != nil {
			return err
		}
		if _, err := w.Write(l); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{0})
	return err
}

// decodeName reads a name at the cursor position. A compression pointer
// redirects the remainder of the name to an earlier position in the same
// buffer; exactly one jump is performed and a second pointer found at the
// target ends the name instead of being chased.
func decodeName(c *cursor) (Name, error) {
	var labels []Label
	for {
		b, err := c.u8()
		if err != nil {
			return Name{}, err
		}

		switch {
		case b == 0:
			return Name{Labels: labels}, nil

		case b&pointerMask == pointerMask:
			low, err := c.u8()
			if err != nil {
				return Name{}, err
			}
			offset := int(b&^pointerMask)<<8 | int(low)
			if offset >= len(c.buf) {
				return Name{}, &InvalidNameError{Reason: "reference out of bounds"}
			}
			rest, err := readLabelRun(c.buf, offset, len(labels))
			if err != nil {
				return Name{}, err
			}
			return Name{Labels: append(labels, rest...)}, nil

		default:
			content, err := c.take(int(b))
			if err != nil {
				return Name{}, err
			}
			labels = append(labels, Label(content))
			if len(labels) > maxLabels {
				return Name{Labels: labels}, nil
			}
		}
	}
}

// readLabelRun reads one run of length-prefixed labels starting at offset,
// up to but not including the next zero terminator. have is the number of
// labels already collected, so the label cap covers the whole name.
func readLabelRun(buf []byte, offset, have int) ([]Label, error) {
	var labels []Label
	pos := offset
	for {
		if pos >= len(buf) {
			return nil, &NotEnoughDataError{Requested: 1, Available: 0}
		}
		b := buf[pos]
		pos++

		if b == 0 {
			return labels, nil
		}
		if b&pointerMask == pointerMask {
			// No second jump.
			return labels, nil
		}

		length := int(b)
		if len(buf)-pos < length {
			return nil, &NotEnoughDataError{Requested: length, Available: len(buf) - pos}
		}
		labels = append(labels, Label(buf[pos:pos+length]))
		pos += length
		if have+len(labels) > maxLabels {
			return labels, nil
		}
	}
}
