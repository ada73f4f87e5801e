package wire

import "encoding/binary"

// cursor walks a datagram buffer during decoding. It keeps the whole buffer
// in reach because compression pointers reference absolute offsets into the
// message, not positions relative to the current read.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// remaining returns how many bytes are left to read.
func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) u8() (uint8, error) {
	if c.remaining() < 1 {
		return 0, &NotEnoughDataError{Requested: 1, Available: 0}
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) u16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, &NotEnoughDataError{Requested: 2, Available: c.remaining()}
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, &NotEnoughDataError{Requested: 4, Available: c.remaining()}
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// take consumes n bytes and returns them as a subslice aliasing the
// underlying buffer. Callers must not retain the result beyond the
// lifetime of the datagram buffer.
func (c *cursor) take(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, &NotEnoughDataError{Requested: n, Available: c.remaining()}
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
