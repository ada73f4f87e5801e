package wire

import "fmt"

// NotEnoughDataError reports a decode that ran off the end of the buffer.
// Requested is how many bytes the decoder needed, Available how many were
// actually left.
type NotEnoughDataError struct {
	Requested int
	Available int
}

func (e *NotEnoughDataError) Error() string {
	return fmt.Sprintf("not enough data: requested %d bytes, %d available", e.Requested, e.Available)
}

// InvalidNameError reports a malformed domain name, such as a compression
// pointer referencing a position past the end of the message.
type InvalidNameError struct {
	Reason string
}

func (e *InvalidNameError) Error() string {
	return "invalid name: " + e.Reason
}

// InvalidTypeError reports a type code outside the supported enumeration.
type InvalidTypeError struct {
	Code uint16
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type code: %d", e.Code)
}

// InvalidClassError reports a class code outside the supported enumeration.
type InvalidClassError struct {
	Code uint16
}

func (e *InvalidClassError) Error() string {
	return fmt.Sprintf("invalid class code: %d", e.Code)
}
