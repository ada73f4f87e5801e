// Package responder turns one parsed query into one reply message, either
// by synthesizing canned answers (stub mode) or by splitting the query and
// forwarding each question to an upstream resolver (forwarding mode).
package responder

import "stubdns/internal/wire"

// rcodeNotImplemented is returned for any opcode other than a standard
// query.
const rcodeNotImplemented = 4

// replyHeader rewrites a query header for the reply: the reply bit is set,
// the authoritative/truncation/recursion-available flags and the reserved
// bits are cleared, and the response code is 0 for a standard query and 4
// (not implemented) for anything else. The authority and additional counts
// are zeroed because the reply carries neither section.
func replyHeader(h wire.Header, answerCount uint16) wire.Header {
	h.QR = true
	h.AA = false
	h.TC = false
	h.RA = false
	h.Z = 0
	if h.Opcode == wire.OpcodeStandardQuery {
		h.Rcode = 0
	} else {
		h.Rcode = rcodeNotImplemented
	}
	h.AnswerCount = answerCount
	h.AuthorityCount = 0
	h.AdditionalCount = 0
	return h
}
