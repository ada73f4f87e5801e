// Package dump renders raw datagrams as colored hex/ASCII dumps for
// debugging, with the fixed header highlighted so the bit-packed fields
// are easy to pick out.
package dump

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"stubdns/internal/wire"
)

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	headerColor = color.New(color.FgYellow)
)

// Packet writes a hex/ASCII dump of one datagram to stdout. direction is
// a short tag such as "query" or "reply".
func Packet(direction string, data []byte) {
	titleColor.Printf("---- %s (%d bytes) ----\n", direction, len(data))

	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		line := formatLine(off, data[off:end])

		// The first 12 bytes are the fixed header.
		if off < wire.HeaderLen {
			headerColor.Println(line)
		} else {
			fmt.Println(line)
		}
	}
}

func formatLine(off int, line []byte) string {
	var hexPart, asciiPart strings.Builder
	for i := 0; i < 16; i++ {
		if i < len(line) {
			fmt.Fprintf(&hexPart, "%02x ", line[i])
			if line[i] >= 0x20 && line[i] < 0x7F {
				asciiPart.WriteByte(line[i])
			} else {
				asciiPart.WriteByte('.')
			}
		} else {
			hexPart.WriteString("   ")
		}
	}
	return fmt.Sprintf("%04x  %s |%s|", off, hexPart.String(), asciiPart.String())
}
