// A one-shot query client: builds a DNS query with the wire codec, sends
// it over UDP, and prints the decoded reply.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net"
	"time"

	"stubdns/internal/dump"
	"stubdns/internal/wire"
)

// queryTypes maps the type names the client accepts to their wire codes.
var queryTypes = map[string]wire.Type{
	"A":     wire.TypeA,
	"NS":    wire.TypeNS,
	"CNAME": wire.TypeCNAME,
	"MX":    wire.TypeMX,
	"TXT":   wire.TypeTXT,
	"PTR":   wire.TypePTR,
}

func main() {
	serverAddr := flag.String("server", "127.0.0.1:2053", "DNS server address (host:port)")
	name := flag.String("name", "example.com", "domain name to query")
	qtype := flag.String("type", "A", "query type (A, NS, CNAME, MX, TXT, PTR)")
	showDump := flag.Bool("dump", false, "hex dump the raw packets")
	flag.Parse()

	code, ok := queryTypes[*qtype]
	if !ok {
		log.Fatalf("unsupported query type: %s", *qtype)
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	query := &wire.Message{
		Header: wire.Header{
			ID:            uint16(r.Intn(65536)),
			Opcode:        wire.OpcodeStandardQuery,
			RD:            true,
			QuestionCount: 1,
		},
		Questions: []wire.Question{{
			Name:  wire.NameFromString(*name),
			Type:  code,
			Class: wire.ClassIN,
		}},
	}

	payload, err := query.Bytes()
	if err != nil {
		log.Fatalf("encoding query: %v", err)
	}
	if *showDump {
		dump.Packet("query", payload)
	}

	raddr, err := net.ResolveUDPAddr("udp", *serverAddr)
	if err != nil {
		log.Fatalf("failed to resolve UDP address: %v", err)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		log.Fatalf("failed to connect to server: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		log.Fatalf("failed to send query: %v", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		log.Fatalf("failed to set read deadline: %v", err)
	}

	buf := make([]byte, 512)
	n, err := conn.Read(buf)
	if err != nil {
		log.Fatalf("failed to read reply: %v", err)
	}
	if *showDump {
		dump.Packet("reply", buf[:n])
	}

	reply, err := wire.DecodeMessage(buf[:n])
	if err != nil {
		log.Fatalf("decoding reply: %v", err)
	}

	fmt.Printf("id=%d opcode=%s rcode=%d answers=%d\n",
		reply.Header.ID, reply.Header.Opcode, reply.Header.Rcode, reply.Header.AnswerCount)
	for _, rr := range reply.Answers {
		if a, ok := rr.Data.(wire.RDataA); ok {
			fmt.Printf("%s\t%d\tA\t%s\n", rr.Name, rr.TTL, a)
		}
	}
}
