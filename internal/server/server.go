// Package server owns the UDP listener: a single receive loop feeding a
// bounded intake queue, one dispatcher draining it, and one goroutine per
// datagram. Tasks share no mutable state; the socket is shared read-only
// for replies.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"

	"stubdns/internal/composition"
	"stubdns/internal/config"
	"stubdns/internal/dump"
	"stubdns/internal/wire"
)

// datagram is one received packet queued for dispatch. payload is an
// exclusive copy of the receive buffer, owned by the handling task for
// its lifetime.
type datagram struct {
	payload []byte
	peer    *net.UDPAddr
}

// UDPServer is the DNS server transport.
type UDPServer struct {
	server    config.ServerConfig
	logging   config.LoggingConfig
	responder composition.Responder
	queue     chan datagram

	mu   sync.Mutex
	conn *net.UDPConn
	wg   sync.WaitGroup
}

// New creates a UDP server answering with the given responder.
func New(cfg *config.Config, r composition.Responder) *UDPServer {
	return &UDPServer{
		server:    cfg.Server,
		logging:   cfg.Logging,
		responder: r,
		queue:     make(chan datagram, cfg.Server.QueueSize),
	}
}

// Start binds the socket and runs the receive loop until ctx is
// cancelled. A bind failure is returned to the caller and is fatal;
// per-datagram failures are logged and never stop the loop.
func (s *UDPServer) Start(ctx context.Context) error {
	addr, err := net.ResolveUDPAddr("udp", s.server.Address())
	if err != nil {
		return fmt.Errorf("resolving listen address: %w", err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", s.server.Address(), err)
	}
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	go s.dispatch(ctx)

	buf := make([]byte, s.server.MaxPacketSize)
	for {
		n, peer, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Printf("receive error: %v", err)
			continue
		}

		if s.logging.LogQueries {
			log.Printf("received %d bytes from %s", n, peer)
		}

		payload := make([]byte, n)
		copy(payload, buf[:n])

		// Blocks when the queue is full: senders wait for space rather
		// than the server dropping datagrams.
		select {
		case s.queue <- datagram{payload: payload, peer: peer}:
		case <-ctx.Done():
			return nil
		}
	}
}

// dispatch drains the intake queue, spawning one independent task per
// datagram.
func (s *UDPServer) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case d := <-s.queue:
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.handle(ctx, d)
			}()
		}
	}
}

// handle is the recovery boundary for one datagram: codec and forwarding
// failures are logged and the datagram dropped, never propagated to the
// receive loop.
func (s *UDPServer) handle(ctx context.Context, d datagram) {
	if s.logging.PacketDump {
		dump.Packet("query", d.payload)
	}

	query, err := wire.DecodeMessage(d.payload)
	if err != nil {
		log.Printf("dropping datagram from %s: %v", d.peer, err)
		return
	}

	reply, err := s.responder.Respond(ctx, query)
	if err != nil {
		log.Printf("dropping datagram from %s: %v", d.peer, err)
		return
	}

	payload, err := reply.Bytes()
	if err != nil {
		log.Printf("dropping datagram from %s: encoding reply: %v", d.peer, err)
		return
	}
	if s.logging.PacketDump {
		dump.Packet("reply", payload)
	}

	if _, err := s.conn.WriteToUDP(payload, d.peer); err != nil {
		log.Printf("sending reply to %s: %v", d.peer, err)
	}
}

// LocalAddr returns the bound address, or nil before Start has bound the
// socket.
func (s *UDPServer) LocalAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Stop closes the socket and waits for in-flight handlers to finish.
func (s *UDPServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn != nil {
		conn.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
