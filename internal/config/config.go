package config

import (
	"net"
	"strconv"
)

// Config is the complete server configuration parsed from YAML.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Resolver ResolverConfig `yaml:"resolver"`
	Stub     StubConfig     `yaml:"stub"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig controls the UDP listener.
type ServerConfig struct {
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`
	// QueueSize bounds the intake queue between the receive loop and the
	// dispatcher. Receiving blocks when the queue is full.
	QueueSize     int `yaml:"queue_size"`
	MaxPacketSize int `yaml:"max_packet_size"`
}

// Address returns the listen address in host:port form.
func (s *ServerConfig) Address() string {
	return net.JoinHostPort(s.BindAddress, strconv.Itoa(s.Port))
}

// ResolverConfig selects the responder mode. An empty Address with
// UseSystemDefaults false means stub-answer mode.
type ResolverConfig struct {
	// Address is the upstream resolver in host:port form.
	Address string `yaml:"address"`
	// UseSystemDefaults discovers the host's configured resolver when
	// Address is empty.
	UseSystemDefaults bool `yaml:"use_system_defaults"`
}

// StubConfig controls the canned answer synthesized in stub mode.
type StubConfig struct {
	Address string `yaml:"address"`
	TTL     uint32 `yaml:"ttl"`
}

// LoggingConfig controls per-datagram logging.
type LoggingConfig struct {
	LogQueries bool `yaml:"log_queries"`
	PacketDump bool `yaml:"packet_dump"`
}
