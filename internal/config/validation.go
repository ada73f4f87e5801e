package config

import (
	"fmt"
	"net"
	"strings"
)

// ValidationErrors is a custom error type that holds a slice of
// validation errors (allows for 1+).
type ValidationErrors []error

// Error implements the error interface for ValidationErrors. It joins
// all the underlying errors into a single string.
func (v ValidationErrors) Error() string {
	var b strings.Builder

	b.WriteString("validation failed with the following errors:\n")
	for _, err := range v {
		b.WriteString(fmt.Sprintf("- %s\n", err))
	}
	return b.String()
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if ip := net.ParseIP(c.Server.BindAddress); ip == nil {
		errs = append(errs, fmt.Errorf("bind_address %q is not a valid IP address", c.Server.BindAddress))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is not in valid range (1-65535)", c.Server.Port))
	}
	if c.Server.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("queue_size must be at least 1, got %d", c.Server.QueueSize))
	}
	if c.Server.MaxPacketSize < 512 {
		errs = append(errs, fmt.Errorf("max_packet_size must be at least 512 bytes (DNS minimum), got %d", c.Server.MaxPacketSize))
	}
	if c.Server.MaxPacketSize > 65535 {
		errs = append(errs, fmt.Errorf("max_packet_size cannot exceed 65535 bytes (UDP maximum), got %d", c.Server.MaxPacketSize))
	}

	if c.Resolver.Address != "" {
		if _, _, err := net.SplitHostPort(c.Resolver.Address); err != nil {
			errs = append(errs, fmt.Errorf("resolver address %q is not a valid host:port: %w", c.Resolver.Address, err))
		}
	}

	if ip := net.ParseIP(c.Stub.Address); ip == nil || ip.To4() == nil {
		errs = append(errs, fmt.Errorf("stub address %q is not a valid IPv4 address", c.Stub.Address))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
