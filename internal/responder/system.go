package responder

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/miekg/dns"
)

// SystemResolver returns the primary DNS resolver configured for the
// current host in host:port form.
func SystemResolver() (string, error) {
	if runtime.GOOS == "windows" {
		return "", fmt.Errorf("system resolver discovery is not supported on windows")
	}

	// This works for Linux, macOS, BSD, etc.
	dnsConfig, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil {
		return "", fmt.Errorf("could not get system resolver config: %w", err)
	}
	if len(dnsConfig.Servers) == 0 {
		return "", fmt.Errorf("no system DNS servers found")
	}

	// Use the primary system resolver, defaulting the port if absent.
	port := dnsConfig.Port
	if port == "" {
		port = "53"
	}
	return formatResolverAddress(dnsConfig.Servers[0], port), nil
}

// formatResolverAddress formats an IP:port combination, bracketing IPv6
// addresses.
func formatResolverAddress(ip, port string) string {
	if strings.Contains(ip, ":") {
		return fmt.Sprintf("[%s]:%s", ip, port)
	}
	return fmt.Sprintf("%s:%s", ip, port)
}
