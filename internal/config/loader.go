package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validating the configuration file.
type Loader struct {
	path   string
	config *Config
}

// NewLoader is Loader's constructor.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, parses, defaults, and validates the configuration file.
func (l *Loader) Load() (*Config, error) {
	// Step 1: Ensure that the config file exists
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", l.path)
	}

	// Step 2: Read the file
	yamlData, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	// Step 3: Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(yamlData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	// Step 4: Apply defaults for missing values
	l.applyDefaults(&cfg)

	// Step 5: Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	l.config = &cfg
	return &cfg, nil
}

// applyDefaults sets sensible default values for any missing configuration.
func (l *Loader) applyDefaults(cfg *Config) {
	if cfg.Server.BindAddress == "" {
		cfg.Server.BindAddress = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 2053
	}
	if cfg.Server.QueueSize == 0 {
		cfg.Server.QueueSize = 1000
	}
	if cfg.Server.MaxPacketSize == 0 {
		cfg.Server.MaxPacketSize = 512
	}

	if cfg.Stub.Address == "" {
		cfg.Stub.Address = "8.8.8.8"
	}
	if cfg.Stub.TTL == 0 {
		cfg.Stub.TTL = 60
	}
}

// PrintConfiguration displays the loaded configuration in a
// human-readable format.
func (l *Loader) PrintConfiguration() {
	if l.config == nil {
		fmt.Println("No configuration loaded")
		return
	}

	fmt.Println("=== DNS Server Configuration ===")
	fmt.Printf("Listen Address: %s\n", l.config.Server.Address())
	fmt.Printf("Intake Queue Size: %d\n", l.config.Server.QueueSize)
	fmt.Printf("Packet Size Limit: %d bytes\n", l.config.Server.MaxPacketSize)

	switch {
	case l.config.Resolver.Address != "":
		fmt.Printf("Mode: forwarding to %s\n", l.config.Resolver.Address)
	case l.config.Resolver.UseSystemDefaults:
		fmt.Println("Mode: forwarding to the system resolver")
	default:
		fmt.Printf("Mode: stub answers (%s, TTL %d)\n", l.config.Stub.Address, l.config.Stub.TTL)
	}

	fmt.Printf("Query Logging: %t\n", l.config.Logging.LogQueries)
	fmt.Printf("Packet Dump: %t\n", l.config.Logging.PacketDump)
	fmt.Println("================================")
}
