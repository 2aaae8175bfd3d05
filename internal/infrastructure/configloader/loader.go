package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when CONFIG_PATH is not set.
const DefaultConfigPath = "config/config.yml"

// ServerConfig holds the identity announced by the MCP servers.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// NetworkConfig selects the single Starknet network served by the process.
type NetworkConfig struct {
	Name   string `yaml:"name"`   // e.g., "mainnet" or "sepolia"
	RPCURL string `yaml:"rpcURL"` // overrides the predefined endpoint when set
}

// RpcClientConfig holds configuration for the RPC client.
type RpcClientConfig struct {
	RateLimit  float64 `yaml:"rateLimit"` // requests per second, 0 = unlimited
	BurstLimit int     `yaml:"burstLimit"`
}

// PerformanceConfig holds performance-related configurations.
type PerformanceConfig struct {
	MaxConcurrentRequests int `yaml:"maxConcurrentRequests"` // 0 = unlimited
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// HTTPConfig holds configuration of the REST API.
type HTTPConfig struct {
	Port           string `yaml:"port"`
	SwaggerEnabled bool   `yaml:"swaggerEnabled"`
	SwaggerFile    string `yaml:"swaggerFile"`
}

// MetricsConfig holds configuration of the standalone metrics listener used by the stdio servers.
type MetricsConfig struct {
	Address string `yaml:"address"` // e.g., ":9090"; empty disables the listener
}

// Config is the top-level configuration structure.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Network     NetworkConfig     `yaml:"network"`
	RpcClient   RpcClientConfig   `yaml:"rpcClient"`
	Performance PerformanceConfig `yaml:"performance"`
	Logging     LoggingConfig     `yaml:"logging"`
	HTTP        HTTPConfig        `yaml:"http"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Name == "" {
		cfg.Server.Name = "starknet-balance-checker"
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = "1.0.0"
	}
	if cfg.Network.Name == "" {
		cfg.Network.Name = "mainnet"
	}
	if cfg.RpcClient.RateLimit < 0 {
		cfg.RpcClient.RateLimit = 0
	}
	if cfg.RpcClient.BurstLimit < 0 {
		cfg.RpcClient.BurstLimit = 0
	}
	if cfg.Performance.MaxConcurrentRequests < 0 {
		cfg.Performance.MaxConcurrentRequests = 0
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.HTTP.Port == "" {
		cfg.HTTP.Port = "8080"
	}
	if cfg.HTTP.SwaggerFile == "" {
		cfg.HTTP.SwaggerFile = "./docs/swagger.yaml"
	}
}

// Load reads the YAML configuration file from the given path and unmarshals it.
// A missing file is not an error: the defaults are returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}
