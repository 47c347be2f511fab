package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// NodeConfig configures one inventory node daemon.
type NodeConfig struct {
	Listen         string `toml:"listen"`
	HTTPListen     string `toml:"http_listen"`
	Workers        int    `toml:"workers"`
	LoggerEndpoint string `toml:"logger_endpoint"`
	Debug          bool   `toml:"debug"`
}

func DefaultNodeConfig() NodeConfig {
	return NodeConfig{
		Listen:     ":50051",
		HTTPListen: ":8080",
		Workers:    16,
	}
}

// LoggerConfig configures the audit logger daemon.
type LoggerConfig struct {
	Listen    string `toml:"listen"`
	Backend   string `toml:"backend"`
	RedisAddr string `toml:"redis_addr"`
	MySQLDSN  string `toml:"mysql_dsn"`
	Debug     bool   `toml:"debug"`
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Listen:    ":50060",
		Backend:   "memory",
		RedisAddr: "localhost:6379",
		MySQLDSN:  "root:root@tcp(localhost:3306)/warehouse?parseTime=true",
	}
}

// LoadFile decodes a TOML config file into cfg. Values set in the file
// replace the defaults already present in cfg; explicit command-line
// flags are applied on top by the daemons.
func LoadFile(path string, cfg interface{}) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

const endpointsEnv = "WAREHOUSE_ENDPOINTS"

// EndpointsFromEnv reads the ordered node endpoint list from the
// WAREHOUSE_ENDPOINTS environment variable, a JSON array of strings.
func EndpointsFromEnv() ([]string, error) {
	raw := os.Getenv(endpointsEnv)
	if raw == "" {
		return nil, errors.New(endpointsEnv + " environment variable is required")
	}

	var endpoints []string
	if err := json.Unmarshal([]byte(raw), &endpoints); err != nil {
		return nil, fmt.Errorf("invalid %s JSON: %w", endpointsEnv, err)
	}
	if len(endpoints) == 0 {
		return nil, errors.New(endpointsEnv + " must list at least one endpoint")
	}
	return endpoints, nil
}

// LoggerEndpointFromEnv reads the logger service endpoint, falling back
// to the default port.
func LoggerEndpointFromEnv() string {
	if v := os.Getenv("LOGGER_ENDPOINT"); v != "" {
		return v
	}
	return "localhost:50060"
}
