package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Port int
	}
	Navigation struct {
		SpeedKMH            float64 // assumed constant travel speed for ETA
		StepIntervalSeconds int     // simulated progress tick period
	}
	WebSocket struct {
		PingIntervalSeconds int
	}
}

// LoadFromFile loads config from a YAML file, applies defaults and
// environment overrides, and validates required fields. Environment values
// win over file values; a .env file beside the binary is honored the same
// way as real environment variables.
func LoadFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := parseYAML(file, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides lets deployment environments retune the service without
// editing the YAML file. Missing variables leave the file values alone.
func applyEnvOverrides(cfg *Config) error {
	// .env values only fill in variables the real environment does not set
	envFile, _ := godotenv.Read(".env")
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return envFile[key]
	}

	if v := lookup("NAVSIM_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NAVSIM_SERVER_PORT must be int: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := lookup("NAVSIM_SPEED_KMH"); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NAVSIM_SPEED_KMH must be a number: %w", err)
		}
		cfg.Navigation.SpeedKMH = speed
	}
	if v := lookup("NAVSIM_STEP_INTERVAL_SECONDS"); v != "" {
		interval, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NAVSIM_STEP_INTERVAL_SECONDS must be int: %w", err)
		}
		cfg.Navigation.StepIntervalSeconds = interval
	}

	return nil
}

// applyDefaults sets safe defaults for unset fields.
func applyDefaults(cfg *Config) {
	// Server
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	// Navigation
	if cfg.Navigation.SpeedKMH == 0 {
		cfg.Navigation.SpeedKMH = 50
	}
	if cfg.Navigation.StepIntervalSeconds == 0 {
		cfg.Navigation.StepIntervalSeconds = 10
	}

	// WebSocket
	if cfg.WebSocket.PingIntervalSeconds == 0 {
		cfg.WebSocket.PingIntervalSeconds = 30
	}
}

// validate checks required fields and basic ranges.
func (c *Config) validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port must be in 1..65535")
	}
	if c.Navigation.SpeedKMH <= 0 {
		problems = append(problems, "navigation.speed_kmh must be positive")
	}
	if c.Navigation.StepIntervalSeconds <= 0 {
		problems = append(problems, "navigation.step_interval_seconds must be positive")
	}
	if c.WebSocket.PingIntervalSeconds <= 0 {
		problems = append(problems, "websocket.ping_interval_seconds must be positive")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
