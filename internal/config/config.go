package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Rehan72/sol-sub000/internal/domain/lifecycle"

	"gopkg.in/yaml.v3"
)

const defaultPort = 8080

// Config is the full service configuration. Values come from an optional yaml
// file (CONFIG_FILE, default config.yaml) with env vars taking precedence, so
// container deployments can override any field without shipping a file.

type Config struct {
	Server     ServerConfig              `yaml:"server"`
	Auth       AuthConfig                `yaml:"auth"`
	Milestones lifecycle.MilestoneConfig `yaml:"milestones"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type AuthConfig struct {
	// Secret signs and verifies the bearer tokens. When Disabled is true the
	// actor identity is taken from request headers instead; local use only.
	Secret   string `yaml:"secret"`
	Disabled bool   `yaml:"disabled"`
}

func defaults() Config {
	return Config{
		Server:     ServerConfig{Port: defaultPort},
		Milestones: lifecycle.DefaultMilestoneConfig(),
	}
}

// Load reads the yaml file when present, applies env overrides and validates
// the milestone plan. A missing file is not an error; the defaults stand.
func Load() (Config, error) {
	cfg := defaults()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		log.Printf("[config] loaded file=%s", path)
	case os.IsNotExist(err):
		log.Printf("[config] file=%s not found; using defaults", path)
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Milestones.Validate(); err != nil {
		return Config{}, fmt.Errorf("milestone plan: %w", err)
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = defaultPort
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("AUTH_DISABLED"))); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			cfg.Auth.Disabled = true
		case "0", "false", "no", "off":
			cfg.Auth.Disabled = false
		}
	}
}
