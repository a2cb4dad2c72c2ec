package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type GraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type SchedulerConfig struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token"`
}

type IndexConfig struct {
	// Timeout in seconds for package index requests.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

type LogConfig struct {
	Solver    string `toml:"solver"`
	RevSolver string `toml:"revsolver"`
}

type Config struct {
	Graph     GraphConfig     `toml:"graph"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Index     IndexConfig     `toml:"index"`
	Log       LogConfig       `toml:"log"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// DebugSolver reports whether solver workflows should run in debug mode,
// from config or the INVESTIGATOR_LOG_SOLVER env var.
func (c *Config) DebugSolver() bool {
	return c.Log.Solver == "DEBUG" || os.Getenv("INVESTIGATOR_LOG_SOLVER") == "DEBUG"
}

func (c *Config) DebugRevSolver() bool {
	return c.Log.RevSolver == "DEBUG" || os.Getenv("INVESTIGATOR_LOG_REVSOLVER") == "DEBUG"
}
