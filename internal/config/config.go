// Package config loads the vegas configuration. Settings come from an HCL
// file when one exists, with VEGAS_* environment variables layered on top.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vxco/vegas/internal/dealer"
	"github.com/vxco/vegas/internal/engine"
)

// Config represents the complete vegas configuration
type Config struct {
	Server  ServerSettings  `hcl:"server,block"`
	Economy EconomySettings `hcl:"economy,block"`
	Dealer  DealerSettings  `hcl:"dealer,block"`
}

// ServerSettings contains the WebSocket server configuration
type ServerSettings struct {
	Address     string `hcl:"address,optional" env:"VEGAS_ADDRESS"`
	Port        int    `hcl:"port,optional" env:"VEGAS_PORT"`
	LogLevel    string `hcl:"log_level,optional" env:"VEGAS_LOG_LEVEL"`
	IdleTimeout int    `hcl:"idle_timeout_seconds,optional" env:"VEGAS_IDLE_TIMEOUT"`
}

// EconomySettings contains the wagering amounts
type EconomySettings struct {
	EntryFee   int `hcl:"entry_fee,optional" env:"VEGAS_ENTRY_FEE"`
	CardReward int `hcl:"card_reward,optional" env:"VEGAS_CARD_REWARD"`
	WinBonus   int `hcl:"win_bonus,optional" env:"VEGAS_WIN_BONUS"`
	HintFee    int `hcl:"hint_fee,optional" env:"VEGAS_HINT_FEE"`
}

// DealerSettings contains deal generation defaults
type DealerSettings struct {
	Difficulty string `hcl:"difficulty,optional" env:"VEGAS_DIFFICULTY"`
	Strategy   string `hcl:"strategy,optional" env:"VEGAS_DEAL_STRATEGY"`
	MaxRetries int    `hcl:"max_retries,optional" env:"VEGAS_DEAL_RETRIES"`
}

// Default returns the built-in configuration
func Default() *Config {
	eco := engine.DefaultEconomy()
	return &Config{
		Server: ServerSettings{
			Address:     "localhost",
			Port:        8080,
			LogLevel:    "info",
			IdleTimeout: 300,
		},
		Economy: EconomySettings{
			EntryFee:   eco.EntryFee,
			CardReward: eco.CardReward,
			WinBonus:   eco.WinBonus,
			HintFee:    eco.HintFee,
		},
		Dealer: DealerSettings{
			Difficulty: dealer.Medium.String(),
			Strategy:   "constructive",
			MaxRetries: dealer.DefaultMaxRetries,
		},
	}
}

// Load reads configuration from an HCL file, fills gaps with defaults and
// applies environment overrides. A missing file is not an error; defaults
// plus environment are used.
func Load(filename string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(filename); err == nil {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}

		var loaded Config
		diags = gohcl.DecodeBody(file.Body, nil, &loaded)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
		config.merge(&loaded)
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// merge copies every explicitly-set value from the loaded file over the
// defaults. Zero is not a meaningful value for any setting.
func (c *Config) merge(loaded *Config) {
	if loaded.Server.Address != "" {
		c.Server.Address = loaded.Server.Address
	}
	if loaded.Server.Port != 0 {
		c.Server.Port = loaded.Server.Port
	}
	if loaded.Server.LogLevel != "" {
		c.Server.LogLevel = loaded.Server.LogLevel
	}
	if loaded.Server.IdleTimeout != 0 {
		c.Server.IdleTimeout = loaded.Server.IdleTimeout
	}
	if loaded.Economy.EntryFee != 0 {
		c.Economy.EntryFee = loaded.Economy.EntryFee
	}
	if loaded.Economy.CardReward != 0 {
		c.Economy.CardReward = loaded.Economy.CardReward
	}
	if loaded.Economy.WinBonus != 0 {
		c.Economy.WinBonus = loaded.Economy.WinBonus
	}
	if loaded.Economy.HintFee != 0 {
		c.Economy.HintFee = loaded.Economy.HintFee
	}
	if loaded.Dealer.Difficulty != "" {
		c.Dealer.Difficulty = loaded.Dealer.Difficulty
	}
	if loaded.Dealer.Strategy != "" {
		c.Dealer.Strategy = loaded.Dealer.Strategy
	}
	if loaded.Dealer.MaxRetries != 0 {
		c.Dealer.MaxRetries = loaded.Dealer.MaxRetries
	}
}

// Validate checks the configuration for usable values
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive: %d", c.Server.IdleTimeout)
	}
	if c.Economy.EntryFee < 0 || c.Economy.CardReward < 0 || c.Economy.WinBonus < 0 || c.Economy.HintFee < 0 {
		return fmt.Errorf("economy amounts must not be negative")
	}
	if _, err := dealer.ParseDifficulty(c.Dealer.Difficulty); err != nil {
		return err
	}
	if _, err := ParseStrategy(c.Dealer.Strategy); err != nil {
		return err
	}
	if c.Dealer.MaxRetries < 1 {
		return fmt.Errorf("deal retries must be positive: %d", c.Dealer.MaxRetries)
	}
	return nil
}

// ParseStrategy maps a strategy name to the dealer constant
func ParseStrategy(s string) (dealer.Strategy, error) {
	switch s {
	case "constructive", "":
		return dealer.Constructive, nil
	case "verify", "shuffle-and-verify":
		return dealer.ShuffleAndVerify, nil
	default:
		return dealer.Constructive, fmt.Errorf("unknown deal strategy %q", s)
	}
}

// EconomyConfig converts the settings to the engine's economy configuration
func (c *Config) EconomyConfig() engine.EconomyConfig {
	return engine.EconomyConfig{
		EntryFee:   c.Economy.EntryFee,
		CardReward: c.Economy.CardReward,
		WinBonus:   c.Economy.WinBonus,
		HintFee:    c.Economy.HintFee,
	}
}

// ListenAddress returns the host:port the server binds to
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
