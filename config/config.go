// Package config handles mnemonic tool configuration.
//
// Settings are read from a .conf file (key = value, # comments) on top of
// the built-in defaults, then validated.
package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// Config holds mnemonic and logging settings.
type Config struct {
	// Locale of the word list used for new and parsed phrases.
	Locale string `conf:"wordlist"`

	Mnemonic MnemonicConfig

	Log LogConfig
}

// MnemonicConfig holds mnemonic generation settings.
type MnemonicConfig struct {
	Strength int `conf:"mnemonic.strength"` // Entropy bits: 128, 160, 192, 224 or 256
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// Wordlist returns the word list for the configured locale.
func (c *Config) Wordlist() (*wordlist.List, error) {
	return wordlist.ByLocale(c.Locale)
}

// InitLog applies the logging settings to the global logger.
func (c *Config) InitLog() error {
	if err := log.Init(c.Log.Level, c.Log.JSON, c.Log.File); err != nil {
		return fmt.Errorf("init log: %w", err)
	}
	return nil
}

// Generate creates a fresh mnemonic with the configured strength and locale.
func (c *Config) Generate(password string) (*mnemonic.Mnemonic, error) {
	wl, err := c.Wordlist()
	if err != nil {
		return nil, err
	}
	return mnemonic.Generate(c.Mnemonic.Strength, password, wl)
}

// Parse reads a phrase in the configured locale.
func (c *Config) Parse(phrase, password string) (*mnemonic.Mnemonic, error) {
	wl, err := c.Wordlist()
	if err != nil {
		return nil, err
	}
	return mnemonic.FromPhrase(phrase, password, wl)
}

// Load returns the defaults overlaid with the file at path, validated.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		values, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if err := ApplyFileConfig(cfg, values); err != nil {
			return nil, err
		}
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	log.Config.Debug().
		Str("wordlist", cfg.Locale).
		Int("strength", cfg.Mnemonic.Strength).
		Str("log_level", cfg.Log.Level).
		Msg("Config loaded")
	return cfg, nil
}
