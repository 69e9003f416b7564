package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// ErrInvalidConfig is returned for settings that fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the config for obvious operator mistakes. The locale and
// log level are normalized to lower case.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	cfg.Locale = strings.ToLower(strings.TrimSpace(cfg.Locale))
	if _, err := wordlist.ByLocale(cfg.Locale); err != nil {
		return fmt.Errorf("%w: wordlist must be one of %s", ErrInvalidConfig, strings.Join(wordlist.Locales(), ", "))
	}

	if s := cfg.Mnemonic.Strength; s < 128 || s > 256 || s%32 != 0 {
		return fmt.Errorf("%w: mnemonic.strength must be 128, 160, 192, 224 or 256", ErrInvalidConfig)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("%w: log.level must be debug, info, warn, error or off", ErrInvalidConfig)
	}

	return nil
}
