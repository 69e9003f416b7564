package config

import (
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// Default returns the default configuration: English word list, 24-word
// mnemonics, warnings and above on the console.
func Default() *Config {
	return &Config{
		Locale: wordlist.LocaleEnglish,
		Mnemonic: MnemonicConfig{
			Strength: mnemonic.DefaultEntropyBits,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
