package wordlist

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Locale tags for the bundled lists.
const (
	LocaleEnglish            = "en"
	LocaleJapanese           = "ja"
	LocaleKorean             = "ko"
	LocaleSpanish            = "es"
	LocaleFrench             = "fr"
	LocaleItalian            = "it"
	LocaleCzech              = "cz"
	LocaleChineseSimplified  = "zh_cn"
	LocaleChineseTraditional = "zh_tw"
)

const (
	spaceSeparator       = " "
	ideographicSeparator = "　"
)

// Each bundled list is built on first use and shared for the life of the
// process.
var (
	English            = lazy(LocaleEnglish, func() []string { return wordlists.English }, spaceSeparator)
	Japanese           = lazy(LocaleJapanese, func() []string { return wordlists.Japanese }, ideographicSeparator)
	Korean             = lazy(LocaleKorean, func() []string { return wordlists.Korean }, spaceSeparator)
	Spanish            = lazy(LocaleSpanish, func() []string { return wordlists.Spanish }, spaceSeparator)
	French             = lazy(LocaleFrench, func() []string { return wordlists.French }, spaceSeparator)
	Italian            = lazy(LocaleItalian, func() []string { return wordlists.Italian }, spaceSeparator)
	Czech              = lazy(LocaleCzech, func() []string { return wordlists.Czech }, spaceSeparator)
	ChineseSimplified  = lazy(LocaleChineseSimplified, func() []string { return wordlists.ChineseSimplified }, spaceSeparator)
	ChineseTraditional = lazy(LocaleChineseTraditional, func() []string { return wordlists.ChineseTraditional }, spaceSeparator)
)

var registry = map[string]func() *List{
	LocaleEnglish:            English,
	LocaleJapanese:           Japanese,
	LocaleKorean:             Korean,
	LocaleSpanish:            Spanish,
	LocaleFrench:             French,
	LocaleItalian:            Italian,
	LocaleCzech:              Czech,
	LocaleChineseSimplified:  ChineseSimplified,
	LocaleChineseTraditional: ChineseTraditional,
}

// lazy returns a constructor for a bundled list. The bundled tables are
// known-good, so a construction failure is a build defect and panics.
func lazy(locale string, words func() []string, separator string) func() *List {
	return sync.OnceValue(func() *List {
		l, err := New(locale, words(), separator)
		if err != nil {
			panic(fmt.Sprintf("wordlist: bundled list: %v", err))
		}
		logger := log.WithLocale(locale)
		logger.Debug().
			Str("fingerprint", l.Fingerprint().String()).
			Msg("Word list loaded")
		return l
	})
}

// Default returns the English list, used whenever a caller passes no list.
func Default() *List {
	return English()
}

// ByLocale returns the bundled list for locale.
func ByLocale(locale string) (*List, error) {
	f, ok := registry[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return f(), nil
}

// Locales returns the tags of all bundled lists, sorted.
func Locales() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
