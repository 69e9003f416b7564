// Package wordlist provides the 2048-word BIP-39 dictionaries and the lookup
// contract the mnemonic codec relies on.
//
// Every stored word and every queried word is NFKD-normalized and lowercased
// before comparison, so lookups are insensitive to composed vs. decomposed
// accents and to letter case. Lists are immutable once built and safe for
// concurrent use.
package wordlist

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"golang.org/x/text/unicode/norm"
)

// Size is the number of entries in every BIP-39 word list (2^11).
const Size = 2048

// NotFound is returned by WordIndex for words absent from the list.
const NotFound = -1

var (
	ErrInvalidSize    = errors.New("word list must contain exactly 2048 words")
	ErrDuplicateWord  = errors.New("duplicate word in word list")
	ErrEmptyWord      = errors.New("empty word in word list")
	ErrEmptySeparator = errors.New("word list separator is empty")
	ErrUnknownLocale  = errors.New("unknown word list locale")
)

// Wordlist maps each of 2048 words to its 11-bit index.
type Wordlist interface {
	// Locale identifies the list, e.g. "en".
	Locale() string
	// Word returns the word at index. It panics if index is outside [0, Size).
	Word(index int) string
	// WordIndex returns the index of word, or NotFound.
	WordIndex(word string) int
	// Split breaks a phrase into normalized words.
	Split(phrase string) []string
	// Join renders words as a phrase using the list separator.
	Join(words []string) string
}

// List is the standard Wordlist implementation.
type List struct {
	locale    string
	separator string
	words     []string
	index     map[string]int
	digest    types.Hash
}

// New builds a list from exactly Size unique words.
func New(locale string, words []string, separator string) (*List, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%s: %w (got %d)", locale, ErrInvalidSize, len(words))
	}
	if separator == "" {
		return nil, fmt.Errorf("%s: %w", locale, ErrEmptySeparator)
	}

	l := &List{
		locale:    locale,
		separator: separator,
		words:     make([]string, Size),
		index:     make(map[string]int, Size),
	}
	for i, w := range words {
		nw := normalize(strings.TrimSpace(w))
		if nw == "" {
			return nil, fmt.Errorf("%s: word %d: %w", locale, i, ErrEmptyWord)
		}
		if prev, ok := l.index[nw]; ok {
			return nil, fmt.Errorf("%s: words %d and %d: %w", locale, prev, i, ErrDuplicateWord)
		}
		l.words[i] = nw
		l.index[nw] = i
	}
	l.digest = crypto.Hash([]byte(strings.Join(l.words, "\n")))
	return l, nil
}

func normalize(s string) string {
	return strings.ToLower(norm.NFKD.String(s))
}

// Locale returns the list's locale tag.
func (l *List) Locale() string {
	return l.locale
}

// Separator returns the string placed between words by Join.
func (l *List) Separator() string {
	return l.separator
}

// Word returns the normalized word at index.
func (l *List) Word(index int) string {
	return l.words[index]
}

// WordIndex returns the index of word, or NotFound.
func (l *List) WordIndex(word string) int {
	if i, ok := l.index[normalize(word)]; ok {
		return i
	}
	return NotFound
}

// Split normalizes phrase and breaks it on any Unicode whitespace, which
// includes the ideographic space used by the Japanese list.
func (l *List) Split(phrase string) []string {
	return strings.FieldsFunc(normalize(phrase), unicode.IsSpace)
}

// Join concatenates words with the list separator.
func (l *List) Join(words []string) string {
	return strings.Join(words, l.separator)
}

// Fingerprint is the BLAKE3 digest of the normalized table. It identifies a
// list in logs and does not depend on any secret.
func (l *List) Fingerprint() types.Hash {
	return l.digest
}
