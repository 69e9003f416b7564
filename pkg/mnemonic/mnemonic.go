package mnemonic

import (
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
	"github.com/rs/zerolog"
)

// Mnemonic is a validated phrase together with its entropy, passphrase and
// word list. Values are obtained only from FromPhrase, FromEntropy or
// Generate, so the phrase and entropy always agree. A Mnemonic is immutable
// and safe for concurrent use. The zero value is not usable: ComputeSeed
// panics on it.
type Mnemonic struct {
	entropy  []byte
	phrase   string
	password string
	wordlist wordlist.Wordlist
}

func newMnemonic(entropy []byte, phrase, password string, wl wordlist.Wordlist) *Mnemonic {
	return &Mnemonic{
		entropy:  entropy,
		phrase:   phrase,
		password: password,
		wordlist: wl,
	}
}

// FromPhrase validates phrase and returns its canonical form: the phrase is
// decoded to entropy and encoded again, which normalizes case, spacing and
// Unicode composition of the input.
func FromPhrase(phrase, password string, wl wordlist.Wordlist) (*Mnemonic, error) {
	wl = resolve(wl)
	entropy, err := mnemonicToEntropy(phrase, wl)
	if err != nil {
		return nil, err
	}
	canonical, err := entropyToMnemonic(entropy, wl)
	if err != nil {
		return nil, err
	}
	return newMnemonic(entropy, canonical, password, wl), nil
}

// FromEntropy encodes entropy (raw bytes or 0x-prefixed hex). The entropy is
// copied; later changes to the caller's slice have no effect.
func FromEntropy[T types.BytesLike](entropy T, password string, wl wordlist.Wordlist) (*Mnemonic, error) {
	wl = resolve(wl)
	b, err := types.GetBytesCopy(entropy)
	if err != nil {
		return nil, err
	}
	phrase, err := entropyToMnemonic(b, wl)
	if err != nil {
		return nil, err
	}
	return newMnemonic(b, phrase, password, wl), nil
}

// initialized reports whether m came from one of the constructors.
func (m *Mnemonic) initialized() bool {
	return m != nil && m.entropy != nil
}

// Phrase returns the canonical phrase.
func (m *Mnemonic) Phrase() string {
	return m.phrase
}

// Password returns the seed passphrase ("" when none was given).
func (m *Mnemonic) Password() string {
	return m.password
}

// Wordlist returns the list the phrase is written in.
func (m *Mnemonic) Wordlist() wordlist.Wordlist {
	return m.wordlist
}

// Entropy returns a copy of the entropy.
func (m *Mnemonic) Entropy() []byte {
	out := make([]byte, len(m.entropy))
	copy(out, m.entropy)
	return out
}

// EntropyHex returns the entropy as 0x-prefixed lowercase hex.
func (m *Mnemonic) EntropyHex() string {
	s, _ := types.Hexlify(m.entropy)
	return s
}

// WordCount returns the number of words in the phrase.
func (m *Mnemonic) WordCount() int {
	return len(m.entropy) * 3 / 4
}

// String hides the phrase so a Mnemonic can be passed to fmt safely.
func (m *Mnemonic) String() string {
	return Redacted
}

// GoString hides the phrase from %#v.
func (m *Mnemonic) GoString() string {
	return Redacted
}

// MarshalZerologObject logs only non-secret metadata.
func (m *Mnemonic) MarshalZerologObject(e *zerolog.Event) {
	e.Int("words", m.WordCount()).
		Bool("password", m.password != "")
	if m.wordlist == nil {
		return
	}
	e.Str("locale", m.wordlist.Locale())
	if fp, ok := m.wordlist.(interface{ Fingerprint() types.Hash }); ok {
		e.Str("wordlist", fp.Fingerprint().String())
	}
}
