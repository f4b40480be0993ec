package upload

import (
	"github.com/jaevor/go-nanoid"
	"github.com/serroba/dropbin/internal/shortener"
)

// NewKeyPrefixGenerator returns a generator for random storage key prefixes,
// drawn from the same 62-symbol alphabet as short codes. At 62^8 entropy the
// duplicate risk across unrelated uploads is accepted as effectively zero.
func NewKeyPrefixGenerator() (func() string, error) {
	return nanoid.CustomASCII(shortener.Alphabet, keyPrefixLength)
}
