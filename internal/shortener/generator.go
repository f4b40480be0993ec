package shortener

import "github.com/jaevor/go-nanoid"

// Alphabet is the 62-symbol character set short codes and storage key
// prefixes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CodeLength is the fixed length of generated short codes.
const CodeLength = 6

// CodeGenerator produces random codes. Single calls carry no uniqueness
// guarantee; deduplication is the allocator's job.
type CodeGenerator func() string

// NewCodeGenerator returns a generator producing uniformly random strings of
// the given length over Alphabet.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	gen, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, err
	}

	return CodeGenerator(gen), nil
}
