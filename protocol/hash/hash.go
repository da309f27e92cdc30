// Package hash provides git object identifiers.
package hash

import (
	"encoding/hex"
	"hash"
	"slices"
)

// Hash is the raw digest of a git object. Its hex form is what git and the
// hosting API print.
type Hash []byte

// Zero is the unset hash. Root commits have a Zero parent.
var Zero Hash

func FromHex(hs string) (Hash, error) {
	if len(hs) == 0 {
		return Zero, nil
	}

	b, err := hex.DecodeString(hs)
	if err != nil {
		return Zero, err
	}
	return Hash(b), err
}

// MustFromHex is FromHex for constants in tests and fixtures.
func MustFromHex(hs string) Hash {
	h, err := FromHex(hs)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Hash) String() string {
	return hex.EncodeToString(h)
}

// Short returns the abbreviated form used in log lines and listings.
func (h Hash) Short() string {
	s := h.String()
	if len(s) > 7 {
		return s[:7]
	}
	return s
}

func (h Hash) Is(other Hash) bool {
	return slices.Equal(h, other)
}

// IsZero reports whether the hash is unset.
func (h Hash) IsZero() bool {
	return len(h) == 0
}

type Hasher struct {
	hash.Hash
}
