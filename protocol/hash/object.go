package hash

import (
	"crypto"
	"errors"
	"strconv"

	// Git still uses sha1 for the most part: https://git-scm.com/docs/hash-function-transition
	//nolint:gosec
	_ "crypto/sha1"

	"github.com/mei-friend/meigit/protocol/object"
)

// ErrUnlinkedAlgorithm is returned when trying to use a hash algorithm that is not
// linked into the binary (e.g., MD5).
var ErrUnlinkedAlgorithm = errors.New("the algorithm is not linked into the binary")

// Object computes the id of a git object: the digest of the header
// "<type> <size>\0" followed by the payload. A blob containing "test" is
// hashed as "blob 4\0test".
//
// See https://git-scm.com/book/en/v2/Git-Internals-Git-Objects
func Object(algo crypto.Hash, t object.Type, data []byte) (Hash, error) {
	h, err := NewHasher(algo, t, int64(len(data)))
	if err != nil {
		return nil, err
	}

	if _, err = h.Write(data); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// SHA1 hashes an object with the algorithm every store in this module uses.
func SHA1(t object.Type, data []byte) Hash {
	// sha1 is linked above, so Object cannot fail.
	h, _ := Object(crypto.SHA1, t, data)
	return h
}

// NewHasher returns a hasher that already consumed the object header, so the
// caller only writes the payload.
func NewHasher(algo crypto.Hash, t object.Type, size int64) (Hasher, error) {
	if !algo.Available() { // Avoid a panic
		return Hasher{}, ErrUnlinkedAlgorithm
	}
	h := Hasher{Hash: algo.New()}

	if _, err := h.Write(Header(t, size)); err != nil {
		return Hasher{}, err
	}

	return h, nil
}

// Header returns the "<type> <size>\0" prefix of a stored object.
func Header(t object.Type, size int64) []byte {
	b := append([]byte(nil), t.Bytes()...)
	b = append(b, ' ')
	b = strconv.AppendInt(b, size, 10)
	return append(b, 0)
}
