package meigit

import (
	"context"

	"github.com/mei-friend/meigit/protocol/hash"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/object_store.go . ObjectStore

// ObjectStore is a content-addressable git object database with named refs.
//
// Objects are immutable: saving identical content twice yields the same hash.
// Refs are the only mutable state, and UpdateRef only moves a ref that still
// points at oldHash.
//
// Implementations report a missing ref or object with ErrNotFound, rejected
// credentials with ErrUnauthorized, a moved ref with ErrConflict and a failing
// backend with protocol.ErrServerUnavailable. They never retry saves or ref
// updates on their own.
type ObjectStore interface {
	// ReadRef returns the commit hash a ref such as "refs/heads/main" points at.
	ReadRef(ctx context.Context, ref string) (hash.Hash, error)
	// UpdateRef moves ref from oldHash to newHash. A zero oldHash creates the
	// ref and fails if it already exists.
	UpdateRef(ctx context.Context, ref string, newHash, oldHash hash.Hash) error

	LoadBlob(ctx context.Context, h hash.Hash) ([]byte, error)
	LoadTree(ctx context.Context, h hash.Hash) (*Tree, error)
	LoadCommit(ctx context.Context, h hash.Hash) (*Commit, error)

	SaveBlob(ctx context.Context, content []byte) (hash.Hash, error)
	SaveTree(ctx context.Context, entries []TreeEntry) (hash.Hash, error)
	SaveCommit(ctx context.Context, commit *Commit) (hash.Hash, error)
}
