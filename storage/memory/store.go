// Package memory is an ObjectStore kept entirely in process memory. It is
// meant for tests and for staging edits that are never pushed anywhere.
package memory

import (
	"context"
	"sync"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol"
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/storage"
)

// Counts tallies the writes a Store has accepted.
type Counts struct {
	Blobs      int
	Trees      int
	Commits    int
	RefUpdates int
}

// Total returns the number of saved objects plus ref updates.
func (c Counts) Total() int {
	return c.Blobs + c.Trees + c.Commits + c.RefUpdates
}

// Store is safe for concurrent use.
type Store struct {
	objects *storage.InMemory

	mu     sync.Mutex
	refs   map[string]hash.Hash
	counts Counts
}

var _ meigit.ObjectStore = (*Store)(nil)

func New() *Store {
	return &Store{
		objects: storage.NewInMemory(),
		refs:    make(map[string]hash.Hash),
	}
}

// SetRef points ref at h unconditionally. It is not counted as a write.
func (s *Store) SetRef(ref string, h hash.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs[ref] = h
}

// Refs returns a copy of all refs.
func (s *Store) Refs() map[string]hash.Hash {
	s.mu.Lock()
	defer s.mu.Unlock()
	refs := make(map[string]hash.Hash, len(s.refs))
	for k, v := range s.refs {
		refs[k] = v
	}
	return refs
}

// Counts returns the writes accepted so far.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	return s.objects.Len()
}

// Has reports whether an object is stored.
func (s *Store) Has(h hash.Hash) bool {
	_, ok := s.objects.Get(h)
	return ok
}

func (s *Store) ReadRef(ctx context.Context, ref string) (hash.Hash, error) {
	if _, err := protocol.ParseRefName(ref); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.refs[ref]
	if !ok {
		return nil, meigit.NewNotFoundError("ref", ref)
	}
	return h, nil
}

func (s *Store) UpdateRef(ctx context.Context, ref string, newHash, oldHash hash.Hash) error {
	if _, err := protocol.ParseRefName(ref); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.refs[ref]
	switch {
	case oldHash.IsZero() && exists:
		return meigit.NewConflictError(ref, hash.Zero, current)
	case !oldHash.IsZero() && !exists:
		return meigit.NewConflictError(ref, oldHash, hash.Zero)
	case exists && !current.Is(oldHash):
		return meigit.NewConflictError(ref, oldHash, current)
	}

	s.refs[ref] = newHash
	s.counts.RefUpdates++
	log.FromContext(ctx).Debug("Updated ref", "ref", ref, "new", newHash.String(), "old", oldHash.String())
	return nil
}

func (s *Store) load(h hash.Hash) (*storage.Object, error) {
	obj, ok := s.objects.Get(h)
	if !ok {
		return nil, meigit.NewObjectNotFoundError(h)
	}
	return obj, nil
}

func (s *Store) LoadBlob(ctx context.Context, h hash.Hash) ([]byte, error) {
	obj, err := s.load(h)
	if err != nil {
		return nil, err
	}
	data, err := meigit.BlobFromObject(obj)
	if err != nil {
		return nil, err
	}
	// Callers own the returned slice.
	return append([]byte(nil), data...), nil
}

func (s *Store) LoadTree(ctx context.Context, h hash.Hash) (*meigit.Tree, error) {
	obj, err := s.load(h)
	if err != nil {
		return nil, err
	}
	return meigit.TreeFromObject(obj)
}

func (s *Store) LoadCommit(ctx context.Context, h hash.Hash) (*meigit.Commit, error) {
	obj, err := s.load(h)
	if err != nil {
		return nil, err
	}
	return meigit.CommitFromObject(obj)
}

func (s *Store) SaveBlob(ctx context.Context, content []byte) (hash.Hash, error) {
	obj := meigit.BlobObject(append([]byte(nil), content...))
	s.save(obj, &s.counts.Blobs)
	return obj.Hash, nil
}

func (s *Store) SaveTree(ctx context.Context, entries []meigit.TreeEntry) (hash.Hash, error) {
	obj, err := meigit.TreeObject(entries)
	if err != nil {
		return nil, err
	}
	s.save(obj, &s.counts.Trees)
	return obj.Hash, nil
}

func (s *Store) SaveCommit(ctx context.Context, commit *meigit.Commit) (hash.Hash, error) {
	obj, err := meigit.CommitObject(commit)
	if err != nil {
		return nil, err
	}
	s.save(obj, &s.counts.Commits)
	return obj.Hash, nil
}

func (s *Store) save(obj *storage.Object, counter *int) {
	s.objects.Add(obj)
	s.mu.Lock()
	*counter++
	s.mu.Unlock()
}
