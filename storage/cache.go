// Package storage holds the per-operation object cache. Git objects are
// immutable, so any object loaded once during an operation can be served from
// memory for the rest of it. The cache travels in the context so that nested
// calls (a tree walk followed by a content load, say) share it without
// threading it through every signature.
package storage

import (
	"sync"

	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
)

// Object is a git object in its canonical encoding.
type Object struct {
	Hash hash.Hash
	Type object.Type
	Data []byte
}

// ObjectCache stores objects by hash. Implementations must be safe for
// concurrent use.
type ObjectCache interface {
	Get(key hash.Hash) (*Object, bool)
	Add(objs ...*Object)
	Delete(key hash.Hash)
	Len() int
}

// InMemory is the default ObjectCache.
type InMemory struct {
	mu      sync.RWMutex
	objects map[string]*Object
}

func NewInMemory() *InMemory {
	return &InMemory{objects: make(map[string]*Object)}
}

func (s *InMemory) Get(key hash.Hash) (*Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key.String()]
	return obj, ok
}

func (s *InMemory) Add(objs ...*Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, obj := range objs {
		s.objects[obj.Hash.String()] = obj
	}
}

func (s *InMemory) Delete(key hash.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key.String())
}

func (s *InMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
