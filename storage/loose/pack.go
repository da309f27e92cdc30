package loose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol"
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
	"github.com/mei-friend/meigit/storage"
)

// packs holds the objects of objects/pack/*.pack, unpacked into memory. The
// set is read on the first miss of a loose object and read again when the
// pack files change, e.g. after git gc.
type packs struct {
	mu      sync.Mutex
	names   []string
	objects map[string]*storage.Object
}

// loadPacked returns the object h from a pack, or nil when no pack has it.
func (s *Store) loadPacked(ctx context.Context, h hash.Hash) (*storage.Object, error) {
	s.packs.mu.Lock()
	defer s.packs.mu.Unlock()

	if obj, ok := s.packs.objects[h.String()]; ok {
		return obj, nil
	}

	dir := filepath.Join(s.root, "objects", "pack")
	names, err := packNames(dir)
	if err != nil {
		return nil, err
	}
	if s.packs.objects != nil && slices.Equal(names, s.packs.names) {
		return nil, nil
	}

	objects := make(map[string]*storage.Object)
	for _, name := range names {
		if err := readPack(ctx, filepath.Join(dir, name), objects); err != nil {
			return nil, err
		}
	}
	s.packs.names = names
	s.packs.objects = objects

	log.FromContext(ctx).Debug("Read packs", "packs", len(names), "objects", len(objects))
	return objects[h.String()], nil
}

func packNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list packs: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "pack-") && strings.HasSuffix(e.Name(), ".pack") {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// readPack unpacks every object of the pack at path into objects, resolving
// deltas against objects of the same pack.
func readPack(ctx context.Context, path string, objects map[string]*storage.Object) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open pack: %w", err)
	}
	defer f.Close()

	pr, err := protocol.NewPackfileReader(f)
	if err != nil {
		return fmt.Errorf("pack %s: %w", filepath.Base(path), err)
	}

	byOffset := make(map[int64]*storage.Object)
	var pending []*protocol.PackfileObject
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, err := pr.ReadObject()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("pack %s: %w", filepath.Base(path), err)
		}

		obj, err := unpack(entry, byOffset, objects)
		if err != nil {
			return fmt.Errorf("pack %s: %w", filepath.Base(path), err)
		}
		if obj == nil {
			pending = append(pending, entry)
			continue
		}
		byOffset[entry.Offset] = obj
		objects[obj.Hash.String()] = obj
	}

	// A ref delta may name a base that comes later in the pack.
	for len(pending) > 0 {
		var left []*protocol.PackfileObject
		for _, entry := range pending {
			obj, err := unpack(entry, byOffset, objects)
			if err != nil {
				return fmt.Errorf("pack %s: %w", filepath.Base(path), err)
			}
			if obj == nil {
				left = append(left, entry)
				continue
			}
			byOffset[entry.Offset] = obj
			objects[obj.Hash.String()] = obj
		}
		if len(left) == len(pending) {
			return fmt.Errorf("pack %s: %d deltas without a base", filepath.Base(path), len(left))
		}
		pending = left
	}

	return nil
}

// unpack turns a pack entry into an object. It returns nil when the base of
// a delta is not known yet.
func unpack(entry *protocol.PackfileObject, byOffset map[int64]*storage.Object, objects map[string]*storage.Object) (*storage.Object, error) {
	if !entry.Type.IsDelta() {
		t := object.Type(entry.Type)
		return &storage.Object{Hash: hash.SHA1(t, entry.Data), Type: t, Data: entry.Data}, nil
	}

	var base *storage.Object
	if entry.Type == protocol.ObjectTypeOfsDelta {
		base = byOffset[entry.BaseOffset]
	} else {
		base = objects[entry.BaseHash.String()]
	}
	if base == nil {
		return nil, nil
	}

	data, err := protocol.ApplyDelta(base.Data, entry.Data)
	if err != nil {
		return nil, fmt.Errorf("delta at offset %d: %w", entry.Offset, err)
	}
	return &storage.Object{Hash: hash.SHA1(base.Type, data), Type: base.Type, Data: data}, nil
}
