package meigit

import (
	"context"
	"iter"
	"path"

	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
)

// WalkEntry is one path yielded by Walk.
type WalkEntry struct {
	// Path is the full path from the root tree (e.g., "scores/symphony/mvt1.mei")
	Path string
	// Name is the last path segment
	Name string
	Mode uint32
	Hash hash.Hash
}

// Type returns the kind of object the entry points at.
func (e WalkEntry) Type() object.Type {
	return typeOfMode(e.Mode)
}

// Walk streams every path below the tree root, depth first in tree order:
// a directory is yielded before its contents. Subtrees are loaded only when
// the iteration reaches them, so a consumer that stops early never pays for
// the rest of the tree. Submodules are yielded but not entered.
//
// A load failure is yielded once as the error and ends the iteration. Walk
// can be restarted by ranging over it again.
func Walk(ctx context.Context, store ObjectStore, root hash.Hash) iter.Seq2[WalkEntry, error] {
	return func(yield func(WalkEntry, error) bool) {
		logger := log.FromContext(ctx)
		logger.Debug("Walk tree", "root", root.String())

		tree, err := store.LoadTree(ctx, root)
		if err != nil {
			yield(WalkEntry{}, err)
			return
		}

		walkTree(ctx, store, tree, "", yield)
	}
}

// walkTree returns false once the consumer stopped or an error was yielded.
func walkTree(ctx context.Context, store ObjectStore, tree *Tree, dir string, yield func(WalkEntry, error) bool) bool {
	for _, e := range tree.Entries {
		if err := ctx.Err(); err != nil {
			yield(WalkEntry{}, err)
			return false
		}

		entry := WalkEntry{Path: path.Join(dir, e.Name), Name: e.Name, Mode: e.Mode, Hash: e.Hash}
		if !yield(entry, nil) {
			return false
		}

		if !e.IsTree() {
			continue
		}

		sub, err := store.LoadTree(ctx, e.Hash)
		if err != nil {
			yield(WalkEntry{}, err)
			return false
		}
		if !walkTree(ctx, store, sub, entry.Path, yield) {
			return false
		}
	}

	return true
}
