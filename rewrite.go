package meigit

import (
	"context"
	"fmt"
	"path"

	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
)

// RewriteTree stores content at filePath below root and returns the hash of
// the new root tree. Only the trees on the path from root to the file are
// saved again; every other tree and blob keeps its hash.
//
// The file entry keeps its mode. A file that does not exist yet is created
// with ModeFile, but every directory on the way must exist. When newFile is
// set the content is stored under that name next to the original entry,
// which stays untouched, so newFile may not repeat the file's own name.
//
// A path without segments fails with a MalformedPathError before anything
// is written. Saves happen strictly bottom-up, one level at a time.
func RewriteTree(ctx context.Context, store ObjectStore, root *Tree, filePath string, content []byte, newFile string) (hash.Hash, error) {
	logger := log.FromContext(ctx)

	segments, err := splitPath(filePath)
	if err != nil {
		logger.Error("Malformed path", "path", filePath, "error", err)
		return nil, err
	}

	if newFile != "" {
		if err := validateFileName(newFile); err != nil {
			logger.Error("Malformed new file name", "new_file", newFile, "error", err)
			return nil, err
		}
		if newFile == segments[len(segments)-1] {
			err := NewMalformedPathError(newFile, "new file name is the name of the file it is created next to")
			logger.Error("Malformed new file name", "new_file", newFile, "error", err)
			return nil, err
		}
	}

	return rewriteTree(ctx, store, root, "", segments, content, newFile)
}

func rewriteTree(ctx context.Context, store ObjectStore, tree *Tree, dir string, segments []string, content []byte, newFile string) (hash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := log.FromContext(ctx)
	name := segments[0]
	current := path.Join(dir, name)
	entry, exists := tree.Find(name)

	var updated TreeEntry
	if len(segments) == 1 {
		mode := ModeFile
		if exists {
			if entry.Type() != object.TypeBlob {
				return nil, NewUnexpectedObjectTypeError(current, object.TypeBlob, entry.Type())
			}
			mode = entry.Mode
		}

		target := name
		if newFile != "" {
			target = newFile
			if other, ok := tree.Find(newFile); ok && other.Type() != object.TypeBlob {
				return nil, NewUnexpectedObjectTypeError(path.Join(dir, newFile), object.TypeBlob, other.Type())
			}
		}

		blobHash, err := store.SaveBlob(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("save blob for %s: %w", path.Join(dir, target), err)
		}
		logger.Debug("Saved blob", "path", path.Join(dir, target), "hash", blobHash.String(), "created", !exists || newFile != "")

		updated = TreeEntry{Name: target, Mode: mode, Hash: blobHash}
	} else {
		if !exists {
			return nil, NewNotFoundError("path", current)
		}
		if !entry.IsTree() {
			return nil, NewUnexpectedObjectTypeError(current, object.TypeTree, entry.Type())
		}

		subtree, err := store.LoadTree(ctx, entry.Hash)
		if err != nil {
			return nil, fmt.Errorf("load tree %s: %w", current, err)
		}

		subtreeHash, err := rewriteTree(ctx, store, subtree, current, segments[1:], content, newFile)
		if err != nil {
			return nil, err
		}

		updated = TreeEntry{Name: name, Mode: entry.Mode, Hash: subtreeHash}
	}

	next := tree.With(updated)
	treeHash, err := store.SaveTree(ctx, next.Entries)
	if err != nil {
		return nil, fmt.Errorf("save tree %q: %w", dir, err)
	}
	logger.Debug("Saved tree", "dir", dir, "hash", treeHash.String(), "previous", tree.Hash.String())

	return treeHash, nil
}
