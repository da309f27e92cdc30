package meigit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/storage/memory"
)

const mainRef = "refs/heads/main"

// seed returns a memory store whose main branch holds files, and the root
// tree of that commit.
func seed(t *testing.T, files map[string]string) (*memory.Store, *meigit.Commit, *meigit.Tree) {
	t.Helper()
	ctx := context.Background()

	store := memory.New()
	contents := make(map[string][]byte, len(files))
	for p, c := range files {
		contents[p] = []byte(c)
	}

	commit, err := store.Seed(ctx, mainRef, contents)
	require.NoError(t, err)

	root, err := store.LoadTree(ctx, commit.Tree)
	require.NoError(t, err)

	return store, commit, root
}

// entryAt resolves a slash-separated path below root.
func entryAt(t *testing.T, store meigit.ObjectStore, root hash.Hash, p string) meigit.WalkEntry {
	t.Helper()
	for entry, err := range meigit.Walk(context.Background(), store, root) {
		require.NoError(t, err)
		if entry.Path == p {
			return entry
		}
	}
	t.Fatalf("path %q not found", p)
	return meigit.WalkEntry{}
}

func blobAt(t *testing.T, store meigit.ObjectStore, root hash.Hash, p string) string {
	t.Helper()
	content, err := store.LoadBlob(context.Background(), entryAt(t, store, root, p).Hash)
	require.NoError(t, err)
	return string(content)
}
