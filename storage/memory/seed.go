package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/protocol/hash"
)

// SeedAuthor signs the commits made by Seed.
var SeedAuthor = meigit.Author{
	Name:  "Seed",
	Email: "seed@example.com",
	Time:  time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
}

// Seed commits files (path to content) as a new root commit and points ref
// at it. Directories are created as needed. The writes count like any other.
func (s *Store) Seed(ctx context.Context, ref string, files map[string][]byte) (*meigit.Commit, error) {
	root, err := s.seedDir(ctx, "", files)
	if err != nil {
		return nil, err
	}

	commit := &meigit.Commit{
		Tree:      root,
		Author:    SeedAuthor,
		Committer: meigit.Committer(SeedAuthor),
		Message:   "Initial commit\n",
	}
	commit.Hash, err = s.SaveCommit(ctx, commit)
	if err != nil {
		return nil, err
	}

	s.SetRef(ref, commit.Hash)
	return commit, nil
}

func (s *Store) seedDir(ctx context.Context, dir string, files map[string][]byte) (hash.Hash, error) {
	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}

	subdirs := make(map[string]bool)
	var entries []meigit.TreeEntry
	for p, content := range files {
		rest, ok := strings.CutPrefix(p, prefix)
		if !ok {
			continue
		}
		if name, _, nested := strings.Cut(rest, "/"); nested {
			subdirs[name] = true
			continue
		}

		h, err := s.SaveBlob(ctx, content)
		if err != nil {
			return nil, err
		}
		entries = append(entries, meigit.TreeEntry{Name: rest, Mode: meigit.ModeFile, Hash: h})
	}

	names := make([]string, 0, len(subdirs))
	for name := range subdirs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		h, err := s.seedDir(ctx, prefix+name, files)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", prefix+name, err)
		}
		entries = append(entries, meigit.TreeEntry{Name: name, Mode: meigit.ModeDir, Hash: h})
	}

	return s.SaveTree(ctx, entries)
}
