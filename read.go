package meigit

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
	"github.com/mei-friend/meigit/storage"
)

// Snapshot is what a read of one path at the head of a branch returns.
type Snapshot struct {
	Head   hash.Hash
	Commit *Commit
	// Path is the normalized path that was read ("" for the root).
	Path string
	// Entry is the matched tree entry, nil for the root directory.
	Entry *WalkEntry
	// Content is the file content. It is nil for directories.
	Content []byte
	// Binary reports whether Content is a compressed archive rather than
	// text.
	Binary bool
	// Children lists the direct children of a directory in tree order.
	Children []WalkEntry
	// History is the commit log of the branch, newest first. Only ReadRepo
	// fills it.
	History []CommitSummary
}

// IsDir reports whether the snapshot is a directory listing.
func (s *Snapshot) IsDir() bool {
	return s.Entry == nil || s.Entry.Mode == ModeDir
}

// Text returns the content as a string. It is empty for binary files.
func (s *Snapshot) Text() string {
	if s.Binary {
		return ""
	}
	return string(s.Content)
}

// ReadPath reads p at the head of ref. The tree is walked from the root
// until the entry is found. A file is loaded, a directory is listed.
func ReadPath(ctx context.Context, store ObjectStore, ref, p string) (*Snapshot, error) {
	normalized, err := normalizePath(p)
	if err != nil {
		log.FromContext(ctx).Error("Malformed path", "path", p, "error", err)
		return nil, err
	}

	head, err := store.ReadRef(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("read ref %s: %w", ref, err)
	}

	commit, err := store.LoadCommit(ctx, head)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", head.String(), err)
	}

	snap := &Snapshot{Head: head, Commit: commit, Path: normalized}
	dirHash := commit.Tree

	if normalized != "" {
		entry, err := findPath(ctx, store, commit.Tree, normalized)
		if err != nil {
			return nil, err
		}
		snap.Entry = entry

		switch {
		case entry.Mode == ModeDir:
			dirHash = entry.Hash
		case entry.Mode == ModeSubmodule:
			return nil, NewUnexpectedObjectTypeError(normalized, object.TypeBlob, entry.Type())
		default:
			content, err := store.LoadBlob(ctx, entry.Hash)
			if err != nil {
				return nil, fmt.Errorf("load blob %s: %w", normalized, err)
			}
			snap.Content = content
			snap.Binary = IsBinaryPath(normalized)
			return snap, nil
		}
	}

	tree, err := store.LoadTree(ctx, dirHash)
	if err != nil {
		return nil, fmt.Errorf("load tree %s: %w", dirHash.String(), err)
	}

	prefix := normalized
	if prefix != "" {
		prefix += "/"
	}
	snap.Children = make([]WalkEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		snap.Children = append(snap.Children, WalkEntry{Path: prefix + e.Name, Name: e.Name, Mode: e.Mode, Hash: e.Hash})
	}

	return snap, nil
}

func findPath(ctx context.Context, store ObjectStore, root hash.Hash, p string) (*WalkEntry, error) {
	for entry, err := range Walk(ctx, store, root) {
		if err != nil {
			return nil, fmt.Errorf("walk tree: %w", err)
		}
		if entry.Path == p {
			return &entry, nil
		}
	}
	return nil, NewNotFoundError("path", p)
}

// ReadRepo reads the selected path at the head of the selected branch and,
// at the same time, fetches the first page of the branch history. The
// returned session caches the head that was read.
func (s Session) ReadRepo(ctx context.Context) (Session, *Snapshot, error) {
	if err := s.require("ReadRepo", StateBranchSelected); err != nil {
		return s, nil, err
	}

	ctx = s.context(ctx)
	ctx, _ = storage.FromContextOrInMemory(ctx)

	var (
		snap    *Snapshot
		history []CommitSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = ReadPath(gctx, s.store, s.branchRef(), strings.TrimSuffix(s.path, "/"))
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.provider.ListCommits(gctx, s.repo, s.branch, ListPage{})
		if err != nil {
			return fmt.Errorf("list commits: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return s, nil, err
	}

	snap.History = history

	next := s
	next.head = snap.Head
	if snap.IsDir() && next.path != "" && !strings.HasSuffix(next.path, "/") {
		next.path += "/"
	}

	log.FromContext(ctx).Debug("Read repository", "repo", s.repo.String(), "branch", s.branch, "path", snap.Path, "head", snap.Head.String())
	return next, snap, nil
}
