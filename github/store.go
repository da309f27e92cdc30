package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v72/github"
	"golang.org/x/sync/singleflight"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol"
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
	"github.com/mei-friend/meigit/retry"
	"github.com/mei-friend/meigit/storage"
)

// Store is the ObjectStore of one GitHub repository, backed by the git data
// API. Loads and ref reads are retried when the context carries a
// retry.Retrier; saves and ref updates never are. Loaded objects are kept in
// the storage.ObjectCache of the context, if any.
type Store struct {
	provider *Provider
	repo     meigit.RepoName
}

var _ meigit.ObjectStore = (*Store)(nil)

// Repo returns the repository the store reads and writes.
func (s *Store) Repo() meigit.RepoName {
	return s.repo
}

func (s *Store) git() *gh.GitService {
	return s.provider.client.Git
}

// ReadRef returns the commit a ref points at. HEAD resolves to the default
// branch.
func (s *Store) ReadRef(ctx context.Context, ref string) (hash.Hash, error) {
	if _, err := protocol.ParseRefName(ref); err != nil {
		return nil, err
	}

	ctx = withReadRetrier(ctx)
	logger := log.FromContext(ctx)

	if ref == protocol.HEAD.FullName {
		repo, err := retry.Do(ctx, func() (*gh.Repository, error) {
			repo, _, err := s.provider.client.Repositories.Get(ctx, s.repo.Owner, s.repo.Name)
			return repo, mapError("get repository", "repository", s.repo.String(), err)
		})
		if err != nil {
			return nil, err
		}
		ref = protocol.BranchRef(repo.GetDefaultBranch())
	}

	reference, err := retry.Do(ctx, func() (*gh.Reference, error) {
		reference, _, err := s.git().GetRef(ctx, s.repo.Owner, s.repo.Name, ref)
		return reference, mapError("get ref", "ref", ref, err)
	})
	if err != nil {
		return nil, err
	}

	h, err := parseSHA(reference.GetObject().GetSHA())
	if err != nil {
		return nil, fmt.Errorf("ref %s: %w", ref, err)
	}

	logger.Debug("Read ref", "repo", s.repo.String(), "ref", ref, "hash", h.String())
	return h, nil
}

// UpdateRef compares the current value of ref with oldHash and then asks
// GitHub for a non-forced update, which it only accepts as a fast-forward.
// A zero oldHash creates the ref.
func (s *Store) UpdateRef(ctx context.Context, ref string, newHash, oldHash hash.Hash) error {
	name, err := protocol.ParseRefName(ref)
	if err != nil {
		return err
	}
	if name == protocol.HEAD {
		return fmt.Errorf("update ref: HEAD must be updated through its branch")
	}

	logger := log.FromContext(ctx)

	current, err := s.ReadRef(ctx, ref)
	switch {
	case errors.Is(err, meigit.ErrNotFound):
		current = hash.Zero
	case err != nil:
		return err
	}
	if !current.Is(oldHash) {
		return meigit.NewConflictError(ref, oldHash, current)
	}

	reference := &gh.Reference{
		Ref:    gh.Ptr(ref),
		Object: &gh.GitObject{SHA: gh.Ptr(newHash.String())},
	}

	if oldHash.IsZero() {
		_, _, err = s.git().CreateRef(ctx, s.repo.Owner, s.repo.Name, reference)
	} else {
		_, _, err = s.git().UpdateRef(ctx, s.repo.Owner, s.repo.Name, reference, false)
	}
	if err != nil {
		if isRejectedUpdate(err) {
			actual, readErr := s.ReadRef(ctx, ref)
			if readErr != nil {
				actual = nil
			}
			logger.Warn("Ref update rejected", "repo", s.repo.String(), "ref", ref, "expected", oldHash.String(), "actual", actual.String())
			return meigit.NewConflictError(ref, oldHash, actual)
		}
		return mapError("update ref", "ref", ref, err)
	}

	logger.Debug("Updated ref", "repo", s.repo.String(), "ref", ref, "new", newHash.String(), "old", oldHash.String())
	return nil
}

func (s *Store) LoadBlob(ctx context.Context, h hash.Hash) ([]byte, error) {
	obj, err := s.load(ctx, object.TypeBlob, h, func(ctx context.Context) (*storage.Object, error) {
		data, _, err := s.git().GetBlobRaw(ctx, s.repo.Owner, s.repo.Name, h.String())
		if err != nil {
			return nil, mapError("get blob", "object", h.String(), err)
		}
		return &storage.Object{Hash: h, Type: object.TypeBlob, Data: data}, nil
	})
	if err != nil {
		return nil, err
	}
	return meigit.BlobFromObject(obj)
}

func (s *Store) LoadTree(ctx context.Context, h hash.Hash) (*meigit.Tree, error) {
	obj, err := s.load(ctx, object.TypeTree, h, func(ctx context.Context) (*storage.Object, error) {
		tree, _, err := s.git().GetTree(ctx, s.repo.Owner, s.repo.Name, h.String(), false)
		if err != nil {
			return nil, mapError("get tree", "object", h.String(), err)
		}

		entries := make([]meigit.TreeEntry, 0, len(tree.Entries))
		for _, e := range tree.Entries {
			entry, err := fromTreeEntry(e)
			if err != nil {
				return nil, fmt.Errorf("tree %s: %w", h.String(), err)
			}
			entries = append(entries, entry)
		}

		data, err := meigit.EncodeTree(entries)
		if err != nil {
			return nil, fmt.Errorf("tree %s: %w", h.String(), err)
		}
		return &storage.Object{Hash: h, Type: object.TypeTree, Data: data}, nil
	})
	if err != nil {
		return nil, err
	}
	return meigit.TreeFromObject(obj)
}

// LoadCommit reads a commit. GitHub reports the fields of a commit, not its
// raw bytes, so signatures and extra headers are not available.
func (s *Store) LoadCommit(ctx context.Context, h hash.Hash) (*meigit.Commit, error) {
	obj, err := s.load(ctx, object.TypeCommit, h, func(ctx context.Context) (*storage.Object, error) {
		c, _, err := s.git().GetCommit(ctx, s.repo.Owner, s.repo.Name, h.String())
		if err != nil {
			return nil, mapError("get commit", "object", h.String(), err)
		}

		commit, err := fromCommit(h, c)
		if err != nil {
			return nil, err
		}

		data, err := meigit.EncodeCommit(commit)
		if err != nil {
			return nil, fmt.Errorf("commit %s: %w", h.String(), err)
		}
		return &storage.Object{Hash: h, Type: object.TypeCommit, Data: data}, nil
	})
	if err != nil {
		return nil, err
	}
	return meigit.CommitFromObject(obj)
}

// load serves an object from the context cache, or fetches it once even
// when several goroutines ask for it at the same time.
func (s *Store) load(ctx context.Context, t object.Type, h hash.Hash, fetch func(context.Context) (*storage.Object, error)) (*storage.Object, error) {
	if len(h) != 20 {
		return nil, fmt.Errorf("invalid object hash %q", h.String())
	}

	cache := storage.FromContext(ctx)
	if cache != nil {
		if obj, ok := cache.Get(h); ok {
			return obj, nil
		}
	}

	ctx = withReadRetrier(ctx)
	key := s.repo.String() + ":" + t.Name() + ":" + h.String()
	// The flight is shared with other callers, so it must outlive the
	// cancellation of whichever caller started it.
	flightCtx := context.WithoutCancel(ctx)
	results := s.provider.loads.DoChan(key, func() (any, error) {
		return retry.Do(flightCtx, func() (*storage.Object, error) {
			return fetch(flightCtx)
		})
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-results:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	obj := res.Val.(*storage.Object)
	log.FromContext(ctx).Debug("Loaded object", "repo", s.repo.String(), "type", t.Name(), "hash", h.String(), "shared", res.Shared)

	if cache != nil {
		cache.Add(obj)
	}
	return obj, nil
}

// SaveBlob uploads content base64-encoded so binary files survive.
func (s *Store) SaveBlob(ctx context.Context, content []byte) (hash.Hash, error) {
	blob, _, err := s.git().CreateBlob(ctx, s.repo.Owner, s.repo.Name, &gh.Blob{
		Content:  gh.Ptr(base64.StdEncoding.EncodeToString(content)),
		Encoding: gh.Ptr("base64"),
	})
	if err != nil {
		return nil, mapError("create blob", "repository", s.repo.String(), err)
	}

	h, err := parseSHA(blob.GetSHA())
	if err != nil {
		return nil, fmt.Errorf("create blob: %w", err)
	}

	s.remember(ctx, meigit.BlobObject(content), h)
	log.FromContext(ctx).Debug("Saved blob", "repo", s.repo.String(), "hash", h.String(), "size", len(content))
	return h, nil
}

// SaveTree uploads the complete entry list, without a base tree.
func (s *Store) SaveTree(ctx context.Context, entries []meigit.TreeEntry) (hash.Hash, error) {
	local, err := meigit.TreeObject(entries)
	if err != nil {
		return nil, err
	}

	ghEntries := make([]*gh.TreeEntry, 0, len(entries))
	for _, e := range entries {
		ghEntries = append(ghEntries, &gh.TreeEntry{
			Path: gh.Ptr(e.Name),
			Mode: gh.Ptr(formatMode(e.Mode)),
			Type: gh.Ptr(e.Type().Name()),
			SHA:  gh.Ptr(e.Hash.String()),
		})
	}

	tree, _, err := s.git().CreateTree(ctx, s.repo.Owner, s.repo.Name, "", ghEntries)
	if err != nil {
		return nil, mapError("create tree", "repository", s.repo.String(), err)
	}

	h, err := parseSHA(tree.GetSHA())
	if err != nil {
		return nil, fmt.Errorf("create tree: %w", err)
	}

	s.remember(ctx, local, h)
	log.FromContext(ctx).Debug("Saved tree", "repo", s.repo.String(), "hash", h.String(), "entries", len(entries))
	return h, nil
}

func (s *Store) SaveCommit(ctx context.Context, commit *meigit.Commit) (hash.Hash, error) {
	if commit.Tree.IsZero() {
		return nil, fmt.Errorf("commit has no tree")
	}

	c := &gh.Commit{
		Message: gh.Ptr(commit.Message),
		Tree:    &gh.Tree{SHA: gh.Ptr(commit.Tree.String())},
		Author: &gh.CommitAuthor{
			Name:  gh.Ptr(commit.Author.Name),
			Email: gh.Ptr(commit.Author.Email),
			Date:  &gh.Timestamp{Time: commit.Author.Time},
		},
		Committer: &gh.CommitAuthor{
			Name:  gh.Ptr(commit.Committer.Name),
			Email: gh.Ptr(commit.Committer.Email),
			Date:  &gh.Timestamp{Time: commit.Committer.Time},
		},
	}
	if !commit.Parent.IsZero() {
		c.Parents = []*gh.Commit{{SHA: gh.Ptr(commit.Parent.String())}}
	}

	created, _, err := s.git().CreateCommit(ctx, s.repo.Owner, s.repo.Name, c, nil)
	if err != nil {
		return nil, mapError("create commit", "repository", s.repo.String(), err)
	}

	h, err := parseSHA(created.GetSHA())
	if err != nil {
		return nil, fmt.Errorf("create commit: %w", err)
	}

	log.FromContext(ctx).Debug("Saved commit", "repo", s.repo.String(), "hash", h.String(), "parent", commit.Parent.String())
	return h, nil
}

// remember caches an object this store just saved, when the local encoding
// hashes to what GitHub reported.
func (s *Store) remember(ctx context.Context, obj *storage.Object, reported hash.Hash) {
	cache := storage.FromContext(ctx)
	if cache == nil {
		return
	}
	if !obj.Hash.Is(reported) {
		log.FromContext(ctx).Warn("Local object hash differs from GitHub", "local", obj.Hash.String(), "github", reported.String())
		return
	}
	cache.Add(obj)
}

func fromTreeEntry(e *gh.TreeEntry) (meigit.TreeEntry, error) {
	mode, err := strconv.ParseUint(e.GetMode(), 8, 32)
	if err != nil {
		return meigit.TreeEntry{}, fmt.Errorf("entry %q: parse mode %q: %w", e.GetPath(), e.GetMode(), err)
	}
	h, err := parseSHA(e.GetSHA())
	if err != nil {
		return meigit.TreeEntry{}, fmt.Errorf("entry %q: %w", e.GetPath(), err)
	}
	return meigit.TreeEntry{Name: e.GetPath(), Mode: uint32(mode), Hash: h}, nil
}

func fromCommit(h hash.Hash, c *gh.Commit) (*meigit.Commit, error) {
	tree, err := parseSHA(c.GetTree().GetSHA())
	if err != nil {
		return nil, fmt.Errorf("commit %s: tree: %w", h.String(), err)
	}

	commit := &meigit.Commit{
		Hash:    h,
		Tree:    tree,
		Message: c.GetMessage(),
		Author: meigit.Author{
			Name:  c.GetAuthor().GetName(),
			Email: c.GetAuthor().GetEmail(),
			Time:  c.GetAuthor().GetDate().Time,
		},
		Committer: meigit.Committer{
			Name:  c.GetCommitter().GetName(),
			Email: c.GetCommitter().GetEmail(),
			Time:  c.GetCommitter().GetDate().Time,
		},
	}

	if len(c.Parents) > 0 {
		parent, err := parseSHA(c.Parents[0].GetSHA())
		if err != nil {
			return nil, fmt.Errorf("commit %s: parent: %w", h.String(), err)
		}
		commit.Parent = parent
	}

	return commit, nil
}

// formatMode writes a mode the way the API expects it, e.g. "040000".
func formatMode(mode uint32) string {
	return fmt.Sprintf("%06o", mode)
}

func parseSHA(sha string) (hash.Hash, error) {
	h, err := hash.FromHex(strings.TrimSpace(sha))
	if err != nil {
		return nil, fmt.Errorf("invalid sha %q: %w", sha, err)
	}
	if len(h) != 20 {
		return nil, fmt.Errorf("invalid sha %q", sha)
	}
	return h, nil
}
