package meigit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol"
	"github.com/mei-friend/meigit/protocol/hash"
)

// WriteRequest describes a single-file edit committed on top of a branch.
type WriteRequest struct {
	// Ref is the full ref to advance, e.g. "refs/heads/main".
	Ref string
	// Path is the slash-separated path of the file below the root tree.
	Path    string
	Content []byte
	// Message must contain more than whitespace.
	Message string
	// NewFile, when set, stores Content under this name in the directory of
	// Path and leaves the file at Path unchanged.
	NewFile   string
	Author    Author
	Committer Committer
}

// WriteResult is the outcome of a successful WriteFile.
type WriteResult struct {
	// Commit is the new commit, including its hash.
	Commit *Commit
	// Parent is the head the write was built on.
	Parent hash.Hash
	// Tree is the new root tree.
	Tree hash.Hash
	// Head is the ref value read back after the update. It equals
	// Commit.Hash unless someone moved the ref again in between.
	Head hash.Hash
	// OperationID correlates the log lines of this write.
	OperationID string
}

// WriteFile commits req.Content at req.Path on req.Ref:
//
//  1. read the head of the ref
//  2. load the head commit and its root tree
//  3. rewrite the trees along the path
//  4. save a commit whose parent is the head from step 1
//  5. move the ref, only if it still points at that head
//  6. read the ref back
//
// Nothing is written when the message is empty or the ref name is invalid.
// A failure before step 5 leaves the ref untouched and only orphan objects
// behind. A failure in step 5 is returned as an UnresolvedWriteError; when
// the ref moved in the meantime it also matches ErrConflict.
//
// ctx is honored up to step 4. Steps 5 and 6 ignore its cancellation so that
// a ref update that was sent is always read back.
func WriteFile(ctx context.Context, store ObjectStore, req WriteRequest) (*WriteResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := protocol.ParseRefName(req.Ref); err != nil {
		return nil, err
	}

	opID := uuid.NewString()
	logger := log.FromContext(ctx)
	logger.Debug("Write file", "operation_id", opID, "ref", req.Ref, "path", req.Path, "new_file", req.NewFile, "size", len(req.Content))

	oldHead, err := store.ReadRef(ctx, req.Ref)
	if err != nil {
		return nil, fmt.Errorf("read ref %s: %w", req.Ref, err)
	}

	headCommit, err := store.LoadCommit(ctx, oldHead)
	if err != nil {
		return nil, fmt.Errorf("load head commit %s: %w", oldHead.String(), err)
	}

	root, err := store.LoadTree(ctx, headCommit.Tree)
	if err != nil {
		return nil, fmt.Errorf("load root tree %s: %w", headCommit.Tree.String(), err)
	}

	newTree, err := RewriteTree(ctx, store, root, req.Path, req.Content, req.NewFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("Rewrote tree", "operation_id", opID, "old_tree", headCommit.Tree.String(), "new_tree", newTree.String())

	now := time.Now()
	commit := &Commit{
		Tree:      newTree,
		Parent:    oldHead,
		Author:    req.Author,
		Committer: req.Committer,
		Message:   req.Message,
	}
	if commit.Author.Time.IsZero() {
		commit.Author.Time = now
	}
	if commit.Committer.Name == "" && commit.Committer.Email == "" {
		commit.Committer = Committer(commit.Author)
	}
	if commit.Committer.Time.IsZero() {
		commit.Committer.Time = now
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	commitHash, err := store.SaveCommit(ctx, commit)
	if err != nil {
		return nil, fmt.Errorf("save commit: %w", err)
	}
	commit.Hash = commitHash
	logger.Debug("Saved commit", "operation_id", opID, "commit", commitHash.String(), "parent", oldHead.String())

	// From here on the caller cannot interrupt us.
	finishCtx := context.WithoutCancel(ctx)
	if err := store.UpdateRef(finishCtx, req.Ref, commitHash, oldHead); err != nil {
		logger.Error("Ref update failed", "operation_id", opID, "ref", req.Ref, "commit", commitHash.String(), "error", err)
		return nil, &UnresolvedWriteError{Ref: req.Ref, Commit: commitHash, Err: err}
	}

	head, err := store.ReadRef(finishCtx, req.Ref)
	switch {
	case err != nil:
		logger.Warn("Could not confirm ref update", "operation_id", opID, "ref", req.Ref, "error", err)
		head = commitHash
	case !head.Is(commitHash):
		logger.Warn("Ref moved right after update", "operation_id", opID, "ref", req.Ref, "expected", commitHash.String(), "actual", head.String())
	}

	logger.Info("Committed file", "operation_id", opID, "ref", req.Ref, "path", req.Path, "commit", commitHash.String())

	return &WriteResult{
		Commit:      commit,
		Parent:      oldHead,
		Tree:        newTree,
		Head:        head,
		OperationID: opID,
	}, nil
}
