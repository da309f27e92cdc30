package meigit

import (
	"context"
	"fmt"
	"strings"

	"github.com/mei-friend/meigit/log"
)

// DefaultPullRequestText is the title and body of a pull request opened
// without either.
const DefaultPullRequestText = "Programmatic pull request created using meigit"

// Fork switches the session to a fork of the upstream repository owned by
// targetOwner, or by the logged in user when targetOwner is empty. An
// existing fork is reused; otherwise one is created, in the organization
// targetOwner when that is not the user. Branch and path are kept, the
// cached head is cleared.
func (s Session) Fork(ctx context.Context, targetOwner string) (Session, error) {
	if err := s.require("Fork", StateRepoSelected); err != nil {
		return s, err
	}

	ctx = s.context(ctx)
	logger := log.FromContext(ctx)

	owner := strings.TrimSpace(targetOwner)
	if owner == "" {
		owner = s.user.Login
	}

	upstream := s.upstream
	if upstream.IsZero() {
		upstream = s.repo
	}

	forks, err := s.provider.ListForks(ctx, upstream)
	if err != nil {
		return s, fmt.Errorf("list forks of %s: %w", upstream, err)
	}

	var target RepoName
	for _, f := range forks {
		if strings.EqualFold(f.Name.Owner, owner) {
			target = f.Name
			logger.Debug("Reusing fork", "upstream", upstream.String(), "fork", target.String())
			break
		}
	}

	if target.IsZero() {
		organization := ""
		if !strings.EqualFold(owner, s.user.Login) {
			organization = owner
		}

		created, err := s.provider.CreateFork(ctx, upstream, organization)
		if err != nil {
			return s, fmt.Errorf("fork %s into %s: %w", upstream, owner, err)
		}
		target = created.Name
		logger.Info("Created fork", "upstream", upstream.String(), "fork", target.String())
	}

	next, err := s.switchRepository(ctx, target)
	if err != nil {
		return s, err
	}
	// The hosting service may not report the parent of a fork that is still
	// being created.
	next.upstream = upstream
	next.branch = s.branch
	next.path = s.path
	return next, nil
}

// PullRequestOptions customizes PullRequest. Empty fields take defaults.
type PullRequestOptions struct {
	Title string
	Body  string
	// Base is the upstream branch to merge into. It defaults to the
	// session's branch.
	Base string
}

// PullRequest proposes the session's branch of the fork to the upstream.
// Outside a fork nothing is sent and ErrNotAFork is returned.
func (s Session) PullRequest(ctx context.Context, opts PullRequestOptions) (*PullRequest, error) {
	if err := s.require("PullRequest", StateBranchSelected); err != nil {
		return nil, err
	}

	ctx = s.context(ctx)
	logger := log.FromContext(ctx)

	if !s.IsFork() {
		logger.Warn("Refusing pull request outside a fork", "repo", s.repo.String())
		return nil, ErrNotAFork
	}

	pr := NewPullRequest{
		Title: opts.Title,
		Body:  opts.Body,
		Head:  s.repo.Owner + ":" + s.branch,
		Base:  opts.Base,
	}
	if pr.Title == "" {
		pr.Title = DefaultPullRequestText
	}
	if pr.Body == "" {
		pr.Body = DefaultPullRequestText
	}
	if pr.Base == "" {
		pr.Base = s.branch
	}

	created, err := s.provider.CreatePullRequest(ctx, s.upstream, pr)
	if err != nil {
		return nil, fmt.Errorf("create pull request on %s: %w", s.upstream, err)
	}

	logger.Info("Created pull request", "upstream", s.upstream.String(), "head", pr.Head, "base", pr.Base, "number", created.Number)
	return created, nil
}
