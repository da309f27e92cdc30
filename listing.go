package meigit

import "context"

// Organizations lists the organizations the user is a member of.
func (s Session) Organizations(ctx context.Context) ([]Organization, error) {
	if err := s.require("Organizations", StateLoggedIn); err != nil {
		return nil, err
	}
	return s.provider.ListOrganizations(s.context(ctx))
}

// Repositories lists the repositories of owner, or of the user when owner is
// empty.
func (s Session) Repositories(ctx context.Context, owner string, page ListPage) ([]Repository, error) {
	if err := s.require("Repositories", StateLoggedIn); err != nil {
		return nil, err
	}
	return s.provider.ListRepositories(s.context(ctx), owner, page.Normalize())
}

func (s Session) Branches(ctx context.Context, page ListPage) ([]Branch, error) {
	if err := s.require("Branches", StateRepoSelected); err != nil {
		return nil, err
	}
	return s.provider.ListBranches(s.context(ctx), s.repo, page.Normalize())
}

// CommitLog lists the history of the selected branch, newest first.
func (s Session) CommitLog(ctx context.Context, page ListPage) ([]CommitSummary, error) {
	if err := s.require("CommitLog", StateBranchSelected); err != nil {
		return nil, err
	}
	return s.provider.ListCommits(s.context(ctx), s.repo, s.branch, page.Normalize())
}
