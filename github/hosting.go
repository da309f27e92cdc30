package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v72/github"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/retry"
)

func (p *Provider) AuthenticatedUser(ctx context.Context) (*meigit.User, error) {
	ctx = withReadRetrier(ctx)
	user, err := retry.Do(ctx, func() (*gh.User, error) {
		user, _, err := p.client.Users.Get(ctx, "")
		return user, mapError("get authenticated user", "user", "", err)
	})
	if err != nil {
		return nil, err
	}

	return &meigit.User{
		Login: user.GetLogin(),
		Name:  user.GetName(),
		Email: user.GetEmail(),
	}, nil
}

func (p *Provider) GetRepository(ctx context.Context, repo meigit.RepoName) (*meigit.Repository, error) {
	ctx = withReadRetrier(ctx)
	r, err := retry.Do(ctx, func() (*gh.Repository, error) {
		r, _, err := p.client.Repositories.Get(ctx, repo.Owner, repo.Name)
		return r, mapError("get repository", "repository", repo.String(), err)
	})
	if err != nil {
		return nil, err
	}

	converted := toRepository(r)
	return &converted, nil
}

// ListForks follows the pagination until every fork has been listed.
func (p *Provider) ListForks(ctx context.Context, repo meigit.RepoName) ([]meigit.Repository, error) {
	ctx = withReadRetrier(ctx)
	opts := &gh.RepositoryListForksOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var forks []meigit.Repository
	for {
		page, err := retry.Do(ctx, func() (*listing[*gh.Repository], error) {
			repos, res, err := p.client.Repositories.ListForks(ctx, repo.Owner, repo.Name, opts)
			if err != nil {
				return nil, mapError("list forks", "repository", repo.String(), err)
			}
			return &listing[*gh.Repository]{items: repos, next: res.NextPage}, nil
		})
		if err != nil {
			return nil, err
		}

		for _, r := range page.items {
			forks = append(forks, toRepository(r))
		}
		if page.next == 0 {
			break
		}
		opts.Page = page.next
	}

	log.FromContext(ctx).Debug("Listed forks", "repo", repo.String(), "count", len(forks))
	return forks, nil
}

// CreateFork starts a fork. GitHub creates forks asynchronously and answers
// 202 with the future fork, which is returned as is.
func (p *Provider) CreateFork(ctx context.Context, repo meigit.RepoName, organization string) (*meigit.Repository, error) {
	opts := &gh.RepositoryCreateForkOptions{Organization: organization}
	fork, _, err := p.client.Repositories.CreateFork(ctx, repo.Owner, repo.Name, opts)
	var accepted *gh.AcceptedError
	if err != nil && !errors.As(err, &accepted) {
		return nil, mapError("create fork", "repository", repo.String(), err)
	}
	if accepted != nil && len(accepted.Raw) > 0 {
		fork = new(gh.Repository)
		if err := json.Unmarshal(accepted.Raw, fork); err != nil {
			return nil, fmt.Errorf("create fork: decode pending fork: %w", err)
		}
	}
	if fork == nil {
		fork = new(gh.Repository)
	}

	converted := toRepository(fork)
	if converted.Name.Name == "" {
		converted.Name.Name = repo.Name
	}
	if converted.Name.Owner == "" {
		converted.Name.Owner = organization
	}
	if converted.Name.Owner == "" {
		user, err := p.AuthenticatedUser(ctx)
		if err != nil {
			return nil, fmt.Errorf("create fork: resolve owner: %w", err)
		}
		converted.Name.Owner = user.Login
	}
	if converted.Parent == nil {
		parent := repo
		converted.Parent = &parent
		converted.Fork = true
	}

	log.FromContext(ctx).Info("Fork requested", "source", repo.String(), "fork", converted.Name.String(), "pending", accepted != nil)
	return &converted, nil
}

func (p *Provider) CreatePullRequest(ctx context.Context, repo meigit.RepoName, pr meigit.NewPullRequest) (*meigit.PullRequest, error) {
	created, _, err := p.client.PullRequests.Create(ctx, repo.Owner, repo.Name, &gh.NewPullRequest{
		Title: gh.Ptr(pr.Title),
		Body:  gh.Ptr(pr.Body),
		Head:  gh.Ptr(pr.Head),
		Base:  gh.Ptr(pr.Base),
	})
	if err != nil {
		return nil, mapError("create pull request", "repository", repo.String(), err)
	}

	return &meigit.PullRequest{
		Number:  created.GetNumber(),
		Title:   created.GetTitle(),
		HTMLURL: created.GetHTMLURL(),
		State:   created.GetState(),
	}, nil
}

func (p *Provider) ListCommits(ctx context.Context, repo meigit.RepoName, branch string, page meigit.ListPage) ([]meigit.CommitSummary, error) {
	ctx = withReadRetrier(ctx)
	page = page.Normalize()
	opts := &gh.CommitsListOptions{
		SHA:         branch,
		ListOptions: gh.ListOptions{PerPage: page.PerPage, Page: page.Page},
	}

	commits, err := retry.Do(ctx, func() ([]*gh.RepositoryCommit, error) {
		commits, _, err := p.client.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
		return commits, mapError("list commits", "branch", branch, err)
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]meigit.CommitSummary, 0, len(commits))
	for _, c := range commits {
		h, err := parseSHA(c.GetSHA())
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, meigit.CommitSummary{
			Hash:        h,
			Message:     c.GetCommit().GetMessage(),
			AuthorName:  c.GetCommit().GetAuthor().GetName(),
			AuthorEmail: c.GetCommit().GetAuthor().GetEmail(),
			AuthorLogin: c.GetAuthor().GetLogin(),
			Date:        c.GetCommit().GetAuthor().GetDate().Time,
			HTMLURL:     c.GetHTMLURL(),
		})
	}
	return summaries, nil
}

// ListOrganizations lists the active organization memberships of the user,
// which unlike the public organization list includes private memberships.
func (p *Provider) ListOrganizations(ctx context.Context) ([]meigit.Organization, error) {
	ctx = withReadRetrier(ctx)
	opts := &gh.ListOrgMembershipsOptions{
		State:       "active",
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var orgs []meigit.Organization
	for {
		page, err := retry.Do(ctx, func() (*listing[*gh.Membership], error) {
			memberships, res, err := p.client.Organizations.ListOrgMemberships(ctx, opts)
			if err != nil {
				return nil, mapError("list organizations", "user", "", err)
			}
			return &listing[*gh.Membership]{items: memberships, next: res.NextPage}, nil
		})
		if err != nil {
			return nil, err
		}

		for _, m := range page.items {
			orgs = append(orgs, meigit.Organization{
				Login: m.GetOrganization().GetLogin(),
				Role:  m.GetRole(),
			})
		}
		if page.next == 0 {
			break
		}
		opts.Page = page.next
	}
	return orgs, nil
}

// ListRepositories lists repositories most recently updated first. For the
// authenticated user this includes private repositories and those the user
// collaborates on.
func (p *Provider) ListRepositories(ctx context.Context, owner string, page meigit.ListPage) ([]meigit.Repository, error) {
	ctx = withReadRetrier(ctx)
	page = page.Normalize()
	list := gh.ListOptions{PerPage: page.PerPage, Page: page.Page}

	repos, err := retry.Do(ctx, func() ([]*gh.Repository, error) {
		if owner == "" {
			repos, _, err := p.client.Repositories.ListByAuthenticatedUser(ctx, &gh.RepositoryListByAuthenticatedUserOptions{
				Sort:        "updated",
				ListOptions: list,
			})
			return repos, mapError("list repositories", "user", "", err)
		}
		repos, _, err := p.client.Repositories.ListByUser(ctx, owner, &gh.RepositoryListByUserOptions{
			Sort:        "updated",
			ListOptions: list,
		})
		return repos, mapError("list repositories", "user", owner, err)
	})
	if err != nil {
		return nil, err
	}

	converted := make([]meigit.Repository, 0, len(repos))
	for _, r := range repos {
		converted = append(converted, toRepository(r))
	}
	return converted, nil
}

func (p *Provider) ListBranches(ctx context.Context, repo meigit.RepoName, page meigit.ListPage) ([]meigit.Branch, error) {
	ctx = withReadRetrier(ctx)
	page = page.Normalize()
	opts := &gh.BranchListOptions{
		ListOptions: gh.ListOptions{PerPage: page.PerPage, Page: page.Page},
	}

	branches, err := retry.Do(ctx, func() ([]*gh.Branch, error) {
		branches, _, err := p.client.Repositories.ListBranches(ctx, repo.Owner, repo.Name, opts)
		return branches, mapError("list branches", "repository", repo.String(), err)
	})
	if err != nil {
		return nil, err
	}

	converted := make([]meigit.Branch, 0, len(branches))
	for _, b := range branches {
		h, err := parseSHA(b.GetCommit().GetSHA())
		if err != nil {
			return nil, err
		}
		converted = append(converted, meigit.Branch{
			Name:      b.GetName(),
			Head:      h,
			Protected: b.GetProtected(),
		})
	}
	return converted, nil
}

// listing is one page of a paginated response.
type listing[T any] struct {
	items []T
	next  int
}

func toRepository(r *gh.Repository) meigit.Repository {
	repo := meigit.Repository{
		Name: meigit.RepoName{
			Owner: r.GetOwner().GetLogin(),
			Name:  r.GetName(),
		},
		DefaultBranch: r.GetDefaultBranch(),
		Private:       r.GetPrivate(),
		Fork:          r.GetFork(),
		HTMLURL:       r.GetHTMLURL(),
	}
	if repo.Name.Owner == "" || repo.Name.Name == "" {
		if name, err := meigit.ParseRepoName(r.GetFullName()); err == nil {
			repo.Name = name
		}
	}
	if parent := r.GetParent(); parent != nil {
		name := meigit.RepoName{Owner: parent.GetOwner().GetLogin(), Name: parent.GetName()}
		if name.Owner == "" {
			name, _ = meigit.ParseRepoName(parent.GetFullName())
		}
		if !name.IsZero() {
			repo.Parent = &name
		}
	}
	return repo
}
