package meigit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mei-friend/meigit/protocol/hash"
)

// RepoName identifies a repository on the hosting service.
type RepoName struct {
	Owner string
	Name  string
}

// ParseRepoName parses "owner/name".
func ParseRepoName(s string) (RepoName, error) {
	owner, name, ok := strings.Cut(strings.Trim(strings.TrimSpace(s), "/"), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoName{}, fmt.Errorf("repository name %q is not of the form owner/name", s)
	}
	return RepoName{Owner: owner, Name: name}, nil
}

func (r RepoName) String() string {
	return r.Owner + "/" + r.Name
}

// IsZero reports whether no repository is set.
func (r RepoName) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

// User is the profile of the authenticated account.
type User struct {
	Login string
	// Name and Email are empty when the profile does not expose them.
	Name  string
	Email string
}

// Repository describes a hosted repository.
type Repository struct {
	Name          RepoName
	DefaultBranch string
	Private       bool
	Fork          bool
	// Parent is the repository this one was forked from, if any.
	Parent  *RepoName
	HTMLURL string
}

// NewPullRequest is the payload of Hosting.CreatePullRequest.
type NewPullRequest struct {
	Title string
	Body  string
	// Head is "<owner>:<branch>" of the fork.
	Head string
	// Base is the branch of the upstream repository to merge into.
	Base string
}

// PullRequest is a created pull request.
type PullRequest struct {
	Number  int
	Title   string
	HTMLURL string
	State   string
}

// CommitSummary is one entry of a branch's commit history.
type CommitSummary struct {
	Hash        hash.Hash
	Message     string
	AuthorName  string
	AuthorEmail string
	AuthorLogin string
	Date        time.Time
	HTMLURL     string
}

// Organization is an organization the user belongs to.
type Organization struct {
	Login string
	// Role is the user's membership role, e.g. "admin" or "member".
	Role string
}

// Branch is a branch of a repository and the commit it points at.
type Branch struct {
	Name      string
	Head      hash.Hash
	Protected bool
}

// ListPage selects one page of a listing. Zero values mean 30 items on the
// first page.
type ListPage struct {
	PerPage int
	Page    int
}

const (
	DefaultPerPage = 30
	maxPerPage     = 100
)

// Normalize fills in the defaults and caps PerPage at the hosting maximum.
func (p ListPage) Normalize() ListPage {
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return p
}

// Hosting is the part of a git hosting service that lives outside the git
// object model: accounts, forks, pull requests and listings.
type Hosting interface {
	AuthenticatedUser(ctx context.Context) (*User, error)
	GetRepository(ctx context.Context, repo RepoName) (*Repository, error)
	// ListForks returns every fork of repo.
	ListForks(ctx context.Context, repo RepoName) ([]Repository, error)
	// CreateFork forks repo into the authenticated user's account, or into
	// organization when it is not empty.
	CreateFork(ctx context.Context, repo RepoName, organization string) (*Repository, error)
	CreatePullRequest(ctx context.Context, repo RepoName, pr NewPullRequest) (*PullRequest, error)
	ListCommits(ctx context.Context, repo RepoName, branch string, page ListPage) ([]CommitSummary, error)
	ListOrganizations(ctx context.Context) ([]Organization, error)
	// ListRepositories lists the repositories of owner, or of the
	// authenticated user when owner is empty.
	ListRepositories(ctx context.Context, owner string, page ListPage) ([]Repository, error)
	ListBranches(ctx context.Context, repo RepoName, page ListPage) ([]Branch, error)
}

// Provider is a hosting service that can also open the object store of one
// of its repositories.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/provider.go . Provider
type Provider interface {
	Hosting
	OpenStore(ctx context.Context, repo RepoName) (ObjectStore, error)
}
