package github

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mei-friend/meigit"
)

func TestProvider_AuthenticatedUser(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(t)
	user, err := api.provider().AuthenticatedUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, &meigit.User{Login: "clara", Name: "Clara Schumann", Email: "clara@example.com"}, user)
}

func TestProvider_Unauthorized(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(t)
	api.failNext(http.MethodGet, "/user", http.StatusUnauthorized)

	_, err := api.provider().AuthenticatedUser(context.Background())
	require.ErrorIs(t, err, meigit.ErrUnauthorized)

	var authErr *meigit.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}

func TestProvider_GetRepository(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(t)
	api.addRepo("mei-friend", "scores", nil)
	p := api.provider()
	ctx := context.Background()

	repo, err := p.GetRepository(ctx, meigit.RepoName{Owner: "mei-friend", Name: "scores"})
	require.NoError(t, err)
	require.Equal(t, meigit.RepoName{Owner: "mei-friend", Name: "scores"}, repo.Name)
	require.Equal(t, "main", repo.DefaultBranch)
	require.False(t, repo.Fork)
	require.Nil(t, repo.Parent)

	_, err = p.GetRepository(ctx, meigit.RepoName{Owner: "mei-friend", Name: "missing"})
	require.ErrorIs(t, err, meigit.ErrNotFound)
}

func TestProvider_Forks(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(t)
	api.orgs = []string{"lieder", "opera", "sonatas"}
	api.pageSize = 2
	upstream := meigit.RepoName{Owner: "mei-friend", Name: "scores"}
	api.addRepo(upstream.Owner, upstream.Name, map[string][]byte{"a.mei": []byte("<mei/>")})
	p := api.provider()
	ctx := context.Background()

	forks, err := p.ListForks(ctx, upstream)
	require.NoError(t, err)
	require.Empty(t, forks)

	fork, err := p.CreateFork(ctx, upstream, "")
	require.NoError(t, err)
	require.Equal(t, meigit.RepoName{Owner: "clara", Name: "scores"}, fork.Name)
	require.True(t, fork.Fork)
	require.Equal(t, &upstream, fork.Parent)

	for _, org := range api.orgs {
		_, err := p.CreateFork(ctx, upstream, org)
		require.NoError(t, err)
	}

	// Four forks over pages of two.
	forks, err = p.ListForks(ctx, upstream)
	require.NoError(t, err)
	require.Len(t, forks, 4)
	owners := make([]string, 0, len(forks))
	for _, f := range forks {
		owners = append(owners, f.Name.Owner)
		require.Equal(t, &upstream, f.Parent)
	}
	require.Equal(t, []string{"clara", "lieder", "opera", "sonatas"}, owners)
	require.Equal(t, 3, api.count(http.MethodGet, "/repos/mei-friend/scores/forks"))

	// The fork shares the upstream history.
	forkHead, err := openStore(t, api, "lieder", "scores").ReadRef(ctx, mainRef)
	require.NoError(t, err)
	upstreamHead, err := openStore(t, api, "mei-friend", "scores").ReadRef(ctx, mainRef)
	require.NoError(t, err)
	require.Equal(t, upstreamHead.String(), forkHead.String())
}

func TestProvider_CreatePullRequest(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(t)
	api.addRepo("mei-friend", "scores", nil)
	p := api.provider()

	pr, err := p.CreatePullRequest(context.Background(), meigit.RepoName{Owner: "mei-friend", Name: "scores"}, meigit.NewPullRequest{
		Title: "Fix measure 12",
		Body:  "Programmatic pull request",
		Head:  "clara:main",
		Base:  "main",
	})
	require.NoError(t, err)
	require.Equal(t, 1, pr.Number)
	require.Equal(t, "Fix measure 12", pr.Title)
	require.Equal(t, "open", pr.State)
	require.Equal(t, "https://github.com/mei-friend/scores/pull/1", pr.HTMLURL)

	require.Len(t, api.pulls, 1)
	require.Equal(t, "clara:main", api.pulls[0].GetHead())
	require.Equal(t, "main", api.pulls[0].GetBase())
	require.Equal(t, "Programmatic pull request", api.pulls[0].GetBody())
}

func TestProvider_ListCommits(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(t)
	seeded := api.addRepo("clara", "scores", map[string][]byte{"a.mei": []byte("v1")})
	repo := meigit.RepoName{Owner: "clara", Name: "scores"}
	p := api.provider()
	ctx := context.Background()

	result, err := meigit.WriteFile(ctx, openStore(t, api, "clara", "scores"), meigit.WriteRequest{
		Ref:     mainRef,
		Path:    "a.mei",
		Content: []byte("v2"),
		Message: "Second edit",
		Author:  meigit.Author{Name: "Clara", Email: "clara@example.com"},
	})
	require.NoError(t, err)

	commits, err := p.ListCommits(ctx, repo, "main", meigit.ListPage{})
	require.NoError(t, err)
	require.Len(t, commits, 2)
	require.Equal(t, result.Commit.Hash.String(), commits[0].Hash.String())
	require.Equal(t, "Second edit", commits[0].Message)
	require.Equal(t, "Clara", commits[0].AuthorName)
	require.Equal(t, "clara", commits[0].AuthorLogin)
	require.Equal(t, seeded.Hash.String(), commits[1].Hash.String())
	require.True(t, seeded.Author.Time.Equal(commits[1].Date))
	require.Equal(t, "main", api.lastQuery().Get("sha"))
	require.Equal(t, "30", api.lastQuery().Get("per_page"))

	page, err := p.ListCommits(ctx, repo, "main", meigit.ListPage{PerPage: 1, Page: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, seeded.Hash.String(), page[0].Hash.String())

	_, err = p.ListCommits(ctx, repo, "missing", meigit.ListPage{})
	require.ErrorIs(t, err, meigit.ErrNotFound)
}

func TestProvider_ListOrganizations(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(t)
	api.orgs = []string{"mei-friend", "music-encoding", "lieder"}
	api.pageSize = 2

	orgs, err := api.provider().ListOrganizations(context.Background())
	require.NoError(t, err)
	require.Equal(t, []meigit.Organization{
		{Login: "mei-friend", Role: "member"},
		{Login: "music-encoding", Role: "member"},
		{Login: "lieder", Role: "member"},
	}, orgs)
	require.Equal(t, "active", api.lastQuery().Get("state"))
}

func TestProvider_ListRepositories(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(t)
	api.addRepo("clara", "lieder", nil)
	api.addRepo("clara", "scores", nil)
	api.addRepo("mei-friend", "examples", nil)
	p := api.provider()
	ctx := context.Background()

	own, err := p.ListRepositories(ctx, "", meigit.ListPage{})
	require.NoError(t, err)
	require.Len(t, own, 2)
	require.Equal(t, "clara/lieder", own[0].Name.String())
	require.Equal(t, "updated", api.lastQuery().Get("sort"))
	require.Equal(t, 1, api.count(http.MethodGet, "/user/repos"))

	other, err := p.ListRepositories(ctx, "mei-friend", meigit.ListPage{PerPage: 500})
	require.NoError(t, err)
	require.Len(t, other, 1)
	require.Equal(t, "mei-friend/examples", other[0].Name.String())
	require.Equal(t, "100", api.lastQuery().Get("per_page"))
}

func TestProvider_ListBranches(t *testing.T) {
	t.Parallel()

	api := newFakeAPI(t)
	seeded := api.addRepo("clara", "scores", nil)
	api.store("clara", "scores").SetRef("refs/heads/draft", seeded.Hash)

	branches, err := api.provider().ListBranches(context.Background(), meigit.RepoName{Owner: "clara", Name: "scores"}, meigit.ListPage{})
	require.NoError(t, err)
	require.Equal(t, []meigit.Branch{
		{Name: "draft", Head: seeded.Hash},
		{Name: "main", Head: seeded.Hash, Protected: true},
	}, branches)
}
