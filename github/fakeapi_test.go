package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	gh "github.com/google/go-github/v72/github"
	"github.com/stretchr/testify/require"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/storage/memory"
)

// fakeAPI serves the subset of the GitHub REST API the provider calls. Each
// repository is backed by a memory store so object hashes match git.
type fakeAPI struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	user     *gh.User
	orgs     []string
	repos    map[string]*gh.Repository
	seeds    map[string]map[string][]byte
	stores   map[string]*memory.Store
	pulls    []gh.NewPullRequest
	requests []string
	headers  []http.Header
	queries  []url.Values
	// failures holds status codes to answer "METHOD /path" with before
	// serving it normally.
	failures map[string][]int
	// pageSize caps every paginated listing when set.
	pageSize int
	// rejectRefUpdates answers every ref update with 422.
	rejectRefUpdates bool
	// holds keeps "METHOD /path" requests waiting until the channel closes.
	holds map[string]chan struct{}
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{
		t:        t,
		user:     &gh.User{Login: gh.Ptr("clara"), Name: gh.Ptr("Clara Schumann"), Email: gh.Ptr("clara@example.com")},
		repos:    make(map[string]*gh.Repository),
		seeds:    make(map[string]map[string][]byte),
		stores:   make(map[string]*memory.Store),
		failures: make(map[string][]int),
		holds:    make(map[string]chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", f.getUser)
	mux.HandleFunc("GET /user/memberships/orgs", f.listMemberships)
	mux.HandleFunc("GET /user/repos", f.listOwnRepos)
	mux.HandleFunc("GET /users/{owner}/repos", f.listUserRepos)
	mux.HandleFunc("GET /repos/{owner}/{repo}", f.getRepo)
	mux.HandleFunc("GET /repos/{owner}/{repo}/forks", f.listForks)
	mux.HandleFunc("POST /repos/{owner}/{repo}/forks", f.createFork)
	mux.HandleFunc("POST /repos/{owner}/{repo}/pulls", f.createPull)
	mux.HandleFunc("GET /repos/{owner}/{repo}/commits", f.listCommits)
	mux.HandleFunc("GET /repos/{owner}/{repo}/branches", f.listBranches)
	mux.HandleFunc("GET /repos/{owner}/{repo}/git/ref/{ref...}", f.getRef)
	mux.HandleFunc("POST /repos/{owner}/{repo}/git/refs", f.createRef)
	mux.HandleFunc("PATCH /repos/{owner}/{repo}/git/refs/{ref...}", f.updateRef)
	mux.HandleFunc("GET /repos/{owner}/{repo}/git/blobs/{sha}", f.getBlob)
	mux.HandleFunc("POST /repos/{owner}/{repo}/git/blobs", f.createBlob)
	mux.HandleFunc("GET /repos/{owner}/{repo}/git/trees/{sha}", f.getTree)
	mux.HandleFunc("POST /repos/{owner}/{repo}/git/trees", f.createTree)
	mux.HandleFunc("GET /repos/{owner}/{repo}/git/commits/{sha}", f.getCommit)
	mux.HandleFunc("POST /repos/{owner}/{repo}/git/commits", f.createCommit)

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		f.mu.Lock()
		f.requests = append(f.requests, key)
		f.headers = append(f.headers, r.Header.Clone())
		f.queries = append(f.queries, r.URL.Query())
		var status int
		if queued := f.failures[key]; len(queued) > 0 {
			status = queued[0]
			f.failures[key] = queued[1:]
		}
		held := f.holds[key]
		f.mu.Unlock()

		if held != nil {
			<-held
		}

		if status != 0 {
			writeError(w, status, http.StatusText(status))
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.server.Close)

	return f
}

// provider returns a Provider talking to the fake.
func (f *fakeAPI) provider(opts ...Option) *Provider {
	f.t.Helper()
	opts = append([]Option{WithBaseURL(f.server.URL + "/"), WithToken("test-token")}, opts...)
	p, err := New(opts...)
	require.NoError(f.t, err)
	return p
}

// addRepo creates owner/name with files committed on main.
func (f *fakeAPI) addRepo(owner, name string, files map[string][]byte) *meigit.Commit {
	f.t.Helper()

	store := memory.New()
	commit, err := store.Seed(context.Background(), "refs/heads/main", files)
	require.NoError(f.t, err)

	full := owner + "/" + name
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repos[full] = &gh.Repository{
		Name:          gh.Ptr(name),
		FullName:      gh.Ptr(full),
		Owner:         &gh.User{Login: gh.Ptr(owner)},
		DefaultBranch: gh.Ptr("main"),
		HTMLURL:       gh.Ptr("https://github.com/" + full),
	}
	f.seeds[full] = files
	f.stores[full] = store
	return commit
}

func (f *fakeAPI) store(owner, name string) *memory.Store {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stores[owner+"/"+name]
}

func (f *fakeAPI) failNext(method, path string, statuses ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := method + " " + path
	f.failures[key] = append(f.failures[key], statuses...)
}

// count returns how many requests matched "METHOD /path".
// hold makes requests to method and path wait until release is called.
func (f *fakeAPI) hold(method, path string) (release func()) {
	ch := make(chan struct{})
	f.mu.Lock()
	f.holds[method+" "+path] = ch
	f.mu.Unlock()

	var once sync.Once
	release = func() { once.Do(func() { close(ch) }) }
	f.t.Cleanup(release)
	return release
}

func (f *fakeAPI) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r == method+" "+path {
			n++
		}
	}
	return n
}

func (f *fakeAPI) lastHeader() http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.headers[len(f.headers)-1]
}

func (f *fakeAPI) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func (f *fakeAPI) repoStore(w http.ResponseWriter, r *http.Request) (*memory.Store, bool) {
	store := f.store(r.PathValue("owner"), r.PathValue("repo"))
	if store == nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return nil, false
	}
	return store, true
}

func (f *fakeAPI) getUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, f.user)
}

func (f *fakeAPI) listMemberships(w http.ResponseWriter, r *http.Request) {
	memberships := make([]*gh.Membership, 0, len(f.orgs))
	for _, org := range f.orgs {
		memberships = append(memberships, &gh.Membership{
			State:        gh.Ptr("active"),
			Role:         gh.Ptr("member"),
			Organization: &gh.Organization{Login: gh.Ptr(org)},
		})
	}
	f.paginate(w, r, memberships)
}

func (f *fakeAPI) listOwnRepos(w http.ResponseWriter, r *http.Request) {
	f.writeReposOf(w, r, f.user.GetLogin())
}

func (f *fakeAPI) listUserRepos(w http.ResponseWriter, r *http.Request) {
	f.writeReposOf(w, r, r.PathValue("owner"))
}

func (f *fakeAPI) writeReposOf(w http.ResponseWriter, r *http.Request, owner string) {
	f.mu.Lock()
	var repos []*gh.Repository
	for _, repo := range f.repos {
		if strings.EqualFold(repo.GetOwner().GetLogin(), owner) {
			repos = append(repos, repo)
		}
	}
	f.mu.Unlock()

	sort.Slice(repos, func(i, j int) bool { return repos[i].GetFullName() < repos[j].GetFullName() })
	f.paginate(w, r, repos)
}

func (f *fakeAPI) getRepo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	repo, ok := f.repos[r.PathValue("owner")+"/"+r.PathValue("repo")]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, repo)
}

func (f *fakeAPI) listForks(w http.ResponseWriter, r *http.Request) {
	full := r.PathValue("owner") + "/" + r.PathValue("repo")

	f.mu.Lock()
	var forks []*gh.Repository
	for _, repo := range f.repos {
		if repo.GetParent().GetFullName() == full {
			forks = append(forks, repo)
		}
	}
	f.mu.Unlock()

	sort.Slice(forks, func(i, j int) bool { return forks[i].GetFullName() < forks[j].GetFullName() })
	f.paginate(w, r, forks)
}

func (f *fakeAPI) createFork(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Organization string `json:"organization"`
	}
	if !decode(w, r, &body) {
		return
	}

	source := r.PathValue("owner") + "/" + r.PathValue("repo")
	f.mu.Lock()
	parent, ok := f.repos[source]
	files := f.seeds[source]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	owner := body.Organization
	if owner == "" {
		owner = f.user.GetLogin()
	}
	f.addRepo(owner, parent.GetName(), files)

	f.mu.Lock()
	fork := f.repos[owner+"/"+parent.GetName()]
	fork.Fork = gh.Ptr(true)
	fork.Parent = parent
	f.mu.Unlock()

	writeJSON(w, http.StatusAccepted, fork)
}

func (f *fakeAPI) createPull(w http.ResponseWriter, r *http.Request) {
	var pr gh.NewPullRequest
	if !decode(w, r, &pr) {
		return
	}

	f.mu.Lock()
	f.pulls = append(f.pulls, pr)
	number := len(f.pulls)
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, &gh.PullRequest{
		Number:  gh.Ptr(number),
		Title:   pr.Title,
		State:   gh.Ptr("open"),
		HTMLURL: gh.Ptr(fmt.Sprintf("https://github.com/%s/%s/pull/%d", r.PathValue("owner"), r.PathValue("repo"), number)),
	})
}

func (f *fakeAPI) listCommits(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	head, err := store.ReadRef(ctx, "refs/heads/"+r.URL.Query().Get("sha"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	var commits []*gh.RepositoryCommit
	for !head.IsZero() {
		c, err := store.LoadCommit(ctx, head)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		commits = append(commits, &gh.RepositoryCommit{
			SHA:     gh.Ptr(c.Hash.String()),
			HTMLURL: gh.Ptr("https://github.com/commit/" + c.Hash.String()),
			Commit: &gh.Commit{
				Message: gh.Ptr(c.Message),
				Author: &gh.CommitAuthor{
					Name:  gh.Ptr(c.Author.Name),
					Email: gh.Ptr(c.Author.Email),
					Date:  &gh.Timestamp{Time: c.Author.Time},
				},
			},
			Author: &gh.User{Login: gh.Ptr(strings.ToLower(c.Author.Name))},
		})
		head = c.Parent
	}
	f.paginate(w, r, commits)
}

func (f *fakeAPI) listBranches(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	var branches []*gh.Branch
	for ref, h := range store.Refs() {
		name, ok := strings.CutPrefix(ref, "refs/heads/")
		if !ok {
			continue
		}
		branches = append(branches, &gh.Branch{
			Name:      gh.Ptr(name),
			Commit:    &gh.RepositoryCommit{SHA: gh.Ptr(h.String())},
			Protected: gh.Ptr(name == "main"),
		})
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].GetName() < branches[j].GetName() })
	f.paginate(w, r, branches)
}

func (f *fakeAPI) getRef(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	ref := "refs/" + r.PathValue("ref")
	h, err := store.ReadRef(r.Context(), ref)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, &gh.Reference{
		Ref:    gh.Ptr(ref),
		Object: &gh.GitObject{Type: gh.Ptr("commit"), SHA: gh.Ptr(h.String())},
	})
}

func (f *fakeAPI) createRef(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	var body struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	}
	if !decode(w, r, &body) {
		return
	}

	if _, err := store.ReadRef(r.Context(), body.Ref); err == nil {
		writeError(w, http.StatusUnprocessableEntity, "Reference already exists")
		return
	}

	h := hash.MustFromHex(body.SHA)
	store.SetRef(body.Ref, h)
	writeJSON(w, http.StatusCreated, &gh.Reference{
		Ref:    gh.Ptr(body.Ref),
		Object: &gh.GitObject{Type: gh.Ptr("commit"), SHA: gh.Ptr(body.SHA)},
	})
}

// updateRef only accepts fast-forwards by one commit, which is all a
// write produces.
func (f *fakeAPI) updateRef(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	var body struct {
		SHA   string `json:"sha"`
		Force bool   `json:"force"`
	}
	if !decode(w, r, &body) {
		return
	}

	f.mu.Lock()
	reject := f.rejectRefUpdates
	f.mu.Unlock()

	ctx := r.Context()
	ref := "refs/" + r.PathValue("ref")
	current, err := store.ReadRef(ctx, ref)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Reference does not exist")
		return
	}

	next := hash.MustFromHex(body.SHA)
	commit, err := store.LoadCommit(ctx, next)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Object does not exist")
		return
	}
	if reject || (!body.Force && !commit.Parent.Is(current)) {
		writeError(w, http.StatusUnprocessableEntity, "Update is not a fast forward")
		return
	}

	store.SetRef(ref, next)
	writeJSON(w, http.StatusOK, &gh.Reference{
		Ref:    gh.Ptr(ref),
		Object: &gh.GitObject{Type: gh.Ptr("commit"), SHA: gh.Ptr(body.SHA)},
	})
}

func (f *fakeAPI) getBlob(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	content, err := store.LoadBlob(r.Context(), hash.MustFromHex(r.PathValue("sha")))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(content)
}

func (f *fakeAPI) createBlob(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	var blob gh.Blob
	if !decode(w, r, &blob) {
		return
	}

	content := []byte(blob.GetContent())
	if blob.GetEncoding() == "base64" {
		var err error
		content, err = base64.StdEncoding.DecodeString(blob.GetContent())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	h, err := store.SaveBlob(r.Context(), content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, &gh.Blob{SHA: gh.Ptr(h.String())})
}

func (f *fakeAPI) getTree(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	tree, err := store.LoadTree(r.Context(), hash.MustFromHex(r.PathValue("sha")))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	entries := make([]*gh.TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entries = append(entries, &gh.TreeEntry{
			Path: gh.Ptr(e.Name),
			Mode: gh.Ptr(fmt.Sprintf("%06o", e.Mode)),
			Type: gh.Ptr(e.Type().Name()),
			SHA:  gh.Ptr(e.Hash.String()),
		})
	}
	writeJSON(w, http.StatusOK, &gh.Tree{SHA: gh.Ptr(tree.Hash.String()), Entries: entries})
}

func (f *fakeAPI) createTree(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	var body struct {
		BaseTree string         `json:"base_tree"`
		Tree     []gh.TreeEntry `json:"tree"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.BaseTree != "" {
		writeError(w, http.StatusBadRequest, "base_tree is not supported by the fake")
		return
	}

	entries := make([]meigit.TreeEntry, 0, len(body.Tree))
	for _, e := range body.Tree {
		mode, err := strconv.ParseUint(e.GetMode(), 8, 32)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		entries = append(entries, meigit.TreeEntry{
			Name: e.GetPath(),
			Mode: uint32(mode),
			Hash: hash.MustFromHex(e.GetSHA()),
		})
	}

	h, err := store.SaveTree(r.Context(), entries)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, &gh.Tree{SHA: gh.Ptr(h.String())})
}

func (f *fakeAPI) getCommit(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	c, err := store.LoadCommit(r.Context(), hash.MustFromHex(r.PathValue("sha")))
	if err != nil {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	out := &gh.Commit{
		SHA:     gh.Ptr(c.Hash.String()),
		Message: gh.Ptr(c.Message),
		Tree:    &gh.Tree{SHA: gh.Ptr(c.Tree.String())},
		Author: &gh.CommitAuthor{
			Name:  gh.Ptr(c.Author.Name),
			Email: gh.Ptr(c.Author.Email),
			Date:  &gh.Timestamp{Time: c.Author.Time},
		},
		Committer: &gh.CommitAuthor{
			Name:  gh.Ptr(c.Committer.Name),
			Email: gh.Ptr(c.Committer.Email),
			Date:  &gh.Timestamp{Time: c.Committer.Time},
		},
	}
	if !c.Parent.IsZero() {
		out.Parents = []*gh.Commit{{SHA: gh.Ptr(c.Parent.String())}}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeAPI) createCommit(w http.ResponseWriter, r *http.Request) {
	store, ok := f.repoStore(w, r)
	if !ok {
		return
	}

	var body struct {
		Message   string           `json:"message"`
		Tree      string           `json:"tree"`
		Parents   []string         `json:"parents"`
		Author    *gh.CommitAuthor `json:"author"`
		Committer *gh.CommitAuthor `json:"committer"`
	}
	if !decode(w, r, &body) {
		return
	}

	commit := &meigit.Commit{
		Tree:    hash.MustFromHex(body.Tree),
		Message: body.Message,
		Author: meigit.Author{
			Name:  body.Author.GetName(),
			Email: body.Author.GetEmail(),
			Time:  timeOf(body.Author),
		},
		Committer: meigit.Committer{
			Name:  body.Committer.GetName(),
			Email: body.Committer.GetEmail(),
			Time:  timeOf(body.Committer),
		},
	}
	if len(body.Parents) > 0 {
		commit.Parent = hash.MustFromHex(body.Parents[0])
	}

	h, err := store.SaveCommit(r.Context(), commit)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, &gh.Commit{SHA: gh.Ptr(h.String())})
}

// paginate answers with one page of items and a Link header to the next.
func (f *fakeAPI) paginate(w http.ResponseWriter, r *http.Request, items any) {
	all, err := json.Marshal(items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(all, &raw); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	query := r.URL.Query()
	perPage, _ := strconv.Atoi(query.Get("per_page"))
	if perPage <= 0 {
		perPage = 30
	}
	f.mu.Lock()
	if f.pageSize > 0 && f.pageSize < perPage {
		perPage = f.pageSize
	}
	f.mu.Unlock()
	page, _ := strconv.Atoi(query.Get("page"))
	if page <= 0 {
		page = 1
	}

	start := min((page-1)*perPage, len(raw))
	end := min(start+perPage, len(raw))
	if end < len(raw) {
		next := *r.URL
		q := next.Query()
		q.Set("page", strconv.Itoa(page+1))
		next.RawQuery = q.Encode()
		w.Header().Set("Link", fmt.Sprintf(`<%s%s>; rel="next"`, f.server.URL, next.RequestURI()))
	}

	pageItems := raw[start:end]
	if pageItems == nil {
		pageItems = []json.RawMessage{}
	}
	writeJSON(w, http.StatusOK, pageItems)
}

func timeOf(a *gh.CommitAuthor) time.Time {
	if a == nil || a.Date == nil {
		return time.Time{}
	}
	return a.Date.Time
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	data, err := io.ReadAll(r.Body)
	if err == nil {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// requireStatus asserts that err carries a go-github response with status.
func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var respErr *gh.ErrorResponse
	require.True(t, errors.As(err, &respErr), "expected a GitHub error response, got %v", err)
	require.Equal(t, status, respErr.Response.StatusCode)
}
