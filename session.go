package meigit

import (
	"context"
	"fmt"
	"strings"

	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol"
	"github.com/mei-friend/meigit/protocol/hash"
)

// State is the navigation state of a Session. Each state includes the
// previous ones.
type State int

const (
	StateLoggedOut State = iota
	StateLoggedIn
	StateRepoSelected
	StateBranchSelected
	StatePathSelected
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "LoggedOut"
	case StateLoggedIn:
		return "LoggedIn"
	case StateRepoSelected:
		return "RepoSelected"
	case StateBranchSelected:
		return "BranchSelected"
	case StatePathSelected:
		return "PathSelected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session tracks who is editing which file of which repository. It is an
// immutable value: every transition returns a new Session and leaves the
// receiver as it was, so a caller can keep an older session around (e.g. to
// return to the upstream after a fork).
//
// The zero Session is logged out.
type Session struct {
	provider Provider
	store    ObjectStore
	logger   log.Logger

	user   User
	author Author

	repo          RepoName
	upstream      RepoName
	defaultBranch string
	branch        string
	// path is "" for the root directory, ends with "/" for other
	// directories and names a file otherwise.
	path string
	head hash.Hash
}

// Login starts a session for the account the provider is authenticated as.
// The commit author is the profile's name (or login) and public email,
// falling back to the hosting no-reply address.
func Login(ctx context.Context, provider Provider, opts ...Option) (Session, error) {
	if provider == nil {
		return Session{}, fmt.Errorf("provider cannot be nil")
	}

	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return Session{}, err
		}
	}

	s := Session{provider: provider, logger: o.logger}
	ctx = s.context(ctx)

	user, err := provider.AuthenticatedUser(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("get authenticated user: %w", err)
	}

	s.user = *user
	s.author = Author{Name: user.Name, Email: user.Email}
	if s.author.Name == "" {
		s.author.Name = user.Login
	}
	if s.author.Email == "" {
		s.author.Email = user.Login + "@users.noreply.github.com"
	}
	if o.author != nil {
		s.author = *o.author
	}

	log.FromContext(ctx).Info("Logged in", "login", user.Login, "author", s.author.Name)
	return s, nil
}

// State derives the session state from what is set.
func (s Session) State() State {
	switch {
	case s.provider == nil:
		return StateLoggedOut
	case s.store == nil:
		return StateLoggedIn
	case s.branch == "":
		return StateRepoSelected
	case s.path == "" || strings.HasSuffix(s.path, "/"):
		return StateBranchSelected
	default:
		return StatePathSelected
	}
}

func (s Session) User() User            { return s.user }
func (s Session) Author() Author        { return s.author }
func (s Session) Repo() RepoName        { return s.repo }
func (s Session) Upstream() RepoName    { return s.upstream }
func (s Session) DefaultBranch() string { return s.defaultBranch }
func (s Session) Branch() string        { return s.branch }
func (s Session) Store() ObjectStore    { return s.store }
func (s Session) Provider() Provider    { return s.provider }

// Path returns the selected file, or the selected directory with a trailing
// slash ("" is the root).
func (s Session) Path() string { return s.path }

// Head returns the branch head cached by the last read or write, or nil.
func (s Session) Head() hash.Hash { return s.head }

// IsFork reports whether the repository is owned by someone other than its
// upstream's owner.
func (s Session) IsFork() bool {
	return !s.upstream.IsZero() && !strings.EqualFold(s.repo.Owner, s.upstream.Owner)
}

// Logout returns the logged out session.
func (s Session) Logout() Session {
	return Session{}
}

// OpenRepository selects a repository and opens its object store. When the
// repository is itself a fork, its parent becomes the upstream that Fork and
// PullRequest work against.
func (s Session) OpenRepository(ctx context.Context, name string) (Session, error) {
	if err := s.require("OpenRepository", StateLoggedIn); err != nil {
		return s, err
	}

	repo, err := ParseRepoName(name)
	if err != nil {
		return s, err
	}

	return s.switchRepository(ctx, repo)
}

func (s Session) switchRepository(ctx context.Context, repo RepoName) (Session, error) {
	ctx = s.context(ctx)

	info, err := s.provider.GetRepository(ctx, repo)
	if err != nil {
		return s, fmt.Errorf("get repository %s: %w", repo, err)
	}

	store, err := s.provider.OpenStore(ctx, repo)
	if err != nil {
		return s, fmt.Errorf("open store for %s: %w", repo, err)
	}

	next := s
	next.store = store
	next.repo = info.Name
	next.upstream = info.Name
	if info.Fork && info.Parent != nil {
		next.upstream = *info.Parent
	}
	next.defaultBranch = info.DefaultBranch
	next.head = nil

	log.FromContext(ctx).Debug("Opened repository", "repo", next.repo.String(), "upstream", next.upstream.String())
	return next, nil
}

// WithBranch selects a branch and resets the path to the root directory.
func (s Session) WithBranch(branch string) (Session, error) {
	if err := s.require("WithBranch", StateRepoSelected); err != nil {
		return s, err
	}

	branch = strings.TrimPrefix(strings.TrimSpace(branch), "refs/heads/")
	if _, err := protocol.ParseRefName(protocol.BranchRef(branch)); err != nil {
		return s, err
	}

	next := s
	next.branch = branch
	next.path = ""
	next.head = nil
	return next, nil
}

// WithPath selects a file, or a directory when p is empty or ends with "/".
func (s Session) WithPath(p string) (Session, error) {
	if err := s.require("WithPath", StateBranchSelected); err != nil {
		return s, err
	}

	dir := p == "" || strings.HasSuffix(strings.TrimSpace(p), "/")
	normalized, err := normalizePath(p)
	if err != nil {
		return s, err
	}

	next := s
	next.path = normalized
	if dir && normalized != "" {
		next.path += "/"
	}
	return next, nil
}

// Dir returns the selected directory, or the directory of the selected file,
// without a trailing slash.
func (s Session) Dir() string {
	if strings.HasSuffix(s.path, "/") || s.path == "" {
		return strings.TrimSuffix(s.path, "/")
	}
	return parentDir(s.path)
}

// Enter selects the subdirectory name of the current directory.
func (s Session) Enter(name string) (Session, error) {
	if err := validateFileName(name); err != nil {
		return s, err
	}
	dir := s.Dir()
	if dir != "" {
		dir += "/"
	}
	return s.WithPath(dir + name + "/")
}

// Up selects the directory containing the selected file, or the parent of
// the selected directory. At the root it is a no-op.
func (s Session) Up() (Session, error) {
	if s.State() == StatePathSelected {
		return s.WithPath(s.Dir() + "/")
	}

	dir := s.Dir()
	if dir == "" {
		return s.WithPath("")
	}
	return s.WithPath(parentDir(dir) + "/")
}

func (s Session) require(op string, need State) error {
	if have := s.State(); have < need {
		return &StateError{Op: op, Have: have, Need: need}
	}
	return nil
}

func (s Session) branchRef() string {
	return protocol.BranchRef(s.branch)
}

// context attaches the session logger unless ctx already carries one.
func (s Session) context(ctx context.Context) context.Context {
	if s.logger != nil && !log.HasLogger(ctx) {
		return log.ToContext(ctx, s.logger)
	}
	return ctx
}
