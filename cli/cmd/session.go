package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/cli/internal/client"
	"github.com/mei-friend/meigit/cli/internal/config"
	"github.com/mei-friend/meigit/cli/internal/refparse"
	"github.com/mei-friend/meigit/protocol"
	"github.com/mei-friend/meigit/storage/loose"
)

var errNoRepo = errors.New("no repository selected: pass --repo owner/name or set MEIGIT_REPO")

// login starts a session on the configured provider. A configured author
// replaces the profile identity.
func (a *app) login(ctx context.Context) (meigit.Session, error) {
	provider, err := a.deps.NewProvider(a.cfg)
	if err != nil {
		return meigit.Session{}, err
	}

	opts := []meigit.Option{meigit.WithLogger(a.logger)}
	if author := config.ResolveAuthor(a.cfg); author.IsComplete() {
		opts = append(opts, meigit.WithAuthor(author.Name, author.Email))
	}
	return meigit.Login(ctx, provider, opts...)
}

func (a *app) openRepo(ctx context.Context) (meigit.Session, error) {
	if a.cfg.Repo == "" {
		return meigit.Session{}, errNoRepo
	}

	s, err := a.login(ctx)
	if err != nil {
		return s, err
	}
	return s.OpenRepository(ctx, a.cfg.Repo)
}

// openBranch selects --branch, or the default branch of the repository.
func (a *app) openBranch(ctx context.Context) (meigit.Session, error) {
	s, err := a.openRepo(ctx)
	if err != nil {
		return s, err
	}

	branch := a.branch
	if branch == "" {
		branch = s.DefaultBranch()
	}
	return s.WithBranch(branch)
}

// looseRef resolves --branch for reading, HEAD by default. Tags and full
// ref names are accepted.
func (a *app) looseRef(ctx context.Context, store *loose.Store) (string, error) {
	name := a.branch
	if name == "" {
		name = protocol.HEAD.FullName
	}

	ref, _, err := refparse.ResolveRef(ctx, store, name)
	return ref, err
}

// looseBranchRef names the branch a write goes to.
func (a *app) looseBranchRef(store *loose.Store) (string, error) {
	name := a.branch
	if name == "" {
		head, err := store.HeadBranch()
		if err != nil {
			return "", err
		}
		name = head
	}

	if strings.HasPrefix(name, "refs/") {
		if !strings.HasPrefix(name, "refs/heads/") {
			return "", errors.New("writes need a branch, not " + name)
		}
		return name, nil
	}
	return protocol.BranchRef(name), nil
}

func (a *app) openLoose() (*loose.Store, error) {
	return client.OpenLoose(a.cfg)
}
