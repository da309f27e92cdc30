package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/cli/cmd"
	"github.com/mei-friend/meigit/cli/internal/config"
	"github.com/mei-friend/meigit/mocks"
	"github.com/mei-friend/meigit/storage/loose"
	"github.com/mei-friend/meigit/storage/memory"
)

const mainRef = "refs/heads/main"

var upstream = meigit.RepoName{Owner: "mei-friend", Name: "scores"}

// isolate points HOME at an empty directory and clears the environment the
// command line reads, so neither the developer's config nor credentials leak
// into a test.
func isolate() {
	home := GinkgoT().TempDir()
	GinkgoT().Setenv("HOME", home)
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, "MEIGIT_") || name == "GITHUB_TOKEN" {
			GinkgoT().Setenv(name, "")
			Expect(os.Unsetenv(name)).To(Succeed())
		}
	}
}

type result struct {
	stdout string
	stderr string
	err    error
}

func run(provider meigit.Provider, stdin string, args ...string) result {
	var stdout, stderr bytes.Buffer
	deps := cmd.Dependencies{
		NewProvider: func(*config.Config) (meigit.Provider, error) {
			if provider == nil {
				return nil, errors.New("no provider in this test")
			}
			return provider, nil
		},
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	err := cmd.Run(context.Background(), deps, args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// lastLine returns the final line of out, where the error report goes after
// any log lines.
func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return lines[len(lines)-1]
}

var _ = Describe("GitHub store", func() {
	var (
		ctx      context.Context
		provider *mocks.FakeProvider
		store    *memory.Store
		seeded   *meigit.Commit
	)

	BeforeEach(func() {
		isolate()
		ctx = context.Background()

		store = memory.New()
		var err error
		seeded, err = store.Seed(ctx, mainRef, map[string][]byte{
			"README.md":    []byte("# Scores\n"),
			"op15/no1.mei": []byte("<mei>one</mei>"),
			"op15/no2.mei": []byte("<mei>two</mei>"),
		})
		Expect(err).NotTo(HaveOccurred())

		provider = &mocks.FakeProvider{}
		provider.AuthenticatedUserReturns(&meigit.User{Login: "clara", Name: "Clara Schumann"}, nil)
		provider.GetRepositoryReturns(&meigit.Repository{Name: upstream, DefaultBranch: "main"}, nil)
		provider.OpenStoreReturns(store, nil)
	})

	Describe("cat", func() {
		It("prints the file content", func() {
			res := run(provider, "", "cat", "-R", "mei-friend/scores", "op15/no1.mei")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(Equal("<mei>one</mei>"))

			Expect(provider.OpenStoreCallCount()).To(Equal(1))
			_, repo := provider.OpenStoreArgsForCall(0)
			Expect(repo).To(Equal(upstream))
		})

		It("reports a missing file", func() {
			res := run(provider, "", "cat", "-R", "mei-friend/scores", "op15/no3.mei")
			Expect(res.err).To(MatchError(meigit.ErrNotFound))
			Expect(lastLine(res.stderr)).To(HavePrefix("Error: "))
		})

		It("reports errors as JSON with --json", func() {
			res := run(provider, "", "cat", "-R", "mei-friend/scores", "--json", "op15/no3.mei")
			Expect(res.err).To(HaveOccurred())

			var report map[string]string
			Expect(json.Unmarshal([]byte(lastLine(res.stderr)), &report)).To(Succeed())
			Expect(report["error"]).To(ContainSubstring("no3.mei"))
		})

		It("needs a repository", func() {
			res := run(provider, "", "cat", "op15/no1.mei")
			Expect(res.err).To(MatchError(ContainSubstring("no repository selected")))
			Expect(provider.AuthenticatedUserCallCount()).To(Equal(0))
		})

		It("takes the repository from the environment", func() {
			GinkgoT().Setenv("MEIGIT_REPO", "mei-friend/scores")
			res := run(provider, "", "cat", "README.md")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(Equal("# Scores\n"))
		})
	})

	Describe("ls", func() {
		It("lists a directory as JSON", func() {
			res := run(provider, "", "ls", "-R", "mei-friend/scores", "--json", "op15")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)

			var out struct {
				Type    string `json:"type"`
				Head    string `json:"head"`
				Entries []struct {
					Path string `json:"path"`
					Type string `json:"type"`
				} `json:"entries"`
			}
			Expect(json.Unmarshal([]byte(res.stdout), &out)).To(Succeed())
			Expect(out.Type).To(Equal("tree"))
			Expect(out.Head).To(Equal(seeded.Hash.String()))
			Expect(out.Entries).To(HaveLen(2))
			Expect(out.Entries[0].Path).To(Equal("op15/no1.mei"))
			Expect(out.Entries[0].Type).To(Equal("blob"))
		})

		It("lists the root by default", func() {
			res := run(provider, "", "ls", "-R", "mei-friend/scores")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(ContainSubstring("README.md"))
			Expect(res.stdout).To(ContainSubstring("op15/"))
		})
	})

	Describe("write", func() {
		It("commits stdin as the new content", func() {
			res := run(provider, "<mei>uno</mei>", "write", "-R", "mei-friend/scores", "op15/no1.mei", "-m", "Fix no. 1")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(ContainSubstring("Committed op15/no1.mei"))

			head := store.Refs()[mainRef]
			Expect(head.Is(seeded.Hash)).To(BeFalse())

			commit, err := store.LoadCommit(ctx, head)
			Expect(err).NotTo(HaveOccurred())
			Expect(commit.Parent.Is(seeded.Hash)).To(BeTrue())
			Expect(commit.Message).To(Equal("Fix no. 1"))
			Expect(commit.Author.Name).To(Equal("Clara Schumann"))
			Expect(commit.Author.Email).To(Equal("clara@users.noreply.github.com"))

			snap, err := meigit.ReadPath(ctx, store, mainRef, "op15/no1.mei")
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Text()).To(Equal("<mei>uno</mei>"))
		})

		It("uses the configured author", func() {
			GinkgoT().Setenv("MEIGIT_AUTHOR_NAME", "Robert Schumann")
			GinkgoT().Setenv("MEIGIT_AUTHOR_EMAIL", "robert@example.com")

			res := run(provider, "<mei/>", "write", "-R", "mei-friend/scores", "README.md", "-m", "Edit")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)

			commit, err := store.LoadCommit(ctx, store.Refs()[mainRef])
			Expect(err).NotTo(HaveOccurred())
			Expect(commit.Author.Name).To(Equal("Robert Schumann"))
			Expect(commit.Author.Email).To(Equal("robert@example.com"))
		})

		It("reads the content from --file and saves it under --new-file", func() {
			file := filepath.Join(GinkgoT().TempDir(), "draft.mei")
			Expect(os.WriteFile(file, []byte("<mei>draft</mei>"), 0o600)).To(Succeed())

			res := run(provider, "", "write", "-R", "mei-friend/scores", "op15/no1.mei",
				"-f", file, "--new-file", "no1-draft.mei", "-m", "Draft", "--json")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)

			var out map[string]string
			Expect(json.Unmarshal([]byte(res.stdout), &out)).To(Succeed())
			Expect(out["path"]).To(Equal("op15/no1-draft.mei"))
			Expect(out["parent"]).To(Equal(seeded.Hash.String()))
			Expect(out["commit"]).To(Equal(store.Refs()[mainRef].String()))

			draft, err := meigit.ReadPath(ctx, store, mainRef, "op15/no1-draft.mei")
			Expect(err).NotTo(HaveOccurred())
			Expect(draft.Text()).To(Equal("<mei>draft</mei>"))

			original, err := meigit.ReadPath(ctx, store, mainRef, "op15/no1.mei")
			Expect(err).NotTo(HaveOccurred())
			Expect(original.Text()).To(Equal("<mei>one</mei>"))
		})

		It("requires a message", func() {
			res := run(provider, "<mei/>", "write", "-R", "mei-friend/scores", "README.md")
			Expect(res.err).To(MatchError(ContainSubstring(`"message" not set`)))
			Expect(store.Refs()[mainRef].Is(seeded.Hash)).To(BeTrue())
		})

		It("rejects a blank message", func() {
			res := run(provider, "<mei/>", "write", "-R", "mei-friend/scores", "README.md", "-m", "  ")
			Expect(res.err).To(MatchError(meigit.ErrEmptyMessage))
			Expect(store.Refs()[mainRef].Is(seeded.Hash)).To(BeTrue())
		})
	})

	Describe("log", func() {
		It("lists the commits of the branch", func() {
			provider.ListCommitsReturns([]meigit.CommitSummary{
				{Hash: seeded.Hash, Message: "Initial commit\n", AuthorName: "Seed", Date: memory.SeedAuthor.Time},
			}, nil)

			res := run(provider, "", "log", "-R", "mei-friend/scores", "-b", "draft", "--page", "2", "--per-page", "10")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(ContainSubstring("Initial commit (Seed)"))

			Expect(provider.ListCommitsCallCount()).To(Equal(1))
			_, repo, branch, page := provider.ListCommitsArgsForCall(0)
			Expect(repo).To(Equal(upstream))
			Expect(branch).To(Equal("draft"))
			Expect(page).To(Equal(meigit.ListPage{Page: 2, PerPage: 10}))
		})
	})

	Describe("fork", func() {
		It("creates a fork in the organization", func() {
			fork := meigit.RepoName{Owner: "schumann-society", Name: "scores"}
			provider.ListForksReturns(nil, nil)
			provider.CreateForkReturns(&meigit.Repository{Name: fork, Fork: true, Parent: &upstream}, nil)
			provider.GetRepositoryStub = func(_ context.Context, repo meigit.RepoName) (*meigit.Repository, error) {
				if repo == fork {
					return &meigit.Repository{Name: fork, DefaultBranch: "main", Fork: true, Parent: &upstream}, nil
				}
				return &meigit.Repository{Name: upstream, DefaultBranch: "main"}, nil
			}

			res := run(provider, "", "fork", "-R", "mei-friend/scores", "--to", "schumann-society")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(ContainSubstring("schumann-society/scores"))
			Expect(res.stdout).To(ContainSubstring("Fork of: mei-friend/scores"))

			Expect(provider.CreateForkCallCount()).To(Equal(1))
			_, repo, org := provider.CreateForkArgsForCall(0)
			Expect(repo).To(Equal(upstream))
			Expect(org).To(Equal("schumann-society"))
		})

		It("reuses an existing fork", func() {
			fork := meigit.RepoName{Owner: "clara", Name: "scores"}
			provider.ListForksReturns([]meigit.Repository{{Name: fork, Fork: true, Parent: &upstream}}, nil)

			res := run(provider, "", "fork", "-R", "mei-friend/scores")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(provider.CreateForkCallCount()).To(Equal(0))
		})
	})

	Describe("pull-request", func() {
		It("proposes the branch of a fork to its parent", func() {
			fork := meigit.RepoName{Owner: "clara", Name: "scores"}
			provider.GetRepositoryReturns(&meigit.Repository{Name: fork, DefaultBranch: "main", Fork: true, Parent: &upstream}, nil)
			provider.CreatePullRequestReturns(&meigit.PullRequest{Number: 12, Title: "Fix slurs", HTMLURL: "https://github.com/mei-friend/scores/pull/12"}, nil)

			res := run(provider, "", "pr", "-R", "clara/scores", "-b", "fix-slurs", "--title", "Fix slurs")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(ContainSubstring("Pull request #12: Fix slurs"))

			_, repo, pr := provider.CreatePullRequestArgsForCall(0)
			Expect(repo).To(Equal(upstream))
			Expect(pr.Head).To(Equal("clara:fix-slurs"))
			Expect(pr.Base).To(Equal("fix-slurs"))
			Expect(pr.Body).To(Equal(meigit.DefaultPullRequestText))
		})

		It("refuses outside a fork", func() {
			res := run(provider, "", "pull-request", "-R", "mei-friend/scores")
			Expect(res.err).To(MatchError(meigit.ErrNotAFork))
			Expect(provider.CreatePullRequestCallCount()).To(Equal(0))
		})
	})

	Describe("listings", func() {
		It("lists branches", func() {
			provider.ListBranchesReturns([]meigit.Branch{{Name: "main", Head: seeded.Hash, Protected: true}}, nil)

			res := run(provider, "", "branches", "-R", "mei-friend/scores", "--json")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(ContainSubstring(`"protected": true`))

			_, repo, page := provider.ListBranchesArgsForCall(0)
			Expect(repo).To(Equal(upstream))
			Expect(page).To(Equal(meigit.ListPage{Page: 1, PerPage: meigit.DefaultPerPage}))
		})

		It("lists the repositories of an owner", func() {
			provider.ListRepositoriesReturns([]meigit.Repository{{Name: upstream}}, nil)

			res := run(provider, "", "repos", "mei-friend")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(ContainSubstring("mei-friend/scores"))

			_, owner, _ := provider.ListRepositoriesArgsForCall(0)
			Expect(owner).To(Equal("mei-friend"))
		})

		It("lists organizations", func() {
			provider.ListOrganizationsReturns([]meigit.Organization{{Login: "mei-friend", Role: "member"}}, nil)

			res := run(provider, "", "orgs")
			Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
			Expect(res.stdout).To(ContainSubstring("mei-friend (member)"))
		})
	})

	It("rejects an unknown store", func() {
		res := run(provider, "", "orgs", "--store", "s3")
		Expect(res.err).To(MatchError(ContainSubstring(`unknown store "s3"`)))
	})
})

var _ = Describe("Loose store", func() {
	var (
		ctx   context.Context
		dir   string
		store *loose.Store
		root  *meigit.Commit
	)

	// seed commits a single file on main.
	seed := func() {
		blob, err := store.SaveBlob(ctx, []byte("<mei>one</mei>"))
		Expect(err).NotTo(HaveOccurred())
		tree, err := store.SaveTree(ctx, []meigit.TreeEntry{{Name: "no1.mei", Mode: meigit.ModeFile, Hash: blob}})
		Expect(err).NotTo(HaveOccurred())
		top, err := store.SaveTree(ctx, []meigit.TreeEntry{{Name: "op15", Mode: meigit.ModeDir, Hash: tree}})
		Expect(err).NotTo(HaveOccurred())

		root = &meigit.Commit{Tree: top, Author: memory.SeedAuthor, Committer: meigit.Committer(memory.SeedAuthor), Message: "Initial commit\n"}
		root.Hash, err = store.SaveCommit(ctx, root)
		Expect(err).NotTo(HaveOccurred())
		Expect(store.UpdateRef(ctx, mainRef, root.Hash, nil)).To(Succeed())
	}

	withStore := func(args ...string) []string {
		return append(args, "--store", "loose", "--store-path", dir)
	}

	BeforeEach(func() {
		isolate()
		ctx = context.Background()
		dir = GinkgoT().TempDir()

		var err error
		store, err = loose.Init(dir, "main")
		Expect(err).NotTo(HaveOccurred())
		seed()
	})

	It("reads a file at HEAD", func() {
		res := run(nil, "", withStore("cat", "op15/no1.mei")...)
		Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
		Expect(res.stdout).To(Equal("<mei>one</mei>"))
	})

	It("commits with the author from ~/.gitconfig", func() {
		home := os.Getenv("HOME")
		Expect(os.WriteFile(filepath.Join(home, ".gitconfig"), []byte("[user]\n\tname = Clara Schumann\n\temail = clara@example.com\n"), 0o600)).To(Succeed())

		res := run(nil, "<mei>uno</mei>", withStore("write", "op15/no1.mei", "-m", "Fix no. 1")...)
		Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)

		head, err := store.ReadRef(ctx, mainRef)
		Expect(err).NotTo(HaveOccurred())
		commit, err := store.LoadCommit(ctx, head)
		Expect(err).NotTo(HaveOccurred())
		Expect(commit.Parent.Is(root.Hash)).To(BeTrue())
		Expect(commit.Author.Name).To(Equal("Clara Schumann"))

		res = run(nil, "", withStore("log", "--json")...)
		Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)

		var out struct {
			Commits []struct {
				Hash    string `json:"hash"`
				Message string `json:"message"`
			} `json:"commits"`
		}
		Expect(json.Unmarshal([]byte(res.stdout), &out)).To(Succeed())
		Expect(out.Commits).To(HaveLen(2))
		Expect(out.Commits[0].Hash).To(Equal(head.String()))
		Expect(out.Commits[1].Hash).To(Equal(root.Hash.String()))

		res = run(nil, "", withStore("log", "--json", "--page", "2", "--per-page", "1")...)
		Expect(res.err).NotTo(HaveOccurred(), "stderr: %s", res.stderr)
		Expect(json.Unmarshal([]byte(res.stdout), &out)).To(Succeed())
		Expect(out.Commits).To(HaveLen(1))
		Expect(out.Commits[0].Message).To(Equal("Initial commit\n"))
	})

	It("refuses to write without an author", func() {
		res := run(nil, "<mei/>", withStore("write", "op15/no1.mei", "-m", "Edit")...)
		Expect(res.err).To(MatchError(ContainSubstring("no commit author")))

		head, err := store.ReadRef(ctx, mainRef)
		Expect(err).NotTo(HaveOccurred())
		Expect(head.Is(root.Hash)).To(BeTrue())
	})

	It("refuses to write to a tag", func() {
		GinkgoT().Setenv("MEIGIT_AUTHOR_NAME", "Clara Schumann")
		GinkgoT().Setenv("MEIGIT_AUTHOR_EMAIL", "clara@example.com")

		res := run(nil, "<mei/>", withStore("write", "op15/no1.mei", "-m", "Edit", "-b", "refs/tags/v1")...)
		Expect(res.err).To(MatchError(ContainSubstring("writes need a branch")))
	})

	It("leaves hosting commands to the github store", func() {
		res := run(nil, "", withStore("fork", "-R", "mei-friend/scores")...)
		Expect(res.err).To(MatchError("fork needs the github store"))
	})
})
