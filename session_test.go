package meigit_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/internal/testhelpers"
	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/mocks"
	"github.com/mei-friend/meigit/storage/memory"
)

var _ = Describe("Session", func() {
	var (
		ctx      context.Context
		logger   *testhelpers.TestLogger
		provider *mocks.FakeProvider
		stores   map[meigit.RepoName]*memory.Store
		upstream = meigit.RepoName{Owner: "music-encoding", Name: "sample-encodings"}
		fork     = meigit.RepoName{Owner: "clara", Name: "sample-encodings"}
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = testhelpers.NewTestLogger()
		provider = &mocks.FakeProvider{}
		stores = map[meigit.RepoName]*memory.Store{}

		upstreamStore := memory.New()
		_, err := upstreamStore.Seed(ctx, "refs/heads/main", map[string][]byte{
			"README.md":                 []byte("# samples\n"),
			"MEI_4.0/Brahms/op1.mei":    []byte("<mei>brahms</mei>"),
			"MEI_4.0/Brahms/op1.mxl":    {0x50, 0x4b, 0x03, 0x04},
			"MEI_4.0/Schumann/op15.mei": []byte("<mei>schumann</mei>"),
		})
		Expect(err).NotTo(HaveOccurred())
		stores[upstream] = upstreamStore

		provider.AuthenticatedUserReturns(&meigit.User{Login: "clara"}, nil)
		provider.GetRepositoryStub = func(_ context.Context, repo meigit.RepoName) (*meigit.Repository, error) {
			if repo == upstream {
				return &meigit.Repository{Name: upstream, DefaultBranch: "main"}, nil
			}
			if _, ok := stores[repo]; ok {
				return &meigit.Repository{Name: repo, DefaultBranch: "main", Fork: true, Parent: &upstream}, nil
			}
			return nil, meigit.NewNotFoundError("repository", repo.String())
		}
		provider.OpenStoreStub = func(_ context.Context, repo meigit.RepoName) (meigit.ObjectStore, error) {
			store, ok := stores[repo]
			if !ok {
				return nil, meigit.NewNotFoundError("repository", repo.String())
			}
			return store, nil
		}
		provider.CreateForkStub = func(_ context.Context, repo meigit.RepoName, organization string) (*meigit.Repository, error) {
			owner := "clara"
			if organization != "" {
				owner = organization
			}
			name := meigit.RepoName{Owner: owner, Name: repo.Name}

			// The fork shares the upstream objects and refs.
			stores[name] = stores[repo]
			return &meigit.Repository{Name: name, Fork: true, Parent: &repo}, nil
		}
		provider.ListCommitsReturns([]meigit.CommitSummary{{Message: "Initial commit"}}, nil)
		provider.CreatePullRequestReturns(&meigit.PullRequest{Number: 7, State: "open"}, nil)
	})

	login := func(opts ...meigit.Option) meigit.Session {
		s, err := meigit.Login(ctx, provider, append([]meigit.Option{meigit.WithLogger(logger)}, opts...)...)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	onBranch := func() meigit.Session {
		s, err := login().OpenRepository(ctx, upstream.String())
		Expect(err).NotTo(HaveOccurred())
		s, err = s.WithBranch("main")
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	Describe("Login", func() {
		It("derives the author from the profile", func() {
			s := login()
			Expect(s.State()).To(Equal(meigit.StateLoggedIn))
			Expect(s.Author().Name).To(Equal("clara"))
			Expect(s.Author().Email).To(Equal("clara@users.noreply.github.com"))
		})

		It("prefers the profile name and email", func() {
			provider.AuthenticatedUserReturns(&meigit.User{Login: "clara", Name: "Clara Schumann", Email: "clara@example.com"}, nil)
			s := login()
			Expect(s.Author().Name).To(Equal("Clara Schumann"))
			Expect(s.Author().Email).To(Equal("clara@example.com"))
		})

		It("lets WithAuthor override the profile", func() {
			s := login(meigit.WithAuthor("Robert", "robert@example.com"))
			Expect(s.Author().Name).To(Equal("Robert"))
		})

		It("fails on rejected credentials", func() {
			provider.AuthenticatedUserReturns(nil, meigit.NewAuthError("get user", 401, errors.New("bad credentials")))
			_, err := meigit.Login(ctx, provider)
			Expect(err).To(MatchError(meigit.ErrUnauthorized))
		})

		It("rejects a nil logger", func() {
			_, err := meigit.Login(ctx, provider, meigit.WithLogger(nil))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("navigation", func() {
		It("moves through the states", func() {
			var zero meigit.Session
			Expect(zero.State()).To(Equal(meigit.StateLoggedOut))

			s := login()
			repo, err := s.OpenRepository(ctx, "music-encoding/sample-encodings")
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.State()).To(Equal(meigit.StateRepoSelected))
			Expect(repo.DefaultBranch()).To(Equal("main"))
			Expect(repo.Upstream()).To(Equal(upstream))
			Expect(repo.IsFork()).To(BeFalse())
			Expect(s.State()).To(Equal(meigit.StateLoggedIn), "the receiver is unchanged")

			branch, err := repo.WithBranch("main")
			Expect(err).NotTo(HaveOccurred())
			Expect(branch.State()).To(Equal(meigit.StateBranchSelected))

			file, err := branch.WithPath("MEI_4.0/Brahms/op1.mei")
			Expect(err).NotTo(HaveOccurred())
			Expect(file.State()).To(Equal(meigit.StatePathSelected))
			Expect(file.Dir()).To(Equal("MEI_4.0/Brahms"))

			dir, err := file.Up()
			Expect(err).NotTo(HaveOccurred())
			Expect(dir.Path()).To(Equal("MEI_4.0/Brahms/"))
			Expect(dir.State()).To(Equal(meigit.StateBranchSelected))

			dir, err = dir.Up()
			Expect(err).NotTo(HaveOccurred())
			Expect(dir.Path()).To(Equal("MEI_4.0/"))

			dir, err = dir.Enter("Schumann")
			Expect(err).NotTo(HaveOccurred())
			Expect(dir.Path()).To(Equal("MEI_4.0/Schumann/"))

			other, err := file.WithBranch("develop")
			Expect(err).NotTo(HaveOccurred())
			Expect(other.Path()).To(BeEmpty(), "switching branch resets the path")

			Expect(file.Logout().State()).To(Equal(meigit.StateLoggedOut))
		})

		It("refuses operations in the wrong state", func() {
			s := login()

			_, _, err := s.ReadRepo(ctx)
			Expect(err).To(MatchError(meigit.ErrInvalidState))

			_, err = s.WithBranch("main")
			Expect(err).To(MatchError(meigit.ErrInvalidState))

			_, _, err = onBranch().WriteRepo(ctx, []byte("x"), "msg", "")
			Expect(err).To(MatchError(meigit.ErrInvalidState))

			_, err = meigit.Session{}.OpenRepository(ctx, "a/b")
			Expect(err).To(MatchError(meigit.ErrInvalidState))
		})

		It("rejects bad names", func() {
			_, err := login().OpenRepository(ctx, "no-slash")
			Expect(err).To(HaveOccurred())

			_, err = onBranch().WithPath("../etc/passwd")
			Expect(err).To(MatchError(meigit.ErrMalformedPath))

			_, err = onBranch().WithBranch("bad..branch")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ReadRepo", func() {
		It("lists the root directory", func() {
			s, snap, err := onBranch().ReadRepo(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.IsDir()).To(BeTrue())
			Expect(snap.Children).To(HaveLen(2))
			Expect(snap.Children[0].Name).To(Equal("MEI_4.0"))
			Expect(snap.Children[1].Name).To(Equal("README.md"))
			Expect(snap.History).To(HaveLen(1))
			Expect(s.Head()).To(Equal(snap.Head))

			_, _, branch, _ := provider.ListCommitsArgsForCall(0)
			Expect(branch).To(Equal("main"))
		})

		It("loads a text file", func() {
			s, err := onBranch().WithPath("MEI_4.0/Brahms/op1.mei")
			Expect(err).NotTo(HaveOccurred())

			_, snap, err := s.ReadRepo(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Binary).To(BeFalse())
			Expect(snap.Text()).To(Equal("<mei>brahms</mei>"))
			Expect(snap.Entry.Path).To(Equal("MEI_4.0/Brahms/op1.mei"))
		})

		It("loads a compressed file as binary", func() {
			s, err := onBranch().WithPath("MEI_4.0/Brahms/op1.mxl")
			Expect(err).NotTo(HaveOccurred())

			_, snap, err := s.ReadRepo(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Binary).To(BeTrue())
			Expect(snap.Content).To(Equal([]byte{0x50, 0x4b, 0x03, 0x04}))
			Expect(snap.Text()).To(BeEmpty())
		})

		It("treats a selected directory without slash as a directory", func() {
			s, err := onBranch().WithPath("MEI_4.0")
			Expect(err).NotTo(HaveOccurred())

			next, snap, err := s.ReadRepo(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.IsDir()).To(BeTrue())
			Expect(snap.Children).To(HaveLen(2))
			Expect(snap.Children[0].Path).To(Equal("MEI_4.0/Brahms"))
			Expect(next.Path()).To(Equal("MEI_4.0/"))
		})

		It("reports a missing path", func() {
			s, err := onBranch().WithPath("nope.mei")
			Expect(err).NotTo(HaveOccurred())

			_, _, err = s.ReadRepo(ctx)
			Expect(err).To(MatchError(meigit.ErrNotFound))
		})

		It("fails when the history cannot be fetched", func() {
			provider.ListCommitsReturns(nil, errors.New("boom"))
			_, _, err := onBranch().ReadRepo(ctx)
			Expect(err).To(MatchError(ContainSubstring("boom")))
		})
	})

	Describe("WriteRepo", func() {
		It("commits the selected file and caches the head", func() {
			s, err := onBranch().WithPath("MEI_4.0/Brahms/op1.mei")
			Expect(err).NotTo(HaveOccurred())

			next, result, err := s.WriteRepo(ctx, []byte("<mei>edited</mei>"), "Edit op1", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(next.Head()).To(Equal(result.Head))
			Expect(result.Commit.Author.Name).To(Equal("clara"))
			Expect(logger.Messages("INFO")).To(ContainElement("Committed file"))

			_, snap, err := next.ReadRepo(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Text()).To(Equal("<mei>edited</mei>"))
			Expect(snap.Head).To(Equal(result.Commit.Hash))
		})

		It("selects the new file", func() {
			s, err := onBranch().WithPath("MEI_4.0/Brahms/op1.mei")
			Expect(err).NotTo(HaveOccurred())

			next, _, err := s.WriteRepo(ctx, []byte("<mei/>"), "Copy op1", "op1-copy.mei")
			Expect(err).NotTo(HaveOccurred())
			Expect(next.Path()).To(Equal("MEI_4.0/Brahms/op1-copy.mei"))

			_, snap, err := next.ReadRepo(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Text()).To(Equal("<mei/>"))
		})

		It("rejects an empty message without touching the branch", func() {
			s, err := onBranch().WithPath("README.md")
			Expect(err).NotTo(HaveOccurred())
			before := stores[upstream].Counts()

			_, _, err = s.WriteRepo(ctx, []byte("x"), "  ", "")
			Expect(err).To(MatchError(meigit.ErrEmptyMessage))
			Expect(stores[upstream].Counts()).To(Equal(before))
		})
	})

	Describe("Fork and PullRequest", func() {
		It("refuses a pull request outside a fork", func() {
			_, err := onBranch().PullRequest(ctx, meigit.PullRequestOptions{})
			Expect(err).To(MatchError(meigit.ErrNotAFork))
			Expect(provider.CreatePullRequestCallCount()).To(BeZero())
			Expect(logger.Messages("WARN")).To(HaveLen(1))
		})

		It("forks, keeps the selection and opens a pull request upstream", func() {
			s, err := onBranch().WithPath("README.md")
			Expect(err).NotTo(HaveOccurred())

			forked, err := s.Fork(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(forked.Repo()).To(Equal(fork))
			Expect(forked.Upstream()).To(Equal(upstream))
			Expect(forked.IsFork()).To(BeTrue())
			Expect(forked.Branch()).To(Equal("main"))
			Expect(forked.Path()).To(Equal("README.md"))

			_, source, org := provider.CreateForkArgsForCall(0)
			Expect(source).To(Equal(upstream))
			Expect(org).To(BeEmpty())

			pr, err := forked.PullRequest(ctx, meigit.PullRequestOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(pr.Number).To(Equal(7))

			_, target, payload := provider.CreatePullRequestArgsForCall(0)
			Expect(target).To(Equal(upstream))
			Expect(payload.Head).To(Equal("clara:main"))
			Expect(payload.Base).To(Equal("main"))
			Expect(payload.Title).To(Equal(meigit.DefaultPullRequestText))
		})

		It("reuses an existing fork", func() {
			stores[fork] = stores[upstream]
			provider.ListForksReturns([]meigit.Repository{
				{Name: meigit.RepoName{Owner: "someone", Name: "sample-encodings"}},
				{Name: meigit.RepoName{Owner: "Clara", Name: "sample-encodings"}},
			}, nil)
			provider.GetRepositoryStub = func(_ context.Context, repo meigit.RepoName) (*meigit.Repository, error) {
				if strings.EqualFold(repo.Owner, "clara") {
					return &meigit.Repository{Name: fork, Fork: true, Parent: &upstream, DefaultBranch: "main"}, nil
				}
				return &meigit.Repository{Name: upstream, DefaultBranch: "main"}, nil
			}
			provider.OpenStoreReturns(stores[upstream], nil)

			forked, err := onBranch().Fork(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(forked.Repo()).To(Equal(fork))
			Expect(provider.CreateForkCallCount()).To(BeZero())
		})

		It("forks into an organization", func() {
			_, err := onBranch().Fork(ctx, "mei-friend")
			Expect(err).NotTo(HaveOccurred())

			_, _, org := provider.CreateForkArgsForCall(0)
			Expect(org).To(Equal("mei-friend"))
		})
	})

	Describe("listings", func() {
		It("delegates to the provider with normalized pages", func() {
			provider.ListBranchesReturns([]meigit.Branch{{Name: "main"}}, nil)
			s := onBranch()

			branches, err := s.Branches(ctx, meigit.ListPage{})
			Expect(err).NotTo(HaveOccurred())
			Expect(branches).To(HaveLen(1))

			_, repo, page := provider.ListBranchesArgsForCall(0)
			Expect(repo).To(Equal(upstream))
			Expect(page).To(Equal(meigit.ListPage{PerPage: 30, Page: 1}))

			_, err = s.CommitLog(ctx, meigit.ListPage{Page: 2})
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Repositories(ctx, "", meigit.ListPage{PerPage: 500})
			Expect(err).NotTo(HaveOccurred())
			_, owner, page := provider.ListRepositoriesArgsForCall(0)
			Expect(owner).To(BeEmpty())
			Expect(page.PerPage).To(Equal(100))

			_, err = s.Organizations(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(provider.ListOrganizationsCallCount()).To(Equal(1))
		})
	})

	It("uses a logger from the context over the session logger", func() {
		fake := &mocks.FakeLogger{}
		s, err := onBranch().WithPath("README.md")
		Expect(err).NotTo(HaveOccurred())

		_, _, err = s.WriteRepo(log.ToContext(ctx, fake), []byte("x"), "msg", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(fake.InfoCallCount()).To(Equal(1))
		Expect(logger.Messages("INFO")).NotTo(ContainElement("Committed file"))
	})
})
