package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mei-friend/meigit"
)

func (a *app) forkCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "fork",
		Short: "Fork the repository, or find your existing fork",
		Long: `Fork the repository into your account, or into the organization given
with --to. An existing fork of the same owner is reused. When the
repository is itself a fork, its parent is forked instead.

Examples:
  meigit fork -R mei-friend/scores
  meigit fork -R mei-friend/scores --to schumann-society`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireGitHub("fork"); err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.openRepo(ctx)
			if err != nil {
				return err
			}
			if s, err = s.Fork(ctx, to); err != nil {
				return err
			}

			upstream := s.Upstream()
			return a.formatter.FormatRepository(meigit.Repository{
				Name:          s.Repo(),
				DefaultBranch: s.DefaultBranch(),
				Fork:          true,
				Parent:        &upstream,
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Organization to fork into (default: your account)")
	return cmd
}

func (a *app) pullRequestCmd() *cobra.Command {
	var opts meigit.PullRequestOptions

	cmd := &cobra.Command{
		Use:     "pull-request",
		Aliases: []string{"pr"},
		Short:   "Propose the branch of a fork to its parent",
		Long: `Open a pull request from the branch of the fork given with --repo to the
repository it was forked from.

Examples:
  meigit pull-request -R clara/scores -b fix-slurs --title "Fix slurs in op. 15"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireGitHub("pull-request"); err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.openBranch(ctx)
			if err != nil {
				return err
			}

			pr, err := s.PullRequest(ctx, opts)
			if err != nil {
				return err
			}
			return a.formatter.FormatPullRequest(pr)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Title of the pull request")
	cmd.Flags().StringVar(&opts.Body, "body", "", "Description of the pull request")
	cmd.Flags().StringVar(&opts.Base, "base", "", "Upstream branch to merge into (default: the same branch)")
	return cmd
}

func (a *app) branchesCmd() *cobra.Command {
	var page meigit.ListPage

	cmd := &cobra.Command{
		Use:   "branches",
		Short: "List the branches of the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireGitHub("branches"); err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.openRepo(ctx)
			if err != nil {
				return err
			}

			branches, err := s.Branches(ctx, page)
			if err != nil {
				return err
			}
			return a.formatter.FormatBranches(branches)
		},
	}

	pageFlags(cmd, &page)
	return cmd
}

func (a *app) reposCmd() *cobra.Command {
	var page meigit.ListPage

	cmd := &cobra.Command{
		Use:   "repos [owner]",
		Short: "List repositories, most recently updated first",
		Long: `List the repositories of a user or organization, or your own when no
owner is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireGitHub("repos"); err != nil {
				return err
			}

			owner := ""
			if len(args) > 0 {
				owner = args[0]
			}

			ctx := cmd.Context()
			s, err := a.login(ctx)
			if err != nil {
				return err
			}

			repos, err := s.Repositories(ctx, owner, page)
			if err != nil {
				return err
			}
			return a.formatter.FormatRepositories(repos)
		},
	}

	pageFlags(cmd, &page)
	return cmd
}

func (a *app) orgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orgs",
		Short: "List the organizations you belong to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireGitHub("orgs"); err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.login(ctx)
			if err != nil {
				return err
			}

			orgs, err := s.Organizations(ctx)
			if err != nil {
				return err
			}
			return a.formatter.FormatOrganizations(orgs)
		},
	}
}
