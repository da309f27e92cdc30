package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/storage/loose"
)

func pageFlags(cmd *cobra.Command, page *meigit.ListPage) {
	cmd.Flags().IntVar(&page.Page, "page", 1, "Page of the listing, starting at 1")
	cmd.Flags().IntVar(&page.PerPage, "per-page", meigit.DefaultPerPage, "Items per page")
}

func (a *app) logCmd() *cobra.Command {
	var page meigit.ListPage

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the commit history of the branch",
		Long: `Show the commits of the branch, newest first, one page at a time.

Examples:
  meigit log -R mei-friend/scores
  meigit log -R mei-friend/scores -b draft --page 2 --per-page 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var commits []meigit.CommitSummary
			if a.isLoose() {
				store, err := a.openLoose()
				if err != nil {
					return err
				}
				ref, err := a.looseRef(ctx, store)
				if err != nil {
					return err
				}
				if commits, err = firstParentLog(ctx, store, ref, page.Normalize()); err != nil {
					return err
				}
			} else {
				s, err := a.openBranch(ctx)
				if err != nil {
					return err
				}
				if commits, err = s.CommitLog(ctx, page); err != nil {
					return err
				}
			}

			return a.formatter.FormatCommits(commits)
		},
	}

	pageFlags(cmd, &page)
	return cmd
}

// firstParentLog follows first parents from the head of ref and returns one
// page of the history.
func firstParentLog(ctx context.Context, store *loose.Store, ref string, page meigit.ListPage) ([]meigit.CommitSummary, error) {
	h, err := store.ReadRef(ctx, ref)
	if err != nil {
		return nil, err
	}

	skip := (page.Page - 1) * page.PerPage
	commits := make([]meigit.CommitSummary, 0, page.PerPage)
	for !h.IsZero() && len(commits) < page.PerPage {
		commit, err := store.LoadCommit(ctx, h)
		if err != nil {
			return nil, err
		}

		if skip > 0 {
			skip--
		} else {
			commits = append(commits, meigit.CommitSummary{
				Hash:        commit.Hash,
				Message:     commit.Message,
				AuthorName:  commit.Author.Name,
				AuthorEmail: commit.Author.Email,
				Date:        commit.Author.Time,
			})
		}
		h = commit.Parent
	}
	return commits, nil
}
