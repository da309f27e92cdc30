package cmd

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/cli/internal/config"
	"github.com/mei-friend/meigit/protocol"
)

func (a *app) catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file of the branch",
		Long: `Print the content of a file at the head of the branch. Binary files,
recognized by their extension, are summarized instead. A directory is
listed like ls does.

Examples:
  # Print a score from the default branch
  meigit cat -R mei-friend/scores op15/no1.mei

  # Print it from another branch as JSON
  meigit cat -R mei-friend/scores -b draft op15/no1.mei --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.read(cmd, args[0])
		},
	}
}

func (a *app) lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory of the branch",
		Long: `List the entries of a directory at the head of the branch, the root
directory by default.

Examples:
  meigit ls -R mei-friend/scores
  meigit ls -R mei-friend/scores op15`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = strings.TrimSuffix(args[0], "/") + "/"
			}
			return a.read(cmd, dir)
		},
	}
}

func (a *app) read(cmd *cobra.Command, p string) error {
	ctx := cmd.Context()

	var snapshot *meigit.Snapshot
	if a.isLoose() {
		store, err := a.openLoose()
		if err != nil {
			return err
		}
		ref, err := a.looseRef(ctx, store)
		if err != nil {
			return err
		}
		snapshot, err = meigit.ReadPath(ctx, store, ref, p)
		if err != nil {
			return err
		}
	} else {
		s, err := a.openBranch(ctx)
		if err != nil {
			return err
		}
		if s, err = s.WithPath(p); err != nil {
			return err
		}
		if _, snapshot, err = s.ReadRepo(ctx); err != nil {
			return err
		}
	}

	return a.formatter.FormatSnapshot(snapshot)
}

func (a *app) writeCmd() *cobra.Command {
	var (
		message string
		file    string
		newFile string
	)

	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Commit new content for a file",
		Long: `Replace the content of a file and commit the change to the branch.
The content is read from --file, or from stdin. The rest of the tree is
left as it is. With --new-file the content is stored under that name next
to <path> instead, and <path> keeps its content.

The write fails when the branch moved since the command read it; nothing
is overwritten then.

Examples:
  # Commit a local edit
  meigit write -R clara/scores op15/no1.mei -f no1.mei -m "Fix slur in measure 12"

  # Save a copy next to the original
  cat no1.mei | meigit write -R clara/scores op15/no1.mei --new-file no1-draft.mei -m "Draft"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return a.write(cmd, args[0], content, message, newFile)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the content from this file instead of stdin")
	cmd.Flags().StringVar(&newFile, "new-file", "", "Store the content under this name next to <path>")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func readContent(stdin io.Reader, file string) ([]byte, error) {
	if file != "" && file != "-" {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read content: %w", err)
		}
		return content, nil
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read content from stdin: %w", err)
	}
	return content, nil
}

func (a *app) write(cmd *cobra.Command, p string, content []byte, message, newFile string) error {
	ctx := cmd.Context()

	target := p
	if newFile != "" {
		target = newFile
		if dir := path.Dir(strings.Trim(p, "/")); dir != "." {
			target = dir + "/" + newFile
		}
	}

	var result *meigit.WriteResult
	if a.isLoose() {
		store, err := a.openLoose()
		if err != nil {
			return err
		}
		ref, err := a.looseBranchRef(store)
		if err != nil {
			return err
		}
		author := config.ResolveAuthor(a.cfg)
		if !author.IsComplete() {
			return fmt.Errorf("no commit author: set author.name and author.email, or user.name and user.email in ~/.gitconfig")
		}
		result, err = meigit.WriteFile(ctx, store, meigit.WriteRequest{
			Ref:     ref,
			Path:    p,
			Content: content,
			Message: message,
			NewFile: newFile,
			Author:  meigit.Author{Name: author.Name, Email: author.Email},
		})
		if err != nil {
			return err
		}
		a.logger.Info("Committed", "ref", ref, "path", target, "commit", result.Commit.Hash.String())
	} else {
		s, err := a.openBranch(ctx)
		if err != nil {
			return err
		}
		if s, err = s.WithPath(p); err != nil {
			return err
		}
		if _, result, err = s.WriteRepo(ctx, content, message, newFile); err != nil {
			return err
		}
		a.logger.Info("Committed", "repo", s.Repo().String(), "ref", protocol.BranchRef(s.Branch()), "path", target, "commit", result.Commit.Hash.String())
	}

	return a.formatter.FormatWrite(target, result)
}
