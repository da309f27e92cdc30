package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/protocol/hash"
)

// HumanFormatter outputs in human-readable format with colors
type HumanFormatter struct {
	w       io.Writer
	success *color.Color
	info    *color.Color
	dim     *color.Color
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter(w io.Writer) *HumanFormatter {
	return &HumanFormatter{
		w:       w,
		success: color.New(color.FgGreen),
		info:    color.New(color.FgCyan),
		dim:     color.New(color.Faint),
	}
}

// FormatSnapshot writes file content raw, or lists a directory.
func (f *HumanFormatter) FormatSnapshot(snapshot *meigit.Snapshot) error {
	if !snapshot.IsDir() {
		if snapshot.Binary {
			_, err := fmt.Fprintf(f.w, "%s\n", f.dim.Sprintf("binary file %s, %d bytes", snapshot.Path, len(snapshot.Content)))
			return err
		}
		_, err := f.w.Write(snapshot.Content)
		return err
	}

	for _, child := range snapshot.Children {
		name := child.Name
		if child.Mode == meigit.ModeDir {
			name = f.info.Sprint(name + "/")
		}
		// Format: [mode] [type] [hash]  [name]
		if _, err := fmt.Fprintf(f.w, "%s %s %s  %s\n",
			f.dim.Sprintf("%06o", child.Mode),
			child.Type().Name(),
			f.dim.Sprint(short(child.Hash)),
			name); err != nil {
			return err
		}
	}
	return nil
}

// FormatWrite outputs write results in human-readable format
func (f *HumanFormatter) FormatWrite(path string, result *meigit.WriteResult) error {
	if _, err := f.success.Fprintf(f.w, "✓ Committed %s\n", path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(f.w, "  Commit: %s\n  Parent: %s\n", short(result.Commit.Hash), short(result.Parent))
	if err != nil {
		return err
	}
	if !result.Head.Is(result.Commit.Hash) {
		_, err = fmt.Fprintf(f.w, "  Branch has since moved to %s\n", short(result.Head))
	}
	return err
}

func (f *HumanFormatter) FormatCommits(commits []meigit.CommitSummary) error {
	for _, c := range commits {
		subject, _, _ := strings.Cut(c.Message, "\n")
		author := c.AuthorName
		if c.AuthorLogin != "" {
			author = c.AuthorLogin
		}
		if _, err := fmt.Fprintf(f.w, "%s %s %s %s\n",
			f.info.Sprint(short(c.Hash)),
			f.dim.Sprint(c.Date.Format("2006-01-02")),
			subject,
			f.dim.Sprintf("(%s)", author)); err != nil {
			return err
		}
	}
	return nil
}

func (f *HumanFormatter) FormatRepository(repo meigit.Repository) error {
	if _, err := f.success.Fprintf(f.w, "✓ %s\n", repo.Name); err != nil {
		return err
	}
	if repo.Parent != nil {
		if _, err := fmt.Fprintf(f.w, "  Fork of: %s\n", repo.Parent); err != nil {
			return err
		}
	}
	if repo.HTMLURL != "" {
		if _, err := fmt.Fprintf(f.w, "  URL: %s\n", repo.HTMLURL); err != nil {
			return err
		}
	}
	return nil
}

func (f *HumanFormatter) FormatPullRequest(pr *meigit.PullRequest) error {
	_, err := f.success.Fprintf(f.w, "✓ Pull request #%d: %s\n", pr.Number, pr.Title)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(f.w, "  %s\n", pr.HTMLURL)
	return err
}

func (f *HumanFormatter) FormatBranches(branches []meigit.Branch) error {
	for _, b := range branches {
		name := b.Name
		if b.Protected {
			name += f.dim.Sprint(" (protected)")
		}
		if _, err := fmt.Fprintf(f.w, "%s\t%s\n", f.dim.Sprint(short(b.Head)), name); err != nil {
			return err
		}
	}
	return nil
}

func (f *HumanFormatter) FormatRepositories(repos []meigit.Repository) error {
	for _, r := range repos {
		var tags []string
		if r.Private {
			tags = append(tags, "private")
		}
		if r.Fork {
			tags = append(tags, "fork")
		}
		suffix := ""
		if len(tags) > 0 {
			suffix = " " + f.dim.Sprintf("(%s)", strings.Join(tags, ", "))
		}
		if _, err := fmt.Fprintf(f.w, "%s%s\n", r.Name, suffix); err != nil {
			return err
		}
	}
	return nil
}

func (f *HumanFormatter) FormatOrganizations(orgs []meigit.Organization) error {
	for _, o := range orgs {
		if _, err := fmt.Fprintf(f.w, "%s %s\n", o.Login, f.dim.Sprintf("(%s)", o.Role)); err != nil {
			return err
		}
	}
	return nil
}

func short(h hash.Hash) string {
	if h.IsZero() {
		return "-"
	}
	return h.Short()
}
