package output

import (
	"io"

	"github.com/mei-friend/meigit"
)

// Formatter defines the interface for different output formats
type Formatter interface {
	// FormatSnapshot outputs a file's content or a directory listing
	FormatSnapshot(snapshot *meigit.Snapshot) error

	// FormatWrite outputs the result of a committed write
	FormatWrite(path string, result *meigit.WriteResult) error

	// FormatCommits outputs a branch history, newest first
	FormatCommits(commits []meigit.CommitSummary) error

	// FormatRepository outputs one repository, e.g. a fork
	FormatRepository(repo meigit.Repository) error

	// FormatPullRequest outputs a created pull request
	FormatPullRequest(pr *meigit.PullRequest) error

	FormatBranches(branches []meigit.Branch) error
	FormatRepositories(repos []meigit.Repository) error
	FormatOrganizations(orgs []meigit.Organization) error
}

// Get returns the appropriate formatter based on format type
func Get(format string, w io.Writer) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter(w)
	default:
		return NewHumanFormatter(w)
	}
}
