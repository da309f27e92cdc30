package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mei-friend/meigit"
)

// JSONFormatter outputs in JSON format
type JSONFormatter struct {
	encoder *json.Encoder
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONFormatter{
		encoder: enc,
	}
}

type entryOutput struct {
	Type string `json:"type"`
	Mode string `json:"mode"`
	Hash string `json:"hash"`
	Path string `json:"path"`
	Name string `json:"name"`
}

type snapshotOutput struct {
	Path    string        `json:"path"`
	Head    string        `json:"head"`
	Type    string        `json:"type"`
	Hash    string        `json:"hash,omitempty"`
	Size    int           `json:"size,omitempty"`
	Binary  bool          `json:"binary,omitempty"`
	Content *string       `json:"content,omitempty"`
	Entries []entryOutput `json:"entries,omitempty"`
}

// FormatSnapshot outputs file content or a directory listing in JSON
// format. Binary content is left out.
func (f *JSONFormatter) FormatSnapshot(snapshot *meigit.Snapshot) error {
	out := snapshotOutput{
		Path: snapshot.Path,
		Head: snapshot.Head.String(),
		Type: "tree",
	}
	if snapshot.Entry != nil {
		out.Hash = snapshot.Entry.Hash.String()
	}

	if !snapshot.IsDir() {
		out.Type = "blob"
		out.Size = len(snapshot.Content)
		out.Binary = snapshot.Binary
		if !snapshot.Binary {
			content := string(snapshot.Content)
			out.Content = &content
		}
		return f.encoder.Encode(out)
	}

	out.Entries = make([]entryOutput, len(snapshot.Children))
	for i, child := range snapshot.Children {
		out.Entries[i] = entryOutput{
			Type: child.Type().Name(),
			Mode: fmt.Sprintf("%06o", child.Mode),
			Hash: child.Hash.String(),
			Path: child.Path,
			Name: child.Name,
		}
	}
	return f.encoder.Encode(out)
}

type writeOutput struct {
	Path        string `json:"path"`
	Commit      string `json:"commit"`
	Parent      string `json:"parent"`
	Tree        string `json:"tree"`
	Head        string `json:"head"`
	OperationID string `json:"operation_id"`
}

func (f *JSONFormatter) FormatWrite(path string, result *meigit.WriteResult) error {
	return f.encoder.Encode(writeOutput{
		Path:        path,
		Commit:      result.Commit.Hash.String(),
		Parent:      result.Parent.String(),
		Tree:        result.Tree.String(),
		Head:        result.Head.String(),
		OperationID: result.OperationID,
	})
}

type commitOutput struct {
	Hash        string    `json:"hash"`
	Message     string    `json:"message"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	AuthorLogin string    `json:"author_login,omitempty"`
	Date        time.Time `json:"date"`
	URL         string    `json:"url,omitempty"`
}

func (f *JSONFormatter) FormatCommits(commits []meigit.CommitSummary) error {
	out := make([]commitOutput, len(commits))
	for i, c := range commits {
		out[i] = commitOutput{
			Hash:        c.Hash.String(),
			Message:     c.Message,
			AuthorName:  c.AuthorName,
			AuthorEmail: c.AuthorEmail,
			AuthorLogin: c.AuthorLogin,
			Date:        c.Date,
			URL:         c.HTMLURL,
		}
	}
	return f.encoder.Encode(map[string]any{"commits": out})
}

type repositoryOutput struct {
	Name          string `json:"name"`
	DefaultBranch string `json:"default_branch,omitempty"`
	Private       bool   `json:"private"`
	Fork          bool   `json:"fork"`
	Parent        string `json:"parent,omitempty"`
	URL           string `json:"url,omitempty"`
}

func toRepositoryOutput(r meigit.Repository) repositoryOutput {
	out := repositoryOutput{
		Name:          r.Name.String(),
		DefaultBranch: r.DefaultBranch,
		Private:       r.Private,
		Fork:          r.Fork,
		URL:           r.HTMLURL,
	}
	if r.Parent != nil {
		out.Parent = r.Parent.String()
	}
	return out
}

func (f *JSONFormatter) FormatRepository(repo meigit.Repository) error {
	return f.encoder.Encode(toRepositoryOutput(repo))
}

func (f *JSONFormatter) FormatPullRequest(pr *meigit.PullRequest) error {
	return f.encoder.Encode(map[string]any{
		"number": pr.Number,
		"title":  pr.Title,
		"state":  pr.State,
		"url":    pr.HTMLURL,
	})
}

type branchOutput struct {
	Name      string `json:"name"`
	Head      string `json:"head"`
	Protected bool   `json:"protected"`
}

func (f *JSONFormatter) FormatBranches(branches []meigit.Branch) error {
	out := make([]branchOutput, len(branches))
	for i, b := range branches {
		out[i] = branchOutput{Name: b.Name, Head: b.Head.String(), Protected: b.Protected}
	}
	return f.encoder.Encode(map[string]any{"branches": out})
}

func (f *JSONFormatter) FormatRepositories(repos []meigit.Repository) error {
	out := make([]repositoryOutput, len(repos))
	for i, r := range repos {
		out[i] = toRepositoryOutput(r)
	}
	return f.encoder.Encode(map[string]any{"repositories": out})
}

func (f *JSONFormatter) FormatOrganizations(orgs []meigit.Organization) error {
	type orgOutput struct {
		Login string `json:"login"`
		Role  string `json:"role,omitempty"`
	}
	out := make([]orgOutput, len(orgs))
	for i, o := range orgs {
		out[i] = orgOutput{Login: o.Login, Role: o.Role}
	}
	return f.encoder.Encode(map[string]any{"organizations": out})
}
