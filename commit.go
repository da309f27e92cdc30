package meigit

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
)

// Author represents the person who created the changes in the commit.
type Author struct {
	// Name is the full name of the author (e.g., "Clara Schumann")
	Name string
	// Email is the email address of the author
	Email string
	// Time is when the changes were made. Zero means "now" when writing.
	Time time.Time
}

// Committer represents the person who created the commit object.
// For edits made through a Session it is the same identity as the author.
type Committer struct {
	Name  string
	Email string
	Time  time.Time
}

// Commit represents a git commit object.
type Commit struct {
	// Hash is the SHA-1 hash of the commit object
	Hash hash.Hash
	// Tree is the hash of the root tree object
	Tree hash.Hash
	// Parent is the hash of the first parent commit; nil for a root commit.
	Parent hash.Hash
	// Author is the person who created the changes in the commit
	Author Author
	// Committer is the person who created the commit object
	Committer Committer
	// Message is the commit message
	Message string
}

// Time returns the timestamp when the commit object was created.
func (c *Commit) Time() time.Time {
	return c.Committer.Time
}

// EncodeCommit returns the canonical git encoding of c. Hash is ignored.
func EncodeCommit(c *Commit) ([]byte, error) {
	if c.Tree.IsZero() {
		return nil, fmt.Errorf("commit has no tree")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", c.Tree.String())
	if !c.Parent.IsZero() {
		fmt.Fprintf(&buf, "parent %s\n", c.Parent.String())
	}
	fmt.Fprintf(&buf, "author %s\n", object.NewIdentity(c.Author.Name, c.Author.Email, c.Author.Time).String())
	fmt.Fprintf(&buf, "committer %s\n", object.NewIdentity(c.Committer.Name, c.Committer.Email, c.Committer.Time).String())
	buf.WriteByte('\n')
	buf.WriteString(c.Message)

	return buf.Bytes(), nil
}

// DecodeCommit parses a canonical commit. Only the first parent is kept;
// headers other than tree, parent, author and committer are skipped.
func DecodeCommit(h hash.Hash, data []byte) (*Commit, error) {
	commit := &Commit{Hash: h}

	header, message, found := bytes.Cut(data, []byte("\n\n"))
	if !found {
		header = bytes.TrimSuffix(data, []byte("\n"))
	}
	commit.Message = string(message)

	for _, line := range strings.Split(string(header), "\n") {
		// Continuation lines of multi-line headers such as gpgsig.
		if strings.HasPrefix(line, " ") {
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		switch key {
		case "tree":
			tree, err := hash.FromHex(value)
			if err != nil {
				return nil, fmt.Errorf("commit %s: parse tree: %w", h, err)
			}
			commit.Tree = tree
		case "parent":
			if !commit.Parent.IsZero() {
				continue
			}
			parent, err := hash.FromHex(value)
			if err != nil {
				return nil, fmt.Errorf("commit %s: parse parent: %w", h, err)
			}
			commit.Parent = parent
		case "author":
			id, err := object.ParseIdentity(value)
			if err != nil {
				return nil, fmt.Errorf("commit %s: parse author: %w", h, err)
			}
			t, err := id.Time()
			if err != nil {
				return nil, fmt.Errorf("commit %s: parse author time: %w", h, err)
			}
			commit.Author = Author{Name: id.Name, Email: id.Email, Time: t}
		case "committer":
			id, err := object.ParseIdentity(value)
			if err != nil {
				return nil, fmt.Errorf("commit %s: parse committer: %w", h, err)
			}
			t, err := id.Time()
			if err != nil {
				return nil, fmt.Errorf("commit %s: parse committer time: %w", h, err)
			}
			commit.Committer = Committer{Name: id.Name, Email: id.Email, Time: t}
		}
	}

	if commit.Tree.IsZero() {
		return nil, fmt.Errorf("commit %s: missing tree header", h)
	}

	return commit, nil
}
