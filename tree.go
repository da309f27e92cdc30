package meigit

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
)

// File modes git records in tree entries.
const (
	ModeFile       uint32 = 0o100644
	ModeExecutable uint32 = 0o100755
	ModeSymlink    uint32 = 0o120000
	ModeDir        uint32 = 0o40000
	ModeSubmodule  uint32 = 0o160000
)

// TreeEntry represents a single entry in a git tree object: one file,
// directory or submodule directly below the tree.
type TreeEntry struct {
	// Name is the filename or directory name
	Name string
	// Mode is the file mode in octal (e.g., 0o100644 for files, 0o40000 for directories).
	// Rewrites of the entry's content keep it unchanged.
	Mode uint32
	// Hash is the SHA-1 hash of the object
	Hash hash.Hash
}

// Type returns the kind of object the entry points at, derived from its mode.
func (e TreeEntry) Type() object.Type {
	return typeOfMode(e.Mode)
}

// IsTree reports whether the entry is a directory.
func (e TreeEntry) IsTree() bool {
	return e.Mode == ModeDir
}

func typeOfMode(mode uint32) object.Type {
	switch mode {
	case ModeDir:
		return object.TypeTree
	case ModeSubmodule:
		return object.TypeCommit
	default:
		return object.TypeBlob
	}
}

// Tree represents a single git tree object containing direct children only.
// Entries are kept in git tree order. A Tree is never modified in place:
// With returns a copy, so trees loaded from a store stay valid for the old
// commit that references them.
type Tree struct {
	// Hash is the hash of the stored tree, or nil for a tree built with With
	// that has not been saved yet.
	Hash    hash.Hash
	Entries []TreeEntry
}

// NewTree returns an unsaved tree holding a sorted copy of entries.
func NewTree(entries []TreeEntry) *Tree {
	sorted := slices.Clone(entries)
	sortEntries(sorted)
	return &Tree{Entries: sorted}
}

// Find returns the direct child called name.
func (t *Tree) Find(name string) (TreeEntry, bool) {
	for _, e := range t.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return TreeEntry{}, false
}

// With returns a copy of t in which entry replaces the child of the same name,
// or is added in order when there is none. The copy has no hash.
func (t *Tree) With(entry TreeEntry) *Tree {
	entries := make([]TreeEntry, 0, len(t.Entries)+1)
	replaced := false
	for _, e := range t.Entries {
		if e.Name == entry.Name {
			entries = append(entries, entry)
			replaced = true
			continue
		}
		entries = append(entries, e)
	}
	if !replaced {
		entries = append(entries, entry)
		sortEntries(entries)
	}

	return &Tree{Entries: entries}
}

// sortEntries orders entries the way git does: byte-wise by name, where a
// directory compares as if its name ended in '/'.
func sortEntries(entries []TreeEntry) {
	slices.SortFunc(entries, func(a, b TreeEntry) int {
		return strings.Compare(sortKey(a), sortKey(b))
	})
}

func sortKey(e TreeEntry) string {
	if e.IsTree() {
		return e.Name + "/"
	}
	return e.Name
}

// EncodeTree returns the canonical git encoding of a tree: for every entry in
// tree order, "<octal mode> <name>\0" followed by the raw hash.
func EncodeTree(entries []TreeEntry) ([]byte, error) {
	sorted := slices.Clone(entries)
	sortEntries(sorted)

	// A file and a directory with the same name do not sort next to each
	// other ("a", "a.b", "a/"), so duplicates are tracked by name.
	seen := make(map[string]struct{}, len(sorted))
	var buf bytes.Buffer
	for _, e := range sorted {
		if err := validateEntryName(e.Name); err != nil {
			return nil, err
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("duplicate tree entry %q", e.Name)
		}
		seen[e.Name] = struct{}{}
		if e.Hash.IsZero() {
			return nil, fmt.Errorf("tree entry %q has no hash", e.Name)
		}

		buf.WriteString(strconv.FormatUint(uint64(e.Mode), 8))
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(e.Hash)
	}

	return buf.Bytes(), nil
}

// DecodeTree parses the canonical encoding produced by EncodeTree.
func DecodeTree(h hash.Hash, data []byte) (*Tree, error) {
	tree := &Tree{Hash: h}
	for len(data) > 0 {
		space := bytes.IndexByte(data, ' ')
		if space == -1 {
			return nil, fmt.Errorf("tree %s: entry without mode", h)
		}
		mode, err := strconv.ParseUint(string(data[:space]), 8, 32)
		if err != nil {
			return nil, fmt.Errorf("tree %s: parse mode: %w", h, err)
		}
		data = data[space+1:]

		nul := bytes.IndexByte(data, 0)
		if nul == -1 {
			return nil, fmt.Errorf("tree %s: entry without name terminator", h)
		}
		name := string(data[:nul])
		data = data[nul+1:]

		// Hash width follows the tree's own id: 20 bytes for SHA-1.
		width := len(h)
		if width == 0 {
			width = 20
		}
		if len(data) < width {
			return nil, fmt.Errorf("tree %s: truncated hash for %q", h, name)
		}

		tree.Entries = append(tree.Entries, TreeEntry{
			Name: name,
			Mode: uint32(mode),
			Hash: hash.Hash(slices.Clone(data[:width])),
		})
		data = data[width:]
	}

	return tree, nil
}

func validateEntryName(name string) error {
	switch {
	case name == "":
		return NewMalformedPathError(name, "tree entry name is empty")
	case name == "." || name == "..":
		return NewMalformedPathError(name, "tree entry name is a relative reference")
	case strings.ContainsAny(name, "/\x00"):
		return NewMalformedPathError(name, "tree entry name contains a slash or NUL byte")
	}
	return nil
}
