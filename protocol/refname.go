package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRefName is returned by ParseRefName for names git would refuse.
var ErrInvalidRefName = errors.New("invalid ref name")

type RefName struct {
	// FullName is the entire, raw refname, including the 'refs/' prefix (unless it is HEAD).
	FullName string
	// Category is the first part of the refname after 'refs/'. E.g. 'heads'. Can be 'HEAD' for HEAD.
	// Does not include a final slash.
	Category string
	// Location is the final remainder of the refname, after the category. E.g. 'main', 'feature/test'.
	Location string
}

// HEAD is a special-case refname that always exists and is always valid.
var HEAD RefName = RefName{
	FullName: "HEAD",
	Category: "HEAD",
	Location: "HEAD",
}

// BranchRef returns the full ref name of a branch. Names that already carry
// the refs/ prefix are returned unchanged.
func BranchRef(branch string) string {
	if strings.HasPrefix(branch, "refs/") {
		return branch
	}
	return "refs/heads/" + branch
}

// IsBranch reports whether the ref lives under refs/heads/.
func (r RefName) IsBranch() bool {
	return r.Category == "heads"
}

// ParseRefName parses the refname passed in.
// HEAD is always a valid refname. Otherwise the name must start with `refs/`
// and follow git-check-ref-format:
//
//   - It can include a slash ('/') for hierarchical grouping. No slash-separated component can start with a dot ('.').
//   - It must contain a category, e.g. 'heads/' or 'tags/'.
//   - No consecutive dots ('..') anywhere.
//   - No byte < 040, DEL (177), space, caret ('^'), tilde ('~'), colon (':'), question mark ('?'), asterisk ('*'), open square bracket ('[') or backslash.
//   - It cannot end with a slash or a dot, and no component can end with '.lock'.
//   - It cannot contain '@{' or an empty component.
func ParseRefName(in string) (RefName, error) {
	if in == "HEAD" {
		return HEAD, nil
	}

	rn := RefName{FullName: in}
	if !strings.HasPrefix(in, "refs/") {
		return rn, fmt.Errorf("%w: %q does not include refs/ prefix", ErrInvalidRefName, in)
	}
	rest := in[len("refs/"):]

	categoryIdx := strings.IndexRune(rest, '/')
	if categoryIdx == -1 {
		return rn, fmt.Errorf("%w: %q does not include a category", ErrInvalidRefName, in)
	}

	if err := checkRefFormat(rest); err != nil {
		return rn, fmt.Errorf("%w: %q %s", ErrInvalidRefName, in, err.Error())
	}

	rn.Category = rest[:categoryIdx]
	rn.Location = rest[categoryIdx+1:]
	return rn, nil
}

func checkRefFormat(name string) error {
	switch {
	case strings.HasSuffix(name, "/"):
		return strError("ends with a slash")
	case strings.HasSuffix(name, "."):
		return strError("ends with a dot")
	case strings.Contains(name, ".."):
		return strError("contains '..'")
	case strings.Contains(name, "@{"):
		return strError("contains '@{'")
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 040 || c == 0177 {
			return strError("contains a control character")
		}
		if strings.IndexByte(" ~^:?*[\\", c) >= 0 {
			return strError(fmt.Sprintf("contains %q", c))
		}
	}

	for _, component := range strings.Split(name, "/") {
		switch {
		case component == "":
			return strError("contains an empty component")
		case strings.HasPrefix(component, "."):
			return strError("has a component starting with a dot")
		case strings.HasSuffix(component, ".lock"):
			return strError("has a component ending with .lock")
		}
	}

	return nil
}
