package meigit

import (
	"path"
	"strings"
)

// normalizePath normalizes a repository path by removing leading/trailing
// slashes, collapsing repeated slashes, dropping "." segments and trimming
// whitespace. Parent references are rejected. The empty string is the root.
func normalizePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	p = strings.Trim(p, "/")
	if p == "" {
		return "", nil
	}

	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", NewMalformedPathError(p, "path contains parent directory references (..)")
		}
	}

	// path.Clean collapses "//" and drops "." segments.
	cleaned := path.Clean(p)
	if cleaned == "." {
		return "", nil
	}

	return cleaned, nil
}

// splitPath returns the segments of a file path. A path without segments,
// such as "" or "/", is a MalformedPathError.
func splitPath(p string) ([]string, error) {
	normalized, err := normalizePath(p)
	if err != nil {
		return nil, err
	}

	if normalized == "" {
		return nil, NewMalformedPathError(p, "path has no segments")
	}

	return strings.Split(normalized, "/"), nil
}

// validateFileName checks a name that must be a single path segment.
func validateFileName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed != name {
		return NewMalformedPathError(name, "file name has surrounding whitespace")
	}
	return validateEntryName(name)
}

// parentDir returns the directory containing p ("" for the root).
func parentDir(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

// binarySuffixes are file suffixes whose content is a compressed archive
// (compressed MusicXML and plain zip) and must not be treated as text.
var binarySuffixes = []string{".mxl", ".zip"}

// IsBinaryPath reports whether the file at p is loaded as binary content.
func IsBinaryPath(p string) bool {
	lower := strings.ToLower(p)
	for _, suffix := range binarySuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
