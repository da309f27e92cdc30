// Package object defines the kinds of objects stored in a git object database.
//
// Git stores all content as objects. Each object has a type that decides how
// its payload is interpreted:
//
//   - Commit: a snapshot record pointing at a root tree and its parent commit,
//     with author, committer and message.
//   - Tree: a directory listing of blobs, subtrees and submodule commits.
//   - Blob: the raw content of a file.
//   - Tag: an annotated pointer to another object.
//
// The numeric values match the 3-bit type codes git uses in pack files so the
// type can be round-tripped through any git tooling.
//
// See https://git-scm.com/book/en/v2/Git-Internals-Git-Objects
package object

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by ParseType for names git does not define.
var ErrUnknownType = errors.New("unknown object type")

// Type represents a git object type.
type Type uint8

const (
	TypeInvalid  Type = 0 // 0b000 - Invalid type
	TypeCommit   Type = 1 // 0b001 - Commit object
	TypeTree     Type = 2 // 0b010 - Tree object
	TypeBlob     Type = 3 // 0b011 - Blob object
	TypeTag      Type = 4 // 0b100 - Tag object
	TypeReserved Type = 5 // 0b101 - Reserved for future use
)

// String returns the string representation of the object type.
// This is used for debugging and error messages.
func (t Type) String() string {
	switch t {
	case TypeInvalid:
		return "OBJ_INVALID"
	case TypeCommit:
		return "OBJ_COMMIT"
	case TypeTree:
		return "OBJ_TREE"
	case TypeBlob:
		return "OBJ_BLOB"
	case TypeTag:
		return "OBJ_TAG"
	case TypeReserved:
		return "OBJ_RESERVED"
	default:
		return fmt.Sprintf("object.Type(%d)", uint8(t))
	}
}

// Name returns the type as it appears in object headers and in the hosting
// API, e.g. "blob" or "tree".
func (t Type) Name() string {
	return string(t.Bytes())
}

// Bytes returns the byte representation of the object type as used in git's
// object header "<type> <size>\0".
func (t Type) Bytes() []byte {
	switch t {
	case TypeCommit:
		return []byte("commit")
	case TypeTree:
		return []byte("tree")
	case TypeBlob:
		return []byte("blob")
	case TypeTag:
		return []byte("tag")
	case TypeInvalid, TypeReserved:
		fallthrough
	default:
		return []byte("unknown")
	}
}

// ParseType is the inverse of Name.
func ParseType(name string) (Type, error) {
	switch name {
	case "commit":
		return TypeCommit, nil
	case "tree":
		return TypeTree, nil
	case "blob":
		return TypeBlob, nil
	case "tag":
		return TypeTag, nil
	default:
		return TypeInvalid, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}
