package meigit

import (
	"errors"
	"fmt"

	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
)

var (
	// ErrNotFound is returned when a branch, path segment, object or
	// repository does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the credentials are rejected or lack
	// the permission the operation needs. The caller must re-authenticate.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMalformedPath is returned when a path does not resolve to at least
	// one segment, or contains a segment git cannot store.
	ErrMalformedPath = errors.New("malformed path")

	// ErrConflict is returned when the branch moved between reading the head
	// and updating the ref.
	ErrConflict = errors.New("ref update conflict")

	// ErrEmptyMessage is returned before any store call when a commit message
	// is empty or whitespace only.
	ErrEmptyMessage = errors.New("commit message must not be empty")

	// ErrUnresolvedWrite is returned when every object of a write was saved
	// but the ref update failed. The head must be re-read before trying again.
	ErrUnresolvedWrite = errors.New("unresolved write")

	// ErrUnexpectedObjectType is returned when a path names a file where a
	// directory is needed, or the other way round.
	ErrUnexpectedObjectType = errors.New("unexpected git object type")

	// ErrNotAFork is returned by Session.PullRequest for repositories without
	// an upstream.
	ErrNotAFork = errors.New("repository is not a fork")

	// ErrInvalidState is returned when a Session operation is called before
	// the session reached the state it needs.
	ErrInvalidState = errors.New("invalid session state")
)

// NotFoundError provides structured information about a missing ref, path,
// object or repository.
type NotFoundError struct {
	// Kind is one of "ref", "path", "object" or "repository".
	Kind       string
	Name       string
	Underlying error
}

func (e *NotFoundError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s %s not found: %v", e.Kind, e.Name, e.Underlying)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return e.Underlying
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError without an underlying cause.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

// NewObjectNotFoundError reports a missing object.
func NewObjectNotFoundError(h hash.Hash) *NotFoundError {
	return NewNotFoundError("object", h.String())
}

// AuthError provides structured information about rejected credentials or a
// missing permission.
type AuthError struct {
	// Operation names the store or hosting call, e.g. "UpdateRef".
	Operation  string
	StatusCode int
	Underlying error
}

func (e *AuthError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("unauthorized (operation %s, status code %d): %v", e.Operation, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("unauthorized (operation %s, status code %d)", e.Operation, e.StatusCode)
}

func (e *AuthError) Unwrap() error {
	return e.Underlying
}

func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// NewAuthError creates a new AuthError.
func NewAuthError(operation string, statusCode int, underlying error) *AuthError {
	return &AuthError{Operation: operation, StatusCode: statusCode, Underlying: underlying}
}

// MalformedPathError reports a path that cannot be resolved against a tree.
type MalformedPathError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path %q: %s", e.Path, e.Reason)
}

func (e *MalformedPathError) Unwrap() error {
	return e.Err
}

// NewMalformedPathError creates a new MalformedPathError with the given path and reason.
func NewMalformedPathError(path, reason string) *MalformedPathError {
	return &MalformedPathError{Path: path, Reason: reason, Err: ErrMalformedPath}
}

// ConflictError reports a ref that no longer points at the expected commit.
type ConflictError struct {
	Ref      string
	Expected hash.Hash
	// Actual is nil when the ref was deleted or its value is unknown.
	Actual hash.Hash
}

func (e *ConflictError) Error() string {
	actual := "unknown"
	if !e.Actual.IsZero() {
		actual = e.Actual.String()
	}
	return fmt.Sprintf("ref %s moved: expected %s, found %s", e.Ref, e.Expected.String(), actual)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewConflictError creates a new ConflictError.
func NewConflictError(ref string, expected, actual hash.Hash) *ConflictError {
	return &ConflictError{Ref: ref, Expected: expected, Actual: actual}
}

// UnresolvedWriteError wraps the failure of the final ref update of a write.
// The new commit exists in the store but is not reachable from the ref.
type UnresolvedWriteError struct {
	Ref    string
	Commit hash.Hash
	Err    error
}

func (e *UnresolvedWriteError) Error() string {
	return fmt.Sprintf("commit %s saved but %s was not updated: %v", e.Commit.String(), e.Ref, e.Err)
}

func (e *UnresolvedWriteError) Unwrap() error {
	return e.Err
}

func (e *UnresolvedWriteError) Is(target error) bool {
	return target == ErrUnresolvedWrite
}

// UnexpectedObjectTypeError provides structured information about a git object with an unexpected type.
type UnexpectedObjectTypeError struct {
	// Name is the object hash or the path that was resolved.
	Name         string
	ExpectedType object.Type
	ActualType   object.Type
	Err          error
}

func (e *UnexpectedObjectTypeError) Error() string {
	return fmt.Sprintf("%s has unexpected type %s (expected %s): %v",
		e.Name, e.ActualType.Name(), e.ExpectedType.Name(), e.Err)
}

func (e *UnexpectedObjectTypeError) Unwrap() error {
	return e.Err
}

// NewUnexpectedObjectTypeError creates a new UnexpectedObjectTypeError with the specified details.
func NewUnexpectedObjectTypeError(name string, expectedType, actualType object.Type) *UnexpectedObjectTypeError {
	return &UnexpectedObjectTypeError{
		Name:         name,
		ExpectedType: expectedType,
		ActualType:   actualType,
		Err:          ErrUnexpectedObjectType,
	}
}

// StateError reports a Session operation called in the wrong state.
type StateError struct {
	Op   string
	Have State
	Need State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s needs session state %s, have %s", e.Op, e.Need, e.Have)
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}
