// Package meigit commits single-file edits to git repositories without a
// working copy. An edit rewrites only the trees on the path from the root to
// the file, stores a commit on top of the branch head and moves the branch
// only if nobody else moved it first.
//
// Object access goes through an ObjectStore. The github package talks to the
// GitHub git data API, storage/loose writes a bare repository on disk and
// storage/memory keeps everything in maps. A Session walks a user through
// login, repository, branch and path selection, and offers reads, writes,
// forks and pull requests for whatever is selected.
package meigit
