// Package loose stores objects the way git does in a bare repository: one
// zlib-compressed file per object under objects/, refs as files under refs/.
// Stock git can read everything it writes. Objects that git has since packed
// into objects/pack are still found.
package loose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/zlib"
	"gopkg.in/ini.v1"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
	"github.com/mei-friend/meigit/storage"
)

const (
	dirPerm    = 0o755
	objectPerm = 0o444
	filePerm   = 0o644
)

// ErrNotARepository is returned by Open for a directory without objects/
// or HEAD.
var ErrNotARepository = errors.New("not a git repository")

// Store is an ObjectStore on a bare git directory. Object writes are atomic
// and ref updates are serialized with lock files, so several processes can
// share a directory.
type Store struct {
	root  string
	packs *packs
}

var _ meigit.ObjectStore = (*Store)(nil)

// Init creates a bare repository at root whose HEAD points at branch, and
// opens it. An existing repository is opened as is.
func Init(root, branch string) (*Store, error) {
	if s, err := Open(root); err == nil {
		return s, nil
	}

	for _, dir := range []string{
		filepath.Join(root, "objects", "info"),
		filepath.Join(root, "objects", "pack"),
		filepath.Join(root, "refs", "heads"),
		filepath.Join(root, "refs", "tags"),
	} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", dir, err)
		}
	}

	head := "ref: refs/heads/" + branch + "\n"
	if err := os.WriteFile(filepath.Join(root, "HEAD"), []byte(head), filePerm); err != nil {
		return nil, fmt.Errorf("init: write HEAD: %w", err)
	}

	cfg := ini.Empty()
	core := cfg.Section("core")
	core.Key("repositoryformatversion").SetValue("0")
	core.Key("filemode").SetValue("true")
	core.Key("bare").SetValue("true")
	if err := cfg.SaveTo(filepath.Join(root, "config")); err != nil {
		return nil, fmt.Errorf("init: write config: %w", err)
	}

	return &Store{root: root, packs: &packs{}}, nil
}

// Open opens an existing bare repository, or the .git directory of a
// working copy.
func Open(root string) (*Store, error) {
	if info, err := os.Stat(filepath.Join(root, ".git")); err == nil && info.IsDir() {
		root = filepath.Join(root, ".git")
	}

	for _, name := range []string{"objects", "HEAD"} {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNotARepository, root, err)
		}
	}

	return &Store{root: root, packs: &packs{}}, nil
}

// Root returns the git directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) objectPath(h hash.Hash) string {
	hex := h.String()
	return filepath.Join(s.root, "objects", hex[:2], hex[2:])
}

func (s *Store) LoadBlob(ctx context.Context, h hash.Hash) ([]byte, error) {
	obj, err := s.load(ctx, h)
	if err != nil {
		return nil, err
	}
	return meigit.BlobFromObject(obj)
}

func (s *Store) LoadTree(ctx context.Context, h hash.Hash) (*meigit.Tree, error) {
	obj, err := s.load(ctx, h)
	if err != nil {
		return nil, err
	}
	return meigit.TreeFromObject(obj)
}

func (s *Store) LoadCommit(ctx context.Context, h hash.Hash) (*meigit.Commit, error) {
	obj, err := s.load(ctx, h)
	if err != nil {
		return nil, err
	}
	return meigit.CommitFromObject(obj)
}

func (s *Store) SaveBlob(ctx context.Context, content []byte) (hash.Hash, error) {
	return s.save(ctx, meigit.BlobObject(content))
}

func (s *Store) SaveTree(ctx context.Context, entries []meigit.TreeEntry) (hash.Hash, error) {
	obj, err := meigit.TreeObject(entries)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, obj)
}

func (s *Store) SaveCommit(ctx context.Context, commit *meigit.Commit) (hash.Hash, error) {
	obj, err := meigit.CommitObject(commit)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, obj)
}

// load reads and inflates an object, checking that its content matches h.
func (s *Store) load(ctx context.Context, h hash.Hash) (*storage.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(h) != 20 {
		return nil, fmt.Errorf("invalid object hash %q", h.String())
	}

	f, err := os.Open(s.objectPath(h))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open object %s: %w", h.String(), err)
		}
		obj, err := s.loadPacked(ctx, h)
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return nil, meigit.NewObjectNotFoundError(h)
		}
		return obj, nil
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("inflate object %s: %w", h.String(), err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("inflate object %s: %w", h.String(), err)
	}

	obj, err := parseObject(h, data)
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).Debug("Loaded object", "hash", h.String(), "type", obj.Type.Name(), "size", len(obj.Data))
	return obj, nil
}

// parseObject splits "<type> <size>\0<content>" and verifies the hash.
func parseObject(h hash.Hash, data []byte) (*storage.Object, error) {
	header, content, found := bytes.Cut(data, []byte{0})
	if !found {
		return nil, fmt.Errorf("object %s: missing header", h.String())
	}

	typeName, sizeStr, found := bytes.Cut(header, []byte{' '})
	if !found {
		return nil, fmt.Errorf("object %s: invalid header %q", h.String(), header)
	}

	t, err := object.ParseType(string(typeName))
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", h.String(), err)
	}

	size, err := strconv.Atoi(string(sizeStr))
	if err != nil || size != len(content) {
		return nil, fmt.Errorf("object %s: size %q does not match content length %d", h.String(), sizeStr, len(content))
	}

	if actual := hash.SHA1(t, content); !actual.Is(h) {
		return nil, fmt.Errorf("object %s: content hashes to %s", h.String(), actual.String())
	}

	return &storage.Object{Hash: h, Type: t, Data: content}, nil
}

// save writes obj unless it exists. The file is written under a temporary
// name and renamed into place, so readers never see a partial object.
func (s *Store) save(ctx context.Context, obj *storage.Object) (hash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.objectPath(obj.Hash)
	if _, err := os.Stat(path); err == nil {
		return obj.Hash, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("save object %s: mkdir: %w", obj.Hash.String(), err)
	}

	tmp, err := os.CreateTemp(dir, "tmp_obj_")
	if err != nil {
		return nil, fmt.Errorf("save object %s: %w", obj.Hash.String(), err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	zw := zlib.NewWriter(tmp)
	_, err = zw.Write(hash.Header(obj.Type, int64(len(obj.Data))))
	if err == nil {
		_, err = zw.Write(obj.Data)
	}
	if err == nil {
		err = zw.Close()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("save object %s: write: %w", obj.Hash.String(), err)
	}

	if err := os.Chmod(tmpName, objectPerm); err != nil {
		return nil, fmt.Errorf("save object %s: chmod: %w", obj.Hash.String(), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return nil, fmt.Errorf("save object %s: rename: %w", obj.Hash.String(), err)
	}

	log.FromContext(ctx).Debug("Saved object", "hash", obj.Hash.String(), "type", obj.Type.Name(), "size", len(obj.Data))
	return obj.Hash, nil
}
