package loose

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/protocol"
	"github.com/mei-friend/meigit/protocol/hash"
)

const (
	lockWaitLimit  = 2 * time.Second
	lockRetryDelay = 10 * time.Millisecond
	maxSymrefDepth = 5
)

// ReadRef resolves ref to a commit hash. HEAD and other symbolic refs are
// followed. A ref without a loose file is looked up in packed-refs.
func (s *Store) ReadRef(ctx context.Context, ref string) (hash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := ref
	for range maxSymrefDepth {
		if _, err := protocol.ParseRefName(target); err != nil {
			return nil, err
		}

		value, found, err := s.readLoose(target)
		if err != nil {
			return nil, err
		}
		if !found {
			h, err := s.readPacked(target)
			if err != nil {
				return nil, err
			}
			if h.IsZero() {
				return nil, meigit.NewNotFoundError("ref", ref)
			}
			return h, nil
		}

		if next, ok := strings.CutPrefix(value, "ref: "); ok {
			target = next
			continue
		}

		h, err := hash.FromHex(value)
		if err != nil || len(h) != 20 {
			return nil, fmt.Errorf("ref %s: invalid value %q", target, value)
		}
		log.FromContext(ctx).Debug("Read ref", "ref", ref, "hash", h.String())
		return h, nil
	}

	return nil, fmt.Errorf("ref %s: too many levels of symbolic refs", ref)
}

// HeadBranch returns the branch HEAD points at.
func (s *Store) HeadBranch() (string, error) {
	value, found, err := s.readLoose("HEAD")
	if err != nil {
		return "", err
	}
	target, ok := strings.CutPrefix(value, "ref: refs/heads/")
	if !found || !ok {
		return "", fmt.Errorf("HEAD is not a branch")
	}
	return target, nil
}

// UpdateRef moves ref from oldHash to newHash while holding <ref>.lock.
func (s *Store) UpdateRef(ctx context.Context, ref string, newHash, oldHash hash.Hash) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := protocol.ParseRefName(ref)
	if err != nil {
		return err
	}
	if name == protocol.HEAD {
		return fmt.Errorf("update ref: HEAD must be updated through its branch")
	}

	refPath := filepath.Join(s.root, filepath.FromSlash(ref))
	if err := os.MkdirAll(filepath.Dir(refPath), dirPerm); err != nil {
		return fmt.Errorf("update ref %s: mkdir: %w", ref, err)
	}

	lockPath := refPath + ".lock"
	lock, err := acquireLock(ctx, lockPath)
	if err != nil {
		return fmt.Errorf("update ref %s: %w", ref, err)
	}
	locked := true
	defer func() {
		if locked {
			lock.Close()
			os.Remove(lockPath)
		}
	}()

	current, err := s.currentValue(ref)
	if err != nil {
		return fmt.Errorf("update ref %s: %w", ref, err)
	}
	if !current.Is(oldHash) {
		return meigit.NewConflictError(ref, oldHash, current)
	}

	if _, err := lock.WriteString(newHash.String() + "\n"); err != nil {
		return fmt.Errorf("update ref %s: write: %w", ref, err)
	}
	if err := lock.Sync(); err != nil {
		return fmt.Errorf("update ref %s: sync: %w", ref, err)
	}
	if err := lock.Close(); err != nil {
		return fmt.Errorf("update ref %s: close: %w", ref, err)
	}
	if err := os.Rename(lockPath, refPath); err != nil {
		os.Remove(lockPath)
		locked = false
		return fmt.Errorf("update ref %s: rename: %w", ref, err)
	}
	locked = false

	log.FromContext(ctx).Debug("Updated ref", "ref", ref, "new", newHash.String(), "old", oldHash.String())
	return nil
}

// currentValue returns the hash ref points at, or a zero hash when it does
// not exist.
func (s *Store) currentValue(ref string) (hash.Hash, error) {
	value, found, err := s.readLoose(ref)
	if err != nil {
		return nil, err
	}
	if !found {
		return s.readPacked(ref)
	}
	return hash.FromHex(value)
}

func (s *Store) readLoose(ref string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(ref)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read ref %s: %w", ref, err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// readPacked looks ref up in packed-refs. A missing file or entry yields a
// zero hash.
func (s *Store) readPacked(ref string) (hash.Hash, error) {
	data, err := os.ReadFile(filepath.Join(s.root, "packed-refs"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return hash.Zero, nil
		}
		return nil, fmt.Errorf("read packed-refs: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		// Comments, and peeled tags on "^" lines.
		if line == "" || line[0] == '#' || line[0] == '^' {
			continue
		}
		value, name, ok := strings.Cut(line, " ")
		if ok && name == ref {
			return hash.FromHex(value)
		}
	}
	return hash.Zero, scanner.Err()
}

func acquireLock(ctx context.Context, lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockWaitLimit)
	for {
		f, err := os.OpenFile(lockPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("lock: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timeout waiting for lock %s", lockPath)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
}
