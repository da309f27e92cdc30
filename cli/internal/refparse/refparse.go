package refparse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/protocol"
	"github.com/mei-friend/meigit/protocol/hash"
)

// ResolveRef finds the full ref a user-supplied name stands for and the
// commit it points at. It supports:
// - Full reference names (refs/heads/main, refs/tags/v1.0.0)
// - HEAD
// - Short names (main, v1.0.0), tried as refs/heads/<name> then refs/tags/<name>
func ResolveRef(ctx context.Context, store meigit.ObjectStore, name string) (string, hash.Hash, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, errors.New("empty reference name")
	}

	if name == protocol.HEAD.FullName || strings.HasPrefix(name, "refs/") {
		h, err := store.ReadRef(ctx, name)
		if err != nil {
			return "", nil, err
		}
		return name, h, nil
	}

	candidates := []string{
		"refs/heads/" + name,
		"refs/tags/" + name,
	}

	var lastErr error
	for _, ref := range candidates {
		h, err := store.ReadRef(ctx, ref)
		if err == nil {
			return ref, h, nil
		}
		// Anything but a missing ref ends the search.
		if !errors.Is(err, meigit.ErrNotFound) && !errors.Is(err, protocol.ErrInvalidRefName) {
			return "", nil, err
		}
		lastErr = err
	}

	return "", nil, fmt.Errorf("reference not found: %s: %w", name, lastErr)
}
