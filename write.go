package meigit

import (
	"context"
	"strings"
)

// WriteRepo commits content at the selected file on the selected branch,
// authored by the session's author. With newFile set, the content is stored
// under that name next to the selected file, and the returned session
// selects the new file.
func (s Session) WriteRepo(ctx context.Context, content []byte, message, newFile string) (Session, *WriteResult, error) {
	if err := s.require("WriteRepo", StatePathSelected); err != nil {
		return s, nil, err
	}

	ctx = s.context(ctx)
	result, err := WriteFile(ctx, s.store, WriteRequest{
		Ref:     s.branchRef(),
		Path:    s.path,
		Content: content,
		Message: message,
		NewFile: newFile,
		Author:  s.author,
	})
	if err != nil {
		return s, nil, err
	}

	next := s
	next.head = result.Head
	if newFile != "" {
		next.path = strings.TrimPrefix(s.Dir()+"/"+newFile, "/")
	}
	return next, result, nil
}
