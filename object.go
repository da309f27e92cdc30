package meigit

import (
	"github.com/mei-friend/meigit/protocol/hash"
	"github.com/mei-friend/meigit/protocol/object"
	"github.com/mei-friend/meigit/storage"
)

// BlobObject returns content as a stored blob.
func BlobObject(content []byte) *storage.Object {
	return &storage.Object{Hash: hash.SHA1(object.TypeBlob, content), Type: object.TypeBlob, Data: content}
}

// TreeObject encodes entries as a stored tree.
func TreeObject(entries []TreeEntry) (*storage.Object, error) {
	data, err := EncodeTree(entries)
	if err != nil {
		return nil, err
	}
	return &storage.Object{Hash: hash.SHA1(object.TypeTree, data), Type: object.TypeTree, Data: data}, nil
}

// CommitObject encodes c as a stored commit. c.Hash is ignored.
func CommitObject(c *Commit) (*storage.Object, error) {
	data, err := EncodeCommit(c)
	if err != nil {
		return nil, err
	}
	return &storage.Object{Hash: hash.SHA1(object.TypeCommit, data), Type: object.TypeCommit, Data: data}, nil
}

// BlobFromObject returns the content of a stored blob.
func BlobFromObject(obj *storage.Object) ([]byte, error) {
	if obj.Type != object.TypeBlob {
		return nil, NewUnexpectedObjectTypeError(obj.Hash.String(), object.TypeBlob, obj.Type)
	}
	return obj.Data, nil
}

// TreeFromObject decodes a stored tree.
func TreeFromObject(obj *storage.Object) (*Tree, error) {
	if obj.Type != object.TypeTree {
		return nil, NewUnexpectedObjectTypeError(obj.Hash.String(), object.TypeTree, obj.Type)
	}
	return DecodeTree(obj.Hash, obj.Data)
}

// CommitFromObject decodes a stored commit.
func CommitFromObject(obj *storage.Object) (*Commit, error) {
	if obj.Type != object.TypeCommit {
		return nil, NewUnexpectedObjectTypeError(obj.Hash.String(), object.TypeCommit, obj.Type)
	}
	return DecodeCommit(obj.Hash, obj.Data)
}
