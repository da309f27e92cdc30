package output

import (
	"time"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/protocol/hash"
)

var (
	headHash   = hash.MustFromHex("0123456789abcdef0123456789abcdef01234567")
	parentHash = hash.MustFromHex("1111111111111111111111111111111111111111")
	blobHash   = hash.MustFromHex("2222222222222222222222222222222222222222")
	treeHash   = hash.MustFromHex("3333333333333333333333333333333333333333")
)

func fileSnapshot(content string, binary bool) *meigit.Snapshot {
	return &meigit.Snapshot{
		Head:    headHash,
		Path:    "op15/no1.mei",
		Entry:   &meigit.WalkEntry{Path: "op15/no1.mei", Name: "no1.mei", Mode: meigit.ModeFile, Hash: blobHash},
		Content: []byte(content),
		Binary:  binary,
	}
}

func dirSnapshot() *meigit.Snapshot {
	return &meigit.Snapshot{
		Head:  headHash,
		Path:  "op15",
		Entry: &meigit.WalkEntry{Path: "op15", Name: "op15", Mode: meigit.ModeDir, Hash: treeHash},
		Children: []meigit.WalkEntry{
			{Path: "op15/no1.mei", Name: "no1.mei", Mode: meigit.ModeFile, Hash: blobHash},
			{Path: "op15/facsimiles", Name: "facsimiles", Mode: meigit.ModeDir, Hash: treeHash},
		},
	}
}

func writeResult() *meigit.WriteResult {
	return &meigit.WriteResult{
		Commit:      &meigit.Commit{Hash: headHash, Tree: treeHash, Parent: parentHash},
		Parent:      parentHash,
		Tree:        treeHash,
		Head:        headHash,
		OperationID: "op-1",
	}
}

func commits() []meigit.CommitSummary {
	return []meigit.CommitSummary{
		{
			Hash:        headHash,
			Message:     "Fix measure 12\n\nThe slur ended one note early.",
			AuthorName:  "Clara Schumann",
			AuthorEmail: "clara@example.com",
			AuthorLogin: "clara",
			Date:        time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC),
		},
		{
			Hash:       parentHash,
			Message:    "Initial commit\n",
			AuthorName: "Robert Schumann",
			Date:       time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC),
		},
	}
}
