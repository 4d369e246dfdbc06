package tree

import (
	"encoding/hex"
	"fmt"

	"github.com/txaty/go-merkletree"

	"ncdu-import/internal/hash"
)

type recordBlock []byte

func (r recordBlock) Serialize() ([]byte, error) {
	return r, nil
}

// Fingerprint returns a hex digest of the tree's final shape: the Merkle
// root over every file's path and size, in walk order. Directories are
// implied by the file paths. Two trees built from permutations of the same
// records share a fingerprint.
func (t *Tree) Fingerprint() (string, error) {
	var blocks []merkletree.DataBlock
	t.Walk(func(path string, n Node) {
		if f, ok := n.(*File); ok {
			blocks = append(blocks, recordBlock(hash.Record(path, f.Size)))
		}
	})

	// go-merkletree needs at least two leaves
	switch len(blocks) {
	case 0:
		sum, err := hash.XXHashFunc([]byte("empty-tree"))
		if err != nil {
			return "", fmt.Errorf("failed to create empty tree hash: %w", err)
		}
		return hex.EncodeToString(sum), nil
	case 1:
		data, _ := blocks[0].Serialize()
		sum, err := hash.XXHashFunc(data)
		if err != nil {
			return "", fmt.Errorf("failed to hash record: %w", err)
		}
		return hex.EncodeToString(sum), nil
	}

	m, err := merkletree.New(&merkletree.Config{
		HashFunc: hash.XXHashFunc,
		Mode:     merkletree.ModeTreeBuild,
	}, blocks)
	if err != nil {
		return "", fmt.Errorf("failed to build merkle tree: %w", err)
	}
	return hex.EncodeToString(m.Root), nil
}
