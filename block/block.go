// Package block defines the Block and the append-only Stream of hash-linked
// Blocks.
package block

import (
	"bytes"
	"fmt"

	"github.com/renproject/blockstream/id"
)

// Number of a Block within its Stream. The first Block in a Stream has Number
// 1, and every appended Block has the Number of its parent plus one.
type Number uint64

// FirstNumber is the Number of the first Block in every Stream.
const FirstNumber = Number(1)

// Blocks defines a wrapper type around the []Block type.
type Blocks []Block

// Equal compares one list of Blocks with another. Order matters.
func (blocks Blocks) Equal(other Blocks) bool {
	if len(blocks) != len(other) {
		return false
	}
	for i := range blocks {
		if !blocks[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// A Block is an immutable record of some content, linked to the Block that
// precedes it. The Hash of a Block is derived from its content alone; the
// Number and parent Hash are not part of the digest.
type Block struct {
	number     Number
	hash       id.Hash
	parentHash id.Hash
	content    []byte
}

// New returns a Block from its parts. The content is copied. Callers are
// expected to use `Stream.Append`; New exists for decoding and for building
// Blocks that did not come from a Stream.
func New(number Number, hash, parentHash id.Hash, content []byte) Block {
	return Block{
		number:     number,
		hash:       hash,
		parentHash: parentHash,
		content:    copyBytes(content),
	}
}

// Number of the Block within its Stream.
func (block Block) Number() Number {
	return block.number
}

// Hash of the content of the Block.
func (block Block) Hash() id.Hash {
	return block.hash
}

// ParentHash is the Hash of the preceding Block, or the zero Hash if this is
// the first Block of its Stream.
func (block Block) ParentHash() id.Hash {
	return block.parentHash
}

// Content returns a copy of the payload of the Block.
func (block Block) Content() []byte {
	return copyBytes(block.content)
}

// IsFirst returns true if the Block is the first Block of its Stream.
func (block Block) IsFirst() bool {
	return block.number == FirstNumber
}

// Equal compares every field of one Block with another.
func (block Block) Equal(other Block) bool {
	return block.number == other.number &&
		block.hash.Equal(other.hash) &&
		block.parentHash.Equal(other.parentHash) &&
		bytes.Equal(block.content, other.content)
}

func (block Block) String() string {
	return fmt.Sprintf("Block[%d] : %v with data : %v", block.number, block.hash, block.content)
}

func copyBytes(data []byte) []byte {
	if data == nil {
		return []byte{}
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp
}
