package block

import (
	"github.com/pkg/errors"
	"github.com/renproject/blockstream/id"
)

var (
	// ErrBadNumber is returned when a Block does not have the Number implied
	// by its position in a Stream.
	ErrBadNumber = errors.New("bad block number")
	// ErrBrokenLink is returned when the parent Hash of a Block is not the
	// Hash of the Block before it.
	ErrBrokenLink = errors.New("broken parent link")
	// ErrBadHash is returned when the Hash of a Block is not the Hash of its
	// content.
	ErrBadHash = errors.New("bad block hash")
)

// A Stream is an ordered, append-only sequence of hash-linked Blocks. Blocks
// can only be added to the tail, and a Block is never modified once it has
// been appended. The zero value is an empty Stream that hashes with
// `id.SHA256`. Streams are not safe for concurrent use while they are
// growing.
type Stream struct {
	hasher id.Hasher
	blocks Blocks
}

// NewStream returns an empty Stream that hashes with `id.SHA256`.
func NewStream() *Stream {
	return NewStreamWithHasher(id.SHA256)
}

// NewStreamWithHasher returns an empty Stream that hashes content with the
// given Hasher. Streams that are compared with each other must use the same
// Hasher.
func NewStreamWithHasher(hasher id.Hasher) *Stream {
	return &Stream{hasher: hasher}
}

// FromBytes builds a Stream by appending one single-byte Block for every item,
// in order. It is a fixture builder, not a general way of turning bytes into
// a Stream.
func FromBytes(items []byte) *Stream {
	stream := NewStream()
	for _, item := range items {
		stream.Append([]byte{item})
	}
	return stream
}

// Append a new Block, holding a copy of the content, to the tail of the
// Stream. The new Block is linked to the current tip, or to the zero Hash if
// the Stream is empty.
func (stream *Stream) Append(content []byte) {
	number, parentHash := FirstNumber, id.Hash{}
	if tip, ok := stream.Tip(); ok {
		number, parentHash = tip.number+1, tip.hash
	}
	stream.blocks = append(stream.blocks, New(number, stream.Hasher()(content), parentHash, content))
}

// Hasher used by the Stream.
func (stream *Stream) Hasher() id.Hasher {
	if stream.hasher == nil {
		return id.SHA256
	}
	return stream.hasher
}

// Len returns the number of Blocks in the Stream.
func (stream *Stream) Len() int {
	return len(stream.blocks)
}

// At returns the Block at index i. It panics if i is out of range.
func (stream *Stream) At(i int) Block {
	return stream.blocks[i]
}

// Tip returns the last Block in the Stream, and false if the Stream is empty.
func (stream *Stream) Tip() (Block, bool) {
	if len(stream.blocks) == 0 {
		return Block{}, false
	}
	return stream.blocks[len(stream.blocks)-1], true
}

// Blocks returns a copy of the Blocks in the Stream, in order.
func (stream *Stream) Blocks() Blocks {
	blocks := make(Blocks, len(stream.blocks))
	copy(blocks, stream.blocks)
	return blocks
}

// Verify that every Block has the expected Number, is linked to the Block
// before it, and has the Hash of its own content.
func (stream *Stream) Verify() error {
	return VerifyBlocks(stream.blocks, stream.Hasher())
}

// VerifyBlocks checks that the Blocks form a well-linked Stream under the
// given Hasher.
func VerifyBlocks(blocks Blocks, hasher id.Hasher) error {
	parentHash := id.Hash{}
	for i, block := range blocks {
		if block.number != Number(i+1) {
			return errors.Wrapf(ErrBadNumber, "block at index %d has number %d", i, block.number)
		}
		if !block.parentHash.Equal(parentHash) {
			return errors.Wrapf(ErrBrokenLink, "block %d has parent %v, expected %v", block.number, block.parentHash, parentHash)
		}
		if hash := hasher(block.content); !block.hash.Equal(hash) {
			return errors.Wrapf(ErrBadHash, "block %d has hash %v, expected %v", block.number, block.hash, hash)
		}
		parentHash = block.hash
	}
	return nil
}
