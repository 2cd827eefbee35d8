// Package blockstream models hash-linked streams of blocks, and finds the
// block at which independently grown streams fork.
package blockstream

import (
	"github.com/renproject/blockstream/ancestor"
	"github.com/renproject/blockstream/block"
	"github.com/renproject/blockstream/id"
	"github.com/renproject/blockstream/verifier"
)

type (
	Hashes          = id.Hashes
	Hash            = id.Hash
	Hasher          = id.Hasher
	Blocks          = block.Blocks
	Block           = block.Block
	Number          = block.Number
	Stream          = block.Stream
	Finder          = ancestor.Finder
	FinderOptions   = ancestor.Options
	Verifier        = verifier.Verifier
	VerifierOptions = verifier.Options
)

// ErrNotFound is returned when streams do not share a common ancestor.
var ErrNotFound = ancestor.ErrNotFound

// NewStream returns an empty Stream.
func NewStream() *Stream {
	return block.NewStream()
}

// FromBytes builds a Stream with one single-byte Block per item.
func FromBytes(items []byte) *Stream {
	return block.FromBytes(items)
}

// Digest returns the default Hash of some content.
func Digest(content []byte) Hash {
	return id.Digest(content)
}

// FindCommonAncestor returns the first Block that two of the Streams extend.
// See `ancestor.Finder.Find`.
func FindCommonAncestor(streams ...*Stream) (Block, error) {
	return ancestor.FindCommonAncestor(chains(streams)...)
}

// Verify that every Stream is well formed.
func Verify(streams ...*Stream) error {
	targets := make([]verifier.Chain, len(streams))
	for i, stream := range streams {
		targets[i] = stream
	}
	return verifier.New(verifier.DefaultOptions()).Verify(targets...)
}

func chains(streams []*Stream) []ancestor.Chain {
	chains := make([]ancestor.Chain, len(streams))
	for i, stream := range streams {
		chains[i] = stream
	}
	return chains
}
