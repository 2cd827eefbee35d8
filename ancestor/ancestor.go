// Package ancestor finds the Block at which independently grown Streams fork.
package ancestor

import (
	"github.com/pkg/errors"
	"github.com/renproject/blockstream/block"
	"github.com/renproject/blockstream/id"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no two Chains share a common ancestor. It is an
// expected outcome for disjoint Chains, not a fault.
var ErrNotFound = errors.New("common ancestor not found")

// A Chain is anything that can list its Blocks in order. It is implemented by
// `*block.Stream`.
type Chain interface {
	Blocks() block.Blocks
}

// A Finder looks for common ancestors. It holds no state between calls, and
// never modifies the Chains that it is given.
type Finder struct {
	opts Options
}

// New returns a Finder that uses the given options.
func New(opts Options) *Finder {
	return &Finder{opts: opts}
}

// defaultFinder backs FindCommonAncestor. It does not log.
var defaultFinder = New(Options{Logger: zap.NewNop()})

// FindCommonAncestor is a convenience for calling `Find` on a shared Finder
// that discards its logs.
func FindCommonAncestor(chains ...Chain) (block.Block, error) {
	return defaultFinder.Find(chains...)
}

// Find the first Block that two Blocks claim as their parent. Chains are
// scanned in the given order, and the Blocks of each Chain are scanned from
// first to last. The first time that a parent Hash is seen for a second time,
// the Block most recently recorded under that Hash is returned. Because the
// first such coincidence wins, the result depends on the order of the Chains
// when there is more than one fork point.
//
// The first Block of a Chain is recorded but its parent is never checked,
// because its parent is always the zero Hash. ErrNotFound is returned if the
// scan finishes without a coincidence.
func (finder *Finder) Find(chains ...Chain) (block.Block, error) {
	seenAsParent := map[id.Hash]struct{}{}
	blockByHash := map[id.Hash]block.Block{}

	for i, chain := range chains {
		for _, b := range chain.Blocks() {
			if b.IsFirst() {
				blockByHash[b.Hash()] = b
				continue
			}
			parentHash := b.ParentHash()
			if _, ok := seenAsParent[parentHash]; ok {
				ancestor, ok := blockByHash[parentHash]
				if !ok {
					// Every parent Hash that has been seen belongs to a Block
					// that was recorded before it.
					panic(errors.Errorf("invariant violation: parent %v seen without its block", parentHash))
				}
				finder.opts.Logger.Debug("found common ancestor",
					zap.Int("chain", i),
					zap.Uint64("number", uint64(ancestor.Number())),
					zap.Stringer("hash", ancestor.Hash()),
					zap.Uint64("child", uint64(b.Number())))
				return ancestor, nil
			}
			seenAsParent[parentHash] = struct{}{}
			blockByHash[b.Hash()] = b
		}
	}

	finder.opts.Logger.Debug("no common ancestor",
		zap.Int("chains", len(chains)),
		zap.Int("blocks", len(blockByHash)))
	return block.Block{}, ErrNotFound
}
