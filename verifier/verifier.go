// Package verifier checks that Streams supplied by external collaborators are
// well formed before they are compared with each other.
package verifier

import (
	"github.com/pkg/errors"
	"github.com/renproject/blockstream/block"
	"github.com/renproject/blockstream/id"
)

// A Chain is anything that can list its Blocks in order, and that knows the
// Hasher used to build them. It is implemented by `*block.Stream`.
type Chain interface {
	Blocks() block.Blocks
	Hasher() id.Hasher
}

// A Verifier checks the integrity of Chains.
type Verifier struct {
	opts Options
}

// New returns a Verifier that uses the given options.
func New(opts Options) *Verifier {
	return &Verifier{opts: opts}
}

// Verify every Chain, in order, and return the first error found. The error
// wraps one of `block.ErrBadNumber`, `block.ErrBrokenLink` or
// `block.ErrBadHash`, and names the index of the offending Chain.
func (verifier *Verifier) Verify(chains ...Chain) error {
	for i, chain := range chains {
		blocks := chain.Blocks()
		if err := block.VerifyBlocks(blocks, chain.Hasher()); err != nil {
			verifier.opts.Logger.WithField("chain", i).WithError(err).Error("invalid chain")
			return errors.Wrapf(err, "verifying chain %d", i)
		}
		verifier.opts.Logger.WithField("chain", i).WithField("blocks", len(blocks)).Debug("verified chain")
	}
	return nil
}
