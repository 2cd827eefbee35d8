package verifier_test

import (
	"bytes"
	"errors"
	"io/ioutil"
	"math/rand"
	"testing/quick"
	"time"

	"github.com/renproject/blockstream/block"
	"github.com/renproject/blockstream/id"
	"github.com/renproject/blockstream/testutil"
	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/blockstream/verifier"
)

type mockChain struct {
	blocks block.Blocks
}

func (chain mockChain) Blocks() block.Blocks {
	return chain.blocks
}

func (chain mockChain) Hasher() id.Hasher {
	return id.SHA256
}

var _ = Describe("Verifier", func() {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	verifier := New(DefaultOptions().WithLogOutput(ioutil.Discard))

	Context("when the chains are valid", func() {
		It("should succeed", func() {
			f := func() bool {
				chains := make([]Chain, 1+r.Intn(5))
				for i := range chains {
					chains[i] = testutil.RandomStream(r.Intn(20))
				}
				Expect(verifier.Verify(chains...)).To(Succeed())
				return true
			}
			Expect(quick.Check(f, nil)).To(Succeed())
		})

		It("should succeed for chains built with another hasher", func() {
			stream := block.NewStreamWithHasher(id.SHA3)
			stream.Append([]byte{1})
			stream.Append([]byte{2})
			Expect(verifier.Verify(stream)).To(Succeed())
		})
	})

	Context("when a chain is invalid", func() {
		It("should return the error for the first invalid chain", func() {
			blocks := block.FromBytes([]byte{1, 2, 3}).Blocks()
			blocks[1] = block.New(2, blocks[1].Hash(), testutil.RandomHash(), blocks[1].Content())

			err := verifier.Verify(block.FromBytes([]byte{4, 5}), mockChain{blocks: blocks})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, block.ErrBrokenLink)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("verifying chain 1"))
		})

		It("should detect tampered content", func() {
			blocks := block.FromBytes([]byte{1, 2, 3}).Blocks()
			blocks[0] = block.New(1, blocks[0].Hash(), blocks[0].ParentHash(), []byte{9})

			err := verifier.Verify(mockChain{blocks: blocks})
			Expect(errors.Is(err, block.ErrBadHash)).To(BeTrue())
		})

		It("should log the failure", func() {
			buf := new(bytes.Buffer)
			verifier := New(DefaultOptions().WithLogOutput(buf))

			blocks := block.FromBytes([]byte{1, 2}).Blocks()
			blocks[1] = block.New(7, blocks[1].Hash(), blocks[1].ParentHash(), blocks[1].Content())
			Expect(verifier.Verify(mockChain{blocks: blocks})).ToNot(Succeed())
			Expect(buf.String()).To(ContainSubstring("invalid chain"))
			Expect(buf.String()).To(ContainSubstring("pkg=verifier"))
		})
	})

	Context("when configuring options", func() {
		It("should set the log level", func() {
			for _, level := range logrus.AllLevels {
				opts := DefaultOptions().WithLogLevel(level)
				entry, ok := opts.Logger.(*logrus.Entry)
				Expect(ok).To(BeTrue())
				Expect(entry.Logger.Level).To(Equal(level))
			}
		})

		It("should replace the logger", func() {
			logger := logrus.New()
			opts := DefaultOptions().WithLogger(logger)
			Expect(opts.Logger).To(Equal(logrus.FieldLogger(logger)))
		})
	})
})
