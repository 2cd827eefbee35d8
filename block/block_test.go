package block_test

import (
	"fmt"
	"testing/quick"

	"github.com/renproject/blockstream/id"
	"github.com/renproject/blockstream/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/blockstream/block"
)

var _ = Describe("Block", func() {
	Context("when creating a block", func() {
		It("should return the given fields", func() {
			hash, parentHash := testutil.RandomHash(), testutil.RandomHash()
			content := testutil.RandomContent()
			block := New(3, hash, parentHash, content)

			Expect(block.Number()).To(Equal(Number(3)))
			Expect(block.Hash()).To(Equal(hash))
			Expect(block.ParentHash()).To(Equal(parentHash))
			Expect(block.Content()).To(Equal(content))
			Expect(block.IsFirst()).To(BeFalse())
		})

		It("should not be affected by changes to the given content", func() {
			content := []byte{1, 2, 3}
			block := New(FirstNumber, id.Digest(content), id.Hash{}, content)
			content[0] = 42
			Expect(block.Content()).To(Equal([]byte{1, 2, 3}))
		})

		It("should not be affected by changes to the returned content", func() {
			block := New(FirstNumber, id.Digest([]byte{1}), id.Hash{}, []byte{1})
			block.Content()[0] = 42
			Expect(block.Content()).To(Equal([]byte{1}))
		})
	})

	Context("when comparing blocks", func() {
		It("should be equal to a copy of itself", func() {
			f := func() bool {
				block := testutil.RandomBlock()
				other := New(block.Number(), block.Hash(), block.ParentHash(), block.Content())
				Expect(block.Equal(other)).To(BeTrue())
				return true
			}
			Expect(quick.Check(f, nil)).To(Succeed())
		})

		It("should not be equal when any field differs", func() {
			block := testutil.RandomBlock()
			content := append(block.Content(), 0)

			Expect(block.Equal(New(block.Number()+1, block.Hash(), block.ParentHash(), block.Content()))).To(BeFalse())
			Expect(block.Equal(New(block.Number(), testutil.RandomHash(), block.ParentHash(), block.Content()))).To(BeFalse())
			Expect(block.Equal(New(block.Number(), block.Hash(), testutil.RandomHash(), block.Content()))).To(BeFalse())
			Expect(block.Equal(New(block.Number(), block.Hash(), block.ParentHash(), content))).To(BeFalse())
		})

		It("should compare lists of blocks in order", func() {
			a, b := testutil.RandomBlock(), testutil.RandomBlock()
			Expect(Blocks{a, b}.Equal(Blocks{a, b})).To(BeTrue())
			Expect(Blocks{a, b}.Equal(Blocks{b, a})).To(BeFalse())
			Expect(Blocks{a}.Equal(Blocks{a, b})).To(BeFalse())
		})
	})

	Context("when stringifying a block", func() {
		It("should include the number, hash and content", func() {
			block := New(6, id.Digest([]byte{6}), id.Digest([]byte{50}), []byte{6})
			Expect(block.String()).To(Equal(fmt.Sprintf("Block[6] : %v with data : [6]", id.Digest([]byte{6}))))
		})
	})
})
