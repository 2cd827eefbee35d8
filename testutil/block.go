package testutil

import (
	"math/rand"
	"time"

	fuzz "github.com/google/gofuzz"
	"github.com/renproject/blockstream/block"
)

var fuzzer = fuzz.NewWithSeed(time.Now().UnixNano()).NilChance(0).NumElements(0, 64)

// RandomContent returns a random, possibly empty, payload of up to 64 bytes.
func RandomContent() []byte {
	content := []byte{}
	fuzzer.Fuzz(&content)
	return content
}

// RandomContents returns n random payloads that are distinct from each other
// and from every payload in exclude.
func RandomContents(n int, exclude ...[]byte) [][]byte {
	seen := map[string]struct{}{}
	for _, content := range exclude {
		seen[string(content)] = struct{}{}
	}
	contents := make([][]byte, 0, n)
	for len(contents) < n {
		content := RandomContent()
		if _, ok := seen[string(content)]; ok {
			continue
		}
		seen[string(content)] = struct{}{}
		contents = append(contents, content)
	}
	return contents
}

// RandomBlock returns a Block with random fields. The Block is not linked to
// anything, and its Hash is not the Hash of its content.
func RandomBlock() block.Block {
	return block.New(block.Number(rand.Uint64()), RandomHash(), RandomHash(), RandomContent())
}

// StreamFromContents builds a Stream by appending each payload in order.
func StreamFromContents(contents ...[]byte) *block.Stream {
	stream := block.NewStream()
	for _, content := range contents {
		stream.Append(content)
	}
	return stream
}

// RandomStream returns a Stream of n Blocks with distinct random contents.
func RandomStream(n int) *block.Stream {
	return StreamFromContents(RandomContents(n)...)
}

// Contents returns the payload of every Block in the Stream, in order.
func Contents(stream *block.Stream) [][]byte {
	contents := make([][]byte, stream.Len())
	for i := range contents {
		contents[i] = stream.At(i).Content()
	}
	return contents
}

// Fork returns a new Stream that repeats the contents of the first n Blocks of
// base and then appends the suffix. The Blocks of the new Stream are owned by
// the new Stream.
func Fork(base *block.Stream, n int, suffix ...[]byte) *block.Stream {
	contents := append(Contents(base)[:n:n], suffix...)
	return StreamFromContents(contents...)
}
