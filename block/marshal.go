package block

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/renproject/blockstream/id"
	"github.com/renproject/surge"
)

// minBlockSize is the smallest number of bytes needed to represent a Block in
// binary: a Number, two Hashes, and the length prefix of empty content.
const minBlockSize = 8 + 2*id.HashLength + 4

// SizeHint of how many bytes will be needed to represent a Number in binary.
func (Number) SizeHint() int {
	return 8
}

// Marshal this Number into binary.
func (number Number) Marshal(w io.Writer, m int) (int, error) {
	return surge.Marshal(w, uint64(number), m)
}

// Unmarshal into this Number from binary.
func (number *Number) Unmarshal(r io.Reader, m int) (int, error) {
	return surge.Unmarshal(r, (*uint64)(number), m)
}

// MarshalJSON is implemented because it is not uncommon that blocks need to be
// made available to host programs through external APIs.
func (block Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Number     Number  `json:"number"`
		Hash       id.Hash `json:"hash"`
		ParentHash id.Hash `json:"parentHash"`
		Content    []byte  `json:"content"`
	}{
		block.number,
		block.hash,
		block.parentHash,
		block.content,
	})
}

// UnmarshalJSON is implemented because it is not uncommon that blocks need to
// be made available to host programs through external APIs.
func (block *Block) UnmarshalJSON(data []byte) error {
	tmp := struct {
		Number     Number  `json:"number"`
		Hash       id.Hash `json:"hash"`
		ParentHash id.Hash `json:"parentHash"`
		Content    []byte  `json:"content"`
	}{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*block = New(tmp.Number, tmp.Hash, tmp.ParentHash, tmp.Content)
	return nil
}

// SizeHint of how many bytes will be needed to represent a Block in binary.
func (block Block) SizeHint() int {
	return surge.SizeHint(block.number) +
		surge.SizeHint(block.hash) +
		surge.SizeHint(block.parentHash) +
		surge.SizeHint(block.content)
}

// Marshal this Block into binary.
func (block Block) Marshal(w io.Writer, m int) (int, error) {
	m, err := surge.Marshal(w, block.number, m)
	if err != nil {
		return m, err
	}
	if m, err = surge.Marshal(w, block.hash, m); err != nil {
		return m, err
	}
	if m, err = surge.Marshal(w, block.parentHash, m); err != nil {
		return m, err
	}
	return surge.Marshal(w, block.content, m)
}

// Unmarshal into this Block from binary.
func (block *Block) Unmarshal(r io.Reader, m int) (int, error) {
	m, err := surge.Unmarshal(r, &block.number, m)
	if err != nil {
		return m, err
	}
	if m, err = surge.Unmarshal(r, &block.hash, m); err != nil {
		return m, err
	}
	if m, err = surge.Unmarshal(r, &block.parentHash, m); err != nil {
		return m, err
	}
	content := []byte{}
	if m, err = surge.Unmarshal(r, &content, m); err != nil {
		return m, err
	}
	block.content = copyBytes(content)
	return m, nil
}

// MarshalJSON encodes the Blocks of the Stream as a JSON array.
func (stream *Stream) MarshalJSON() ([]byte, error) {
	return json.Marshal(stream.blocks)
}

// UnmarshalJSON decodes a JSON array of Blocks into the Stream. The decoded
// Blocks must form a valid Stream under the Hasher of the receiver.
func (stream *Stream) UnmarshalJSON(data []byte) error {
	blocks := Blocks{}
	if err := json.Unmarshal(data, &blocks); err != nil {
		return err
	}
	return stream.replace(blocks)
}

// SizeHint of how many bytes will be needed to represent a Stream in binary.
func (stream *Stream) SizeHint() int {
	size := surge.SizeHint(uint32(len(stream.blocks)))
	for _, block := range stream.blocks {
		size += block.SizeHint()
	}
	return size
}

// Marshal this Stream into binary. The Hasher is not marshaled.
func (stream *Stream) Marshal(w io.Writer, m int) (int, error) {
	m, err := surge.Marshal(w, uint32(len(stream.blocks)), m)
	if err != nil {
		return m, err
	}
	for _, block := range stream.blocks {
		if m, err = block.Marshal(w, m); err != nil {
			return m, err
		}
	}
	return m, nil
}

// Unmarshal into this Stream from binary. The decoded Blocks must form a
// valid Stream under the Hasher of the receiver, otherwise the receiver is
// left unchanged.
func (stream *Stream) Unmarshal(r io.Reader, m int) (int, error) {
	numBlocks := uint32(0)
	m, err := surge.Unmarshal(r, &numBlocks, m)
	if err != nil {
		return m, err
	}
	if int64(numBlocks)*minBlockSize > int64(m) {
		return m, errors.Wrapf(id.ErrMaxBytesExceeded, "stream of %d blocks", numBlocks)
	}
	blocks := make(Blocks, numBlocks)
	for i := range blocks {
		if m, err = blocks[i].Unmarshal(r, m); err != nil {
			return m, errors.Wrapf(err, "unmarshaling block at index %d", i)
		}
	}
	return m, stream.replace(blocks)
}

func (stream *Stream) replace(blocks Blocks) error {
	if err := VerifyBlocks(blocks, stream.Hasher()); err != nil {
		return err
	}
	stream.blocks = blocks
	return nil
}
