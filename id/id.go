// Package id defines the fixed-width digests that identify blocks, and the
// hashing functions that produce them.
package id

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"io"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// HashLength is the number of bytes in a Hash.
const HashLength = 32

// ErrMaxBytesExceeded is returned when a Hash cannot be marshaled, or
// unmarshaled, within the remaining byte budget.
var ErrMaxBytesExceeded = errors.New("max bytes exceeded")

// Hashes defines a wrapper type around the []Hash type.
type Hashes []Hash

// Equal compares one list of Hashes with another. Order matters.
func (hashes Hashes) Equal(other Hashes) bool {
	if len(hashes) != len(other) {
		return false
	}
	for i := range hashes {
		if !hashes[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Hash defines the output of a 256-bit hashing function. The zero value is
// used as the parent of the first block in a stream.
type Hash [HashLength]byte

// Equal compares one Hash with another.
func (hash Hash) Equal(other Hash) bool {
	return bytes.Equal(hash[:], other[:])
}

// IsZero returns true when every byte of the Hash is zero.
func (hash Hash) IsZero() bool {
	return hash == Hash{}
}

// String implements the `fmt.Stringer` interface for the Hash type.
func (hash Hash) String() string {
	return base58.Encode(hash[:])
}

// ParseHash decodes a Hash from the string produced by `Hash.String`.
func ParseHash(s string) (Hash, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Hash{}, errors.Wrapf(err, "decoding hash %q", s)
	}
	if len(data) != HashLength {
		return Hash{}, errors.Errorf("expected hash of %d bytes, got %d bytes", HashLength, len(data))
	}
	hash := Hash{}
	copy(hash[:], data)
	return hash, nil
}

// MarshalJSON implements the `json.Marshaler` interface for the Hash type.
func (hash Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(hash[:])
}

// UnmarshalJSON implements the `json.Unmarshaler` interface for the Hash type.
func (hash *Hash) UnmarshalJSON(data []byte) error {
	v := []byte{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != HashLength {
		return errors.Errorf("expected hash of %d bytes, got %d bytes", HashLength, len(v))
	}
	copy(hash[:], v)
	return nil
}

// SizeHint of how many bytes will be needed to represent a Hash in binary.
func (Hash) SizeHint() int {
	return HashLength
}

// Marshal this Hash into binary.
func (hash Hash) Marshal(w io.Writer, m int) (int, error) {
	if m < HashLength {
		return m, ErrMaxBytesExceeded
	}
	n, err := w.Write(hash[:])
	return m - n, err
}

// Unmarshal into this Hash from binary.
func (hash *Hash) Unmarshal(r io.Reader, m int) (int, error) {
	if m < HashLength {
		return m, ErrMaxBytesExceeded
	}
	n, err := io.ReadFull(r, hash[:])
	return m - n, err
}

// A Hasher computes the Hash of some content. It must be deterministic and
// free of side effects.
type Hasher func(content []byte) Hash

// SHA256 is the default Hasher.
func SHA256(content []byte) Hash {
	return Hash(sha256.Sum256(content))
}

// SHA3 hashes content using the 256-bit SHA3 hashing function.
func SHA3(content []byte) Hash {
	return Hash(sha3.Sum256(content))
}

// Digest returns the SHA256 Hash of the content.
func Digest(content []byte) Hash {
	return SHA256(content)
}
