package testutil

import (
	"crypto/rand"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/renproject/blockstream/id"
)

func init() {
	mrand.Seed(time.Now().Unix())
}

// RandomHash returns a Hash filled with random bytes.
func RandomHash() id.Hash {
	hash := id.Hash{}
	_, err := rand.Read(hash[:])
	if err != nil {
		panic(fmt.Sprintf("cannot create random hash, err = %v", err))
	}
	return hash
}

// RandomHashes returns up to 30 random Hashes.
func RandomHashes() id.Hashes {
	length := mrand.Intn(30)
	hashes := make(id.Hashes, length)
	for i := 0; i < length; i++ {
		hashes[i] = RandomHash()
	}
	return hashes
}
