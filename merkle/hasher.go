package merkle

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
)

// Hasher combines two field elements into one. Implementations must be
// deterministic, side-effect free, and safe for concurrent use; a single
// instance is meant to be constructed once and shared across accumulators.
type Hasher interface {
	HashPair(a, b *big.Int) (*big.Int, error)
}

// PoseidonHasher hashes pairs with the Poseidon permutation over BN254 Fr,
// the hash the membership circuit uses.
type PoseidonHasher struct{}

// NewPoseidonHasher returns the default circuit-compatible hasher.
func NewPoseidonHasher() *PoseidonHasher {
	return &PoseidonHasher{}
}

// HashPair implements Hasher.
func (*PoseidonHasher) HashPair(a, b *big.Int) (*big.Int, error) {
	return poseidon.Hash([]*big.Int{a, b})
}
