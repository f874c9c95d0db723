package ecdsa

import (
	"crypto/rand"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/vb7401/babyjubjub-ecdsa/curve"
)

// Sign produces a standard ECDSA signature over the Weierstrass form of the
// curve: R = k*G, r = R.x mod N, s = k^-1 (m + r*privKey) mod N. Nonces
// yielding a zero r or s are resampled.
func Sign(privKey, msgHash *big.Int) (*Signature, error) {
	for {
		k, err := rand.Int(rand.Reader, curve.N)
		if err != nil {
			return nil, errors.Wrap(err, "sample signing nonce")
		}
		if k.Sign() == 0 {
			continue
		}
		r := new(big.Int).Mod(curve.Generator.ScalarMul(k).X, curve.N)
		if r.Sign() == 0 {
			continue
		}
		s := new(big.Int).Mul(r, privKey)
		s.Add(s, msgHash)
		s.Mul(s, new(big.Int).ModInverse(k, curve.N))
		s.Mod(s, curve.N)
		if s.Sign() == 0 {
			continue
		}
		return &Signature{R: r, S: s}, nil
	}
}

// PublicKey returns privKey*G in Weierstrass form.
func PublicKey(privKey *big.Int) curve.WeierstrassPoint {
	return curve.Generator.ScalarMul(privKey)
}

// HashMessage digests msg with Keccak256 and reduces it into the order
// field, producing the scalar that Sign and DeriveCircuitInputs consume.
func HashMessage(msg []byte) *big.Int {
	digest := ethcrypto.Keccak256(msg)
	return new(big.Int).Mod(new(big.Int).SetBytes(digest), curve.N)
}
