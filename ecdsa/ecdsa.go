// Package ecdsa derives the circuit-facing point representation (R, T, U)
// of a Baby Jubjub ECDSA signature. The verification equation
// s*R = m*G + r*Pub is re-expressed as s*T + U = Pub with T = R * r^-1 and
// U = G * (-r^-1 * m), so the circuit can check the signature against curve
// points without taking the raw ephemeral data as witnesses.
package ecdsa

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/vb7401/babyjubjub-ecdsa/curve"
)

// ErrNoValidCandidate is returned when no reconstruction of the ephemeral
// point matches the verification equation. The signature, public key and
// message triple is inconsistent; retrying cannot succeed.
var ErrNoValidCandidate = errors.New("no ephemeral point candidate satisfies the signature")

// Signature is a raw ECDSA signature; both scalars are in [0, N).
type Signature struct {
	R *big.Int
	S *big.Int
}

// CircuitInputs is the Edwards-form point trio consumed by the membership
// circuit.
type CircuitInputs struct {
	R curve.EdwardsPoint
	T curve.EdwardsPoint
	U curve.EdwardsPoint
}

// DeriveCircuitInputs reconstructs the ephemeral point R from the signature
// and derives T and U such that s*T + U equals pubKey.
//
// Only r = R.x mod N is known, so with cofactor h every x in
// {r, r+N, ..., r+(h-1)N} and either y-parity may hold the true R. The
// candidates are checked in that fixed order, even parity first; the first
// one satisfying the verification equation wins. An x with no curve point at
// the requested parity is an expected miss and is skipped.
func DeriveCircuitInputs(sig *Signature, msgHash *big.Int, pubKey curve.WeierstrassPoint) (*CircuitInputs, error) {
	rInv := new(big.Int).ModInverse(sig.R, curve.N)
	if rInv == nil {
		return nil, errors.Errorf("signature r = %v has no inverse modulo the curve order", sig.R)
	}

	// U depends only on r and the message, not on the candidate.
	uScalar := new(big.Int).Mul(rInv, msgHash)
	uScalar.Neg(uScalar).Mod(uScalar, curve.N)
	u := curve.Generator.ScalarMul(uScalar)

	cofactor := int(curve.Cofactor.Int64())
	for i := 0; i < cofactor; i++ {
		x := new(big.Int).Mul(big.NewInt(int64(i)), curve.N)
		x.Add(x, sig.R).Mod(x, curve.P)
		for _, odd := range []bool{false, true} {
			r, ok := curve.PointFromX(x, odd)
			if !ok {
				continue
			}
			t := r.ScalarMul(rInv)
			check := t.ScalarMul(sig.S).Add(u)
			if !check.Equal(pubKey) {
				continue
			}
			return toEdwards(r, t, u)
		}
	}
	return nil, errors.Wrapf(ErrNoValidCandidate,
		"exhausted %d x-coordinate candidates at both parities", cofactor)
}

func toEdwards(r, t, u curve.WeierstrassPoint) (*CircuitInputs, error) {
	re, err := curve.WeierstrassToEdwards(r)
	if err != nil {
		return nil, errors.Wrap(err, "convert R to Edwards form")
	}
	te, err := curve.WeierstrassToEdwards(t)
	if err != nil {
		return nil, errors.Wrap(err, "convert T to Edwards form")
	}
	ue, err := curve.WeierstrassToEdwards(u)
	if err != nil {
		return nil, errors.Wrap(err, "convert U to Edwards form")
	}
	return &CircuitInputs{R: re, T: te, U: ue}, nil
}
