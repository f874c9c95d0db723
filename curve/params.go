// Package curve models Baby Jubjub points in the two forms the membership
// prover needs: twisted Edwards coordinates for everything that faces the
// circuit, and the birationally-equivalent short Weierstrass form for the
// standard group law used during signature recovery.
package curve

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/babyjub"
	"github.com/iden3/go-iden3-crypto/constants"
)

// Curve parameters in the three standard forms. The Edwards parameters come
// from go-iden3-crypto; the Montgomery and Weierstrass coefficients are the
// standard change-of-form maps applied to them. The Montgomery B parameter
// of Baby Jubjub is 1, which keeps both conversion directions free of
// scaling factors.
var (
	// P is the base field modulus (BN254 Fr).
	P *big.Int

	// N is the order of the prime subgroup, the scalar field of ECDSA.
	N *big.Int

	// Cofactor is the index of the prime subgroup in the full group (8).
	Cofactor *big.Int

	// MontA is the Montgomery A parameter, 2(a+d)/(a-d) mod P.
	MontA *big.Int

	// AW and BW are the short Weierstrass coefficients of
	// y^2 = x^3 + AW*x + BW over P.
	AW *big.Int
	BW *big.Int

	// Generator is the Weierstrass image of the Edwards base point B8; it
	// generates the prime subgroup.
	Generator WeierstrassPoint

	// aDiv3 is MontA/3 mod P, the shift between a Montgomery u-coordinate
	// and a Weierstrass x-coordinate.
	aDiv3 *big.Int
)

func init() {
	P = constants.Q
	N = babyjub.SubOrder
	Cofactor = new(big.Int).Div(babyjub.Order, babyjub.SubOrder)

	aMinusD := new(big.Int).Sub(babyjub.A, babyjub.D)
	aPlusD := new(big.Int).Add(babyjub.A, babyjub.D)
	invAMinusD := new(big.Int).ModInverse(new(big.Int).Mod(aMinusD, P), P)

	MontA = new(big.Int).Mul(big.NewInt(2), aPlusD)
	MontA.Mul(MontA, invAMinusD).Mod(MontA, P)

	inv3 := new(big.Int).ModInverse(big.NewInt(3), P)
	inv27 := new(big.Int).ModInverse(big.NewInt(27), P)
	aDiv3 = new(big.Int).Mul(MontA, inv3)
	aDiv3.Mod(aDiv3, P)

	aSq := new(big.Int).Mul(MontA, MontA)
	AW = new(big.Int).Mul(aSq, inv3)
	AW.Sub(big.NewInt(1), AW).Mod(AW, P)

	BW = new(big.Int).Mul(big.NewInt(2), aSq)
	BW.Sub(BW, big.NewInt(9)).Mul(BW, MontA).Mul(BW, inv27).Mod(BW, P)

	g, err := EdwardsToWeierstrass(EdwardsPoint{X: babyjub.B8.X, Y: babyjub.B8.Y})
	if err != nil {
		panic("curve: base point maps to a singular point: " + err.Error())
	}
	Generator = g
}
