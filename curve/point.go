package curve

import (
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/babyjub"
	"github.com/pkg/errors"
)

// ErrSingularPoint is returned when the birational map between the Edwards
// and Weierstrass forms is evaluated at a point where it is undefined (the
// point at infinity, the Edwards identity, or the order-2 point). Such a
// point can never be a valid signature or key component, so callers treat
// this as a data-integrity failure.
var ErrSingularPoint = errors.New("conversion undefined at singular point")

// EdwardsPoint is an affine point on the twisted Edwards form of Baby
// Jubjub, a*x^2 + y^2 = 1 + d*x^2*y^2. Values are immutable after
// construction.
type EdwardsPoint struct {
	X *big.Int
	Y *big.Int
}

// WeierstrassPoint is an affine point on the short Weierstrass form,
// y^2 = x^3 + AW*x + BW. The zero value (nil coordinates) is the point at
// infinity, the group identity.
type WeierstrassPoint struct {
	X *big.Int
	Y *big.Int
}

// InCurve reports whether p satisfies the Edwards curve equation.
func (p EdwardsPoint) InCurve() bool {
	bp := babyjub.Point{X: p.X, Y: p.Y}
	return bp.InCurve()
}

// Equal compares canonical coordinate representations.
func (p EdwardsPoint) Equal(q EdwardsPoint) bool {
	return fieldEqual(p.X, q.X) && fieldEqual(p.Y, q.Y)
}

func (p EdwardsPoint) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// IsInfinity reports whether p is the point at infinity.
func (p WeierstrassPoint) IsInfinity() bool {
	return p.X == nil || p.Y == nil
}

// InCurve reports whether p satisfies the Weierstrass curve equation. The
// point at infinity is a group element and counts as on-curve.
func (p WeierstrassPoint) InCurve() bool {
	if p.IsInfinity() {
		return true
	}
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, P)
	rhs := rhsAt(new(big.Int).Mod(p.X, P))
	return lhs.Cmp(rhs) == 0
}

// Equal compares canonical coordinate representations; infinity equals only
// infinity.
func (p WeierstrassPoint) Equal(q WeierstrassPoint) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return fieldEqual(p.X, q.X) && fieldEqual(p.Y, q.Y)
}

func (p WeierstrassPoint) String() string {
	if p.IsInfinity() {
		return "(infinity)"
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// WeierstrassToEdwards maps p through the inverse birational map: first to
// Montgomery coordinates u = x - MontA/3, v = y, then to Edwards
// x' = u/v, y' = (u-1)/(u+1). Undefined at infinity, at v = 0 (the 2-torsion
// points) and at u = -1.
func WeierstrassToEdwards(p WeierstrassPoint) (EdwardsPoint, error) {
	if p.IsInfinity() {
		return EdwardsPoint{}, errors.Wrap(ErrSingularPoint, "point at infinity")
	}
	u := new(big.Int).Sub(p.X, aDiv3)
	u.Mod(u, P)
	v := new(big.Int).Mod(p.Y, P)
	if v.Sign() == 0 {
		return EdwardsPoint{}, errors.Wrap(ErrSingularPoint, "zero y-coordinate")
	}
	uPlus1 := new(big.Int).Add(u, big.NewInt(1))
	uPlus1.Mod(uPlus1, P)
	if uPlus1.Sign() == 0 {
		return EdwardsPoint{}, errors.Wrap(ErrSingularPoint, "u = -1")
	}
	x := new(big.Int).Mul(u, new(big.Int).ModInverse(v, P))
	x.Mod(x, P)
	y := new(big.Int).Sub(u, big.NewInt(1))
	y.Mul(y, new(big.Int).ModInverse(uPlus1, P)).Mod(y, P)
	return EdwardsPoint{X: x, Y: y}, nil
}

// EdwardsToWeierstrass maps p through the birational map u = (1+y)/(1-y),
// v = u/x, then shifts to Weierstrass x' = u + MontA/3, y' = v. Undefined at
// y = 1 (the identity) and at x = 0.
func EdwardsToWeierstrass(p EdwardsPoint) (WeierstrassPoint, error) {
	x := new(big.Int).Mod(p.X, P)
	y := new(big.Int).Mod(p.Y, P)
	oneMinusY := new(big.Int).Sub(big.NewInt(1), y)
	oneMinusY.Mod(oneMinusY, P)
	if oneMinusY.Sign() == 0 {
		return WeierstrassPoint{}, errors.Wrap(ErrSingularPoint, "y = 1")
	}
	if x.Sign() == 0 {
		return WeierstrassPoint{}, errors.Wrap(ErrSingularPoint, "zero x-coordinate")
	}
	u := new(big.Int).Add(big.NewInt(1), y)
	u.Mul(u, new(big.Int).ModInverse(oneMinusY, P)).Mod(u, P)
	v := new(big.Int).Mul(u, new(big.Int).ModInverse(x, P))
	v.Mod(v, P)
	wx := new(big.Int).Add(u, aDiv3)
	wx.Mod(wx, P)
	return WeierstrassPoint{X: wx, Y: v}, nil
}

func fieldEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return new(big.Int).Mod(a, P).Cmp(new(big.Int).Mod(b, P)) == 0
}

// rhsAt evaluates x^3 + AW*x + BW mod P for a reduced x.
func rhsAt(x *big.Int) *big.Int {
	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, new(big.Int).Mul(AW, x))
	rhs.Add(rhs, BW)
	return rhs.Mod(rhs, P)
}
