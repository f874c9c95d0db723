package curve

import "math/big"

// Affine group law over the short Weierstrass form. Arithmetic is plain
// math/big modular arithmetic; none of these operations mutate their
// receivers or arguments.

// Neg returns -p.
func (p WeierstrassPoint) Neg() WeierstrassPoint {
	if p.IsInfinity() {
		return WeierstrassPoint{}
	}
	y := new(big.Int).Neg(p.Y)
	y.Mod(y, P)
	return WeierstrassPoint{X: new(big.Int).Mod(p.X, P), Y: y}
}

// Add returns p + q.
func (p WeierstrassPoint) Add(q WeierstrassPoint) WeierstrassPoint {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	px := new(big.Int).Mod(p.X, P)
	py := new(big.Int).Mod(p.Y, P)
	qx := new(big.Int).Mod(q.X, P)
	qy := new(big.Int).Mod(q.Y, P)

	var lambda *big.Int
	if px.Cmp(qx) == 0 {
		ySum := new(big.Int).Add(py, qy)
		ySum.Mod(ySum, P)
		if ySum.Sign() == 0 {
			// q = -p, including the doubling of a 2-torsion point.
			return WeierstrassPoint{}
		}
		// lambda = (3x^2 + AW) / 2y
		num := new(big.Int).Mul(px, px)
		num.Mul(num, big.NewInt(3)).Add(num, AW).Mod(num, P)
		den := new(big.Int).Lsh(py, 1)
		lambda = num.Mul(num, new(big.Int).ModInverse(den.Mod(den, P), P))
	} else {
		// lambda = (qy - py) / (qx - px)
		num := new(big.Int).Sub(qy, py)
		den := new(big.Int).Sub(qx, px)
		den.Mod(den, P)
		lambda = num.Mul(num, new(big.Int).ModInverse(den, P))
	}
	lambda.Mod(lambda, P)

	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, px).Sub(x, qx).Mod(x, P)
	y := new(big.Int).Sub(px, x)
	y.Mul(y, lambda).Sub(y, py).Mod(y, P)
	return WeierstrassPoint{X: x, Y: y}
}

// ScalarMul returns k*p by double-and-add. A zero scalar or an infinity base
// yields the point at infinity; a negative scalar multiplies the negated
// point.
func (p WeierstrassPoint) ScalarMul(k *big.Int) WeierstrassPoint {
	if p.IsInfinity() || k.Sign() == 0 {
		return WeierstrassPoint{}
	}
	base := p
	if k.Sign() < 0 {
		base = p.Neg()
		k = new(big.Int).Neg(k)
	}
	acc := WeierstrassPoint{}
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = acc.Add(acc)
		if k.Bit(i) == 1 {
			acc = acc.Add(base)
		}
	}
	return acc
}

// PointFromX recovers the Weierstrass point with the given x-coordinate and
// y-parity. The second return value is false when no point with that
// x-coordinate and parity lies on the curve; during signature recovery this
// is an expected miss, not an error.
func PointFromX(x *big.Int, odd bool) (WeierstrassPoint, bool) {
	xr := new(big.Int).Mod(x, P)
	y := new(big.Int).ModSqrt(rhsAt(xr), P)
	if y == nil {
		return WeierstrassPoint{}, false
	}
	if y.Sign() == 0 {
		// Only the even root exists at a 2-torsion point.
		if odd {
			return WeierstrassPoint{}, false
		}
		return WeierstrassPoint{X: xr, Y: y}, true
	}
	if (y.Bit(0) == 1) != odd {
		y.Sub(P, y)
	}
	return WeierstrassPoint{X: xr, Y: y}, true
}
