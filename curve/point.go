package curve

import "math/big"

// Point is an affine point on a Curve, or the point at infinity (identity).
type Point struct {
	X, Y     *big.Int
	infinity bool
	curve    *Curve
}

// ErrNotOnCurve is returned when an (x, parity) pair does not correspond to a
// point on the curve: x has no square root of x³-3x+b mod p, or x is outside
// [0, p).
var ErrNotOnCurve = newError("point does not lie on the curve")

type curveError struct{ msg string }

func newError(msg string) error { return &curveError{msg} }
func (e *curveError) Error() string { return "curve: " + e.msg }

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool { return p.infinity }

// Equal reports whether p and q represent the same point.
func (p *Point) Equal(q *Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// YParity returns the least-significant bit of the point's y-coordinate, the
// parity bit used on the wire to disambiguate the two roots for a given x.
// It is undefined (returns 0) for the point at infinity.
func (p *Point) YParity() int {
	if p.infinity {
		return 0
	}
	return int(p.Y.Bit(0))
}

// PointFromX reconstructs the point with the given x-coordinate and
// y-parity bit on c, solving y² = x³ - 3x + b mod p and picking the root
// matching parity. It returns ErrNotOnCurve if x is out of range or yields a
// quadratic non-residue.
func PointFromX(c *Curve, x *big.Int, parity int) (*Point, error) {
	if x.Sign() < 0 || x.Cmp(c.P) >= 0 {
		return nil, ErrNotOnCurve
	}
	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)     // x^3
	ax := new(big.Int).Mul(a, x)
	ax.Mod(ax, c.P)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	y := new(big.Int).ModSqrt(rhs, c.P)
	if y == nil {
		return nil, ErrNotOnCurve
	}
	if int(y.Bit(0)) != parity {
		y.Sub(c.P, y)
	}
	return &Point{X: x, Y: y, curve: c}, nil
}

// Add computes p + q on their shared curve.
func (p *Point) Add(q *Point) *Point {
	c := p.curve
	if p.infinity {
		return q.clone()
	}
	if q.infinity {
		return p.clone()
	}
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) != 0 || p.Y.Sign() == 0 {
			// p == -q
			return c.Identity()
		}
		return p.double()
	}

	// lambda = (qy - py) / (qx - px) mod p
	num := new(big.Int).Sub(q.Y, p.Y)
	den := new(big.Int).Sub(q.X, p.X)
	den.ModInverse(den, c.P)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, c.P)

	return affineFromLambda(c, lambda, p.X, q.X, p.Y)
}

// double computes 2p.
func (p *Point) double() *Point {
	c := p.curve
	if p.infinity || p.Y.Sign() == 0 {
		return c.Identity()
	}
	// lambda = (3x^2 + a) / (2y) mod p
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, a)
	num.Mod(num, c.P)

	den := new(big.Int).Lsh(p.Y, 1)
	den.Mod(den, c.P)
	den.ModInverse(den, c.P)

	lambda := num.Mul(num, den)
	lambda.Mod(lambda, c.P)

	return affineFromLambda(c, lambda, p.X, p.X, p.Y)
}

// affineFromLambda finishes a point addition/doubling given the slope
// lambda and the two input x-coordinates (x1 == x2 for doubling) and p1's y.
func affineFromLambda(c *Curve, lambda, x1, x2, y1 *big.Int) *Point {
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3.Mod(x3, c.P)

	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, y1)
	y3.Mod(y3, c.P)

	return &Point{X: x3, Y: y3, curve: c}
}

// ScalarMult computes k*p using a double-and-add scan of k's bits,
// most-significant first.
func (p *Point) ScalarMult(k *big.Int) *Point {
	c := p.curve
	result := c.Identity()
	if k.Sign() == 0 {
		return result
	}
	kk := new(big.Int).Mod(k, c.N)
	base := p.clone()
	for i := kk.BitLen() - 1; i >= 0; i-- {
		result = result.double()
		if kk.Bit(i) == 1 {
			result = result.Add(base)
		}
	}
	return result
}

// ScalarBaseMult computes k*G on c.
func ScalarBaseMult(c *Curve, k *big.Int) *Point {
	return c.Generator().ScalarMult(k)
}

func (p *Point) clone() *Point {
	if p.infinity {
		return p.curve.Identity()
	}
	return &Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y), curve: p.curve}
}
