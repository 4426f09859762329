package curve

import "math/big"

// Curve is a short-Weierstrass curve y² = x³ - 3x + b mod p, instantiated
// from the Curve Parameter Table for one of the five supported indices.
type Curve struct {
	Idx Index
	P   *big.Int // field prime
	N   *big.Int // order of G
	B   *big.Int
	Gx  *big.Int
	Gy  *big.Int
}

// a is the fixed Weierstrass coefficient shared by every curve in the table.
var a = big.NewInt(-3)

// New constructs the Curve for idx, parsing its hex parameters at radix 16.
func New(idx Index) (*Curve, error) {
	if idx < 0 || idx >= numCurves {
		return nil, ErrUnknownCurve
	}
	t := table[idx]
	c := &Curve{Idx: idx}
	var ok bool
	if c.P, ok = new(big.Int).SetString(t.p, 16); !ok {
		return nil, ErrBadParameter
	}
	if c.N, ok = new(big.Int).SetString(t.q, 16); !ok {
		return nil, ErrBadParameter
	}
	if c.B, ok = new(big.Int).SetString(t.b, 16); !ok {
		return nil, ErrBadParameter
	}
	if c.Gx, ok = new(big.Int).SetString(t.gx, 16); !ok {
		return nil, ErrBadParameter
	}
	if c.Gy, ok = new(big.Int).SetString(t.gy, 16); !ok {
		return nil, ErrBadParameter
	}
	return c, nil
}

// Generator returns the curve's base point G.
func (c *Curve) Generator() *Point {
	return &Point{X: new(big.Int).Set(c.Gx), Y: new(big.Int).Set(c.Gy), curve: c}
}

// Identity returns the point at infinity on c.
func (c *Curve) Identity() *Point {
	return &Point{infinity: true, curve: c}
}
