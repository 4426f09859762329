package commitment

import (
	"github.com/vocdoni/commitment-core/curve"
	"github.com/vocdoni/commitment-core/wire"
)

// Verify checks that commitmentBundle opens to decommitmentBundle under the
// public key carried in key.
//
// It computes S1 = d2·G and S2 = d1·G + d2·h and returns
// C1 == S1 && C2 == S2 — the Exponential ElGamal opening equation for
// (C1, C2) = (r·G, m·G + r·h) with d1 playing the role of m and d2 the role
// of r.
//
// Parse failures on any of the three inputs are errors, never a false
// result: only a well-formed bundle that genuinely fails the equation
// returns (false, nil).
func Verify(commitmentBundle, decommitmentBundle, key []byte) (bool, error) {
	k, err := wire.ParseKey(key)
	if err != nil {
		return false, wrapParseOrCurve(err)
	}
	c, err := curve.New(k.CurveIdx)
	if err != nil {
		return false, wrapParseOrCurve(err)
	}
	h, err := curve.PointFromX(c, k.Hx, k.HParity)
	if err != nil {
		return false, wrapParseOrCurve(err)
	}

	c1Tok, c2Tok, err := wire.ParseCommitmentBundle(commitmentBundle)
	if err != nil {
		return false, wrapParseOrCurve(err)
	}
	c1, err := curve.PointFromX(c, c1Tok.X, c1Tok.Parity)
	if err != nil {
		return false, wrapParseOrCurve(err)
	}
	c2, err := curve.PointFromX(c, c2Tok.X, c2Tok.Parity)
	if err != nil {
		return false, wrapParseOrCurve(err)
	}

	d1, d2, err := wire.ParseDecommitmentBundle(decommitmentBundle)
	if err != nil {
		return false, wrapParseOrCurve(err)
	}

	g := c.Generator()
	s1 := g.ScalarMult(d2)
	s2 := g.ScalarMult(d1).Add(h.ScalarMult(d2))

	return c1.Equal(s1) && c2.Equal(s2), nil
}
