package wire

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/commitment-core/curve"
)

// ErrMalformedBundle is returned when a wire buffer does not contain the
// expected number of tokens for its shape.
var ErrMalformedBundle = fmt.Errorf("wire: malformed bundle")

// PointToken is the parsed (x, parity) pair for one point on the wire.
type PointToken struct {
	X      *big.Int
	Parity int
}

// Key is a parsed public-key blob: curve index plus the public-key point
// h. A secret-key portion, if present on the wire, is ignored here — key
// generation lives outside this package's scope.
type Key struct {
	CurveIdx curve.Index
	Hx       *big.Int
	HParity  int
}

// ParseKey parses a hex-decoded key blob: token 1 is the decimal curve
// index, tokens 2-3 are the public key point <x>-<parity>. The PK's
// x-coordinate is wire data like any other point on the wire, so it is
// read at radix 64, not at the radix 16 used only for the compile-time
// Curve Parameter Table.
func ParseKey(blob []byte) (*Key, error) {
	var t Tokenizer
	t.SetBuffer(blob, ";-")

	idxTok, err := t.Nth(1)
	if err != nil {
		return nil, err
	}
	if idxTok == nil {
		return nil, ErrMalformedBundle
	}
	if _, err := DecodeRadix10(idxTok); err != nil {
		return nil, err
	}
	idx, err := curve.ParseIndex(idxTok)
	if err != nil {
		return nil, err
	}

	xTok, err := t.Nth(2)
	if err != nil {
		return nil, err
	}
	parityTok, err := t.Nth(3)
	if err != nil {
		return nil, err
	}
	if xTok == nil || parityTok == nil {
		return nil, ErrMalformedBundle
	}
	x, err := DecodeRadix64(xTok)
	if err != nil {
		return nil, err
	}
	parity, err := DecodeParity(parityTok)
	if err != nil {
		return nil, err
	}
	return &Key{CurveIdx: idx, Hx: x, HParity: parity}, nil
}

// ParseCommitmentContribution parses a single commitment contribution:
// four tokens under delimiters ";-", x-coordinates at radix 64.
func ParseCommitmentContribution(buf []byte) (c1, c2 PointToken, err error) {
	var t Tokenizer
	t.SetBuffer(buf, ";-")
	toks := make([][]byte, 4)
	for i := range toks {
		tok, e := t.Nth(i + 1)
		if e != nil {
			return c1, c2, e
		}
		if tok == nil {
			return c1, c2, ErrMalformedBundle
		}
		toks[i] = tok
	}
	x1, err := DecodeRadix64(toks[0])
	if err != nil {
		return c1, c2, err
	}
	p1, err := DecodeParity(toks[1])
	if err != nil {
		return c1, c2, err
	}
	x2, err := DecodeRadix64(toks[2])
	if err != nil {
		return c1, c2, err
	}
	p2, err := DecodeParity(toks[3])
	if err != nil {
		return c1, c2, err
	}
	return PointToken{X: x1, Parity: p1}, PointToken{X: x2, Parity: p2}, nil
}

// FormatCommitmentBundle renders the finalized commitment bundle:
// "<x(C1)>-<parity>;<x(C2)>-<parity>" at radix 64.
func FormatCommitmentBundle(c1, c2 *curve.Point) []byte {
	return []byte(fmt.Sprintf("%s-%d;%s-%d",
		pointX(c1), c1.YParity(),
		pointX(c2), c2.YParity(),
	))
}

func pointX(p *curve.Point) string {
	if p.IsIdentity() {
		return EncodeRadix64(big.NewInt(0))
	}
	return EncodeRadix64(p.X)
}

// ParseCommitmentBundle parses a finalized commitment bundle back into two
// (x, parity) point tokens, reconstructed against c by the caller.
func ParseCommitmentBundle(buf []byte) (c1, c2 PointToken, err error) {
	return ParseCommitmentContribution(buf)
}

// ParseDecommitmentContribution parses "<d1>,<d2>" at radix 64.
func ParseDecommitmentContribution(buf []byte) (d1, d2 *big.Int, err error) {
	var t Tokenizer
	t.SetBuffer(buf, ",")
	t1, err := t.Nth(1)
	if err != nil {
		return nil, nil, err
	}
	t2, err := t.Nth(2)
	if err != nil {
		return nil, nil, err
	}
	if t1 == nil || t2 == nil {
		return nil, nil, ErrMalformedBundle
	}
	d1, err = DecodeRadix64(t1)
	if err != nil {
		return nil, nil, err
	}
	d2, err = DecodeRadix64(t2)
	if err != nil {
		return nil, nil, err
	}
	return d1, d2, nil
}

// ParseDecommitmentBundle parses a finalized decommitment bundle; same
// shape as a single contribution.
func ParseDecommitmentBundle(buf []byte) (d1, d2 *big.Int, err error) {
	return ParseDecommitmentContribution(buf)
}

// FormatDecommitmentBundle renders "<d1>,<d2>" at radix 64.
func FormatDecommitmentBundle(d1, d2 *big.Int) []byte {
	return []byte(fmt.Sprintf("%s,%s", EncodeRadix64(d1), EncodeRadix64(d2)))
}
